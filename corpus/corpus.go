// Package corpus loads entries for keyword counting from files.
package corpus

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/bcampbell/wordtrend/trend"
	"gopkg.in/yaml.v3"
)

// Source supplies a corpus of entries.
type Source interface {
	Entries() ([]trend.Entry, error)
}

// FileSource loads entries from a file. The format is picked by
// file extension:
//   .json          array of entries
//   .js            javascript data file (eg "window.newssim_db = [...];")
//   .jsonl .ndjson one entry per line
//   .yaml .yml     list of entries
type FileSource struct {
	Path string
}

func (src *FileSource) Entries() ([]trend.Entry, error) {
	raw, err := os.ReadFile(src.Path)
	if err != nil {
		return nil, err
	}

	var recs []rawEntry
	ext := strings.ToLower(filepath.Ext(src.Path))
	switch ext {
	case ".json":
		recs, err = decodeJSON(raw)
	case ".js":
		recs, err = decodeJS(raw)
	case ".jsonl", ".ndjson":
		recs, err = decodeJSONLines(raw)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(raw, &recs)
	default:
		return nil, fmt.Errorf("%s: unsupported corpus format (%q)", src.Path, ext)
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}

	entries, err := cook(recs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", src.Path, err)
	}
	return entries, nil
}

// Multi concatenates the entries of several sources, in order.
type Multi []Source

func (m Multi) Entries() ([]trend.Entry, error) {
	out := []trend.Entry{}
	for _, src := range m {
		entries, err := src.Entries()
		if err != nil {
			return nil, err
		}
		out = append(out, entries...)
	}
	return out, nil
}

// rawEntry is an entry as it appears in a data file, where publish_date
// might be a string or a number.
type rawEntry struct {
	Content     string      `json:"content" yaml:"content"`
	PublishDate flexiString `json:"publish_date" yaml:"publish_date"`
}

type flexiString string

func (s *flexiString) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = flexiString(str)
		return nil
	}
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		return fmt.Errorf("expected string or number, got %s", data)
	}
	*s = flexiString(num.String())
	return nil
}

func (s *flexiString) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: expected scalar publish_date", node.Line)
	}
	*s = flexiString(node.Value)
	return nil
}

func decodeJSON(raw []byte) ([]rawEntry, error) {
	var recs []rawEntry
	err := json.Unmarshal(raw, &recs)
	return recs, err
}

// browser data files assign the array to a global, eg "window.newssim_db = [...];"
func decodeJS(raw []byte) ([]rawEntry, error) {
	start := bytes.IndexByte(raw, '[')
	end := bytes.LastIndexByte(raw, ']')
	if start == -1 || end < start {
		return nil, fmt.Errorf("no array found")
	}
	return decodeJSON(raw[start : end+1])
}

func decodeJSONLines(raw []byte) ([]rawEntry, error) {
	recs := []rawEntry{}
	scanner := bufio.NewScanner(bytes.NewReader(raw))
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := bytes.TrimSpace(scanner.Bytes())
		if len(line) == 0 {
			continue
		}
		var rec rawEntry
		if err := json.Unmarshal(line, &rec); err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNum, err)
		}
		recs = append(recs, rec)
	}
	return recs, scanner.Err()
}

func cook(recs []rawEntry) ([]trend.Entry, error) {
	entries := make([]trend.Entry, 0, len(recs))
	for i, rec := range recs {
		day, err := NormaliseDate(string(rec.PublishDate))
		if err != nil {
			return nil, fmt.Errorf("entry %d: %w", i, err)
		}
		entries = append(entries, trend.Entry{Content: rec.Content, PublishDate: day})
	}
	return entries, nil
}

var dateFmts = []string{
	"20060102",
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// NormaliseDate converts a publication date into YYYYMMDD form.
// Accepts YYYYMMDD (as is), YYYY-MM-DD and a few timestamp forms.
// Timestamps keep the day they were written in, no timezone conversion.
func NormaliseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) == 8 {
		if _, err := strconv.Atoi(s); err == nil && s[0] != '-' && s[0] != '+' {
			return s, nil
		}
	}
	for _, layout := range dateFmts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t.Format("20060102"), nil
		}
	}
	return "", fmt.Errorf("bad publish_date %q", s)
}
