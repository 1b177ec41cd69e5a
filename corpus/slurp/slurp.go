// Package slurp pulls a corpus from a scrapeomat slurp server.
package slurp

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/bcampbell/wordtrend/corpus"
	"github.com/bcampbell/wordtrend/trend"
)

// Article is the subset of the slurp wire format we care about.
type Article struct {
	CanonicalURL string `json:"canonical_url"`
	Headline     string `json:"headline"`
	// Content contains HTML, sanitised using a subset of tags
	Content string `json:"content"`
	// Published is an ISO8601 string, possibly less precise than a full
	// timestamp.
	Published string `json:"published,omitempty"`
}

// Msg is a single message - can hold an article or error message
type Msg struct {
	Article *Article `json:"article,omitempty"`
	Error   string   `json:"error,omitempty"`
	Next    struct {
		SinceID int `json:"since_id,omitempty"`
	} `json:"next,omitempty"`
}

// Slurper is a client for talking to a slurp server
type Slurper struct {
	Client *http.Client
	// eg "http://localhost:12345/ukarticles"
	Location string
	// date range is [PubFrom,PubTo)
	PubFrom time.Time
	PubTo   time.Time
	// if empty, accept all publications
	PubCodes []string
	// publications to exclude
	XPubCodes []string
	// StripHTML reduces article content to plain text, so markup never
	// matches a keyword.
	StripHTML bool
}

var _ corpus.Source = (*Slurper)(nil)

func NewSlurper(location string) *Slurper {
	return &Slurper{Location: location}
}

func (s *Slurper) params(sinceID int) url.Values {
	v := url.Values{}
	if !s.PubFrom.IsZero() {
		v.Set("pubfrom", s.PubFrom.Format(time.RFC3339))
	}
	if !s.PubTo.IsZero() {
		v.Set("pubto", s.PubTo.Format(time.RFC3339))
	}
	for _, code := range s.PubCodes {
		v.Add("pub", code)
	}
	for _, code := range s.XPubCodes {
		v.Add("xpub", code)
	}
	if sinceID > 0 {
		v.Set("since_id", fmt.Sprintf("%d", sinceID))
	}
	return v
}

// Slurp downloads a batch of articles from the server, streaming out
// messages. Errors are returned via Msg. In the case of network errors,
// Slurp may synthesise fake Msgs containing the error message.
func (s *Slurper) Slurp(sinceID int) chan Msg {
	out := make(chan Msg)

	go func() {
		defer close(out)
		u := s.Location + "/api/slurp?" + s.params(sinceID).Encode()

		client := s.Client
		if client == nil {
			client = &http.Client{}
		}

		resp, err := client.Get(u)
		if err != nil {
			out <- Msg{Error: fmt.Sprintf("HTTP Get failed: %s", err)}
			return
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			out <- Msg{Error: fmt.Sprintf("HTTP Error: %s", resp.Status)}
			return
		}

		dec := json.NewDecoder(resp.Body)
		for {
			var msg Msg
			if err := dec.Decode(&msg); err == io.EOF {
				break
			} else if err != nil {
				out <- Msg{Error: fmt.Sprintf("Decode error: %s", err)}
				return
			}

			out <- msg
		}
	}()

	return out
}

// Entries slurps every matching article, following "next" messages until
// the server runs out. Articles without a usable publication date are
// skipped.
func (s *Slurper) Entries() ([]trend.Entry, error) {
	entries := []trend.Entry{}
	sinceID := 0
	for {
		next := 0
		c := s.Slurp(sinceID)
		for msg := range c {
			if msg.Error != "" {
				// drain, so the goroutine can finish
				for range c {
				}
				return nil, fmt.Errorf("slurp: %s", msg.Error)
			}
			if msg.Next.SinceID > 0 {
				next = msg.Next.SinceID
			}
			if msg.Article == nil {
				continue
			}
			day, err := corpus.NormaliseDate(msg.Article.Published)
			if err != nil {
				continue
			}
			content := msg.Article.Content
			if s.StripHTML {
				content = corpus.HTMLToText(content)
			}
			entries = append(entries, trend.Entry{Content: content, PublishDate: day})
		}
		if next == 0 || next == sinceID {
			break
		}
		sinceID = next
	}
	return entries, nil
}
