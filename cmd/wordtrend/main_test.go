package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/bcampbell/wordtrend/corpus/slurp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCorpus = `[
{"content":"一胎政策","publish_date":"20140402"},
{"content":"一胎 一胎","publish_date":"20140415"},
{"content":"nothing","publish_date":"20140601"},
{"content":"一胎","publish_date":"20140820"}
]`

func writeFile(t *testing.T, dir string, name string, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func runCmd(t *testing.T, args ...string) (int, string, string) {
	t.Helper()
	t.Setenv("WORDTREND_DB", "")
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunCSV(t *testing.T) {
	corpusFile := writeFile(t, t.TempDir(), "corpus.json", testCorpus)

	code, out, errOut := runCmd(t, "-f", "csv", "一胎", corpusFile)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "period,value\n201404,2\n201405,0\n201406,0\n201407,0\n201408,1\n", out)
}

func TestRunYearBars(t *testing.T) {
	corpusFile := writeFile(t, t.TempDir(), "corpus.json", testCorpus)

	code, out, errOut := runCmd(t, "-g", "year", "-w", "12", "一胎", corpusFile)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "2014 3 *****\n", out)
}

func TestRunErrors(t *testing.T) {
	corpusFile := writeFile(t, t.TempDir(), "corpus.json", testCorpus)

	code, _, errOut := runCmd(t, "-g", "week", "一胎", corpusFile)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported granularity")

	code, _, _ = runCmd(t, "-f", "pdf", "一胎", corpusFile)
	assert.Equal(t, 2, code)

	code, _, errOut = runCmd(t)
	assert.Equal(t, 2, code)
	assert.Contains(t, errOut, "missing <keyword>")

	code, _, errOut = runCmd(t, "一胎")
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "no corpus")
}

func TestRunHTMLShowsError(t *testing.T) {
	corpusFile := writeFile(t, t.TempDir(), "corpus.json", testCorpus)

	code, out, errOut := runCmd(t, "-f", "html", "-g", "week", "一胎", corpusFile)
	assert.Equal(t, 1, code)
	assert.Contains(t, errOut, "unsupported granularity")
	assert.Contains(t, out, `class="error"`)
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	corpusFile := writeFile(t, dir, "corpus.json", testCorpus)
	cfgFile := writeFile(t, dir, "wordtrend.cfg", `
[corpus]
file = `+corpusFile+`

[output]
granularity = day
format = json
`)

	code, out, errOut := runCmd(t, "-c", cfgFile, "-g", "year", "一胎")
	require.Equal(t, 0, code, errOut)
	// -g overrides the config
	assert.Contains(t, out, `"period": "2014"`)
	assert.Contains(t, out, `"value": 3`)
}

func TestRunAutoOutput(t *testing.T) {
	dir := t.TempDir()
	corpusFile := writeFile(t, dir, "corpus.json", testCorpus)

	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	defer os.Chdir(wd)

	code, out, errOut := runCmd(t, "-f", "html", "-o", "auto", "一胎", corpusFile)
	require.Equal(t, 0, code, errOut)
	assert.Empty(t, out)

	page, err := os.ReadFile(filepath.Join(dir, "一胎-month.html"))
	require.NoError(t, err)
	assert.Contains(t, string(page), "201404-2")
}

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "month", cfg.Output.Granularity)
	assert.Equal(t, "bars", cfg.Output.Format)

	path := writeFile(t, t.TempDir(), "wordtrend.cfg", `
[corpus]
file = a.json
file = b.yaml
db = /tmp/articles.db
text = true

[output]
leapyears = true
width = 100
`)
	cfg, err = loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"a.json", "b.yaml"}, cfg.Corpus.File)
	assert.Equal(t, "/tmp/articles.db", cfg.Corpus.DB)
	assert.True(t, cfg.Corpus.Text)
	assert.True(t, cfg.Output.LeapYears)
	assert.Equal(t, 100, cfg.Output.Width)
	assert.Equal(t, "month", cfg.Output.Granularity)

	_, err = loadConfig(filepath.Join(t.TempDir(), "missing.cfg"))
	assert.Error(t, err)
}

func TestParseTime(t *testing.T) {
	_, err := parseTime("2014-04-01")
	assert.NoError(t, err)
	_, err = parseTime("2014-04-01T10:00:00Z")
	assert.NoError(t, err)
	_, err = parseTime("01/04/2014")
	assert.Error(t, err)
}

func TestRunLeap(t *testing.T) {
	corpusFile := writeFile(t, t.TempDir(), "corpus.jsonl",
		`{"content":"leap","publish_date":"20120228"}`+"\n"+
			`{"content":"leap","publish_date":"20120301"}`+"\n")

	code, out, errOut := runCmd(t, "-g", "day", "-f", "csv", "leap", corpusFile)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "period,value\n20120228,1\n20120301,1\n", out)

	code, out, errOut = runCmd(t, "-g", "day", "-f", "csv", "-leap", "leap", corpusFile)
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "period,value\n20120228,1\n20120229,0\n20120301,1\n", out)
}

func TestRunSlurp(t *testing.T) {
	// server holds one article per publication, and honours pub exclusions
	articles := map[string]slurp.Article{
		"dailyblah":  {Content: `<p class="一胎">一胎</p>`, Published: "2014-04-02"},
		"weeklyblah": {Content: `<p>一胎政策</p>`, Published: "2014-05-10"},
		"blahpost":   {Content: `<p class="一胎">nothing</p>`, Published: "2014-06-01"},
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.ParseForm()
		excluded := map[string]bool{}
		for _, code := range r.Form["xpub"] {
			excluded[code] = true
		}
		enc := json.NewEncoder(w)
		for _, code := range []string{"dailyblah", "weeklyblah", "blahpost"} {
			if excluded[code] {
				continue
			}
			art := articles[code]
			enc.Encode(slurp.Msg{Article: &art})
		}
	}))
	defer srv.Close()

	code, out, errOut := runCmd(t, "-slurp", srv.URL, "-f", "csv", "一胎")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "period,value\n201404,1\n201405,1\n201406,1\n", out)

	code, out, errOut = runCmd(t, "-slurp", srv.URL, "-f", "csv", "-xpub", "weeklyblah", "一胎")
	require.Equal(t, 0, code, errOut)
	assert.Equal(t, "period,value\n201404,1\n201405,0\n201406,1\n", out)

	code, out, errOut = runCmd(t, "-slurp", srv.URL, "-f", "csv", "-text", "一胎")
	require.Equal(t, 0, code, errOut)
	// the June article only mentions the word in its markup
	assert.Equal(t, "period,value\n201404,1\n201405,1\n", out)
}
