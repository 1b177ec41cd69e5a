package main

// wordtrend counts how often a keyword crops up in a corpus of dated
// articles, and charts the counts by year, month or day.

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/bcampbell/wordtrend/render"
	"github.com/bcampbell/wordtrend/trend"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/crypto/ssh/terminal"
)

type Logger interface {
	Printf(format string, v ...interface{})
}

type nullLogger struct{}

func (l nullLogger) Printf(format string, v ...interface{}) {
}

type multiArg []string

func (p *multiArg) String() string         { return fmt.Sprintf("%s", *p) }
func (p *multiArg) Set(value string) error { *p = append(*p, value); return nil }

type options struct {
	configFile  string
	granularity string
	format      string
	outFile     string
	driver      string
	connStr     string
	slurpURL    string
	pubFrom     string
	pubTo       string
	pubs        multiArg
	xpubs       multiArg
	text        bool
	inSQL       bool
	leap        bool
	width       int
	colour      bool
	verbosity   int
}

const usageTxt = `Usage: %s [OPTIONS] <keyword> [corpus files...]

Counts the entries in a corpus which mention <keyword>, and charts the
counts by year, month or day.
Corpus files can be .json, .js, .jsonl or .yaml. Alternatively, use -db
(or set WORDTREND_DB) to read articles from a scrapeomat database, or
-slurp to fetch them from a slurp server.
`

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run does all the work, returning the exit code.
// 0=ok, 1=error, 2=bad usage.
func run(args []string, stdout io.Writer, stderr io.Writer) int {
	var opts options
	flags := flag.NewFlagSet("wordtrend", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.StringVar(&opts.configFile, "c", "", "config `file` (gcfg format)")
	flags.StringVar(&opts.granularity, "g", "", "granularity: year, month or day (default month)")
	flags.StringVar(&opts.format, "f", "", "output format: bars, csv, table, json or html (default bars)")
	flags.StringVar(&opts.outFile, "o", "", `output file ("auto" to pick a name from the keyword, default stdout)`)
	flags.StringVar(&opts.connStr, "db", "", "database connection string (or set WORDTREND_DB)")
	flags.StringVar(&opts.slurpURL, "slurp", "", "read articles from a slurp server at `url` (eg http://localhost:12345)")
	flags.StringVar(&opts.driver, "driver", "", "database driver name (defaults to sqlite3 if WORDTREND_DRIVER is unset)")
	flags.StringVar(&opts.pubFrom, "pubfrom", "", "only articles published from `date` (YYYY-MM-DD)")
	flags.StringVar(&opts.pubTo, "pubto", "", "only articles published before `date` (YYYY-MM-DD)")
	flags.Var(&opts.pubs, "pub", "only articles from publication `code` (repeatable)")
	flags.Var(&opts.xpubs, "xpub", "exclude articles from publication `code` (repeatable)")
	flags.BoolVar(&opts.text, "text", false, "strip html from database or slurped articles before matching")
	flags.BoolVar(&opts.inSQL, "sql", false, "count inside the database (faster, matches raw html)")
	flags.BoolVar(&opts.leap, "leap", false, "give February 29 days in leap years")
	flags.IntVar(&opts.width, "w", 0, "chart width (0=auto)")
	flags.BoolVar(&opts.colour, "colour", false, "colour the bars")
	flags.IntVar(&opts.verbosity, "v", 0, "verbosity (0=errors only, 1=info, 2=debug)")
	flags.Usage = func() {
		fmt.Fprintf(stderr, usageTxt, "wordtrend")
		flags.PrintDefaults()
	}

	if err := flags.Parse(args); err != nil {
		return 2
	}

	if flags.NArg() < 1 || flags.Arg(0) == "" {
		fmt.Fprintf(stderr, "ERROR: missing <keyword>\n")
		flags.Usage()
		return 2
	}
	word := flags.Arg(0)

	cfg, err := loadConfig(opts.configFile)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 2
	}
	applyFlags(cfg, flags, &opts)
	cfg.Corpus.File = append(cfg.Corpus.File, flags.Args()[1:]...)

	errLog := log.New(stderr, "ERR: ", 0)
	var infoLog, debugLog Logger = nullLogger{}, nullLogger{}
	if opts.verbosity > 0 {
		infoLog = log.New(stderr, "INF: ", 0)
	}
	if opts.verbosity > 1 {
		debugLog = log.New(stderr, "DBG: ", 0)
	}

	format, err := render.ParseFormat(cfg.Output.Format)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 2
	}

	app := &App{
		Word:     word,
		Cal:      trend.Calendar{LeapYears: cfg.Output.LeapYears},
		Cfg:      cfg,
		Opts:     &opts,
		ErrLog:   errLog,
		InfoLog:  infoLog,
		DebugLog: debugLog,
	}

	g, err := trend.ParseGranularity(cfg.Output.Granularity)
	var series trend.Series
	if err == nil {
		app.Granularity = g
		series, err = app.Series()
	} else {
		app.Granularity = trend.Granularity(cfg.Output.Granularity)
	}
	if err != nil && format != render.FormatHTML {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	pipelineErr := err

	out, closer, err := app.openOutput(format, stdout)
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	err = app.Render(out, format, series, pipelineErr)
	if cerr := closer(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", err)
		return 1
	}
	if pipelineErr != nil {
		fmt.Fprintf(stderr, "ERROR: %s\n", pipelineErr)
		return 1
	}

	infoLog.Printf("%q by %s: %d periods, %d mentions\n", word, app.Granularity, len(series), series.Total())
	return 0
}

// applyFlags copies any flags which were explicitly set over the config.
func applyFlags(cfg *Config, flags *flag.FlagSet, opts *options) {
	flags.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "g":
			cfg.Output.Granularity = opts.granularity
		case "f":
			cfg.Output.Format = opts.format
		case "o":
			cfg.Output.File = opts.outFile
		case "w":
			cfg.Output.Width = opts.width
		case "colour":
			cfg.Output.Colour = opts.colour
		case "leap":
			cfg.Output.LeapYears = opts.leap
		case "db":
			cfg.Corpus.DB = opts.connStr
		case "slurp":
			cfg.Corpus.Slurp = opts.slurpURL
		case "driver":
			cfg.Corpus.Driver = opts.driver
		case "text":
			cfg.Corpus.Text = opts.text
		case "sql":
			cfg.Corpus.SQL = opts.inSQL
		}
	})
}

const yyyymmddLayout = "2006-01-02"

func parseTime(in string) (time.Time, error) {
	t, err := time.ParseInLocation(time.RFC3339, in, time.UTC)
	if err == nil {
		return t, nil
	}

	// short form - assumes you want utc days rather than local days...
	t, err = time.ParseInLocation(yyyymmddLayout, in, time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date/time format")
	}
	return t, nil
}

func detectTermWidth(w io.Writer) (int, error) {
	f, ok := w.(*os.File)
	if !ok {
		return 0, fmt.Errorf("Not a terminal")
	}
	fd := int(f.Fd())
	if !terminal.IsTerminal(fd) {
		return 0, fmt.Errorf("Not a terminal")
	}
	width, _, err := terminal.GetSize(fd)
	if err != nil {
		return 0, err
	}
	return width, nil
}
