package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bcampbell/wordtrend/corpus"
	"github.com/bcampbell/wordtrend/corpus/slurp"
	"github.com/bcampbell/wordtrend/corpus/sqlcorpus"
	"github.com/bcampbell/wordtrend/render"
	"github.com/bcampbell/wordtrend/trend"
)

// App holds the settings for a single run.
type App struct {
	Word        string
	Granularity trend.Granularity
	Cal         trend.Calendar
	Cfg         *Config
	Opts        *options

	ErrLog   Logger
	InfoLog  Logger
	DebugLog Logger
}

// useDB decides if we're reading from a database rather than files.
func (app *App) useDB() bool {
	if app.Cfg.Corpus.DB != "" {
		return true
	}
	return len(app.Cfg.Corpus.File) == 0 && os.Getenv("WORDTREND_DB") != ""
}

func (app *App) dbFilter() (*sqlcorpus.Filter, error) {
	filt := &sqlcorpus.Filter{
		PubCodes:  app.Opts.pubs,
		XPubCodes: app.Opts.xpubs,
	}
	if app.Opts.pubFrom != "" {
		t, err := parseTime(app.Opts.pubFrom)
		if err != nil {
			return nil, fmt.Errorf("bad -pubfrom: %s", err)
		}
		filt.PubFrom = t
	}
	if app.Opts.pubTo != "" {
		t, err := parseTime(app.Opts.pubTo)
		if err != nil {
			return nil, fmt.Errorf("bad -pubto: %s", err)
		}
		filt.PubTo = t
	}
	return filt, nil
}

// Series runs the search and returns the gap-filled counts.
func (app *App) Series() (trend.Series, error) {
	if app.Cfg.Corpus.Slurp != "" {
		filt, err := app.dbFilter()
		if err != nil {
			return nil, err
		}
		s := slurp.NewSlurper(app.Cfg.Corpus.Slurp)
		s.PubFrom, s.PubTo = filt.PubFrom, filt.PubTo
		s.PubCodes, s.XPubCodes = filt.PubCodes, filt.XPubCodes
		s.StripHTML = app.Cfg.Corpus.Text
		app.InfoLog.Printf("slurping from %s %s\n", s.Location, filt.Describe())
		return app.search(s)
	}

	if !app.useDB() {
		if len(app.Cfg.Corpus.File) == 0 {
			return nil, fmt.Errorf("no corpus (give some files, or use -db)")
		}
		src := corpus.Multi{}
		for _, f := range app.Cfg.Corpus.File {
			src = append(src, &corpus.FileSource{Path: f})
		}
		return app.search(src)
	}

	filt, err := app.dbFilter()
	if err != nil {
		return nil, err
	}

	db, err := sqlcorpus.NewWithEnv(app.Cfg.Corpus.Driver, app.Cfg.Corpus.DB)
	if err != nil {
		return nil, fmt.Errorf("opening db: %s", err)
	}
	defer db.Close()
	db.ErrLog = app.ErrLog
	db.DebugLog = app.DebugLog
	db.StripHTML = app.Cfg.Corpus.Text
	db.Filter = *filt

	if !app.Cfg.Corpus.SQL {
		return app.search(db)
	}

	if db.StripHTML {
		app.InfoLog.Printf("counting in database - html will not be stripped\n")
	}
	dayCounts, err := db.CountWordByDay(app.Word, filt)
	if err != nil {
		return nil, err
	}
	app.InfoLog.Printf("%d matching days %s\n", len(dayCounts), filt.Describe())
	periodCounts, err := trend.Aggregate(dayCounts, app.Granularity)
	if err != nil {
		return nil, err
	}
	return app.Cal.Densify(periodCounts)
}

func (app *App) search(src corpus.Source) (trend.Series, error) {
	entries, err := src.Entries()
	if err != nil {
		return nil, err
	}
	app.InfoLog.Printf("loaded %d entries\n", len(entries))
	return app.Cal.Run(trend.Query{Word: app.Word, Granularity: app.Granularity}, entries)
}

// openOutput returns the writer to render to, and a func to close it.
func (app *App) openOutput(format render.Format, stdout io.Writer) (io.Writer, func() error, error) {
	name := app.Cfg.Output.File
	if name == "" || name == "-" {
		return stdout, func() error { return nil }, nil
	}
	if name == "auto" {
		var err error
		name, err = render.OutputName(app.Word, app.Granularity, format)
		if err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(name)
	if err != nil {
		return nil, nil, err
	}
	app.InfoLog.Printf("writing to %s\n", name)
	return f, f.Close, nil
}

// Render outputs the series in the chosen format. For html, a search
// error is shown on the page instead of the chart.
func (app *App) Render(w io.Writer, format render.Format, series trend.Series, searchErr error) error {
	switch format {
	case render.FormatBars:
		width := app.Cfg.Output.Width
		if width <= 0 {
			var err error
			width, err = detectTermWidth(w)
			if err != nil {
				app.DebugLog.Printf("term width: %s (using 80)\n", err)
				width = 80
			}
		}
		return render.Bars(w, series, render.BarOptions{Width: width, Colour: app.Cfg.Output.Colour})
	case render.FormatCSV:
		return render.CSV(w, series)
	case render.FormatTable:
		return render.Table(w, series)
	case render.FormatJSON:
		return render.JSON(w, series)
	case render.FormatHTML:
		return render.HTML(w, &render.Page{
			Word:        app.Word,
			Granularity: app.Granularity,
			Series:      series,
			Err:         searchErr,
		})
	}
	return fmt.Errorf("unknown format %q", format)
}
