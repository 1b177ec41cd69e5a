package main

import (
	"gopkg.in/gcfg.v1"
)

// Config is the on-disk configuration, eg:
//
//	[corpus]
//	file = data/newssim_db.js
//	db = /var/lib/scrapeomat/articles.db
//	driver = sqlite3
//	text = true
//	slurp = http://localhost:12345/ukarticles
//
//	[output]
//	granularity = month
//	format = bars
//	width = 0
//	colour = true
//	leapyears = false
type Config struct {
	Corpus struct {
		File   []string
		DB     string
		Driver string
		Text   bool
		SQL    bool
		Slurp  string
	}
	Output struct {
		Granularity string
		Format      string
		File        string
		Width       int
		Colour      bool
		LeapYears   bool
	}
}

func defaultConfig() *Config {
	cfg := &Config{}
	cfg.Output.Granularity = "month"
	cfg.Output.Format = "bars"
	return cfg
}

// loadConfig reads a config file over the defaults.
// An empty filename just gives the defaults.
func loadConfig(filename string) (*Config, error) {
	cfg := defaultConfig()
	if filename == "" {
		return cfg, nil
	}
	err := gcfg.ReadFileInto(cfg, filename)
	if err != nil {
		return nil, err
	}
	return cfg, nil
}
