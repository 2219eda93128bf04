package main

import (
	_ "embed"

	"github.com/urfave/cli/v2"

	"searchbar"
	nt "searchbar/entity"
	"searchbar/util"
)

//go:embed sample.yaml
var sampleConfig []byte

// Config is the demo host configuration.
type Config struct {
	Records string           `yaml:"records" default:"records.ndjson"`
	LogFile string           `yaml:"log_file" default:"searchbar.log"`
	Search  searchbar.Config `yaml:"search"`
	Filters []nt.Descriptor  `yaml:"filters"`
	Columns []nt.Column      `yaml:"columns"`
}

// SetDefaults shows a column per filter when none are configured, called by
// creasty/defaults once the tagged defaults are in.
func (cfg *Config) SetDefaults() {

	if len(cfg.Columns) > 0 {
		return
	}

	for _, dsc := range cfg.Filters {
		cfg.Columns = append(cfg.Columns, nt.Column{Path: dsc.Path, Title: dsc.Label, Width: 20})
	}
}

// loadConfig reads the config file, applies defaults and then flag overrides.
func loadConfig(c *cli.Context) (cfg Config, err error) {

	err = util.LoadConfig(&cfg, c.String("config"))
	if err != nil {
		return
	}

	if c.IsSet("records") {
		cfg.Records = c.String("records")
	}
	if c.IsSet("log") {
		cfg.LogFile = c.String("log")
	}
	if c.Bool("lazy") {
		cfg.Search.ResultMode = searchbar.Lazy
	}

	return
}
