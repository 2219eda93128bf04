package main

import (
	"context"
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/clarktrimble/sabot"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"

	"searchbar/store/duck"
	"searchbar/util"
)

const (
	cfgPath = "searchbar.yaml"
	logMode = 0644
)

var version string

func main() {

	app := &cli.App{
		Name:    "searchbar",
		Usage:   "filter newline delimited json records by one field at a time",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   cfgPath,
				Usage:   "yaml config file",
			},
			&cli.StringFlag{
				Name:    "records",
				Aliases: []string{"r"},
				Usage:   "ndjson records file, overrides config",
			},
			&cli.StringFlag{
				Name:    "log",
				Aliases: []string{"l"},
				Usage:   "log file, overrides config",
			},
			&cli.BoolFlag{
				Name:  "lazy",
				Usage: "deliver results as a lazy producer",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			{
				Name:   "sample",
				Usage:  "write a sample config unless one exists",
				Action: sample,
			},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %+v\n", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) (err error) {

	cfg, err := loadConfig(c)
	if err != nil {
		return
	}

	logFile := util.OpenLog(cfg.LogFile, logMode)
	defer util.CloseLog(logFile)

	ctx := context.Background()
	lgr := &sabot.Sabot{Writer: logFile}

	dk, err := duck.New(lgr)
	if err != nil {
		return
	}
	defer dk.Close()

	err = dk.Load(cfg.Records)
	if err != nil {
		return
	}

	records, err := dk.Records()
	if err != nil {
		return
	}
	lgr.Info(ctx, "starting", "records", dk.Name(), "count", len(records), "filters", len(cfg.Filters))

	_, err = tea.NewProgram(newHost(ctx, cfg, dk.Name(), records, lgr)).Run()
	if err != nil {
		err = errors.Wrapf(err, "failed to run program")
		return
	}

	lgr.Info(ctx, "stopping")
	return
}

func sample(c *cli.Context) (err error) {

	path := c.String("config")

	written, err := util.SampleConfig(sampleConfig, path, logMode)
	if err != nil {
		return
	}

	if written {
		fmt.Printf("wrote sample config to %s\n", path)
		return
	}
	fmt.Printf("%s already exists, leaving it alone\n", path)
	return
}
