package main

import (
	"github.com/spf13/cobra"

	"github.com/preciossuperpy/preciossuperpy"
	"github.com/preciossuperpy/preciossuperpy/fetch"
	"github.com/preciossuperpy/preciossuperpy/log"
)

func init() {
	RootCmd.AddCommand(&ScrapeCommand)
}

var ScrapeCommand = cobra.Command{
	Use:   "scrape [source...]",
	Short: "Fetch current prices and merge them into the historical table",
	Long:  "Fetch current prices and merge them into the historical table",
	Run: func(cmd *cobra.Command, args []string) {
		if err := scrape(args); err != nil {
			logger.Fatal(err)
		}
	},
}

func scrape(args []string) error {
	srcs, err := resolveSources(args)
	if err != nil {
		return err
	}

	s, clean, err := newStore()
	defer clean()
	if err != nil {
		return err
	}

	runner := fetch.Runner{Workers: cfg.Fetch.Workers, Log: logger}
	records, counts, err := runner.RunAll(srcs)
	if err != nil {
		return err
	}
	for name, n := range counts {
		logger.WithFields(log.Fields{"source": name, "records": n}).Print("source done")
	}

	table := cfg.Store.DataTable
	history, err := s.Read(table)
	if err != nil {
		return err
	}

	consolidated := preciossuperpy.Consolidate(history, preciossuperpy.NewTable(records))
	if err := s.Write(table, consolidated); err != nil {
		return err
	}

	logger.Printf("%d rows written to %s", len(consolidated.Rows), table)
	return nil
}
