package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/preciossuperpy/preciossuperpy/ingest"
)

func init() {
	RootCmd.AddCommand(&IngestCommand)
}

var IngestCommand = cobra.Command{
	Use:   "ingest",
	Short: "Import the CSV files of the Drive folder into the historical table",
	Long:  "Import the CSV files of the Drive folder into the historical table",
	Run: func(cmd *cobra.Command, args []string) {
		if cfg.Drive.Folder == "" {
			logger.Fatal("no drive folder configured")
		}

		lister, err := ingest.NewDriveLister(context.Background(), cfg.Store.Credentials, cfg.Drive.Folder)
		if err != nil {
			logger.Fatal("could not open drive folder:", err)
		}

		s, clean, err := newStore()
		defer clean()
		if err != nil {
			logger.Fatal(err)
		}

		ingestor := ingest.Ingestor{
			Files:     lister,
			Store:     s,
			Log:       logger,
			DataTable: cfg.Store.DataTable,
			LogTable:  cfg.Store.LogTable,
		}

		n, err := ingestor.Run()
		if err != nil {
			logger.Fatal(err)
		}
		logger.Printf("%d files imported", n)
	},
}
