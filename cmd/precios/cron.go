package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/preciossuperpy/preciossuperpy/log"
)

func init() {
	RootCmd.AddCommand(&CronCommand)
}

var CronCommand = cobra.Command{
	Use:   "cron [source...]",
	Short: "Scrape on a schedule until interrupted",
	Long:  "Scrape on a schedule until interrupted",
	Run: func(cmd *cobra.Command, args []string) {
		c := cron.New()
		_, err := c.AddFunc(cfg.Cron.Schedule, func() {
			if err := scrape(args); err != nil {
				logger.Error("scrape failed:", err)
			}
		})
		if err != nil {
			logger.Fatal("invalid schedule:", err)
		}

		logger.WithFields(log.Fields{"schedule": cfg.Cron.Schedule}).Print("scheduler started")
		c.Start()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		ctx := c.Stop()
		<-ctx.Done()
	},
}
