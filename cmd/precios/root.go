package main

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/spf13/cobra"

	"github.com/preciossuperpy/preciossuperpy"
	"github.com/preciossuperpy/preciossuperpy/config"
	"github.com/preciossuperpy/preciossuperpy/fetch"
	"github.com/preciossuperpy/preciossuperpy/log"
	"github.com/preciossuperpy/preciossuperpy/sources"
	"github.com/preciossuperpy/preciossuperpy/store"
	boltstore "github.com/preciossuperpy/preciossuperpy/store/bolt"
)

var (
	// flags
	env        string
	configFile string

	logger log.Logger
	cfg    config.Config
)

func init() {
	RootCmd.PersistentFlags().StringVar(&env, "env", "dev", "environment")
	RootCmd.PersistentFlags().StringVar(&configFile, "config", "", "configuration file")
}

var RootCmd = cobra.Command{
	Use:   "precios",
	Short: "Collect and consolidate Paraguayan supermarket prices",
	Long:  "Collect and consolidate Paraguayan supermarket prices",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logger = log.New(env)

		if configFile == "" {
			configFile = path.Join("configuration", fmt.Sprintf("config.%s.toml", env))
		}

		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			logger.Fatal("could not read configuration file:", err)
		}
	},
	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

func newStore() (store.TableStore, func(), error) {
	switch cfg.Store.Kind {
	case "csv":
		return &store.CSVStore{Dir: cfg.Store.Dir}, func() {}, nil
	case "bolt":
		driver := &boltstore.Driver{}
		if err := driver.Open(cfg.Store.Path); err != nil {
			return nil, func() {}, err
		}
		return &boltstore.TableStore{Driver: driver}, func() { driver.Close() }, nil
	case "sheets":
		s, err := store.NewSheetsStore(context.Background(), cfg.Store.Credentials, cfg.Store.Spreadsheet)
		return s, func() {}, err
	}
	return nil, func() {}, fmt.Errorf("unknown store kind %q", cfg.Store.Kind)
}

func newClassifier() (*preciossuperpy.Classifier, error) {
	ruleset := preciossuperpy.DefaultRuleset()
	if cfg.Rules != "" {
		var err error
		ruleset, err = preciossuperpy.LoadRuleset(cfg.Rules)
		if err != nil {
			return nil, err
		}
	}
	return preciossuperpy.NewClassifier(ruleset), nil
}

// resolveSources builds the selected sources: the positional arguments, the
// configured subset, or every registered source.
func resolveSources(args []string) ([]sources.Source, error) {
	classifier, err := newClassifier()
	if err != nil {
		return nil, err
	}

	opts := sources.Options{
		Client: fetch.NewClient(
			time.Duration(cfg.Fetch.TimeoutSeconds)*time.Second,
			fetch.RetryPolicy{
				Retries: cfg.Fetch.Retries,
				Backoff: time.Duration(cfg.Fetch.BackoffMillis) * time.Millisecond,
			},
		),
		Classifier: classifier,
	}

	names := args
	if len(names) == 0 {
		names = cfg.Sources
	}
	if len(names) == 0 {
		names = sources.Names()
	}

	srcs := make([]sources.Source, 0, len(names))
	for _, name := range names {
		src, ok := sources.New(name, opts)
		if !ok {
			return nil, fmt.Errorf("unknown source %q (available: %v)", name, sources.Names())
		}
		srcs = append(srcs, src)
	}
	return srcs, nil
}
