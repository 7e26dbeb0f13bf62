package config

import (
	"os"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Store   Store    `toml:"store"`
	Fetch   Fetch    `toml:"fetch"`
	Drive   Drive    `toml:"drive"`
	Cron    Cron     `toml:"cron"`
	Sources []string `toml:"sources"`

	// Rules points to a TOML classification ruleset. Empty means the
	// built-in one.
	Rules string `toml:"rules"`
}

type Store struct {
	// Kind is one of sheets, csv, bolt.
	Kind        string `toml:"kind"`
	Spreadsheet string `toml:"spreadsheet"`
	Credentials string `toml:"credentials"`
	Dir         string `toml:"dir"`
	Path        string `toml:"path"`
	DataTable   string `toml:"data_table"`
	LogTable    string `toml:"log_table"`
}

type Fetch struct {
	Workers        int `toml:"workers"`
	TimeoutSeconds int `toml:"timeout_seconds"`
	Retries        int `toml:"retries"`
	BackoffMillis  int `toml:"backoff_millis"`
}

type Drive struct {
	Folder string `toml:"folder"`
}

type Cron struct {
	Schedule string `toml:"schedule"`
}

// Load reads the configuration file, falling back to defaults when the file
// does not exist.
func Load(path string) (Config, error) {
	cfg := Config{
		Store: Store{
			Kind:      "csv",
			Dir:       "data",
			Path:      "data/precios.db",
			DataTable: "precios_supermercados",
			LogTable:  "ingestas_archivos",
		},
		Fetch: Fetch{
			Workers:        4,
			TimeoutSeconds: 20,
			Retries:        3,
			BackoffMillis:  500,
		},
		Cron: Cron{
			Schedule: "0 6 * * *",
		},
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
