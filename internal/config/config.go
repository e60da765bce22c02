// Package config loads toolkit settings from a toml file, falling
// back to built-in defaults when the file is absent.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"comchemkit/internal/thermo"
)

// DefaultFile is searched in the working directory when no explicit
// path is given.
const DefaultFile = ".cck.toml"

// Config holds the caller-level execution settings consumed by the
// commands. The core extraction code never reads these; they are
// passed down as plain parameters.
type Config struct {
	Program       string
	Extension     string
	Temperature   float64
	Concentration float64
	Workers       int
	MaxFileSizeMB int64
	SortColumn    int
	Quiet         bool
}

func defaults() Config {
	return Config{
		Program:       "gaussian",
		Extension:     "log",
		Temperature:   thermo.DefaultTemperature,
		Concentration: thermo.DefaultConcentration,
		Workers:       4,
		MaxFileSizeMB: 100,
		SortColumn:    2,
	}
}

// Load reads filename and merges it over the defaults. A missing file
// is not an error: the defaults apply unchanged. A file that exists
// but does not parse is an error worth surfacing.
func Load(filename string) (Config, error) {
	conf := defaults()
	b, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return conf, nil
		}
		return conf, fmt.Errorf("config %s: %w", filename, err)
	}
	if err := toml.Unmarshal(b, &conf); err != nil {
		return defaults(), fmt.Errorf("config %s: %w", filename, err)
	}
	return conf, nil
}
