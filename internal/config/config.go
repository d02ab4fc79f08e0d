package config

import (
	"fmt"
	"os"
)

// Mode is the analysis operation selected on the command line.
type Mode string

const (
	ModeSingle  Mode = "single"
	ModeCompare Mode = "compare"
	ModeAll     Mode = "all"
	ModeNone    Mode = "none"
)

// Config captures the analyzer's runtime options.
type Config struct {
	ResultsDir string   `mapstructure:"results_dir"`
	Test       string   `mapstructure:"test"`
	Compare    []string `mapstructure:"compare"`
	All        bool     `mapstructure:"all"`
	Thresholds []string `mapstructure:"thresholds"`
	HTMLOutput bool     `mapstructure:"html_output"`
	JSONOutput bool     `mapstructure:"json_output"`
	ConfigFile string   `mapstructure:"-"`
}

// Mode reports which operation the flags selected. --test wins over
// --compare, which wins over --all.
func (c *Config) Mode() Mode {
	switch {
	case c.Test != "":
		return ModeSingle
	case len(c.Compare) > 0:
		return ModeCompare
	case c.All:
		return ModeAll
	default:
		return ModeNone
	}
}

// Validate checks that the configuration is runnable. A missing results
// directory is fatal at this level; missing individual result files are not.
func (c *Config) Validate() error {
	if c.ResultsDir == "" {
		return fmt.Errorf("results directory is required")
	}
	info, err := os.Stat(c.ResultsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("results directory not found: %s", c.ResultsDir)
		}
		return fmt.Errorf("results directory %s: %w", c.ResultsDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("results path is not a directory: %s", c.ResultsDir)
	}
	return nil
}
