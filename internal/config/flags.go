package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newFlagCommand creates a cobra command with all flags configured.
func newFlagCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "k6report <results-dir>",
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	cmd.SetOut(os.Stdout)
	configureFlags(cmd.Flags())
	return cmd
}

// configureFlags sets up all CLI flags on the provided flag set.
func configureFlags(flags *pflag.FlagSet) {
	// Mode selection flags
	flags.StringP("test", "t", "", "Analyze a single test by name")
	flags.StringSlice("compare", nil, "Tests to compare (repeatable or comma separated)")
	flags.BoolP("all", "a", false, "Analyze every *_results.json file in the results directory")

	// Output flags
	flags.StringSlice("threshold", nil, "Performance thresholds (repeatable, e.g., 'http_req_duration:p95 < 500')")
	flags.Bool("html-output", false, "Also write an HTML report per analyzed test")
	flags.Bool("json-output", false, "Print per-test stats as JSON instead of console summaries")
	flags.String("config", "", "Path to configuration file (JSON or YAML)")
}

// displayHelp prints the help message for a command.
func displayHelp(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Usage: %s\n\nAnalyze k6 load test results.\n\nFlags:\n", cmd.UseLine())
	fs := cmd.Flags()
	fs.SetOutput(out)
	fs.PrintDefaults()
}

// PrintUsage writes the CLI usage help to w. The caller in cmd uses it when
// a results directory is given without any mode flag.
func PrintUsage(w io.Writer) {
	cmd := newFlagCommand()
	cmd.SetOut(w)
	displayHelp(cmd)
}

// applyFlagOverrides applies command-line flag values to the config,
// overriding values from the config file.
func applyFlagOverrides(cfg *Config, fs *pflag.FlagSet) error {
	if fs.Changed("test") {
		val, err := fs.GetString("test")
		if err != nil {
			return err
		}
		cfg.Test = strings.TrimSpace(val)
	}
	if fs.Changed("compare") {
		val, err := fs.GetStringSlice("compare")
		if err != nil {
			return err
		}
		cfg.Compare = trimEach(val)
	}
	if fs.Changed("all") {
		val, err := fs.GetBool("all")
		if err != nil {
			return err
		}
		cfg.All = val
	}
	if fs.Changed("threshold") {
		val, err := fs.GetStringSlice("threshold")
		if err != nil {
			return err
		}
		cfg.Thresholds = val
	}
	if fs.Changed("html-output") {
		val, err := fs.GetBool("html-output")
		if err != nil {
			return err
		}
		cfg.HTMLOutput = val
	}
	if fs.Changed("json-output") {
		val, err := fs.GetBool("json-output")
		if err != nil {
			return err
		}
		cfg.JSONOutput = val
	}
	return nil
}

func trimEach(values []string) []string {
	result := make([]string, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			result = append(result, v)
		}
	}
	return result
}
