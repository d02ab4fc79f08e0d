package main

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/torosent/k6report/internal/config"
	"github.com/torosent/k6report/internal/threshold"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	loader := config.NewLoader()
	cfg, err := loader.Load(args)
	if err != nil {
		if errors.Is(err, config.ErrHelpRequested) {
			return nil
		}
		return err
	}
	if cfg.Mode() == config.ModeNone {
		config.PrintUsage(os.Stdout)
		return nil
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	thresholds, err := threshold.ParseMultiple(cfg.Thresholds)
	if err != nil {
		return err
	}

	a := &analyzer{
		cfg:        cfg,
		thresholds: thresholds,
		stdout:     os.Stdout,
		stderr:     os.Stderr,
	}

	switch cfg.Mode() {
	case config.ModeSingle:
		a.analyzeTest(cfg.Test)
	case config.ModeCompare:
		a.compareTests(cfg.Compare)
	case config.ModeAll:
		names, err := discoverTests(cfg.ResultsDir)
		if err != nil {
			return err
		}
		if len(names) == 0 {
			fmt.Fprintln(os.Stdout, "No test result files found")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Found tests: %s\n", strings.Join(names, ", "))
		for _, name := range names {
			a.analyzeTest(name)
		}
		if len(names) > 1 {
			a.compareTests(names)
		}
	}

	if a.failedThresholds > 0 {
		return fmt.Errorf("%d threshold(s) failed", a.failedThresholds)
	}
	return nil
}

// discoverTests lists every test with a *_results.json file in dir, sorted
// by name for stable batch order.
func discoverTests(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading results directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if name, ok := strings.CutSuffix(e.Name(), "_results.json"); ok && name != "" {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names, nil
}
