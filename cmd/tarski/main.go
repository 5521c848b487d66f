// Command tarski loads an axiom bundle and opens a proof session over it,
// writing one transcript line per recorded fact to stdout.
//
// Without -bundle, the config's axiom.bundle_path is used, which defaults to
// the Tarski axiomatization shipped at axioms/tarski.yaml:
//
//	tarski -config config.yaml -debug
package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"tarski/internal/axiom"
	"tarski/internal/config"
	"tarski/internal/kernel"
	"tarski/internal/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tarski:", err)
		os.Exit(1)
	}
}

func run() error {
	configPath := flag.String("config", "", "path to a YAML config file (defaults are used if omitted)")
	bundlePath := flag.String("bundle", "", "path to an axiom bundle, overriding the config's axiom.bundle_path")
	debug := flag.Bool("debug", false, "enable debug-level structured logging")
	flag.Parse()

	cfg := config.DefaultConfig()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if *debug {
		cfg.Logging.DebugMode = true
		cfg.Logging.Level = "debug"
	}
	if *bundlePath != "" {
		cfg.Axiom.BundlePath = *bundlePath
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("validate config: %w", err)
	}

	base, err := logging.New(cfg.Logging.ToLoggingConfig())
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer base.Sync() //nolint:errcheck

	axiomLog := logging.For(base, logging.CategoryAxiom, cfg.Logging.ToLoggingConfig())
	axioms, _, err := axiom.Load(cfg.Axiom.BundlePath, axiomLog)
	if err != nil {
		return fmt.Errorf("load axioms: %w", err)
	}

	kernelLog := logging.For(base, logging.CategoryKernel, cfg.Logging.ToLoggingConfig())
	kernel.New(axioms, os.Stdout, kernelLog)
	kernelLog.Info("proof session opened", zap.Int("axioms", len(axioms)))

	return nil
}
