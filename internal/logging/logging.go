// Package logging builds the zap.Logger instances used across the proof
// kernel, gated by a config-driven debug mode and per-category toggles —
// the same shape the rest of the pack uses for its own file-based category
// logger, rebuilt here on top of zap instead of a hand-rolled log.Logger.
package logging

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Category names a logging concern. Each Engine subsystem logs under its
// own category so a Config can silence one without silencing the rest.
type Category string

const (
	CategoryKernel     Category = "kernel"
	CategoryFormula    Category = "formula"
	CategoryAxiom      Category = "axiom"
	CategoryTranscript Category = "transcript"
)

// Config controls whether and how logging happens. It mirrors the relevant
// fields of config.Config's Logging section without importing it, so this
// package stays free of a dependency on internal/config.
type Config struct {
	DebugMode  bool
	Level      string // debug, info, warn, error
	Format     string // console, json
	Categories map[string]bool
}

// New builds the process-wide logger for cfg. When DebugMode is false it
// returns a no-op logger: every call site can log unconditionally and pay
// nothing for it in production.
func New(cfg Config) (*zap.Logger, error) {
	if !cfg.DebugMode {
		return zap.NewNop(), nil
	}

	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(parseLevel(cfg.Level))
	zcfg.Encoding = "json"
	if cfg.Format == "console" {
		zcfg.Encoding = "console"
		zcfg.EncoderConfig = zap.NewDevelopmentEncoderConfig()
	}
	return zcfg.Build()
}

func parseLevel(level string) zapcore.Level {
	switch level {
	case "debug":
		return zapcore.DebugLevel
	case "warn", "warning":
		return zapcore.WarnLevel
	case "error":
		return zapcore.ErrorLevel
	default:
		return zapcore.InfoLevel
	}
}

// For returns the logger a component should use for category, scoped under
// base with Named. If cfg explicitly disables category, For returns a no-op
// logger regardless of base — a category absent from cfg.Categories is
// enabled by default, matching the all-enabled-unless-named-off behaviour
// the rest of the pack's categorized logger uses.
func For(base *zap.Logger, category Category, cfg Config) *zap.Logger {
	if cfg.Categories != nil {
		if enabled, ok := cfg.Categories[string(category)]; ok && !enabled {
			return zap.NewNop()
		}
	}
	return base.Named(string(category))
}
