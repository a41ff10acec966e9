package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alnah/go-qbank2html/internal/config"
)

// envConfig holds configuration from environment variables.
// Provides CI/CD-friendly overrides without requiring YAML files.
type envConfig struct {
	ConfigPath     string // QBANK_CONFIG: config file path
	OutputDir      string // QBANK_OUTPUT_DIR: default output directory
	Theme          string // QBANK_THEME: light, dark
	HighlightMode  string // QBANK_HIGHLIGHT: cdn, inline
	HighlightStyle string // QBANK_HIGHLIGHT_STYLE: style for inline mode
}

// knownEnvVars lists valid QBANK_* environment variables.
// Used to detect typos and warn users about unknown variables.
var knownEnvVars = map[string]bool{
	"QBANK_CONFIG":          true,
	"QBANK_OUTPUT_DIR":      true,
	"QBANK_THEME":           true,
	"QBANK_HIGHLIGHT":       true,
	"QBANK_HIGHLIGHT_STYLE": true,
}

// loadEnvConfig reads configuration from environment variables.
func loadEnvConfig() *envConfig {
	return &envConfig{
		ConfigPath:     os.Getenv("QBANK_CONFIG"),
		OutputDir:      os.Getenv("QBANK_OUTPUT_DIR"),
		Theme:          os.Getenv("QBANK_THEME"),
		HighlightMode:  os.Getenv("QBANK_HIGHLIGHT"),
		HighlightStyle: os.Getenv("QBANK_HIGHLIGHT_STYLE"),
	}
}

// warnUnknownEnvVars logs warnings for unrecognized QBANK_* variables.
// Helps catch typos like QBANK_TEME instead of QBANK_THEME.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if strings.HasPrefix(env, "QBANK_") {
			name := strings.SplitN(env, "=", 2)[0]
			if !knownEnvVars[name] {
				fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
			}
		}
	}
}

// applyEnvConfig applies environment variable values to config.
// Only sets values the config file left empty, so precedence is:
// CLI flags > env vars > config file > defaults
// (CLI flags are applied later via mergeFlags).
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" && cfg.Output.DefaultDir == "" {
		cfg.Output.DefaultDir = env.OutputDir
	}
	if env.Theme != "" && cfg.Document.Theme == "" {
		cfg.Document.Theme = env.Theme
	}
	if env.HighlightMode != "" && cfg.Highlight.Mode == "" {
		cfg.Highlight.Mode = env.HighlightMode
	}
	if env.HighlightStyle != "" && cfg.Highlight.Style == "" {
		cfg.Highlight.Style = env.HighlightStyle
	}
}
