// Package config loads and validates converter configuration from YAML
// files, resolved by name or by explicit path.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-qbank2html/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
	ErrInvalidValue    = errors.New("invalid config value")
)

// Field length limits.
const (
	MaxTitleLength   = 200  // Document title
	MaxSuffixLength  = 50   // Output filename suffix
	MaxURLLength     = 2048 // Browser limit
	MaxStyleLength   = 100  // Highlight style or asset name
	MaxKeywordLength = 50   // Multi-answer keyword
)

// Recognized values for enumerated fields.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"

	HighlightModeCDN    = "cdn"
	HighlightModeInline = "inline"
)

// Config holds all configuration for quiz document generation.
type Config struct {
	Output    OutputConfig    `yaml:"output"`
	Document  DocumentConfig  `yaml:"document"`
	Highlight HighlightConfig `yaml:"highlight"`
	Quiz      QuizConfig      `yaml:"quiz"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// OutputConfig defines output destination options.
type OutputConfig struct {
	DefaultDir string `yaml:"defaultDir"` // Default output directory (empty = same as source)
	Suffix     string `yaml:"suffix"`     // Appended to the source stem (default: "_quiz")
}

// DocumentConfig defines document-level options.
type DocumentConfig struct {
	Title      string `yaml:"title"`      // Overrides the source title when set
	Theme      string `yaml:"theme"`      // "light" or "dark" initial theme
	MathJaxURL string `yaml:"mathJaxUrl"` // MathJax bundle location
}

// HighlightConfig defines code highlighting options.
type HighlightConfig struct {
	Mode      string   `yaml:"mode"`      // "cdn" loads highlight.js, "inline" pre-renders
	Style     string   `yaml:"style"`     // Chroma style name for inline mode
	CDNBase   string   `yaml:"cdnBase"`   // Base URL for highlight.js assets
	Languages []string `yaml:"languages"` // Extra highlight.js language bundles
}

// QuizConfig defines question interpretation options.
type QuizConfig struct {
	// MultiAnswerKeywords mark a type label as multi-answer when the
	// label contains any of them.
	MultiAnswerKeywords []string `yaml:"multiAnswerKeywords"`
}

// AssetsConfig defines asset loading options.
type AssetsConfig struct {
	BasePath string `yaml:"basePath"` // Empty = use embedded assets
}

// Validate checks enumerated values and field lengths.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("output.suffix", c.Output.Suffix, MaxSuffixLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.title", c.Document.Title, MaxTitleLength); err != nil {
		return err
	}
	if err := validateFieldLength("document.mathJaxUrl", c.Document.MathJaxURL, MaxURLLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.style", c.Highlight.Style, MaxStyleLength); err != nil {
		return err
	}
	if err := validateFieldLength("highlight.cdnBase", c.Highlight.CDNBase, MaxURLLength); err != nil {
		return err
	}

	if c.Document.Theme != "" {
		switch c.Document.Theme {
		case ThemeLight, ThemeDark:
		default:
			return fmt.Errorf("%w: document.theme %q (must be %s or %s)",
				ErrInvalidValue, c.Document.Theme, ThemeLight, ThemeDark)
		}
	}

	if c.Highlight.Mode != "" {
		switch c.Highlight.Mode {
		case HighlightModeCDN, HighlightModeInline:
		default:
			return fmt.Errorf("%w: highlight.mode %q (must be %s or %s)",
				ErrInvalidValue, c.Highlight.Mode, HighlightModeCDN, HighlightModeInline)
		}
	}

	for i, lang := range c.Highlight.Languages {
		if err := validateFieldLength(fmt.Sprintf("highlight.languages[%d]", i), lang, MaxStyleLength); err != nil {
			return err
		}
	}
	for i, kw := range c.Quiz.MultiAnswerKeywords {
		if err := validateFieldLength(fmt.Sprintf("quiz.multiAnswerKeywords[%d]", i), kw, MaxKeywordLength); err != nil {
			return err
		}
	}

	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the configuration used when no file is given.
// The CDN locations match what the generated document loads at runtime.
func DefaultConfig() *Config {
	return &Config{
		Output: OutputConfig{
			Suffix: "_quiz",
		},
		Document: DocumentConfig{
			Theme:      ThemeLight,
			MathJaxURL: "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js",
		},
		Highlight: HighlightConfig{
			Mode:      HighlightModeCDN,
			Style:     "github",
			CDNBase:   "https://cdn.jsdelivr.net/gh/highlightjs/cdn-release@11.9.0/build",
			Languages: []string{"python", "javascript", "java", "cpp", "sql"},
		},
		Quiz: QuizConfig{
			MultiAnswerKeywords: []string{"多选", "multi"},
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard locations.
// Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if isFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var cfg Config
	if err := yamlutil.UnmarshalStrict(data, &cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// isFilePath returns true if the string looks like a file path.
func isFilePath(s string) bool {
	return strings.ContainsAny(s, "/\\")
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, ~/.config/go-qbank2html/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2)

	for _, ext := range extensions {
		localPath := name + ext
		if fileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-qbank2html", name+ext)
			if fileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}

// fileExists returns true if the path exists and is a regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
