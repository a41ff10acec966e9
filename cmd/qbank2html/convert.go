package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	qbank2html "github.com/alnah/go-qbank2html"
	"github.com/alnah/go-qbank2html/internal/assets"
	"github.com/alnah/go-qbank2html/internal/config"
	"github.com/alnah/go-qbank2html/internal/fileutil"
	"github.com/alnah/go-qbank2html/internal/hints"
)

// Sentinel errors for CLI operations.
var (
	ErrNoInput          = errors.New("no input specified")
	ErrWriteDocument    = errors.New("failed to write document")
	ErrInvalidExtension = errors.New("file must have .md or .markdown extension")
)

// ConversionResult holds the outcome of a single conversion.
type ConversionResult struct {
	InputPath  string
	OutputPath string
	Stats      qbank2html.Stats
	Err        error
	Duration   time.Duration
}

// runConvert orchestrates the conversion process.
func runConvert(ctx context.Context, positionalArgs []string, flags *convertFlags, env *Environment) error {
	cfg, err := loadConfiguration(flags, env)
	if err != nil {
		return err
	}

	if len(positionalArgs) == 0 {
		return fmt.Errorf("%w: pass a markdown file or directory%s", ErrNoInput, hints.ForEmptySource())
	}
	inputPath := positionalArgs[0]

	files, err := discoverFiles(inputPath, flags.output, cfg)
	if err != nil {
		return fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return fmt.Errorf("no markdown files found in %s", inputPath)
	}

	svc, err := buildService(flags, env)
	if err != nil {
		return err
	}

	results := make([]ConversionResult, 0, len(files))
	for _, file := range files {
		results = append(results, convertOne(ctx, svc, file, cfg))
		if ctx.Err() != nil {
			break
		}
	}

	failed := printResults(results, flags.common.quiet, flags.common.verbose, env)
	if failed > 0 {
		return fmt.Errorf("%d conversion(s) failed", failed)
	}
	return nil
}

// loadConfiguration resolves the effective config:
// CLI flags > env vars > config file > defaults.
func loadConfiguration(flags *convertFlags, env *Environment) (*config.Config, error) {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	configName := flags.common.config
	if configName == "" {
		configName = envCfg.ConfigPath
	}

	cfg := &config.Config{}
	if configName != "" {
		loaded, err := config.LoadConfig(configName)
		if err != nil {
			if errors.Is(err, config.ErrConfigNotFound) {
				return nil, fmt.Errorf("loading config: %w%s", err, hints.ForConfigNotFound(nil))
			}
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)
	fillDefaults(cfg)

	if err := cfg.Validate(); err != nil {
		if errors.Is(err, config.ErrInvalidValue) && strings.Contains(err.Error(), "highlight.mode") {
			return nil, fmt.Errorf("%w%s", err, hints.ForHighlightMode())
		}
		return nil, err
	}
	return cfg, nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *convertFlags, cfg *config.Config) {
	if flags.document.title != "" {
		cfg.Document.Title = flags.document.title
	}
	if flags.document.theme != "" {
		cfg.Document.Theme = flags.document.theme
	}
	if flags.document.mathJaxURL != "" {
		cfg.Document.MathJaxURL = flags.document.mathJaxURL
	}
	if flags.highlight.mode != "" {
		cfg.Highlight.Mode = flags.highlight.mode
	}
	if flags.highlight.style != "" {
		cfg.Highlight.Style = flags.highlight.style
	}
	if flags.highlight.cdnBase != "" {
		cfg.Highlight.CDNBase = flags.highlight.cdnBase
	}
	if len(flags.highlight.languages) > 0 {
		cfg.Highlight.Languages = flags.highlight.languages
	}
	if len(flags.multiKeys) > 0 {
		cfg.Quiz.MultiAnswerKeywords = flags.multiKeys
	}
	if flags.assets.assetPath != "" {
		cfg.Assets.BasePath = flags.assets.assetPath
	}
}

// fillDefaults copies defaults into fields every earlier layer left empty.
func fillDefaults(cfg *config.Config) {
	def := config.DefaultConfig()

	if cfg.Output.Suffix == "" {
		cfg.Output.Suffix = def.Output.Suffix
	}
	if cfg.Document.Theme == "" {
		cfg.Document.Theme = def.Document.Theme
	}
	if cfg.Document.MathJaxURL == "" {
		cfg.Document.MathJaxURL = def.Document.MathJaxURL
	}
	if cfg.Highlight.Mode == "" {
		cfg.Highlight.Mode = def.Highlight.Mode
	}
	if cfg.Highlight.Style == "" {
		cfg.Highlight.Style = def.Highlight.Style
	}
	if cfg.Highlight.CDNBase == "" {
		cfg.Highlight.CDNBase = def.Highlight.CDNBase
	}
	if len(cfg.Highlight.Languages) == 0 {
		cfg.Highlight.Languages = def.Highlight.Languages
	}
	if len(cfg.Quiz.MultiAnswerKeywords) == 0 {
		cfg.Quiz.MultiAnswerKeywords = def.Quiz.MultiAnswerKeywords
	}
}

// buildService creates the conversion service, honoring a custom asset
// directory when configured.
func buildService(flags *convertFlags, env *Environment) (*qbank2html.Service, error) {
	loader := env.AssetLoader
	if flags.assets.assetPath != "" {
		fsLoader, err := assets.NewFilesystemLoader(flags.assets.assetPath)
		if err != nil {
			return nil, err
		}
		loader = fsLoader
	}

	opts := []qbank2html.Option{qbank2html.WithAssetLoader(loader)}
	if flags.assets.styleName != "" {
		opts = append(opts, qbank2html.WithStyle(flags.assets.styleName))
	}
	return qbank2html.New(opts...), nil
}

// convertOne converts a single source file and writes the document.
func convertOne(ctx context.Context, svc *qbank2html.Service, file FileToConvert, cfg *config.Config) ConversionResult {
	start := time.Now()
	result := ConversionResult{InputPath: file.InputPath, OutputPath: file.OutputPath}

	input := qbank2html.Input{
		Title:               cfg.Document.Title,
		Theme:               cfg.Document.Theme,
		MathJaxURL:          cfg.Document.MathJaxURL,
		HighlightMode:       cfg.Highlight.Mode,
		HighlightStyle:      cfg.Highlight.Style,
		HighlightCDNBase:    cfg.Highlight.CDNBase,
		HighlightLanguages:  cfg.Highlight.Languages,
		MultiAnswerKeywords: cfg.Quiz.MultiAnswerKeywords,
	}

	converted, err := svc.ConvertFile(ctx, file.InputPath, input)
	if err != nil {
		result.Err = err
		result.Duration = time.Since(start)
		return result
	}

	if err := fileutil.WriteFileAtomic(file.OutputPath, []byte(converted.Document)); err != nil {
		result.Err = fmt.Errorf("%w: %v%s", ErrWriteDocument, err, hints.ForOutputDirectory())
		result.Duration = time.Since(start)
		return result
	}

	result.Stats = converted.Stats
	result.Duration = time.Since(start)
	return result
}

// printResults reports per-file outcomes and returns the failure count.
func printResults(results []ConversionResult, quiet, verbose bool, env *Environment) int {
	failed := 0
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(env.Stderr, "✗ %s: %v\n", r.InputPath, r.Err)
			continue
		}
		if quiet {
			continue
		}
		fmt.Fprintf(env.Stdout, "✓ %s -> %s (%s)\n", r.InputPath, r.OutputPath, formatStats(r.Stats))
		if verbose {
			fmt.Fprintf(env.Stdout, "  took %s\n", r.Duration.Round(time.Millisecond))
		}
	}
	return failed
}

// formatStats renders "12 questions: 单选题 8, 多选题 4" in source order.
func formatStats(stats qbank2html.Stats) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%d questions", stats.TotalQuestions)
	if len(stats.TypeCounts) > 0 {
		parts := make([]string, 0, len(stats.TypeCounts))
		for _, tc := range stats.TypeCounts {
			parts = append(parts, fmt.Sprintf("%s %d", tc.Label, tc.Count))
		}
		sb.WriteString(": " + strings.Join(parts, ", "))
	}
	return sb.String()
}

// FileToConvert represents a single file to process.
type FileToConvert struct {
	InputPath  string
	OutputPath string
}

// discoverFiles finds all markdown files to convert. A file input must
// have a markdown extension; a directory input is scanned one level deep
// in name order.
func discoverFiles(inputPath, flagOutput string, cfg *config.Config) ([]FileToConvert, error) {
	outputDir := flagOutput
	explicitFile := strings.HasSuffix(flagOutput, ".html")
	if outputDir == "" {
		outputDir = cfg.Output.DefaultDir
	}

	if fileutil.FileExists(inputPath) {
		if err := validateMarkdownExtension(inputPath); err != nil {
			return nil, err
		}
		if explicitFile {
			return []FileToConvert{{InputPath: inputPath, OutputPath: flagOutput}}, nil
		}
		outPath, err := fileutil.DeriveOutputPath(inputPath, outputDir, cfg.Output.Suffix)
		if err != nil {
			return nil, err
		}
		return []FileToConvert{{InputPath: inputPath, OutputPath: outPath}}, nil
	}

	if !fileutil.DirExists(inputPath) {
		return nil, fmt.Errorf("%w: %s", ErrNoInput, inputPath)
	}

	matches, err := filepath.Glob(filepath.Join(inputPath, "*.md"))
	if err != nil {
		return nil, err
	}
	more, err := filepath.Glob(filepath.Join(inputPath, "*.markdown"))
	if err != nil {
		return nil, err
	}
	matches = append(matches, more...)
	sort.Strings(matches)

	files := make([]FileToConvert, 0, len(matches))
	for _, m := range matches {
		outPath, err := fileutil.DeriveOutputPath(m, outputDir, cfg.Output.Suffix)
		if err != nil {
			return nil, err
		}
		files = append(files, FileToConvert{InputPath: m, OutputPath: outPath})
	}
	return files, nil
}

// validateMarkdownExtension checks that the file has a .md or .markdown extension.
func validateMarkdownExtension(path string) error {
	ext := filepath.Ext(path)
	if ext != ".md" && ext != ".markdown" {
		return fmt.Errorf("%w: got %q", ErrInvalidExtension, ext)
	}
	return nil
}
