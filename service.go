package qbank2html

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-qbank2html/internal/assets"
	"github.com/alnah/go-qbank2html/internal/document"
	"github.com/alnah/go-qbank2html/internal/pipeline"
	"github.com/alnah/go-qbank2html/internal/qbank"
)

// Service orchestrates the quiz conversion pipeline: parse the source,
// render question content, and assemble the final document.
type Service struct {
	loader   assets.AssetLoader
	style    string
	template string
	script   string
}

// Option customizes a Service.
type Option func(*Service)

// WithAssetLoader replaces the embedded asset loader, typically with a
// filesystem loader for custom asset directories.
func WithAssetLoader(loader assets.AssetLoader) Option {
	return func(s *Service) { s.loader = loader }
}

// WithStyle selects a stylesheet by name.
func WithStyle(name string) Option {
	return func(s *Service) { s.style = name }
}

// WithTemplate selects a document template by name.
func WithTemplate(name string) Option {
	return func(s *Service) { s.template = name }
}

// WithScript selects a client runtime script by name.
func WithScript(name string) Option {
	return func(s *Service) { s.script = name }
}

// New creates a Service with embedded assets and default names.
func New(opts ...Option) *Service {
	s := &Service{
		loader:   assets.NewEmbeddedLoader(),
		style:    assets.DefaultStyle,
		template: assets.DefaultTemplate,
		script:   assets.DefaultScript,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert parses the source and returns the assembled document with its
// statistics. The context is checked between pipeline stages.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}

	css, err := s.loader.LoadStyle(s.style)
	if err != nil {
		return nil, fmt.Errorf("loading style: %w", err)
	}
	tmpl, err := s.loader.LoadTemplate(s.template)
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	runtime, err := s.loader.LoadScript(s.script)
	if err != nil {
		return nil, fmt.Errorf("loading script: %w", err)
	}

	bank := qbank.Parse(input.Source)
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	renderer := pipeline.NewRenderer(input.SourceDir)
	if input.HighlightMode == HighlightInline {
		renderer.Highlight = pipeline.HighlightInline
		renderer.HighlightStyle = input.HighlightStyle
		if renderer.HighlightStyle == "" {
			renderer.HighlightStyle = DefaultHighlightStyle
		}
	}

	keywords := input.MultiAnswerKeywords
	if len(keywords) == 0 {
		keywords = DefaultMultiAnswerKeywords()
	}

	assembler, err := document.NewAssembler(tmpl, keywords)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssembleDocument, err)
	}

	opts := document.Options{
		Title:      input.Title,
		CSS:        css,
		Runtime:    runtime,
		MathJaxURL: input.MathJaxURL,
	}
	if opts.MathJaxURL == "" {
		opts.MathJaxURL = DefaultMathJaxURL
	}
	if input.HighlightMode != HighlightInline {
		opts.HighlightCDN = true
		opts.HighlightCDNBase = input.HighlightCDNBase
		if opts.HighlightCDNBase == "" {
			opts.HighlightCDNBase = DefaultHighlightCDNBase
		}
		opts.HighlightLanguages = input.HighlightLanguages
		if len(opts.HighlightLanguages) == 0 {
			opts.HighlightLanguages = DefaultHighlightLanguages()
		}
	}
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	doc, err := assembler.Assemble(bank, renderer, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAssembleDocument, err)
	}

	if input.Theme == ThemeDark {
		doc = applyDarkTheme(doc)
	}

	return &Result{
		Document: doc,
		Stats:    buildStats(bank),
	}, nil
}

// ConvertFile reads a quiz markdown file and converts it. The file's
// directory becomes the base for relative image paths unless input sets
// SourceDir explicitly.
func (s *Service) ConvertFile(ctx context.Context, path string, input Input) (*Result, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- source path is user-provided by design
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadSource, err)
	}

	input.Source = string(data)
	if input.SourceDir == "" {
		input.SourceDir = filepath.Dir(path)
	}
	return s.Convert(ctx, input)
}

// applyDarkTheme opens the document in dark mode by marking the body.
// The runtime's theme toggle still works; a stored preference wins on
// the next visit.
func applyDarkTheme(doc string) string {
	return strings.Replace(doc, "<body>", `<body class="dark-mode">`, 1)
}

// buildStats counts questions per type label in encounter order.
func buildStats(bank *qbank.Bank) Stats {
	counts := bank.CountByType()
	labels := bank.TypeLabels()

	typeCounts := make([]TypeCount, 0, len(labels))
	for _, label := range labels {
		typeCounts = append(typeCounts, TypeCount{Label: label, Count: counts[label]})
	}

	return Stats{
		Title:          bank.Title,
		TotalQuestions: len(bank.Questions),
		TypeCounts:     typeCounts,
	}
}
