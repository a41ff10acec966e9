package qbank2html

import "fmt"

// Theme constants for the document's initial appearance.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Highlight mode constants.
const (
	// HighlightCDN emits escaped code blocks with language classes and
	// loads highlight.js from a CDN at view time.
	HighlightCDN = "cdn"
	// HighlightInline pre-renders code blocks with inline styles so the
	// document needs no network access.
	HighlightInline = "inline"
)

// Defaults applied when the corresponding Input field is empty.
const (
	DefaultMathJaxURL       = "https://cdn.jsdelivr.net/npm/mathjax@3/es5/tex-mml-chtml.js"
	DefaultHighlightCDNBase = "https://cdn.jsdelivr.net/gh/highlightjs/cdn-release@11.9.0/build"
	DefaultHighlightStyle   = "github"
)

// DefaultHighlightLanguages lists the highlight.js language bundles loaded
// in CDN mode when none are configured.
func DefaultHighlightLanguages() []string {
	return []string{"python", "javascript", "java", "cpp", "sql"}
}

// DefaultMultiAnswerKeywords lists the type-label substrings that mark a
// question as multi-answer when none are configured.
func DefaultMultiAnswerKeywords() []string {
	return []string{"多选", "multi"}
}

// Input contains conversion parameters.
type Input struct {
	Source    string // Quiz markdown content (required)
	SourceDir string // Base directory for relative image paths (optional)

	Title string // Overrides the source title (optional)
	Theme string // "light" or "dark" (optional, default light)

	HighlightMode      string   // "cdn" or "inline" (optional, default cdn)
	HighlightStyle     string   // Chroma style for inline mode (optional)
	HighlightCDNBase   string   // Base URL for highlight.js assets (optional)
	HighlightLanguages []string // Extra highlight.js language bundles (optional)

	MathJaxURL          string   // MathJax bundle location (optional)
	MultiAnswerKeywords []string // Type-label substrings marking multi-answer questions (optional)
}

// validate checks enumerated fields. Empty values mean defaults.
func (in *Input) validate() error {
	if in.Source == "" {
		return ErrEmptySource
	}
	switch in.Theme {
	case "", ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidTheme, in.Theme)
	}
	switch in.HighlightMode {
	case "", HighlightCDN, HighlightInline:
	default:
		return fmt.Errorf("%w: %q", ErrInvalidHighlightMode, in.HighlightMode)
	}
	return nil
}

// TypeCount pairs a question type label with its question count.
type TypeCount struct {
	Label string
	Count int
}

// Stats summarizes a converted question bank.
type Stats struct {
	Title          string
	TotalQuestions int
	// TypeCounts is ordered by first appearance in the source.
	TypeCounts []TypeCount
}

// Result contains the assembled document and its statistics.
type Result struct {
	Document string
	Stats    Stats
}
