// Package pipeline implements the inline-markup renderer: one markdown
// string in, one HTML fragment out. The pipeline runs in a fixed order and
// parks fenced code and math spans behind placeholders so later stages
// cannot re-match content produced by earlier ones.
package pipeline

import (
	"fmt"
	"html"
	"regexp"
	"strings"
)

// HighlightMode selects how fenced code blocks are emitted.
type HighlightMode string

const (
	// HighlightCDN escapes code and tags it with a language-* class for a
	// client-side highlighter loaded by reference.
	HighlightCDN HighlightMode = "cdn"

	// HighlightInline pre-renders code with inline styles so the document
	// needs no external highlighting assets.
	HighlightInline HighlightMode = "inline"
)

// Placeholder delimiters use Unicode Private Use Area characters so they
// survive every later stage unchanged and never collide with source text.
const (
	codeholderStart = "\ue000"
	codeholderEnd   = "\ue001"
	mathholderStart = "\ue002"
	mathholderEnd   = "\ue003"
)

// Precompiled patterns for the inline grammar.
var (
	// Fenced code block with optional language tag
	fencedCode = regexp.MustCompile("(?s)```(\\w*)\\n(.*?)```")

	// Block math must be matched before inline math so a $$...$$ span is
	// not misread as two inline spans.
	blockMath  = regexp.MustCompile(`(?s)\$\$\s*\n?(.*?)\n?\s*\$\$`)
	inlineMath = regexp.MustCompile(`\$([^$\n]+)\$`)

	// Image reference ![alt](src)
	imageRef = regexp.MustCompile(`!\[([^\]]*)\]\(([^)]+)\)`)

	// Inline emphasis and code. Bold runs before italic so ** is not
	// over-matched as nested single markers.
	boldStars      = regexp.MustCompile(`\*\*(.+?)\*\*`)
	boldUnders     = regexp.MustCompile(`__(.+?)__`)
	italicStar     = regexp.MustCompile(`\*(.+?)\*`)
	italicUnder    = regexp.MustCompile(`_(.+?)_`)
	inlineCode     = regexp.MustCompile("`([^`]+)`")
	emptyParagraph = regexp.MustCompile(`<p>\s*</p>`)
)

// codeBlock is a parked fenced code block awaiting restoration.
type codeBlock struct {
	lang string
	body string
}

// Renderer transforms one inline markdown string into one HTML fragment.
// The zero value renders with CDN highlighting and no image directory.
type Renderer struct {
	// SourceDir is the base directory for resolving relative image paths.
	// Empty means the current working directory.
	SourceDir string

	// Highlight selects the fenced-code emission mode.
	Highlight HighlightMode

	// HighlightStyle names the color style for HighlightInline.
	HighlightStyle string
}

// NewRenderer creates a Renderer resolving relative images against sourceDir.
func NewRenderer(sourceDir string) *Renderer {
	return &Renderer{SourceDir: sourceDir, Highlight: HighlightCDN}
}

// Render runs the full pipeline. It never fails: unresolvable images become
// visible inline error markers, and highlighting errors fall back to
// escaped output.
func (r *Renderer) Render(text string) string {
	if text == "" {
		return ""
	}

	// Stage 1: park fenced code blocks.
	var codes []codeBlock
	text = fencedCode.ReplaceAllStringFunc(text, func(m string) string {
		sub := fencedCode.FindStringSubmatch(m)
		codes = append(codes, codeBlock{lang: sub[1], body: sub[2]})
		return fmt.Sprintf("%s%d%s", codeholderStart, len(codes)-1, codeholderEnd)
	})

	// Stage 2: park math spans, block form first.
	var maths []string // original spans, delimiters included
	saveMath := func(m string) string {
		maths = append(maths, m)
		return fmt.Sprintf("%s%d%s", mathholderStart, len(maths)-1, mathholderEnd)
	}
	text = blockMath.ReplaceAllStringFunc(text, saveMath)
	text = inlineMath.ReplaceAllStringFunc(text, saveMath)

	// Stage 3: resolve image references.
	text = imageRef.ReplaceAllStringFunc(text, func(m string) string {
		sub := imageRef.FindStringSubmatch(m)
		return r.embedImage(sub[1], sub[2])
	})

	// Stage 4: emphasis and inline code.
	text = boldStars.ReplaceAllString(text, "<strong>$1</strong>")
	text = boldUnders.ReplaceAllString(text, "<strong>$1</strong>")
	text = italicStar.ReplaceAllString(text, "<em>$1</em>")
	text = italicUnder.ReplaceAllString(text, "<em>$1</em>")
	text = inlineCode.ReplaceAllString(text, "<code>$1</code>")

	// Stage 5: paragraphs and line breaks.
	text = strings.ReplaceAll(text, "\n\n", "</p><p>")
	text = strings.ReplaceAll(text, "\n", "<br>")
	text = "<p>" + text + "</p>"
	text = emptyParagraph.ReplaceAllString(text, "")

	// Stage 6: restore math, keeping the original delimiters for the
	// client-side typesetter.
	for i, span := range maths {
		placeholder := fmt.Sprintf("%s%d%s", mathholderStart, i, mathholderEnd)
		var wrapped string
		if strings.HasPrefix(span, "$$") {
			wrapped = `<div class="math-block">` + span + `</div>`
		} else {
			wrapped = `<span class="math-inline">` + span + `</span>`
		}
		text = strings.ReplaceAll(text, placeholder, wrapped)
	}

	// Stage 7: restore code blocks.
	for i, cb := range codes {
		placeholder := fmt.Sprintf("%s%d%s", codeholderStart, i, codeholderEnd)
		text = strings.ReplaceAll(text, placeholder, r.renderCode(cb))
	}

	return text
}

// renderCode emits one fenced code block according to the highlight mode.
func (r *Renderer) renderCode(cb codeBlock) string {
	if r.Highlight == HighlightInline {
		if highlighted, err := highlightInline(cb.body, cb.lang, r.HighlightStyle); err == nil {
			return highlighted
		}
		// Fall through to the escaped form on highlighting errors.
	}
	return `<pre><code class="language-` + cb.lang + `">` + EscapeHTML(cb.body) + `</code></pre>`
}

// EscapeHTML escapes the five standard HTML special characters. All free
// text destined for attribute or body contexts goes through this.
func EscapeHTML(s string) string {
	return html.EscapeString(s)
}
