// Package document assembles rendered question banks into a single
// self-contained HTML file. Every asset the page needs at runtime is
// inlined so the output works offline from a file:// URL.
package document

import (
	"errors"
	"fmt"
	"html"
	"html/template"
	"strconv"
	"strings"

	"github.com/alnah/go-qbank2html/internal/pipeline"
	"github.com/alnah/go-qbank2html/internal/qbank"
)

// Sentinel errors for document assembly.
var (
	ErrParseTemplate   = errors.New("failed to parse document template")
	ErrExecuteTemplate = errors.New("failed to execute document template")
)

// DefaultTitle is used when the source has no title heading and no
// override is configured.
const DefaultTitle = "题库"

// Options configures a single assembly run.
type Options struct {
	// Title overrides the bank title when non-empty.
	Title string
	// CSS is the stylesheet inlined into the document head.
	CSS string
	// Runtime is the client script inlined at the end of the body.
	Runtime string
	// MathJaxURL is the CDN location of the MathJax bundle.
	MathJaxURL string
	// HighlightCDN inlines highlight.js CDN references when true.
	HighlightCDN bool
	// HighlightCDNBase is the base URL for highlight.js assets.
	HighlightCDNBase string
	// HighlightLanguages lists extra highlight.js language bundles.
	HighlightLanguages []string
}

// Assembler turns a parsed bank plus a content renderer into a complete
// HTML document.
type Assembler struct {
	tmpl          *template.Template
	multiKeywords []string
}

// NewAssembler parses the document template and remembers the type-label
// keywords that mark a question as multi-answer.
func NewAssembler(tmplContent string, multiKeywords []string) (*Assembler, error) {
	tmpl, err := template.New("document").Parse(tmplContent)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrParseTemplate, err)
	}
	return &Assembler{tmpl: tmpl, multiKeywords: multiKeywords}, nil
}

// templateData is the document template's data contract.
type templateData struct {
	Title              string
	Description        template.HTML
	CSS                template.CSS
	Runtime            template.JS
	Questions          template.HTML
	TypeLabels         []string
	TotalQuestions     int
	MathJaxURL         string
	HighlightCDN       bool
	HighlightCDNBase   string
	HighlightLanguages []string
}

// Assemble renders every question through r and executes the document
// template. The returned string is the complete HTML document.
func (a *Assembler) Assemble(bank *qbank.Bank, r *pipeline.Renderer, opts Options) (string, error) {
	title := opts.Title
	if title == "" {
		title = bank.Title
	}
	if title == "" {
		title = DefaultTitle
	}

	var questions strings.Builder
	for i, q := range bank.Questions {
		a.writeQuestion(&questions, &q, i+1, r)
	}

	var description template.HTML
	if bank.Description != "" {
		description = template.HTML(r.Render(bank.Description)) // #nosec G203 -- renderer escapes source text
	}

	data := templateData{
		Title:              title,
		Description:        description,
		CSS:                template.CSS(opts.CSS),
		Runtime:            template.JS(opts.Runtime), // #nosec G203 -- runtime script is a trusted asset
		Questions:          template.HTML(questions.String()),
		TypeLabels:         bank.TypeLabels(),
		TotalQuestions:     len(bank.Questions),
		MathJaxURL:         opts.MathJaxURL,
		HighlightCDN:       opts.HighlightCDN,
		HighlightCDNBase:   opts.HighlightCDNBase,
		HighlightLanguages: opts.HighlightLanguages,
	}

	var out strings.Builder
	if err := a.tmpl.Execute(&out, data); err != nil {
		return "", fmt.Errorf("%w: %v", ErrExecuteTemplate, err)
	}
	return out.String(), nil
}

// IsMultiAnswer reports whether a type label marks questions as
// multi-answer.
func (a *Assembler) IsMultiAnswer(typeLabel string) bool {
	for _, kw := range a.multiKeywords {
		if kw != "" && strings.Contains(typeLabel, kw) {
			return true
		}
	}
	return false
}

// writeQuestion emits one question card. displayNum is the 1-based
// position in the document; input groups are named by it rather than by
// the source id, which may repeat across sections.
func (a *Assembler) writeQuestion(sb *strings.Builder, q *qbank.Question, displayNum int, r *pipeline.Renderer) {
	multi := a.IsMultiAnswer(q.Type)
	inputType := "radio"
	if multi {
		inputType = "checkbox"
	}
	typeAttr := html.EscapeString(q.Type)
	group := "q" + strconv.Itoa(displayNum)

	sb.WriteString(`<div class="question" data-qid="` + html.EscapeString(q.ID) + `" data-type="` + typeAttr +
		`" data-multi="` + strconv.FormatBool(multi) +
		`" data-answered="false" data-correct="false" data-mark-important="false">` + "\n")
	sb.WriteString(`  <div class="mark-btns"><button class="mark-btn" type="button" title="标记为重点">⭐</button></div>` + "\n")
	sb.WriteString(`  <div class="q-header">` + "\n")
	sb.WriteString(`    <span class="q-num">第 ` + strconv.Itoa(displayNum) + ` 题</span>` + "\n")
	sb.WriteString(`    <span class="q-type">[` + typeAttr + `]</span>` + "\n")
	sb.WriteString(`    <span class="q-status"></span>` + "\n")
	sb.WriteString(`  </div>` + "\n")
	sb.WriteString(`  <div class="q-stem">` + r.Render(q.Stem) + `</div>` + "\n")
	sb.WriteString(`  <div class="q-options">` + "\n")

	for idx, opt := range q.Options {
		sb.WriteString(`    <div class="option" data-correct="` + strconv.FormatBool(opt.Correct) + `">` + "\n")
		sb.WriteString(`      <label>` + "\n")
		sb.WriteString(`        <input type="` + inputType + `" name="` + group + `" value="` + strconv.Itoa(idx) + `">` + "\n")
		sb.WriteString(`        <span class="option-label">` + strconv.Itoa(idx+1) + `.</span>` + "\n")
		sb.WriteString(`        <span class="option-text">` + r.Render(opt.Text) + `</span>` + "\n")
		sb.WriteString(`      </label>` + "\n")
		if opt.Explanation != "" {
			expClass, expIcon := "wrong-exp", "❌ 错误"
			if opt.Correct {
				expClass, expIcon = "correct-exp", "✅ 正确"
			}
			sb.WriteString(`      <div class="explanation ` + expClass + `"><span class="exp-icon">` + expIcon + `</span> ` +
				r.Render(opt.Explanation) + `</div>` + "\n")
		}
		sb.WriteString(`    </div>` + "\n")
	}

	sb.WriteString(`  </div>` + "\n")
	if multi {
		sb.WriteString(`  <div class="q-actions">` + "\n")
		sb.WriteString(`    <button class="btn-check" type="button">查看答案</button>` + "\n")
		sb.WriteString(`    <button class="btn-reset" type="button" style="display:none;">重置</button>` + "\n")
		sb.WriteString(`  </div>` + "\n")
	} else {
		sb.WriteString(`  <div class="q-actions">` + "\n")
		sb.WriteString(`    <button class="btn-reset" type="button" style="display:none;">重置</button>` + "\n")
		sb.WriteString(`  </div>` + "\n")
	}
	sb.WriteString(`</div>` + "\n")
}
