package qbank

import (
	"regexp"
	"strings"
)

// Precompiled patterns for the line grammar.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// Numbered list item: "12. text"
	numberedItem = regexp.MustCompile(`^(\d+)\.\s+(.+)`)
)

// Grammar markers.
const (
	titleMarker   = "# "
	typeMarker    = "## "
	correctMarker = "=="
	explainMarker = "::"
)

// Parse consumes the full document text and produces a Bank.
//
// The grammar is line-oriented and forgiving: structural irregularities
// degrade to empty fields or skipped lines, never to an error. Question
// order equals document order.
func Parse(content string) *Bank {
	b := &Bank{}
	lines := strings.Split(crlfOrCR.ReplaceAllString(content, "\n"), "\n")
	currentType := ""

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		switch {
		case strings.HasPrefix(line, titleMarker):
			b.Title = strings.TrimSpace(line[len(titleMarker):])
			i = scanDescription(lines, i+1, b)

		case strings.HasPrefix(line, typeMarker):
			currentType = cleanTypeLabel(line[len(typeMarker):])
			i++

		case isQuestionStart(lines[i]):
			q, next := parseQuestion(lines, i, currentType)
			b.Questions = append(b.Questions, q)
			i = next

		default:
			i++
		}
	}

	return b
}

// scanDescription collects non-heading lines after the title into the bank
// description. Blank lines are dropped, the rest are newline-joined.
// Returns the index of the first unconsumed line.
func scanDescription(lines []string, start int, b *Bank) int {
	var desc []string
	i := start
	for i < len(lines) && !strings.HasPrefix(strings.TrimSpace(lines[i]), "#") {
		if s := strings.TrimSpace(lines[i]); s != "" {
			desc = append(desc, s)
		}
		i++
	}
	b.Description = strings.Join(desc, "\n")
	return i
}

// cleanTypeLabel trims a type heading and strips comma noise that sources
// commonly carry in labels like "多选题，不定项".
func cleanTypeLabel(raw string) string {
	label := strings.TrimSpace(raw)
	label = strings.ReplaceAll(label, "，", "")
	label = strings.ReplaceAll(label, ",", "")
	return label
}

// isQuestionStart reports whether the raw line begins a top-level question:
// a non-indented numbered list item. Indented numbered items are options and
// belong to the preceding question.
func isQuestionStart(raw string) bool {
	if isIndented(raw) {
		return false
	}
	return numberedItem.MatchString(strings.TrimSpace(raw))
}

// isIndented reports whether the raw line starts with a space or tab.
func isIndented(raw string) bool {
	return strings.HasPrefix(raw, " ") || strings.HasPrefix(raw, "\t")
}

// isHeading reports whether the trimmed line starts a heading of any level.
func isHeading(line string) bool {
	return strings.HasPrefix(line, "#")
}

// parseQuestion parses one question starting at lines[start]: the stem
// (possibly spanning several lines), then its indented options. Returns the
// question and the index of the first unconsumed line.
func parseQuestion(lines []string, start int, qtype string) (Question, int) {
	m := numberedItem.FindStringSubmatch(strings.TrimSpace(lines[start]))
	q := Question{ID: m[1], Type: qtype}
	stem := []string{strings.TrimSpace(m[2])}

	// Stem continues until an option, the next question, or a heading.
	i := start + 1
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if numberedItem.MatchString(line) || isHeading(line) {
			break
		}
		if line != "" {
			stem = append(stem, line)
		}
		i++
	}
	q.Stem = strings.Join(stem, "\n")

	// Options: indented numbered items. A non-indented numbered line starts
	// the next question; any heading ends the scan. Numbered-looking lines
	// that fail the pattern are skipped silently.
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])
		if isHeading(line) {
			break
		}
		if om := numberedItem.FindStringSubmatch(line); om != nil {
			if !isIndented(lines[i]) {
				break
			}
			q.Options = append(q.Options, parseOption(om[2]))
		}
		i++
	}

	return q, i
}

// parseOption splits raw option text into display text, correctness, and
// explanation. The correctness marker is detected anywhere in the raw text
// before the explanation split, so "==" inside an explanation still flags
// the option correct; it is stripped from the display text only. The
// explanation split happens at the first "::" — any later "::" stays
// verbatim in the explanation.
func parseOption(raw string) Option {
	opt := Option{Correct: strings.Contains(raw, correctMarker)}

	display := raw
	if idx := strings.Index(raw, explainMarker); idx >= 0 {
		display = raw[:idx]
		opt.Explanation = strings.TrimSpace(raw[idx+len(explainMarker):])
	}

	opt.Text = strings.TrimSpace(strings.ReplaceAll(display, correctMarker, ""))
	return opt
}
