// Package qbank defines the question bank model and the parser that builds
// it from the quiz Markdown dialect. A Bank is built once per conversion and
// never mutated afterward.
package qbank

// Bank is the full set of questions parsed from one source document.
type Bank struct {
	Title       string     // from the first-level heading
	Description string     // markdown, lines between the title and the next heading
	Questions   []Question // document order
}

// Question is one quiz question with its answer options.
type Question struct {
	ID      string   // source-supplied id; may repeat or skip, never authoritative
	Type    string   // free-form type label from the enclosing second-level heading
	Stem    string   // markdown prompt, possibly multi-line
	Options []Option // encounter order
}

// Option is one selectable answer choice.
type Option struct {
	Text        string // display text, markdown, correctness marker stripped
	Correct     bool
	Explanation string // markdown, empty when the source has no "::" part
}

// CountByType returns the number of questions per type label.
func (b *Bank) CountByType() map[string]int {
	counts := make(map[string]int, 4)
	for _, q := range b.Questions {
		counts[q.Type]++
	}
	return counts
}

// TypeLabels returns the distinct type labels in first-encounter order.
func (b *Bank) TypeLabels() []string {
	seen := make(map[string]bool, 4)
	var labels []string
	for _, q := range b.Questions {
		if !seen[q.Type] {
			seen[q.Type] = true
			labels = append(labels, q.Type)
		}
	}
	return labels
}
