package qbank2html_test

import (
	"context"
	"fmt"
	"strings"

	qbank2html "github.com/alnah/go-qbank2html"
)

// Example demonstrates basic quiz markdown to HTML conversion.
func Example() {
	svc := qbank2html.New()

	result, err := svc.Convert(context.Background(), qbank2html.Input{
		Source: `# Demo Bank

## Single-Choice

1. What is 1+1?
    1. ==2:: Basic arithmetic
    2. 3
`,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("%d question(s) converted\n", result.Stats.TotalQuestions)
	// Output: 1 question(s) converted
}

// Example_darkTheme demonstrates starting the document in dark mode.
func Example_darkTheme() {
	svc := qbank2html.New()

	result, err := svc.Convert(context.Background(), qbank2html.Input{
		Source: "## Single-Choice\n\n1. Pick one\n    1. ==A\n    2. B\n",
		Theme:  qbank2html.ThemeDark,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if strings.Contains(result.Document, `<body class="dark-mode">`) {
		fmt.Println("Dark theme applied")
	}
	// Output: Dark theme applied
}

// Example_inlineHighlight demonstrates fully offline output: code blocks
// are pre-rendered with inline styles instead of referencing a CDN.
func Example_inlineHighlight() {
	svc := qbank2html.New()

	source := "## Single-Choice\n\n" +
		"1. What does this print?\n" +
		"```python\nprint(1 + 1)\n```\n" +
		"    1. ==2\n    2. 11\n"

	result, err := svc.Convert(context.Background(), qbank2html.Input{
		Source:        source,
		HighlightMode: qbank2html.HighlightInline,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	if !strings.Contains(result.Document, "highlight.min.js") {
		fmt.Println("No CDN highlighter referenced")
	}
	// Output: No CDN highlighter referenced
}

// Example_stats demonstrates the per-type statistics on the result.
func Example_stats() {
	svc := qbank2html.New()

	result, err := svc.Convert(context.Background(), qbank2html.Input{
		Source: `# Exam

## Single-Choice

1. Q1
    1. ==A
    2. B

## Multi-Choice

2. Q2
    1. ==A
    2. ==B
    3. C
`,
	})
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	for _, tc := range result.Stats.TypeCounts {
		fmt.Printf("%s: %d\n", tc.Label, tc.Count)
	}
	// Output:
	// Single-Choice: 1
	// Multi-Choice: 1
}
