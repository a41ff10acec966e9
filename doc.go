// Package qbank2html converts Markdown question banks into self-contained
// interactive HTML quiz documents.
//
// # Quick Start
//
// Create a service and convert a source string or file:
//
//	svc := qbank2html.New()
//
//	result, err := svc.Convert(ctx, qbank2html.Input{
//	    Source: "# 题库\n\n## 单选题\n\n1. 问题\n    1. ==答案:: 解析\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("quiz.html", []byte(result.Document), 0644)
//
// The result also carries statistics (total questions and per-type counts)
// for CLI reporting.
//
// # Source Format
//
// The source is a Markdown dialect:
//
//	# Bank title
//	Optional description until the next heading.
//
//	## Type label (e.g. 单选题, 多选题)
//
//	1. Question stem, possibly spanning
//	   multiple lines.
//	    1. ==Correct option:: explanation
//	    2. Wrong option:: explanation
//
// "==" marks correct options and "::" separates option text from its
// explanation. Stems, options, and explanations may use bold, italics,
// inline code, fenced code blocks, $...$ and $$...$$ math, and image
// references. Relative image paths are resolved against Input.SourceDir
// and embedded as base64 data URIs.
//
// # Conversion Pipeline
//
//  1. Parse the source into a question bank (forgiving, never errors)
//  2. Render each content fragment to HTML
//  3. Assemble the document from the embedded template, stylesheet,
//     and client runtime
//
// # Configuration
//
// Functional options select assets:
//
//	svc := qbank2html.New(
//	    qbank2html.WithStyle("quiz"),
//	    qbank2html.WithAssetLoader(loader),
//	)
//
// Per-conversion options are passed via Input: title override, initial
// theme, code highlight mode (CDN-loaded highlight.js or pre-rendered
// inline styles), MathJax location, and the type-label keywords that mark
// multi-answer questions.
//
// # Offline Use
//
// The generated document works from a file:// URL. Styles, the runtime
// script, and images are inlined. Math and CDN-mode code highlighting
// degrade gracefully without network access; inline highlight mode needs
// no network at all.
package qbank2html
