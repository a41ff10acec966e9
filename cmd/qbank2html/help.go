package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: qbank2html <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  convert    Convert markdown question banks to interactive HTML")
	fmt.Fprintln(w, "  version    Show version information")
	fmt.Fprintln(w, "  help       Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'qbank2html help <command>' for details on a specific command.")
}

// printConvertUsage prints usage for the convert command.
func printConvertUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: qbank2html convert <input> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Convert markdown question banks to interactive HTML quiz documents.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Arguments:")
	fmt.Fprintln(w, "  input    Markdown file or directory of .md/.markdown files")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Input/Output:")
	fmt.Fprintln(w, "  -o, --output <path>        Output file (.html) or directory")
	fmt.Fprintln(w, "  -c, --config <name>        Config file name or path")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Document:")
	fmt.Fprintln(w, "      --title <s>            Document title (\"\" = from source heading)")
	fmt.Fprintln(w, "      --theme <s>            Initial theme: light, dark")
	fmt.Fprintln(w, "      --mathjax-url <url>    MathJax bundle URL")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Code Highlighting:")
	fmt.Fprintln(w, "      --highlight <s>        Mode: cdn (highlight.js), inline (self-contained)")
	fmt.Fprintln(w, "      --highlight-style <s>  Color style for inline mode")
	fmt.Fprintln(w, "      --highlight-cdn <url>  Base URL for highlight.js assets")
	fmt.Fprintln(w, "      --highlight-langs <l>  Language bundles for cdn mode (comma-separated)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Quiz:")
	fmt.Fprintln(w, "      --multi-keywords <l>   Type-label substrings marking multi-answer questions")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Styling:")
	fmt.Fprintln(w, "      --style <name>         Stylesheet name")
	fmt.Fprintln(w, "      --asset-path <dir>     Custom asset directory")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "  -q, --quiet                Only show errors")
	fmt.Fprintln(w, "  -v, --verbose              Show detailed timing")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Environment:")
	fmt.Fprintln(w, "  QBANK_CONFIG, QBANK_OUTPUT_DIR, QBANK_THEME,")
	fmt.Fprintln(w, "  QBANK_HIGHLIGHT, QBANK_HIGHLIGHT_STYLE")
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return
	}

	switch args[0] {
	case "convert":
		printConvertUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: qbank2html version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: qbank2html help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
	}
}
