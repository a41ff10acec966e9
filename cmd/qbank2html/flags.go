package main

import (
	"os"

	flag "github.com/spf13/pflag"
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config  string
	quiet   bool
	verbose bool
}

// documentFlags holds document-level flags.
type documentFlags struct {
	title      string
	theme      string
	mathJaxURL string
}

// highlightFlags holds code highlighting flags.
type highlightFlags struct {
	mode      string
	style     string
	cdnBase   string
	languages []string
}

// assetFlags holds asset-related flags.
type assetFlags struct {
	assetPath string // Override asset directory
	styleName string // Stylesheet name
}

// convertFlags holds all flags for the convert command.
type convertFlags struct {
	common    commonFlags
	output    string
	document  documentFlags
	highlight highlightFlags
	assets    assetFlags
	multiKeys []string
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show detailed timing")
}

// addDocumentFlags adds document-level flags to a FlagSet.
func addDocumentFlags(fs *flag.FlagSet, f *documentFlags) {
	fs.StringVar(&f.title, "title", "", "document title (\"\" = from source heading)")
	fs.StringVar(&f.theme, "theme", "", "initial theme: light, dark")
	fs.StringVar(&f.mathJaxURL, "mathjax-url", "", "MathJax bundle URL")
}

// addHighlightFlags adds code highlighting flags to a FlagSet.
func addHighlightFlags(fs *flag.FlagSet, f *highlightFlags) {
	fs.StringVar(&f.mode, "highlight", "", "code highlight mode: cdn, inline")
	fs.StringVar(&f.style, "highlight-style", "", "color style for inline mode")
	fs.StringVar(&f.cdnBase, "highlight-cdn", "", "base URL for highlight.js assets")
	fs.StringSliceVar(&f.languages, "highlight-langs", nil, "highlight.js language bundles for cdn mode")
}

// addAssetFlags adds asset flags to a FlagSet.
func addAssetFlags(fs *flag.FlagSet, f *assetFlags) {
	fs.StringVar(&f.styleName, "style", "", "stylesheet name")
	fs.StringVar(&f.assetPath, "asset-path", "", "custom asset directory")
}

// parseConvertFlags parses convert command flags and returns positional args.
func parseConvertFlags(args []string) (*convertFlags, []string, error) {
	fs := flag.NewFlagSet("convert", flag.ContinueOnError)
	f := &convertFlags{}

	fs.StringVarP(&f.output, "output", "o", "", "output file or directory")
	fs.StringSliceVar(&f.multiKeys, "multi-keywords", nil, "type-label substrings marking multi-answer questions")

	addCommonFlags(fs, &f.common)
	addDocumentFlags(fs, &f.document)
	addHighlightFlags(fs, &f.highlight)
	addAssetFlags(fs, &f.assets)

	fs.Usage = func() { printConvertUsage(os.Stderr) }

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}

	return f, fs.Args(), nil
}
