package main

import (
	"io"

	flag "github.com/spf13/pflag"
)

// Default artifact names when neither flags nor config name them.
const (
	defaultOutputFile = "output.html"
	defaultStylesFile = "styles.css"
)

// cliFlags holds the raw flag values plus which ones were set explicitly,
// so config-file values only fill the gaps.
type cliFlags struct {
	input     string
	output    string
	styles    string
	config    string
	verbosity int
	highlight bool
	printTree bool

	set *flag.FlagSet
}

// parseFlags parses the command line. Values may be attached to their
// shorthand (-iREADME.md) or separated (-i README.md); a repeated flag
// keeps its last value.
func parseFlags(args []string) (*cliFlags, error) {
	f := &cliFlags{}
	fs := flag.NewFlagSet("md2html", flag.ContinueOnError)
	fs.SetOutput(io.Discard)

	fs.StringVarP(&f.input, "input", "i", "", "path to the markdown input file")
	fs.StringVarP(&f.output, "output", "o", "", "path of the HTML file to create")
	fs.StringVarP(&f.styles, "styles", "s", "", "path of the CSS file to create")
	fs.IntVarP(&f.verbosity, "verbosity", "v", 0, "log verbosity: 1 errors, 2 adds warnings, 3 adds info")
	fs.StringVarP(&f.config, "config", "c", "", "path to a YAML config file")
	fs.BoolVar(&f.highlight, "highlight", false, "syntax-highlight block code via chroma")
	fs.BoolVar(&f.printTree, "print-tree", false, "dump the parsed document tree to stdout")

	if err := fs.Parse(args[1:]); err != nil {
		return nil, err
	}
	f.set = fs
	return f, nil
}

// changed reports whether the named flag was given on the command line.
func (f *cliFlags) changed(name string) bool {
	return f.set != nil && f.set.Changed(name)
}
