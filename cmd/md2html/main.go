package main

import (
	"context"
	"fmt"
	"os"

	"github.com/npillmayer/schuko/tracing"
	"go.uber.org/automaxprocs/maxprocs"

	md2html "github.com/jakub-mata/markdown-to-html-translator"
)

// Version is set at build time via ldflags.
var Version = "dev"

// User-facing messages. Every failure path prints its message and exits
// cleanly with status 0.
const (
	msgBadArguments = "Arguments provided are not formatted correctly"
	msgMissingInput = "No input file has been provided"
	msgBadInput     = "Unable to open the input file. Make sure it exists and is written correctly"
	msgBadOutput    = "Unable to open the output file. Make sure it exists and is written correctly"
	msgSuccess      = "Your HTML document has been built successfully!"
)

func main() {
	flags, err := parseFlags(os.Args)
	if err != nil {
		fmt.Fprintln(os.Stderr, msgBadArguments)
		return
	}

	opts, err := resolveOptions(flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	if opts.input == "" {
		fmt.Fprintln(os.Stderr, msgMissingInput)
		return
	}

	setupTracing(opts.verbosity)

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues.
	_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
		tracer().Debugf(format, args...)
	}))

	if opts.output == "" {
		fmt.Println("Output file not specified. Defaulting to output.html")
		opts.output = defaultOutputFile
	}
	if opts.styles == "" {
		fmt.Println("Styles file not specified. Defaulting to styles.css")
		opts.styles = defaultStylesFile
	}

	if err := run(opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return
	}
	fmt.Println(msgSuccess)
}

func run(opts *options) error {
	source, err := os.ReadFile(opts.input)
	if err != nil {
		return fmt.Errorf("%s", msgBadInput)
	}

	outputFile, err := os.Create(opts.output)
	if err != nil {
		return fmt.Errorf("%s", msgBadOutput)
	}
	defer outputFile.Close()

	stylesFile, err := os.Create(opts.styles)
	if err != nil {
		return fmt.Errorf("%s", msgBadOutput)
	}
	defer stylesFile.Close()

	var svcOpts []md2html.Option
	if opts.highlight {
		svcOpts = append(svcOpts, md2html.WithHighlighting())
	}
	svc := md2html.New(svcOpts...)

	input := md2html.Input{
		Markdown:   string(source),
		Stylesheet: opts.styles,
	}
	if opts.printTree {
		input.TreeDump = os.Stdout
	}

	tracer().Debugf("starting parsing")
	result, err := svc.Convert(context.Background(), input)
	if err != nil {
		return fmt.Errorf("Error during document parsing / html construction: %w", err)
	}
	tracer().Debugf("html building has finished successfully")

	if _, err := outputFile.WriteString(result.HTML); err != nil {
		return fmt.Errorf("%s", msgBadOutput)
	}
	if _, err := stylesFile.WriteString(result.CSS); err != nil {
		return fmt.Errorf("%s", msgBadOutput)
	}
	return nil
}

// tracer traces with key 'md2html.cli'.
func tracer() tracing.Trace {
	return tracing.Select("md2html.cli")
}
