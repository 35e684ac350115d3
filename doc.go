// Package md2html converts a Markdown-like source document into an HTML
// document plus a companion stylesheet.
//
// # Quick Start
//
// Create a service and convert a document:
//
//	svc := md2html.New()
//	result, err := svc.Convert(ctx, md2html.Input{
//	    Markdown: "# Hello\n\nWorld\n",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile("output.html", []byte(result.HTML), 0644)
//	os.WriteFile("styles.css", []byte(result.CSS), 0644)
//
// # Conversion Pipeline
//
// The conversion process follows these stages:
//
//  1. Line-ending normalization (CRLF/CR to LF, blank-line compression)
//  2. Character-by-character tokenization through a state machine
//  3. Tree construction from the token stream (tables are built by a
//     cooperating sub-builder and grafted onto the tree, or demoted to a
//     paragraph when a table fails to parse)
//  4. HTML and CSS emission by walking the finished tree
//
// The tokenizer reads one byte at a time and dispatches to a handler for
// the current state. Inline constructs (emphasis, code, links) record a
// return state so they know where to resume after closing; constructs
// that fail to close on their line degrade back to literal text and log
// a warning instead of failing the parse.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := md2html.New(md2html.WithHighlighting())
//
// With highlighting enabled, block code content is colored via chroma and
// the chroma class definitions are appended to the generated stylesheet.
package md2html

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'md2html'.
func tracer() tracing.Trace {
	return tracing.Select("md2html")
}
