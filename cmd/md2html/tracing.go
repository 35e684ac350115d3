package main

import (
	"fmt"
	"os"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
)

// setupTracing installs the log adapter and maps the -v verbosity onto
// trace levels: 0 leaves tracing unconfigured, 1 shows errors, 2 adds
// parse warnings, 3 adds token-emission info.
func setupTracing(verbosity int) {
	if verbosity <= 0 {
		return
	}

	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter":   "go",
		"trace.md2html":     "Error",
		"trace.md2html.cli": "Error",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Fprintln(os.Stderr, "error configuring tracing")
		return
	}
	tracing.SetTraceSelector(trace2go.Selector())

	level := tracing.LevelError
	switch {
	case verbosity == 2:
		level = tracing.LevelInfo
	case verbosity >= 3:
		level = tracing.LevelDebug
	}
	tracing.Select("md2html").SetTraceLevel(level)
	tracing.Select("md2html.cli").SetTraceLevel(level)
}
