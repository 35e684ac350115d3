package main

import "testing"

func TestParseFlagsSeparatedValues(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"md2html", "-i", "in.md", "-o", "out.html", "-s", "my.css", "-v", "2"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if flags.input != "in.md" || flags.output != "out.html" || flags.styles != "my.css" {
		t.Fatalf("unexpected values: %+v", flags)
	}
	if flags.verbosity != 2 {
		t.Fatalf("verbosity = %d, want 2", flags.verbosity)
	}
}

func TestParseFlagsAttachedValues(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"md2html", "-iin.md", "-oout.html", "-v3"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if flags.input != "in.md" || flags.output != "out.html" || flags.verbosity != 3 {
		t.Fatalf("unexpected values: %+v", flags)
	}
}

func TestParseFlagsLastValueWins(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"md2html", "-i", "first.md", "-i", "second.md"})
	if err != nil {
		t.Fatalf("parseFlags: %v", err)
	}
	if flags.input != "second.md" {
		t.Fatalf("input = %q, want %q", flags.input, "second.md")
	}
}

func TestParseFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"md2html", "-x", "oops"}); err == nil {
		t.Fatal("expected an error for an unknown flag")
	}
}

func TestParseFlagsBadVerbosity(t *testing.T) {
	t.Parallel()

	if _, err := parseFlags([]string{"md2html", "-v", "loud"}); err == nil {
		t.Fatal("expected an error for a non-numeric verbosity")
	}
}

func TestParseFlagsChanged(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"md2html", "-i", "in.md", "-o", "out.html"})
	if err != nil {
		t.Fatal(err)
	}
	if !flags.changed("output") {
		t.Error("output should report as changed")
	}
	if flags.changed("styles") {
		t.Error("styles should not report as changed")
	}
}
