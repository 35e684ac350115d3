package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: doc.html\nstyles: doc.css\nverbosity: 2\nhighlight: true\n")
	cfg, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if cfg.Output != "doc.html" || cfg.Styles != "doc.css" {
		t.Fatalf("unexpected config: %+v", cfg)
	}
	if cfg.Verbosity != 2 || !cfg.Highlight {
		t.Fatalf("unexpected config: %+v", cfg)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	t.Parallel()

	_, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if !errors.Is(err, ErrConfigNotFound) {
		t.Fatalf("err = %v, want ErrConfigNotFound", err)
	}
}

func TestLoadConfigBadYAML(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: [unclosed\n")
	if _, err := loadConfig(path); !errors.Is(err, ErrConfigParse) {
		t.Fatalf("err = %v, want ErrConfigParse", err)
	}
}

func TestResolveOptionsFlagsOverrideConfig(t *testing.T) {
	t.Parallel()

	path := writeTempConfig(t, "output: config.html\nverbosity: 3\n")
	flags, err := parseFlags([]string{"md2html", "-i", "in.md", "-o", "flag.html", "-c", path})
	if err != nil {
		t.Fatal(err)
	}
	opts, err := resolveOptions(flags)
	if err != nil {
		t.Fatal(err)
	}
	if opts.output != "flag.html" {
		t.Errorf("output = %q, the flag should win over the config", opts.output)
	}
	if opts.verbosity != 3 {
		t.Errorf("verbosity = %d, the config should fill unset flags", opts.verbosity)
	}
}

func TestResolveOptionsWithoutConfig(t *testing.T) {
	t.Parallel()

	flags, err := parseFlags([]string{"md2html", "-i", "in.md"})
	if err != nil {
		t.Fatal(err)
	}
	opts, err := resolveOptions(flags)
	if err != nil {
		t.Fatal(err)
	}
	if opts.input != "in.md" || opts.output != "" {
		t.Fatalf("unexpected options: %+v", opts)
	}
}
