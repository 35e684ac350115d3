package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/jakub-mata/markdown-to-html-translator/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound = errors.New("config file not found")
	ErrConfigParse    = errors.New("failed to parse config")
)

// fileConfig holds defaults loaded from a YAML config file. Command-line
// flags override anything set here.
type fileConfig struct {
	Output    string `yaml:"output"`
	Styles    string `yaml:"styles"`
	Verbosity int    `yaml:"verbosity"`
	Highlight bool   `yaml:"highlight"`
}

// loadConfig reads and parses a YAML config file.
func loadConfig(path string) (*fileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, path)
	}
	cfg := &fileConfig{}
	if err := yamlutil.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}
	return cfg, nil
}

// options is the resolved configuration: flags override the config file,
// the config file overrides built-in defaults.
type options struct {
	input     string
	output    string
	styles    string
	verbosity int
	highlight bool
	printTree bool
}

func resolveOptions(flags *cliFlags) (*options, error) {
	opts := &options{
		input:     flags.input,
		output:    flags.output,
		styles:    flags.styles,
		verbosity: flags.verbosity,
		highlight: flags.highlight,
		printTree: flags.printTree,
	}
	if flags.config == "" {
		return opts, nil
	}

	cfg, err := loadConfig(flags.config)
	if err != nil {
		return nil, err
	}
	if !flags.changed("output") && cfg.Output != "" {
		opts.output = cfg.Output
	}
	if !flags.changed("styles") && cfg.Styles != "" {
		opts.styles = cfg.Styles
	}
	if !flags.changed("verbosity") && cfg.Verbosity != 0 {
		opts.verbosity = cfg.Verbosity
	}
	if !flags.changed("highlight") && cfg.Highlight {
		opts.highlight = true
	}
	return opts, nil
}
