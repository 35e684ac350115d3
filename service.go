package md2html

import (
	"bytes"
	"context"
	"fmt"
	"strings"
)

// Service orchestrates the markdown-to-HTML pipeline.
type Service struct {
	cfg serviceConfig
}

type serviceConfig struct {
	highlight bool
}

// Option customizes a Service.
type Option func(*Service)

// WithHighlighting colors block code content via chroma and appends the
// chroma class definitions to the generated stylesheet.
func WithHighlighting() Option {
	return func(s *Service) { s.cfg.highlight = true }
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Convert runs the full pipeline: normalization, tokenization, tree
// construction, and HTML/CSS emission. The context is checked between
// stages for cancellation.
func (s *Service) Convert(ctx context.Context, input Input) (*Result, error) {
	if err := input.validate(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := NormalizeLineEndings(input.Markdown)
	content = CompressBlankLines(content)

	root, err := NewParser(strings.NewReader(content)).ParseDocument()
	if err != nil {
		return nil, fmt.Errorf("parsing markdown: %w", err)
	}
	if input.TreeDump != nil {
		DumpTree(input.TreeDump, root)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	stylesheet := input.Stylesheet
	if stylesheet == "" {
		stylesheet = DefaultStylesheet
	}

	var html, css bytes.Buffer
	writer := newHTMLWriter(&html, &css, s.cfg.highlight)
	if err := writer.writeDocument(stylesheet, root); err != nil {
		return nil, fmt.Errorf("building HTML: %w", err)
	}

	return &Result{HTML: html.String(), CSS: css.String()}, nil
}
