package md2html

import (
	"io"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// highlightStyle is the chroma style used for block code coloring.
const highlightStyle = "github"

// highlighter colors block code content via chroma. The formatter emits
// classes instead of inline styles; the class definitions go into the
// generated stylesheet so the HTML stays free of style attributes.
type highlighter struct {
	style     *chroma.Style
	formatter *chromahtml.Formatter
}

func newHighlighter() *highlighter {
	style := styles.Get(highlightStyle)
	if style == nil {
		style = styles.Fallback
	}
	return &highlighter{
		style: style,
		formatter: chromahtml.New(
			chromahtml.WithClasses(true),
			chromahtml.PreventSurroundingPre(true),
		),
	}
}

// highlight writes the colored HTML for source. The lexer is picked by
// content analysis; unrecognizable input falls back to plain text.
func (h *highlighter) highlight(w io.Writer, source string) error {
	lexer := lexers.Analyse(source)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	iterator, err := lexer.Tokenise(nil, source)
	if err != nil {
		return err
	}
	return h.formatter.Format(w, h.style, iterator)
}

// writeCSS appends the chroma class definitions to the stylesheet.
func (h *highlighter) writeCSS(w io.Writer) error {
	return h.formatter.WriteCSS(w, h.style)
}
