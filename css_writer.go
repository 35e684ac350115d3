package md2html

import (
	"fmt"
	"io"
)

// attrCSS maps every attribute to the body of its CSS class.
var attrCSS = map[Attribute]string{
	AttrBold:      "font-weight: bold;",
	AttrItalic:    "font-style: italic;",
	AttrFontSize1: "font-size: 32px;",
	AttrFontSize2: "font-size: 24px;",
	AttrFontSize3: "font-size: 20.8px;",
	AttrFontSize4: "font-size: 16px;",
	AttrFontSize5: "font-size: 12.8px;",
	AttrFontSize6: "font-size: 11.2px;",
	AttrInline:    "display: inline;",
	AttrBlock:     "display: block;",
	AttrBlockQuote: "padding-left: 1em;\n" +
		"border-left: 2px solid purple;\n" +
		"display: block;",
	AttrTableRow:    "border-bottom: 1px solid #ddd;",
	AttrTableHeader: "background-color: #ddd;\npadding: .4rem .8rem;",
	AttrTableStyle:  "border-collapse: collapse;",
	AttrTableCell:   "padding: .4rem .8rem;",
	AttrImage:       "max-width: 100%;\nheight: auto;",
}

// cssWriter builds the companion stylesheet. Every attribute used in the
// tree produces exactly one class block, in first-use order, keyed by the
// attribute name.
type cssWriter struct {
	w    io.Writer
	used map[Attribute]bool
}

func newCSSWriter(w io.Writer) *cssWriter {
	return &cssWriter{w: w, used: make(map[Attribute]bool)}
}

// writeDefault emits the base body rule every stylesheet carries.
func (c *cssWriter) writeDefault() error {
	_, err := io.WriteString(c.w, "body {\nmargin: 2rem auto;\nwidth: 80%;\n}\n")
	return err
}

// addClass emits the class block for the attribute unless it was emitted
// already. An attribute without a CSS mapping is a programmer error.
func (c *cssWriter) addClass(a Attribute) error {
	if c.used[a] {
		return nil
	}
	c.used[a] = true

	rule, ok := attrCSS[a]
	if !ok {
		return fmt.Errorf("%w: %d", ErrUnknownAttribute, a)
	}
	_, err := fmt.Fprintf(c.w, ".%s {\n%s\n}\n", a.Name(), rule)
	return err
}
