package md2html

import (
	"fmt"
	"io"
	"strings"
)

// elementIndent is the number of spaces per tree depth in the HTML output.
const elementIndent = 4

// htmlWriter renders a finished document tree as an HTML document and
// fills the companion stylesheet on the way. It implements Visitor; every
// new tag starts on its own line, indented by depth, while consecutive
// content leaves at the same depth concatenate without whitespace.
type htmlWriter struct {
	w           io.Writer
	css         *cssWriter
	highlighter *highlighter // nil when syntax highlighting is off

	prevContent bool
	prevIndent  int
	usedChroma  bool
	err         error
}

func newHTMLWriter(htmlOut, cssOut io.Writer, highlight bool) *htmlWriter {
	hw := &htmlWriter{w: htmlOut, css: newCSSWriter(cssOut)}
	if highlight {
		hw.highlighter = newHighlighter()
	}
	return hw
}

// writeDocument emits the full HTML document for the tree and the
// stylesheet it links to.
func (h *htmlWriter) writeDocument(stylesheet string, root *ElementNode) error {
	if root.Elem != ElemDocStart {
		return fmt.Errorf("%w: document does not start with %s",
			ErrUnknownElement, ElemDocStart)
	}
	if err := h.css.writeDefault(); err != nil {
		return err
	}

	h.print("<%s>\n", ElementTag[ElemDocStart])
	h.print("<head>\n")
	h.print(" <meta charset=\"utf-8\">\n")
	h.print(" <meta name=\"viewport\" content=\"width=device-width, initial-scale=1.0\">\n")
	h.print(" <link rel=\"stylesheet\" href=%q>\n", stylesheet)
	h.print("</head>\n")
	h.print("<body>\n")

	for _, child := range root.Children {
		child.Accept(h, 0)
	}

	h.print("\n\n</body>\n")

	if h.usedChroma && h.err == nil {
		if err := h.highlighter.writeCSS(h.css.w); err != nil {
			return err
		}
	}
	return h.err
}

func (h *htmlWriter) print(format string, args ...any) {
	if h.err != nil {
		return
	}
	_, err := fmt.Fprintf(h.w, format, args...)
	h.err = err
}

func (h *htmlWriter) write(s string) {
	if h.err != nil {
		return
	}
	_, err := io.WriteString(h.w, s)
	h.err = err
}

func pad(indent int) string {
	return strings.Repeat(" ", indent)
}

func (h *htmlWriter) VisitElement(n *ElementNode, indent int) {
	if h.err != nil {
		return
	}
	h.prevContent = false

	tag, ok := ElementTag[n.Elem]
	if !ok {
		h.err = fmt.Errorf("%w: %d", ErrUnknownElement, n.Elem)
		return
	}
	h.write("\n" + pad(indent) + "<" + tag)
	if n.Elem == ElemHorizontalLine {
		h.write("/>")
		return
	}

	// Attributes render as CSS class names and register their classes.
	if len(n.Attributes) > 0 {
		h.write(` class="`)
		for i, attr := range n.Attributes {
			if i > 0 {
				h.write(" ")
			}
			h.write(attr.Name())
			if err := h.css.addClass(attr); err != nil {
				h.err = err
				return
			}
		}
		h.write(`"`)
	}
	h.write(">")

	block := n.Elem == ElemCodeblock && len(n.Attributes) > 0 && n.Attributes[0] == AttrBlock
	if block {
		h.write("<pre>")
	}

	if !(block && h.highlightBlock(n)) {
		for _, child := range n.Children {
			child.Accept(h, indent+elementIndent)
		}
	}

	h.write("\n" + pad(indent))
	if block {
		h.write("</pre>")
	}
	h.write("</" + tag + ">")
}

// highlightBlock renders a block code element through chroma. It only
// applies when highlighting is on and the block holds plain text.
func (h *htmlWriter) highlightBlock(n *ElementNode) bool {
	if h.highlighter == nil {
		return false
	}
	var source strings.Builder
	for _, child := range n.Children {
		text, ok := child.(*TextNode)
		if !ok {
			return false
		}
		source.WriteString(text.Text)
	}
	if source.Len() == 0 {
		return false
	}
	h.write("\n")
	if h.err != nil {
		return true
	}
	if err := h.highlighter.highlight(h.w, source.String()); err != nil {
		h.err = err
		return true
	}
	h.usedChroma = true
	h.prevContent = false
	return true
}

func (h *htmlWriter) VisitText(n *TextNode, indent int) {
	if h.err != nil {
		return
	}
	if !h.prevContent || h.prevIndent != indent {
		h.prevContent = true
		h.prevIndent = indent
		h.write("\n" + pad(indent))
	}
	h.write(n.Text)
}

func (h *htmlWriter) VisitImage(n *ImageNode, indent int) {
	if h.err != nil {
		return
	}
	h.prevContent = false
	h.write("\n" + pad(indent))
	h.print(`<img src=%q alt=%q title=%q class="ImageAttr"/>`, n.Src, n.Alt, n.Title)
	if err := h.css.addClass(AttrImage); err != nil {
		h.err = err
	}
}

func (h *htmlWriter) VisitLink(n *LinkNode, indent int) {
	if h.err != nil {
		return
	}
	h.prevContent = false
	h.write("\n" + pad(indent))
	h.print(`<a href=%q title=%q>%s</a>`, n.Href, n.Title, n.Displayed)
}
