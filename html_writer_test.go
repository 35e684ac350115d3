package md2html

import (
	"strings"
	"testing"
)

func render(t *testing.T, root *ElementNode) (html, css string) {
	t.Helper()
	var htmlBuf, cssBuf strings.Builder
	w := newHTMLWriter(&htmlBuf, &cssBuf, false)
	if err := w.writeDocument("styles.css", root); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	return htmlBuf.String(), cssBuf.String()
}

func TestHTMLWriterSkeleton(t *testing.T) {
	t.Parallel()

	html, _ := render(t, &ElementNode{Elem: ElemDocStart})
	for _, want := range []string{
		"<!DOCTYPE html>",
		"<head>",
		`<meta charset="utf-8">`,
		`<meta name="viewport" content="width=device-width, initial-scale=1.0">`,
		`<link rel="stylesheet" href="styles.css">`,
		"</head>",
		"<body>",
		"</body>",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("document missing %q:\n%s", want, html)
		}
	}
}

func TestHTMLWriterRejectsNonDocRoot(t *testing.T) {
	t.Parallel()

	var htmlBuf, cssBuf strings.Builder
	w := newHTMLWriter(&htmlBuf, &cssBuf, false)
	if err := w.writeDocument("styles.css", &ElementNode{Elem: ElemParagraph}); err == nil {
		t.Fatal("expected error for a tree not rooted at the document start")
	}
}

func TestHTMLWriterElementWithAttributes(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	h1 := &ElementNode{Elem: ElemHeader1, Attributes: []Attribute{AttrBold, AttrFontSize1}}
	h1.AddChild(&TextNode{Text: "Hello"})
	root.AddChild(h1)

	html, css := render(t, root)
	if !strings.Contains(html, `<h1 class="Bold FontSize1">`) {
		t.Errorf("missing classed h1 tag in:\n%s", html)
	}
	if !strings.Contains(html, "Hello") || !strings.Contains(html, "</h1>") {
		t.Errorf("h1 not closed around content:\n%s", html)
	}
	if !strings.Contains(css, ".Bold {") || !strings.Contains(css, ".FontSize1 {") {
		t.Errorf("stylesheet missing used classes:\n%s", css)
	}
}

func TestHTMLWriterIndentationByDepth(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	list := &ElementNode{Elem: ElemListUnordered}
	item := &ElementNode{Elem: ElemListItem}
	item.AddChild(&TextNode{Text: "a"})
	list.AddChild(item)
	root.AddChild(list)

	html, _ := render(t, root)
	if !strings.Contains(html, "\n<ul>") {
		t.Errorf("top-level tag should start unindented:\n%s", html)
	}
	if !strings.Contains(html, "\n    <li>") {
		t.Errorf("nested tag should be indented four spaces:\n%s", html)
	}
	if !strings.Contains(html, "\n        a") {
		t.Errorf("content should be indented one level deeper:\n%s", html)
	}
}

func TestHTMLWriterContentRunsConcatenate(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	para := &ElementNode{Elem: ElemParagraph}
	para.AddChild(&TextNode{Text: "ab"})
	para.AddChild(&TextNode{Text: "cd"})
	root.AddChild(para)

	html, _ := render(t, root)
	if !strings.Contains(html, "abcd") {
		t.Errorf("consecutive content leaves should concatenate without whitespace:\n%s", html)
	}
}

func TestHTMLWriterSelfClosingRule(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	root.AddChild(&ElementNode{Elem: ElemHorizontalLine})

	html, _ := render(t, root)
	if !strings.Contains(html, "<hr/>") {
		t.Errorf("horizontal rule should be self-closing:\n%s", html)
	}
	if strings.Contains(html, "</hr>") {
		t.Errorf("horizontal rule must not have a closing tag:\n%s", html)
	}
}

func TestHTMLWriterImage(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	root.AddChild(&ImageNode{Src: "u.png", Alt: "cap", Title: "t"})

	html, css := render(t, root)
	if !strings.Contains(html, `<img src="u.png" alt="cap" title="t" class="ImageAttr"/>`) {
		t.Errorf("unexpected image markup:\n%s", html)
	}
	if !strings.Contains(css, ".ImageAttr {") {
		t.Errorf("stylesheet missing the image class:\n%s", css)
	}
}

func TestHTMLWriterHyperlink(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	root.AddChild(&LinkNode{Href: "https://go.dev", Displayed: "go", Title: "site"})

	html, _ := render(t, root)
	if !strings.Contains(html, `<a href="https://go.dev" title="site">go</a>`) {
		t.Errorf("unexpected link markup:\n%s", html)
	}
}

func TestHTMLWriterBlockCodeWrappedInPre(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	code := &ElementNode{Elem: ElemCodeblock, Attributes: []Attribute{AttrBlock}}
	code.AddChild(&TextNode{Text: "x := 1"})
	root.AddChild(code)

	html, _ := render(t, root)
	if !strings.Contains(html, `<code class="Block"><pre>`) {
		t.Errorf("block code should open a pre right after the tag:\n%s", html)
	}
	if !strings.Contains(html, "</pre></code>") {
		t.Errorf("block code should close the pre before the tag:\n%s", html)
	}
}

func TestHTMLWriterHighlightedBlockCode(t *testing.T) {
	t.Parallel()

	root := &ElementNode{Elem: ElemDocStart}
	code := &ElementNode{Elem: ElemCodeblock, Attributes: []Attribute{AttrBlock}}
	code.AddChild(&TextNode{Text: "package main\n\nimport \"fmt\"\n\nfunc main() {\n\tfmt.Println(\"hi\")\n}\n"})
	root.AddChild(code)

	var htmlBuf, cssBuf strings.Builder
	w := newHTMLWriter(&htmlBuf, &cssBuf, true)
	if err := w.writeDocument("styles.css", root); err != nil {
		t.Fatalf("writeDocument: %v", err)
	}
	if !strings.Contains(htmlBuf.String(), "<span") {
		t.Errorf("highlighted code should contain chroma spans:\n%s", htmlBuf.String())
	}
	if !strings.Contains(cssBuf.String(), ".chroma") {
		t.Errorf("stylesheet should carry the chroma classes:\n%s", cssBuf.String())
	}
}
