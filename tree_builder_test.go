package md2html

import (
	"errors"
	"testing"
)

func TestTreeBuilderOpenCloseContent(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	mustConsume := func(tok Token) {
		t.Helper()
		if err := b.Consume(tok); err != nil {
			t.Fatalf("consume %v: %v", tok, err)
		}
	}

	mustConsume(Token{Type: OpenToken, Element: ElemParagraph})
	mustConsume(Token{Type: ContentToken, Element: ElemContent, Content: "hi"})
	mustConsume(Token{Type: CloseToken, Element: ElemParagraph})
	mustConsume(Token{Type: EOFToken})

	root, err := b.Root()
	if err != nil {
		t.Fatalf("root: %v", err)
	}
	if root.Elem != ElemDocStart {
		t.Fatalf("root element = %v, want %v", root.Elem, ElemDocStart)
	}
	if len(root.Children) != 1 {
		t.Fatalf("root children = %d, want 1", len(root.Children))
	}
	para := root.Children[0].(*ElementNode)
	if para.Elem != ElemParagraph || len(para.Children) != 1 {
		t.Fatalf("unexpected paragraph shape: %+v", para)
	}
	if text := para.Children[0].(*TextNode).Text; text != "hi" {
		t.Fatalf("content = %q, want %q", text, "hi")
	}
}

func TestTreeBuilderShapeMismatch(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	if err := b.Consume(Token{Type: OpenToken, Element: ElemParagraph}); err != nil {
		t.Fatal(err)
	}
	err := b.Consume(Token{Type: CloseToken, Element: ElemSpan})
	if !errors.Is(err, ErrShapeMismatch) {
		t.Fatalf("err = %v, want ErrShapeMismatch", err)
	}
}

func TestTreeBuilderUnknownTokenType(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	err := b.Consume(Token{Type: TokenType(42), Element: ElemParagraph})
	if !errors.Is(err, ErrUnknownToken) {
		t.Fatalf("err = %v, want ErrUnknownToken", err)
	}
}

func TestTreeBuilderClosingRootLeavesTree(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	// Closing the root is tolerated, but the cursor is gone afterwards.
	if err := b.Consume(Token{Type: CloseToken, Element: ElemDocStart}); err != nil {
		t.Fatalf("closing root: %v", err)
	}
	err := b.Consume(Token{Type: ContentToken, Element: ElemContent, Content: "x"})
	if !errors.Is(err, ErrNilCursor) {
		t.Fatalf("err = %v, want ErrNilCursor", err)
	}
	if _, err := b.CurrentElement(); !errors.Is(err, ErrNilCursor) {
		t.Fatalf("current element err = %v, want ErrNilCursor", err)
	}
}

func TestTreeBuilderLinkCollectsDisplayedText(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	steps := []Token{
		{Type: OpenToken, Element: ElemHyperlink, Content: "https://go.dev", Alt: "go"},
		{Type: ContentToken, Element: ElemContent, Content: "lang"},
		{Type: CloseToken, Element: ElemHyperlink},
	}
	for _, tok := range steps {
		if err := b.Consume(tok); err != nil {
			t.Fatalf("consume %v: %v", tok, err)
		}
	}
	root, err := b.Root()
	if err != nil {
		t.Fatal(err)
	}
	link := root.Children[0].(*LinkNode)
	if link.Displayed != "golang" {
		t.Fatalf("displayed = %q, want %q", link.Displayed, "golang")
	}
}

func TestTreeBuilderAppendSubtreeKeepsCursor(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	if err := b.Consume(Token{Type: OpenToken, Element: ElemParagraph}); err != nil {
		t.Fatal(err)
	}
	subtree := &ElementNode{Elem: ElemTable}
	if err := b.AppendSubtree(subtree); err != nil {
		t.Fatal(err)
	}
	el, err := b.CurrentElement()
	if err != nil {
		t.Fatal(err)
	}
	if el != ElemParagraph {
		t.Fatalf("cursor moved to %v, want %v", el, ElemParagraph)
	}
}

func TestTreeBuilderRootTransfersOnce(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	if _, err := b.Root(); err != nil {
		t.Fatalf("first transfer: %v", err)
	}
	if _, err := b.Root(); !errors.Is(err, ErrRootTransferred) {
		t.Fatalf("second transfer err = %v, want ErrRootTransferred", err)
	}
}

func TestTreeBuilderAttributeOnCursor(t *testing.T) {
	t.Parallel()

	b := NewTreeBuilder()
	if err := b.Consume(Token{Type: OpenToken, Element: ElemSpan}); err != nil {
		t.Fatal(err)
	}
	if err := b.AddAttribute(AttrBold); err != nil {
		t.Fatal(err)
	}
	root, err := b.Root()
	if err != nil {
		t.Fatal(err)
	}
	span := root.Children[0].(*ElementNode)
	if len(span.Attributes) != 1 || span.Attributes[0] != AttrBold {
		t.Fatalf("attributes = %v, want [Bold]", span.Attributes)
	}
}
