package md2html

import "fmt"

// TreeBuilder constructs the document tree from the token stream. The
// cursor, the current open parent, is kept as an explicit path of nodes
// from the root, so ascending never needs parent pointers.
type TreeBuilder struct {
	root *ElementNode
	path []Node // path[0] is the root; empty means the cursor left the tree
}

// NewTreeBuilder returns a builder holding a fresh document root.
func NewTreeBuilder() *TreeBuilder {
	root := &ElementNode{Elem: ElemDocStart}
	return &TreeBuilder{root: root, path: []Node{root}}
}

// Consume applies a single token to the tree.
//
// Opens allocate a node of the matching variant, attach it under the
// cursor and descend into it. Closes check the element against the cursor
// and ascend. Content attaches a text leaf without moving the cursor.
// EOF is a no-op.
func (b *TreeBuilder) Consume(tok Token) error {
	switch tok.Type {
	case OpenToken:
		var node Node
		switch tok.Element {
		case ElemImage:
			node = &ImageNode{Src: tok.Content, Alt: tok.Alt, Title: tok.Title}
		case ElemHyperlink:
			node = &LinkNode{Href: tok.Content, Displayed: tok.Alt, Title: tok.Title}
		default:
			node = &ElementNode{Elem: tok.Element}
		}
		if err := b.appendChild(node); err != nil {
			return err
		}
		b.path = append(b.path, node)
		return nil

	case CloseToken:
		if len(b.path) == 0 {
			return fmt.Errorf("%w: closing %s with no open element", ErrNilCursor, tok.Element)
		}
		cur := b.path[len(b.path)-1]
		if tok.Element != cur.Element() {
			return fmt.Errorf("%w: closing %s while %s is open",
				ErrShapeMismatch, tok.Element, cur.Element())
		}
		if cur.Element() == ElemDocStart {
			tracer().Infof("closing the document root; the cursor leaves the tree")
		}
		b.path = b.path[:len(b.path)-1]
		return nil

	case ContentToken:
		return b.appendChild(&TextNode{Text: tok.Content})

	case EOFToken:
		return nil

	default:
		return fmt.Errorf("%w: %d", ErrUnknownToken, tok.Type)
	}
}

// appendChild attaches a node under the cursor without moving it. Text
// landing on an open hyperlink joins its displayed text, since links are
// leaves for the finished tree.
func (b *TreeBuilder) appendChild(child Node) error {
	if len(b.path) == 0 {
		return fmt.Errorf("%w: cannot attach %s", ErrNilCursor, child.Element())
	}
	switch cur := b.path[len(b.path)-1].(type) {
	case *ElementNode:
		cur.AddChild(child)
		return nil
	case *LinkNode:
		if text, ok := child.(*TextNode); ok {
			cur.Displayed += text.Text
			return nil
		}
		return fmt.Errorf("%w: cannot nest %s inside a hyperlink",
			ErrShapeMismatch, child.Element())
	default:
		return fmt.Errorf("%w: %s cannot hold children",
			ErrShapeMismatch, b.path[len(b.path)-1].Element())
	}
}

// AddAttribute decorates the cursor's node.
func (b *TreeBuilder) AddAttribute(a Attribute) error {
	if len(b.path) == 0 {
		return fmt.Errorf("%w: cannot add attribute %s", ErrNilCursor, a.Name())
	}
	el, ok := b.path[len(b.path)-1].(*ElementNode)
	if !ok {
		return fmt.Errorf("%w: attribute %s on a leaf node", ErrShapeMismatch, a.Name())
	}
	el.AddAttribute(a)
	return nil
}

// AppendSubtree attaches an externally built subtree under the cursor
// without moving it. The table manager grafts finished tables this way.
func (b *TreeBuilder) AppendSubtree(subtree Node) error {
	tracer().Debugf("appending subtree rooted at %s", subtree.Element())
	return b.appendChild(subtree)
}

// CurrentElement reports the element the cursor points at.
func (b *TreeBuilder) CurrentElement() (ElementType, error) {
	if len(b.path) == 0 {
		return ElemDocStart, ErrNilCursor
	}
	return b.path[len(b.path)-1].Element(), nil
}

// Root transfers ownership of the finished tree out of the builder. It
// works exactly once; the builder is unusable afterwards.
func (b *TreeBuilder) Root() (*ElementNode, error) {
	if b.root == nil {
		return nil, ErrRootTransferred
	}
	root := b.root
	b.root = nil
	b.path = nil
	return root, nil
}
