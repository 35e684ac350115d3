package md2html

import "fmt"

// tableManager is a mirror builder active only while a table is being
// parsed. It assembles a complete table subtree on the side and either
// grafts it onto the main tree or, when the table fails, demotes the last
// row back into a paragraph. The column count is fixed by the header row
// and is authoritative for every body row: short rows are padded with
// empty cells, surplus cells are dropped.
type tableManager struct {
	builder   *TreeBuilder
	tableRoot *ElementNode
	path      []Node // cursor path inside the table subtree
	colDims   int
}

func newTableManager(builder *TreeBuilder) *tableManager {
	return &tableManager{builder: builder}
}

func (m *tableManager) current() Node {
	if len(m.path) == 0 {
		return nil
	}
	return m.path[len(m.path)-1]
}

func (m *tableManager) ascend() error {
	if len(m.path) == 0 {
		return fmt.Errorf("%w: table cursor above the table root", ErrNilCursor)
	}
	m.path = m.path[:len(m.path)-1]
	return nil
}

// consume applies one token to the table subtree.
func (m *tableManager) consume(tok Token) error {
	switch tok.Element {
	case ElemTable:
		if tok.Type != OpenToken {
			return fmt.Errorf("%w: table close outside table parsing", ErrShapeMismatch)
		}
		if m.tableRoot != nil {
			return ErrTableRestarted
		}
		m.tableRoot = &ElementNode{Elem: ElemTable}
		m.tableRoot.AddAttribute(AttrTableStyle)
		m.path = []Node{m.tableRoot}
		return nil

	case ElemTableRow:
		if tok.Type == OpenToken {
			return m.createNode(tok.Element)
		}
		return m.closeRow()

	case ElemTableHead:
		if tok.Type == OpenToken {
			return m.createNode(tok.Element)
		}
		return m.ascend()

	case ElemTableCell:
		if tok.Type == OpenToken {
			// Cells past the authoritative width are not opened; their
			// content accumulates in the row and is dropped there.
			if row, ok := m.current().(*ElementNode); ok && len(row.Children) < m.colDims {
				return m.createNode(tok.Element)
			}
			return nil
		}
		if cur := m.current(); cur != nil && cur.Element() == ElemTableCell {
			return m.ascend()
		}
		return nil

	case ElemContent:
		cur := m.current()
		if cur == nil {
			return fmt.Errorf("%w: table content with no open cell", ErrNilCursor)
		}
		if cur.Element() == ElemTableRow {
			return nil // overflow beyond colDims, dropped
		}
		if link, ok := cur.(*LinkNode); ok {
			link.Displayed += tok.Content
			return nil
		}
		if el, ok := cur.(*ElementNode); ok {
			el.AddChild(&TextNode{Text: tok.Content})
			return nil
		}
		return fmt.Errorf("%w: table content under %s", ErrShapeMismatch, cur.Element())

	case ElemHyperlink:
		if tok.Type == OpenToken {
			link := &LinkNode{Href: tok.Content, Displayed: tok.Alt, Title: tok.Title}
			if err := m.attach(link); err != nil {
				return err
			}
			m.path = append(m.path, link)
			return nil
		}
		return m.ascend()

	case ElemSpan, ElemCodeblock:
		if tok.Type == OpenToken {
			return m.createNode(tok.Element)
		}
		return m.ascend()

	default:
		tracer().Errorf("unrecognized element %s in table parsing", tok.Element)
		return nil
	}
}

// closeRow finishes a row. The header row (recognized by colDims still
// being zero) fixes the column count after discarding the trailing empty
// head produced by the terminating pipe; body rows are padded up to the
// column count.
func (m *tableManager) closeRow() error {
	row, ok := m.current().(*ElementNode)
	if !ok {
		return fmt.Errorf("%w: row close without an open row", ErrShapeMismatch)
	}
	if m.colDims != 0 {
		for len(row.Children) < m.colDims {
			row.AddChild(&ElementNode{Elem: ElemTableCell})
		}
		return m.ascend()
	}
	row.RemoveLastChild()
	m.colDims = len(row.Children)
	if m.colDims == 0 {
		return ErrEmptyTableHeader
	}
	return m.ascend()
}

// addAttribute decorates the table cursor's node.
func (m *tableManager) addAttribute(a Attribute) error {
	el, ok := m.current().(*ElementNode)
	if !ok {
		return fmt.Errorf("%w: attribute %s outside a table element", ErrNilCursor, a.Name())
	}
	el.AddAttribute(a)
	return nil
}

func (m *tableManager) createNode(el ElementType) error {
	node := &ElementNode{Elem: el}
	switch el {
	case ElemTableRow:
		node.AddAttribute(AttrTableRow)
	case ElemTableHead:
		node.AddAttribute(AttrTableHeader)
	case ElemTableCell:
		node.AddAttribute(AttrTableCell)
	}
	if err := m.attach(node); err != nil {
		return err
	}
	m.path = append(m.path, node)
	return nil
}

func (m *tableManager) attach(node Node) error {
	parent, ok := m.current().(*ElementNode)
	if !ok {
		return fmt.Errorf("%w: attaching %s outside the table", ErrNilCursor, node.Element())
	}
	parent.AddChild(node)
	return nil
}

// emitOnSuccess grafts the finished table onto the main tree and resets.
func (m *tableManager) emitOnSuccess() error {
	if m.tableRoot == nil {
		return fmt.Errorf("%w: no table subtree to emit", ErrNilCursor)
	}
	err := m.builder.AppendSubtree(m.tableRoot)
	m.reset()
	return err
}

// emitOnFailure removes the last, partially parsed row, emits whatever
// rows survived as a normal table, and re-emits the removed row as a
// paragraph so no content is lost.
func (m *tableManager) emitOnFailure() error {
	if m.tableRoot == nil {
		return fmt.Errorf("%w: no table subtree to demote", ErrNilCursor)
	}
	lastRow, ok := m.tableRoot.RemoveLastChild()
	if !ok {
		m.reset()
		return nil
	}
	if len(m.tableRoot.Children) > 0 {
		if err := m.builder.AppendSubtree(m.tableRoot); err != nil {
			m.reset()
			return err
		}
	}
	err := m.emitRowAsParagraph(lastRow)
	m.reset()
	return err
}

// emitRowAsParagraph rebuilds a demoted row as a paragraph: the cells'
// children interleaved with literal pipe leaves, one leading pipe per
// cell.
func (m *tableManager) emitRowAsParagraph(row Node) error {
	rowEl, ok := row.(*ElementNode)
	if !ok || len(rowEl.Children) == 0 {
		return nil
	}
	para := &ElementNode{Elem: ElemParagraph}
	for _, cell := range rowEl.Children {
		para.AddChild(&TextNode{Text: "|"})
		if cellEl, ok := cell.(*ElementNode); ok {
			para.Children = append(para.Children, cellEl.Children...)
		} else {
			para.AddChild(cell)
		}
	}
	return m.builder.AppendSubtree(para)
}

func (m *tableManager) reset() {
	m.tableRoot = nil
	m.path = nil
	m.colDims = 0
}
