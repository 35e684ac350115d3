package md2html

// parseFlag signals the outcome of table parsing to the emitter.
type parseFlag uint8

const (
	tableFailed parseFlag = iota
	tableSuccess
)

// tokenEmitter multiplexes tokens between the main tree builder and the
// table manager. A Table open flips it into table mode; the table's
// success or failure flag flips it back.
type tokenEmitter struct {
	builder   *TreeBuilder
	table     *tableManager
	tableMode bool
}

func newTokenEmitter(builder *TreeBuilder) *tokenEmitter {
	return &tokenEmitter{
		builder: builder,
		table:   newTableManager(builder),
	}
}

func (e *tokenEmitter) emitToken(tok Token) error {
	if e.tableMode {
		tracer().Debugf("emitting %s to table builder", tok.Element)
		return e.table.consume(tok)
	}
	if tok.Element == ElemTable {
		e.tableMode = true
		tracer().Debugf("table parsing has started")
		return e.table.consume(tok)
	}
	tracer().Debugf("emitting %s to tree builder", tok.Element)
	return e.builder.Consume(tok)
}

func (e *tokenEmitter) handleFlag(flag parseFlag) error {
	switch flag {
	case tableFailed:
		tracer().Debugf("table parsing has ended in failure")
		e.tableMode = false
		return e.table.emitOnFailure()
	case tableSuccess:
		tracer().Debugf("table parsing has ended")
		e.tableMode = false
		return e.table.emitOnSuccess()
	}
	return nil
}

func (e *tokenEmitter) addAttribute(a Attribute) error {
	if e.tableMode {
		return e.table.addAttribute(a)
	}
	return e.builder.AddAttribute(a)
}

// currentElement always reports the main builder's cursor; the handlers
// use it to decide paragraph and list closing even while a table is open.
func (e *tokenEmitter) currentElement() (ElementType, error) {
	return e.builder.CurrentElement()
}

// colDims reports the active table's authoritative column count.
func (e *tokenEmitter) colDims() int {
	return e.table.colDims
}
