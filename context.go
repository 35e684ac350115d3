package md2html

// parseContext is the bag of counters, buffers, and flags the state
// handlers mutate. One instance lives for the duration of a parse; the
// driver resets it before the first character and drops it when the tree
// is handed off.
type parseContext struct {
	state       state
	consumed    string // pending textual content
	counter     int
	altCounter  int
	indentLevel int
	newlines    int

	src string // scratch buffer for image/hyperlink sources
	alt string // scratch buffer for image/hyperlink alt text

	isImage          bool
	isEscaped        bool
	blockquoteInList bool
	eofReached       bool

	warning string // drained by the driver after every handler call

	emitter     *tokenEmitter
	returnStack *returnStateStack

	err error // first internal error, sticky
}

func newParseContext() *parseContext {
	return &parseContext{
		state:       stateData,
		emitter:     newTokenEmitter(NewTreeBuilder()),
		returnStack: &returnStateStack{},
	}
}

// fail records the first internal error. The driver checks it after every
// handler invocation and aborts the parse.
func (c *parseContext) fail(err error) {
	if c.err == nil {
		c.err = err
	}
}

// pushReturn pushes a resumable state, recording any violation.
func (c *parseContext) pushReturn(s state) {
	if err := c.returnStack.push(s); err != nil {
		c.fail(err)
	}
}

// emitToken emits a token of the given type. Close tokens discard the
// pending content; content tokens carry it and clear the buffer.
func (c *parseContext) emitToken(tt TokenType, el ElementType) {
	var text string
	switch tt {
	case CloseToken:
		c.consumed = ""
	case ContentToken:
		text = c.consumed
		c.consumed = ""
	}
	if err := c.emitter.emitToken(Token{Type: tt, Element: el, Content: text}); err != nil {
		c.fail(err)
	}
}

// addAttribute decorates the element most recently opened.
func (c *parseContext) addAttribute(a Attribute) {
	if err := c.emitter.addAttribute(a); err != nil {
		c.fail(err)
	}
}

// raiseFlag notifies the emitter that the active table finished.
func (c *parseContext) raiseFlag(f parseFlag) {
	if err := c.emitter.handleFlag(f); err != nil {
		c.fail(err)
	}
}

// currentElement reports the element the main builder's cursor points at.
func (c *parseContext) currentElement() ElementType {
	el, err := c.emitter.currentElement()
	if err != nil {
		c.fail(err)
		return ElemDocStart
	}
	return el
}

// emitContentToken flushes the pending content. Content arriving at the
// top level lazily opens a paragraph first.
func (c *parseContext) emitContentToken() {
	if c.consumed == "" {
		return
	}
	if c.currentElement() == ElemDocStart {
		c.emitToken(OpenToken, ElemParagraph)
	}
	c.emitToken(ContentToken, ElemContent)
}

// openInline opens an inline element. Like content, an inline construct
// arriving at the top level lazily opens a paragraph around itself; table
// mode leaves wrapping to the table manager's cells.
func (c *parseContext) openInline(el ElementType) {
	if !c.emitter.tableMode && c.currentElement() == ElemDocStart {
		c.emitToken(OpenToken, ElemParagraph)
	}
	c.emitToken(OpenToken, el)
}

// handlePipeInTable flushes an unclosed inline construct as literal cell
// content and treats the pipe as a cell boundary. With full set, toEmit
// replaces the pending content instead of prefixing it.
func (c *parseContext) handlePipeInTable(toEmit string, full bool) {
	toClose := ElemTableHead
	if c.returnStack.top() == stateTableCellData {
		toClose = ElemTableCell
	}
	if full {
		c.consumed = toEmit
	} else {
		c.consumed = toEmit + c.consumed
	}
	c.emitToken(ContentToken, ElemContent)
	c.state = c.returnStack.pop()
	c.emitToken(CloseToken, toClose)
	c.emitToken(OpenToken, toClose)
}

// handleUnexpectedNewline degrades an unclosed construct: the literal
// prefix in toEmit rejoins the content buffer, the surrounding element is
// closed or the paragraph soft-break counter advances, and the state
// returns to the recorded resume point. Inside a table the degradation
// instead fails the whole table.
func (c *parseContext) handleUnexpectedNewline(toEmit string, eofReached bool) {
	if top := c.returnStack.top(); top == stateTableHeaderNames || top == stateTableCellData {
		c.consumed += toEmit
		c.emitToken(ContentToken, ElemContent)
		c.raiseFlag(tableFailed)
		c.state = c.returnStack.pop()
		return
	}

	if toEmit != "" {
		c.consumed += toEmit
		c.emitContentToken()
	}

	curr := c.currentElement()
	if curr == ElemParagraph && !eofReached {
		c.newlines++
	} else {
		c.newlines = 0
		c.emitToken(CloseToken, curr)
	}
	c.counter = 0
	c.state = c.returnStack.pop()
}

// setupListParsing resets the indentation bookkeeping.
func (c *parseContext) setupListParsing() {
	c.counter = 0
	c.indentLevel = 0
}

// moveUpTheTree closes the current element, ascending the cursor.
func (c *parseContext) moveUpTheTree() {
	c.emitToken(CloseToken, c.currentElement())
}

func (c *parseContext) consumedOnlyWhitespace() bool {
	for i := 0; i < len(c.consumed); i++ {
		if c.consumed[i] != ' ' && c.consumed[i] != '\t' {
			return false
		}
	}
	return true
}

// emitImage emits a finished image: src and alt from their scratch
// buffers, the pending content as the title.
func (c *parseContext) emitImage() {
	if !c.emitter.tableMode && c.currentElement() == ElemDocStart {
		c.emitToken(OpenToken, ElemParagraph)
	}
	if err := c.emitter.emitToken(Token{
		Type: OpenToken, Element: ElemImage,
		Content: c.src, Alt: c.alt, Title: c.consumed,
	}); err != nil {
		c.fail(err)
	}
	c.emitToken(CloseToken, ElemImage)
	c.src, c.alt, c.consumed = "", "", ""
}

// emitHyperlink emits a finished hyperlink, shaped like emitImage.
func (c *parseContext) emitHyperlink() {
	if !c.emitter.tableMode && c.currentElement() == ElemDocStart {
		c.emitToken(OpenToken, ElemParagraph)
	}
	if err := c.emitter.emitToken(Token{
		Type: OpenToken, Element: ElemHyperlink,
		Content: c.src, Alt: c.alt, Title: c.consumed,
	}); err != nil {
		c.fail(err)
	}
	c.emitToken(CloseToken, ElemHyperlink)
	c.src, c.alt, c.consumed = "", "", ""
}
