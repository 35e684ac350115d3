package md2html

// indentation is the whitespace unit for nested lists. A tab counts as
// one unit.
const indentation = 4

// stateHandlers links every state to its handler. The table is indexed by
// the state value, so the order of entries is pinned to the state enum.
var stateHandlers = [stateCount]func(*parseContext, byte){
	stateData:                       handleData,
	stateDataHashtag:                handleHashtag,
	stateDataAsterisk:               handleDataAsterisk,
	stateDataAsteriskData:           handleAsteriskData,
	stateDataDoubleAsterisk:         handleDoubleAsterisk,
	stateDataDoubleAsteriskData:     handleDoubleAsteriskData,
	stateDataTripleAsterisk:         handleTripleAsterisk,
	stateDataTripleAsteriskData:     handleTripleAsteriskData,
	stateDataConsumingNumber:        handleDataConsumingNumber,
	stateDataOrdinalNumber:          handleDataOrdinalNumber,
	stateHorizontalLine:             handleHorizontalLine,
	stateDataBacktick:               handleDataBacktick,
	stateDataDoubleBacktick:         handleDataDoubleBacktick,
	stateCodeInline:                 handleCodeInline,
	stateCodeBlock:                  handleCodeBlock,
	stateUnorderedListPrep:          handleUnorderedListPrep,
	stateUnorderedList:              handleUnorderedList,
	stateOrderedListPrep:            handleOrderedListPrep,
	stateImage:                      handleImage,
	stateAltOpenSquared:             handleAltOpenSquared,
	stateAltClosedSquared:           handleAltClosedSquared,
	stateURLOpenRound:               handleURLOpenRound,
	stateTitleOpenRound:             handleTitleOpenRound,
	stateTitleConsuming:             handleTitleConsuming,
	stateTitleClosedRound:           handleTitleClosedRound,
	stateTableHeaderNames:           handleTableHeaderNames,
	stateTableHeaderSepPipeAwaiting: handleTableHeaderSepPipeAwaiting,
	stateTableHeaderSeparation:      handleTableHeaderSeparation,
	stateTableCellPipeAwaiting:      handleTableCellPipeAwaiting,
	stateTableCellData:              handleTableCellData,
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// handleData is the baseline scanning state. Sigils at the start of a
// line (empty content buffer) open block constructs; anywhere else they
// either start inline constructs or fall through to literal text.
func handleData(c *parseContext, next byte) {
	switch next {
	case '#':
		if c.consumed == "" {
			c.pushReturn(stateData)
			c.counter++
			c.state = stateDataHashtag
		} else {
			c.consumed += string(next)
		}
	case '*':
		c.emitContentToken()
		c.pushReturn(stateData)
		c.state = stateDataAsterisk
	case '-':
		if c.consumed == "" {
			c.counter++
			c.pushReturn(stateData)
			c.state = stateHorizontalLine
		} else {
			c.consumed += string(next)
		}
	case '`':
		c.emitContentToken()
		c.pushReturn(stateData)
		c.state = stateDataBacktick
	case '>':
		if c.consumed == "" {
			c.emitToken(OpenToken, ElemSpan)
			c.addAttribute(AttrBlockQuote)
			c.pushReturn(stateData)
		} else {
			c.consumed += string(next)
		}
	case '[':
		c.emitContentToken()
		c.pushReturn(stateData)
		c.isImage = false
		c.state = stateAltOpenSquared
	case '!':
		c.emitContentToken()
		c.state = stateImage
		c.isImage = true
		c.pushReturn(stateData)
	case '|':
		if c.consumedOnlyWhitespace() {
			c.consumed = ""
			c.state = stateTableHeaderNames
			c.pushReturn(stateData)
			c.emitToken(OpenToken, ElemTable)
			c.emitToken(OpenToken, ElemTableRow)
			c.emitToken(OpenToken, ElemTableHead)
		} else {
			c.consumed += "|"
		}
	case '\n':
		curr := c.currentElement()
		c.emitContentToken()

		if c.newlines == 1 && curr == ElemParagraph {
			c.emitToken(CloseToken, ElemParagraph)
		} else if curr != ElemDocStart && curr != ElemParagraph {
			c.emitToken(CloseToken, curr)
			if c.blockquoteInList {
				c.emitToken(CloseToken, ElemListItem)
				c.blockquoteInList = false
			}
			c.state = c.returnStack.pop()
		}

		if curr == ElemParagraph {
			c.newlines++
		}
	default:
		if c.consumed == "" && isDigit(next) {
			c.consumed += string(next)
			c.pushReturn(stateData)
			c.state = stateDataConsumingNumber
			return
		}
		c.consumed += string(next)
	}
}

// handleHashtag counts consecutive hashes. Up to six followed by a space
// open a header; anything else collapses the hashes to literal text.
func handleHashtag(c *parseContext, next byte) {
	switch {
	case next == '#' && c.counter < 6:
		c.counter++
	case next == ' ':
		// The Data entry for this line is still on the return stack; the
		// header close pops it, so no second push here.
		c.emitToken(OpenToken, headerForLevel(c.counter))
		c.addAttribute(AttrBold)
		c.addAttribute(fontSizeForLevel(c.counter))
		c.counter = 0
		c.state = stateData
	case next == '\n':
		for i := 0; i < c.counter; i++ {
			c.consumed += "#"
		}
		toEmit := c.consumed
		c.consumed = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	default:
		for i := 0; i < c.counter; i++ {
			c.consumed += "#"
		}
		c.consumed += string(next)
		c.counter = 0
		c.state = c.returnStack.pop()
	}
}
