package md2html

// Table parsing: the header row fixes the column count, the separator row
// must repeat a pipe-delimited run of three or more dashes per column,
// and every body row starts with a pipe. Any violation raises the
// TableFailed flag, which makes the table manager emit the surviving rows
// and demote the broken one to a paragraph.

func handleTableHeaderNames(c *parseContext, next byte) {
	switch next {
	case '\n':
		if c.consumedOnlyWhitespace() {
			c.emitToken(CloseToken, ElemTableHead)
			c.emitToken(CloseToken, ElemTableRow)
			c.state = stateTableHeaderSepPipeAwaiting
			c.counter = 0
		} else {
			c.emitToken(ContentToken, ElemContent)
			c.raiseFlag(tableFailed)
			c.state = c.returnStack.pop()
		}
	case '|':
		c.emitToken(ContentToken, ElemContent)
		c.emitToken(CloseToken, ElemTableHead)
		c.emitToken(OpenToken, ElemTableHead)
	case '*':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateDataAsterisk
		c.pushReturn(stateTableHeaderNames)
	case '`':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateDataBacktick
		c.pushReturn(stateTableHeaderNames)
	case '[':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateAltOpenSquared
		c.isImage = false
		c.pushReturn(stateTableHeaderNames)
	default:
		c.consumed += string(next)
	}
}

func handleTableHeaderSepPipeAwaiting(c *parseContext, next byte) {
	switch next {
	case '\n':
		c.raiseFlag(tableFailed)
		c.emitContentToken()
		c.state = c.returnStack.pop()
	case ' ', '\t':
		c.consumed += string(next)
	case '|':
		c.consumed += "|"
		c.counter = 0
		c.altCounter = 0
		c.state = stateTableHeaderSeparation
	default:
		c.consumed += string(next)
		c.raiseFlag(tableFailed)
		c.emitContentToken()
		c.state = c.returnStack.pop()
	}
}

func handleTableHeaderSeparation(c *parseContext, next byte) {
	switch next {
	case '\n':
		if c.emitter.colDims() == c.altCounter {
			c.altCounter = 0
			c.counter = 0
			c.consumed = ""
			c.state = stateTableCellPipeAwaiting
			c.emitToken(OpenToken, ElemTableRow)
			if c.eofReached {
				c.raiseFlag(tableFailed)
			}
			return
		}
		c.altCounter = 0
		c.counter = 0
		c.emitToken(ContentToken, ElemContent)
		c.raiseFlag(tableFailed)
		c.state = c.returnStack.pop()
	case '|':
		c.altCounter++
		c.consumed += "|"
		if c.counter < 3 {
			c.raiseFlag(tableFailed)
			c.emitContentToken()
			c.state = c.returnStack.pop()
			return
		}
		c.counter = 0
	case ' ', '\t':
		c.consumed += string(next)
	case '-':
		c.counter++
		c.consumed += "-"
	default:
		c.consumed += string(next)
		c.raiseFlag(tableFailed)
		c.emitContentToken()
		c.state = c.returnStack.pop()
	}
}

func handleTableCellPipeAwaiting(c *parseContext, next byte) {
	switch next {
	case '\n':
		c.raiseFlag(tableFailed)
		c.state = c.returnStack.pop()
	case ' ', '\t':
		// leading whitespace before the row's first pipe is ignored
	case '|':
		c.emitToken(OpenToken, ElemTableCell)
		c.state = stateTableCellData
	default:
		c.raiseFlag(tableFailed)
		c.state = c.returnStack.pop()
		c.consumed += string(next)
	}
}

func handleTableCellData(c *parseContext, next byte) {
	switch next {
	case '\n':
		if !c.consumedOnlyWhitespace() {
			c.emitToken(ContentToken, ElemContent)
			c.raiseFlag(tableFailed)
			c.state = c.returnStack.pop()
			return
		}
		c.emitToken(CloseToken, ElemTableCell)
		c.emitToken(CloseToken, ElemTableRow)
		c.emitToken(OpenToken, ElemTableRow)
		if c.eofReached {
			c.raiseFlag(tableFailed)
		}
		c.state = stateTableCellPipeAwaiting
		c.consumed = ""
	case '|':
		c.emitToken(ContentToken, ElemContent)
		c.emitToken(CloseToken, ElemTableCell)
		c.emitToken(OpenToken, ElemTableCell)
	case '*':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateDataAsterisk
		c.pushReturn(stateTableCellData)
	case '`':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateDataBacktick
		c.pushReturn(stateTableCellData)
	case '[':
		c.emitToken(ContentToken, ElemContent)
		c.state = stateAltOpenSquared
		c.isImage = false
		c.pushReturn(stateTableCellData)
	default:
		c.consumed += string(next)
	}
}
