package md2html

// The asterisk family: one, two, or three asterisks open italic, bold,
// or bold+italic spans. A newline inside an unclosed run rolls the
// opening sigils back as literal text; a pipe inside a table flushes the
// literal prefix and acts as a cell boundary.

const (
	warnUnclosedAsteriskOne    = "Unclosed asterisk signifying italic text - converting '*' to plain text"
	warnUnclosedAsteriskTwo    = "Unclosed asterisk signifying bold text - converting '**' to plain text"
	warnUnclosedAsteriskThree  = "Unclosed asterisk signifying bold text - converting '***' to plain text"
	warnUnclosedAsteriskInBody = "Unclosed asterisk signifying bold text - converting to plain text"
)

// inTableReturn reports whether the construct was entered from a table
// state, which turns newline degradation into table failure.
func inTableReturn(c *parseContext) bool {
	top := c.returnStack.top()
	return top == stateTableHeaderNames || top == stateTableCellData
}

func handleDataAsterisk(c *parseContext, next byte) {
	switch next {
	case '*':
		c.state = stateDataDoubleAsterisk
	case '\n':
		c.warning = warnUnclosedAsteriskOne
		c.handleUnexpectedNewline("*", c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskOne
			c.handlePipeInTable("*", false)
			return
		}
		c.consumed += string(next)
		c.state = stateDataAsteriskData
	default:
		c.consumed += string(next)
		c.state = stateDataAsteriskData
	}
}

func handleAsteriskData(c *parseContext, next byte) {
	switch next {
	case '*':
		c.openInline(ElemSpan)
		c.addAttribute(AttrItalic)
		c.emitToken(ContentToken, ElemContent)
		c.emitToken(CloseToken, ElemSpan)
		c.state = c.returnStack.pop()
	case '\n':
		c.warning = warnUnclosedAsteriskInBody
		toEmit := "*" + c.consumed
		c.consumed = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskInBody
			c.handlePipeInTable("*", false)
			return
		}
		c.consumed += string(next)
	default:
		c.consumed += string(next)
	}
}

func handleDoubleAsterisk(c *parseContext, next byte) {
	switch next {
	case '*':
		c.state = stateDataTripleAsterisk
	case '\n':
		c.warning = warnUnclosedAsteriskTwo
		c.handleUnexpectedNewline("**", c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskTwo
			c.handlePipeInTable("**", false)
			return
		}
		c.consumed += string(next)
		c.state = stateDataDoubleAsteriskData
	default:
		c.consumed += string(next)
		c.state = stateDataDoubleAsteriskData
	}
}

func handleDoubleAsteriskData(c *parseContext, next byte) {
	switch next {
	case '*':
		c.counter++
		if c.counter == 2 {
			c.counter = 0
			c.openInline(ElemSpan)
			c.addAttribute(AttrBold)
			c.emitToken(ContentToken, ElemContent)
			c.emitToken(CloseToken, ElemSpan)
			c.state = c.returnStack.pop()
		}
	case '\n':
		c.warning = warnUnclosedAsteriskInBody
		toEmit := "**" + c.consumed
		if c.counter == 1 {
			toEmit += "*"
		}
		c.consumed = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskInBody
			c.handlePipeInTable("**", false)
			return
		}
		c.counter = 0
		c.consumed += string(next)
	default:
		c.counter = 0
		c.consumed += string(next)
	}
}

func handleTripleAsterisk(c *parseContext, next byte) {
	switch next {
	case '*':
		// A fourth asterisk collapses the whole run to literal text.
		c.consumed += "****"
		c.state = c.returnStack.pop()
	case '\n':
		c.warning = warnUnclosedAsteriskThree
		c.handleUnexpectedNewline("***", c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskThree
			c.handlePipeInTable("***", false)
			return
		}
		c.consumed += string(next)
		c.state = stateDataTripleAsteriskData
	default:
		c.consumed += string(next)
		c.state = stateDataTripleAsteriskData
	}
}

func handleTripleAsteriskData(c *parseContext, next byte) {
	switch next {
	case '*':
		c.counter++
		if c.counter == 3 {
			c.counter = 0
			c.openInline(ElemSpan)
			c.addAttribute(AttrBold)
			c.addAttribute(AttrItalic)
			c.emitToken(ContentToken, ElemContent)
			c.emitToken(CloseToken, ElemSpan)
			c.state = c.returnStack.pop()
		}
	case '\n':
		c.warning = warnUnclosedAsteriskInBody
		toEmit := "***" + c.consumed
		for i := 0; i < c.counter; i++ {
			toEmit += "*"
		}
		c.consumed = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedAsteriskInBody
			c.handlePipeInTable("***", false)
			return
		}
		c.counter = 0
		c.consumed += string(next)
	default:
		c.counter = 0
		c.consumed += string(next)
	}
}
