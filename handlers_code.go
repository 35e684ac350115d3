package md2html

// The backtick family: one backtick opens inline code, two collapse to
// literal text, three open a code block that ignores newlines until the
// next three backticks.

const warnUnclosedBacktick = "Unclosed backtick signifying a code element - handling as plain text"

func handleDataBacktick(c *parseContext, next byte) {
	switch next {
	case '`':
		if inTableReturn(c) {
			c.consumed = "``"
			c.emitToken(ContentToken, ElemContent)
			c.state = c.returnStack.pop()
			return
		}
		c.state = stateDataDoubleBacktick
	case '\n':
		c.warning = warnUnclosedBacktick
		c.handleUnexpectedNewline("`", c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedBacktick
			c.handlePipeInTable("`", false)
			return
		}
		c.consumed += string(next)
		c.state = stateCodeInline
	default:
		c.consumed += string(next)
		c.state = stateCodeInline
	}
}

func handleDataDoubleBacktick(c *parseContext, next byte) {
	switch next {
	case '`':
		c.state = stateCodeBlock
	case '\n':
		c.handleUnexpectedNewline("``", c.eofReached)
	default:
		c.consumed = "``"
		c.emitContentToken()
		c.consumed = string(next)
		c.state = c.returnStack.pop()
	}
}

func handleCodeInline(c *parseContext, next byte) {
	switch next {
	case '`':
		c.openInline(ElemCodeblock)
		c.addAttribute(AttrInline)
		c.emitToken(ContentToken, ElemContent)
		c.emitToken(CloseToken, ElemCodeblock)
		c.state = c.returnStack.pop()
	case '\n':
		c.warning = warnUnclosedBacktick
		toEmit := "`" + c.consumed
		c.consumed = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableReturn(c) {
			c.warning = warnUnclosedBacktick
			c.handlePipeInTable("`", false)
			return
		}
		c.consumed += string(next)
	default:
		c.consumed += string(next)
	}
}

func handleCodeBlock(c *parseContext, next byte) {
	switch next {
	case '`':
		c.counter++
		if c.counter == 3 {
			c.openInline(ElemCodeblock)
			c.addAttribute(AttrBlock)
			c.emitToken(ContentToken, ElemContent)
			c.emitToken(CloseToken, ElemCodeblock)
			c.counter = 0
			c.state = c.returnStack.pop()
		}
	default:
		// Newlines are ordinary content here; code blocks span lines.
		if c.counter != 0 {
			for i := 0; i < c.counter; i++ {
				c.consumed += "`"
			}
			c.counter = 0
		}
		c.consumed += string(next)
	}
}
