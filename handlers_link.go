package md2html

// Images and hyperlinks: ![alt](src "title") with the leading bang for
// images, without it for hyperlinks. Any newline before the closing
// parenthesis reverts the partial markup to literal text, reconstructing
// exactly the characters read so far; inside a table the pipe variants
// flush that reconstruction as cell content instead.

// inTableLink reports whether a hyperlink construct (never an image) was
// entered from a table state.
func inTableLink(c *parseContext) bool {
	return !c.isImage && inTableReturn(c)
}

func handleImage(c *parseContext, next byte) {
	switch next {
	case '[':
		c.state = stateAltOpenSquared
	case '\n':
		c.handleUnexpectedNewline("!", c.eofReached)
	default:
		c.consumed = "!" + string(next)
		c.state = c.returnStack.pop()
	}
}

func handleAltOpenSquared(c *parseContext, next byte) {
	switch next {
	case ']':
		c.state = stateAltClosedSquared
	case '\n':
		toEmit := "[" + c.alt
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt, true)
			c.alt = ""
			return
		}
		c.alt += string(next)
	default:
		c.alt += string(next)
	}
}

func handleAltClosedSquared(c *parseContext, next byte) {
	switch next {
	case '(':
		c.state = stateURLOpenRound
	case '\n':
		toEmit := "[" + c.alt + "]" + c.consumed
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt+"]", true)
			c.alt = ""
			return
		}
		c.fallbackAfterAlt(next)
	default:
		c.fallbackAfterAlt(next)
	}
}

// fallbackAfterAlt turns "[alt]x" back into literal pending content.
func (c *parseContext) fallbackAfterAlt(next byte) {
	c.consumed = "[" + c.alt + "]" + string(next)
	if c.isImage {
		c.consumed = "!" + c.consumed
	}
	c.state = c.returnStack.pop()
	c.alt = ""
}

func handleURLOpenRound(c *parseContext, next byte) {
	switch next {
	case ')':
		if c.isImage {
			c.emitImage()
		} else {
			c.emitHyperlink()
		}
		c.state = c.returnStack.pop()
	case ' ':
		c.state = stateTitleOpenRound
	case '\n':
		toEmit := "[" + c.alt + "](" + c.src
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.src = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt+"]("+c.src, false)
			c.alt = ""
			c.src = ""
			return
		}
		c.src += string(next)
	default:
		c.src += string(next)
	}
}

func handleTitleOpenRound(c *parseContext, next byte) {
	switch next {
	case '"':
		c.state = stateTitleConsuming
	case '\n':
		toEmit := "[" + c.alt + "](" + c.src + " "
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.src = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt+"]("+c.src+" ", true)
			c.alt = ""
			c.src = ""
			return
		}
		c.consumed = "[" + c.alt + "](" + c.src + " " + string(next)
		if c.isImage {
			c.consumed = "!" + c.consumed
		}
		c.alt = ""
		c.src = ""
		c.state = c.returnStack.pop()
	default:
		c.consumed = "[" + c.alt + "](" + c.src + " " + string(next)
		if c.isImage {
			c.consumed = "!" + c.consumed
		}
		c.alt = ""
		c.src = ""
		c.state = c.returnStack.pop()
	}
}

func handleTitleConsuming(c *parseContext, next byte) {
	switch next {
	case '"':
		c.state = stateTitleClosedRound
	case '\n':
		toEmit := "[" + c.alt + "](" + c.src + ` "` + c.consumed
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.src = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt+"]("+c.src+` "`, false)
			c.alt = ""
			c.src = ""
			return
		}
		c.consumed += string(next)
	default:
		c.consumed += string(next)
	}
}

func handleTitleClosedRound(c *parseContext, next byte) {
	switch next {
	case ')':
		if c.isImage {
			c.emitImage()
		} else {
			c.emitHyperlink()
		}
		c.state = c.returnStack.pop()
	case '\n':
		toEmit := "[" + c.alt + "](" + c.src + ` "` + c.consumed + `"`
		if c.isImage {
			toEmit = "!" + toEmit
		}
		c.consumed = ""
		c.alt = ""
		c.src = ""
		c.handleUnexpectedNewline(toEmit, c.eofReached)
	case '|':
		if inTableLink(c) {
			c.handlePipeInTable("["+c.alt+"]("+c.src+` "`+c.consumed+`"`, true)
			c.alt = ""
			c.src = ""
			return
		}
		c.consumed = "[" + c.alt + "](" + c.src + ` "` + c.consumed + `"` + string(next)
		if c.isImage {
			c.consumed = "!" + c.consumed
		}
		c.alt = ""
		c.src = ""
		c.state = c.returnStack.pop()
	}
}
