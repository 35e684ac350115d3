package md2html

import (
	"bufio"
	"errors"
	"fmt"
	"io"
)

// escapableChars is the set of characters a backslash can escape.
var escapableChars = map[byte]bool{
	'\\': true, '`': true, '*': true, '_': true, '{': true, '}': true,
	'[': true, ']': true, '<': true, '>': true, '(': true, ')': true,
	'#': true, '+': true, '-': true, '.': true, '!': true, '|': true,
}

// Parser drives the tokenizer. It reads the input one byte at a time,
// dispatches to the handler for the current state, and drains warnings to
// the tracer annotated with the current line number. End of input injects
// a final newline so every construct sees its terminator.
type Parser struct {
	reader *bufio.Reader
	ctx    *parseContext
	line   int
}

// NewParser returns a parser reading the markdown document from r.
func NewParser(r io.Reader) *Parser {
	return &Parser{reader: bufio.NewReader(r)}
}

// ParseDocument consumes the whole input and returns the root of the
// document tree. Soft parse problems degrade to literal text and are
// logged; an error return means an internal consistency violation or a
// failed read.
func (p *Parser) ParseDocument() (*ElementNode, error) {
	p.ctx = newParseContext()
	p.line = 1

	for {
		var next byte
		b, err := p.reader.ReadByte()
		switch {
		case err == nil:
			next = b
		case errors.Is(err, io.EOF):
			next = '\n'
			p.ctx.eofReached = true
		default:
			return nil, fmt.Errorf("reading input: %w", err)
		}

		if next == '\n' {
			p.line++
		}

		switch {
		case p.ctx.isEscaped:
			p.handleEscapeSequence(next)
			p.ctx.isEscaped = false
		case next == '\\' && p.ctx.state != stateCodeInline &&
			p.ctx.state != stateCodeBlock && p.ctx.state != stateDataBacktick:
			p.ctx.isEscaped = true
		default:
			stateHandlers[p.ctx.state](p.ctx, next)
		}

		if p.ctx.warning != "" {
			tracer().Infof("line %d: %s", p.line, p.ctx.warning)
			p.ctx.warning = ""
		}
		if p.ctx.err != nil {
			return nil, p.ctx.err
		}

		if p.ctx.eofReached {
			break
		}
		if p.ctx.newlines != 0 && next != '\n' {
			p.ctx.newlines = 0
		}
	}

	return p.finish()
}

// finish closes whatever is still open so the cursor ends at the root,
// then hands the tree off. A table still in flight at this point never
// produced its terminating flag; its subtree is dropped.
func (p *Parser) finish() (*ElementNode, error) {
	if p.ctx.emitter.tableMode {
		tracer().Debugf("input ended inside a table, dropping the unfinished subtree")
	}
	builder := p.ctx.emitter.builder
	for {
		el, err := builder.CurrentElement()
		if err != nil || el == ElemDocStart {
			break
		}
		if err := builder.Consume(Token{Type: CloseToken, Element: el}); err != nil {
			return nil, err
		}
	}
	return builder.Root()
}

// handleEscapeSequence applies the escape rules: characters from the
// escapable set are taken verbatim, a newline turns the backslash itself
// into literal text, and anything else keeps both characters.
func (p *Parser) handleEscapeSequence(next byte) {
	switch {
	case escapableChars[next]:
		p.ctx.consumed += string(next)
	case next == '\n':
		p.ctx.handleUnexpectedNewline(`\`, p.ctx.eofReached)
	default:
		p.ctx.consumed += `\` + string(next)
	}
}
