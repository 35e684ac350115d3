package md2html

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyDocument = errors.New("markdown content cannot be empty")

	// Internal consistency errors. Any of these surfacing from a parse
	// means the tokenizer and the tree builders disagree about the shape
	// of the document, which is a bug in this package, not in the input.
	// Two of them can also be raised by input: ErrReturnStackFull by more
	// than 64 nested constructs (a line of 65 '>' characters), and
	// ErrEmptyTableHeader by a table row with no columns (a line holding a
	// single '|').
	ErrShapeMismatch    = errors.New("closing element does not match the open element")
	ErrNilCursor        = errors.New("tree cursor is not inside the tree")
	ErrUnknownToken     = errors.New("unknown token type")
	ErrUnknownElement   = errors.New("unknown element type")
	ErrUnknownAttribute = errors.New("attribute has no stylesheet mapping")
	ErrBadReturnState   = errors.New("state is not a resumable state")
	ErrReturnStackFull  = errors.New("return-state stack exceeded its bound")
	ErrEmptyTableHeader = errors.New("table header has no columns")
	ErrTableRestarted   = errors.New("table opened while a table subtree is pending")
	ErrRootTransferred  = errors.New("document root already handed off")
)
