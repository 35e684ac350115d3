package md2html

import "fmt"

// state identifies the tokenizer state. Adding a state means adding a
// value here, a handler in the handlers files, and an entry in the
// stateHandlers table, which is indexed by the state value.
type state uint8

const (
	stateData state = iota // the baseline scanning state
	stateDataHashtag
	stateDataAsterisk
	stateDataAsteriskData
	stateDataDoubleAsterisk
	stateDataDoubleAsteriskData
	stateDataTripleAsterisk
	stateDataTripleAsteriskData
	stateDataConsumingNumber
	stateDataOrdinalNumber
	stateHorizontalLine
	stateDataBacktick
	stateDataDoubleBacktick
	stateCodeInline
	stateCodeBlock
	stateUnorderedListPrep
	stateUnorderedList
	stateOrderedListPrep
	stateImage
	stateAltOpenSquared
	stateAltClosedSquared
	stateURLOpenRound
	stateTitleOpenRound
	stateTitleConsuming
	stateTitleClosedRound
	stateTableHeaderNames
	stateTableHeaderSepPipeAwaiting
	stateTableHeaderSeparation
	stateTableCellPipeAwaiting
	stateTableCellData

	stateCount
)

var stateNames = [stateCount]string{
	"Data", "DataHashtag",
	"DataAsterisk", "DataAsteriskData",
	"DataDoubleAsterisk", "DataDoubleAsteriskData",
	"DataTripleAsterisk", "DataTripleAsteriskData",
	"DataConsumingNumber", "DataOrdinalNumber",
	"HorizontalLine",
	"DataBacktick", "DataDoubleBacktick", "CodeInline", "CodeBlock",
	"UnorderedListPrep", "UnorderedList", "OrderedListPrep",
	"Image", "AltOpenSquared", "AltClosedSquared", "UrlOpenRound",
	"TitleOpenRound", "TitleConsuming", "TitleClosedRound",
	"TableHeaderNames", "TableHeaderSeparationPipeAwaiting",
	"TableHeaderSeparation", "TableCellPipeAwaiting", "TableCellData",
}

func (s state) String() string {
	if s < stateCount {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// maxReturnDepth caps the return-state stack to detect pathological
// nesting. Real documents stay in the single digits.
const maxReturnDepth = 64

// Not every state can be returned to. Return states represent elements
// which can contain other elements; an inline construct records one so it
// knows where to resume after closing.
func isReturnState(s state) bool {
	switch s {
	case stateData, stateUnorderedListPrep, stateOrderedListPrep,
		stateTableHeaderNames, stateTableCellData:
		return true
	}
	return false
}

// returnStateStack stores the states the tokenizer will resume after an
// inline construct closes. Pushing a non-return state is a programmer
// error; topping or popping an empty stack is tolerated and yields Data.
type returnStateStack struct {
	states []state
}

func (r *returnStateStack) push(s state) error {
	if !isReturnState(s) {
		return fmt.Errorf("%w: %s", ErrBadReturnState, s)
	}
	if len(r.states) >= maxReturnDepth {
		return fmt.Errorf("%w: depth %d", ErrReturnStackFull, len(r.states))
	}
	r.states = append(r.states, s)
	return nil
}

func (r *returnStateStack) top() state {
	if len(r.states) == 0 {
		tracer().Infof("topping an empty return stack, substituting Data")
		return stateData
	}
	return r.states[len(r.states)-1]
}

func (r *returnStateStack) pop() state {
	if len(r.states) == 0 {
		tracer().Infof("popping an empty return stack, substituting Data")
		return stateData
	}
	top := r.states[len(r.states)-1]
	r.states = r.states[:len(r.states)-1]
	return top
}
