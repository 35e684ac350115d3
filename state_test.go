package md2html

import (
	"errors"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestReturnStackAcceptsOnlyReturnStates(t *testing.T) {
	t.Parallel()

	s := &returnStateStack{}
	for _, st := range []state{stateData, stateUnorderedListPrep,
		stateOrderedListPrep, stateTableHeaderNames, stateTableCellData} {
		if err := s.push(st); err != nil {
			t.Fatalf("push(%v) = %v, want nil", st, err)
		}
	}

	for _, st := range []state{stateDataAsterisk, stateCodeBlock, stateImage} {
		if err := s.push(st); !errors.Is(err, ErrBadReturnState) {
			t.Fatalf("push(%v) = %v, want ErrBadReturnState", st, err)
		}
	}
}

func TestReturnStackEmptyYieldsData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "md2html")
	defer teardown()

	s := &returnStateStack{}
	if got := s.top(); got != stateData {
		t.Fatalf("top of empty stack = %v, want Data", got)
	}
	if got := s.pop(); got != stateData {
		t.Fatalf("pop of empty stack = %v, want Data", got)
	}
}

func TestReturnStackOrdering(t *testing.T) {
	t.Parallel()

	s := &returnStateStack{}
	for _, st := range []state{stateData, stateTableCellData} {
		if err := s.push(st); err != nil {
			t.Fatal(err)
		}
	}
	if got := s.top(); got != stateTableCellData {
		t.Fatalf("top = %v, want TableCellData", got)
	}
	if got := s.pop(); got != stateTableCellData {
		t.Fatalf("pop = %v, want TableCellData", got)
	}
	if got := s.pop(); got != stateData {
		t.Fatalf("pop = %v, want Data", got)
	}
}

func TestReturnStackCap(t *testing.T) {
	t.Parallel()

	s := &returnStateStack{}
	for i := 0; i < maxReturnDepth; i++ {
		if err := s.push(stateData); err != nil {
			t.Fatalf("push %d: %v", i, err)
		}
	}
	if err := s.push(stateData); !errors.Is(err, ErrReturnStackFull) {
		t.Fatalf("push beyond cap = %v, want ErrReturnStackFull", err)
	}
}
