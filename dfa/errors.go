package dfa

import (
	"errors"
	"fmt"
)

// ErrInvalidNFA is the sentinel wrapped by every DeterminizeError, so
// callers can test with errors.Is without depending on the concrete type.
var ErrInvalidNFA = errors.New("dfa: invalid NFA")

// DeterminizeError reports a failure encountered while subset-constructing
// a DFA from an NFA, naming the offending NFA state.
type DeterminizeError struct {
	StateID uint32
	Err     error
}

func (e *DeterminizeError) Error() string {
	return fmt.Sprintf("dfa: determinize failed at NFA state %d: %v", e.StateID, e.Err)
}

func (e *DeterminizeError) Unwrap() error { return ErrInvalidNFA }
