package chain

import (
	"fmt"
	"io"
)

// Capabilities binds the behaviour the chain needs to a payload type.
// The set is fixed for the lifetime of a chain.
type Capabilities[T any] interface {
	// Print writes a human readable rendering of v.
	Print(w io.Writer, v T) error
	// Compare reports zero when a and b are the same state.
	// Only equality is used; the sign carries no meaning.
	Compare(a, b T) int
	// Copy returns a deep copy of v owned by the chain.
	Copy(v T) (T, error)
	// IsTerminal reports whether a walk ends after emitting v.
	IsTerminal(v T) bool
}

// Funcs adapts plain functions to Capabilities.
// CompareFunc is required. A nil PrintFunc prints with fmt.Fprint,
// a nil CopyFunc copies by assignment and a nil IsTerminalFunc reports false.
type Funcs[T any] struct {
	PrintFunc      func(w io.Writer, v T) error
	CompareFunc    func(a, b T) int
	CopyFunc       func(v T) (T, error)
	IsTerminalFunc func(v T) bool
}

func (f Funcs[T]) Print(w io.Writer, v T) error {
	if f.PrintFunc == nil {
		_, err := fmt.Fprint(w, v)
		return err
	}
	return f.PrintFunc(w, v)
}

func (f Funcs[T]) Compare(a, b T) int {
	return f.CompareFunc(a, b)
}

func (f Funcs[T]) Copy(v T) (T, error) {
	if f.CopyFunc == nil {
		return v, nil
	}
	return f.CopyFunc(v)
}

func (f Funcs[T]) IsTerminal(v T) bool {
	if f.IsTerminalFunc == nil {
		return false
	}
	return f.IsTerminalFunc(v)
}

func (f Funcs[T]) validate() error {
	if f.CompareFunc == nil {
		return fmt.Errorf("compare capability is required")
	}
	return nil
}

// Equal is a Compare implementation for comparable payloads.
func Equal[T comparable](a, b T) int {
	if a == b {
		return 0
	}
	return 1
}
