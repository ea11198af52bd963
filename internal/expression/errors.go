package expression

import "fmt"

// EmptyStackError is returned by Pop and Peek on an empty stack.
type EmptyStackError struct {
	Op string // "pop" or "peek"
}

// Error implements the error interface.
func (e *EmptyStackError) Error() string {
	if e.Op == "" {
		return "stack is empty"
	}
	return fmt.Sprintf("cannot %s: stack is empty", e.Op)
}

// NewEmptyStackError creates a new EmptyStackError.
func NewEmptyStackError(op string) *EmptyStackError {
	return &EmptyStackError{Op: op}
}

// MismatchedBracketError represents brackets that do not nest correctly: a
// right bracket with nothing open, a left bracket never closed, or a right
// bracket closing the other family. Families are strict, so "( 1 ]" fails
// even though a left bracket is open.
type MismatchedBracketError struct {
	Position int    // Position of the offending bracket
	Bracket  string // The offending bracket
	Message  string
	Cause    error // Underlying error, usually *EmptyStackError
}

// Error implements the error interface.
func (e *MismatchedBracketError) Error() string {
	return fmt.Sprintf("mismatched bracket %q at position %d: %s", e.Bracket, e.Position, e.Message)
}

// Unwrap returns the underlying error.
func (e *MismatchedBracketError) Unwrap() error {
	return e.Cause
}

// NewMismatchedBracketError creates a new MismatchedBracketError.
func NewMismatchedBracketError(pos int, bracket, message string, cause error) *MismatchedBracketError {
	return &MismatchedBracketError{
		Position: pos,
		Bracket:  bracket,
		Message:  message,
		Cause:    cause,
	}
}

// InvalidTokenError represents a literal outside the supported alphabet.
type InvalidTokenError struct {
	Position int
	Literal  string
}

// Error implements the error interface.
func (e *InvalidTokenError) Error() string {
	return fmt.Sprintf("invalid token %q at position %d", e.Literal, e.Position)
}

// NewInvalidTokenError creates a new InvalidTokenError.
func NewInvalidTokenError(pos int, literal string) *InvalidTokenError {
	return &InvalidTokenError{
		Position: pos,
		Literal:  literal,
	}
}
