package shape

import (
	"errors"
	"fmt"
)

// Domain errors for morph pair construction.
var (
	// ErrVertexCountMismatch indicates two shapes cannot be interpolated index by index.
	ErrVertexCountMismatch = errors.New("shape: vertex count mismatch between morph endpoints")

	// ErrEmptyShape indicates a shape with no vertices.
	ErrEmptyShape = errors.New("shape: shape has no vertices")
)

// MismatchError reports the two vertex counts that failed to match.
type MismatchError struct {
	From, To int
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("%v: %d vs %d", ErrVertexCountMismatch, e.From, e.To)
}

func (e *MismatchError) Unwrap() error {
	return ErrVertexCountMismatch
}
