package uniform

import (
	"errors"
	"fmt"
)

// DefinitionError reports a struct component whose declared kind cannot be
// satisfied by its Go type, or a component with no recognized declaration at
// all. It is raised once, at first descriptor build for the type, and is
// fatal for that struct type: the layout cannot be trusted, so nothing is
// ever written for it.
type DefinitionError struct {
	// Type is the name of the struct type being described.
	Type string
	// Field is the dotted path of the offending component.
	Field string
	// Reason describes what was wrong with the declaration.
	Reason string
}

// Error formats the definition error with the struct type and component name.
//
// Returns:
//   - string: the formatted error message
func (e *DefinitionError) Error() string {
	return fmt.Sprintf("uniform: %s.%s: %s", e.Type, e.Field, e.Reason)
}

// ConsistencyError reports a mismatch between the byte count a writer
// actually emitted and the descriptor's precomputed size. It indicates a bug
// in the engine itself and should never be reachable from caller input alone.
type ConsistencyError struct {
	// Type is the name of the struct type being written.
	Type string
	// Want is the descriptor's precomputed byte size.
	Want int
	// Got is the byte count actually emitted.
	Got int
}

// Error formats the consistency error with the expected and emitted sizes.
//
// Returns:
//   - string: the formatted error message
func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("uniform: %s: emitted %d bytes, descriptor computed %d", e.Type, e.Got, e.Want)
}

// IsDefinitionError reports whether err is (or wraps) a DefinitionError.
//
// Parameters:
//   - err: the error to inspect
//
// Returns:
//   - bool: true if err is a definition error
func IsDefinitionError(err error) bool {
	var de *DefinitionError
	return errors.As(err, &de)
}
