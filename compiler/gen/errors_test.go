package gen

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrorSentinels(t *testing.T) {
	tests := []struct {
		err      error
		sentinel error
	}{
		{NewShapeError("User", "tags"), ErrUnsupportedShape},
		{NewNestingError("Matrix", "rows"), ErrUnsupportedNesting},
		{NewDanglingInterfaceError("User", "Node"), ErrDanglingInterface},
		{NewUnknownKindError("Gizmo", Kind("GADGET")), ErrUnknownKind},
		{NewNamingCollisionError("User", "Name", "name", "User_Name"), ErrNamingCollision},
		{NewConfigError("ContextType", "", "context type cannot be empty"), ErrInvalidConfig},
	}
	for _, tt := range tests {
		assert.True(t, errors.Is(tt.err, tt.sentinel), "%v should match %v", tt.err, tt.sentinel)

		// Matching survives wrapping.
		wrapped := fmt.Errorf("generate: %w", tt.err)
		assert.True(t, errors.Is(wrapped, tt.sentinel))
	}
}

func TestErrorMessagesCarrySite(t *testing.T) {
	assert.EqualError(t, NewShapeError("User", "tags"),
		"gqlts: type reference does not terminate in a named type on type User field tags")
	assert.EqualError(t, NewShapeError("", ""),
		"gqlts: type reference does not terminate in a named type")
	assert.EqualError(t, NewNestingError("Matrix", ""),
		"gqlts: nested list modifiers have no TypeScript rendering on type Matrix")
	assert.EqualError(t, NewUnknownKindError("Gizmo", Kind("GADGET")),
		`gqlts: type "Gizmo" has unknown kind "GADGET"`)
}
