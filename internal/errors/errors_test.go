package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructorsCarryStatus(t *testing.T) {
	tests := []struct {
		name   string
		err    *Error
		status int
	}{
		{"validation", Validation("bad input"), 400},
		{"authentication", Authentication("bad token"), 401},
		{"forbidden", Forbidden("no access"), 403},
		{"not found", NotFound("missing"), 404},
		{"internal", Internal("boom"), 500},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status)
			assert.Equal(t, tt.status, StatusOf(tt.err))
			assert.Equal(t, tt.err.Message, tt.err.Error())
			assert.True(t, IsOperational(tt.err))
		})
	}
}

func TestStatusOfWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("while saving: %w", NotFound("missing"))

	assert.Equal(t, 404, StatusOf(wrapped))
	assert.Equal(t, "missing", MessageOf(wrapped))
	assert.True(t, IsOperational(wrapped))
}

func TestUnclassifiedErrorCollapsesToInternal(t *testing.T) {
	err := fmt.Errorf("driver: connection reset")

	assert.Equal(t, 500, StatusOf(err))
	assert.Equal(t, "Internal server error", MessageOf(err))
	assert.False(t, IsOperational(err))
}
