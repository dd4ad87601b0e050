package domain

import (
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGatewayError(t *testing.T) {
	tests := []struct {
		name     string
		err      *GatewayError
		expected string
	}{
		{
			name:     "transport failure",
			err:      &GatewayError{Op: "search movie", Err: io.ErrUnexpectedEOF},
			expected: "search movie: movie database request failed: unexpected EOF",
		},
		{
			name:     "status only",
			err:      &GatewayError{Op: "search movie", StatusCode: 401},
			expected: "search movie: movie database request failed: status 401",
		},
		{
			name:     "bare",
			err:      &GatewayError{},
			expected: "movie database request failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
			assert.True(t, errors.Is(tt.err, ErrGateway))
		})
	}
}

func TestGatewayErrorUnwrap(t *testing.T) {
	wrapped := fmt.Errorf("fetching: %w", &GatewayError{Op: "search movie", Err: io.EOF})

	assert.ErrorIs(t, wrapped, ErrGateway)
	assert.ErrorIs(t, wrapped, io.EOF)

	var gwErr *GatewayError
	assert.ErrorAs(t, wrapped, &gwErr)
	assert.Equal(t, "search movie", gwErr.Op)
}
