package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		err  error
		name string
		want int
	}{
		{name: "nil is success", err: nil, want: 0},
		{name: "exit error carries its code", err: &ExitError{Code: 7}, want: 7},
		{name: "wrapped exit error", err: fmt.Errorf("run lint: %w", &ExitError{Code: 3}), want: 3},
		{name: "other errors map to 1", err: errors.New("boom"), want: 1},
		{name: "sentinel maps to 1", err: ErrMissingVersion, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExitCode(tt.err))
		})
	}
}

func TestExitError_Error(t *testing.T) {
	err := &ExitError{Code: 2}
	assert.Equal(t, "command exited with code 2", err.Error())
}
