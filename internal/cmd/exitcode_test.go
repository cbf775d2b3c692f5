package cmd

import (
	"context"
	"errors"
	"fmt"
	"testing"

	clierrors "github.com/salmonumbrella/tracwiki-cli/internal/errors"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil", err: nil, want: ExitOK},
		{name: "canceled", err: context.Canceled, want: ExitCanceled},
		{name: "wrapped canceled", err: fmt.Errorf("run: %w", context.Canceled), want: ExitCanceled},
		{name: "validation", err: clierrors.NewValidationError("--color", "bad"), want: ExitUser},
		{name: "user", err: clierrors.NewUserError("bad input", "fix it"), want: ExitUser},
		{name: "generic", err: errors.New("boom"), want: ExitSystem},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("ExitCode(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
