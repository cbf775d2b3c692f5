package cmd

import (
	"context"
	"fmt"

	clierrors "github.com/salmonumbrella/tracwiki-cli/internal/errors"
	"github.com/salmonumbrella/tracwiki-cli/internal/ui"
)

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	u := ui.FromContext(ctx)
	u.Error("%v", err)
	if suggestion := clierrors.UserSuggestion(err); suggestion != "" {
		_, _ = fmt.Fprintf(u.Writer(), "Hint: %s\n", suggestion)
	}
}
