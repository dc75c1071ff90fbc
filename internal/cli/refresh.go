package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/armanazij/mygp-survey/internal/common"
)

// Refresh pulls the remote collection on the user's request. Unlike the
// background refresh, failures are surfaced here.
func (a *App) Refresh(ctx context.Context) error {
	count, err := a.service.Refresh(ctx)
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "✓ %d টি এন্ট্রি লোড হয়েছে\n", count)
	case errors.Is(err, common.ErrServerReported):
		fmt.Fprintf(a.out, "%s: %v\n", msgServerError, err)
	case errors.Is(err, common.ErrMalformedResponse):
		fmt.Fprintln(a.out, msgBadFormat)
	default:
		fmt.Fprintln(a.out, msgNetwork)
	}
	return err
}
