package cli

import (
	"context"
	"fmt"
)

// Stats prints the aggregate dashboard derived from the current collection.
func (a *App) Stats(ctx context.Context) error {
	snap := a.snapshot()

	fmt.Fprintf(a.out, "মোট সার্ভে: %d\n", snap.Total)
	fmt.Fprintf(a.out, "MyGP ব্যবহারকারী: %d (%d%%)\n", snap.Adopters, snap.AdoptionPct)
	fmt.Fprintf(a.out, "মিনিট/এমবি চেক: %d (%d%%)\n", snap.DataCheckers, snap.DataCheckersPct)
	fmt.Fprintf(a.out, "এড দেখা: %d (%d%%)\n", snap.AdViewers, snap.AdViewersPct)
	fmt.Fprintf(a.out, "উভয়: %d (%d%%)\n", snap.BothExact, snap.BothExactPct)

	fmt.Fprintln(a.out)
	for _, ps := range snap.ByProfession {
		fmt.Fprintf(a.out, "%s: মোট %d, ব্যবহারকারী %d (%d%%), এড %d (%d%%), এমবি %d (%d%%)\n",
			ps.Profession, ps.Total,
			ps.Adopters, ps.AdoptionPct,
			ps.AdViewers, ps.AdViewersPct,
			ps.DataCheckers, ps.DataCheckersPct)
	}
	return nil
}
