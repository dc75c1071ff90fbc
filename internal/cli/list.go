package cli

import (
	"context"
	"fmt"
	"text/tabwriter"
)

// List prints the collected entries in arrival order.
func (a *App) List(ctx context.Context) error {
	entries := a.store.Current()
	if len(entries) == 0 {
		fmt.Fprintln(a.out, msgNoData)
		return nil
	}

	tw := tabwriter.NewWriter(a.out, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "#\tনাম\tফোন নম্বর\tপেশা\tMyGP\tকারণ\tতারিখ")
	for i, e := range entries {
		usage := "না"
		if e.IsAdopter() {
			usage = "হ্যাঁ"
		}
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			i+1, orDash(e.Name), orDash(e.PhoneNumber), orDash(e.Profession), usage, orDash(e.Reason), orDash(e.Timestamp))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "%d টি এন্ট্রি\n", len(entries))
	return nil
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
