package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/armanazij/mygp-survey/internal/common"
)

// Export writes the all-entries workbook.
func (a *App) Export(ctx context.Context) error {
	return a.reportResult(a.export.AllEntries(a.store.Current()))
}

// ExportAll writes the overall report workbook: per-profession sheets plus
// the summary and all-data sheets.
func (a *App) ExportAll(ctx context.Context) error {
	return a.reportResult(a.export.OverallReport(a.store.Current()))
}

// Report writes the workbook for a single profession.
func (a *App) Report(ctx context.Context, profession string) error {
	if profession == "" {
		fmt.Fprintln(a.out, "Usage: report <পেশা>")
		return nil
	}
	return a.reportResult(a.export.ProfessionReport(profession, a.store.Current()))
}

func (a *App) reportResult(path string, err error) error {
	switch {
	case err == nil:
		fmt.Fprintf(a.out, "%s (%s)\n", msgExcelOK, path)
	case errors.Is(err, common.ErrNoData):
		fmt.Fprintln(a.out, msgNoData)
	default:
		fmt.Fprintf(a.out, "এক্সেল ডাউনলোড করতে সমস্যা হয়েছে: %v\n", err)
	}
	return err
}
