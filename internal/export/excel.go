// Package export builds the downloadable xlsx workbooks: a flat all-entries
// report, a per-profession report, and the overall report with one sheet per
// profession plus a summary sheet and an all-data sheet.
package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/armanazij/mygp-survey/internal/common"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/armanazij/mygp-survey/internal/stats"
	"github.com/xuri/excelize/v2"
)

const (
	sheetSummary    = "সামগ্রিক রিপোর্ট"
	sheetAllData    = "সকল ডেটা"
	sheetAllEntries = "সকল এন্ট্রি"

	answerYes = "হ্যাঁ"
	answerNo  = "না"
)

var (
	allDataHeader    = []any{"ক্রমিক", "নাম", "ফোন নম্বর", "পেশা", "MyGP ব্যবহার", "কারণ", "তারিখ"}
	professionHeader = []any{"ক্রমিক", "নাম", "ফোন নম্বর", "MyGP ব্যবহার", "কারণ", "তারিখ"}
	summaryHeader    = []any{"পেশা", "মোট সার্ভে", "MyGP ব্যবহারকারী", "এড দেখেন", "এমবি চেক করেন", "ব্যবহারের হার"}

	allDataWidths    = []float64{10, 20, 15, 15, 15, 35, 15}
	professionWidths = []float64{10, 20, 15, 15, 35, 15}
	summaryWidths    = []float64{20, 15, 20, 15, 20, 15}
)

// Writer renders entry collections into xlsx files in a fixed directory.
type Writer struct {
	dir  string
	cats stats.Categories
	now  func() time.Time
}

func NewWriter(dir string, cats stats.Categories) *Writer {
	return &Writer{dir: dir, cats: cats, now: time.Now}
}

// AllEntries writes every entry to a single-sheet workbook and returns the
// written path. common.ErrNoData when the collection is empty.
func (w *Writer) AllEntries(entries []models.Entry) (string, error) {
	if len(entries) == 0 {
		return "", common.ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.addEntriesSheet(f, sheetAllEntries, entries, true); err != nil {
		return "", err
	}
	if err := dropDefaultSheet(f, sheetAllEntries); err != nil {
		return "", err
	}

	path := w.path("All_Entries_Report_%s.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return path, nil
}

// ProfessionReport writes the entries of one profession to a workbook whose
// sheet carries the profession's name. common.ErrNoData when that profession
// has no entries.
func (w *Writer) ProfessionReport(profession string, entries []models.Entry) (string, error) {
	subset := filterByProfession(entries, profession)
	if len(subset) == 0 {
		return "", common.ErrNoData
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := w.addEntriesSheet(f, profession, subset, false); err != nil {
		return "", err
	}
	if err := dropDefaultSheet(f, profession); err != nil {
		return "", err
	}

	path := w.path(profession + "_Report_%s.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return path, nil
}

// OverallReport writes the full report: one sheet per non-empty profession,
// the summary sheet and the all-data sheet.
func (w *Writer) OverallReport(entries []models.Entry) (string, error) {
	if len(entries) == 0 {
		return "", common.ErrNoData
	}

	snap := stats.Aggregate(entries, w.cats)

	f := excelize.NewFile()
	defer f.Close()

	for _, profession := range w.cats.Professions {
		subset := filterByProfession(entries, profession)
		if len(subset) == 0 {
			continue
		}
		if err := w.addEntriesSheet(f, profession, subset, false); err != nil {
			return "", err
		}
	}

	if err := w.addSummarySheet(f, snap); err != nil {
		return "", err
	}
	if err := w.addEntriesSheet(f, sheetAllData, entries, true); err != nil {
		return "", err
	}
	if err := dropDefaultSheet(f, sheetSummary); err != nil {
		return "", err
	}

	path := w.path("MyGP_Survey_Overall_Report_%s.xlsx")
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to write workbook: %w", err)
	}
	return path, nil
}

// addEntriesSheet appends a sheet listing entries row by row. withProfession
// selects the seven-column layout; profession sheets omit that column.
func (w *Writer) addEntriesSheet(f *excelize.File, name string, entries []models.Entry, withProfession bool) error {
	if _, err := f.NewSheet(name); err != nil {
		return fmt.Errorf("failed to add sheet %q: %w", name, err)
	}

	header, widths := professionHeader, professionWidths
	if withProfession {
		header, widths = allDataHeader, allDataWidths
	}

	if err := f.SetSheetRow(name, "A1", &header); err != nil {
		return err
	}

	for i, e := range entries {
		row := []any{
			i + 1,
			orDash(e.Name),
			orDash(e.PhoneNumber),
		}
		if withProfession {
			row = append(row, orDash(e.Profession))
		}
		usage := answerNo
		if e.IsAdopter() {
			usage = answerYes
		}
		row = append(row, usage, orDash(e.Reason), formatDate(e))

		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(name, cell, &row); err != nil {
			return err
		}
	}

	return setWidths(f, name, widths)
}

// addSummarySheet appends the overall statistics sheet: a title block, one
// row per configured profession and the grand-total row.
func (w *Writer) addSummarySheet(f *excelize.File, snap stats.Snapshot) error {
	if _, err := f.NewSheet(sheetSummary); err != nil {
		return fmt.Errorf("failed to add summary sheet: %w", err)
	}

	rows := [][]any{
		{"MyGP সার্ভে সামগ্রিক রিপোর্ট"},
		{"রিপোর্ট তারিখ:", w.now().Format("02/01/2006")},
		{"মোট সার্ভে:", snap.Total},
		{},
		summaryHeader,
	}

	for _, ps := range snap.ByProfession {
		rows = append(rows, []any{
			ps.Profession,
			ps.Total,
			ps.Adopters,
			ps.AdViewers,
			ps.DataCheckers,
			fmt.Sprintf("%d%%", ps.AdoptionPct),
		})
	}

	rows = append(rows,
		[]any{},
		[]any{"সর্বমোট", snap.Total, snap.Adopters, snap.AdViewers, snap.DataCheckers, fmt.Sprintf("%d%%", snap.AdoptionPct)},
	)

	for i := range rows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheetSummary, cell, &rows[i]); err != nil {
			return err
		}
	}

	return setWidths(f, sheetSummary, summaryWidths)
}

// dropDefaultSheet removes excelize's initial sheet and activates active.
func dropDefaultSheet(f *excelize.File, active string) error {
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return err
	}
	idx, err := f.GetSheetIndex(active)
	if err != nil {
		return err
	}
	f.SetActiveSheet(idx)
	return nil
}

func setWidths(f *excelize.File, sheet string, widths []float64) error {
	for i, width := range widths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return err
		}
	}
	return nil
}

func (w *Writer) path(pattern string) string {
	name := fmt.Sprintf(pattern, w.now().Format("2006-01-02"))
	return filepath.Join(w.dir, name)
}

func filterByProfession(entries []models.Entry, profession string) []models.Entry {
	var subset []models.Entry
	for _, e := range entries {
		if e.Profession == profession {
			subset = append(subset, e)
		}
	}
	return subset
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func formatDate(e models.Entry) string {
	t := e.CreatedAt()
	if t.IsZero() {
		return "-"
	}
	return t.Format("02/01/2006")
}
