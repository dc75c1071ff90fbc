// Package stats derives the dashboard numbers from the entry collection.
// Aggregation is a pure function of the collection and the fixed category
// configuration: no hidden state, no I/O, same input always yields the same
// snapshot. It is recomputed from scratch on every store change.
package stats

import (
	"math"
	"strings"

	"github.com/armanazij/mygp-survey/internal/config"
	"github.com/armanazij/mygp-survey/internal/models"
)

// Categories is the fixed enumeration the snapshot is computed against.
type Categories struct {
	Professions []string

	// Substring markers. A compound reason ("both") contains the minutes/data
	// marker and the ad marker at the same time, so it counts in both
	// categories; the exact Both literal is tracked separately on top.
	MinutesMarker string
	DataMarker    string
	AdMarker      string

	// Full reason literals, used for the mutually exclusive chart series.
	DataReason string
	AdReason   string
	BothReason string
}

// CategoriesFromConfig builds Categories from the runtime configuration.
func CategoriesFromConfig(cfg *config.Config) Categories {
	return Categories{
		Professions:   cfg.Professions,
		MinutesMarker: cfg.Markers.Minutes,
		DataMarker:    cfg.Markers.Data,
		AdMarker:      cfg.Markers.Ad,
		DataReason:    cfg.Reasons.MBData,
		AdReason:      cfg.Reasons.SocialAd,
		BothReason:    cfg.Reasons.Both,
	}
}

// ProfessionStats is the per-profession slice of the snapshot. Percentages
// for ad viewers and data checkers are over the profession's adopters; the
// adoption rate is over the profession's total.
type ProfessionStats struct {
	Profession      string
	Total           int
	Adopters        int
	AdViewers       int
	DataCheckers    int
	AdViewersPct    int
	DataCheckersPct int
	AdoptionPct     int
}

// Snapshot is the derived statistics for one state of the collection.
// Never persisted; recomputed on demand.
type Snapshot struct {
	Total    int
	Adopters int

	// Marker-based counts. DataCheckers and AdViewers are not mutually
	// exclusive; BothExact is the exact-match count of the compound reason.
	DataCheckers int
	AdViewers    int
	BothExact    int

	DataCheckersPct int
	AdViewersPct    int
	BothExactPct    int
	AdoptionPct     int

	// ByProfession follows the configured profession order.
	ByProfession []ProfessionStats

	// ProfessionSeries holds per-profession totals in configured order, for
	// the distribution chart. UsageSeries holds the mutually exclusive
	// [data-only, ad-only, both] counts for the usage chart.
	ProfessionSeries []int
	UsageSeries      [3]int
}

// Aggregate computes the snapshot over the full collection.
func Aggregate(entries []models.Entry, c Categories) Snapshot {
	snap := Snapshot{
		Total:            len(entries),
		ByProfession:     make([]ProfessionStats, 0, len(c.Professions)),
		ProfessionSeries: make([]int, len(c.Professions)),
	}

	for _, e := range entries {
		if e.IsAdopter() {
			snap.Adopters++
		}
		if c.checksData(e) {
			snap.DataCheckers++
		}
		if c.viewsAds(e) {
			snap.AdViewers++
		}
		if e.Reason == c.BothReason {
			snap.BothExact++
		}

		switch e.Reason {
		case c.DataReason:
			snap.UsageSeries[0]++
		case c.AdReason:
			snap.UsageSeries[1]++
		case c.BothReason:
			snap.UsageSeries[2]++
		}
	}

	snap.DataCheckersPct = percent(snap.DataCheckers, snap.Adopters)
	snap.AdViewersPct = percent(snap.AdViewers, snap.Adopters)
	snap.BothExactPct = percent(snap.BothExact, snap.Adopters)
	snap.AdoptionPct = percent(snap.Adopters, snap.Total)

	for i, profession := range c.Professions {
		ps := ProfessionStats{Profession: profession}
		for _, e := range entries {
			if e.Profession != profession {
				continue
			}
			ps.Total++
			if e.IsAdopter() {
				ps.Adopters++
			}
			if c.viewsAds(e) {
				ps.AdViewers++
			}
			if c.checksData(e) {
				ps.DataCheckers++
			}
		}
		ps.AdViewersPct = percent(ps.AdViewers, ps.Adopters)
		ps.DataCheckersPct = percent(ps.DataCheckers, ps.Adopters)
		ps.AdoptionPct = percent(ps.Adopters, ps.Total)

		snap.ByProfession = append(snap.ByProfession, ps)
		snap.ProfessionSeries[i] = ps.Total
	}

	return snap
}

// checksData and viewsAds are not mutually exclusive: the compound "both"
// answer satisfies each of them, on top of its own exact-match counter.
func (c Categories) checksData(e models.Entry) bool {
	if e.Reason == "" {
		return false
	}
	if e.Reason == c.BothReason {
		return true
	}
	return (c.MinutesMarker != "" && strings.Contains(e.Reason, c.MinutesMarker)) ||
		(c.DataMarker != "" && strings.Contains(e.Reason, c.DataMarker))
}

func (c Categories) viewsAds(e models.Entry) bool {
	if e.Reason == "" {
		return false
	}
	if e.Reason == c.BothReason {
		return true
	}
	return c.AdMarker != "" && strings.Contains(e.Reason, c.AdMarker)
}

// percent is round-half-up, 0 when the denominator is 0.
func percent(part, whole int) int {
	if whole == 0 {
		return 0
	}
	return int(math.Floor(float64(part)*100/float64(whole) + 0.5))
}
