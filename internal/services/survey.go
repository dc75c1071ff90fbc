// Package services wires the submission and refresh flows together on top
// of the store, the dedup gate and the remote client.
package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/armanazij/mygp-survey/internal/common"
	"github.com/armanazij/mygp-survey/internal/dedup"
	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/armanazij/mygp-survey/internal/scheduler"
	"github.com/armanazij/mygp-survey/internal/store"
)

// Remote is the part of the remote client the service needs.
type Remote interface {
	FetchAll(ctx context.Context) ([]models.Entry, error)
	Submit(ctx context.Context, e models.Entry) error
}

// Submission carries the raw form input for one survey response.
type Submission struct {
	Name        string
	PhoneNumber string
	Profession  string
	UseMyGP     string
	Reason      string
}

// SurveyService owns the two mutation flows: submitting a new entry and
// refreshing the collection from the remote endpoint. Mutations run to
// completion (persist and notify included) before the call returns, so
// callers never observe an entry without its side effects.
type SurveyService struct {
	remote Remote
	store  *store.EntryStore
	dedup  *dedup.Index
	log    logging.Logger

	// now is an injection seam for tests; entry ids are creation timestamps.
	now func() time.Time
}

func NewSurveyService(remote Remote, st *store.EntryStore, idx *dedup.Index, log logging.Logger) *SurveyService {
	return &SurveyService{
		remote: remote,
		store:  st,
		dedup:  idx,
		log:    log,
		now:    time.Now,
	}
}

// Submit validates and records one survey response.
//
// The duplicate gate runs first: a known phone number aborts with
// common.ErrDuplicateEntry and nothing is stored. Otherwise the entry is
// appended (which caches it durably) and then pushed to the remote endpoint
// best-effort. A failed push returns the entry together with
// common.ErrPartialSubmit; the entry is already on disk, so nothing is lost
// from the respondent's point of view.
func (s *SurveyService) Submit(ctx context.Context, sub Submission) (models.Entry, error) {
	phoneNumber := strings.TrimSpace(sub.PhoneNumber)
	if phoneNumber == "" {
		return models.Entry{}, fmt.Errorf("%w: phone number is required", common.ErrInvalidSubmission)
	}
	if sub.UseMyGP != models.UseYes && sub.UseMyGP != models.UseNo {
		return models.Entry{}, fmt.Errorf("%w: useMyGP must be yes or no", common.ErrInvalidSubmission)
	}

	// Reason is set iff the respondent uses MyGP, mirroring the form's
	// enable/disable behavior.
	reason := strings.TrimSpace(sub.Reason)
	if sub.UseMyGP == models.UseYes && reason == "" {
		return models.Entry{}, fmt.Errorf("%w: reason is required for MyGP users", common.ErrInvalidSubmission)
	}
	if sub.UseMyGP == models.UseNo {
		reason = ""
	}

	if s.dedup.IsDuplicate(phoneNumber, s.store.Current()) {
		return models.Entry{}, common.ErrDuplicateEntry
	}

	now := s.now()
	entry := models.Entry{
		ID:          now.UnixMilli(),
		Name:        strings.TrimSpace(sub.Name),
		PhoneNumber: phoneNumber,
		Profession:  sub.Profession,
		UseMyGP:     sub.UseMyGP,
		Reason:      reason,
		Timestamp:   now.UTC().Format(time.RFC3339),
	}

	s.store.Append(ctx, entry)

	if err := s.remote.Submit(ctx, entry); err != nil {
		s.log.Warn(ctx, "entry cached locally but remote submit failed", "entry_id", entry.ID, "error", err)
		return entry, fmt.Errorf("%w: %v", common.ErrPartialSubmit, err)
	}

	return entry, nil
}

// Refresh pulls the authoritative collection and replaces the local one
// wholesale. On any fetch error the store is left untouched and the error is
// returned for the caller to surface (or not). Returns the current count.
func (s *SurveyService) Refresh(ctx context.Context) (int, error) {
	entries, err := s.remote.FetchAll(ctx)
	if err != nil {
		return s.store.Count(), err
	}

	s.store.ReplaceAll(ctx, entries)
	return s.store.Count(), nil
}

// StartAutoRefresh refreshes on a fixed interval in the background until the
// returned task is stopped. Background failures are logged and never
// surfaced; they do not interrupt the timer.
func (s *SurveyService) StartAutoRefresh(ctx context.Context, interval time.Duration) *scheduler.Task {
	return scheduler.Every(ctx, interval, func(ctx context.Context) {
		if _, err := s.Refresh(ctx); err != nil {
			s.log.Debug(ctx, "background refresh failed", "error", err)
		}
	})
}
