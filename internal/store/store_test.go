package store

import (
	"context"
	"errors"
	"testing"

	"github.com/armanazij/mygp-survey/internal/logging"
	"github.com/armanazij/mygp-survey/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePersister struct {
	saved [][]models.Entry
	err   error
}

func (f *fakePersister) Save(ctx context.Context, entries []models.Entry) error {
	f.saved = append(f.saved, entries)
	return f.err
}

func TestAppend_PersistsAndNotifies(t *testing.T) {
	p := &fakePersister{}
	s := New(p, logging.NewNopLogger())

	notified := 0
	s.OnChange(func() { notified++ })

	s.Append(context.Background(), models.Entry{ID: 1, PhoneNumber: "01712345678"})

	require.Len(t, p.saved, 1)
	assert.Len(t, p.saved[0], 1)
	assert.Equal(t, 1, notified)
	assert.Equal(t, 1, s.Count())
}

func TestReplaceAll_SwapsWholesale(t *testing.T) {
	p := &fakePersister{}
	s := New(p, logging.NewNopLogger())
	s.Append(context.Background(), models.Entry{ID: 1})

	s.ReplaceAll(context.Background(), []models.Entry{{ID: 10}, {ID: 11}})

	got := s.Current()
	require.Len(t, got, 2)
	assert.Equal(t, int64(10), got[0].ID)
	assert.Equal(t, int64(11), got[1].ID)

	// Both mutations wrote the full collection through.
	require.Len(t, p.saved, 2)
	assert.Len(t, p.saved[1], 2)
}

func TestReplaceAll_EmptyCollection(t *testing.T) {
	s := New(&fakePersister{}, logging.NewNopLogger())
	s.Append(context.Background(), models.Entry{ID: 1})

	s.ReplaceAll(context.Background(), nil)

	assert.Equal(t, 0, s.Count())
	assert.Empty(t, s.Current())
}

func TestPersistFailure_IsSwallowed(t *testing.T) {
	p := &fakePersister{err: errors.New("disk full")}
	s := New(p, logging.NewNopLogger())

	notified := 0
	s.OnChange(func() { notified++ })

	s.Append(context.Background(), models.Entry{ID: 1})

	// In-memory state stays authoritative and listeners still run.
	assert.Equal(t, 1, s.Count())
	assert.Equal(t, 1, notified)
}

func TestSeed_NotifiesWithoutPersisting(t *testing.T) {
	p := &fakePersister{}
	s := New(p, logging.NewNopLogger())

	notified := 0
	s.OnChange(func() { notified++ })

	s.Seed([]models.Entry{{ID: 1}, {ID: 2}})

	assert.Equal(t, 2, s.Count())
	assert.Equal(t, 1, notified)
	assert.Empty(t, p.saved)
}

func TestCurrent_ReturnsCopy(t *testing.T) {
	s := New(&fakePersister{}, logging.NewNopLogger())
	s.Append(context.Background(), models.Entry{ID: 1, Name: "a"})

	got := s.Current()
	got[0].Name = "mutated"

	assert.Equal(t, "a", s.Current()[0].Name)
}
