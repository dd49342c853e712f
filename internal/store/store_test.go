package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddict/dictation-app/cli/internal/record"
)

func openTemp(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "data", "notes.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestSaveLoadKeepsOrderAndValues(t *testing.T) {
	s := openTemp(t)
	rec := record.NewBranch().
		Set("vitals", record.NewBranch().Set("temp", nil).Set("bp", "120/80")).
		Set("notes", "").
		Set("pain_score", 4).
		Set("smoker", false).
		Set("meds", []any{"aspirin", "statin"})

	saved, err := s.Save(context.Background(), "Progress Notes", rec)
	require.NoError(t, err)
	require.NotEmpty(t, saved.ID)

	got, err := s.Load(context.Background(), saved.ID)
	require.NoError(t, err)
	assert.Equal(t, "Progress Notes", got.Title)
	assert.Equal(t, []string{"vitals", "notes", "pain_score", "smoker", "meds"}, got.Record.Keys())

	vitals, _ := got.Record.Get("vitals")
	assert.Equal(t, []string{"temp", "bp"}, vitals.(*record.Branch).Keys())

	want, err := rec.MarshalJSON()
	require.NoError(t, err)
	have, err := got.Record.MarshalJSON()
	require.NoError(t, err)
	assert.JSONEq(t, string(want), string(have))
	assert.Equal(t, string(want), string(have))
}

func TestListNewestFirst(t *testing.T) {
	s := openTemp(t)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	tick := 0
	s.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := s.Save(context.Background(), "first", record.NewBranch().Set("a", "1"))
	require.NoError(t, err)
	second, err := s.Save(context.Background(), "second", record.NewBranch().Set("a", "2"))
	require.NoError(t, err)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Equal(t, base.Add(2*time.Minute), list[0].SavedAt)
}

func TestLoadMissing(t *testing.T) {
	s := openTemp(t)
	_, err := s.Load(context.Background(), "nope")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestDelete(t *testing.T) {
	s := openTemp(t)
	n, err := s.Save(context.Background(), "x", record.NewBranch())
	require.NoError(t, err)

	require.NoError(t, s.Delete(context.Background(), n.ID))
	assert.ErrorIs(t, s.Delete(context.Background(), n.ID), ErrNotFound)

	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestSaveValidation(t *testing.T) {
	s := openTemp(t)
	_, err := s.Save(context.Background(), " ", record.NewBranch())
	assert.Error(t, err)

	_, err = s.Save(context.Background(), "x", nil)
	assert.Error(t, err)

	cyclic := record.NewBranch()
	cyclic.Set("self", cyclic)
	_, err = s.Save(context.Background(), "x", cyclic)
	require.Error(t, err)
	assert.ErrorIs(t, err, record.ErrCyclic)
}

func TestReopenSeesSavedNotes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.db")
	s, err := Open(path)
	require.NoError(t, err)
	n, err := s.Save(context.Background(), "kept", record.NewBranch().Set("k", "v"))
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(path)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.Load(context.Background(), n.ID)
	require.NoError(t, err)
	v, _ := got.Record.Get("k")
	assert.Equal(t, "v", v)
}

func TestOpenMemory(t *testing.T) {
	s, err := Open(":memory:")
	require.NoError(t, err)
	defer s.Close()
	_, err = s.Save(context.Background(), "x", record.NewBranch())
	require.NoError(t, err)
	list, err := s.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)

	_, err = Open("")
	assert.Error(t, err)
}
