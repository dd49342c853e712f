package ui

import (
	"context"
	"errors"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uddict/dictation-app/cli/internal/ui/components"
)

func loadedLanding(t *testing.T, notes *fakeStore) LandingModel {
	t.Helper()
	m := NewLandingModel(notes, testStyles())
	m.setSize(120, 40)
	cmd := m.Init()
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	return m
}

func TestLandingWithoutStoreIsEmpty(t *testing.T) {
	m := NewLandingModel(nil, testStyles())
	assert.Nil(t, m.Init())

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.Contains(t, components.SanitizeText(m.View()), "No saved notes yet.")
}

func TestLandingListsNewestFirst(t *testing.T) {
	notes := &fakeStore{}
	for _, title := range []string{"Progress Notes", "SOAP Notes"} {
		_, err := notes.Save(context.Background(), title, testNote())
		require.NoError(t, err)
	}
	m := loadedLanding(t, notes)
	require.Len(t, m.items, 2)
	assert.Equal(t, "SOAP Notes", m.items[0].Title)

	clean := components.SanitizeText(m.View())
	assert.Contains(t, clean, "Saved Notes")
	assert.Contains(t, clean, "Title")
	assert.Contains(t, clean, "note-000")
	assert.NotContains(t, clean, "of 2")
}

func TestLandingPagesLongLists(t *testing.T) {
	notes := &fakeStore{}
	for i := 0; i < 6; i++ {
		_, err := notes.Save(context.Background(), fmt.Sprintf("Visit %d", i), testNote())
		require.NoError(t, err)
	}
	m := NewLandingModel(notes, testStyles())
	m.setSize(120, 20)
	m, _ = m.Update(m.Init()())

	assert.Contains(t, components.SanitizeText(m.View()), "1-4 of 6")
	for i := 0; i < 5; i++ {
		m, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 5, m.list.Cursor)
	assert.Contains(t, components.SanitizeText(m.View()), "3-6 of 6")
}

func TestLandingOpensSelectedNote(t *testing.T) {
	notes := &fakeStore{}
	first, err := notes.Save(context.Background(), "Progress Notes", testNote())
	require.NoError(t, err)
	_, err = notes.Save(context.Background(), "SOAP Notes", testNote())
	require.NoError(t, err)

	m := loadedLanding(t, notes)
	m, _ = m.Update(runeKey('j'))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	opened, ok := cmd().(noteOpenedMsg)
	require.True(t, ok)
	require.NoError(t, opened.err)
	assert.Equal(t, first.ID, opened.note.ID)
	assert.Equal(t, ProgressVariant.Name, opened.variant.Name)

	_, cmd = m.Update(runeKey('v'))
	require.NotNil(t, cmd)
	opened = cmd().(noteOpenedMsg)
	assert.Equal(t, SOAPVariant.Name, opened.variant.Name)
}

func TestLandingShowsListError(t *testing.T) {
	notes := &fakeStore{listErr: errors.New("database is locked")}
	m := loadedLanding(t, notes)

	clean := components.SanitizeText(m.View())
	assert.Contains(t, clean, "Could Not Load Notes")
	assert.Contains(t, clean, "database is locked")

	notes.listErr = nil
	m, cmd := m.Update(runeKey('r'))
	require.NotNil(t, cmd)
	assert.Contains(t, components.SanitizeText(m.View()), "Could Not Load Notes")
	m, _ = m.Update(cmd())
	assert.Contains(t, components.SanitizeText(m.View()), "No saved notes yet.")
}

func TestLandingShowsSelectedDetails(t *testing.T) {
	notes := &fakeStore{}
	saved, err := notes.Save(context.Background(), "Progress Notes", testNote())
	require.NoError(t, err)
	m := loadedLanding(t, notes)

	clean := components.SanitizeText(m.View())
	assert.Contains(t, clean, "Selected")
	assert.Contains(t, clean, saved.ID)
}

func TestLandingDeleteAsksFirst(t *testing.T) {
	notes := &fakeStore{}
	for _, title := range []string{"Keep Me", "Drop Me"} {
		_, err := notes.Save(context.Background(), title, testNote())
		require.NoError(t, err)
	}
	m := loadedLanding(t, notes)
	require.Equal(t, "Drop Me", m.items[0].Title)

	m, cmd := m.Update(runeKey('x'))
	assert.Nil(t, cmd)
	require.True(t, m.confirmDelete)
	clean := components.SanitizeText(m.View())
	assert.Contains(t, clean, "Delete Note")
	assert.Contains(t, clean, `Delete "Drop Me"`)

	// n backs out without touching the store
	m, cmd = m.Update(runeKey('n'))
	assert.Nil(t, cmd)
	assert.False(t, m.confirmDelete)
	assert.Len(t, notes.notes, 2)

	m, _ = m.Update(runeKey('x'))
	m, cmd = m.Update(runeKey('y'))
	require.NotNil(t, cmd)
	deleted, ok := cmd().(noteDeletedMsg)
	require.True(t, ok)
	require.NoError(t, deleted.err)
	require.Len(t, notes.notes, 1)

	m, cmd = m.Update(deleted)
	require.NotNil(t, cmd)
	m, _ = m.Update(cmd())
	require.Len(t, m.items, 1)
	assert.Equal(t, "Keep Me", m.items[0].Title)
}

func TestLandingDeleteNeedsSelection(t *testing.T) {
	m := loadedLanding(t, &fakeStore{})
	m, _ = m.Update(runeKey('x'))
	assert.False(t, m.confirmDelete)
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "abcdefgh", shortID("abcdefgh-1234"))
	assert.Equal(t, "abc", shortID("abc"))
}
