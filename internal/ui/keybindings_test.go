package ui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestIsQuit(t *testing.T) {
	assert.True(t, isQuit(tea.KeyMsg{Type: tea.KeyCtrlC}))
	assert.True(t, isQuit(runeKey('q')))
	assert.False(t, isQuit(runeKey('a')))
}

func TestIsEnter(t *testing.T) {
	assert.True(t, isEnter(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.False(t, isEnter(tea.KeyMsg{Type: tea.KeySpace}))
}

func TestIsBack(t *testing.T) {
	assert.True(t, isBack(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isBack(tea.KeyMsg{Type: tea.KeyEnter}))
}

func TestIsUpDownIncludeVimKeys(t *testing.T) {
	assert.True(t, isDown(tea.KeyMsg{Type: tea.KeyDown}))
	assert.True(t, isDown(runeKey('j')))
	assert.False(t, isDown(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isUp(tea.KeyMsg{Type: tea.KeyUp}))
	assert.True(t, isUp(runeKey('k')))
	assert.False(t, isUp(tea.KeyMsg{Type: tea.KeyDown}))
}

func TestIsConfirmAndDeny(t *testing.T) {
	assert.True(t, isConfirm(runeKey('y')))
	assert.False(t, isConfirm(runeKey('n')))
	assert.True(t, isDeny(runeKey('n')))
	assert.True(t, isDeny(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.False(t, isDeny(runeKey('y')))
}

func TestIsCommit(t *testing.T) {
	enter := tea.KeyMsg{Type: tea.KeyEnter}
	save := tea.KeyMsg{Type: tea.KeyCtrlS}
	assert.True(t, isCommit(enter, false))
	assert.False(t, isCommit(enter, true))
	assert.True(t, isCommit(save, true))
	assert.True(t, isCommit(save, false))
	assert.True(t, isCommit(tea.KeyMsg{Type: tea.KeyEnter, Alt: true}, true))
}

func TestIsPaging(t *testing.T) {
	assert.True(t, isPageDown(tea.KeyMsg{Type: tea.KeyPgDown}))
	assert.True(t, isPageUp(tea.KeyMsg{Type: tea.KeyPgUp}))
	assert.False(t, isPageUp(tea.KeyMsg{Type: tea.KeyPgDown}))
}
