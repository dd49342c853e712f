package ui

import tea "github.com/charmbracelet/bubbletea"

func isKey(msg tea.KeyMsg, keys ...string) bool {
	for _, k := range keys {
		if msg.String() == k {
			return true
		}
	}
	return false
}

func isQuit(msg tea.KeyMsg) bool {
	return isKey(msg, "q", "ctrl+c")
}

func isBack(msg tea.KeyMsg) bool {
	if msg.Type == tea.KeyEsc {
		return true
	}
	return isKey(msg, "esc", "escape", "ctrl+[")
}

func isUp(msg tea.KeyMsg) bool {
	return isKey(msg, "up", "k")
}

func isDown(msg tea.KeyMsg) bool {
	return isKey(msg, "down", "j")
}

func isEnter(msg tea.KeyMsg) bool {
	return isKey(msg, "enter", "return")
}

func isPageUp(msg tea.KeyMsg) bool {
	return isKey(msg, "pgup", "ctrl+u")
}

func isPageDown(msg tea.KeyMsg) bool {
	return isKey(msg, "pgdown", "ctrl+d")
}

func isConfirm(msg tea.KeyMsg) bool {
	return isKey(msg, "y", "Y")
}

func isDeny(msg tea.KeyMsg) bool {
	return isBack(msg) || isKey(msg, "n", "N")
}

// isCommit reports the key that commits an open field editor. Plain enter
// inserts a newline in multi-line editors.
func isCommit(msg tea.KeyMsg, multiline bool) bool {
	if multiline {
		return isKey(msg, "ctrl+s", "alt+enter")
	}
	return isEnter(msg) || isKey(msg, "ctrl+s")
}
