package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const bannerArt = `
 ┏┓┓ ┳┳┓┳┏┓┏┓┓   ┳┓┏┓┏┳┓┏┓┏┓
 ┃ ┃ ┃┃┃┃┃ ┣┫┃   ┃┃┃┃ ┃ ┣ ┗┓
 ┗┛┗┛┻┛┗┻┗┛┛┗┗┛  ┛┗┗┛ ┻ ┗┛┗┛`

const bannerSubtitle = "Dictated Clinical Notes • Command-Line Interface"

// RenderBanner returns the styled banner with its subtitle and underline.
func RenderBanner(s Styles) string {
	lines := splitLines(bannerArt)

	maxWidth := lipgloss.Width(bannerSubtitle)
	for _, line := range lines {
		maxWidth = max(maxWidth, lipgloss.Width(line))
	}

	var b strings.Builder
	for _, line := range lines {
		if line == "" {
			continue
		}
		b.WriteString(s.Banner.Render(line))
		b.WriteString("\n")
	}

	subtitle := s.Subtitle.Width(maxWidth).Align(lipgloss.Center).Render(bannerSubtitle)
	underline := s.Divider.Width(maxWidth).Align(lipgloss.Center).
		Render(strings.Repeat("─", lipgloss.Width(bannerSubtitle)))

	return "\n" + b.String() + "\n" + subtitle + "\n" + underline + "\n"
}

func splitLines(s string) []string {
	return strings.Split(strings.TrimPrefix(s, "\n"), "\n")
}
