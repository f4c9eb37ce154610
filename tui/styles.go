package tui

import (
	"strings"

	"pixgrid/colors"
	"pixgrid/palette"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorAccent = lipgloss.Color("#E07A5F")
	colorWhite  = lipgloss.Color("#FFFFFF")
	colorDim    = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#EF4444")
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	DimmedStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	KeyStyle = lipgloss.NewStyle().
			Foreground(colorWhite)

	PromptStyle = lipgloss.NewStyle().
			Foreground(colorAccent)
)

// cellStyle paints a block with c as background, and text in whichever of
// black or white contrasts with it.
func cellStyle(c colors.RGB) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(c.String())).
		Foreground(lipgloss.Color(palette.Contrast(c).String()))
}

// RenderKeyBinding formats a key binding with highlighted key
func RenderKeyBinding(key, description string) string {
	return KeyStyle.Render(key) + " " + DimmedStyle.Render(description)
}

func renderHelp(bindings ...[2]string) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = RenderKeyBinding(b[0], b[1])
	}
	return strings.Join(parts, DimmedStyle.Render(" · "))
}
