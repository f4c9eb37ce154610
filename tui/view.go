package tui

import (
	"fmt"
	"strings"

	"pixgrid/colors"
)

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder

	// The first gridTop lines are fixed, see handleMouse.
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderPalette())
	b.WriteString("\n\n")
	b.WriteString(m.renderGrid())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())

	return b.String()
}

func (m Model) renderTitle() string {
	g := m.session.Grid()
	name := m.session.Path()
	if name == "" {
		name = "untitled"
	}
	return TitleStyle.Render("pixgrid") + " " +
		DimmedStyle.Render(fmt.Sprintf("%s · %d×%d", name, g.Width(), g.Height()))
}

func (m Model) renderPalette() string {
	var b strings.Builder
	active := m.session.Active()
	for i, c := range m.session.Palette() {
		label := "   "
		switch {
		case c == active:
			label = " ● "
		case i < 9:
			label = fmt.Sprintf(" %d ", i+1)
		}
		b.WriteString(cellStyle(c).Render(label))
	}

	b.WriteString("  ")
	b.WriteString(cellStyle(active).Render("  "))
	b.WriteString(" ")
	b.WriteString(DimmedStyle.Render(describe(active)))
	return b.String()
}

func (m Model) renderGrid() string {
	g := m.session.Grid()
	var b strings.Builder
	for row := range g.Height() {
		for col := range g.Width() {
			label := "  "
			if row == m.cursor.Y && col == m.cursor.X {
				label = "[]"
			}
			b.WriteString(cellStyle(g.At(row, col)).Render(label))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m Model) renderFooter() string {
	var b strings.Builder

	switch m.state {
	case StateSizeInput:
		b.WriteString(PromptStyle.Render("new grid "))
		b.WriteString(m.widthInput.View())
		b.WriteString("  ")
		b.WriteString(m.heightInput.View())
		b.WriteString("\n")
		b.WriteString(renderHelp([2]string{"tab", "switch"}, [2]string{"enter", "create"}, [2]string{"esc", "cancel"}))

	case StateColorInput, StateSaveInput, StateLoadInput:
		b.WriteString(m.textInput.View())
		b.WriteString("\n")
		b.WriteString(renderHelp([2]string{"enter", "confirm"}, [2]string{"esc", "cancel"}))

	case StateError:
		b.WriteString(ErrorStyle.Render("Error: " + m.err.Error()))
		b.WriteString("\n")
		b.WriteString(RenderKeyBinding("any key", "return"))

	default:
		b.WriteString(DimmedStyle.Render(m.status))
		b.WriteString("\n")
		b.WriteString(renderHelp(
			[2]string{"arrows", "move"},
			[2]string{"space", "paint"},
			[2]string{"1-9", "color"},
			[2]string{"c", "custom"},
			[2]string{"n", "new"},
			[2]string{"s", "save"},
			[2]string{"o", "open"},
			[2]string{"q", "quit"},
		))
	}

	return b.String()
}

func describe(c colors.RGB) string {
	if name, ok := colors.Name(c); ok {
		return fmt.Sprintf("%s %s", name, c)
	}
	return c.String()
}
