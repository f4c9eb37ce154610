package tui

import (
	"fmt"
	"image"
	"path/filepath"
	"strconv"
	"strings"

	"pixgrid/editor"
	"pixgrid/grid"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// State represents the current view state
type State int

const (
	StateEditing State = iota
	StateSizeInput
	StateColorInput
	StateSaveInput
	StateLoadInput
	StateError
)

// Screen layout, used to map mouse clicks back to cells.
const (
	paletteLine = 1
	gridTop     = 3
	cellWidth   = 2
	swatchWidth = 3
)

// Model is the main Bubbletea model
type Model struct {
	state   State
	session *editor.Session
	cursor  image.Point // X is the column, Y the row

	widthInput  textinput.Model
	heightInput textinput.Model
	textInput   textinput.Model

	status string
	err    error
	width  int
	height int
}

// Messages for async operations
type savedMsg struct{ path string }
type loadedMsg struct {
	path string
	grid *grid.Model
}
type fileErrorMsg struct{ err error }

// New creates a Model editing s.
func New(s *editor.Session) Model {
	wi := textinput.New()
	wi.Prompt = "width: "
	wi.CharLimit = 3
	wi.Width = 4

	hi := textinput.New()
	hi.Prompt = "height: "
	hi.CharLimit = 3
	hi.Width = 4

	ti := textinput.New()
	ti.CharLimit = 256
	ti.Width = 50

	return Model{
		state:       StateEditing,
		session:     s,
		widthInput:  wi,
		heightInput: hi,
		textInput:   ti,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		if m.state == StateEditing {
			return m.handleMouse(msg)
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case savedMsg:
		m.session.SetPath(msg.path)
		m.status = "saved " + msg.path
		return m, nil

	case loadedMsg:
		m.session.Replace(msg.grid)
		m.session.SetPath(msg.path)
		m.clampCursor()
		m.status = fmt.Sprintf("loaded %s (%d×%d)", msg.path, msg.grid.Width(), msg.grid.Height())
		return m, nil

	case fileErrorMsg:
		m.state = StateError
		m.err = msg.err
		return m, nil
	}

	return m.updateInputs(msg)
}

// updateInputs forwards other messages (cursor blink) to the focused input.
func (m Model) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.state {
	case StateSizeInput:
		var wc, hc tea.Cmd
		m.widthInput, wc = m.widthInput.Update(msg)
		m.heightInput, hc = m.heightInput.Update(msg)
		cmd = tea.Batch(wc, hc)
	case StateColorInput, StateSaveInput, StateLoadInput:
		m.textInput, cmd = m.textInput.Update(msg)
	}
	return m, cmd
}

// handleKeyPress processes keyboard input based on current state
func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case StateEditing:
		return m.handleEditingKey(msg)
	case StateSizeInput:
		return m.handleSizeInputKey(msg)
	case StateColorInput, StateSaveInput, StateLoadInput:
		return m.handleTextInputKey(msg)
	case StateError:
		// Any key returns to the grid
		m.state = StateEditing
		m.err = nil
		return m, nil
	}
	return m, nil
}

func (m Model) handleEditingKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	g := m.session.Grid()

	switch key := msg.String(); key {
	case "q":
		return m, tea.Quit

	case "up", "k":
		if m.cursor.Y > 0 {
			m.cursor.Y--
		}

	case "down", "j":
		if m.cursor.Y < g.Height()-1 {
			m.cursor.Y++
		}

	case "left", "h":
		if m.cursor.X > 0 {
			m.cursor.X--
		}

	case "right", "l":
		if m.cursor.X < g.Width()-1 {
			m.cursor.X++
		}

	case " ", "space", "enter":
		m.paint(m.cursor.Y, m.cursor.X)

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		i, _ := strconv.Atoi(key)
		m.session.SelectIndex(i - 1)

	case "[", "]":
		m.cyclePalette(key == "]")

	case "n":
		m.state = StateSizeInput
		m.widthInput.SetValue(strconv.Itoa(g.Width()))
		m.heightInput.SetValue(strconv.Itoa(g.Height()))
		m.widthInput.CursorEnd()
		m.heightInput.CursorEnd()
		m.heightInput.Blur()
		return m, m.widthInput.Focus()

	case "c":
		return m.openTextInput(StateColorInput, "color: ", m.session.Active().String())

	case "s":
		return m.openTextInput(StateSaveInput, "save to: ", m.session.Path())

	case "o":
		return m.openTextInput(StateLoadInput, "open: ", m.session.Path())
	}
	return m, nil
}

func (m Model) openTextInput(state State, prompt, value string) (tea.Model, tea.Cmd) {
	m.state = state
	m.textInput.Prompt = prompt
	m.textInput.SetValue(value)
	m.textInput.CursorEnd()
	return m, m.textInput.Focus()
}

func (m Model) handleSizeInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.state = StateEditing
		return m, nil

	case "tab", "shift+tab":
		if m.widthInput.Focused() {
			m.widthInput.Blur()
			return m, m.heightInput.Focus()
		}
		m.heightInput.Blur()
		return m, m.widthInput.Focus()

	case "enter":
		m.state = StateEditing
		width, werr := strconv.Atoi(strings.TrimSpace(m.widthInput.Value()))
		height, herr := strconv.Atoi(strings.TrimSpace(m.heightInput.Value()))
		// Invalid sizes are ignored, the grid stays as it was
		if werr == nil && herr == nil && m.session.Create(width, height) {
			m.cursor = image.Point{}
			m.status = fmt.Sprintf("new %d×%d grid", width, height)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.widthInput.Focused() {
		m.widthInput, cmd = m.widthInput.Update(msg)
	} else {
		m.heightInput, cmd = m.heightInput.Update(msg)
	}
	return m, cmd
}

func (m Model) handleTextInputKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		// Cancelled: the active color stays and no file is touched
		m.state = StateEditing
		m.textInput.Blur()
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.textInput.Value())
		state := m.state
		m.state = StateEditing
		m.textInput.Blur()

		switch state {
		case StateColorInput:
			if value == "" {
				return m, nil
			}
			if err := m.session.SelectCustom(value, true); err != nil {
				m.state = StateError
				m.err = err
			}
			return m, nil
		case StateSaveInput:
			if value == "" {
				return m, nil
			}
			return m, saveGrid(withBMPExt(value), m.session)
		case StateLoadInput:
			if value == "" {
				return m, nil
			}
			return m, loadGrid(value, m.session)
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y == paletteLine {
		m.session.SelectIndex(msg.X / swatchWidth)
		return m, nil
	}

	g := m.session.Grid()
	row, col := msg.Y-gridTop, msg.X/cellWidth
	if row < 0 || row >= g.Height() || col < 0 || col >= g.Width() {
		return m, nil
	}
	m.cursor = image.Pt(col, row)
	m.paint(row, col)
	return m, nil
}

func (m *Model) paint(row, col int) {
	r := m.session.Paint(row, col)
	switch {
	case r.Empty():
		m.status = ""
	case r.Dx() == 1 && r.Dy() == 1:
		m.status = fmt.Sprintf("painted %d,%d", row, col)
	default:
		m.status = fmt.Sprintf("filled %d×%d", r.Dx(), r.Dy())
	}
}

func (m *Model) cyclePalette(forward bool) {
	pal := m.session.Palette()
	i := pal.Index(m.session.Active())
	if pal[i] != m.session.Active() {
		// a custom color: start from either end
		i = -1
		if !forward {
			i = 0
		}
	}
	if forward {
		i = (i + 1) % len(pal)
	} else {
		i = (i - 1 + len(pal)) % len(pal)
	}
	m.session.SelectIndex(i)
}

func (m *Model) clampCursor() {
	g := m.session.Grid()
	m.cursor.X = min(m.cursor.X, g.Width()-1)
	m.cursor.Y = min(m.cursor.Y, g.Height()-1)
}

// State returns the current view state.
func (m Model) State() State {
	return m.state
}

// Session returns the edited document.
func (m Model) Session() *editor.Session {
	return m.session
}

func withBMPExt(path string) string {
	if filepath.Ext(path) == "" {
		return path + ".bmp"
	}
	return path
}
