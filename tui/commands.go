package tui

import (
	"pixgrid/bitmap"
	"pixgrid/editor"

	tea "github.com/charmbracelet/bubbletea"
)

// saveGrid returns a command writing a snapshot of the current grid to path.
func saveGrid(path string, s *editor.Session) tea.Cmd {
	g := s.Grid().Clone()
	logger := s.Logger().With("file", path)

	return func() tea.Msg {
		if err := bitmap.Save(path, g); err != nil {
			logger.Error("could not save grid", "error", err)
			return fileErrorMsg{err: err}
		}
		logger.Info("saved grid", "width", g.Width(), "height", g.Height())
		return savedMsg{path: path}
	}
}

// loadGrid returns a command decoding the bitmap at path. The session is left
// alone until Update receives the result.
func loadGrid(path string, s *editor.Session) tea.Cmd {
	opts := s.ImportOptions()
	logger := s.Logger().With("file", path)

	return func() tea.Msg {
		g, err := bitmap.Load(path, opts)
		if err != nil {
			logger.Error("could not load grid", "error", err)
			return fileErrorMsg{err: err}
		}
		logger.Info("loaded grid", "width", g.Width(), "height", g.Height())
		return loadedMsg{path: path, grid: g}
	}
}
