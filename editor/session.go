// Package editor ties one grid, the active color and the palette together
// behind the operations a user interface needs.
package editor

import (
	"fmt"
	"image"
	"log/slog"

	"pixgrid/bitmap"
	"pixgrid/colors"
	"pixgrid/grid"
	"pixgrid/palette"
)

type Options struct {
	Width, Height int
	Palette       palette.Palette
	Import        bitmap.Options
	Logger        *slog.Logger
}

// Session is one open document. It is not safe for concurrent use.
type Session struct {
	grid    *grid.Model
	active  colors.RGB
	palette palette.Palette
	imp     bitmap.Options
	path    string
	logger  *slog.Logger
}

// New starts a session on a blank grid of the requested size, falling back
// to the default size when it is not editable.
func New(opts Options) *Session {
	g, ok := grid.New(opts.Width, opts.Height)
	if !ok {
		g, _ = grid.New(grid.DefaultWidth, grid.DefaultHeight)
	}

	s := &Session{
		grid:    g,
		active:  grid.DefaultColor,
		palette: opts.Palette,
		imp:     opts.Import,
		logger:  opts.Logger,
	}
	if len(s.palette) == 0 {
		s.palette = palette.Default
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	return s
}

// Grid returns the current grid. It is replaced, not mutated, by Load.
func (s *Session) Grid() *grid.Model { return s.grid }

func (s *Session) Active() colors.RGB       { return s.active }
func (s *Session) Palette() palette.Palette { return s.palette }

func (s *Session) ImportOptions() bitmap.Options { return s.imp }
func (s *Session) Logger() *slog.Logger          { return s.logger }

// Path is the file last saved to or loaded from.
func (s *Session) Path() string { return s.path }

// Create replaces the grid with a blank one. Sizes outside the editing limits
// are ignored.
func (s *Session) Create(width, height int) bool {
	if !s.grid.Reset(width, height) {
		s.logger.Debug("ignoring grid size", "width", width, "height", height)
		return false
	}
	s.logger.Info("created grid", "width", width, "height", height)
	return true
}

// Paint applies the active color at (row, col) and returns the cells to redraw.
func (s *Session) Paint(row, col int) image.Rectangle {
	return s.grid.Paint(row, col, s.active)
}

func (s *Session) SelectColor(c colors.RGB) {
	s.active = c
}

// SelectIndex selects a palette entry; out of range indexes are ignored.
func (s *Session) SelectIndex(i int) bool {
	if i < 0 || i >= len(s.palette) {
		return false
	}
	s.active = s.palette[i]
	return true
}

// SelectCustom handles the result of a color prompt. A cancelled prompt leaves
// the active color as is.
func (s *Session) SelectCustom(value string, ok bool) error {
	if !ok {
		return nil
	}
	c, err := colors.Parse(value)
	if err != nil {
		return err
	}
	s.active = c
	return nil
}

// Save writes the grid to path. An empty path is a cancelled dialog.
func (s *Session) Save(path string) error {
	if path == "" {
		return nil
	}

	logger := s.logger.With("file", path)
	if err := bitmap.Save(path, s.grid); err != nil {
		logger.Error("could not save grid", "error", err)
		return err
	}
	s.path = path
	logger.Info("saved grid", "width", s.grid.Width(), "height", s.grid.Height())
	return nil
}

// Load replaces the grid with the bitmap at path. On error the current grid
// is kept. An empty path is a cancelled dialog.
func (s *Session) Load(path string) error {
	if path == "" {
		return nil
	}

	logger := s.logger.With("file", path)
	g, err := bitmap.Load(path, s.imp)
	if err != nil {
		logger.Error("could not load grid", "error", err)
		return err
	}
	s.Replace(g)
	s.path = path
	logger.Info("loaded grid", "width", g.Width(), "height", g.Height())
	return nil
}

// Replace installs g as the current grid, for loads done off the session.
func (s *Session) Replace(g *grid.Model) {
	if g == nil {
		panic(fmt.Sprintf("editor: nil grid replacing %dx%d", s.grid.Width(), s.grid.Height()))
	}
	s.grid = g
}

// SetPath records the document path after a save done off the session.
func (s *Session) SetPath(path string) {
	s.path = path
}
