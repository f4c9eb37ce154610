package tui

import (
	"fmt"
	"log/slog"

	"pixgrid/editor"
	"pixgrid/grid"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
)

type CLICmd struct {
	File   string `arg:"" optional:"" help:"Bitmap to open" type:"path"`
	Width  int    `help:"Width of the initial grid" default:"${width}"`
	Height int    `help:"Height of the initial grid" default:"${height}"`
	editor.LoadFlags
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	if !grid.ValidSize(c.Width, c.Height) {
		return fmt.Errorf("invalid grid size %dx%d, sides must be %d to %d", c.Width, c.Height, grid.MinSide, grid.MaxSide)
	}
	if _, _, err := c.Import(); err != nil {
		return err
	}
	return nil
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	s, err := c.Session(c.Width, c.Height, logger)
	if err != nil {
		return err
	}
	if err := s.Load(c.File); err != nil {
		return err
	}

	p := tea.NewProgram(New(s), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("editor failed: %w", err)
	}
	return nil
}
