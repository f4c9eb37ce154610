package paint

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"pixgrid/bitmap"
	"pixgrid/colors"
	"pixgrid/editor"
	"pixgrid/grid"

	"github.com/alecthomas/kong"
)

// NewCmd writes a blank bitmap.
type NewCmd struct {
	Out    string `arg:"" help:"Destination bitmap" type:"path"`
	Width  int    `help:"Grid width" default:"${width}"`
	Height int    `help:"Grid height" default:"${height}"`
	Color  string `help:"Background color" default:"black"`
	Force  bool   `help:"Overwrite an existing file" default:"false"`

	background colors.RGB `kong:"-"`
}

func (c *NewCmd) Validate(kctx *kong.Context) error {
	if !grid.ValidSize(c.Width, c.Height) {
		return fmt.Errorf("invalid grid size %dx%d, sides must be %d to %d", c.Width, c.Height, grid.MinSide, grid.MaxSide)
	}
	var err error
	if c.background, err = colors.Parse(c.Color); err != nil {
		return fmt.Errorf("invalid background color: %w", err)
	}
	return nil
}

func (c *NewCmd) Run(logger *slog.Logger) error {
	if !c.Force {
		if _, err := os.Stat(c.Out); err == nil {
			return fmt.Errorf("destination file already exists: %q", c.Out)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("cannot stat destination file %q: %w", c.Out, err)
		}
	}

	s := editor.New(editor.Options{Width: c.Width, Height: c.Height, Logger: logger})
	if c.background != grid.DefaultColor {
		s.Replace(grid.Fill(c.Width, c.Height, func(int, int) colors.RGB { return c.background }))
	}
	return s.Save(c.Out)
}

type click struct {
	row, col int
	color    *colors.RGB
}

// CLICmd replays clicks on a bitmap through the paint rules and saves it.
type CLICmd struct {
	File   string   `arg:"" help:"Bitmap to paint" type:"existingfile"`
	Clicks []string `name:"click" short:"c" help:"Cell to click, as ROW,COL or ROW,COL,COLOR. COLOR becomes the active color first." sep:"none" required:""`
	Color  string   `help:"Active color before the first click" default:"black"`
	Out    string   `short:"o" help:"Destination bitmap, defaults to the source file" type:"path"`
	editor.LoadFlags

	active colors.RGB `kong:"-"`
	clicks []click    `kong:"-"`
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	var err error
	if c.active, err = colors.Parse(c.Color); err != nil {
		return fmt.Errorf("invalid active color: %w", err)
	}

	c.clicks = c.clicks[:0]
	for _, s := range c.Clicks {
		cl, err := parseClick(s)
		if err != nil {
			return err
		}
		c.clicks = append(c.clicks, cl)
	}

	if _, _, err := c.Import(); err != nil {
		return err
	}
	return nil
}

func parseClick(s string) (click, error) {
	parts := strings.SplitN(s, ",", 3)
	if len(parts) < 2 {
		return click{}, fmt.Errorf("invalid click %q, should be ROW,COL or ROW,COL,COLOR", s)
	}

	var cl click
	var err error
	if cl.row, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return click{}, fmt.Errorf("invalid click row in %q: %w", s, err)
	}
	if cl.col, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return click{}, fmt.Errorf("invalid click column in %q: %w", s, err)
	}
	if len(parts) == 3 {
		col, err := colors.Parse(parts[2])
		if err != nil {
			return click{}, fmt.Errorf("invalid click color in %q: %w", s, err)
		}
		cl.color = &col
	}
	return cl, nil
}

func (c *CLICmd) Run(logger *slog.Logger) error {
	s, err := c.Session(grid.DefaultWidth, grid.DefaultHeight, logger)
	if err != nil {
		return err
	}
	if err := s.Load(c.File); err != nil {
		return err
	}

	s.SelectColor(c.active)
	g := s.Grid()
	var painted int
	for _, cl := range c.clicks {
		if cl.row < 0 || cl.row >= g.Height() || cl.col < 0 || cl.col >= g.Width() {
			return fmt.Errorf("click %d,%d outside the %dx%d grid", cl.row, cl.col, g.Width(), g.Height())
		}
		if cl.color != nil {
			s.SelectColor(*cl.color)
		}

		r := s.Paint(cl.row, cl.col)
		painted += r.Dx() * r.Dy()
		logger.Debug("click", "row", cl.row, "col", cl.col, "color", s.Active().String(), "cells", r.Dx()*r.Dy())
	}

	out := c.Out
	if out == "" {
		out = c.File
	}
	if err := s.Save(out); err != nil {
		return err
	}

	logger.Info("stats", "clicks", len(c.clicks), "cells", painted)
	return nil
}

// InfoCmd describes bitmaps as editor documents.
type InfoCmd struct {
	Files   []string `arg:"" help:"Bitmaps to describe" type:"existingfile"`
	Objects bool     `help:"List the level objects painted with the platformer legend (player blue, platform white, checkpoint lime, enemy red)"`
}

func (c *InfoCmd) Run(kctx *kong.Context) error {
	var errCount int
	for _, name := range c.Files {
		g, err := bitmap.Load(name, bitmap.Options{Policy: bitmap.PolicyAllow})
		if err != nil {
			errCount++
			slog.Error("could not read bitmap", "file", name, "error", err)
			continue
		}

		editable := "yes"
		if !grid.ValidSize(g.Width(), g.Height()) {
			editable = "no (load with --policy=fit or --policy=allow)"
		}

		fmt.Fprintf(kctx.Stdout, "%s\n  size:     %dx%d\n  editable: %s\n  colors:   %s\n",
			name, g.Width(), g.Height(), editable, describeColors(g))
		if c.Objects {
			fmt.Fprintf(kctx.Stdout, "  objects:\n%s", describeObjects(g))
		}
	}

	if errCount > 0 {
		return fmt.Errorf("error reading %d files", errCount)
	}
	return nil
}
