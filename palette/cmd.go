package palette

import (
	"fmt"
	"log/slog"
	"os"

	"pixgrid/colors"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	List struct {
		Name string `arg:"" optional:"" help:"Palette name or RIFF PAL file to show"`
	} `cmd:"" help:"List built-in palettes, or the colors of one palette"`
	Export struct {
		Name string `arg:"" help:"Palette name or RIFF PAL file"`
		Out  string `arg:"" help:"Destination RIFF PAL file" type:"path"`
	} `cmd:"" help:"Write a palette as a RIFF PAL file"`
}

func (c *CLICmd) Run(kctx *kong.Context) error {
	switch kctx.Selected().Name {
	case "list":
		return c.list(kctx)
	case "export":
		return c.export()
	}
	return fmt.Errorf("unsupported palette operation")
}

func (c *CLICmd) list(kctx *kong.Context) error {
	if c.List.Name == "" {
		for _, name := range Names() {
			fmt.Fprintf(kctx.Stdout, "%s (%d colors)\n", name, len(builtin[name]))
		}
		return nil
	}

	pal, err := Load(c.List.Name)
	if err != nil {
		return err
	}
	for i, col := range pal {
		if name, ok := colors.Name(col); ok {
			fmt.Fprintf(kctx.Stdout, "%3d %s %s\n", i+1, col, name)
		} else {
			fmt.Fprintf(kctx.Stdout, "%3d %s\n", i+1, col)
		}
	}
	return nil
}

func (c *CLICmd) export() (err error) {
	pal, err := Load(c.Export.Name)
	if err != nil {
		return err
	}

	outFile, err := os.Create(c.Export.Out)
	if err != nil {
		return fmt.Errorf("could not open destination file %q: %w", c.Export.Out, err)
	}
	defer func() {
		if closeErr := outFile.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close destination file %q: %w", c.Export.Out, closeErr)
		}
	}()

	n, err := WriteTo(outFile, []Palette{pal})
	if err != nil {
		return fmt.Errorf("could not write palette %q: %w", c.Export.Out, err)
	}

	slog.Info("exported palette", "name", c.Export.Name, "file", c.Export.Out, "colors", len(pal), "bytes", n)
	return nil
}
