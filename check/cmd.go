package check

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"

	"pixgrid/bitmap"
	"pixgrid/editor"
	"pixgrid/parallel"

	"github.com/alecthomas/kong"
)

// CLICmd reports which bitmaps of a folder can be opened by the editor.
type CLICmd struct {
	Scan string `arg:"" optional:"" help:"Folder to scan" default:"."`
	All  bool   `help:"Check every file, not only .bmp ones" default:"false"`
	editor.LoadFlags
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if _, _, err := c.Import(); err != nil {
		return err
	}
	return nil
}

func (c *CLICmd) Run(pool *parallel.Pool) error {
	opts, _, err := c.Import()
	if err != nil {
		return err
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var okCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		if !c.All && !strings.EqualFold(filepath.Ext(file.Name()), ".bmp") {
			continue
		}

		pool.Do(func() {
			name := filepath.Join(c.Scan, file.Name())
			logger := slog.Default().With("file", name)

			g, err := bitmap.Load(name, opts)
			if err != nil {
				errCount.Add(1)
				logger.Error("not editable", "error", err)
				return
			}

			okCount.Add(1)
			logger.Info("editable", "width", g.Width(), "height", g.Height(), "colors", len(g.Colors()))
		})
	}

	pool.Wait()

	ok := okCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "editable", ok, "errors", errors, "total", ok+errors)

	if errors > 0 {
		return fmt.Errorf("%d of %d files cannot be edited", errors, ok+errors)
	}
	return nil
}
