package bitmap

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"pixgrid/grid"
)

// Save writes g to path through a temporary file in the same directory, so a
// failed save leaves any existing file untouched.
func Save(path string, g *grid.Model) (err error) {
	destDir, destName := filepath.Split(path)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, "."+destName+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary destination for %q: %w", path, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination for %q: %w", path, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination for %q: %w", path, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", path, defErr)
			}
		}
		if err != nil {
			if rmErr := os.Remove(outFile.Name()); rmErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", rmErr)
			}
		}
	}()

	if err = Encode(outFile, g); err != nil {
		return fmt.Errorf("could not save %q: %w", path, err)
	}

	canRename = true
	return nil
}

// Load reads the bitmap at path into a new grid.
func Load(path string, opts Options) (*grid.Model, error) {
	if err := checkSource(path); err != nil {
		return nil, err
	}

	inFile, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open source file %q: %w", path, err)
	}
	defer func() {
		if closeErr := inFile.Close(); closeErr != nil {
			slog.Error("could not close source file", "name", path, "error", closeErr)
		}
	}()

	g, err := Decode(inFile, opts)
	if err != nil {
		return nil, fmt.Errorf("could not load %q: %w", path, err)
	}
	return g, nil
}

func checkSource(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("cannot stat source file %q: %w", path, err)
	}
	if !info.Mode().IsRegular() {
		return fmt.Errorf("cannot read non-regular file %q: %s", info.Name(), info.Mode().String())
	}
	return nil
}
