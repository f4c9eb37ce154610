package paint

import (
	"errors"
	"fmt"
	"strings"

	"pixgrid/grid"
	"pixgrid/level"
)

// describeObjects lists the platformer objects painted on g, one per line,
// as row,col of the top left cell and width x height.
func describeObjects(g *grid.Model) string {
	lvl, err := level.Read(g, level.DefaultLegend)

	var b strings.Builder
	for _, k := range level.Kinds {
		for _, r := range lvl.Objects[k] {
			fmt.Fprintf(&b, "    %-10s %d,%d %dx%d\n", k, r.Min.Y, r.Min.X, r.Dx(), r.Dy())
		}
	}
	if errors.Is(err, level.ErrNoPlayer) {
		b.WriteString("    warning: no player, paint one in blue\n")
	}
	return b.String()
}
