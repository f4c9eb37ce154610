package paint

import (
	"fmt"
	"slices"
	"strings"

	"pixgrid/colors"
	"pixgrid/grid"
)

const maxListedColors = 8

// describeColors lists the most used colors of g, most frequent first.
func describeColors(g *grid.Model) string {
	counts := g.Colors()
	keys := make([]colors.RGB, 0, len(counts))
	for c := range counts {
		keys = append(keys, c)
	}
	slices.SortFunc(keys, func(a, b colors.RGB) int {
		if d := counts[b] - counts[a]; d != 0 {
			return d
		}
		return strings.Compare(a.String(), b.String())
	})

	parts := make([]string, 0, min(len(keys), maxListedColors)+1)
	for i, c := range keys {
		if i == maxListedColors {
			parts = append(parts, fmt.Sprintf("%d more", len(keys)-i))
			break
		}
		label := c.String()
		if name, ok := colors.Name(c); ok {
			label = name
		}
		parts = append(parts, fmt.Sprintf("%s×%d", label, counts[c]))
	}
	return strings.Join(parts, ", ")
}
