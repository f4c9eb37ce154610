// Package level reads platformer levels painted on a grid.
//
// Each object kind has a legend color. The cells of one color are covered
// with rectangles: every horizontal run becomes a rectangle, and runs
// stacked on the same columns are merged into one taller rectangle.
// Rectangles are in cell units with X the column and Y the row.
package level

import (
	"errors"
	"image"

	"pixgrid/colors"
	"pixgrid/grid"
)

type Kind int

const (
	Player Kind = iota
	Platform
	Checkpoint
	Enemy
)

// Kinds lists every object kind in reading order.
var Kinds = []Kind{Player, Platform, Checkpoint, Enemy}

var kindNames = [...]string{"player", "platform", "checkpoint", "enemy"}

func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// Legend maps object kinds to the color they are painted with.
type Legend map[Kind]colors.RGB

// DefaultLegend is the color key of level bitmaps.
var DefaultLegend = Legend{
	Player:     colors.Blue,
	Platform:   colors.White,
	Checkpoint: colors.Lime,
	Enemy:      colors.Red,
}

var ErrNoPlayer = errors.New("level has no player")

// Level holds the objects found on a grid, per kind.
type Level struct {
	Objects map[Kind][]image.Rectangle
}

// Read finds the objects of every legend kind on g. The level is returned
// even when it has no player, together with ErrNoPlayer.
func Read(g *grid.Model, legend Legend) (Level, error) {
	lvl := Level{Objects: make(map[Kind][]image.Rectangle, len(Kinds))}
	for _, k := range Kinds {
		c, ok := legend[k]
		if !ok {
			continue
		}
		if objs := Aggregate(g, c); len(objs) > 0 {
			lvl.Objects[k] = objs
		}
	}

	if len(lvl.Objects[Player]) == 0 {
		return lvl, ErrNoPlayer
	}
	return lvl, nil
}

// Spawn returns the player rectangle, the first one read when several were
// painted.
func (l Level) Spawn() (image.Rectangle, bool) {
	players := l.Objects[Player]
	if len(players) == 0 {
		return image.Rectangle{}, false
	}
	return players[0], true
}

// Aggregate covers the cells of color c with rectangles. Rows are read from
// the bottom up and columns left to right.
func Aggregate(g *grid.Model, c colors.RGB) []image.Rectangle {
	var runs []image.Rectangle
	for row := g.Height() - 1; row >= 0; row-- {
		for col := 0; col < g.Width(); col++ {
			if g.At(row, col) != c {
				continue
			}
			start := col
			for col < g.Width() && g.At(row, col) == c {
				col++
			}
			runs = append(runs, image.Rect(start, row, col, row+1))
		}
	}
	return merge(runs)
}

// merge joins each run to the first rectangle it extends, either on top of
// it over the same columns or to its left over the same rows.
func merge(runs []image.Rectangle) []image.Rectangle {
	var out []image.Rectangle
next:
	for _, r := range runs {
		for i, o := range out {
			switch {
			case r.Min.X == o.Min.X && r.Max.X == o.Max.X && r.Max.Y == o.Min.Y:
				out[i].Min.Y = r.Min.Y
				continue next
			case r.Min.Y == o.Min.Y && r.Max.Y == o.Max.Y && r.Max.X == o.Min.X:
				out[i].Min.X = r.Min.X
				continue next
			}
		}
		out = append(out, r)
	}
	return out
}
