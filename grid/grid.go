// Package grid holds the editable cell grid and its paint state machine.
//
// Painting a cell that differs from the active color sets that single cell
// and makes it the fill anchor. Painting a cell that already has the active
// color fills the rectangle between it and the anchor, and leaves the anchor
// where it was.
package grid

import (
	"image"

	"pixgrid/colors"
)

const (
	MinSide = 1
	MaxSide = 30

	DefaultWidth  = 10
	DefaultHeight = 10
)

// DefaultColor is the color of every cell of a freshly created grid.
var DefaultColor = colors.Black

// Model is a width × height grid of colors stored row-major.
type Model struct {
	width, height int
	cells         []colors.RGB

	anchor    image.Point
	hasAnchor bool
}

// ValidSize reports whether width and height are accepted by Reset.
func ValidSize(width, height int) bool {
	return width >= MinSide && width <= MaxSide && height >= MinSide && height <= MaxSide
}

// New returns a grid of the given size filled with DefaultColor. It returns
// false, and a nil grid, when the size is outside the editing limits.
func New(width, height int) (*Model, bool) {
	m := &Model{}
	if !m.Reset(width, height) {
		return nil, false
	}
	return m, true
}

// Fill builds a grid of any positive size, taking each cell from at. The
// result has no fill anchor. Callers are responsible for size policy.
func Fill(width, height int, at func(row, col int) colors.RGB) *Model {
	if width < 1 || height < 1 {
		panic("grid: non-positive size")
	}

	m := &Model{
		width:  width,
		height: height,
		cells:  make([]colors.RGB, width*height),
	}
	for row := range height {
		for col := range width {
			m.cells[row*width+col] = at(row, col)
		}
	}
	return m
}

// Reset discards the grid content and allocates a new one of the given size,
// filled with DefaultColor and without anchor. An invalid size leaves the
// grid untouched and returns false.
func (m *Model) Reset(width, height int) bool {
	if !ValidSize(width, height) {
		return false
	}

	m.width, m.height = width, height
	m.cells = make([]colors.RGB, width*height)
	for i := range m.cells {
		m.cells[i] = DefaultColor
	}
	m.anchor, m.hasAnchor = image.Point{}, false
	return true
}

func (m *Model) Width() int  { return m.width }
func (m *Model) Height() int { return m.height }

// Bounds is the grid area in cell coordinates: X is the column, Y the row.
func (m *Model) Bounds() image.Rectangle {
	return image.Rect(0, 0, m.width, m.height)
}

// At returns the color of the cell at (row, col).
func (m *Model) At(row, col int) colors.RGB {
	return m.cells[m.index(row, col)]
}

// Anchor returns the last cell whose color was changed by a single-cell
// paint, as X=col, Y=row.
func (m *Model) Anchor() (image.Point, bool) {
	return m.anchor, m.hasAnchor
}

// Paint applies active at (row, col) and returns the rectangle of cells it
// wrote, empty if none. Indexes outside the grid panic.
func (m *Model) Paint(row, col int, active colors.RGB) image.Rectangle {
	i := m.index(row, col)

	if m.cells[i] != active {
		m.cells[i] = active
		m.anchor, m.hasAnchor = image.Pt(col, row), true
		return image.Rect(col, row, col+1, row+1)
	}

	if !m.hasAnchor {
		return image.Rectangle{}
	}

	// image.Rect canonicalizes, so the anchor may be on any side
	r := image.Rect(col, row, m.anchor.X, m.anchor.Y)
	r.Max = r.Max.Add(image.Pt(1, 1))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			m.cells[y*m.width+x] = active
		}
	}
	return r
}

// Equal reports whether both grids have the same size and cell colors. The
// anchor is not compared.
func (m *Model) Equal(o *Model) bool {
	if m.width != o.width || m.height != o.height {
		return false
	}
	for i, c := range m.cells {
		if o.cells[i] != c {
			return false
		}
	}
	return true
}

// Clone returns a deep copy, anchor included.
func (m *Model) Clone() *Model {
	c := *m
	c.cells = append([]colors.RGB(nil), m.cells...)
	return &c
}

// Colors returns the number of cells of each color present in the grid.
func (m *Model) Colors() map[colors.RGB]int {
	res := make(map[colors.RGB]int)
	for _, c := range m.cells {
		res[c]++
	}
	return res
}

func (m *Model) index(row, col int) int {
	if row < 0 || row >= m.height || col < 0 || col >= m.width {
		panic("grid: cell out of range")
	}
	return row*m.width + col
}
