package grid

import (
	"image"
	"testing"

	"pixgrid/colors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newGrid(t *testing.T, width, height int) *Model {
	t.Helper()
	m, ok := New(width, height)
	require.True(t, ok)
	return m
}

func TestResetAllSizes(t *testing.T) {
	for w := MinSide; w <= MaxSide; w++ {
		for h := MinSide; h <= MaxSide; h++ {
			m, ok := New(w, h)
			require.True(t, ok)
			require.Equal(t, w, m.Width())
			require.Equal(t, h, m.Height())
			require.Equal(t, map[colors.RGB]int{DefaultColor: w * h}, m.Colors())

			_, anchored := m.Anchor()
			require.False(t, anchored)
		}
	}
}

func TestResetRejectsInvalidSize(t *testing.T) {
	m := newGrid(t, 4, 3)
	m.Paint(1, 2, colors.Red)
	before := m.Clone()

	for _, size := range [][2]int{{0, 5}, {5, 0}, {-1, 5}, {31, 5}, {5, 31}, {100, 100}, {0, 0}} {
		assert.False(t, m.Reset(size[0], size[1]), "%v", size)
		assert.True(t, m.Equal(before), "%v", size)

		anchor, ok := m.Anchor()
		assert.True(t, ok)
		assert.Equal(t, image.Pt(2, 1), anchor)
	}

	_, ok := New(31, 1)
	assert.False(t, ok)
}

func TestResetDiscardsContentAndAnchor(t *testing.T) {
	m := newGrid(t, 5, 5)
	m.Paint(0, 0, colors.Red)

	require.True(t, m.Reset(2, 3))
	assert.Equal(t, 2, m.Width())
	assert.Equal(t, 3, m.Height())
	assert.Equal(t, DefaultColor, m.At(0, 0))

	_, ok := m.Anchor()
	assert.False(t, ok)
}

func TestPaintSameColorWithoutAnchorIsNoop(t *testing.T) {
	m := newGrid(t, 3, 3)
	before := m.Clone()

	r := m.Paint(1, 1, DefaultColor)
	assert.True(t, r.Empty())
	assert.True(t, m.Equal(before))

	_, ok := m.Anchor()
	assert.False(t, ok)
}

func TestPaintSingleCellMovesAnchor(t *testing.T) {
	m := newGrid(t, 5, 5)

	r := m.Paint(1, 3, colors.Blue)
	assert.Equal(t, image.Rect(3, 1, 4, 2), r)
	assert.Equal(t, colors.Blue, m.At(1, 3))
	assert.Equal(t, 24, m.Colors()[DefaultColor])

	anchor, ok := m.Anchor()
	require.True(t, ok)
	assert.Equal(t, image.Pt(3, 1), anchor)
}

func TestPaintRectangularFill(t *testing.T) {
	m := newGrid(t, 5, 5)

	m.Paint(0, 0, colors.Red)
	m.Paint(2, 2, colors.Red)
	r := m.Paint(0, 0, colors.Red)
	assert.Equal(t, image.Rect(0, 0, 3, 3), r)

	for row := range 5 {
		for col := range 5 {
			want := colors.Black
			if row <= 2 && col <= 2 {
				want = colors.Red
			}
			assert.Equal(t, want, m.At(row, col), "cell %d,%d", row, col)
		}
	}

	anchor, ok := m.Anchor()
	require.True(t, ok)
	assert.Equal(t, image.Pt(2, 2), anchor, "fill keeps the anchor")
}

func TestPaintSameColorAsCellButNotAnchor(t *testing.T) {
	m := newGrid(t, 5, 5)

	m.Paint(1, 1, colors.Red)
	// (3,3) already holds black, so painting black there fills the
	// rectangle up to the red anchor at (1,1).
	r := m.Paint(3, 3, colors.Black)
	assert.Equal(t, image.Rect(1, 1, 4, 4), r)
	assert.Equal(t, colors.Black, m.At(1, 1))
}

func TestPaintFillAnyCorner(t *testing.T) {
	m := newGrid(t, 6, 4)

	m.Paint(0, 5, colors.Green)
	m.Paint(3, 1, colors.Green)
	r := m.Paint(0, 5, colors.Green)
	assert.Equal(t, image.Rect(1, 0, 6, 4), r)
	assert.Equal(t, 20, m.Colors()[colors.Green])
	assert.Equal(t, colors.Black, m.At(0, 0))
}

func TestPaintOutOfRangePanics(t *testing.T) {
	m := newGrid(t, 2, 2)
	assert.Panics(t, func() { m.Paint(2, 0, colors.Red) })
	assert.Panics(t, func() { m.Paint(0, -1, colors.Red) })
}

func TestFill(t *testing.T) {
	m := Fill(40, 2, func(row, col int) colors.RGB {
		return colors.RGB{R: uint8(row), G: uint8(col)}
	})
	assert.Equal(t, 40, m.Width())
	assert.Equal(t, colors.RGB{R: 1, G: 39}, m.At(1, 39))

	_, ok := m.Anchor()
	assert.False(t, ok)

	assert.Panics(t, func() { Fill(0, 1, nil) })
}

func TestCloneIsIndependent(t *testing.T) {
	m := newGrid(t, 2, 2)
	c := m.Clone()
	m.Paint(0, 0, colors.White)

	assert.False(t, m.Equal(c))
	assert.Equal(t, colors.Black, c.At(0, 0))
}
