package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"pixgrid/colors"
	"pixgrid/grid"
	"pixgrid/palette"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
)

func paintedGrid(t *testing.T, width, height int) *grid.Model {
	t.Helper()
	g, ok := grid.New(width, height)
	require.True(t, ok)
	for row := range height {
		for col := range width {
			g.Paint(row, col, colors.RGB{R: uint8(row * 8), G: uint8(col * 8), B: uint8(row ^ col)})
		}
	}
	g.Paint(0, 0, colors.Violet)
	return g
}

func encodeImage(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, bmp.Encode(&buf, img))
	return buf.Bytes()
}

func TestRoundTrip(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {10, 10}, {7, 4}, {30, 30}, {3, 29}} {
		g := paintedGrid(t, size[0], size[1])

		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, g))

		back, err := Decode(&buf, Options{})
		require.NoError(t, err)
		assert.True(t, back.Equal(g), "%v", size)

		_, anchored := back.Anchor()
		assert.False(t, anchored)
	}
}

func TestEncodeIs24Bit(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, paintedGrid(t, 3, 2)))

	data := buf.Bytes()
	require.Greater(t, len(data), 30)
	assert.Equal(t, "BM", string(data[:2]))
	assert.Equal(t, byte(24), data[28], "bits per pixel")

	cfg, err := bmp.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err)
	assert.Equal(t, 3, cfg.Width)
	assert.Equal(t, 2, cfg.Height)
}

func TestPixelMapping(t *testing.T) {
	g, _ := grid.New(3, 2)
	g.Paint(1, 2, colors.Red)

	img := ToImage(g)
	assert.Equal(t, color.RGBA{0xff, 0, 0, 0xff}, img.RGBAAt(2, 1))
	assert.Equal(t, color.RGBA{0, 0, 0, 0xff}, img.RGBAAt(1, 1))
	assert.True(t, img.Opaque())
}

func TestDecodeSizeFromImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 7, 4))
	img.Set(6, 3, color.RGBA{0x12, 0x34, 0x56, 0xff})

	g, err := Decode(bytes.NewReader(encodeImage(t, img)), Options{})
	require.NoError(t, err)
	assert.Equal(t, 7, g.Width())
	assert.Equal(t, 4, g.Height())
	assert.Equal(t, colors.RGB{R: 0x12, G: 0x34, B: 0x56}, g.At(3, 6))
}

func TestDecodePolicies(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 60, 15))
	for x := 30; x < 60; x++ {
		for y := range 15 {
			img.Set(x, y, color.RGBA{0xff, 0xff, 0xff, 0xff})
		}
	}
	data := encodeImage(t, img)

	_, err := Decode(bytes.NewReader(data), Options{})
	assert.ErrorIs(t, err, ErrOutOfRange)

	g, err := Decode(bytes.NewReader(data), Options{Policy: PolicyFit})
	require.NoError(t, err)
	assert.Equal(t, 30, g.Width())
	assert.Equal(t, 8, g.Height())
	assert.Equal(t, colors.Black, g.At(0, 0))
	assert.Equal(t, colors.White, g.At(7, 29))

	g, err = Decode(bytes.NewReader(data), Options{Policy: PolicyAllow})
	require.NoError(t, err)
	assert.Equal(t, 60, g.Width())
	assert.Equal(t, 15, g.Height())
}

func TestDecodeAllowLimit(t *testing.T) {
	_, err := FromImage(image.NewRGBA(image.Rect(0, 0, MaxImportSide+1, 1)), Options{Policy: PolicyAllow})
	assert.ErrorIs(t, err, ErrOutOfRange)
}

func TestDecodeSnap(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{0xf0, 0x10, 0x08, 0xff})
	img.Set(1, 0, color.RGBA{0xfa, 0xfa, 0x10, 0xff})

	g, err := Decode(bytes.NewReader(encodeImage(t, img)), Options{Snap: palette.Default})
	require.NoError(t, err)
	assert.Equal(t, colors.Red, g.At(0, 0))
	assert.Equal(t, colors.Yellow, g.At(0, 1))
}

func TestDecodeGarbage(t *testing.T) {
	_, err := Decode(bytes.NewReader([]byte("not a bitmap")), Options{})
	assert.Error(t, err)
}

func TestParsePolicy(t *testing.T) {
	for _, p := range []Policy{PolicyReject, PolicyFit, PolicyAllow} {
		got, err := ParsePolicy(p.String())
		require.NoError(t, err)
		assert.Equal(t, p, got)
	}
	_, err := ParsePolicy("clamp")
	assert.Error(t, err)
}

func TestSaveLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "art.bmp")
	g := paintedGrid(t, 5, 6)

	require.NoError(t, Save(path, g))
	back, err := Load(path, Options{})
	require.NoError(t, err)
	assert.True(t, back.Equal(g))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary file left behind")
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "art.bmp")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o644))

	g := paintedGrid(t, 2, 2)
	require.NoError(t, Save(path, g))

	back, err := Load(path, Options{})
	require.NoError(t, err)
	assert.True(t, back.Equal(g))
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.bmp"), Options{})
	assert.Error(t, err)

	_, err = Load(dir, Options{})
	assert.ErrorContains(t, err, "non-regular")

	err = Save(filepath.Join(dir, "no", "such", "dir.bmp"), paintedGrid(t, 1, 1))
	assert.Error(t, err)
}
