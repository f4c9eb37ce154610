package colors

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want RGB
	}{
		{"#000", Black},
		{"#f80", RGB{0xff, 0x88, 0x00}},
		{"#ff8000", RGB{0xff, 0x80, 0x00}},
		{"#FF8000", RGB{0xff, 0x80, 0x00}},
		{"#ffff80800000", RGB{0xff, 0x80, 0x00}},
		{"#12ab34cd56ef", RGB{0x12, 0x34, 0x56}},
		{"red", Red},
		{"Indigo", Indigo},
		{"dark green", RGB{0x00, 0x64, 0x00}},
		{"  violet ", Violet},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLookupSVGNames(t *testing.T) {
	tests := map[string]RGB{
		"lime":      {R: 0x00, G: 0xff, B: 0x00},
		"gray":      {R: 0x80, G: 0x80, B: 0x80},
		"purple":    {R: 0x80, G: 0x00, B: 0x80},
		"maroon":    {R: 0x80, G: 0x00, B: 0x00},
		"limegreen": {R: 0x32, G: 0xcd, B: 0x32},
		"Sky Blue":  {R: 0x87, G: 0xce, B: 0xeb},
	}
	for name, want := range tests {
		got, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, want, got, name)
	}

	_, ok := Lookup("chartreuse-ish")
	assert.False(t, ok)
}

func TestParseInvalid(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#12345", "#zzzzzz", "chartreuse-ish", "#1234567",
		"# 12345", "#12 345", "#+12345", "#-1-1-1", "#0x1234", "#fff 00"} {
		_, err := Parse(in)
		assert.Error(t, err, in)
	}
}

func TestStringParseAgree(t *testing.T) {
	c := RGB{0x4b, 0x00, 0x82}
	assert.Equal(t, "#4b0082", c.String())

	back, err := Parse(c.String())
	require.NoError(t, err)
	assert.Equal(t, c, back)
}

func TestModelDropsAlpha(t *testing.T) {
	assert.Equal(t, RGB{0x10, 0x20, 0x30}, From(color.NRGBA{0x10, 0x20, 0x30, 0x40}))
	assert.Equal(t, Red, From(color.RGBA{0xff, 0, 0, 0xff}))
	assert.Equal(t, Orange, From(Orange))

	r, g, b, a := Violet.RGBA()
	assert.Equal(t, uint32(0xeeee), r)
	assert.Equal(t, uint32(0x8282), g)
	assert.Equal(t, uint32(0xeeee), b)
	assert.Equal(t, uint32(0xffff), a)
}

func TestName(t *testing.T) {
	name, ok := Name(Green)
	assert.True(t, ok)
	assert.Equal(t, "green", name)

	name, ok = Name(RGB{0x80, 0x80, 0x80})
	assert.True(t, ok)
	assert.Equal(t, "gray", name)

	name, ok = Name(RGB{0x00, 0xff, 0xff})
	assert.True(t, ok)
	assert.Equal(t, "cyan", name)

	_, ok = Name(RGB{1, 2, 3})
	assert.False(t, ok)
}
