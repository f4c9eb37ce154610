package bitmap

import (
	"image"
	"log/slog"
	"math"

	"golang.org/x/image/draw"
)

// fit downscales img with nearest-neighbour sampling so it fits inside
// maxWidth × maxHeight, keeping its aspect ratio. Images that already fit are
// returned as is.
func fit(img image.Image, maxWidth, maxHeight int) image.Image {
	srcBounds := img.Bounds()
	srcWidth := float64(srcBounds.Dx())
	srcHeight := float64(srcBounds.Dy())

	if (srcBounds.Dx() <= maxWidth) && (srcBounds.Dy() <= maxHeight) {
		return img
	}

	scale := math.Min(float64(maxWidth)/srcWidth, float64(maxHeight)/srcHeight)
	destWidth := max(1, int(math.Round(srcWidth*scale)))
	destHeight := max(1, int(math.Round(srcHeight*scale)))

	slog.Debug("fitting image", "from_width", srcBounds.Dx(), "from_height", srcBounds.Dy(),
		"width", destWidth, "height", destHeight)
	dest := image.NewRGBA(image.Rect(0, 0, destWidth, destHeight))
	draw.NearestNeighbor.Scale(dest, dest.Bounds(), img, srcBounds, draw.Src, nil)

	return dest
}
