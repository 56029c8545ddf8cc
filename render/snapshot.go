package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/swdee/go-fadetrack/tracker"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// SnapshotStyle defines how Snapshot draws tracked objects
type SnapshotStyle struct {
	// Background fills the image before any boxes are drawn
	Background color.RGBA
	// Scale multiplies box coordinates to give pixel coordinates
	Scale float64
	// FullBrightness is the brightness at which a box is drawn fully opaque,
	// dimmer tracks are drawn proportionally fainter
	FullBrightness float64
	// LineThickness of the box outline in pixels
	LineThickness int
	// Labels enables drawing the label text above each box
	Labels bool
}

// DefaultSnapshotStyle returns default snapshot style settings
func DefaultSnapshotStyle() SnapshotStyle {
	return SnapshotStyle{
		Background:     Black,
		Scale:          1.0,
		FullBrightness: 1.0,
		LineThickness:  2,
		Labels:         true,
	}
}

// Snapshot draws the tracked objects onto a new image without requiring
// OpenCV, useful for writing debug images of tracker state
func Snapshot(width, height int, objs []tracker.TrackedObject,
	style SnapshotStyle) *image.RGBA {

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.Draw(img, img.Bounds(), image.NewUniform(style.Background),
		image.Point{}, draw.Src)

	thick := style.LineThickness
	if thick < 1 {
		thick = 1
	}

	for _, obj := range objs {

		clr := Dim(TrackColor(obj.ID), obj.Brightness, style.FullBrightness)
		src := image.NewUniform(clr)

		r := image.Rect(
			int(math.Round(obj.LastBox.XMin*style.Scale)),
			int(math.Round(obj.LastBox.YMin*style.Scale)),
			int(math.Round(obj.LastBox.XMax*style.Scale)),
			int(math.Round(obj.LastBox.YMax*style.Scale)),
		)

		// outline drawn as four filled strips
		edges := []image.Rectangle{
			image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+thick),
			image.Rect(r.Min.X, r.Max.Y-thick, r.Max.X, r.Max.Y),
			image.Rect(r.Min.X, r.Min.Y, r.Min.X+thick, r.Max.Y),
			image.Rect(r.Max.X-thick, r.Min.Y, r.Max.X, r.Max.Y),
		}

		for _, e := range edges {
			draw.Draw(img, e.Intersect(img.Bounds()), src, image.Point{}, draw.Over)
		}

		if style.Labels {
			drawText(img, labelText(obj), r.Min.X+thick, r.Min.Y-thick, clr)
		}
	}

	return img
}

// drawText writes text with its baseline at x, y
func drawText(img draw.Image, text string, x, y int, clr color.Color) {

	face := basicfont.Face7x13

	// keep text inside the image when the box is at the top edge
	if y-face.Ascent < 0 {
		y = face.Ascent
	}

	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot:  fixed.P(x, y),
	}

	d.DrawString(text)
}
