package render

import (
	"image"
	"image/color"

	"github.com/swdee/go-fadetrack/tracker"
	"gocv.io/x/gocv"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	// LineSame defines if the color of the trail line should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at LineColor
	LineSame      bool
	LineColor     color.RGBA
	LineThickness int
	// CircleSame defines if the color of the midpoint circle should be the
	// same color as that of the bounding box.  If set to false then use
	// the color specified at CircleColor
	CircleSame   bool
	CircleColor  color.RGBA
	CircleRadius int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineSame:      false,
		LineColor:     Yellow,
		LineThickness: 1,
		CircleSame:    true,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// Trail draws the tracked objects' trail lines on the source image
func Trail(img *gocv.Mat, objs []tracker.TrackedObject,
	trail *tracker.Trail, style TrailStyle) {

	for _, obj := range objs {

		objClr := TrackColor(obj.ID)

		lineClr := objClr
		circleClr := objClr

		if !style.LineSame {
			lineClr = style.LineColor
		}

		if !style.CircleSame {
			circleClr = style.CircleColor
		}

		points := trail.GetPoints(obj.ID)

		if len(points) < 2 {
			continue
		}

		for i := 1; i < len(points); i++ {
			gocv.Line(img, toPt(points[i-1]), toPt(points[i]),
				lineClr, style.LineThickness)
		}

		// mark the current center point
		gocv.Circle(img, toPt(points[len(points)-1]), style.CircleRadius,
			circleClr, -1)
	}
}

// toPt converts a tracker point to integer image coordinates
func toPt(p tracker.Point) image.Point {
	return image.Pt(int(p.X), int(p.Y))
}
