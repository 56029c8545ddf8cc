package render

import (
	"fmt"
	"image"
	"image/color"

	"github.com/swdee/go-fadetrack/tracker"
	"gocv.io/x/gocv"
)

// boxLabel holds the precalculated rendering details of a box's text label
type boxLabel struct {
	rect    image.Rectangle
	clr     color.RGBA
	text    string
	textPos image.Point
}

// TrackerBoxes renders the bounding boxes of tracked objects onto the image
// with a label showing the class, brightness and number of detections
func TrackerBoxes(img *gocv.Mat, objs []tracker.TrackedObject, font Font,
	lineThickness int) {

	// keep a record of all box labels for later rendering
	boxLabels := make([]boxLabel, 0, len(objs))

	for _, obj := range objs {

		boxLeft := int(obj.LastBox.XMin)
		boxTop := int(obj.LastBox.YMin)
		boxRight := int(obj.LastBox.XMax)
		boxBottom := int(obj.LastBox.YMax)

		useClr := TrackColor(obj.ID)

		// draw rectangle around tracked object
		rect := image.Rect(boxLeft, boxTop, boxRight, boxBottom)
		gocv.Rectangle(img, rect, useClr, lineThickness)

		text := labelText(obj)
		textSize := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

		// calculate the alignment of text label
		var centerX int

		switch font.Alignment {
		case Center:
			centerX = (boxLeft + boxRight) / 2

		case Right:
			centerX = boxRight - (textSize.X / 2) - font.RightPad + (lineThickness / 2)

		case Left:
			fallthrough
		default:
			centerX = boxLeft + (textSize.X / 2) + font.LeftPad - (lineThickness / 2)
		}

		boxLabels = append(boxLabels, boxLabel{
			rect: image.Rect(centerX-textSize.X/2-font.LeftPad,
				boxTop-textSize.Y-font.TopPad-font.BottomPad,
				centerX+textSize.X/2+font.RightPad, boxTop),
			clr:     useClr,
			text:    text,
			textPos: image.Pt(centerX-textSize.X/2, boxTop-font.BottomPad),
		})
	}

	// draw labels last so they are the top most layer and are not
	// overlapped by neighbouring boxes
	for _, box := range boxLabels {
		gocv.Rectangle(img, box.rect, box.clr, -1)

		gocv.PutTextWithParams(img, box.text, box.textPos,
			font.Face, font.Scale, font.Color, font.Thickness,
			font.LineType, false)
	}
}

// labelText is the text drawn above a tracked object's box
func labelText(obj tracker.TrackedObject) string {
	return fmt.Sprintf("%s %.2f x%d", obj.Label, obj.Brightness, obj.NumDetections)
}
