// Package postprocess holds the detection records produced by an object
// detector after its raw output has been decoded.
package postprocess

// BoxRect are the pixel dimensions of the bounding box of a detected object
type BoxRect struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// DetectResult defines the attributes of a single object detected
type DetectResult struct {
	// Class is the line number in the labels file the Model was trained on
	// defining the Class of the detected object
	Class int
	// Box are the bounding box dimensions of the object location
	Box BoxRect
	// Probability is the confidence score of the object detected
	Probability float32
	// ID is a unique ID assigned to the detection result
	ID int64
}

// NewDetectResult is a constructor function for the DetectResult struct
func NewDetectResult(class int, left, top, right, bottom int,
	prob float32, id int64) DetectResult {
	return DetectResult{
		Class: class,
		Box: BoxRect{
			Left:   left,
			Right:  right,
			Top:    top,
			Bottom: bottom,
		},
		Probability: prob,
		ID:          id,
	}
}
