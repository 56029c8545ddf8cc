package tracker

import (
	"fmt"

	"github.com/google/uuid"
)

// Detection is a single object reported by the object detector for one
// frame.  The tracker never modifies a Detection
type Detection struct {
	// Label is the class name of the object detected
	Label string
	// Confidence is the detector's score, conventionally in the range [0,1]
	Confidence float64
	// Box is the bounding box of the object detected
	Box Box
	// ID is an optional detector assigned ID which can be used to match the
	// input detection and the tracked object it was applied to
	ID int64
}

// NewDetection is a constructor function for the Detection struct
func NewDetection(label string, confidence float64, box Box) Detection {
	return Detection{
		Label:      label,
		Confidence: confidence,
		Box:        box,
	}
}

// TrackedObject is an object identity persisted across frames by matching
// detections
type TrackedObject struct {
	// ID is a unique ID given to the track when it was created
	ID uuid.UUID
	// Label is the class label shared by all detections applied to the track
	Label string
	// Brightness is the decaying liveness score of the track
	Brightness float64
	// LastBox is the bounding box of the most recently matched detection
	LastBox Box
	// NumDetections is the number of detections applied to the track
	NumDetections int
	// DetectionID is the ID of the most recently matched detection
	DetectionID int64
	// StartFrame is the tracker frame number the track was created on
	StartFrame int
	// LastFrame is the tracker frame number of the last matched detection
	LastFrame int
}

// newTrackedObject starts a track from an unmatched detection
func newTrackedObject(det Detection, frameID int) *TrackedObject {
	return &TrackedObject{
		ID:            uuid.New(),
		Label:         det.Label,
		Brightness:    det.Confidence,
		LastBox:       det.Box,
		NumDetections: 1,
		DetectionID:   det.ID,
		StartFrame:    frameID,
		LastFrame:     frameID,
	}
}

// String returns a single line description of the track for debugging
func (o TrackedObject) String() string {
	return fmt.Sprintf("TrackedObject(id=%s, label=%q, brightness=%.4f, last_box=%s, num_detections=%d, frames=%d-%d)",
		o.ID, o.Label, o.Brightness, o.LastBox, o.NumDetections,
		o.StartFrame, o.LastFrame)
}
