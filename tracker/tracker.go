package tracker

import (
	"errors"
	"fmt"
	"io"
	"math"
)

// Tracker follows objects across frames by greedily matching each frame's
// detections to the tracked objects of previous frames.  Each track has a
// brightness which fades every frame and is topped up by matching
// detections, tracks that fade out are dropped.
//
// A Tracker is not safe for concurrent use, create one instance per video
// stream or serialise calls to AddDetectionList.
type Tracker struct {
	// params are the thresholds used for matching and fading
	params Params
	// frameID is the number of frames processed
	frameID int
	// objects are the current tracks in order of creation
	objects []*TrackedObject
}

// NewTracker returns a new Tracker using the given parameters
func NewTracker(params Params) *Tracker {
	return &Tracker{
		params:  params,
		objects: make([]*TrackedObject, 0),
	}
}

// Params returns the parameters the tracker was created with
func (t *Tracker) Params() Params {
	return t.params
}

// FrameID returns the number of frames processed since creation or Reset
func (t *Tracker) FrameID() int {
	return t.frameID
}

// Count returns the number of objects currently being tracked
func (t *Tracker) Count() int {
	return len(t.objects)
}

// Clear removes all tracked objects, for example when the video feed is cut
// or moved to a new location so older objects are no longer valid
func (t *Tracker) Clear() {
	t.objects = make([]*TrackedObject, 0)
}

// Reset clears all tracked objects and the frame counter
func (t *Tracker) Reset() {
	t.Clear()
	t.frameID = 0
}

// AddDetectionList processes all the objects detected in one frame.  Every
// track is faded, dark tracks are evicted and then each detection is either
// applied to its best matching track or starts a new one.
//
// Detections with an invalid box are left out of the frame and reported in
// the returned error, the remaining detections are still applied.
func (t *Tracker) AddDetectionList(dets []Detection) error {

	// validate boxes before any state is changed
	var errs []error
	valid := make([]bool, len(dets))

	for i, det := range dets {
		if err := det.Box.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("detection %d (%s): %w", i, det.Label, err))
			continue
		}
		valid[i] = true
	}

	t.frameID++

	t.fade()
	t.evict()

	for i, det := range dets {
		if !valid[i] || det.Confidence < t.params.MinConfidence {
			continue
		}

		t.applyDetection(det)
	}

	return errors.Join(errs...)
}

// fade reduces the brightness of every tracked object
func (t *Tracker) fade() {
	for _, obj := range t.objects {
		obj.Brightness = math.Max(0, t.params.FadeRate*obj.Brightness-t.params.FadeOffset)
	}
}

// evict drops tracked objects that are no longer bright enough
func (t *Tracker) evict() {

	kept := t.objects[:0]

	for _, obj := range t.objects {
		if obj.Brightness > t.params.MinBrightness {
			kept = append(kept, obj)
		}
	}

	// release references held past the new length
	for i := len(kept); i < len(t.objects); i++ {
		t.objects[i] = nil
	}

	t.objects = kept
}

// applyDetection updates the best matching track with the detection or
// creates a new track when there is no match
func (t *Tracker) applyDetection(det Detection) {

	bestScore := -1.0
	bestIdx := -1

	for i, obj := range t.objects {

		// labels must match exactly
		if obj.Label != det.Label {
			continue
		}

		overlap := obj.LastBox.Overlap(det.Box)

		if overlap <= t.params.MinOverlap {
			continue
		}

		score := det.Confidence * overlap

		if score > bestScore {
			bestScore = score
			bestIdx = i
		}
	}

	if bestIdx >= 0 && bestScore > 0 {
		obj := t.objects[bestIdx]
		obj.Brightness += bestScore

		if t.params.MaxBrightness > 0 && obj.Brightness > t.params.MaxBrightness {
			obj.Brightness = t.params.MaxBrightness
		}

		obj.LastBox = det.Box
		obj.NumDetections++
		obj.DetectionID = det.ID
		obj.LastFrame = t.frameID
		return
	}

	t.objects = append(t.objects, newTrackedObject(det, t.frameID))
}

// GetTrackedObjects returns copies of the tracked objects that are at least
// minBrightness bright and have been detected at least minDetections times
func (t *Tracker) GetTrackedObjects(minBrightness float64, minDetections int) []TrackedObject {

	res := make([]TrackedObject, 0, len(t.objects))

	for _, obj := range t.objects {
		if obj.Brightness >= minBrightness && obj.NumDetections >= minDetections {
			res = append(res, *obj)
		}
	}

	return res
}

// Objects returns copies of all tracked objects
func (t *Tracker) Objects() []TrackedObject {

	res := make([]TrackedObject, len(t.objects))

	for i, obj := range t.objects {
		res[i] = *obj
	}

	return res
}

// Dump writes every tracked object followed by a summary line to w.  It is
// intended for debugging
func (t *Tracker) Dump(w io.Writer) error {

	objs := t.Objects()

	for _, obj := range objs {
		if _, err := fmt.Fprintln(w, obj.String()); err != nil {
			return fmt.Errorf("error writing tracked object: %w", err)
		}
	}

	if _, err := fmt.Fprintf(w, "frame=%d %s\n", t.frameID, Summarize(objs)); err != nil {
		return fmt.Errorf("error writing summary: %w", err)
	}

	return nil
}
