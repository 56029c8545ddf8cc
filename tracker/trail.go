package tracker

import (
	"sync"

	"github.com/google/uuid"
)

// Track represents a track history
type Track struct {
	points []Point
}

// Trail is the struct to keep a history of tracked object center points
// used for drawing a trail
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// history of tracked points
	history map[uuid.UUID]*Track
	sync.Mutex
}

// NewTrail returns a new trail history track instance.  Size is the number
// of most recent points to keep and specifies the maximum length of the trail
// to maintain
func NewTrail(size int) *Trail {
	return &Trail{
		size:    size,
		history: make(map[uuid.UUID]*Track),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.history = make(map[uuid.UUID]*Track)
}

// Add the tracked object's current box center to its history
func (t *Trail) Add(obj TrackedObject) {
	t.Lock()
	defer t.Unlock()

	track, exists := t.history[obj.ID]

	if !exists {
		track = &Track{}
		t.history[obj.ID] = track
	}

	track.points = append(track.points, obj.LastBox.Center())

	// check if history is exceeded and drop oldest point
	if len(track.points) > t.size {
		track.points = track.points[1:]
	}
}

// Prune drops the history of any track not in the active list, such as
// those evicted by the Tracker
func (t *Trail) Prune(active []TrackedObject) {
	t.Lock()
	defer t.Unlock()

	keep := make(map[uuid.UUID]struct{}, len(active))

	for _, obj := range active {
		keep[obj.ID] = struct{}{}
	}

	for id := range t.history {
		if _, ok := keep[id]; !ok {
			delete(t.history, id)
		}
	}
}

// Len returns the number of tracks with history
func (t *Trail) Len() int {
	t.Lock()
	defer t.Unlock()

	return len(t.history)
}

// GetPoints gets a copy of the point history for a specific track id
func (t *Trail) GetPoints(id uuid.UUID) []Point {
	t.Lock()
	defer t.Unlock()

	if track, exists := t.history[id]; exists {
		points := make([]Point, len(track.points))
		copy(points, track.points)
		return points
	}

	// no history yet
	return nil
}
