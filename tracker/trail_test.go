package tracker

import (
	"testing"

	"github.com/google/uuid"
)

func TestTrailAdd(t *testing.T) {

	trail := NewTrail(3)
	obj := TrackedObject{ID: uuid.New(), Label: "cat"}

	boxes := []Box{
		{XMin: 0, XMax: 2, YMin: 0, YMax: 2},
		{XMin: 1, XMax: 3, YMin: 1, YMax: 3},
		{XMin: 2, XMax: 4, YMin: 2, YMax: 4},
		{XMin: 3, XMax: 5, YMin: 3, YMax: 5},
	}

	for _, b := range boxes {
		obj.LastBox = b
		trail.Add(obj)
	}

	points := trail.GetPoints(obj.ID)
	expected := []Point{{2, 2}, {3, 3}, {4, 4}}

	if len(points) != len(expected) {
		t.Fatalf("expected %d points, got %d", len(expected), len(points))
	}

	for i := range expected {
		if points[i] != expected[i] {
			t.Errorf("point %d: expected %v, got %v", i, expected[i], points[i])
		}
	}

	if trail.GetPoints(uuid.New()) != nil {
		t.Errorf("expected no history for unknown track")
	}
}

func TestTrailPrune(t *testing.T) {

	trail := NewTrail(10)
	box := Box{XMin: 0, XMax: 1, YMin: 0, YMax: 1}

	a := TrackedObject{ID: uuid.New(), LastBox: box}
	b := TrackedObject{ID: uuid.New(), LastBox: box}

	trail.Add(a)
	trail.Add(b)

	if trail.Len() != 2 {
		t.Fatalf("expected 2 tracks, got %d", trail.Len())
	}

	trail.Prune([]TrackedObject{b})

	if trail.Len() != 1 || trail.GetPoints(a.ID) != nil || trail.GetPoints(b.ID) == nil {
		t.Errorf("expected only track b to remain")
	}

	trail.Reset()

	if trail.Len() != 0 {
		t.Errorf("expected empty trail after reset, got %d", trail.Len())
	}
}
