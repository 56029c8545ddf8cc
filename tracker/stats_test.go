package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarize(t *testing.T) {
	assert.Equal(t, Stats{}, Summarize(nil))

	objs := []TrackedObject{
		{Label: "cat", Brightness: 1.0, NumDetections: 1},
		{Label: "dog", Brightness: 3.0, NumDetections: 4},
	}

	s := Summarize(objs)
	assert.Equal(t, 2, s.Count)
	assert.InDelta(t, 2.0, s.MeanBrightness, 1e-12)
	assert.InDelta(t, 1.0, s.StdDevBrightness, 1e-12)
	assert.Equal(t, 3.0, s.MaxBrightness)
	assert.InDelta(t, 2.5, s.MeanDetections, 1e-12)

	one := Summarize(objs[:1])
	assert.Equal(t, 0.0, one.StdDevBrightness)
	assert.Equal(t, "count=1 brightness_mean=1.0000 brightness_std=0.0000 brightness_max=1.0000 detections_mean=1.00", one.String())
}
