package tracker

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stats summarises the brightness and detection counts of a set of tracked
// objects
type Stats struct {
	Count            int
	MeanBrightness   float64
	StdDevBrightness float64
	MaxBrightness    float64
	MeanDetections   float64
}

// Summarize computes Stats over the given tracked objects
func Summarize(objs []TrackedObject) Stats {

	if len(objs) == 0 {
		return Stats{}
	}

	brightness := make([]float64, len(objs))
	detections := make([]float64, len(objs))

	for i, obj := range objs {
		brightness[i] = obj.Brightness
		detections[i] = float64(obj.NumDetections)
	}

	mean, std := stat.PopMeanStdDev(brightness, nil)

	return Stats{
		Count:            len(objs),
		MeanBrightness:   mean,
		StdDevBrightness: std,
		MaxBrightness:    floats.Max(brightness),
		MeanDetections:   stat.Mean(detections, nil),
	}
}

// String returns the stats as key=value pairs
func (s Stats) String() string {
	return fmt.Sprintf("count=%d brightness_mean=%.4f brightness_std=%.4f brightness_max=%.4f detections_mean=%.2f",
		s.Count, s.MeanBrightness, s.StdDevBrightness, s.MaxBrightness,
		s.MeanDetections)
}
