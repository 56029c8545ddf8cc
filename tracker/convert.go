package tracker

import (
	"errors"
	"fmt"

	"github.com/swdee/go-fadetrack/postprocess"
)

// DetectionsFromResults takes postprocess object detection results and
// converts them into tracker detections, using labels to name each result's
// class.  Results with an unknown class or a degenerate box are skipped and
// reported in the returned error
func DetectionsFromResults(results []postprocess.DetectResult,
	labels []string) ([]Detection, error) {

	var dets []Detection
	var errs []error

	for i, res := range results {

		if res.Class < 0 || res.Class >= len(labels) {
			errs = append(errs, fmt.Errorf("result %d: class %d has no label", i, res.Class))
			continue
		}

		box, err := NewBox(float64(res.Box.Left), float64(res.Box.Right),
			float64(res.Box.Top), float64(res.Box.Bottom))

		if err != nil {
			errs = append(errs, fmt.Errorf("result %d: %w", i, err))
			continue
		}

		dets = append(dets, Detection{
			Label:      labels[res.Class],
			Confidence: float64(res.Probability),
			Box:        box,
			ID:         res.ID,
		})
	}

	return dets, errors.Join(errs...)
}
