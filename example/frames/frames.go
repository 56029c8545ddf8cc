package main

import (
	"bytes"
	"flag"
	"fmt"
	"image/png"
	"log"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
	"github.com/google/uuid"
	"github.com/swdee/go-fadetrack"
	"github.com/swdee/go-fadetrack/postprocess"
	"github.com/swdee/go-fadetrack/postprocess/result"
	"github.com/swdee/go-fadetrack/render"
	"github.com/swdee/go-fadetrack/tracker"
	"gocv.io/x/gocv"
)

var (
	// defaultLabels are used when no labels file is given
	defaultLabels = []string{"cat", "dog", "ell"}
)

// sampleFrame is one frame of hardcoded detector output
type sampleFrame struct {
	class                    int
	left, top, right, bottom int
	prob                     float32
}

// sampleFrames are three frames of detections for a cat, two dogs and an
// ell moving slightly between frames
var sampleFrames = [][]sampleFrame{
	{
		{0, 100, 100, 400, 400, 0.81},
		{1, 500, 500, 800, 800, 0.75},
		{2, 700, 500, 1210, 800, 0.75},
		{1, 1500, 1500, 1800, 1800, 0.70},
	},
	{
		{0, 110, 110, 410, 410, 0.40},
		{1, 510, 510, 810, 810, 0.35},
		{2, 720, 500, 1200, 800, 0.40},
		{1, 1500, 1500, 1800, 1800, 0.65},
	},
	{
		{0, 130, 130, 430, 430, 0.60},
		{1, 510, 530, 830, 830, 0.95},
		{2, 710, 500, 1250, 800, 0.70},
		{1, 1400, 1400, 1700, 1800, 0.74},
	},
}

func main() {
	// disable logging timestamps
	log.SetFlags(0)

	paramsFile := flag.String("params", "", "YAML file of tracker params, defaults are used if not set")
	labelFile := flag.String("labels", "", "Text file containing class labels, one per line")
	chartFile := flag.String("chart", "", "Write an HTML chart of track brightness per frame to this file")
	snapFile := flag.String("snapshot", "", "Write a PNG of the final frame's tracked objects to this file")
	renderFile := flag.String("render", "", "Render the final frame's tracked objects and trails with OpenCV to this image file")
	minBrightness := flag.Float64("min-brightness", 1.0, "Brightness a tracked object needs to be reported")
	minDetections := flag.Int("min-detections", 2, "Detections a tracked object needs to be reported")

	flag.Parse()

	params := tracker.DefaultParams()

	if *paramsFile != "" {
		var err error
		params, err = tracker.LoadParams(*paramsFile)

		if err != nil {
			log.Fatalf("Error loading tracker params: %v", err)
		}
	}

	labels := defaultLabels

	if *labelFile != "" {
		var err error
		labels, err = fadetrack.LoadLabels(*labelFile)

		if err != nil {
			log.Fatalf("Error loading labels: %v", err)
		}
	}

	log.Printf("Tracker params: %+v\n", params)

	objTracker := tracker.NewTracker(params)
	trail := tracker.NewTrail(len(sampleFrames))
	idGen := result.NewIDGenerator()
	history := newBrightnessHistory()

	for frameNum, frame := range sampleFrames {

		results := make([]postprocess.DetectResult, 0, len(frame))

		for _, s := range frame {
			results = append(results, postprocess.NewDetectResult(s.class,
				s.left, s.top, s.right, s.bottom, s.prob, idGen.GetNext()))
		}

		dets, err := tracker.DetectionsFromResults(results, labels)

		if err != nil {
			log.Printf("Frame %d: dropped detections: %v\n", frameNum, err)
		}

		if err := objTracker.AddDetectionList(dets); err != nil {
			log.Printf("Frame %d: rejected detections: %v\n", frameNum, err)
		}

		objs := objTracker.Objects()
		trail.Prune(objs)

		for _, obj := range objs {
			trail.Add(obj)
		}

		history.record(frameNum, objs)

		var buf bytes.Buffer

		if err := objTracker.Dump(&buf); err != nil {
			log.Fatalf("Error dumping tracker: %v", err)
		}

		log.Printf("Frame %d\n%s", frameNum, buf.String())
	}

	tracked := objTracker.GetTrackedObjects(*minBrightness, *minDetections)
	log.Printf("Objects with brightness >= %.2f and detections >= %d:\n",
		*minBrightness, *minDetections)

	for _, obj := range tracked {
		log.Printf("  %s trail=%v\n", obj, trail.GetPoints(obj.ID))
	}

	if *chartFile != "" {
		if err := history.writeChart(*chartFile, len(sampleFrames)); err != nil {
			log.Fatalf("Error writing chart: %v", err)
		}
		log.Printf("Saved chart to %s\n", *chartFile)
	}

	if *snapFile != "" {
		if err := writeSnapshot(*snapFile, objTracker.Objects()); err != nil {
			log.Fatalf("Error writing snapshot: %v", err)
		}
		log.Printf("Saved snapshot to %s\n", *snapFile)
	}

	if *renderFile != "" {
		if err := writeRender(*renderFile, objTracker.Objects(), trail); err != nil {
			log.Fatalf("Error rendering frame: %v", err)
		}
		log.Printf("Saved rendered frame to %s\n", *renderFile)
	}
}

// brightnessHistory records each track's brightness per frame
type brightnessHistory struct {
	// order tracks are first seen in
	order []uuid.UUID
	// names of the chart series per track
	names map[uuid.UUID]string
	// values per track indexed by frame number
	values map[uuid.UUID]map[int]float64
}

func newBrightnessHistory() *brightnessHistory {
	return &brightnessHistory{
		names:  make(map[uuid.UUID]string),
		values: make(map[uuid.UUID]map[int]float64),
	}
}

// record the brightness of every current track for the frame
func (h *brightnessHistory) record(frameNum int, objs []tracker.TrackedObject) {
	for _, obj := range objs {
		if _, ok := h.values[obj.ID]; !ok {
			h.order = append(h.order, obj.ID)
			h.names[obj.ID] = fmt.Sprintf("%s %s", obj.Label, obj.ID.String()[:8])
			h.values[obj.ID] = make(map[int]float64)
		}

		h.values[obj.ID][frameNum] = obj.Brightness
	}
}

// writeChart renders the history as an HTML line chart
func (h *brightnessHistory) writeChart(file string, frames int) error {

	xAxis := make([]string, frames)
	for i := range xAxis {
		xAxis[i] = fmt.Sprintf("%d", i)
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Tracked Object Brightness", Width: "900px", Height: "500px"}),
		charts.WithTitleOpts(opts.Title{Title: "Tracked Object Brightness", Subtitle: fmt.Sprintf("tracks=%d frames=%d", len(h.order), frames)}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "frame"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "brightness"}),
	)

	line.SetXAxis(xAxis)

	for _, id := range h.order {
		data := make([]opts.LineData, frames)

		for i := range data {
			if v, ok := h.values[id][i]; ok {
				data[i] = opts.LineData{Value: v}
			} else {
				// gap in the line where the track did not exist
				data[i] = opts.LineData{Value: "-"}
			}
		}

		line.AddSeries(h.names[id], data)
	}

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating chart file: %w", err)
	}

	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("error rendering chart: %w", err)
	}

	return nil
}

// writeSnapshot saves a PNG of the tracked objects
func writeSnapshot(file string, objs []tracker.TrackedObject) error {

	style := render.DefaultSnapshotStyle()
	style.Scale = 0.5

	img := render.Snapshot(1000, 1000, objs, style)

	f, err := os.Create(file)

	if err != nil {
		return fmt.Errorf("error creating snapshot file: %w", err)
	}

	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("error encoding snapshot: %w", err)
	}

	return nil
}

// writeRender draws the tracked objects and their trails onto a blank frame
// using OpenCV and saves it
func writeRender(file string, objs []tracker.TrackedObject, trail *tracker.Trail) error {

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0), 1900, 1900,
		gocv.MatTypeCV8UC3)
	defer img.Close()

	render.TrackerBoxes(&img, objs, render.DefaultFont().WithScale(1.0), 2)
	render.Trail(&img, objs, trail, render.DefaultTrailStyle())

	if ok := gocv.IMWrite(file, img); !ok {
		return fmt.Errorf("error writing image file %s", file)
	}

	return nil
}
