package tracker

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// validate is shared as the validator caches struct metadata
var validate = validator.New()

// Params defines the thresholds and fade behaviour used by the Tracker
type Params struct {
	// MinConfidence is the confidence below which detections are ignored
	MinConfidence float64 `yaml:"min_confidence" validate:"gte=0"`
	// MinOverlap is the overlap ratio a detection must exceed to be
	// matched to an existing track
	MinOverlap float64 `yaml:"min_overlap" validate:"gte=0,lt=1"`
	// MinBrightness is the brightness at or below which a track is evicted
	MinBrightness float64 `yaml:"min_brightness" validate:"gte=0"`
	// FadeRate is the multiplier applied to brightness each frame
	FadeRate float64 `yaml:"fade_rate" validate:"gt=0,lt=1"`
	// FadeOffset is subtracted from brightness each frame after FadeRate
	FadeOffset float64 `yaml:"fade_offset" validate:"gte=0"`
	// MaxBrightness caps brightness after a match.  Zero leaves brightness
	// unbounded
	MaxBrightness float64 `yaml:"max_brightness" validate:"gte=0"`
}

// DefaultParams returns the default tracker parameters
func DefaultParams() Params {
	return Params{
		MinConfidence: 0.25,
		MinOverlap:    0.25,
		MinBrightness: 0.01,
		FadeRate:      0.75,
		FadeOffset:    0.2,
		MaxBrightness: 0,
	}
}

// Validate checks the parameters are within their allowed ranges
func (p Params) Validate() error {
	if err := validate.Struct(p); err != nil {
		return fmt.Errorf("invalid tracker params: %w", err)
	}

	return nil
}

// LoadParams reads tracker parameters from a YAML file.  Fields not present
// in the file keep their DefaultParams value
func LoadParams(file string) (Params, error) {

	data, err := os.ReadFile(file)

	if err != nil {
		return Params{}, fmt.Errorf("error reading params file: %w", err)
	}

	return ParseParams(data)
}

// ParseParams decodes YAML encoded tracker parameters over the defaults
func ParseParams(data []byte) (Params, error) {

	p := DefaultParams()

	if err := yaml.Unmarshal(data, &p); err != nil {
		return Params{}, fmt.Errorf("error parsing params: %w", err)
	}

	if err := p.Validate(); err != nil {
		return Params{}, err
	}

	return p, nil
}
