// Package config holds the tunable parameters of the target locator and
// loads them from YAML.
//
// Every field has a documented default; a file only needs to name the values
// it changes. The analysis core never reads this package directly. Callers
// build an Analyzer from a Config and hand frames to it.
package config

import (
	"os"
	"time"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/ironsheep/target-follow/internal/imaging"
	"github.com/ironsheep/target-follow/internal/target"
)

// Classifier names accepted by Config.Classifier.
const (
	ClassifierHue = "hue"
	ClassifierRGB = "rgb"
)

// Config contains every tunable of the pipeline and of the caller loops.
type Config struct {
	// Classifier selects the membership test: "hue" or "rgb".
	Classifier string `yaml:"classifier" json:"classifier"`

	// HueMin and HueMax bound the half-open hue window in degrees.
	HueMin float64 `yaml:"hue_min" json:"hue_min"`
	HueMax float64 `yaml:"hue_max" json:"hue_max"`

	// RGBMid and RGBTolerance configure the "rgb" classifier.
	RGBMid       [3]int `yaml:"rgb_mid" json:"rgb_mid"`
	RGBTolerance [3]int `yaml:"rgb_tolerance" json:"rgb_tolerance"`

	// FilterPasses is the number of erosion passes over the membership grid.
	FilterPasses int `yaml:"filter_passes" json:"filter_passes"`

	// TrimOffset is how many low coordinates the size estimate skips per axis.
	TrimOffset int `yaml:"trim_offset" json:"trim_offset"`

	// CentreDeviation is the centre zone half-size as a fraction of the frame.
	CentreDeviation float64 `yaml:"centre_deviation" json:"centre_deviation"`

	// WorkingWidth and WorkingHeight, when both positive, bound the frame
	// size: larger frames are scaled down to fit before analysis.
	WorkingWidth  int `yaml:"working_width" json:"working_width"`
	WorkingHeight int `yaml:"working_height" json:"working_height"`

	// WatchInterval is the polling period of the watch loop.
	WatchInterval time.Duration `yaml:"watch_interval" json:"watch_interval"`

	// Workers bounds how many frames a batch analyses at once.
	Workers int `yaml:"workers" json:"workers"`
}

// Default returns the documented defaults.
func Default() *Config {
	return &Config{
		Classifier:      ClassifierHue,
		HueMin:          target.DefaultHueMin,
		HueMax:          target.DefaultHueMax,
		RGBMid:          [3]int{34, 79, 31},
		RGBTolerance:    [3]int{10, 5, 10},
		FilterPasses:    target.DefaultFilterPasses,
		TrimOffset:      target.DefaultTrimOffset,
		CentreDeviation: target.DefaultDeviation,
		WatchInterval:   500 * time.Millisecond,
		Workers:         4,
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrapf(err, "parsing config %s", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Write saves cfg as YAML.
func Write(cfg *Config, path string) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate rejects values the pipeline cannot run with.
func (c *Config) Validate() error {
	switch c.Classifier {
	case ClassifierHue:
		if c.HueMin < 0 || c.HueMax > 360 {
			return errors.Errorf("hue window [%g, %g) outside [0, 360]", c.HueMin, c.HueMax)
		}
		if c.HueMin >= c.HueMax {
			return errors.Errorf("hue_min %g must be below hue_max %g", c.HueMin, c.HueMax)
		}
	case ClassifierRGB:
		for i := range c.RGBMid {
			if c.RGBMid[i] < 0 || c.RGBMid[i] > 255 || c.RGBTolerance[i] < 0 {
				return errors.Errorf("rgb window %v ± %v out of range", c.RGBMid, c.RGBTolerance)
			}
		}
	default:
		return errors.Errorf("unknown classifier %q", c.Classifier)
	}

	if c.FilterPasses < 0 {
		return errors.Errorf("filter_passes %d is negative", c.FilterPasses)
	}
	if c.TrimOffset < 0 {
		return errors.Errorf("trim_offset %d is negative", c.TrimOffset)
	}
	if c.CentreDeviation < 0 || c.CentreDeviation > 0.5 {
		return errors.Errorf("centre_deviation %g outside [0, 0.5]", c.CentreDeviation)
	}
	if c.WorkingWidth < 0 || c.WorkingHeight < 0 {
		return errors.New("working size must not be negative")
	}
	if c.WatchInterval <= 0 {
		return errors.Errorf("watch_interval %s must be positive", c.WatchInterval)
	}
	if c.Workers <= 0 {
		return errors.Errorf("workers %d must be positive", c.Workers)
	}
	return nil
}

// TargetClassifier builds the classifier the config selects.
func (c *Config) TargetClassifier() target.Classifier {
	if c.Classifier == ClassifierRGB {
		return target.RGBWindow{Mid: c.RGBMid, Tol: c.RGBTolerance}
	}
	return target.HueRange{Min: c.HueMin, Max: c.HueMax}
}

// Analyzer builds a target.Analyzer from the config. Zero filter passes
// skip cleaning altogether.
func (c *Config) Analyzer() *target.Analyzer {
	var cleaner target.Cleaner = target.DirectionalErosion{Passes: c.FilterPasses}
	if c.FilterPasses == 0 {
		cleaner = target.NopCleaner
	}
	return target.NewAnalyzer(
		target.WithClassifier(c.TargetClassifier()),
		target.WithCleaner(cleaner),
		target.WithTrimOffset(c.TrimOffset),
		target.WithDeviation(c.CentreDeviation),
	)
}

// WorkingSize is the size frames are fitted into before analysis.
func (c *Config) WorkingSize() imaging.WorkingSize {
	return imaging.WorkingSize{Width: c.WorkingWidth, Height: c.WorkingHeight}
}
