package poissondisk

import (
	"log/slog"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// AnnulusMode decides how candidate points are placed around an
// active point.
type AnnulusMode string

const (
	// HalfCircle draws the radius linearly then the angle:
	// radius in [r, 2r), angle in [0, Pi). This is the default.
	HalfCircle AnnulusMode = "half"

	// FullCircle samples the ring uniformly by area at any angle.
	FullCircle AnnulusMode = "full"
)

// Config holds settings for a single sampling run.
// Width, Height & Radius are required, everything else has a default.
type Config struct {
	// Size of the sampling area. The area runs from (0, 0) to
	// (Width, Height), points on the border are never returned.
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`

	// Radius is the minimum distance between any two points
	Radius float32 `yaml:"radius"`

	// Attempts is how many candidates we try around an active point
	// before giving up on it. 0 is valid & returns only the first point.
	Attempts uint32 `yaml:"attempts"`

	// Seed for rng (random number chosen if not set)
	Seed int64 `yaml:"seed"`

	// Annulus sets how candidates are drawn (HalfCircle if not set)
	Annulus AnnulusMode `yaml:"annulus"`

	// MaxPoints stops accepting new points once this many have been
	// placed. 0 or less is "no max".
	MaxPoints int `yaml:"max_points"`

	// Logger for debug output, nothing is logged if not given
	Logger *slog.Logger `yaml:"-"`
}

// DefaultConfig returns a config with reasonable defaults for everything
// except the area & radius.
func DefaultConfig() *Config {
	return &Config{
		Attempts: 30,
		Annulus:  HalfCircle,
	}
}

// LoadConfig reads a yaml file on top of DefaultConfig()
func LoadConfig(fpath string) (*Config, error) {
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config %s", fpath)
	}

	return cfg, cfg.Validate()
}

// Validate checks the config can be sampled.
// Returns an error wrapping ErrInvalidParameter if not.
func (c *Config) Validate() error {
	if err := validate(c.Width, c.Height, c.Radius); err != nil {
		return err
	}
	switch c.Annulus {
	case "", HalfCircle, FullCircle:
	default:
		return errors.Wrapf(ErrInvalidParameter, "unknown annulus mode %q", c.Annulus)
	}
	return nil
}

// validate checks the numeric inputs shared by Sample() and Config
func validate(width, height, radius float32) error {
	checks := []struct {
		name string
		val  float32
	}{
		{"width", width},
		{"height", height},
		{"radius", radius},
	}
	for _, chk := range checks {
		if !isFinite(chk.val) || chk.val <= 0 {
			return errors.Wrapf(ErrInvalidParameter, "%s must be finite & > 0, got %v", chk.name, chk.val)
		}
	}
	return nil
}
