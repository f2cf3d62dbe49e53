package camera

import (
	"fmt"
	"io"

	"github.com/clambin/go-common/set"
	"github.com/vigilocam/detection-scheduler/internal/detect"
	"gopkg.in/yaml.v3"
)

// Configuration is the content of a cameras file.
type Configuration struct {
	Cameras []Camera `json:"cameras" yaml:"cameras"`
}

// Load reads a cameras file, migrates legacy single-window schedules to
// the multi-range form and validates the result.
func Load(r io.Reader) (Configuration, error) {
	var cfg Configuration
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return Configuration{}, fmt.Errorf("invalid cameras file: %w", err)
	}
	ids := set.New[string]()
	for i := range cfg.Cameras {
		cfg.Cameras[i].Schedule = detect.Migrate(cfg.Cameras[i].Schedule)
		if err := cfg.Cameras[i].Validate(); err != nil {
			return Configuration{}, fmt.Errorf("camera %q: %w", cfg.Cameras[i].ID, err)
		}
		if ids.Contains(cfg.Cameras[i].ID) {
			return Configuration{}, &detect.ValidationError{Field: "id", Reason: fmt.Sprintf("duplicate camera id %q", cfg.Cameras[i].ID)}
		}
		ids.Add(cfg.Cameras[i].ID)
	}
	return cfg, nil
}

// Get returns the camera with the given id.
func (c Configuration) Get(id string) (Camera, bool) {
	for _, cam := range c.Cameras {
		if cam.ID == id {
			return cam, true
		}
	}
	return Camera{}, false
}
