package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-yaml/yaml"
)

const (
	DefaultNumFloors    = 8
	DefaultNumElevators = 3
	TickInterval        = 50 * time.Millisecond
	TravelDuration      = 2 * time.Second
	DoorOpenDuration    = 3 * time.Second
)

// Config holds the tunable parameters of a simulation run. Durations are
// fixed by the constants above; the config file covers building topology
// and traffic shape.
type Config struct {
	NumFloors        int     `yaml:"NumFloors"`
	NumElevators     int     `yaml:"NumElevators"`
	TrafficPerMinute float64 `yaml:"TrafficPerMinute"`
	Seed             int64   `yaml:"Seed"`
}

func Default() Config {
	return Config{
		NumFloors:        DefaultNumFloors,
		NumElevators:     DefaultNumElevators,
		TrafficPerMinute: 12,
		Seed:             1,
	}
}

// Load reads a YAML config file. Fields missing from the file keep their
// default values.
func Load(path string) (Config, error) {
	c := Default()
	file, err := os.Open(path)
	if err != nil {
		return c, err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(&c); err != nil {
		return c, fmt.Errorf("decoding %s: %w", path, err)
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.NumFloors < 2 {
		return fmt.Errorf("need at least 2 floors, got %d", c.NumFloors)
	}
	if c.NumElevators < 1 {
		return fmt.Errorf("need at least 1 elevator, got %d", c.NumElevators)
	}
	if c.TrafficPerMinute < 0 {
		return fmt.Errorf("traffic rate must be non-negative, got %v", c.TrafficPerMinute)
	}
	return nil
}
