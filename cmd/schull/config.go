package main

import (
	"io"
	"math"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// The circumradius threshold the reference tool was built with
const defaultAlpha = 2.5

// Config file contents. Alpha is the only tunable of the algorithm.
type Config struct {
	Alpha float64 `yaml:"alpha"`
}

func DefaultConfig() Config {
	return Config{Alpha: defaultAlpha}
}

// Decode a YAML config over the defaults. Unknown keys are rejected.
func ReadConfig(r io.Reader) (Config, error) {
	config := DefaultConfig()
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	if err := decoder.Decode(&config); err != nil && err != io.EOF {
		return Config{}, errors.Wrap(err, "decoding config")
	}
	return config, config.Validate()
}

func LoadConfig(path string) (Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return Config{}, errors.Wrap(err, "opening config")
	}
	defer file.Close()
	return ReadConfig(file)
}

func (c Config) Validate() error {
	if !(c.Alpha > 0) || math.IsInf(c.Alpha, 1) {
		return errors.Errorf("alpha must be a positive number, got %g", c.Alpha)
	}
	return nil
}
