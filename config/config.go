/*
Package config provides methods to parse training configurations from
YAML documents.
*/
package config

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

/*
Config holds the parameters used to train trees and forests. Zero values
for depths and feature counts stand for the defaults of the models.
*/
type Config struct {
	// Label is the name of the column holding the classes to predict.
	Label string `yaml:"label"`
	// Seed seeds every random decision taken while training and
	// predicting. When nil, models are seeded with the current time.
	Seed   *int64       `yaml:"seed"`
	Tree   TreeConfig   `yaml:"tree"`
	Forest ForestConfig `yaml:"forest"`
}

// TreeConfig holds the parameters to train a decision tree.
type TreeConfig struct {
	MaxDepth int     `yaml:"max_depth"`
	MinGini  float64 `yaml:"min_gini"`
}

// ForestConfig holds the parameters to train a random forest.
type ForestConfig struct {
	Trees       int     `yaml:"trees"`
	MaxDepth    int     `yaml:"max_depth"`
	MinGini     float64 `yaml:"min_gini"`
	Subfeatures int     `yaml:"subfeatures"`
}

// DefaultTrees is the number of trees in a forest when none is configured.
const DefaultTrees = 100

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Forest: ForestConfig{Trees: DefaultTrees}}
}

/*
Read takes a slice of bytes with a configuration in YAML and returns the
configuration parsed from it on top of the defaults, or an error.
*/
func Read(data []byte) (*Config, error) {
	c := Default()
	err := yaml.UnmarshalStrict(data, c)
	if err != nil {
		return nil, fmt.Errorf("parsing yml config: %v", err)
	}
	err = c.Validate()
	if err != nil {
		return nil, err
	}
	return c, nil
}

/*
ReadFile takes a filepath string, reads its contents and uses Read to
parse it and return a configuration or an error.
*/
func ReadFile(filepath string) (*Config, error) {
	data, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("reading config yml file %s: %v", filepath, err)
	}
	c, err := Read(data)
	if err != nil {
		return nil, fmt.Errorf("parsing config yml file %s: %v", filepath, err)
	}
	return c, nil
}

// Validate returns an error if any parameter is out of range.
func (c *Config) Validate() error {
	if c.Tree.MaxDepth < 0 || c.Forest.MaxDepth < 0 {
		return fmt.Errorf("max_depth cannot be negative")
	}
	if c.Tree.MinGini < 0 || c.Tree.MinGini > 1 || c.Forest.MinGini < 0 || c.Forest.MinGini > 1 {
		return fmt.Errorf("min_gini must be between 0 and 1")
	}
	if c.Forest.Trees < 1 {
		return fmt.Errorf("forest must have at least one tree")
	}
	if c.Forest.Subfeatures < 0 {
		return fmt.Errorf("subfeatures cannot be negative")
	}
	return nil
}
