package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/icedream/verstamp"
)

// loadOverrides reads a component overrides file. YAML and JSON both
// parse through the same path; keys absent from the file stay unbound
// so the define-once merge leaves other bindings in place.
func loadOverrides(path string) (verstamp.Components, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return verstamp.Components{}, fmt.Errorf("read overrides file %s: %w", path, err)
	}
	var components verstamp.Components
	if err := yaml.Unmarshal(data, &components); err != nil {
		return verstamp.Components{}, fmt.Errorf("parse overrides file %s: %w", path, err)
	}
	return components, nil
}
