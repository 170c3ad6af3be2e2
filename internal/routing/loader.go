package routing

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/bodaroute/bodaroute/internal/models"
)

// LoadNetworkFile reads a road-network definition from a JSON file and
// validates it into a RoadNetwork.
func LoadNetworkFile(path string) (*RoadNetwork, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading network file %s: %w", path, err)
	}

	var def models.NetworkDefinition
	if err := json.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedGraph, path, err)
	}

	return NewRoadNetwork(&def)
}

// WriteNetworkFile persists a network definition as indented JSON,
// creating parent directories as needed.
func WriteNetworkFile(path string, def *models.NetworkDefinition) error {
	if _, err := NewRoadNetwork(def); err != nil {
		return err
	}

	data, err := json.MarshalIndent(def, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding network definition: %w", err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return fmt.Errorf("creating network directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing network file %s: %w", path, err)
	}
	return nil
}
