package game

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed levels.yaml
var builtinLevelsYAML []byte

// Wall is a rectangular obstacle in a level definition
type Wall struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	W float64 `yaml:"w"`
	H float64 `yaml:"h"`
}

// Spawn is an enemy spawn point
type Spawn struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Level is one playable layout. An empty enemy list means the level
// uses the generated ring formation.
type Level struct {
	Name    string  `yaml:"name"`
	Walls   []Wall  `yaml:"walls"`
	Enemies []Spawn `yaml:"enemies,omitempty"`
}

type levelFile struct {
	Levels []Level `yaml:"levels"`
}

// ParseLevels decodes a YAML level set
func ParseLevels(data []byte) ([]Level, error) {
	var f levelFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse levels: %w", err)
	}
	if len(f.Levels) == 0 {
		return nil, fmt.Errorf("parse levels: no levels defined")
	}
	return f.Levels, nil
}

// LoadLevels reads a level set from a YAML file
func LoadLevels(path string) ([]Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read levels: %w", err)
	}
	return ParseLevels(data)
}

// BuiltinLevels returns the embedded level set
func BuiltinLevels() []Level {
	levels, err := ParseLevels(builtinLevelsYAML)
	if err != nil {
		// The embedded file ships with the binary
		panic(fmt.Sprintf("embedded levels: %v", err))
	}
	return levels
}
