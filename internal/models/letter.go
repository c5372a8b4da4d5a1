package models

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Segment is one piece of a letter's vector stroke definition. Kind is either
// "line" (From→To) or "bezier" (From→To with two control points).
type Segment struct {
	Kind      string  `yaml:"kind"`
	FromX     float64 `yaml:"fromX"`
	FromY     float64 `yaml:"fromY"`
	ToX       float64 `yaml:"toX"`
	ToY       float64 `yaml:"toY"`
	Control1X float64 `yaml:"control1X,omitempty"`
	Control1Y float64 `yaml:"control1Y,omitempty"`
	Control2X float64 `yaml:"control2X,omitempty"`
	Control2Y float64 `yaml:"control2Y,omitempty"`
}

// LetterStroke is an ordered run of segments drawn without lifting the pen.
type LetterStroke struct {
	Segments []Segment `yaml:"segments"`
}

// Letter is the static vector definition of one traceable character.
type Letter struct {
	Char    string         `yaml:"char"`
	Strokes []LetterStroke `yaml:"strokes"`
}

// LetterSet holds all letter definitions loaded from the configuration file.
type LetterSet struct {
	Letters []Letter `yaml:"letters"`
}

// LoadLetterSet reads and parses the letters.yaml file.
func LoadLetterSet(path string) (*LetterSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read letter definition file: %w", err)
	}

	var set LetterSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("failed to unmarshal letter YAML: %w", err)
	}

	return &set, nil
}

// Find returns the definition for char, or nil when the set does not carry it.
func (s *LetterSet) Find(char string) *Letter {
	for i := range s.Letters {
		if s.Letters[i].Char == char {
			return &s.Letters[i]
		}
	}
	return nil
}
