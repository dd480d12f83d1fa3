package classify

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Loader loads category rules from a YAML file
type Loader struct {
	rulesPath string
}

// NewLoader creates a new rules loader
func NewLoader(rulesPath string) *Loader {
	return &Loader{
		rulesPath: rulesPath,
	}
}

// RulesFile represents a YAML rules file
type RulesFile struct {
	Categories []Category `yaml:"categories"`
}

// Load returns the rules from the configured file, or the built-in table
// when no file is configured
func (l *Loader) Load() (*Rules, error) {
	if l.rulesPath == "" {
		return DefaultRules(), nil
	}

	data, err := os.ReadFile(l.rulesPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules: %w", err)
	}

	var rulesFile RulesFile
	if err := yaml.Unmarshal(data, &rulesFile); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", l.rulesPath, err)
	}

	if len(rulesFile.Categories) == 0 {
		return nil, fmt.Errorf("%w: %s defines no categories", ErrInvalidRules, l.rulesPath)
	}

	rules, err := NewRules(rulesFile.Categories)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", l.rulesPath, err)
	}

	return rules, nil
}
