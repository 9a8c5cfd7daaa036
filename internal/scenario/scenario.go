package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario errors.
var (
	// ErrInvalidScenario indicates a scenario that cannot run as written.
	ErrInvalidScenario = errors.New("invalid scenario")

	// ErrNoScenarios indicates a file or directory with nothing to run.
	ErrNoScenarios = errors.New("no scenarios found")
)

// File is the YAML document shape: a list of scenarios.
type File struct {
	Scenarios []Scenario `yaml:"scenarios"`
}

// Scenario drives one buffer through a sequence of key steps.
type Scenario struct {
	// Name labels the scenario in reports.
	Name string `yaml:"name"`

	// Buffer is the initial text.
	Buffer string `yaml:"buffer"`

	// Selection is the initial [start, end] pair; a reversed pair is
	// allowed and normalized by the engine.
	Selection []int `yaml:"selection"`

	// Steps are chord specs: "Tab", "Shift+Tab", "Enter", or "}".
	Steps []string `yaml:"steps"`

	// Want is the expected outcome.
	Want Want `yaml:"want"`
}

// Want describes the expected outcome of a scenario. Either an error
// substring or a final buffer and selection.
type Want struct {
	Buffer    string `yaml:"buffer"`
	Selection []int  `yaml:"selection"`
	Error     string `yaml:"error"`
}

func (sc Scenario) validate() error {
	if sc.Name == "" {
		return fmt.Errorf("%w: missing name", ErrInvalidScenario)
	}
	if len(sc.Steps) == 0 {
		return fmt.Errorf("%w: %q has no steps", ErrInvalidScenario, sc.Name)
	}
	if len(sc.Selection) != 2 {
		return fmt.Errorf("%w: %q selection must be [start, end]", ErrInvalidScenario, sc.Name)
	}
	if sc.Want.Error == "" && len(sc.Want.Selection) != 2 {
		return fmt.Errorf("%w: %q want.selection must be [start, end]", ErrInvalidScenario, sc.Name)
	}
	return nil
}

// Load reads scenarios from a single YAML file.
func Load(path string) ([]Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenarios: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse scenarios %s: %w", path, err)
	}
	if len(f.Scenarios) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, path)
	}
	return f.Scenarios, nil
}

// LoadDir reads every *.yaml and *.yml file in dir, in name order.
func LoadDir(dir string) ([]Scenario, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read scenario dir: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		switch filepath.Ext(e.Name()) {
		case ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	var all []Scenario
	for _, p := range paths {
		scs, err := Load(p)
		if err != nil {
			return nil, err
		}
		all = append(all, scs...)
	}
	if len(all) == 0 {
		return nil, fmt.Errorf("%w in %s", ErrNoScenarios, dir)
	}
	return all, nil
}

// LoadPath loads a scenario file, or every scenario file in a
// directory.
func LoadPath(path string) ([]Scenario, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat scenarios: %w", err)
	}
	if info.IsDir() {
		return LoadDir(path)
	}
	return Load(path)
}
