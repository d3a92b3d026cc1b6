package sim

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario holds simulation parameters, loadable from a YAML file.
// Zero-valued fields mean "not set" — the CLI fills them from flag defaults.
type Scenario struct {
	Nodes    int    `yaml:"nodes"`
	Chunks   int    `yaml:"chunks"`
	Policy   string `yaml:"policy"`
	MaxTicks int    `yaml:"max_ticks"`
}

// LoadScenario reads and parses a YAML scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading scenario: %w", err)
	}
	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parsing scenario: %w", err)
	}
	return &sc, nil
}

// Validate checks that the scenario's parameters and policy name are valid.
// Unset (zero) fields are accepted; they default later.
func (sc *Scenario) Validate() error {
	if sc.Nodes != 0 && sc.Nodes < 2 {
		return fmt.Errorf("nodes must be at least 2, got %d", sc.Nodes)
	}
	if sc.Chunks != 0 && sc.Chunks < 1 {
		return fmt.Errorf("chunks must be at least 1, got %d", sc.Chunks)
	}
	if sc.Policy != "" && !ValidPolicies[sc.Policy] {
		return fmt.Errorf("unknown transfer policy %q", sc.Policy)
	}
	if sc.MaxTicks < 0 {
		return fmt.Errorf("max_ticks must be non-negative, got %d", sc.MaxTicks)
	}
	return nil
}
