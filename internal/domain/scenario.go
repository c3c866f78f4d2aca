package domain

// Scenario is a named calculator input loaded from a scenario file
type Scenario struct {
	Name             string `yaml:"name" json:"name"`
	Description      string `yaml:"description,omitempty" json:"description,omitempty"`
	CalculationInput `yaml:",inline"`
}

// Configuration is the top level of a scenario file
type Configuration struct {
	Locale    string     `yaml:"locale,omitempty" json:"locale,omitempty"`
	Scenarios []Scenario `yaml:"scenarios" json:"scenarios"`
}

// FindScenario returns the scenario with the given name
func (c *Configuration) FindScenario(name string) (*Scenario, bool) {
	for i := range c.Scenarios {
		if c.Scenarios[i].Name == name {
			return &c.Scenarios[i], true
		}
	}
	return nil, false
}

// ScenarioResult pairs a scenario with its calculated outputs
type ScenarioResult struct {
	Name        string            `yaml:"name" json:"name"`
	Description string            `yaml:"description,omitempty" json:"description,omitempty"`
	Input       CalculationInput  `yaml:"input" json:"input"`
	Result      CalculationResult `yaml:"result" json:"result"`
	Schedule    []MonthlyBalance  `yaml:"schedule,omitempty" json:"schedule,omitempty"`
}

// ScenarioSet is the full output of a run over a configuration
type ScenarioSet struct {
	Locale    string           `yaml:"locale,omitempty" json:"locale,omitempty"`
	Scenarios []ScenarioResult `yaml:"scenarios" json:"scenarios"`
}

// Find returns the result for the named scenario
func (s *ScenarioSet) Find(name string) (*ScenarioResult, bool) {
	for i := range s.Scenarios {
		if s.Scenarios[i].Name == name {
			return &s.Scenarios[i], true
		}
	}
	return nil, false
}
