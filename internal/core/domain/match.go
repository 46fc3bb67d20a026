package domain

// FileMatch is the classification of one source file against a plan.
type FileMatch struct {
	Path string `json:"path" yaml:"path"`
	// Rule is the name of the claiming rule, empty when no rule matched.
	Rule  string   `json:"rule,omitempty" yaml:"rule,omitempty"`
	Steps []string `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// Matched reports whether a rule claimed the file.
func (m FileMatch) Matched() bool {
	return m.Rule != ""
}

// Classify matches path against the rules of the plan.
func (p *BuildPlan) Classify(path string) FileMatch {
	rule, ok := p.RuleFor(path)
	if !ok {
		return FileMatch{Path: path}
	}
	return FileMatch{Path: path, Rule: rule.Name, Steps: rule.StepIDs()}
}
