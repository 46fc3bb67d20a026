package domain

// Output describes where and under which names artifacts are written.
// Templates keep the executor's placeholders ([name], [contenthash:8]) unresolved.
type Output struct {
	Filename      string `json:"filename" yaml:"filename"`
	ChunkFilename string `json:"chunkFilename" yaml:"chunkFilename"`
	Path          string `json:"path" yaml:"path"`
	PublicPath    string `json:"publicPath" yaml:"publicPath"`
}

// DevServer configures the executor's development server.
type DevServer struct {
	ContentBase        string `json:"contentBase" yaml:"contentBase"`
	Compress           bool   `json:"compress" yaml:"compress"`
	HistoryAPIFallback bool   `json:"historyApiFallback" yaml:"historyApiFallback"`
	Open               bool   `json:"open" yaml:"open"`
	Overlay            bool   `json:"overlay" yaml:"overlay"`
}

// Resolve lists the extensions tried, in order, when an import omits one.
type Resolve struct {
	Extensions []string `json:"extensions" yaml:"extensions"`
}

// BuildPlan is the complete, ordered description of one build.
// It is produced fresh for every evaluation and must not be mutated afterwards.
type BuildPlan struct {
	Mode  BuildMode `json:"mode" yaml:"mode"`
	Entry string    `json:"entry" yaml:"entry"`
	// Devtool names the source map style; empty disables source maps.
	Devtool      string             `json:"devtool,omitempty" yaml:"devtool,omitempty"`
	Resolve      Resolve            `json:"resolve" yaml:"resolve"`
	Rules        []Rule             `json:"rules" yaml:"rules"`
	Plugins      []Plugin           `json:"plugins" yaml:"plugins"`
	Optimization OptimizationPolicy `json:"optimization" yaml:"optimization"`
	Output       Output             `json:"output" yaml:"output"`
	DevServer    *DevServer         `json:"devServer,omitempty" yaml:"devServer,omitempty"`
}

// RuleFor returns the first rule claiming the file at path.
func (p *BuildPlan) RuleFor(path string) (Rule, bool) {
	for _, r := range p.Rules {
		if r.Matches(path) {
			return r, true
		}
	}
	return Rule{}, false
}

// Rule returns the rule with the given name.
func (p *BuildPlan) Rule(name string) (Rule, bool) {
	for _, r := range p.Rules {
		if r.Name == name {
			return r, true
		}
	}
	return Rule{}, false
}

// HasPlugin reports whether a plugin with the given identifier is part of the plan.
func (p *BuildPlan) HasPlugin(id string) bool {
	for _, pl := range p.Plugins {
		if pl.ID == id {
			return true
		}
	}
	return false
}

// PluginIDs returns plugin identifiers in plan order.
func (p *BuildPlan) PluginIDs() []string {
	ids := make([]string, len(p.Plugins))
	for i, pl := range p.Plugins {
		ids[i] = pl.ID
	}
	return ids
}

// PlanSnapshot is a saved plan together with its fingerprint.
type PlanSnapshot struct {
	Mode        BuildMode  `json:"mode"`
	Fingerprint string     `json:"fingerprint"`
	Plan        *BuildPlan `json:"plan"`
}
