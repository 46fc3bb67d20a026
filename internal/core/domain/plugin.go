package domain

import "go.trai.ch/zerr"

// Activation decides for which build modes a plugin is part of the plan.
type Activation uint8

const (
	// ActivationAlways includes the plugin in every mode.
	ActivationAlways Activation = iota
	// ActivationProductionOnly includes the plugin only in production.
	ActivationProductionOnly
	// ActivationDevelopmentOnly includes the plugin only in development.
	ActivationDevelopmentOnly
)

// Holds reports whether the activation condition is true for mode.
func (a Activation) Holds(mode BuildMode) bool {
	switch a {
	case ActivationAlways:
		return true
	case ActivationProductionOnly:
		return mode == ModeProduction
	case ActivationDevelopmentOnly:
		return mode == ModeDevelopment
	default:
		return false
	}
}

// String returns the string representation of the Activation.
func (a Activation) String() string {
	switch a {
	case ActivationAlways:
		return "always"
	case ActivationProductionOnly:
		return "production"
	case ActivationDevelopmentOnly:
		return "development"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Activation) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Activation) UnmarshalText(text []byte) error {
	switch string(text) {
	case "always":
		*a = ActivationAlways
	case "production":
		*a = ActivationProductionOnly
	case "development":
		*a = ActivationDevelopmentOnly
	default:
		return zerr.With(ErrUnknownActivation, "activation", string(text))
	}
	return nil
}

// Plugin is a packaging step that is included in the plan when its activation holds.
type Plugin struct {
	ID         string     `json:"id" yaml:"id"`
	Activation Activation `json:"activation" yaml:"activation"`
	Options    Options    `json:"options,omitempty" yaml:"options,omitempty"`
}

// NewPlugin validates opts against the step catalog and returns the plugin.
func NewPlugin(id string, activation Activation, opts Options) (Plugin, error) {
	if err := validateOptions(id, opts); err != nil {
		return Plugin{}, err
	}
	return Plugin{ID: id, Activation: activation, Options: opts.Clone()}, nil
}

// FilterPlugins keeps the plugins whose activation holds for mode, preserving their relative order.
func FilterPlugins(candidates []Plugin, mode BuildMode) []Plugin {
	active := make([]Plugin, 0, len(candidates))
	for _, p := range candidates {
		if p.Activation.Holds(mode) {
			active = append(active, p)
		}
	}
	return active
}
