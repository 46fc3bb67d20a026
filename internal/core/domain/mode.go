package domain

// BuildMode selects development or production behavior for a single build invocation.
type BuildMode string

const (
	// ModeDevelopment produces an unminified plan with inline styles and source maps.
	ModeDevelopment BuildMode = "development"
	// ModeProduction produces a minified plan with extracted stylesheets.
	ModeProduction BuildMode = "production"
)

// Modes returns every recognized build mode in canonical order.
func Modes() []BuildMode {
	return []BuildMode{ModeDevelopment, ModeProduction}
}

// ParseBuildMode converts a raw flag value into a BuildMode.
// An empty or unrecognized value yields an *InvalidModeError.
func ParseBuildMode(s string) (BuildMode, error) {
	mode := BuildMode(s)
	if !mode.Valid() {
		return "", &InvalidModeError{Value: s}
	}
	return mode, nil
}

// Valid reports whether m is one of the recognized modes.
func (m BuildMode) Valid() bool {
	switch m {
	case ModeDevelopment, ModeProduction:
		return true
	default:
		return false
	}
}

// IsProduction reports whether m is the production mode.
func (m BuildMode) IsProduction() bool {
	return m == ModeProduction
}

// String returns the string representation of the BuildMode.
func (m BuildMode) String() string {
	return string(m)
}
