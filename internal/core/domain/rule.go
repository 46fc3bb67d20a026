package domain

import (
	"path"
	"path/filepath"
	"slices"
	"strings"

	"github.com/bmatcuk/doublestar"
)

// Rule names for the file-type categories of a plan.
const (
	RuleScripts = "scripts"
	RuleStyles  = "styles"
	RuleImages  = "images"
	RuleVectors = "vectors"
	RuleFonts   = "fonts"
)

// Rule maps a file-type predicate to an ordered transform chain.
type Rule struct {
	// Name is a short label for the file-type category, e.g. "scripts".
	Name string `json:"name" yaml:"name"`
	// Extensions lists file extensions including the leading dot, matched case-sensitively.
	Extensions []string `json:"extensions" yaml:"extensions"`
	// Exclusions are slash-separated glob patterns; a matching path is not claimed by the rule.
	Exclusions []string        `json:"exclusions,omitempty" yaml:"exclusions,omitempty"`
	Transforms []TransformStep `json:"transforms" yaml:"transforms"`
}

// Matches reports whether the rule claims the file at p.
// Both slash and backslash separated paths are accepted.
func (r Rule) Matches(p string) bool {
	p = toSlash(p)
	if !slices.Contains(r.Extensions, path.Ext(p)) {
		return false
	}
	for _, pattern := range r.Exclusions {
		if ok, err := doublestar.Match(pattern, p); err == nil && ok {
			return false
		}
	}
	return true
}

// FirstStep returns the first transform of the chain.
func (r Rule) FirstStep() (TransformStep, bool) {
	if len(r.Transforms) == 0 {
		return TransformStep{}, false
	}
	return r.Transforms[0], true
}

// StepIDs returns the transform identifiers in application order.
func (r Rule) StepIDs() []string {
	ids := make([]string, len(r.Transforms))
	for i, step := range r.Transforms {
		ids[i] = step.ID
	}
	return ids
}

// toSlash normalizes both separator styles to forward slashes,
// independent of the host OS.
func toSlash(p string) string {
	return strings.ReplaceAll(filepath.ToSlash(p), `\`, "/")
}
