package detector_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/assemble/internal/adapters/detector"
	"go.trai.ch/assemble/internal/core/domain"
)

func TestIsCI(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"1", true},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("CI="+tt.value, func(t *testing.T) {
			t.Setenv("CI", tt.value)
			assert.Equal(t, tt.want, detector.IsCI())
		})
	}
}

func TestResolveFormat(t *testing.T) {
	t.Setenv("CI", "")
	buf := new(bytes.Buffer)

	tests := []struct {
		name      string
		requested domain.Format
		want      domain.Format
	}{
		{"auto on a buffer is yaml", domain.FormatAuto, domain.FormatYAML},
		{"empty means auto", "", domain.FormatYAML},
		{"json stays json", domain.FormatJSON, domain.FormatJSON},
		{"text stays text", domain.FormatText, domain.FormatText},
		{"yaml stays yaml", domain.FormatYAML, domain.FormatYAML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, detector.ResolveFormat(tt.requested, buf))
		})
	}
}

func TestIsInteractive_CIWins(t *testing.T) {
	t.Setenv("CI", "true")
	assert.False(t, detector.IsInteractive(new(bytes.Buffer)))
}
