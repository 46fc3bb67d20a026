package domain

import "go.trai.ch/zerr"

// Format selects how plans are written.
type Format string

// Supported output formats.
const (
	FormatAuto Format = "auto"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat converts a flag value into a Format. The empty string means auto.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case "":
		return FormatAuto, nil
	case FormatAuto, FormatYAML, FormatJSON, FormatText:
		return f, nil
	default:
		return "", zerr.With(ErrUnknownFormat, "format", s)
	}
}

func (f Format) String() string {
	return string(f)
}
