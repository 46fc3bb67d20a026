package logger

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	"go.trai.ch/assemble/internal/ui/style"
)

// messager is an error that reports its own message without the wrapped chain,
// as zerr errors do.
type messager interface {
	Message() string
}

// metadataCarrier is an error with structured key/value context, as zerr errors have.
type metadataCarrier interface {
	Metadata() map[string]any
}

type errorEntry struct {
	message  string
	metadata map[string]any
}

func (e errorEntry) keys() []string {
	return slices.Sorted(maps.Keys(e.metadata))
}

// collectErrorEntries walks the chain of err. zerr layers contribute their own
// message and metadata; the first foreign error ends the walk with its full text.
func collectErrorEntries(err error) []errorEntry {
	var entries []errorEntry

	for current := err; current != nil; {
		m, ok := current.(messager)
		if !ok {
			entries = append(entries, errorEntry{message: current.Error()})
			break
		}

		entry := errorEntry{message: m.Message()}
		if mc, ok := current.(metadataCarrier); ok && len(mc.Metadata()) > 0 {
			entry.metadata = mc.Metadata()
		}
		entries = append(entries, entry)
		current = errors.Unwrap(current)
	}

	return entries
}

// formatErrorEntries renders entries as
//
//	Error: <message>
//
//	  Caused by:
//	    → <cause>
//
// with metadata as sorted key=value lines below the message it belongs to.
func formatErrorEntries(entries []errorEntry) string {
	var lines []string

	for i, entry := range entries {
		msgLines := strings.Split(entry.message, "\n")

		prefix, indent := "Error: ", "       "
		if i > 0 {
			if i == 1 {
				lines = append(lines, "", "  Caused by:")
			}
			prefix, indent = "    "+style.Arrow+" ", "      "
		}

		lines = append(lines, prefix+msgLines[0])
		for _, line := range msgLines[1:] {
			lines = append(lines, indent+line)
		}
		for _, key := range entry.keys() {
			lines = append(lines, fmt.Sprintf("%s%s=%v", indent, key, entry.metadata[key]))
		}
	}

	return strings.Join(lines, "\n")
}
