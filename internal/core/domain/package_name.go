package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

const (
	nodeModulesDir = "node_modules"
	scopeMarker    = "@"
)

// PackageName extracts the resolved package name from a module path.
//
// The innermost node_modules segment wins, so a dependency nested inside
// another package is attributed to itself. Scoped packages keep both
// segments: "node_modules/@foo/bar/baz.js" yields "@foo/bar", while
// "node_modules/lodash/index.js" yields "lodash".
func PackageName(modulePath string) (string, error) {
	segments := strings.Split(toSlash(modulePath), "/")

	for i := len(segments) - 2; i >= 0; i-- {
		if segments[i] != nodeModulesDir {
			continue
		}

		name := segments[i+1]
		if name == "" {
			continue
		}
		if !strings.HasPrefix(name, scopeMarker) {
			return name, nil
		}

		if name == scopeMarker || i+2 >= len(segments) || segments[i+2] == "" {
			continue
		}
		return name + "/" + segments[i+2], nil
	}

	return "", zerr.With(ErrNotPackagePath, "path", modulePath)
}

// SanitizePackageName turns a package name into a chunk-safe identifier:
// a leading scope marker is stripped and remaining separators become dashes.
func SanitizePackageName(name string) string {
	name = strings.TrimPrefix(name, scopeMarker)
	return strings.NewReplacer("/", "-", `\`, "-").Replace(name)
}

// GroupName derives the chunk identifier for a module within a cache group,
// e.g. ("vendors", "node_modules/@foo/bar/baz.js") yields "vendors.foo-bar".
func GroupName(groupKey, modulePath string) (string, error) {
	name, err := PackageName(modulePath)
	if err != nil {
		return "", zerr.With(err, "group", groupKey)
	}
	return groupKey + "." + SanitizePackageName(name), nil
}
