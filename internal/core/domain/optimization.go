package domain

import (
	"github.com/bmatcuk/doublestar"
)

// RuntimeChunkMode selects how the module runtime is emitted.
type RuntimeChunkMode string

const (
	// RuntimeChunkSingle emits one runtime chunk shared by all entry points.
	RuntimeChunkSingle RuntimeChunkMode = "single"
	// RuntimeChunkMultiple emits one runtime chunk per entry point.
	RuntimeChunkMultiple RuntimeChunkMode = "multiple"
	// RuntimeChunkNone inlines the runtime into each entry chunk.
	RuntimeChunkNone RuntimeChunkMode = "none"
)

// GroupNaming selects how chunks of a cache group are named.
type GroupNaming string

const (
	// NamingDefault names the chunk after the group key.
	NamingDefault GroupNaming = "default"
	// NamingPackage names the chunk after the group key and the module's package.
	NamingPackage GroupNaming = "package"
)

// CacheGroup is one grouping rule of the chunking strategy.
type CacheGroup struct {
	Key string `json:"key" yaml:"key"`
	// Test is a slash-separated glob; an empty test matches every module.
	Test string `json:"test,omitempty" yaml:"test,omitempty"`
	// MinChunks is evaluated by the executor against the real chunk graph.
	MinChunks int         `json:"minChunks,omitempty" yaml:"minChunks,omitempty"`
	Priority  int         `json:"priority" yaml:"priority"`
	Naming    GroupNaming `json:"naming" yaml:"naming"`
}

// Matches reports whether the module at modulePath belongs to the group.
func (g CacheGroup) Matches(modulePath string) bool {
	if g.Test == "" {
		return true
	}
	ok, err := doublestar.Match(g.Test, toSlash(modulePath))
	return err == nil && ok
}

// Name returns the chunk identifier for a module assigned to the group.
func (g CacheGroup) Name(modulePath string) (string, error) {
	if g.Naming == NamingPackage {
		return GroupName(g.Key, modulePath)
	}
	return g.Key, nil
}

// ChunkingStrategy groups output artifacts by shared-dependency heuristics.
type ChunkingStrategy struct {
	Chunks             string           `json:"chunks" yaml:"chunks"`
	MinSize            int              `json:"minSize" yaml:"minSize"`
	MaxInitialRequests int              `json:"maxInitialRequests" yaml:"maxInitialRequests"`
	MaxAsyncRequests   int              `json:"maxAsyncRequests" yaml:"maxAsyncRequests"`
	CacheGroups        []CacheGroup     `json:"cacheGroups" yaml:"cacheGroups"`
	RuntimeChunk       RuntimeChunkMode `json:"runtimeChunk" yaml:"runtimeChunk"`
}

// GroupFor returns the matching cache group with the highest priority.
// Ties keep the group listed first.
func (c ChunkingStrategy) GroupFor(modulePath string) (CacheGroup, bool) {
	var (
		best  CacheGroup
		found bool
	)
	for _, g := range c.CacheGroups {
		if !g.Matches(modulePath) {
			continue
		}
		if !found || g.Priority > best.Priority {
			best, found = g, true
		}
	}
	return best, found
}

// OptimizationPolicy controls minification and chunk splitting.
type OptimizationPolicy struct {
	MinimizeEnabled bool             `json:"minimize" yaml:"minimize"`
	Minimizers      []TransformStep  `json:"minimizers" yaml:"minimizers"`
	Chunking        ChunkingStrategy `json:"splitChunks" yaml:"splitChunks"`
}
