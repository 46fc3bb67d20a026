package domain

import (
	"maps"
	"slices"

	"go.trai.ch/zerr"
)

// Loader identifiers used in rule transform chains.
const (
	StepBabel      = "babel-loader"
	StepESLint     = "eslint-loader"
	StepCSSExtract = "mini-css-extract-plugin/loader"
	StepStyle      = "style-loader"
	StepCSS        = "css-loader"
	StepPostCSS    = "postcss-loader"
	StepURL        = "url-loader"
	StepSVGR       = "@svgr/webpack"
	StepFile       = "file-loader"
)

// Minimizer identifiers used in the optimization policy.
const (
	MinimizerTerser = "terser-webpack-plugin"
	MinimizerCSS    = "optimize-css-assets-webpack-plugin"
)

// Plugin identifiers used in the plugin list.
const (
	PluginClean      = "clean-webpack-plugin"
	PluginCSSExtract = "mini-css-extract-plugin"
	PluginDefine     = "webpack.DefinePlugin"
	PluginHTML       = "html-webpack-plugin"
)

// stepCatalog enumerates the option keys each known step accepts.
// A step absent from the catalog is unknown; a key absent from its list is rejected.
var stepCatalog = map[string][]string{
	StepBabel:      {"cacheCompression", "cacheDirectory", "envName"},
	StepESLint:     {"cache", "fix"},
	StepCSSExtract: {"esModule", "publicPath"},
	StepStyle:      {"injectType"},
	StepCSS:        {"importLoaders", "modules", "sourceMap"},
	StepPostCSS:    {"ident", "plugins", "sourceMap"},
	StepURL:        {"fallback", "limit", "name"},
	StepSVGR:       {"icon", "svgo"},
	StepFile:       {"name", "outputPath", "publicPath"},

	MinimizerTerser: {"extractComments", "parallel", "terserOptions"},
	MinimizerCSS:    {"cssProcessorOptions"},

	PluginClean:      {"cleanOnceBeforeBuildPatterns", "verbose"},
	PluginCSSExtract: {"chunkFilename", "filename"},
	PluginDefine:     {"process.env.NODE_ENV"},
	PluginHTML:       {"filename", "inject", "minify", "template"},
}

// KnownSteps returns the identifiers of every catalogued step, sorted.
func KnownSteps() []string {
	return slices.Sorted(maps.Keys(stepCatalog))
}

// Options is the configuration mapping handed to a transform step or plugin.
// Values are scalars, string slices or nested Options.
type Options map[string]any

// Clone returns a deep copy of o so a step never shares state with its caller.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	out := make(Options, len(o))
	for k, v := range o {
		switch val := v.(type) {
		case Options:
			out[k] = val.Clone()
		case []string:
			out[k] = slices.Clone(val)
		default:
			out[k] = val
		}
	}
	return out
}

// TransformStep is one stage of a rule's transform chain, consuming the previous stage's output.
type TransformStep struct {
	ID      string  `json:"id" yaml:"id"`
	Options Options `json:"options,omitempty" yaml:"options,omitempty"`
}

// NewTransformStep validates opts against the step catalog and returns the step.
func NewTransformStep(id string, opts Options) (TransformStep, error) {
	if err := validateOptions(id, opts); err != nil {
		return TransformStep{}, err
	}
	return TransformStep{ID: id, Options: opts.Clone()}, nil
}

func validateOptions(id string, opts Options) error {
	allowed, ok := stepCatalog[id]
	if !ok {
		return zerr.With(ErrUnknownStep, "step", id)
	}
	for _, key := range slices.Sorted(maps.Keys(opts)) {
		if !slices.Contains(allowed, key) {
			return zerr.With(zerr.With(ErrUnknownOption, "step", id), "option", key)
		}
	}
	return nil
}
