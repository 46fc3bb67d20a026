package evaluator

import (
	"strconv"

	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/zerr"
)

type pluginSpec struct {
	id         string
	activation domain.Activation
	opts       domain.Options
}

// pluginCandidates lists every plugin the plan may contain, in plan order.
func pluginCandidates(mode domain.BuildMode, s domain.Settings) []pluginSpec {
	return []pluginSpec{
		{id: domain.PluginClean, activation: domain.ActivationAlways},
		{id: domain.PluginCSSExtract, activation: domain.ActivationProductionOnly, opts: domain.Options{
			"filename":      "assets/css/[name].[contenthash:8].css",
			"chunkFilename": "assets/css/[name].[contenthash:8].chunk.css",
		}},
		{id: domain.PluginDefine, activation: domain.ActivationAlways, opts: domain.Options{
			"process.env.NODE_ENV": strconv.Quote(mode.String()),
		}},
		{id: domain.PluginHTML, activation: domain.ActivationAlways, opts: domain.Options{
			"filename": "index.html",
			"inject":   true,
			"template": s.Template,
		}},
	}
}

func buildPlugins(mode domain.BuildMode, s domain.Settings) ([]domain.Plugin, error) {
	specs := pluginCandidates(mode, s)
	candidates := make([]domain.Plugin, 0, len(specs))

	for _, spec := range specs {
		p, err := domain.NewPlugin(spec.id, spec.activation, spec.opts)
		if err != nil {
			return nil, zerr.With(err, "plugin", spec.id)
		}
		candidates = append(candidates, p)
	}

	return domain.FilterPlugins(candidates, mode), nil
}
