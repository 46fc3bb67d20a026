package evaluator

import "go.trai.ch/assemble/internal/core/domain"

// minimizerSpecs is the production minimizer chain: scripts first, then stylesheets.
func minimizerSpecs() []stepSpec {
	return []stepSpec{
		{id: domain.MinimizerTerser, opts: domain.Options{
			"terserOptions": domain.Options{
				"compress": domain.Options{"comparisons": false},
				"mangle":   domain.Options{"safari10": true},
				"output": domain.Options{
					"comments":   false,
					"ascii_only": true,
				},
				"warnings": false,
			},
		}},
		{id: domain.MinimizerCSS},
	}
}

func buildOptimization(mode domain.BuildMode) (domain.OptimizationPolicy, error) {
	minimizers := []domain.TransformStep{}
	if mode.IsProduction() {
		steps, err := buildSteps(minimizerSpecs())
		if err != nil {
			return domain.OptimizationPolicy{}, err
		}
		minimizers = steps
	}

	return domain.OptimizationPolicy{
		MinimizeEnabled: mode.IsProduction(),
		Minimizers:      minimizers,
		Chunking:        buildChunking(),
	}, nil
}

// buildChunking is identical for every mode.
func buildChunking() domain.ChunkingStrategy {
	return domain.ChunkingStrategy{
		Chunks:             "all",
		MinSize:            0,
		MaxInitialRequests: 20,
		MaxAsyncRequests:   20,
		CacheGroups: []domain.CacheGroup{
			{
				Key:    "vendors",
				Test:   nodeModulesPattern,
				Naming: domain.NamingPackage,
			},
			{
				Key:       "common",
				MinChunks: 2,
				Priority:  -10,
				Naming:    domain.NamingDefault,
			},
		},
		RuntimeChunk: domain.RuntimeChunkSingle,
	}
}
