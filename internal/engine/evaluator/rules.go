package evaluator

import (
	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/zerr"
)

const nodeModulesPattern = "**/node_modules/**"

type stepSpec struct {
	id   string
	opts domain.Options
}

type ruleSpec struct {
	name       string
	extensions []string
	exclusions []string
	steps      []stepSpec
}

// ruleSpecs lists the file-type categories in plan order.
// Only the style chain and the babel envName depend on the mode.
func ruleSpecs(mode domain.BuildMode) []ruleSpec {
	return []ruleSpec{
		{
			name:       domain.RuleScripts,
			extensions: []string{".js", ".jsx"},
			exclusions: []string{nodeModulesPattern},
			steps: []stepSpec{
				{id: domain.StepBabel, opts: domain.Options{
					"cacheCompression": false,
					"cacheDirectory":   true,
					"envName":          mode.String(),
				}},
				{id: domain.StepESLint},
			},
		},
		{
			name:       domain.RuleStyles,
			extensions: []string{".css"},
			steps: []stepSpec{
				styleInjection(mode),
				{id: domain.StepCSS, opts: domain.Options{"importLoaders": 1}},
				{id: domain.StepPostCSS, opts: domain.Options{
					"ident":   "postcss",
					"plugins": []string{"tailwindcss", "autoprefixer"},
				}},
			},
		},
		{
			name:       domain.RuleImages,
			extensions: []string{".png", ".jpg", ".gif"},
			steps: []stepSpec{
				{id: domain.StepURL, opts: domain.Options{
					"limit": 8192,
					"name":  "static/images/[name].[hash:8].[ext]",
				}},
			},
		},
		{
			name:       domain.RuleVectors,
			extensions: []string{".svg"},
			steps:      []stepSpec{{id: domain.StepSVGR}},
		},
		{
			name:       domain.RuleFonts,
			extensions: []string{".eot", ".otf", ".ttf", ".woff", ".woff2"},
			steps: []stepSpec{
				{id: domain.StepFile, opts: domain.Options{
					"name": "static/fonts/[name].[hash:8].[ext]",
				}},
			},
		},
	}
}

// styleInjection extracts stylesheets into files in production and injects
// them through style tags in development.
func styleInjection(mode domain.BuildMode) stepSpec {
	if mode.IsProduction() {
		return stepSpec{id: domain.StepCSSExtract}
	}
	return stepSpec{id: domain.StepStyle}
}

func buildRules(mode domain.BuildMode) ([]domain.Rule, error) {
	specs := ruleSpecs(mode)
	rules := make([]domain.Rule, 0, len(specs))

	for _, spec := range specs {
		steps, err := buildSteps(spec.steps)
		if err != nil {
			return nil, zerr.With(err, "rule", spec.name)
		}
		rules = append(rules, domain.Rule{
			Name:       spec.name,
			Extensions: spec.extensions,
			Exclusions: spec.exclusions,
			Transforms: steps,
		})
	}

	return rules, nil
}

func buildSteps(specs []stepSpec) ([]domain.TransformStep, error) {
	steps := make([]domain.TransformStep, 0, len(specs))
	for _, spec := range specs {
		step, err := domain.NewTransformStep(spec.id, spec.opts)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step)
	}
	return steps, nil
}
