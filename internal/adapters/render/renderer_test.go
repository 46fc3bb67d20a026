package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/assemble/internal/adapters/render"
	"go.trai.ch/assemble/internal/core/domain"
	"gopkg.in/yaml.v3"
)

func fixturePlan() *domain.BuildPlan {
	return &domain.BuildPlan{
		Mode:    domain.ModeProduction,
		Entry:   "./src/index.js",
		Resolve: domain.Resolve{Extensions: []string{".js", ".jsx"}},
		Rules: []domain.Rule{
			{
				Name:       domain.RuleScripts,
				Extensions: []string{".js", ".jsx"},
				Exclusions: []string{"**/node_modules/**"},
				Transforms: []domain.TransformStep{{ID: domain.StepBabel}, {ID: domain.StepESLint}},
			},
			{
				Name:       domain.RuleStyles,
				Extensions: []string{".css"},
				Transforms: []domain.TransformStep{{ID: domain.StepCSSExtract}, {ID: domain.StepCSS}},
			},
		},
		Plugins: []domain.Plugin{{ID: domain.PluginClean}, {ID: domain.PluginDefine}},
		Optimization: domain.OptimizationPolicy{
			MinimizeEnabled: true,
			Minimizers:      []domain.TransformStep{{ID: domain.MinimizerTerser}},
			Chunking: domain.ChunkingStrategy{
				Chunks:             "all",
				MaxInitialRequests: 20,
				MaxAsyncRequests:   20,
				RuntimeChunk:       domain.RuntimeChunkSingle,
				CacheGroups: []domain.CacheGroup{
					{Key: "vendors", Test: "**/node_modules/**", Priority: -10, Naming: domain.NamingPackage},
					{Key: "common", MinChunks: 2, Priority: -20, Naming: domain.NamingDefault},
				},
			},
		},
		Output: domain.Output{
			Filename:      "assets/js/[name].js",
			ChunkFilename: "assets/js/[name].chunk.js",
			Path:          "dist",
			PublicPath:    "/",
		},
		DevServer: &domain.DevServer{ContentBase: "./dist", Compress: true, Open: true},
	}
}

func fixtureMatches() []domain.FileMatch {
	return []domain.FileMatch{
		{Path: "src/index.js", Rule: domain.RuleScripts, Steps: []string{domain.StepBabel, domain.StepESLint}},
		{Path: "README.md"},
	}
}

func TestRenderer_Text(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().Render(&buf, fixturePlan(), domain.FormatText))

	g := goldie.New(t)
	g.Assert(t, "plan_text", buf.Bytes())
}

func TestRenderer_TextWithoutDevServer(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	plan := fixturePlan()
	plan.DevServer = nil
	plan.Devtool = "cheap-module-source-map"

	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().Render(&buf, plan, domain.FormatText))

	assert.NotContains(t, buf.String(), "Dev server")
	assert.Contains(t, buf.String(), "  devtool  cheap-module-source-map\n")
}

func TestRenderer_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().Render(&buf, fixturePlan(), domain.FormatJSON))

	var got domain.BuildPlan
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, domain.ModeProduction, got.Mode)
	assert.Equal(t, []string{domain.StepBabel, domain.StepESLint}, got.Rules[0].StepIDs())
	assert.Contains(t, buf.String(), "\n  \"mode\": \"production\",\n")
}

func TestRenderer_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().Render(&buf, fixturePlan(), domain.FormatYAML))

	var got map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "production", got["mode"])
	assert.Equal(t, "./src/index.js", got["entry"])
	assert.NotContains(t, got, "devtool")
}

func TestRenderer_UnknownFormat(t *testing.T) {
	var buf bytes.Buffer
	err := render.NewRenderer().Render(&buf, fixturePlan(), domain.FormatAuto)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
	assert.Empty(t, buf.String())

	err = render.NewRenderer().RenderMatches(&buf, fixtureMatches(), domain.Format("toml"))
	assert.ErrorContains(t, err, domain.ErrUnknownFormat.Error())
}

func TestRenderer_Matches(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	tests := []struct {
		format domain.Format
		golden string
	}{
		{domain.FormatText, "matches_text"},
		{domain.FormatJSON, "matches_json"},
	}

	for _, tt := range tests {
		t.Run(tt.format.String(), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, render.NewRenderer().RenderMatches(&buf, fixtureMatches(), tt.format))

			g := goldie.New(t)
			g.Assert(t, tt.golden, buf.Bytes())
		})
	}
}

func TestRenderer_MatchesYAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().RenderMatches(&buf, fixtureMatches(), domain.FormatYAML))

	var got []domain.FileMatch
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, fixtureMatches(), got)
	assert.NotContains(t, buf.String(), "rule: \"\"")
}

func TestRenderer_NoMatches(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.NewRenderer().RenderMatches(&buf, nil, domain.FormatJSON))
	assert.Equal(t, "[]\n", buf.String())
}
