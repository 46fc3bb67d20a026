package render

import (
	"fmt"
	"io"
	"path"
	"strings"

	"go.trai.ch/assemble/internal/core/domain"
	"go.trai.ch/assemble/internal/ui/output"
	"go.trai.ch/assemble/internal/ui/style"
)

const keyWidth = 8

// textWriter accumulates lines and remembers the first write error.
type textWriter struct {
	w   io.Writer
	s   style.Styles
	err error
}

func newTextWriter(w io.Writer) *textWriter {
	return &textWriter{w: w, s: style.NewStyles(output.NewRenderer(w))}
}

func (t *textWriter) line(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.w, format+"\n", args...)
}

func (t *textWriter) heading(title string) {
	t.line("%s", t.s.Heading.Render(title))
}

func (t *textWriter) field(key, value string) {
	t.line("  %s %s", t.s.Key.Render(fmt.Sprintf("%-*s", keyWidth, key)), value)
}

func (t *textWriter) bullet(name, rest string) {
	if rest == "" {
		t.line("  %s %s", t.s.Muted.Render(style.Dot), t.s.Key.Render(name))
		return
	}
	t.line("  %s %s  %s", t.s.Muted.Render(style.Dot), t.s.Key.Render(name), rest)
}

func writePlanText(w io.Writer, plan *domain.BuildPlan) error {
	t := newTextWriter(w)

	t.heading(fmt.Sprintf("Build plan (%s)", plan.Mode))
	t.field("entry", plan.Entry)
	devtool := plan.Devtool
	if devtool == "" {
		devtool = t.s.Muted.Render("(none)")
	}
	t.field("devtool", devtool)
	t.field("resolve", strings.Join(plan.Resolve.Extensions, " "))
	t.field("output", path.Join(plan.Output.Path, plan.Output.Filename))
	t.field("chunks", path.Join(plan.Output.Path, plan.Output.ChunkFilename))
	t.field("public", plan.Output.PublicPath)

	t.line("")
	t.heading("Rules")
	for _, r := range plan.Rules {
		rest := strings.Join(r.Extensions, " ")
		if len(r.Exclusions) > 0 {
			rest += t.s.Muted.Render(fmt.Sprintf("  (excludes %s)", strings.Join(r.Exclusions, ", ")))
		}
		t.bullet(r.Name, rest)
		t.line("    %s", strings.Join(r.StepIDs(), " "+style.Arrow+" "))
	}

	t.line("")
	t.heading("Plugins")
	for i, p := range plan.Plugins {
		t.line("  %d. %s", i+1, p.ID)
	}

	t.line("")
	t.heading("Optimization")
	opt := plan.Optimization
	if opt.MinimizeEnabled {
		t.field("minimize", t.s.Success.Render("yes"))
	} else {
		t.field("minimize", t.s.Muted.Render("no"))
	}
	if len(opt.Minimizers) > 0 {
		ids := make([]string, len(opt.Minimizers))
		for i, m := range opt.Minimizers {
			ids[i] = m.ID
		}
		t.field("using", strings.Join(ids, " "+style.Arrow+" "))
	}
	c := opt.Chunking
	t.field("split", fmt.Sprintf("chunks=%s minSize=%d maxInitialRequests=%d maxAsyncRequests=%d runtime=%s",
		c.Chunks, c.MinSize, c.MaxInitialRequests, c.MaxAsyncRequests, c.RuntimeChunk))
	for _, g := range c.CacheGroups {
		t.bullet(g.Key, cacheGroupAttrs(g))
	}

	if ds := plan.DevServer; ds != nil {
		t.line("")
		t.heading("Dev server")
		t.field("content", ds.ContentBase)
		t.field("flags", devServerFlags(ds))
	}

	return t.err
}

func cacheGroupAttrs(g domain.CacheGroup) string {
	var parts []string
	if g.Test != "" {
		parts = append(parts, "test="+g.Test)
	}
	if g.MinChunks > 0 {
		parts = append(parts, fmt.Sprintf("minChunks=%d", g.MinChunks))
	}
	parts = append(parts, fmt.Sprintf("priority=%d", g.Priority), "naming="+string(g.Naming))
	return strings.Join(parts, " ")
}

func devServerFlags(ds *domain.DevServer) string {
	flags := []struct {
		name string
		on   bool
	}{
		{"compress", ds.Compress},
		{"historyApiFallback", ds.HistoryAPIFallback},
		{"open", ds.Open},
		{"overlay", ds.Overlay},
	}

	var on []string
	for _, f := range flags {
		if f.on {
			on = append(on, f.name)
		}
	}
	if len(on) == 0 {
		return "(none)"
	}
	return strings.Join(on, " ")
}

func writeMatchesText(w io.Writer, matches []domain.FileMatch) error {
	t := newTextWriter(w)

	for _, m := range matches {
		if !m.Matched() {
			t.line("%s %s", m.Path, t.s.Failure.Render(style.Cross+" no matching rule"))
			continue
		}
		t.line("%s %s %s  %s", m.Path, style.Arrow, t.s.Key.Render(m.Rule),
			t.s.Muted.Render(strings.Join(m.Steps, " "+style.Arrow+" ")))
	}

	return t.err
}
