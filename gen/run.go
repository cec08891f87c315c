package gen

import (
	"log/slog"

	"github.com/cockroachdb/errors"
)

// Run executes every default generator against ctx and writes the combined
// output under dir. The directory is prepared (and removed first when clean
// is set) only when ctx.DryRun is false.
func Run(ctx *Context, dir string, clean bool) (WriteStats, error) {
	var files []*OutputFile
	for _, name := range DefaultGenerators() {
		g, ok := Get(name)
		if !ok {
			return WriteStats{}, errors.Newf("generator %s is not registered", name)
		}
		slog.Debug("running generator", "name", g.Name())

		out, err := g.Generate(ctx)
		if err != nil {
			return WriteStats{}, errors.Wrapf(err, "generator %s failed", name)
		}
		files = append(files, out...)
	}

	if !ctx.DryRun {
		if err := PrepareOutputDir(dir, clean); err != nil {
			return WriteStats{}, err
		}
	}
	return WriteFiles(dir, files, ctx.DryRun)
}
