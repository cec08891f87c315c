package cmd

import (
	"log/slog"

	"github.com/benn-herrera/luastubs/gen"
	"github.com/benn-herrera/luastubs/loader"
	"github.com/benn-herrera/luastubs/model"
	"github.com/benn-herrera/luastubs/resolver"
	"github.com/benn-herrera/luastubs/validate"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	genOutput    string
	genExtension string
	genIndex     string
	genInclude   []string
	genExclude   []string
	genDryRun    bool
	genClean     bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [api-document]",
	Short: "Generate one annotation file per module plus the globals index",
	Long: "Generates one LuaLS annotation file per non-external module plus the globals index.\n" +
		"The output directory is removed and recreated first so files of renamed modules\n" +
		"do not linger; pass --clean=false to write over the existing directory instead.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	generateCmd.Flags().StringVarP(&genOutput, "output", "o", "", "Output directory (default from config: library)")
	generateCmd.Flags().StringVar(&genExtension, "extension", "", "Extension of module files (default from config: .lua)")
	generateCmd.Flags().StringVar(&genIndex, "index", "", "File name of the globals index (default from config: globals.lua)")
	generateCmd.Flags().StringSliceVar(&genInclude, "include", nil, "Only generate modules matching these globs (comma-separated)")
	generateCmd.Flags().StringSliceVar(&genExclude, "exclude", nil, "Skip modules matching these globs (comma-separated)")
	generateCmd.Flags().BoolVar(&genDryRun, "dry-run", false, "Show what would be generated without writing")
	generateCmd.Flags().BoolVar(&genClean, "clean", true, "Remove and recreate the output directory before writing (--clean=false keeps existing files)")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	docPath := cfg.Source.File
	if len(args) == 1 {
		docPath = args[0]
	}
	outDir := stringOr(genOutput, cfg.Output.Dir)

	slog.Info("generating", "document", docPath, "output", outDir)

	doc, err := loader.LoadDocument(docPath)
	if err != nil {
		return err
	}

	reportProblems(doc)

	include, exclude := cfg.Filter.Include, cfg.Filter.Exclude
	if cmd.Flags().Changed("include") {
		include = genInclude
	}
	if cmd.Flags().Changed("exclude") {
		exclude = genExclude
	}
	filter, err := gen.NewModuleFilter(include, exclude)
	if err != nil {
		return err
	}

	ctx := gen.NewContext(doc)
	ctx.Filter = filter
	ctx.Extension = stringOr(genExtension, cfg.Output.Extension)
	ctx.IndexName = stringOr(genIndex, cfg.Output.Index)
	ctx.DryRun = genDryRun

	stats, err := gen.Run(ctx, outDir, genClean)
	if err != nil {
		return err
	}

	if ctx.DryRun {
		slog.Info("dry run complete")
		return nil
	}
	slog.Info("generated", "files", stats.Files, "size", humanize.Bytes(uint64(stats.Bytes)), "dir", outDir)
	return nil
}

// reportProblems logs semantic problems in the document as warnings.
// Generation continues regardless.
func reportProblems(doc *model.Document) {
	types, err := resolver.Resolve(doc)
	if err != nil {
		slog.Warn("type resolution incomplete", "err", err)
	}
	result := validate.Validate(doc, types)
	for _, e := range result.Errors {
		slog.Warn("document problem", "path", e.Path, "message", e.Message)
	}
}

func stringOr(value, fallback string) string {
	if value != "" {
		return value
	}
	return fallback
}
