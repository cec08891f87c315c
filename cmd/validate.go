package cmd

import (
	"log/slog"

	"github.com/benn-herrera/luastubs/loader"
	"github.com/benn-herrera/luastubs/resolver"
	"github.com/benn-herrera/luastubs/validate"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate [api-document]",
	Short: "Check an API document without generating",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	docPath := cfg.Source.File
	if len(args) == 1 {
		docPath = args[0]
	}

	slog.Info("validating", "document", docPath)

	doc, err := loader.LoadDocument(docPath)
	if err != nil {
		return err
	}

	slog.Debug("document loaded",
		"modules", len(doc.Modules),
		"callbacks", len(doc.Callbacks),
		"format", loader.FormatForPath(docPath))

	resolvedTypes, err := resolver.Resolve(doc)
	if err != nil {
		return errors.Wrap(err, "resolving types")
	}
	slog.Debug("types resolved", "count", len(resolvedTypes))

	result := validate.Validate(doc, resolvedTypes)
	if !result.IsValid() {
		return errors.Newf("semantic validation failed:\n%s", result.Error())
	}

	slog.Info("validation passed")
	return nil
}
