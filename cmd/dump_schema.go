package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/benn-herrera/luastubs/loader"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var dumpSchemaOutput string

var dumpSchemaCmd = &cobra.Command{
	Use:   "dump_schema",
	Short: "Print the built-in API document JSON Schema",
	Long:  "Prints the JSON Schema every API document is checked against before generation. Use -o to write to a file.",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema := loader.SchemaJSON()
		if dumpSchemaOutput == "" {
			fmt.Fprintln(cmd.OutOrStdout(), schema)
			return nil
		}
		if err := os.WriteFile(dumpSchemaOutput, []byte(schema+"\n"), 0644); err != nil {
			return errors.Wrapf(err, "writing schema to %s", dumpSchemaOutput)
		}
		slog.Info("schema written", "path", dumpSchemaOutput)
		return nil
	},
}

func init() {
	dumpSchemaCmd.Flags().StringVarP(&dumpSchemaOutput, "output", "o", "", "Write schema to file instead of stdout")
	rootCmd.AddCommand(dumpSchemaCmd)
}
