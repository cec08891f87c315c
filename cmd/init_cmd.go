package cmd

import (
	"log/slog"
	"os"

	"github.com/benn-herrera/luastubs/config"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

var (
	initOutput string
	initForce  bool
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a starter luastubs.toml",
	RunE:  runInit,
}

func init() {
	initCmd.Flags().StringVarP(&initOutput, "output", "o", config.DefaultPath, "Path of the config file to write")
	initCmd.Flags().BoolVarP(&initForce, "force", "f", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

func runInit(cmd *cobra.Command, args []string) error {
	if _, err := os.Stat(initOutput); err == nil && !initForce {
		return errors.WithHint(
			errors.Newf("%s already exists", initOutput),
			"pass --force to overwrite it")
	}

	if err := os.WriteFile(initOutput, []byte(config.Starter), 0644); err != nil {
		return errors.Wrapf(err, "writing %s", initOutput)
	}

	slog.Info("created", "path", initOutput)
	slog.Info("next: luastubs fetch && luastubs generate")
	return nil
}
