package cmd

import (
	"log/slog"
	"os"
	"time"

	"github.com/benn-herrera/luastubs/config"
	"github.com/cockroachdb/errors"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"
)

var (
	verbose    bool
	quiet      bool
	configPath string

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "luastubs",
	Short: "Lua Language Server annotation generator",
	Long:  "luastubs generates LuaLS annotation stubs, one file per module, from a structured API description document.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging()
		var err error
		cfg, err = config.LoadOrDefault(configPath, cmd.Flags().Changed("config"))
		return err
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", config.DefaultPath, "Path to config file")
}

func setupLogging() {
	level := slog.LevelInfo
	switch {
	case quiet:
		level = slog.LevelError
	case verbose:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	})))
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		slog.Error(err.Error())
		if hint := errors.FlattenHints(err); hint != "" {
			slog.Error("hint: " + hint)
		}
	}
	return err
}
