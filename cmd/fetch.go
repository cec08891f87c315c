package cmd

import (
	"log/slog"
	"time"

	"github.com/benn-herrera/luastubs/fetch"
	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

var (
	fetchURL     string
	fetchOutput  string
	fetchTimeout time.Duration
)

var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Download the API document",
	Args:  cobra.NoArgs,
	RunE:  runFetch,
}

func init() {
	fetchCmd.Flags().StringVar(&fetchURL, "url", "", "Location of the API document (default from config: source.url)")
	fetchCmd.Flags().StringVarP(&fetchOutput, "output", "o", "", "File to write (default from config: source.file)")
	fetchCmd.Flags().DurationVar(&fetchTimeout, "timeout", time.Minute, "Maximum duration of the transfer")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	res, err := fetch.Download(cmd.Context(), fetch.Options{
		URL:       stringOr(fetchURL, cfg.Source.URL),
		Dest:      stringOr(fetchOutput, cfg.Source.File),
		UserAgent: cfg.Source.UserAgent,
		Timeout:   fetchTimeout,
	})
	if err != nil {
		return err
	}

	slog.Info("fetched",
		"file", res.Path,
		"size", humanize.Bytes(uint64(res.Size)),
		"took", res.Duration.Round(time.Millisecond))
	return nil
}
