// Package cli implements the fiocli example binary, a thin command-line
// surface over the fiogo client. One subcommand per bank endpoint.
package cli

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/fiosdk/fiogo"
	"github.com/fiosdk/fiogo/pkg/config"
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "fiocli",
	Short: "Query the Fio banka REST API from the command line",
	Long: `fiocli exercises every endpoint of the fiogo client library:
account movements, official statements, download bookmarks, payment order
imports and merchant card transactions.

The access token is read from the FIO_TOKEN environment variable or a .env
file in the working directory.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := slog.LevelInfo
		if verbose {
			level = slog.LevelDebug
		}
		logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
		slog.SetDefault(logger)
	},
}

// Execute runs the root command. Called once from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug output")
}

// newClient builds a client from the environment configuration.
func newClient() (*fiogo.Client, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, err
	}
	return fiogo.NewClient(cfg.Token,
		fiogo.WithBaseURL(cfg.BaseURL),
		fiogo.WithHTTPClient(&http.Client{Timeout: cfg.Timeout}),
	), nil
}
