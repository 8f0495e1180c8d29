package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Veraticus/transfers/internal/cli"
	"github.com/Veraticus/transfers/internal/clipboard"
	"github.com/Veraticus/transfers/internal/common"
	"github.com/Veraticus/transfers/internal/config"
	"github.com/Veraticus/transfers/internal/fetch"
	"github.com/Veraticus/transfers/internal/service"
	"github.com/Veraticus/transfers/internal/tui/themes"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var version = "dev"

// app holds the state shared by every subcommand.
type app struct {
	v         *viper.Viper
	clipboard service.Clipboard
	fetcher   service.TransactionFetcher
	logFile   io.Closer
	cfgFile   string
	envFile   string
	settings  config.Settings
}

func newRootCmd(a *app) *cobra.Command {
	if a.v == nil {
		a.v = viper.New()
	}
	if a.clipboard == nil {
		a.clipboard = clipboard.NewSystem()
	}

	rootCmd := &cobra.Command{
		Use:   "transfers",
		Short: "Browse money transfers from the terminal",
		Long: `transfers fetches the transfer list from the API and lets you search,
sort and inspect it, either interactively or as plain output for scripts.

Running transfers without a subcommand opens the interactive browser.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.initConfig,
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			a.closeLog()
		},
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: $HOME/.config/transfers/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&a.envFile, "env-file", "", "load environment variables from this file (default: ./.env when present)")
	rootCmd.PersistentFlags().String("endpoint", "", "transfer list URL")
	rootCmd.PersistentFlags().String("icons", "", "icon set (unicode, ascii)")
	rootCmd.PersistentFlags().String("log-level", "", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "", "log format (console, json)")

	// Bind flags to viper
	_ = a.v.BindPFlag("api.endpoint", rootCmd.PersistentFlags().Lookup("endpoint"))
	_ = a.v.BindPFlag("ui.icons", rootCmd.PersistentFlags().Lookup("icons"))
	_ = a.v.BindPFlag("logging.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag("logging.format", rootCmd.PersistentFlags().Lookup("log-format"))

	browse := browseCmd(a)
	rootCmd.RunE = browse.RunE
	rootCmd.Flags().AddFlagSet(browse.Flags())

	rootCmd.AddCommand(browse)
	rootCmd.AddCommand(listCmd(a))
	rootCmd.AddCommand(showCmd(a))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

func main() {
	err := newRootCmd(&app{}).ExecuteContext(context.Background())
	if err != nil {
		slog.Debug("Command failed", "error", err)
		fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
		os.Exit(1)
	}
}

func (a *app) initConfig(cmd *cobra.Command, _ []string) error {
	if err := config.LoadEnvFile(a.envFile); err != nil {
		return err
	}

	config.SetDefaults(a.v)
	config.BindEnv(a.v)
	if err := config.ReadFile(a.v, a.cfgFile); err != nil {
		return err
	}

	settings, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.settings = settings

	if err := a.setupLogging(cmd.ErrOrStderr(), isInteractive(cmd)); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	slog.Debug("Configuration loaded",
		"config", a.v.ConfigFileUsed(),
		"endpoint", settings.API.Endpoint,
		"icons", settings.UI.Icons,
		"sort", settings.UI.SortMode.String())
	return nil
}

// isInteractive reports whether cmd runs the full-screen browser.
func isInteractive(cmd *cobra.Command) bool {
	return cmd.Name() == "browse" || !cmd.HasParent()
}

// setupLogging sends logs to logging.file when set. Otherwise the browser
// discards them and the other commands write them to stderr.
func (a *app) setupLogging(stderr io.Writer, interactive bool) error {
	var w io.Writer = stderr
	switch {
	case a.settings.Logging.File != "":
		f, err := os.OpenFile(a.settings.Logging.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		a.logFile = f
		w = f
	case interactive:
		w = io.Discard
	}

	return common.SetupLogger(a.settings.Logging.Level, a.settings.Logging.Format, w)
}

func (a *app) closeLog() {
	if a.logFile != nil {
		_ = a.logFile.Close() // Best effort close
		a.logFile = nil
	}
}

// newFetcher returns the configured fetcher. Tests inject one through app.
func (a *app) newFetcher() service.TransactionFetcher {
	if a.fetcher != nil {
		return a.fetcher
	}
	return fetch.NewClient(a.settings.API.Endpoint,
		fetch.WithTimeout(a.settings.API.Timeout),
		fetch.WithMaxBodyBytes(a.settings.API.MaxBodyBytes),
	)
}

func (a *app) icons() (themes.IconSet, error) {
	icons, err := themes.LookupIcons(a.settings.UI.Icons)
	if err != nil {
		return themes.IconSet{}, fmt.Errorf("%w: %v", common.ErrInvalidConfig, err)
	}
	return icons, nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "transfers %s\n", version)
			return err
		},
	}
}
