package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	version = "dev"
	rootCmd = &cobra.Command{
		Use:   "deslop",
		Short: "🤖 Detect low-effort generic writing before you post it",
		Long: `deslop: score text for AI-flavored phrasing, corporate buzzwords, marketing
spam and other slop, then show exactly which phrases tripped the filter and how
to rewrite them.

Less slop, more signal.`,
		PersistentPreRunE: initConfig,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/deslop/config.yaml)")
	rootCmd.PersistentFlags().String("log-level", "info", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.PersistentFlags().String("database", "", "database path (default: $HOME/.local/share/deslop/deslop.db)")

	// Bind flags to viper
	_ = viper.BindPFlag(config.KeyLogLevel, rootCmd.PersistentFlags().Lookup("log-level"))
	_ = viper.BindPFlag(config.KeyLogFormat, rootCmd.PersistentFlags().Lookup("log-format"))
	_ = viper.BindPFlag(config.KeyDatabasePath, rootCmd.PersistentFlags().Lookup("database"))

	// Add commands
	rootCmd.AddCommand(scoreCmd())
	rootCmd.AddCommand(checkCmd())
	rootCmd.AddCommand(highlightCmd())
	rootCmd.AddCommand(suggestCmd())
	rootCmd.AddCommand(thresholdsCmd())
	rootCmd.AddCommand(patternsCmd())
	rootCmd.AddCommand(customCmd())
	rootCmd.AddCommand(whitelistCmd())
	rootCmd.AddCommand(scanCmd())
	rootCmd.AddCommand(historyCmd())
	rootCmd.AddCommand(phrasebookCmd())
	rootCmd.AddCommand(interactiveCmd())
	rootCmd.AddCommand(versionCmd())
}

func main() {
	// Set up signal handling
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		slog.Debug("Received interrupt signal, shutting down gracefully...")
		cancel()
	}()

	err := rootCmd.ExecuteContext(ctx)
	cancel() // Always cleanup

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func initConfig(_ *cobra.Command, _ []string) error {
	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(config.ExpandPath(config.ConfigDir))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Defaults and environment variables
	config.Configure(viper.GetViper())

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// A broken config file falls back to defaults rather than failing.
			slog.Warn("Failed to read config, using defaults", "error", err)
		}
	}

	// Set up logging
	if err := setupLogging(); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func setupLogging() error {
	level, err := common.ParseLevel(viper.GetString(config.KeyLogLevel))
	if err != nil {
		return err
	}
	return common.SetupLogger(level, viper.GetString(config.KeyLogFormat))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "deslop %s\n", version)
		},
	}
}
