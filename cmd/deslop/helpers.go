package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/service"
	"github.com/Veraticus/deslop/internal/storage"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// getDatabase returns a database connection and a cleanup function.
func getDatabase(ctx context.Context) (*storage.SQLiteStorage, func(), error) {
	dbPath := config.DatabasePath(viper.GetViper())

	// Open database
	db, err := storage.NewSQLiteStorage(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Run migrations
	if err := db.Migrate(ctx); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	cleanup := func() {
		if err := db.Close(); err != nil {
			slog.Error("Failed to close database", "error", err)
		}
	}

	return db, cleanup, nil
}

// loadOverrides composes stored tier overrides and custom patterns.
func loadOverrides(ctx context.Context, store service.Storage) (classification.Overrides, error) {
	var o classification.Overrides

	tiers, err := store.GetTierOverrides(ctx)
	if err != nil {
		return o, fmt.Errorf("failed to load tier overrides: %w", err)
	}
	o.Tier1 = tiers[model.CategoryTier1]
	o.Tier2 = tiers[model.CategoryTier2]
	o.Tier3 = tiers[model.CategoryTier3]

	custom, err := store.GetCustomPatterns(ctx)
	if err != nil {
		return o, fmt.Errorf("failed to load custom patterns: %w", err)
	}
	for _, r := range custom {
		o.Custom = append(o.Custom, r.CustomPattern)
	}

	return o, nil
}

// newClassifier builds a classifier with the stored overrides applied.
func newClassifier(ctx context.Context, store service.Storage) (*classification.Classifier, error) {
	c := classification.New()

	o, err := loadOverrides(ctx, store)
	if err != nil {
		return nil, err
	}
	if o.IsZero() {
		return c, nil
	}

	catalog := c.LoadCustomPatterns(o)
	if rejected := catalog.Rejected(); len(rejected) > 0 {
		slog.Warn("Some stored patterns were skipped", "count", len(rejected))
	}
	return c, nil
}

// loadWhitelist merges stored whitelist entries into cfg.
func loadWhitelist(ctx context.Context, store service.Storage, cfg *model.Configuration) error {
	entries, err := store.GetWhitelist(ctx)
	if err != nil {
		return fmt.Errorf("failed to load whitelist: %w", err)
	}
	for _, e := range entries {
		cfg.Whitelist = append(cfg.Whitelist, e.Entry)
	}
	return nil
}

// session bundles what most commands need.
type session struct {
	classifier *classification.Classifier
	store      *storage.SQLiteStorage
	cleanup    func()
	cfg        model.Configuration
}

// openSession loads configuration, storage and the classifier, applying any
// classification flags set on cmd.
func openSession(cmd *cobra.Command) (*session, error) {
	ctx := cmd.Context()

	cfg := config.Load(viper.GetViper())
	if err := applyClassificationFlags(cmd, &cfg); err != nil {
		return nil, err
	}

	store, cleanup, err := getDatabase(ctx)
	if err != nil {
		return nil, err
	}

	c, err := newClassifier(ctx, store)
	if err != nil {
		cleanup()
		return nil, err
	}

	if err := loadWhitelist(ctx, store, &cfg); err != nil {
		cleanup()
		return nil, err
	}

	return &session{classifier: c, store: store, cleanup: cleanup, cfg: cfg}, nil
}

// addClassificationFlags registers flags that adjust the configuration for one run.
func addClassificationFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("sensitivity", "s", model.DefaultSensitivity, "sensitivity 1 (lenient) to 5 (aggressive)")
	cmd.Flags().String("context", "", "scan context (youtube enables clickbait and low-effort checks)")
	cmd.Flags().Bool("emojis", false, "flag emoji spam")
	cmd.Flags().Bool("political", false, "flag political content")
}

// applyClassificationFlags overrides cfg with flags the user set explicitly.
func applyClassificationFlags(cmd *cobra.Command, cfg *model.Configuration) error {
	flags := cmd.Flags()

	if flags.Changed("sensitivity") {
		s, _ := flags.GetInt("sensitivity")
		if err := model.ValidateSensitivity(s); err != nil {
			return common.NewUserError("invalid --sensitivity", err)
		}
		cfg.Sensitivity = s
	}

	if flags.Changed("context") {
		ctx, _ := flags.GetString("context")
		sc, err := parseContext(ctx)
		if err != nil {
			return err
		}
		cfg.Context = sc
	}

	if flags.Changed("emojis") {
		cfg.BlockEmojis, _ = flags.GetBool("emojis")
	}
	if flags.Changed("political") {
		cfg.BlockPolitical, _ = flags.GetBool("political")
	}

	return nil
}

func parseContext(s string) (model.ScanContext, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "generic":
		return model.ContextGeneric, nil
	case "youtube":
		return model.ContextYouTube, nil
	default:
		return "", common.NewUserError(
			fmt.Sprintf("unknown context %q (use generic or youtube)", s),
			common.ErrInvalidConfig)
	}
}

// readInput returns the text from args, or stdin when args are empty or "-".
func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", common.NewUserError("no text to check; pass it as an argument or pipe it on stdin", errors.New("empty input"))
	}
	return text, nil
}
