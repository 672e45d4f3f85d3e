package config

import (
	"log/slog"
	"strings"

	"github.com/Veraticus/deslop/internal/model"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix for environment overrides, e.g. DESLOP_SENSITIVITY.
const EnvPrefix = "DESLOP"

// Viper keys.
const (
	KeySensitivity    = "sensitivity"
	KeyBlockTier1     = "block.tier1"
	KeyBlockTier2     = "block.tier2"
	KeyBlockTier3     = "block.tier3"
	KeyBlockEmojis    = "block.emojis"
	KeyBlockStopWords = "block.stop_words"
	KeyBlockEmDashes  = "block.em_dashes"
	KeyBlockPolitical = "block.political"
	KeyCustomPatterns = "custom_patterns"
	KeyWhitelist      = "whitelist"
	KeyScanMinLength  = "scan.min_length"
	KeyScanYouTubeMin = "scan.youtube_min_length"
	KeyScanWorkers    = "scan.workers"
	KeyDatabasePath   = "database.path"
	KeyLogLevel       = "logging.level"
	KeyLogFormat      = "logging.format"
	KeyTheme          = "ui.theme"
)

// Scan defaults.
const (
	DefaultMinLength        = 100
	DefaultYouTubeMinLength = 10
	DefaultWorkers          = 4
	DefaultDatabasePath     = "~/.local/share/deslop/deslop.db"
)

// Configure sets defaults and environment binding on v.
func Configure(v *viper.Viper) {
	defaults := model.DefaultConfiguration()

	v.SetDefault(KeySensitivity, defaults.Sensitivity)
	v.SetDefault(KeyBlockTier1, defaults.BlockTier1)
	v.SetDefault(KeyBlockTier2, defaults.BlockTier2)
	v.SetDefault(KeyBlockTier3, defaults.BlockTier3)
	v.SetDefault(KeyBlockEmojis, defaults.BlockEmojis)
	v.SetDefault(KeyBlockStopWords, defaults.BlockStopWords)
	v.SetDefault(KeyBlockEmDashes, defaults.BlockEmDashes)
	v.SetDefault(KeyBlockPolitical, defaults.BlockPolitical)
	v.SetDefault(KeyScanMinLength, DefaultMinLength)
	v.SetDefault(KeyScanYouTubeMin, DefaultYouTubeMinLength)
	v.SetDefault(KeyScanWorkers, DefaultWorkers)
	v.SetDefault(KeyDatabasePath, DefaultDatabasePath)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "console")
	v.SetDefault(KeyTheme, "default")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
}

// Load builds a configuration snapshot from v. It never fails: values that
// cannot be used are logged and replaced by their defaults.
func Load(v *viper.Viper) model.Configuration {
	cfg := model.DefaultConfiguration()

	if v.IsSet(KeySensitivity) {
		s := v.GetInt(KeySensitivity)
		if err := model.ValidateSensitivity(s); err != nil {
			slog.Warn("Ignoring invalid sensitivity", "value", v.Get(KeySensitivity), "default", cfg.Sensitivity)
		} else {
			cfg.Sensitivity = s
		}
	}

	cfg.BlockTier1 = boolOr(v, KeyBlockTier1, cfg.BlockTier1)
	cfg.BlockTier2 = boolOr(v, KeyBlockTier2, cfg.BlockTier2)
	cfg.BlockTier3 = boolOr(v, KeyBlockTier3, cfg.BlockTier3)
	cfg.BlockEmojis = boolOr(v, KeyBlockEmojis, cfg.BlockEmojis)
	cfg.BlockStopWords = boolOr(v, KeyBlockStopWords, cfg.BlockStopWords)
	cfg.BlockEmDashes = boolOr(v, KeyBlockEmDashes, cfg.BlockEmDashes)
	cfg.BlockPolitical = boolOr(v, KeyBlockPolitical, cfg.BlockPolitical)

	if v.IsSet(KeyCustomPatterns) {
		var custom []model.CustomPattern
		if err := v.UnmarshalKey(KeyCustomPatterns, &custom); err != nil {
			slog.Warn("Ignoring invalid custom_patterns", "error", err)
		} else {
			cfg.CustomPatterns = custom
		}
	}

	cfg.Whitelist = v.GetStringSlice(KeyWhitelist)

	return cfg
}

func boolOr(v *viper.Viper, key string, fallback bool) bool {
	if !v.IsSet(key) {
		return fallback
	}
	return v.GetBool(key)
}

// ScanSettings controls the batch scanner.
type ScanSettings struct {
	MinLength        int
	YouTubeMinLength int
	Workers          int
}

// MinLengthFor returns the minimum element length for a scan context.
func (s ScanSettings) MinLengthFor(ctx model.ScanContext) int {
	if ctx == model.ContextYouTube {
		return s.YouTubeMinLength
	}
	return s.MinLength
}

// LoadScan reads scan settings, replacing non-positive values with defaults.
func LoadScan(v *viper.Viper) ScanSettings {
	s := ScanSettings{
		MinLength:        v.GetInt(KeyScanMinLength),
		YouTubeMinLength: v.GetInt(KeyScanYouTubeMin),
		Workers:          v.GetInt(KeyScanWorkers),
	}
	if s.MinLength < 0 {
		s.MinLength = DefaultMinLength
	}
	if s.YouTubeMinLength < 0 {
		s.YouTubeMinLength = DefaultYouTubeMinLength
	}
	if s.Workers <= 0 {
		s.Workers = DefaultWorkers
	}
	return s
}

// DatabasePath returns the expanded database location.
func DatabasePath(v *viper.Viper) string {
	path := v.GetString(KeyDatabasePath)
	if path == "" {
		path = DefaultDatabasePath
	}
	return ExpandPath(path)
}
