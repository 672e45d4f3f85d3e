package tui

import (
	"time"

	"github.com/Veraticus/deslop/internal/classification"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/tui/themes"
)

// DefaultDebounce is how long typing must pause before text is re-scored.
const DefaultDebounce = 300 * time.Millisecond

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Classifier    *classification.Classifier
	InitialText   string
	Configuration model.Configuration
	Debounce      time.Duration
	Width         int
	Height        int
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Configuration: model.DefaultConfiguration(),
		Debounce:      DefaultDebounce,
		Width:         80,
		Height:        24,
	}
}

// NewConfig applies opts over the defaults.
func NewConfig(opts ...Option) Config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Classifier == nil {
		cfg.Classifier = classification.New()
	}
	return cfg
}

// WithClassifier sets the classifier.
func WithClassifier(classifier *classification.Classifier) Option {
	return func(c *Config) {
		c.Classifier = classifier
	}
}

// WithConfiguration sets the starting classification settings.
func WithConfiguration(cfg model.Configuration) Option {
	return func(c *Config) {
		c.Configuration = cfg
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithDebounce sets the typing pause before re-scoring.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithText pre-fills the editor.
func WithText(text string) Option {
	return func(c *Config) {
		c.InitialText = text
	}
}
