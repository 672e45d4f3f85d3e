package main

import (
	"bytes"
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/Veraticus/deslop/internal/config"
	"github.com/Veraticus/deslop/internal/model"
	"github.com/Veraticus/deslop/internal/testutil"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestEnv points viper at a fresh database for one test.
func setupTestEnv(t *testing.T) string {
	t.Helper()
	viper.Reset()
	config.Configure(viper.GetViper())
	dbPath := filepath.Join(t.TempDir(), "deslop.db")
	viper.Set(config.KeyDatabasePath, dbPath)
	t.Cleanup(viper.Reset)
	return dbPath
}

// runCommand executes cmd with args and returns combined output.
func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	if args == nil {
		// cobra falls back to os.Args for a nil slice
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestReadInput(t *testing.T) {
	tests := []struct {
		name    string
		stdin   string
		want    string
		args    []string
		wantErr bool
	}{
		{name: "joins args", args: []string{"hello", "world"}, want: "hello world"},
		{name: "reads stdin without args", stdin: "from stdin\n", want: "from stdin\n"},
		{name: "dash reads stdin", args: []string{"-"}, stdin: "piped", want: "piped"},
		{name: "empty stdin", stdin: "  \n", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			cmd.SetIn(strings.NewReader(tt.stdin))

			got, err := readInput(cmd, tt.args)
			if tt.wantErr {
				require.Error(t, err)
				var userErr *common.UserError
				assert.ErrorAs(t, err, &userErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseContext(t *testing.T) {
	tests := []struct {
		input   string
		want    model.ScanContext
		wantErr bool
	}{
		{input: "", want: model.ContextGeneric},
		{input: "generic", want: model.ContextGeneric},
		{input: " YouTube ", want: model.ContextYouTube},
		{input: "twitter", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseContext(tt.input)
			if tt.wantErr {
				assert.ErrorIs(t, err, common.ErrInvalidConfig)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestApplyClassificationFlags(t *testing.T) {
	tests := []struct {
		check   func(t *testing.T, cfg model.Configuration)
		name    string
		args    []string
		wantErr bool
	}{
		{
			name: "unset flags keep configuration",
			check: func(t *testing.T, cfg model.Configuration) {
				t.Helper()
				assert.Equal(t, model.DefaultConfiguration(), cfg)
			},
		},
		{
			name: "explicit flags override",
			args: []string{"-s", "5", "--context", "youtube", "--emojis", "--political"},
			check: func(t *testing.T, cfg model.Configuration) {
				t.Helper()
				assert.Equal(t, 5, cfg.Sensitivity)
				assert.Equal(t, model.ContextYouTube, cfg.Context)
				assert.True(t, cfg.BlockEmojis)
				assert.True(t, cfg.BlockPolitical)
			},
		},
		{
			name:    "out of range sensitivity",
			args:    []string{"--sensitivity", "9"},
			wantErr: true,
		},
		{
			name:    "unknown context",
			args:    []string{"--context", "tiktok"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &cobra.Command{}
			addClassificationFlags(cmd)
			require.NoError(t, cmd.ParseFlags(tt.args))

			cfg := model.DefaultConfiguration()
			err := applyClassificationFlags(cmd, &cfg)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			tt.check(t, cfg)
		})
	}
}

func TestLoadOverrides(t *testing.T) {
	ctx := context.Background()
	db := testutil.SetupTestDB(t)

	o, err := loadOverrides(ctx, db.Storage)
	require.NoError(t, err)
	assert.True(t, o.IsZero())

	db.SeedTierOverride(model.CategoryTier2, `/\bwidget\b/gi`)
	db.SeedCustomPattern(`/\bgizmo\b/gi`, 4)

	o, err = loadOverrides(ctx, db.Storage)
	require.NoError(t, err)
	assert.Nil(t, o.Tier1)
	assert.Equal(t, []string{`/\bwidget\b/gi`}, o.Tier2)
	require.Len(t, o.Custom, 1)
	assert.Equal(t, 4, o.Custom[0].Weight)

	c, err := newClassifier(ctx, db.Storage)
	require.NoError(t, err)
	result, _ := c.Evaluate("widget gizmo synergy", model.DefaultConfiguration())
	assert.Equal(t, 6, result.Total, "tier2 override replaces synergy; widget 2 + gizmo 4")
}

func TestLoadWhitelist(t *testing.T) {
	db := testutil.SetupTestDBWithOptions(t, testutil.TestDBOptions{
		Whitelist: []string{"https://www.example.com/", "news.ycombinator.com"},
	})

	cfg := model.DefaultConfiguration()
	cfg.Whitelist = []string{"from-config.org"}
	require.NoError(t, loadWhitelist(context.Background(), db.Storage, &cfg))

	assert.ElementsMatch(t, []string{"from-config.org", "example.com", "news.ycombinator.com"}, cfg.Whitelist)
}
