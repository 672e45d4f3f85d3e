package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sloppyPost = "Excited to announce our new release. We need to delve into this paradigm shift."

func TestScoreCmd(t *testing.T) {
	tests := []struct {
		name     string
		stdin    string
		contains []string
		args     []string
		wantErr  bool
	}{
		{
			name:     "text argument",
			args:     []string{sloppyPost},
			contains: []string{"Score: 9", "(threshold 9)"},
		},
		{
			name:     "stdin",
			stdin:    "Great synergy today",
			contains: []string{"Score: 2", "+2"},
		},
		{
			name:     "clean text",
			args:     []string{"Thanks for the clear walkthrough of the setup steps."},
			contains: []string{"Score: 0", "No patterns matched."},
		},
		{
			name:     "sensitivity flag changes threshold",
			args:     []string{"-s", "5", sloppyPost},
			contains: []string{"(threshold 4)"},
		},
		{
			name:    "invalid sensitivity",
			args:    []string{"--sensitivity", "0", sloppyPost},
			wantErr: true,
		},
		{
			name:    "empty input",
			stdin:   "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupTestEnv(t)
			output, err := runCommand(t, scoreCmd(), tt.stdin, tt.args...)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, common.IsUserError(err))
				return
			}
			require.NoError(t, err)
			for _, want := range tt.contains {
				assert.Contains(t, output, want)
			}
		})
	}
}

func TestCheckCmd(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, checkCmd(), "", "Great synergy today")
	require.NoError(t, err)
	assert.Contains(t, output, "Score: 2")
	assert.Contains(t, output, "Suggestions")
	assert.Contains(t, output, `"synergy"`)
	assert.Contains(t, output, "Advice")
}

func TestHighlightCmd_Spans(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, highlightCmd(), "", "--spans", "Great synergy today")
	require.NoError(t, err)
	assert.Equal(t, "6\t13\ttier2\t\"synergy\"\n", output)
}

func TestSuggestCmd(t *testing.T) {
	tests := []struct {
		name string
		want string
		args []string
	}{
		{name: "known phrase", args: []string{"delve", "into"}, want: "explore"},
		{name: "fallback by category", args: []string{"-c", "tier3", "zzz"}, want: "marketing spam"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			output, err := runCommand(t, suggestCmd(), "", tt.args...)
			require.NoError(t, err)
			assert.Contains(t, output, tt.want)
		})
	}
}

func TestThresholdsCmd(t *testing.T) {
	output, err := runCommand(t, thresholdsCmd(), "", "10")
	require.NoError(t, err)
	assert.Contains(t, output, "Sensitivity")
	assert.Contains(t, output, "*3")

	_, err = runCommand(t, thresholdsCmd(), "", "ten")
	require.Error(t, err)
	assert.True(t, common.IsUserError(err))
}

func TestCustomCmd(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, customCmd(), "", "add", `/\bwidget\b/gi`, "-w", "4")
	require.NoError(t, err)
	assert.Contains(t, output, "Added custom pattern #1")

	_, err = runCommand(t, customCmd(), "", "add", `/\bwidget\b/gi`)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	_, err = runCommand(t, customCmd(), "", "add", "widget")
	require.Error(t, err)
	assert.True(t, common.IsUserError(err))

	output, err = runCommand(t, customCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, `/\bwidget\b/gi`)

	output, err = runCommand(t, scoreCmd(), "", "widget and another widget")
	require.NoError(t, err)
	assert.Contains(t, output, "Score: 8")

	output, err = runCommand(t, customCmd(), "", "remove", "1")
	require.NoError(t, err)
	assert.Contains(t, output, "Removed custom pattern #1")

	_, err = runCommand(t, customCmd(), "", "remove", "1")
	assert.ErrorIs(t, err, common.ErrNotFound)

	output, err = runCommand(t, customCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "No custom patterns yet")
}

func TestWhitelistCmd(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, whitelistCmd(), "", "add", "https://www.Example.com/blog/")
	require.NoError(t, err)
	assert.Contains(t, output, "example.com/blog")

	_, err = runCommand(t, whitelistCmd(), "", "add", "example.com/blog")
	assert.ErrorIs(t, err, common.ErrDuplicateEntry)

	output, err = runCommand(t, whitelistCmd(), "", "check", "https://example.com/blog/post-1")
	require.NoError(t, err)
	assert.Contains(t, output, "is whitelisted")

	output, err = runCommand(t, whitelistCmd(), "", "check", "https://example.com/shop")
	require.NoError(t, err)
	assert.Contains(t, output, "is not whitelisted")

	output, err = runCommand(t, whitelistCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "example.com/blog")

	_, err = runCommand(t, whitelistCmd(), "", "remove", "example.com/blog")
	require.NoError(t, err)

	output, err = runCommand(t, whitelistCmd(), "", "list")
	require.NoError(t, err)
	assert.Contains(t, output, "The whitelist is empty.")
}

func TestPatternsImportExport(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()

	file := filepath.Join(dir, "overrides.yaml")
	content := `tier2:
  - /\bwidget\b/gi
  - /(unclosed/g
custom:
  - pattern: /\bgizmo\b/gi
    weight: 5
`
	require.NoError(t, os.WriteFile(file, []byte(content), 0o600))

	output, err := runCommand(t, patternsCmd(), "", "import", file)
	require.NoError(t, err)
	assert.Contains(t, output, "tier2: 2 patterns")
	assert.Contains(t, output, "custom: 1 added")
	assert.Contains(t, output, "will be skipped")

	output, err = runCommand(t, scoreCmd(), "", "synergy widget gizmo")
	require.NoError(t, err)
	assert.Contains(t, output, "Score: 7")

	exported := filepath.Join(dir, "export.yaml")
	_, err = runCommand(t, patternsCmd(), "", "export", exported)
	require.NoError(t, err)
	data, err := os.ReadFile(exported)
	require.NoError(t, err)
	assert.Contains(t, string(data), "widget")
	assert.Contains(t, string(data), "gizmo")

	output, err = runCommand(t, patternsCmd(), "", "reset", "--custom")
	require.NoError(t, err)
	assert.NotEmpty(t, output)

	output, err = runCommand(t, scoreCmd(), "", "synergy widget gizmo")
	require.NoError(t, err)
	assert.Contains(t, output, "Score: 2")
}

func TestPatternsImport_BadFile(t *testing.T) {
	setupTestEnv(t)
	file := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(file, []byte("tier1: [unclosed"), 0o600))

	_, err := runCommand(t, patternsCmd(), "", "import", file)
	require.Error(t, err)
	assert.True(t, common.IsUserError(err))
}

func TestPatternsExport_Builtin(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, patternsCmd(), "", "export", "--builtin")
	require.NoError(t, err)
	assert.Contains(t, output, "tier1:")
	assert.Contains(t, output, "synergy")
}

func TestPatternsList(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, patternsCmd(), "", "list")
	require.NoError(t, err)
	for _, name := range []string{"tier1", "tier2", "tier3", "political", "custom"} {
		assert.Contains(t, output, name)
	}
}

func TestPatternsTest(t *testing.T) {
	output, err := runCommand(t, patternsCmd(), "", "test", `/\bsynergy\b/gi`, "Synergy beats synergy")
	require.NoError(t, err)
	assert.Contains(t, output, "Counted matches: 2")

	_, err = runCommand(t, patternsCmd(), "", "test", "synergy", "text")
	require.Error(t, err)
	assert.True(t, common.IsUserError(err))
}

func TestScanAndHistory(t *testing.T) {
	setupTestEnv(t)
	dir := t.TempDir()

	notes := strings.Join([]string{
		sloppyPost,
		"Great synergy today",
		"Thanks for the clear walkthrough of the setup steps.",
	}, "\n\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(notes), 0o600))
	glob := filepath.Join(dir, "*.txt")

	output, err := runCommand(t, scanCmd(), "", glob, "--min-length", "0", "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, output, "notes.txt:1")
	assert.Contains(t, output, "notes.txt:2")
	assert.NotContains(t, output, "notes.txt:3")
	assert.Contains(t, output, "blocked")
	assert.Contains(t, output, "Scan Complete")

	output, err = runCommand(t, historyCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, output, glob)
}

func TestScan_WhitelistedURL(t *testing.T) {
	setupTestEnv(t)

	_, err := runCommand(t, whitelistCmd(), "", "add", "youtube.com")
	require.NoError(t, err)

	output, err := runCommand(t, scanCmd(), "first!\n", "-",
		"--context", "youtube", "--url", "https://www.youtube.com/watch?v=abc", "--no-progress")
	require.NoError(t, err)
	assert.Contains(t, output, "nothing was scanned")
}

func TestScan_NoMatches(t *testing.T) {
	setupTestEnv(t)

	_, err := runCommand(t, scanCmd(), "", filepath.Join(t.TempDir(), "*.md"), "--no-progress")
	require.Error(t, err)
	assert.True(t, common.IsUserError(err))
}

func TestHistory_Empty(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, historyCmd(), "")
	require.NoError(t, err)
	assert.Contains(t, output, "No scans yet")
}

func TestPhrasebookCmd(t *testing.T) {
	setupTestEnv(t)

	output, err := runCommand(t, phrasebookCmd(), "", "list", "--tier", "tier1", "--search", "delve")
	require.NoError(t, err)
	assert.Contains(t, output, "delve into")
	assert.NotContains(t, output, "thrilled to share")

	_, err = runCommand(t, phrasebookCmd(), "", "list", "--tier", "tier9")
	require.Error(t, err)

	_, err = runCommand(t, phrasebookCmd(), "", "spin", "--seed", "7", "--learn")
	require.NoError(t, err)
	_, err = runCommand(t, phrasebookCmd(), "", "spin", "--seed", "7")
	require.NoError(t, err)

	output, err = runCommand(t, phrasebookCmd(), "", "stats")
	require.NoError(t, err)
	assert.Contains(t, output, "Spins:   2")
	assert.Contains(t, output, "Learned: 1 of")
}

func TestVersionCmd(t *testing.T) {
	output, err := runCommand(t, versionCmd(), "")
	require.NoError(t, err)
	assert.Equal(t, "deslop dev\n", output)
}
