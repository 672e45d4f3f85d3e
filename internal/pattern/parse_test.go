package pattern

import (
	"testing"

	"github.com/Veraticus/deslop/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name       string
		literal    string
		wantSource string
		wantFlags  string
		wantGlobal bool
		wantErr    bool
	}{
		{
			name:       "global case-insensitive",
			literal:    `/\bsynergy\b/gi`,
			wantSource: `\bsynergy\b`,
			wantFlags:  "gi",
			wantGlobal: true,
		},
		{
			name:       "no flags",
			literal:    `/leverage/`,
			wantSource: "leverage",
		},
		{
			name:       "body containing slashes",
			literal:    `/and\/or/g`,
			wantSource: `and\/or`,
			wantFlags:  "g",
			wantGlobal: true,
		},
		{
			name:    "missing delimiters",
			literal: "synergy",
			wantErr: true,
		},
		{
			name:    "unknown flag",
			literal: "/synergy/gx",
			wantErr: true,
		},
		{
			name:    "duplicate flag",
			literal: "/synergy/gg",
			wantErr: true,
		},
		{
			name:    "empty body",
			literal: "//g",
			wantErr: true,
		},
		{
			name:    "backreference is rejected",
			literal: `/(a)\1/g`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := Parse(tt.literal)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, common.ErrInvalidPattern)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantSource, p.Source)
			assert.Equal(t, tt.wantFlags, p.Flags)
			assert.Equal(t, tt.wantGlobal, p.Global)
		})
	}
}

func TestMustParse_Panics(t *testing.T) {
	assert.Panics(t, func() { MustParse("not a literal") })
	assert.NotPanics(t, func() { MustParse(`/\bdelve\b/gi`) })
}

func TestPattern_Count(t *testing.T) {
	tests := []struct {
		name    string
		literal string
		text    string
		want    int
	}{
		{"global counts every occurrence", `/\bsynergy\b/gi`, "Synergy, synergy and SYNERGY.", 3},
		{"non-global counts at most one", `/\bsynergy\b/i`, "synergy synergy", 1},
		{"case-sensitive without i", `/\bSynergy\b/g`, "synergy Synergy", 1},
		{"no match", `/\bdelve\b/gi`, "nothing to see", 0},
		{"empty text", `/\bdelve\b/gi`, "", 0},
		{"multi-line anchors", `/^so\b/gim`, "So here.\nso there.", 2},
		{"unicode escape", `/\u2014/g`, "a \u2014 b \u2014 c", 2},
		{"braced unicode escape", `/[\u{1F680}]/gu`, "go \U0001F680 \U0001F680", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := MustParse(tt.literal)
			assert.Equal(t, tt.want, p.Count(tt.text))
		})
	}
}

func TestPattern_FindAllOffsets(t *testing.T) {
	p := MustParse(`/\bleverage\b/gi`)
	text := "We leverage and Leverage."

	spans := p.FindAll(text)
	require.Len(t, spans, 2)
	assert.Equal(t, "leverage", text[spans[0].Start:spans[0].End])
	assert.Equal(t, "Leverage", text[spans[1].Start:spans[1].End])
	assert.Equal(t, 8, spans[0].Len())
}

func TestPattern_String(t *testing.T) {
	assert.Equal(t, `/\bdelve\b/gi`, MustParse(`/\bdelve\b/gi`).String())
}

func TestTranslateEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `plain`},
		{`\u2014`, `\x{2014}`},
		{`[\u{1F300}-\u{1F9FF}]`, `[\x{1F300}-\x{1F9FF}]`},
		{`\\u2014`, `\\u2014`},
		{`\uZZZZ`, `\uZZZZ`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, translateEscapes(tt.in))
		})
	}
}
