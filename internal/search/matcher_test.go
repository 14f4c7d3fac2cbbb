package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_ModeFor(t *testing.T) {
	assert.Equal(t, Plain, ModeFor(false, false))
	assert.Equal(t, CaseInsensitive, ModeFor(true, false))
	assert.Equal(t, Regex, ModeFor(false, true))
	assert.Equal(t, RegexCaseInsensitive, ModeFor(true, true))
	assert.Equal(t, "regex", Regex.String())
	assert.Equal(t, "mode(9)", Mode(9).String())
}

func Test_Matcher_Match(t *testing.T) {
	type match struct {
		pos    int
		length int
		ok     bool
	}

	tests := []struct {
		name     string
		query    string
		mode     Mode
		text     string
		from     int
		expected match
	}{
		{"plain hit", "err", Plain, "no error here", 0, match{3, 3, true}},
		{"plain from offset", "o", Plain, "foo boo", 3, match{5, 1, true}},
		{"plain is case sensitive", "ERR", Plain, "error", 0, match{}},
		{"plain treats metacharacters literally", "a.c", Plain, "abc a.c", 0, match{4, 3, true}},
		{"plain from past end", "a", Plain, "a", 1, match{}},
		{"case insensitive", "ERR", CaseInsensitive, "an Error", 0, match{3, 3, true}},
		{"case insensitive quotes metacharacters", "a.c", CaseInsensitive, "ABC A.C", 0, match{4, 3, true}},
		{"regex", `\d+ms`, Regex, "took 125ms", 0, match{5, 5, true}},
		{"regex from offset", `\d`, Regex, "1 2 3", 1, match{2, 1, true}},
		{"regex from inside previous match", "aa", Regex, "aaa", 1, match{1, 2, true}},
		{"case insensitive from inside previous match", "AA", CaseInsensitive, "aaa", 1, match{1, 2, true}},
		{"plain from inside previous match", "aa", Plain, "aaa", 1, match{1, 2, true}},
		{"regex skips zero length match at offset", `b*`, Regex, "abb", 0, match{1, 2, true}},
		{"regex from past end", "a", Regex, "a", 1, match{}},
		{"regex case insensitive", `fail(ed)?`, RegexCaseInsensitive, "Test FAILED", 0, match{5, 6, true}},
		{"zero length matches are skipped", `x*`, Regex, "abxxc", 0, match{2, 2, true}},
		{"only zero length matches", `^`, Regex, "abc", 0, match{}},
		{"empty query never matches", "", Plain, "abc", 0, match{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMatcher(tt.query, tt.mode)
			require.NoError(t, err)

			pos, length, ok := m.Match(tt.text, tt.from)
			if !tt.expected.ok {
				assert.False(t, ok)
				return
			}

			assert.True(t, ok)
			assert.Equal(t, tt.expected.pos, pos)
			assert.Equal(t, tt.expected.length, length)
		})
	}
}

func Test_NewMatcher_InvalidRegex(t *testing.T) {
	_, err := NewMatcher("(unclosed", Regex)
	assert.ErrorIs(t, err, ErrInvalidPattern)

	m, err := NewMatcher("(unclosed", CaseInsensitive)
	require.NoError(t, err)
	assert.Equal(t, "(unclosed", m.Query())
	assert.Equal(t, CaseInsensitive, m.Mode())
}
