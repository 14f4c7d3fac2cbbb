package search

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"logweave/internal/ansi"
	"logweave/internal/chunk"
)

const buildOutput = "h\x1b[1mStarting karma\x1b[0m\n" +
	"o\x1b[36mDEBUG [plugin]: \x1b[39mLoading plugin karma-jasmine.\n" +
	"oDEBUG [plugin]: Loading plugin karma-chrome-launcher.\n" +
	"o\n" +
	"e\x1b[31mERROR\x1b[39m [launcher]: Cannot start Chrome\n" +
	"oplugin plugin plugin\n" +
	"e\x1b[48;5;71mDEBUG \x1b[38;5;72m[plugin]: \x1b[39mLoading...\n" +
	"oDone.\n"

func mustMatcher(t *testing.T, query string, mode Mode) *Matcher {
	t.Helper()

	m, err := NewMatcher(query, mode)
	require.NoError(t, err)

	return m
}

// lineOracle searches each stripped line on its own
func lineOracle(c chunk.Chunk, m *Matcher) []Result {
	results := []Result{}

	for i := 0; i < c.LineCount(); i++ {
		visible := ansi.StripLineEscapeCodes(c.Line(i))
		m.each(visible, func(pos, length int) {
			results = append(results, Result{LineIndex: c.FirstLine + i, LineStart: pos, LineEnd: pos + length})
		})
	}

	return results
}

func Test_FindInChunk(t *testing.T) {
	m := mustMatcher(t, "plugin", Plain)

	expected := []Result{
		{LineIndex: 11, LineStart: 7, LineEnd: 13},
		{LineIndex: 11, LineStart: 24, LineEnd: 30},
		{LineIndex: 12, LineStart: 7, LineEnd: 13},
		{LineIndex: 12, LineStart: 24, LineEnd: 30},
		{LineIndex: 15, LineStart: 0, LineEnd: 6},
		{LineIndex: 15, LineStart: 7, LineEnd: 13},
		{LineIndex: 15, LineStart: 14, LineEnd: 20},
		{LineIndex: 16, LineStart: 7, LineEnd: 13},
	}

	tracked := chunk.Parse(10, buildOutput, chunk.LogTypeStdio, false)
	eager := chunk.Parse(10, buildOutput, chunk.LogTypeStdio, true)

	untracked := tracked
	untracked.LinesWithEscapes = nil

	assert.Equal(t, expected, FindInChunk(tracked, m))
	assert.Equal(t, expected, FindInChunk(eager, m))
	assert.Equal(t, expected, FindInChunk(untracked, m))
}

func Test_FindInChunk_MatchesLineOracle(t *testing.T) {
	queries := []struct {
		query string
		mode  Mode
	}{
		{"plugin", Plain},
		{"DEBUG", Plain},
		{"Loading", Plain},
		{"e", Plain},
		{"ug", Plain},
		{".", Plain},
		{"Done.Starting", Plain},
		{"debug", CaseInsensitive},
		{"[plugin]", CaseInsensitive},
		{`\[\w+\]`, Regex},
		{`^DEBUG`, Regex},
		{`\.$`, Regex},
		{`karma-\w+`, RegexCaseInsensitive},
		{"31m", Plain},
		{"[", Plain},
	}

	variants := map[string]chunk.Chunk{
		"tracked": chunk.Parse(0, buildOutput, chunk.LogTypeStdio, false),
		"eager":   chunk.Parse(0, buildOutput, chunk.LogTypeStdio, true),
	}

	for _, q := range queries {
		for name, c := range variants {
			t.Run(fmt.Sprintf("%s/%s/%s", q.query, q.mode, name), func(t *testing.T) {
				m := mustMatcher(t, q.query, q.mode)
				assert.Equal(t, lineOracle(c, m), FindInChunk(c, m))
			})
		}
	}
}

func Test_FindInChunk_DoesNotMatchAcrossLines(t *testing.T) {
	c := chunk.Parse(0, "ab\ncd\n", chunk.LogTypeText, false)

	assert.Empty(t, FindInChunk(c, mustMatcher(t, "bc", Plain)))
	assert.Equal(t, []Result{{LineIndex: 1, LineStart: 0, LineEnd: 1}}, FindInChunk(c, mustMatcher(t, "c", Plain)))
}

func Test_FindInChunk_OverlappingCrossLineCandidate(t *testing.T) {
	c := chunk.Parse(0, "a\naa\n", chunk.LogTypeText, false)

	for _, mode := range []Mode{Plain, CaseInsensitive, Regex} {
		m := mustMatcher(t, "aa", mode)
		assert.Equal(t, []Result{{LineIndex: 1, LineStart: 0, LineEnd: 2}}, FindInChunk(c, m), mode.String())
	}
}

func Test_FindInChunk_EscapesDoNotShiftOffsets(t *testing.T) {
	c := chunk.Parse(0, "\x1b[1m\x1b[31mx\x1b[0m\x1b[32mneedle\x1b[0m\n", chunk.LogTypeText, false)

	assert.Equal(t, []Result{{LineIndex: 0, LineStart: 1, LineEnd: 7}}, FindInChunk(c, mustMatcher(t, "needle", Plain)))
}

func Test_FindInChunk_ManyLines(t *testing.T) {
	var b strings.Builder

	for i := 0; i < 300; i++ {
		switch {
		case i%37 == 0:
			fmt.Fprintf(&b, "o\x1b[33mwarn\x1b[0m at %d\n", i)
		case i%11 == 0:
			fmt.Fprintf(&b, "owarn at %d\n", i)
		default:
			b.WriteString("o\n")
		}
	}

	log := b.String()
	m := mustMatcher(t, "warn", Plain)

	tracked := chunk.Parse(0, log, chunk.LogTypeStdio, false)
	eager := chunk.Parse(0, log, chunk.LogTypeStdio, true)

	assert.Equal(t, lineOracle(tracked, m), FindInChunk(tracked, m))
	assert.Equal(t, lineOracle(eager, m), FindInChunk(eager, m))
	assert.Len(t, FindInChunk(tracked, m), 36)
}

func Test_FindInChunk_Empty(t *testing.T) {
	c := chunk.Parse(3, "", chunk.LogTypeStdio, false)

	assert.Empty(t, FindInChunk(c, mustMatcher(t, "x", Plain)))
}

func Test_FindInChunk_MergeEquivalence(t *testing.T) {
	lines := strings.SplitAfter(buildOutput, "\n")
	lines = lines[:len(lines)-1]

	matchers := []*Matcher{
		mustMatcher(t, "plugin", Plain),
		mustMatcher(t, "DEBUG", CaseInsensitive),
		mustMatcher(t, `\[\w+\]:`, Regex),
	}

	paths := []struct {
		name   string
		aEager bool
		bEager bool
	}{
		{"never shadow", false, false},
		{"always shadow", true, true},
		{"mixed left", true, false},
		{"mixed right", false, true},
	}

	for _, p := range paths {
		t.Run(p.name, func(t *testing.T) {
			for split := 0; split <= len(lines); split++ {
				a := chunk.Parse(50, strings.Join(lines[:split], ""), chunk.LogTypeStdio, p.aEager)
				b := chunk.Parse(50+split, strings.Join(lines[split:], ""), chunk.LogTypeStdio, p.bEager)

				merged, err := chunk.Merge(a, b)
				require.NoError(t, err)

				whole := chunk.Parse(50, buildOutput, chunk.LogTypeStdio, false)

				for _, m := range matchers {
					assert.Equal(t, FindInChunk(whole, m), FindInChunk(merged, m), "split %d query %s", split, m.Query())
				}
			}
		})
	}
}

func Test_ResultsToLineIndexMap(t *testing.T) {
	results := []Result{
		{LineIndex: 3, LineStart: 0, LineEnd: 1},
		{LineIndex: 3, LineStart: 4, LineEnd: 5},
		{LineIndex: 7, LineStart: 2, LineEnd: 3},
		{LineIndex: 9, LineStart: 0, LineEnd: 2},
		{LineIndex: 9, LineStart: 5, LineEnd: 6},
	}

	assert.Equal(t, map[int]int{3: 0, 7: 2, 9: 3}, ResultsToLineIndexMap(results))
	assert.Empty(t, ResultsToLineIndexMap(nil))

	cr := NewChunkResults(results)
	assert.True(t, cr.HasLine(7))
	assert.False(t, cr.HasLine(8))
}

func Test_FindInChunks(t *testing.T) {
	chunks := []chunk.Chunk{
		chunk.Parse(0, "oplugin a\n", chunk.LogTypeStdio, false),
		chunk.Parse(1, "onothing\n", chunk.LogTypeStdio, true),
		chunk.Parse(2, "o\x1b[1mplugin\x1b[0m b\n", chunk.LogTypeStdio, false),
	}

	results := FindInChunks(chunks, mustMatcher(t, "plugin", Plain))

	require.Len(t, results, 3)
	assert.Len(t, results[0].Results, 1)
	assert.Empty(t, results[1].Results)
	assert.Equal(t, []Result{{LineIndex: 2, LineStart: 0, LineEnd: 6}}, results[2].Results)
	assert.Equal(t, 2, Total(results))
}
