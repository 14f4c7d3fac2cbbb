package search

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"logweave/internal/position"
)

var ErrInvalidPattern = errors.New("invalid search pattern")

// Mode selects how a query is matched
type Mode int

// Match modes
const (
	Plain Mode = iota
	CaseInsensitive
	Regex
	RegexCaseInsensitive
)

// ModeFor maps the two user-facing toggles to a match mode
func ModeFor(caseInsensitive, useRegex bool) Mode {
	switch {
	case useRegex && caseInsensitive:
		return RegexCaseInsensitive
	case useRegex:
		return Regex
	case caseInsensitive:
		return CaseInsensitive
	default:
		return Plain
	}
}

// String returns the mode name
func (m Mode) String() string {
	switch m {
	case Plain:
		return "plain"
	case CaseInsensitive:
		return "case-insensitive"
	case Regex:
		return "regex"
	case RegexCaseInsensitive:
		return "regex-case-insensitive"
	default:
		return fmt.Sprintf("mode(%d)", int(m))
	}
}

// Matcher finds non-empty occurrences of a query in text
type Matcher struct {
	mode  Mode
	query string
	re    *regexp.Regexp
}

// NewMatcher compiles a query for the given mode. Every mode except Plain goes
// through the regexp engine; literal queries are quoted first.
func NewMatcher(query string, mode Mode) (*Matcher, error) {
	m := &Matcher{mode: mode, query: query}

	if mode == Plain {
		return m, nil
	}

	pattern := query
	if mode == CaseInsensitive {
		pattern = regexp.QuoteMeta(query)
	}

	flags := "(?m)"
	if mode == CaseInsensitive || mode == RegexCaseInsensitive {
		flags = "(?im)"
	}

	re, err := regexp.Compile(flags + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPattern, err)
	}

	m.re = re

	return m, nil
}

// Mode returns the matcher's mode
func (m *Matcher) Mode() Mode {
	return m.mode
}

// Query returns the query the matcher was built from
func (m *Matcher) Query() string {
	return m.query
}

// Match returns the first non-empty match in text starting at or after from.
// Regular expressions are run again on text[from:], so a match may overlap
// one that an earlier call returned. Anchors see from as the start of input.
func (m *Matcher) Match(text string, from int) (pos, length int, ok bool) {
	if m.re == nil || m.query == "" {
		return m.scanner(text)(from)
	}

	for from >= 0 && from < len(text) {
		loc := m.re.FindStringIndex(text[from:])
		if loc == nil {
			return 0, 0, false
		}

		if loc[1] > loc[0] {
			return from + loc[0], loc[1] - loc[0], true
		}

		from += loc[0] + 1
	}

	return 0, 0, false
}

// scanFunc returns the next match at or after from
type scanFunc func(from int) (pos, length int, ok bool)

// scanner prepares left-to-right matching over one text. Regex matches are
// found once, leftmost-first and without overlap, then answered by binary
// search, so from must not point inside a match already returned.
// Zero-length regex matches are skipped.
func (m *Matcher) scanner(text string) scanFunc {
	if m.query == "" {
		return func(int) (int, int, bool) { return 0, 0, false }
	}

	if m.re == nil {
		return func(from int) (int, int, bool) {
			if from < 0 || from >= len(text) {
				return 0, 0, false
			}

			i := strings.Index(text[from:], m.query)
			if i < 0 {
				return 0, 0, false
			}

			return from + i, len(m.query), true
		}
	}

	all := m.re.FindAllStringIndex(text, -1)
	matches := make([][]int, 0, len(all))

	for _, loc := range all {
		if loc[1] > loc[0] {
			matches = append(matches, loc)
		}
	}

	byStart := func(loc []int, from int) int { return loc[0] - from }

	return func(from int) (int, int, bool) {
		i := position.GreaterEqualFunc(matches, from, byStart)
		if i >= len(matches) {
			return 0, 0, false
		}

		return matches[i][0], matches[i][1] - matches[i][0], true
	}
}

// each calls fn for every match in text, left to right
func (m *Matcher) each(text string, fn func(pos, length int)) {
	scan := m.scanner(text)

	for from := 0; from < len(text); {
		pos, length, ok := scan(from)
		if !ok {
			return
		}

		fn(pos, length)
		from = pos + length
	}
}
