package ansi

import (
	"regexp"
	"strconv"
	"strings"

	"logweave/internal/overlay"
)

// CSI is the control sequence introducer that starts every recognised escape
const CSI = "\x1b["

// entryPattern matches the body of a control sequence that follows CSI:
// an optional ;-separated number list and a single letter terminator
var entryPattern = regexp.MustCompile(`^((?:\d+;)*\d+)?([A-Za-z])`)

// LineHasEscapes reports whether the line contains a control sequence introducer
func LineHasEscapes(line string) bool {
	return strings.Contains(line, CSI)
}

// parseEntry consumes the control sequence at the start of entry, which is the
// text following a CSI. It returns the remaining visible text and whether the
// sequence was an SGR instruction with its codes. Unrecognised sequences are
// restored as literal text. An SGR instruction with a parameter too large for
// an int is removed from the text but not applied.
func parseEntry(entry string) (text string, sgr bool, codes []int) {
	m := entryPattern.FindStringSubmatchIndex(entry)
	if m == nil {
		return CSI + entry, false, nil
	}

	text = entry[m[1]:]
	if entry[m[4]] != 'm' {
		return text, false, nil
	}

	if m[2] < 0 {
		return text, true, nil
	}

	params := strings.Split(entry[m[2]:m[3]], ";")
	codes = make([]int, 0, len(params))

	for _, p := range params {
		n, err := strconv.Atoi(p)
		if err != nil {
			return text, false, nil
		}

		codes = append(codes, n)
	}

	return text, true, codes
}

// ParseEscapeCodesToClasses interprets the escape sequences of a single line.
//
// It returns the visible text and one range per escape instruction boundary,
// each carrying the classes active for that stretch of text. Ranges are not
// coalesced even when neighbours render the same classes. A line without any
// CSI returns (line, nil). Style state always starts empty.
func ParseEscapeCodesToClasses(line string) (string, []overlay.Range) {
	if !LineHasEscapes(line) {
		return line, nil
	}

	entries := strings.Split(line, CSI)

	var (
		visible strings.Builder
		state   styleState
		classes string
	)

	ranges := make([]overlay.Range, 0, len(entries))
	visible.Grow(len(line))

	for i, entry := range entries {
		text := entry

		if i > 0 {
			var (
				sgr   bool
				codes []int
			)

			text, sgr, codes = parseEntry(entry)
			if sgr {
				state = applySGR(state, codes)
				classes = state.render()
			}
		}

		if text == "" {
			continue
		}

		start := visible.Len()
		visible.WriteString(text)

		ranges = append(ranges, overlay.Range{
			FirstPos: start,
			LastPos:  visible.Len(),
			Classes:  classes,
		})
	}

	return visible.String(), ranges
}

// StripLineEscapeCodes returns the visible text of a line: every recognised
// control sequence is removed and malformed ones are kept as literal text.
// The result always equals the text returned by ParseEscapeCodesToClasses.
func StripLineEscapeCodes(line string) string {
	if !LineHasEscapes(line) {
		return line
	}

	entries := strings.Split(line, CSI)

	var visible strings.Builder
	visible.Grow(len(line))
	visible.WriteString(entries[0])

	for _, entry := range entries[1:] {
		m := entryPattern.FindStringIndex(entry)
		if m == nil {
			visible.WriteString(CSI)
			visible.WriteString(entry)

			continue
		}

		visible.WriteString(entry[m[1]:])
	}

	return visible.String()
}
