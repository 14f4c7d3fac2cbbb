package search

import (
	"logweave/internal/overlay"
	"logweave/internal/position"
)

// Classes names the overlay classes used to mark matches. Begin and End are
// added to a match's first and last byte so renderers can draw its edges.
type Classes struct {
	Begin string
	Match string
	End   string
}

// OverlaySearchResultsOnLine layers every match of lineIndex onto the line's
// existing class partition and returns the new partition
func OverlaySearchResultsOnLine(chunkResults ChunkResults, lineIndex, lineLength int, existing []overlay.Range, classes Classes) []overlay.Range {
	i, ok := chunkResults.FirstByLine[lineIndex]
	if !ok {
		return existing
	}

	ranges := existing

	for ; i < len(chunkResults.Results) && chunkResults.Results[i].LineIndex == lineIndex; i++ {
		r := chunkResults.Results[i]

		switch r.LineEnd - r.LineStart {
		case 0:
			continue
		case 1:
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineStart, r.LineEnd,
				overlay.JoinClasses(classes.Begin, classes.Match, classes.End))
		case 2:
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineStart, r.LineStart+1,
				overlay.JoinClasses(classes.Begin, classes.Match))
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineStart+1, r.LineEnd,
				overlay.JoinClasses(classes.Match, classes.End))
		default:
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineStart, r.LineStart+1,
				overlay.JoinClasses(classes.Begin, classes.Match))
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineStart+1, r.LineEnd-1, classes.Match)
			ranges = overlay.AddOverlay(lineLength, ranges, r.LineEnd-1, r.LineEnd,
				overlay.JoinClasses(classes.Match, classes.End))
		}
	}

	return ranges
}

// findLineGreaterEqual returns the index of the first result on or after lineIndex
func findLineGreaterEqual(results []Result, lineIndex int) int {
	return position.GreaterEqualFunc(results, lineIndex, func(r Result, line int) int {
		return r.LineIndex - line
	})
}
