package search

// NotFound is the cursor returned when navigation has nowhere to go
const NotFound = -1

// Total returns the number of results across all chunks
func Total(chunksResults []ChunkResults) int {
	total := 0
	for _, r := range chunksResults {
		total += len(r.Results)
	}

	return total
}

// validCursor reports whether (chunkIndex, indexInChunk) names an existing result
func validCursor(chunksResults []ChunkResults, chunkIndex, indexInChunk int) bool {
	if chunkIndex < 0 || chunkIndex >= len(chunksResults) {
		return false
	}

	return indexInChunk >= 0 && indexInChunk < len(chunksResults[chunkIndex].Results)
}

// FindNextSearchResult returns the cursor of the result after the given one,
// treating all chunks' results as one circular sequence. It returns
// (NotFound, NotFound) when the input cursor does not name a result.
func FindNextSearchResult(chunksResults []ChunkResults, chunkIndex, indexInChunk int) (int, int) {
	if !validCursor(chunksResults, chunkIndex, indexInChunk) {
		return NotFound, NotFound
	}

	if indexInChunk+1 < len(chunksResults[chunkIndex].Results) {
		return chunkIndex, indexInChunk + 1
	}

	n := len(chunksResults)
	for step := 1; step <= n; step++ {
		c := (chunkIndex + step) % n
		if len(chunksResults[c].Results) > 0 {
			return c, 0
		}
	}

	return NotFound, NotFound
}

// FindPrevSearchResult returns the cursor of the result before the given one,
// wrapping from the first result to the last
func FindPrevSearchResult(chunksResults []ChunkResults, chunkIndex, indexInChunk int) (int, int) {
	if !validCursor(chunksResults, chunkIndex, indexInChunk) {
		return NotFound, NotFound
	}

	if indexInChunk > 0 {
		return chunkIndex, indexInChunk - 1
	}

	n := len(chunksResults)
	for step := 1; step <= n; step++ {
		c := ((chunkIndex-step)%n + n) % n
		if count := len(chunksResults[c].Results); count > 0 {
			return c, count - 1
		}
	}

	return NotFound, NotFound
}

// FindFirstSearchResultFrom returns the first result on or after lineIndex,
// wrapping to the very first result when none follows
func FindFirstSearchResultFrom(chunksResults []ChunkResults, lineIndex int) (int, int) {
	first := [2]int{NotFound, NotFound}

	for c, r := range chunksResults {
		if len(r.Results) == 0 {
			continue
		}

		if first[0] == NotFound {
			first = [2]int{c, 0}
		}

		i := findLineGreaterEqual(r.Results, lineIndex)
		if i < len(r.Results) {
			return c, i
		}
	}

	return first[0], first[1]
}

// Resolve returns the result a cursor points at
func Resolve(chunksResults []ChunkResults, chunkIndex, indexInChunk int) (Result, bool) {
	if !validCursor(chunksResults, chunkIndex, indexInChunk) {
		return Result{}, false
	}

	return chunksResults[chunkIndex].Results[indexInChunk], true
}

// Ordinal returns the 1-based position of a cursor in the whole sequence, or 0
func Ordinal(chunksResults []ChunkResults, chunkIndex, indexInChunk int) int {
	if !validCursor(chunksResults, chunkIndex, indexInChunk) {
		return 0
	}

	return Total(chunksResults[:chunkIndex]) + indexInChunk + 1
}
