package main

// levenshtein returns the minimum number of single-rune insertions,
// deletions, or substitutions needed to turn a into b.
//
// Identical strings and empty strings are handled up front; otherwise a
// shared prefix and suffix are trimmed before running the usual
// dynamic-programming pass over a single rolling row, so scratch space
// stays proportional to the shorter string.
func levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	first := []rune(a)
	second := []rune(b)

	if len(first) > len(second) {
		first, second = second, first
	}

	if len(first) == 0 {
		return len(second)
	}

	// Trim common suffix.
	firstLen := len(first)
	secondLen := len(second)
	for firstLen > 0 && first[firstLen-1] == second[secondLen-1] {
		firstLen--
		secondLen--
	}

	// Trim common prefix.
	start := 0
	for start < firstLen && first[start] == second[start] {
		start++
	}
	firstLen -= start
	secondLen -= start

	if firstLen == 0 {
		return secondLen
	}

	row := make([]int, firstLen)
	for i := range row {
		row[i] = i + 1
	}

	result := 0
	for j := 0; j < secondLen; j++ {
		bRune := second[start+j]
		diagonal := j
		result = j + 1

		for i := 0; i < firstLen; i++ {
			substitution := diagonal
			if bRune != first[start+i] {
				substitution++
			}
			diagonal = row[i]

			result = min(substitution, min(diagonal+1, result+1))
			row[i] = result
		}
	}

	return result
}
