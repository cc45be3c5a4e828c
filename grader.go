package main

import "strings"

const (
	// A guess qualifies as a fuzzy match when its similarity to a canonical
	// answer is at least matchCriteria and its edit distance is at most
	// matchMaxDistance.
	matchCriteria    = 0.6
	matchMaxDistance = 3
)

// guessLedger records which canonical answers have already been credited
// during the current round. The first player to land on a canonical answer
// takes that credit; later hits on the same answer are graded incorrect,
// even from a different player or via a different typo.
type guessLedger struct {
	credited []string
}

func (l *guessLedger) reset() {
	l.credited = l.credited[:0]
}

func (l *guessLedger) contains(canonical string) bool {
	for _, c := range l.credited {
		if c == canonical {
			return true
		}
	}
	return false
}

func (l *guessLedger) credit(canonical string) {
	l.credited = append(l.credited, canonical)
}

// closestMatches returns the canonical answers nearest to word under an
// edit-distance ceiling and a relative-similarity floor. Whenever a strictly
// closer candidate appears, previously collected matches are discarded, so
// the result only ever holds candidates tied at the minimal distance, in
// enumeration order. Comparison is case-insensitive.
func closestMatches(word string, candidates []string) []string {
	best := matchMaxDistance
	lowered := strings.ToLower(word)

	var matches []string
	for _, candidate := range candidates {
		length := max(len(lowered), len(candidate))
		if length == 0 {
			continue
		}

		score := levenshtein(lowered, strings.ToLower(candidate))
		similarity := float64(length-score) / float64(length)

		if similarity >= matchCriteria && score <= best {
			if score < best {
				best = score
				matches = matches[:0]
			}

			matches = append(matches, candidate)
		}
	}

	return matches
}

// gradeGuess decides whether content is an acceptable answer to q, given
// what this round's ledger has already credited. On a correct guess the
// matched canonical answer is recorded in the ledger and returned.
func gradeGuess(content string, q *Question, ledger *guessLedger) (correct bool, canonical string) {
	if q == nil {
		return false, ""
	}

	lowered := strings.ToLower(content)

	exact := ""
	for _, answer := range q.Answers {
		if strings.ToLower(answer) == lowered {
			exact = answer
			break
		}
	}

	similar := closestMatches(content, q.Answers)
	if exact == "" && len(similar) == 0 {
		return false, ""
	}

	// An exact hit has distance zero, so it is normally also the designated
	// fuzzy match; the fallback only fires for degenerate empty answers.
	matched := exact
	if len(similar) > 0 {
		matched = similar[0]
	}

	if ledger.contains(matched) {
		return false, ""
	}

	ledger.credit(matched)

	return true, matched
}
