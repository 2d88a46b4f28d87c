package report

import "slices"

// DefaultDelimiter is used whenever detection is inconclusive.
const DefaultDelimiter = ','

// delimiterCandidates are tried in preference order.
var delimiterCandidates = []byte{',', ';', '\t', '|'}

// minConsistency is the share of lines that must agree on a candidate's
// per-line count for the candidate to be accepted.
const minConsistency = 0.9

// SniffDelimiter guesses the field separator of a CSV sample.
//
// For every candidate it counts occurrences outside double quotes on each
// non-blank line and takes the most common count. A candidate qualifies when
// that count is positive and shared by at least 90% of lines. The most
// consistent candidate wins; ties go to the earlier candidate. Anything
// undecidable yields DefaultDelimiter.
func SniffDelimiter(sample []byte) rune {
	lines := sampleLines(sample)
	if len(lines) == 0 {
		return DefaultDelimiter
	}

	best := byte(0)
	bestScore := 0.0
	for ci, c := range delimiterCandidates {
		counts := make([]int, len(lines))
		for li, line := range lines {
			counts[li] = line[ci]
		}
		mode, share := modeOf(counts)
		if mode == 0 || share < minConsistency {
			continue
		}
		if share > bestScore {
			best, bestScore = c, share
		}
	}

	if best == 0 {
		return DefaultDelimiter
	}
	return rune(best)
}

// sampleLines scans the sample and returns, per non-blank line, the count of
// each candidate outside quotes. A trailing line without a newline is
// treated as cut off and dropped when at least one complete line exists.
func sampleLines(sample []byte) [][]int {
	var (
		lines   [][]int
		current = make([]int, len(delimiterCandidates))
		blank   = true
		inQuote bool
	)

	flush := func() {
		if !blank {
			lines = append(lines, current)
		}
		current = make([]int, len(delimiterCandidates))
		blank = true
	}

	for _, b := range sample {
		switch {
		case b == '"':
			inQuote = !inQuote
			blank = false
		case b == '\n' && !inQuote:
			flush()
		case b == '\r' || b == ' ':
		default:
			blank = false
			if inQuote {
				continue
			}
			if i := slices.Index(delimiterCandidates, b); i >= 0 {
				current[i]++
			}
		}
	}

	if !blank && len(lines) == 0 {
		lines = append(lines, current)
	}
	return lines
}

// modeOf returns the most frequent value in counts (larger value on ties)
// and the fraction of entries equal to it.
func modeOf(counts []int) (int, float64) {
	freq := make(map[int]int, len(counts))
	for _, c := range counts {
		freq[c]++
	}

	mode, hits := 0, 0
	for v, n := range freq {
		if n > hits || (n == hits && v > mode) {
			mode, hits = v, n
		}
	}
	return mode, float64(hits) / float64(len(counts))
}
