// SPDX-License-Identifier: MIT
// Source: github.com/woozymasta/heatshrink

package heatshrink

// minMatchLen is the shortest back-reference the encoder will emit. A
// back-reference record costs 1+window_sz2+lookahead_sz2 bits; for typical
// parameters that's two literal bytes, so matches of length 2 break even
// and longer matches compress. Any threshold >= 2 stays decodable.
const minMatchLen = 2

// findLongestMatch searches windowStart..p (the sliding window immediately
// preceding p) for the longest prefix match against src[p:p+lookaheadLen].
// Ties are broken by picking the closest candidate (largest q), which
// minimizes index-field entropy and matches scanning q downward from p-1.
// Returns (distance, length); length is 0 if no match was found.
func findLongestMatch(src []byte, p, windowStart, lookaheadLen int) (distance, length int) {
	bestLen := 0
	bestQ := -1

	for q := p - 1; q >= windowStart; q-- {
		if bestLen > 0 && src[q+bestLen] != src[p+bestLen] {
			// Can't beat the current best without matching at its length;
			// skip the full comparison for this candidate.
			continue
		}

		l := commonPrefixLen(src, q, p, lookaheadLen)
		if l > bestLen {
			bestLen = l
			bestQ = q
			if bestLen == lookaheadLen {
				break
			}
		}
	}

	if bestQ < 0 {
		return 0, 0
	}
	return p - bestQ, bestLen
}

// commonPrefixLen returns how many leading bytes of src[p:] and src[q:]
// match, capped at maxLen. q < p is assumed; self-overlapping matches
// (q+l reaching into [p, p+maxLen)) are valid and intentional.
func commonPrefixLen(src []byte, q, p, maxLen int) int {
	l := 0
	for l < maxLen && src[q+l] == src[p+l] {
		l++
	}
	return l
}
