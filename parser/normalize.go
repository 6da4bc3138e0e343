package parser

// mathItalicLowerStart is the codepoint of 𝑎, the first Mathematical
// Italic Small Latin Letter. The block skips italic h (U+1D455 is unassigned;
// italic lowercase h is instead the pre-existing Letterlike Symbols
// codepoint U+210E, PLANCK CONSTANT) so it is special-cased below.
const mathItalicLowerStart = 0x1D44E

const mathItalicH = 0x210E // ℎ, italic lowercase h
const mathItalicCapitalN = 0x1D441 // 𝑁
const mathItalicEpsilon = 0x1D700  // 𝜀, MATHEMATICAL ITALIC SMALL EPSILON
const unicodeAsteriskOperator = 0x2217 // ∗

// normalizationTable maps every accepted Unicode "mathematical" variant to
// its ASCII (or, for epsilon, canonical Greek) equivalent. It is built once
// and reused; per §9 DESIGN NOTES, a fixed translation table is sufficient
// for the accepted surface syntax and general NFC/NFKC normalization is
// explicitly out of scope.
var normalizationTable = buildNormalizationTable()

func buildNormalizationTable() map[rune]rune {
	t := make(map[rune]rune, 30)

	r := rune(mathItalicLowerStart)
	for c := 'a'; c <= 'z'; c++ {
		if c == 'h' {
			t[mathItalicH] = 'h'
			r++ // U+1D455 is the unassigned slot for h
			continue
		}
		t[r] = c
		r++
	}

	t[mathItalicCapitalN] = 'N'
	t[mathItalicEpsilon] = 'ε'
	t[unicodeAsteriskOperator] = '*'

	return t
}

// normalize maps Unicode mathematical italic letters, 𝑁, 𝜀, and the
// Unicode star ∗ to their canonical ASCII/Greek equivalents, leaving every
// other rune untouched. This runs as the parser's very first pass so that
// every later pass (escape handling, concatenation insertion, shunting
// yard) sees one consistent alphabet — §9 calls out the source's mistake
// of normalizing only selectively before the adjacency rule runs.
func normalize(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		if mapped, ok := normalizationTable[r]; ok {
			out = append(out, mapped)
			continue
		}
		out = append(out, r)
	}
	return string(out)
}

// isNormalized reports whether input is already a fixed point of
// normalize; used to test the idempotence property from §8.
func isNormalized(input string) bool {
	return normalize(input) == input
}
