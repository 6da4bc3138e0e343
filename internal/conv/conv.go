// Package conv bounds-checks the narrowing conversion this module's
// automaton arenas need when turning a state count (an int, from len()) into
// the uint32 StateID type nfa and dfa index by.
package conv

import "math"

// IntToUint32 converts n to uint32, panicking if n is negative or would
// overflow uint32. An overflow here means a pattern produced more states
// than a StateID can address, which is a bug in the construction code
// rather than something a caller can recover from.
func IntToUint32(n int) uint32 {
	if n < 0 || uint(n) > math.MaxUint32 {
		panic("conv: int value out of uint32 range")
	}
	return uint32(n)
}
