package lang

import "github.com/paulchernoch/shy/lang/value"

// votingThreshold decides whether t trues out of n votes satisfies a named
// voting function, per spec section 4.3. Each entry is the arithmetic
// definition verbatim, not an approximation.
type votingThreshold func(t, n int) bool

var votingThresholds = map[string]votingThreshold{
	"none":      func(t, n int) bool { return t == 0 },
	"one":       func(t, n int) bool { return t == 1 },
	"any":       func(t, n int) bool { return t >= 1 },
	"minority":  func(t, n int) bool { return t > 0 && 2*t < n },
	"half":      func(t, n int) bool { return 2*t >= n },
	"majority":  func(t, n int) bool { return 2*t > n },
	"twothirds": func(t, n int) bool { return 3*t >= 2*n },
	"allbutone": func(t, n int) bool { return n > 0 && t == n-1 },
	"all":       func(t, n int) bool { return t == n },
	"unanimous": func(t, n int) bool { return t == 0 || t == n },
}

// makeVotingHandler builds a Function handler enforcing the named voting
// threshold against the count of truthy args, per spec section 4.3. Each
// argument is Bool-coerced with the same false-ish rule used throughout the
// evaluator (0/0.0/Null/Error/empty-string/empty-list → false, else true).
func makeVotingHandler(threshold votingThreshold) func(args []value.Value) value.Value {
	return func(args []value.Value) value.Value {
		n := len(args)
		t := 0

		for _, a := range args {
			if a.Truthy() {
				t++
			}
		}

		return value.NewBool(threshold(t, n))
	}
}
