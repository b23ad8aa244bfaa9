package encoder

import (
	"log"

	"github.com/limaJavier/cardinality/pkg/sat"
	"github.com/samber/lo"
)

// swapTables maps an input size to a known minimal comparator sequence for
// that exact size. These are published optimal networks, reproduced rather
// than derived.
var swapTables = map[int][][2]int{
	2: {{0, 1}},
	3: {{0, 2}, {0, 1}, {1, 2}},
	4: {{0, 2}, {1, 3}, {0, 1}, {2, 3}, {1, 2}},
	5: {
		{0, 3}, {1, 4}, {0, 2}, {1, 3}, {0, 1},
		{2, 4}, {1, 2}, {3, 4}, {2, 3},
	},
	6: {
		{0, 5}, {1, 3}, {2, 4}, {1, 2}, {3, 4}, {0, 3},
		{2, 5}, {0, 1}, {2, 3}, {4, 5}, {1, 2}, {3, 4},
	},
	7: {
		{0, 6}, {2, 3}, {4, 5}, {0, 2}, {1, 4}, {3, 6}, {0, 1}, {2, 5},
		{3, 4}, {1, 2}, {4, 6}, {2, 3}, {4, 5}, {1, 2}, {3, 4}, {5, 6},
	},
}

// sortSwap is the comparator gate of the network: it allocates two fresh
// literals constrained to be the conjunction and the disjunction of the
// inputs. The 8 clauses cover all four input polarity combinations in both
// directions, so a solver cannot assign the outputs inconsistently.
func sortSwap(formula *sat.Formula, first, second sat.Literal) (sat.Literal, sat.Literal) {
	both := formula.NewLiteral()
	either := formula.NewLiteral()
	formula.AddClause(first, second, both.Negate())
	formula.AddClause(first, second, either.Negate())
	formula.AddClause(first, second.Negate(), both.Negate())
	formula.AddClause(first, second.Negate(), either)
	formula.AddClause(first.Negate(), second, both.Negate())
	formula.AddClause(first.Negate(), second, either)
	formula.AddClause(first.Negate(), second.Negate(), both)
	formula.AddClause(first.Negate(), second.Negate(), either)
	return both, either
}

// SortingNetwork returns len(variables) output literals constrained so that,
// in any satisfying assignment, output[i] is true iff at least len-i of the
// inputs are true: the true values are packed toward the tail. Sizes up to 7
// use the hardcoded tables; larger inputs go through a recursive Batcher-style
// odd-even construction.
func SortingNetwork(formula *sat.Formula, variables []sat.Literal) []sat.Literal {
	n := len(variables)
	outputs := make([]sat.Literal, n)
	copy(outputs, variables)

	if n <= 1 {
		return outputs
	}

	if swaps, ok := swapTables[n]; ok {
		for _, swap := range swaps {
			l, r := swap[0], swap[1]
			outputs[l], outputs[r] = sortSwap(formula, outputs[l], outputs[r])
		}
		return outputs
	}

	// Pad up to the next multiple of 4 with variables forced true: they sort
	// to the tail, which is exactly the part truncated away below. Padding
	// with false would flip the end the real data occupies. The multiple-of-4
	// length keeps every recursive half even, which the even/odd split of the
	// concatenation relies on.
	padding := (4 - n%4) % 4
	for i := 0; i < padding; i++ {
		literal := formula.NewLiteral()
		formula.AddClause(literal)
		outputs = append(outputs, literal)
	}

	// Sort both halves independently
	half := len(outputs) / 2
	left := SortingNetwork(formula, outputs[:half])
	right := SortingNetwork(formula, outputs[half:])

	merged := make([]sat.Literal, 0, len(outputs))
	merged = append(merged, left...)
	merged = append(merged, right...)

	// Sort the even and odd subsequences, then re-interleave them
	evens := SortingNetwork(formula, lo.Filter(merged, func(_ sat.Literal, index int) bool {
		return index%2 == 0
	}))
	odds := SortingNetwork(formula, lo.Filter(merged, func(_ sat.Literal, index int) bool {
		return index%2 == 1
	}))
	if len(evens) != len(odds) {
		log.Panicf("uneven interleave: %d even positions against %d odd positions", len(evens), len(odds))
	}

	interleaved := make([]sat.Literal, 0, len(outputs))
	for i := range evens {
		interleaved = append(interleaved, evens[i], odds[i])
	}

	// One comparator pass over adjacent pairs at odd positions fixes the
	// residual local disorder left by the interleave
	for i := 1; i+1 < len(interleaved); i += 2 {
		interleaved[i], interleaved[i+1] = sortSwap(formula, interleaved[i], interleaved[i+1])
	}

	return interleaved[:len(interleaved)-padding]
}
