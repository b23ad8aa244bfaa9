package encoder

import (
	"fmt"

	"github.com/limaJavier/cardinality/pkg/sat"
)

// ExactlyK emits clauses forcing exactly k of the variables to be true. Each
// boundary case dispatches to the cheapest strategy: unit clauses for k = 0
// and k = n, the commander encoding for k = 1, and a sorting network with
// two threshold unit clauses otherwise.
func ExactlyK(formula *sat.Formula, variables []sat.Literal, k int) error {
	n := len(variables)
	if n == 0 {
		return fmt.Errorf("exactly-k constraint requires at least one variable")
	}
	if k < 0 || k > n {
		return fmt.Errorf("cannot force %d true variables out of %d", k, n)
	}

	switch {
	case k == 0:
		for _, variable := range variables {
			formula.AddClause(variable.Negate())
		}
	case k == n:
		for _, variable := range variables {
			formula.AddClause(variable)
		}
	case k == 1:
		return ExactlyOne(formula, variables)
	default:
		sorted := SortingNetwork(formula, variables)
		formula.AddClause(sorted[n-k-1].Negate()) // Fewer than k+1 inputs are true
		formula.AddClause(sorted[n-k])            // At least k inputs are true
	}

	return nil
}
