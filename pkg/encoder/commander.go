// Package encoder translates cardinality constraints over boolean variables
// ("exactly one of these is true", "exactly k of these are true") into
// compact sets of CNF clauses with sub-quadratic clause counts.
package encoder

import (
	"fmt"

	"github.com/limaJavier/cardinality/pkg/sat"
	"github.com/samber/lo"
)

// Groups below this size are encoded directly: the recursion overhead is
// disproportionate to the clause savings for small arities.
const commanderGroupThreshold = 6

// CommanderOne emits clauses over the input variables and returns a
// "commander" literal that is true iff at least one of them is true, while
// at most one of them can be true overall. The mutual exclusion is
// established transitively through a recursive three-way group hierarchy
// (https://www.cs.cmu.edu/~wklieber/papers/2007_efficient-cnf-encoding-for-selecting-1.pdf).
func CommanderOne(formula *sat.Formula, variables []sat.Literal) (sat.Literal, error) {
	if len(variables) == 0 {
		return 0, fmt.Errorf("cannot build a commander over zero variables")
	}
	return commanderOne(formula, variables), nil
}

func commanderOne(formula *sat.Formula, variables []sat.Literal) sat.Literal {
	if len(variables) >= commanderGroupThreshold {
		chunkSize := (len(variables) + 2) / 3
		variables = lo.Map(lo.Chunk(variables, chunkSize), func(group []sat.Literal, _ int) sat.Literal {
			return commanderOne(formula, group)
		})
	}

	commander := formula.NewLiteral()

	// No two variables of the group can be true at once
	for i := range variables {
		for j := 0; j < i; j++ {
			formula.AddClause(variables[i].Negate(), variables[j].Negate())
		}
	}

	// A true commander requires at least one true variable
	atLeastOne := make([]sat.Literal, 0, len(variables)+1)
	atLeastOne = append(atLeastOne, variables...)
	atLeastOne = append(atLeastOne, commander.Negate())
	formula.AddClause(atLeastOne...)

	// A false commander forces every variable of the group false
	for _, variable := range variables {
		formula.AddClause(commander, variable.Negate())
	}

	return commander
}

// ExactlyOne emits clauses forcing exactly one of the variables to be true.
func ExactlyOne(formula *sat.Formula, variables []sat.Literal) error {
	if len(variables) == 0 {
		return fmt.Errorf("exactly-one constraint requires at least one variable")
	}
	commander := commanderOne(formula, variables)
	formula.AddClause(commander)
	return nil
}

// AtMostOne emits clauses forcing at most one of the variables to be true.
// The all-false assignment remains permitted. An empty variable list is
// vacuously satisfied and emits nothing.
func AtMostOne(formula *sat.Formula, variables []sat.Literal) error {
	if len(variables) == 0 {
		return nil
	}
	commander := commanderOne(formula, variables)
	// A false commander forbids every leaf input directly, not just the
	// top-level group members
	for _, variable := range variables {
		formula.AddClause(commander, variable.Negate())
	}
	return nil
}
