package sat

import (
	"fmt"

	"github.com/go-air/gini"
	"github.com/go-air/gini/z"
)

type giniSolver struct{}

// NewGiniSolver returns an in-process solver backed by gini.
func NewGiniSolver() SATSolver {
	return &giniSolver{}
}

func (g *giniSolver) Solve(formula *Formula) (SATSolution, error) {
	engine := gini.New()
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			engine.Add(z.Dimacs2Lit(int(literal)))
		}
		engine.Add(z.LitNull)
	}

	switch engine.Solve() {
	case -1:
		return nil, nil
	case 1:
		// Fall through to model extraction
	default:
		return nil, fmt.Errorf("gini did not reach a verdict")
	}

	solution := make(SATSolution, 0, formula.Variables)
	for variable := uint64(1); variable <= formula.Variables; variable++ {
		value := false
		if z.Var(variable) <= engine.MaxVar() {
			value = engine.Value(z.Dimacs2Lit(int(variable)))
		}
		if value {
			solution = append(solution, Literal(variable))
		} else {
			solution = append(solution, Literal(variable).Negate())
		}
	}
	return solution, nil
}
