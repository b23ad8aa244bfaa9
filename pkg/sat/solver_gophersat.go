package sat

import (
	"github.com/crillab/gophersat/solver"
)

type gophersatSolver struct{}

// NewGophersatSolver returns an in-process solver backed by gophersat. Unlike
// the exec-based adapters it requires no external binary, which makes it the
// default choice for tests and benchmarks.
func NewGophersatSolver() SATSolver {
	return &gophersatSolver{}
}

func (gopher *gophersatSolver) Solve(formula *Formula) (SATSolution, error) {
	cnf := make([][]int, len(formula.Clauses))
	for i, clause := range formula.Clauses {
		cnf[i] = make([]int, len(clause))
		for j, literal := range clause {
			cnf[i][j] = int(literal)
		}
	}

	s := solver.New(solver.ParseSlice(cnf))
	if s.Solve() != solver.Sat {
		return nil, nil
	}

	model := s.Model()
	solution := make(SATSolution, 0, formula.Variables)
	for variable := uint64(1); variable <= formula.Variables; variable++ {
		value := false
		if variable <= uint64(len(model)) {
			value = model[variable-1]
		}
		if value {
			solution = append(solution, Literal(variable))
		} else {
			solution = append(solution, Literal(variable).Negate())
		}
	}
	return solution, nil
}
