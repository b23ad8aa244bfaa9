package problem

import "github.com/limaJavier/cardinality/pkg/sat"

type Problem interface {
	Build(
		input ProblemInput,
	) (assignment []bool, variables uint64, clauses uint64, err error)

	Verify(
		assignment []bool,
		input ProblemInput,
	) bool
}

func NewProblem(solver sat.SATSolver) Problem {
	return &satProblem{solver: solver}
}
