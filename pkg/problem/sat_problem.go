package problem

import (
	"fmt"

	"github.com/limaJavier/cardinality/pkg/encoder"
	"github.com/limaJavier/cardinality/pkg/sat"
	"github.com/samber/lo"
)

type satProblem struct {
	solver sat.SATSolver
}

func (problem *satProblem) Build(input ProblemInput) ([]bool, uint64, uint64, error) {
	formula := sat.NewFormula()
	literals := formula.NewLiterals(int(input.Variables))

	for i, constraint := range input.Constraints {
		constraintLiterals, err := problem.resolveLiterals(constraint, input.Variables, literals)
		if err != nil {
			return nil, 0, 0, fmt.Errorf("constraint %d: %v", i, err)
		}

		switch constraint.Type {
		case ExactlyOneConstraint:
			err = encoder.ExactlyOne(formula, constraintLiterals)
		case AtMostOneConstraint:
			err = encoder.AtMostOne(formula, constraintLiterals)
		case ExactlyKConstraint:
			err = encoder.ExactlyK(formula, constraintLiterals, constraint.K)
		default:
			err = fmt.Errorf("unknown constraint type %q", constraint.Type)
		}
		if err != nil {
			return nil, 0, 0, fmt.Errorf("constraint %d: %v", i, err)
		}
	}

	solution, err := problem.solver.Solve(formula)
	if err != nil {
		return nil, 0, 0, err
	} else if solution == nil { // Return nil if the formula is not satisfiable
		return nil, formula.Variables, uint64(len(formula.Clauses)), nil
	}

	// Project the solution back onto the original variables: auxiliary
	// literals allocated by the encodings are dropped
	assignment := make([]bool, input.Variables)
	for _, literal := range solution {
		variable := literal.Variable()
		if variable >= 1 && variable <= input.Variables {
			assignment[variable-1] = literal > 0
		}
	}

	return assignment, formula.Variables, uint64(len(formula.Clauses)), nil
}

func (problem *satProblem) Verify(assignment []bool, input ProblemInput) bool {
	if uint64(len(assignment)) != input.Variables {
		return false
	}

	for _, constraint := range input.Constraints {
		trueCount := lo.CountBy(constraint.Variables, func(variable int64) bool {
			return variable >= 1 && uint64(variable) <= input.Variables && assignment[variable-1]
		})

		switch constraint.Type {
		case ExactlyOneConstraint:
			if trueCount != 1 {
				return false
			}
		case AtMostOneConstraint:
			if trueCount > 1 {
				return false
			}
		case ExactlyKConstraint:
			if trueCount != constraint.K {
				return false
			}
		default:
			return false
		}
	}

	return true
}

func (problem *satProblem) resolveLiterals(constraint ConstraintInput, variables uint64, literals []sat.Literal) ([]sat.Literal, error) {
	resolved := make([]sat.Literal, len(constraint.Variables))
	for i, variable := range constraint.Variables {
		if variable < 1 || uint64(variable) > variables {
			return nil, fmt.Errorf("variable %d is outside [1, %d]", variable, variables)
		}
		resolved[i] = literals[variable-1]
	}
	return resolved, nil
}
