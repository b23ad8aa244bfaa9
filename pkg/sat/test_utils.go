package sat

import "math/rand"

func GenerateFormula(literals uint64, clauses int) *Formula {
	formula := NewFormula()
	formula.NewLiterals(int(literals))
	formula.Clauses = make([][]Literal, clauses)

	for i := 0; i < clauses; i++ {
		formula.Clauses[i] = make([]Literal, 0, literals)
		for j := uint64(0); j < literals; j++ {
			if rand.Float32() < 0.5 {
				var sign Literal = 1
				if rand.Float32() < 0.5 {
					sign = -1
				}
				formula.Clauses[i] = append(formula.Clauses[i], sign*Literal(1+j))
			}
		}

		if len(formula.Clauses[i]) == 0 {
			var sign Literal = 1
			if rand.Float32() < 0.5 {
				sign = -1
			}
			formula.Clauses[i] = append(formula.Clauses[i], sign*Literal(1+rand.Int63n(int64(literals))))
		}
	}

	return formula
}

func AssertSolution(formula *Formula, solution SATSolution) bool {
	// Make sure there are no duplicates nor contradictions
	literals := make(map[Literal]bool)
	for _, literal := range solution {
		if literals[literal] || literals[literal.Negate()] {
			return false
		}
		literals[literal] = true
	}

	// Check that all clauses are satisfied
	for _, clause := range formula.Clauses {
		satisfied := false
		for _, literal := range clause {
			if literals[literal] {
				satisfied = true
				break
			}
		}
		if !satisfied {
			return false
		}
	}

	return true
}
