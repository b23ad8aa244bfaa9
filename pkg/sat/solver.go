package sat

type SATSolver interface {
	Solve(*Formula) (SATSolution, error) // Returns a solution of the formula if satisfiable, else returns nil (these are valid outputs where error shall be nil)
}
