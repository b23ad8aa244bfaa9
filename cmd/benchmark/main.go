package main

import (
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/cardinality/pkg/encoder"
	"github.com/limaJavier/cardinality/pkg/sat"
)

var sizes = []int{16, 64, 256, 1024, 4096}

func main() {
	writer := csv.NewWriter(os.Stdout)
	defer writer.Flush()

	if err := writer.Write([]string{"encoding", "n", "k", "variables", "clauses", "naiveClauses", "solveMilliseconds"}); err != nil {
		log.Fatalf("cannot write csv: %v", err)
	}

	solver := sat.NewGophersatSolver()

	for _, n := range sizes {
		writeRow(writer, "exactlyOne", n, 1, solver, func(formula *sat.Formula, variables []sat.Literal) error {
			return encoder.ExactlyOne(formula, variables)
		})
		writeRow(writer, "exactlyK", n, n/2, solver, func(formula *sat.Formula, variables []sat.Literal) error {
			return encoder.ExactlyK(formula, variables, n/2)
		})
	}
}

func writeRow(writer *csv.Writer, encoding string, n, k int, solver sat.SATSolver, encode func(*sat.Formula, []sat.Literal) error) {
	formula := sat.NewFormula()
	variables := formula.NewLiterals(n)

	if err := encode(formula, variables); err != nil {
		log.Fatalf("cannot encode %v over %v variables: %v", encoding, n, err)
	}

	start := time.Now()
	solution, err := solver.Solve(formula)
	if err != nil {
		log.Fatalf("cannot solve %v over %v variables: %v", encoding, n, err)
	} else if solution == nil {
		log.Fatalf("%v over %v variables is reported unsatisfiable", encoding, n)
	}
	elapsed := time.Since(start)

	// The naive pairwise encoding needs one clause per unordered pair to cap
	// the count and one more to reach it
	naiveClauses := n*(n-1)/2 + 1

	record := []string{
		encoding,
		fmt.Sprint(n),
		fmt.Sprint(k),
		fmt.Sprint(formula.Variables),
		fmt.Sprint(len(formula.Clauses)),
		fmt.Sprint(naiveClauses),
		fmt.Sprint(elapsed.Milliseconds()),
	}
	if err := writer.Write(record); err != nil {
		log.Fatalf("cannot write csv: %v", err)
	}
}
