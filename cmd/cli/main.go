package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/limaJavier/cardinality/pkg/problem"
	"github.com/limaJavier/cardinality/pkg/sat"
)

var (
	inputPath  = flag.String("input", "", "Path of the JSON file describing the variables and cardinality constraints.")
	solverName = flag.String("solver", "gophersat", "SAT solver to use: gophersat, gini, kissat or cadical.")
)

func main() {
	flag.Parse()

	if *inputPath == "" {
		log.Fatal("an input file must be provided via -input")
	}

	input, err := problem.InputFromJson(*inputPath)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	var solver sat.SATSolver
	switch *solverName {
	case "gophersat":
		solver = sat.NewGophersatSolver()
	case "gini":
		solver = sat.NewGiniSolver()
	case "kissat":
		solver = sat.NewKissatSolver()
	case "cadical":
		solver = sat.NewCadicalSolver()
	default:
		log.Fatalf("unknown solver %q", *solverName)
	}

	cardinalityProblem := problem.NewProblem(solver)

	assignment, variables, clauses, err := cardinalityProblem.Build(input)
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("Encoded %v variables and %v clauses\n", variables, clauses)

	if assignment == nil {
		fmt.Println("Not satisfiable")
		return
	}

	if !cardinalityProblem.Verify(assignment, input) {
		log.Fatal("Verification failed")
	}

	fmt.Print("True variables:")
	for i, value := range assignment {
		if value {
			fmt.Printf(" %v", i+1)
		}
	}
	fmt.Println()
}
