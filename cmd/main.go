package main

import (
	"fmt"
	"log"

	"github.com/limaJavier/cardinality/pkg/encoder"
	"github.com/limaJavier/cardinality/pkg/sat"
)

const (
	Tasks        = 12
	Slots        = 4
	TasksPerSlot = 3
)

func main() {
	formula := sat.NewFormula()

	// assigned[task][slot] is true iff the task runs in the slot
	assigned := make([][]sat.Literal, Tasks)
	for task := range assigned {
		assigned[task] = formula.NewLiterals(Slots)
	}

	// Every task runs in exactly one slot
	for task := 0; task < Tasks; task++ {
		if err := encoder.ExactlyOne(formula, assigned[task]); err != nil {
			log.Fatal(err)
		}
	}

	// Every slot holds exactly its share of tasks
	for slot := 0; slot < Slots; slot++ {
		column := make([]sat.Literal, Tasks)
		for task := 0; task < Tasks; task++ {
			column[task] = assigned[task][slot]
		}
		if err := encoder.ExactlyK(formula, column, TasksPerSlot); err != nil {
			log.Fatal(err)
		}
	}

	fmt.Printf("Encoded %v variables and %v clauses\n", formula.Variables, len(formula.Clauses))

	solver := sat.NewGophersatSolver()
	solution, err := solver.Solve(formula)
	if err != nil {
		log.Fatal(err)
	} else if solution == nil {
		fmt.Println("Not satisfiable")
		return
	}

	positive := make(map[sat.Literal]bool)
	for _, literal := range solution {
		if literal > 0 {
			positive[literal] = true
		}
	}

	for slot := 0; slot < Slots; slot++ {
		fmt.Printf("Slot %v:", slot)
		for task := 0; task < Tasks; task++ {
			if positive[assigned[task][slot]] {
				fmt.Printf(" task-%v", task)
			}
		}
		fmt.Println()
	}
}
