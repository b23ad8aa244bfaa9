package sat

import (
	"fmt"
	"log"
	"strings"
)

// Literal references a boolean variable following the DIMACS convention:
// variable identifiers start at 1 and a negative value denotes the negation
// of the corresponding variable.
type Literal int64

// Negate flips the polarity of the literal. It never allocates and negating
// twice yields the original literal.
func (literal Literal) Negate() Literal {
	return -literal
}

// Variable returns the identifier of the underlying variable, regardless of
// polarity.
func (literal Literal) Variable() uint64 {
	if literal < 0 {
		return uint64(-literal)
	}
	return uint64(literal)
}

type SATSolution []Literal

// Formula is an append-only collection of CNF clauses plus a counter used to
// allocate fresh variables. It is the single mutable object threaded through
// every encoding call.
type Formula struct {
	Variables uint64
	Clauses   [][]Literal
}

func NewFormula() *Formula {
	return &Formula{}
}

// NewLiteral allocates a fresh variable and returns its positive literal.
// Identifiers are unique and monotonically assigned.
func (formula *Formula) NewLiteral() Literal {
	formula.Variables++
	return Literal(formula.Variables)
}

// NewLiterals allocates n fresh variables at once.
func (formula *Formula) NewLiterals(n int) []Literal {
	literals := make([]Literal, n)
	for i := range literals {
		literals[i] = formula.NewLiteral()
	}
	return literals
}

// AddClause appends the disjunction of the given literals to the formula.
// Clauses are copied on insertion and never mutated afterwards.
func (formula *Formula) AddClause(literals ...Literal) {
	if len(literals) == 0 {
		log.Panicf("cannot add an empty clause to a formula")
	}
	clause := make([]Literal, len(literals))
	copy(clause, literals)
	formula.Clauses = append(formula.Clauses, clause)
}

func (formula Formula) ToDIMACS() string {
	var builder strings.Builder
	fmt.Fprintf(&builder, "p cnf %d %d\n", formula.Variables, len(formula.Clauses))
	for _, clause := range formula.Clauses {
		for _, literal := range clause {
			fmt.Fprintf(&builder, "%d ", literal)
		}
		builder.WriteString("0\n")
	}
	return builder.String()
}
