package problem

import (
	"os"
	"path"
	"testing"

	"github.com/limaJavier/cardinality/pkg/sat"
	"github.com/stretchr/testify/assert"
)

func TestBuild(t *testing.T) {
	t.Run("Satisfiable mix of constraints", func(t *testing.T) {
		// Arrange
		input := ProblemInput{
			Variables: 12,
			Constraints: []ConstraintInput{
				{Type: ExactlyOneConstraint, Variables: []int64{1, 2, 3, 4}},
				{Type: AtMostOneConstraint, Variables: []int64{4, 5, 6}},
				{Type: ExactlyKConstraint, Variables: []int64{5, 6, 7, 8, 9, 10, 11, 12}, K: 3},
			},
		}
		cardinalityProblem := NewProblem(sat.NewGophersatSolver())

		// Act
		assignment, variables, clauses, err := cardinalityProblem.Build(input)

		// Assert
		assert.Nil(t, err)
		assert.NotNil(t, assignment)
		assert.GreaterOrEqual(t, variables, input.Variables)
		assert.Greater(t, clauses, uint64(0))
		assert.True(t, cardinalityProblem.Verify(assignment, input))
	})

	t.Run("Unsatisfiable input returns nil assignment", func(t *testing.T) {
		// Arrange
		input := ProblemInput{
			Variables: 4,
			Constraints: []ConstraintInput{
				{Type: ExactlyOneConstraint, Variables: []int64{1, 2, 3, 4}},
				{Type: ExactlyOneConstraint, Variables: []int64{1, 2}},
				{Type: ExactlyOneConstraint, Variables: []int64{3, 4}},
			},
		}
		cardinalityProblem := NewProblem(sat.NewGophersatSolver())

		// Act
		assignment, _, _, err := cardinalityProblem.Build(input)

		// Assert
		assert.Nil(t, err)
		assert.Nil(t, assignment)
	})

	t.Run("Unknown constraint type is rejected", func(t *testing.T) {
		input := ProblemInput{
			Variables:   2,
			Constraints: []ConstraintInput{{Type: "someOfThem", Variables: []int64{1, 2}}},
		}

		_, _, _, err := NewProblem(sat.NewGophersatSolver()).Build(input)
		assert.NotNil(t, err)
	})

	t.Run("Out-of-range variable is rejected", func(t *testing.T) {
		input := ProblemInput{
			Variables:   2,
			Constraints: []ConstraintInput{{Type: ExactlyOneConstraint, Variables: []int64{1, 3}}},
		}

		_, _, _, err := NewProblem(sat.NewGophersatSolver()).Build(input)
		assert.NotNil(t, err)
	})
}

func TestVerify(t *testing.T) {
	input := ProblemInput{
		Variables: 4,
		Constraints: []ConstraintInput{
			{Type: ExactlyOneConstraint, Variables: []int64{1, 2}},
			{Type: ExactlyKConstraint, Variables: []int64{1, 2, 3, 4}, K: 2},
		},
	}
	cardinalityProblem := NewProblem(sat.NewGophersatSolver())

	assert.True(t, cardinalityProblem.Verify([]bool{true, false, false, true}, input))
	assert.False(t, cardinalityProblem.Verify([]bool{true, true, false, false}, input))
	assert.False(t, cardinalityProblem.Verify([]bool{true, false, true, true}, input))
	assert.False(t, cardinalityProblem.Verify([]bool{true, false}, input))
}

func TestInputFromJsonRejectsMalformedFields(t *testing.T) {
	// Arrange: valid JSON whose fields cannot decode into the input shape
	file := path.Join(t.TempDir(), "input.json")
	content := `{"variables": "six", "constraints": []}`
	assert.Nil(t, os.WriteFile(file, []byte(content), 0644))

	// Act
	_, err := InputFromJson(file)

	// Assert
	assert.NotNil(t, err)
}

func TestInputFromJson(t *testing.T) {
	// Arrange
	file := path.Join(t.TempDir(), "input.json")
	content := `{
		"variables": 6,
		"constraints": [
			{"type": "exactlyOne", "variables": [1, 2, 3]},
			{"type": "exactlyK", "variables": [4, 5, 6], "k": 2}
		]
	}`
	assert.Nil(t, os.WriteFile(file, []byte(content), 0644))

	// Act
	input, err := InputFromJson(file)

	// Assert
	assert.Nil(t, err)
	assert.Equal(t, uint64(6), input.Variables)
	assert.Len(t, input.Constraints, 2)
	assert.Equal(t, ExactlyOneConstraint, input.Constraints[0].Type)
	assert.Equal(t, []int64{4, 5, 6}, input.Constraints[1].Variables)
	assert.Equal(t, 2, input.Constraints[1].K)
}
