package problem

import (
	"encoding/json"
	"os"

	"github.com/mitchellh/mapstructure"
)

const (
	ExactlyOneConstraint = "exactlyOne"
	AtMostOneConstraint  = "atMostOne"
	ExactlyKConstraint   = "exactlyK"
)

type ConstraintInput struct {
	Type      string
	Variables []int64 // 1-based variable identifiers
	K         int     // Only meaningful for exactlyK constraints
}

type ProblemInput struct {
	Variables   uint64
	Constraints []ConstraintInput
}

func InputFromJson(file string) (ProblemInput, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return ProblemInput{}, err
	}

	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return ProblemInput{}, err
	}

	var input ProblemInput
	if err := mapstructure.Decode(inputJson, &input); err != nil {
		return ProblemInput{}, err
	}

	return input, nil
}
