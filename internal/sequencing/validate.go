package sequencing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/me/jobseq/pkg/model"
)

// ErrInvalidInput is matched by every *InvalidInputError.
var ErrInvalidInput = errors.New("invalid job input")

// InvalidInputError lists every problem found in a job set.
type InvalidInputError struct {
	Problems []model.FieldError
}

func (e *InvalidInputError) Error() string {
	msgs := make([]string, len(e.Problems))
	for i, p := range e.Problems {
		msgs[i] = p.String()
	}
	return fmt.Sprintf("%s: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func (e *InvalidInputError) Unwrap() error { return ErrInvalidInput }

// Validate checks that every job has a non-empty, unique ID and a deadline of at least 1.
// It returns nil or an *InvalidInputError.
func Validate(jobs []model.Job) error {
	var problems []model.FieldError
	seen := make(map[string]int, len(jobs))

	for i, j := range jobs {
		path := fmt.Sprintf("jobs[%d]", i)

		if j.ID == "" {
			problems = append(problems, model.FieldError{
				Field:   "id",
				Path:    path + ".id",
				Message: "required",
			})
		} else if first, dup := seen[j.ID]; dup {
			problems = append(problems, model.FieldError{
				Field:   "id",
				Path:    path + ".id",
				Message: fmt.Sprintf("duplicate id %q (first at jobs[%d])", j.ID, first),
			})
		} else {
			seen[j.ID] = i
		}

		if j.Deadline < 1 {
			problems = append(problems, model.FieldError{
				Field:   "deadline",
				Path:    path + ".deadline",
				Message: fmt.Sprintf("must be >= 1, got %d", j.Deadline),
			})
		}
	}

	if len(problems) > 0 {
		return &InvalidInputError{Problems: problems}
	}
	return nil
}
