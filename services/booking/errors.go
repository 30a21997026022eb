package booking

import "fmt"

const (
	CodeSlotUnavailable     = "slot_unavailable"
	CodeConstraintViolation = "constraint_violation"
)

// SubmissionError is returned when a booking record is refused at the
// persistence boundary.
type SubmissionError struct {
	Code    string
	Message string
	Fields  map[string]string
}

func (e *SubmissionError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewSlotUnavailableError() error {
	return &SubmissionError{
		Code:    CodeSlotUnavailable,
		Message: "the requested time overlaps an existing booking",
	}
}

func NewConstraintViolationError(fields map[string]string) error {
	return &SubmissionError{
		Code:    CodeConstraintViolation,
		Message: "booking record violates booking rules",
		Fields:  fields,
	}
}
