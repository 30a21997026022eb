package wizard

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"shootbook/models"
)

// FieldErrors maps a field path such as "contact.value" to a user-facing
// message. An empty map means the input is valid.
type FieldErrors map[string]string

// add records msg for field unless an earlier rule already flagged it.
func (fe FieldErrors) add(field, msg string) {
	if _, exists := fe[field]; !exists {
		fe[field] = msg
	}
}

func (fe FieldErrors) merge(other FieldErrors) {
	for field, msg := range other {
		fe.add(field, msg)
	}
}

// Fields returns the flagged field paths in a stable order.
func (fe FieldErrors) Fields() []string {
	fields := make([]string, 0, len(fe))
	for f := range fe {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

// StepError blocks a forward transition out of Step.
type StepError struct {
	Step   models.WizardStep
	Fields FieldErrors
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s is invalid: %s", e.Step, strings.Join(e.Fields.Fields(), ", "))
}

var (
	ErrSessionSubmitted = errors.New("booking session already submitted")
	ErrNoPreviousStep   = errors.New("already at the first step")
	ErrSubmitFromReview = errors.New("review step is completed by submitting")
	ErrNotAtReview      = errors.New("booking can only be submitted from the review step")
)
