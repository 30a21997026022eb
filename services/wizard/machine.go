package wizard

import (
	"time"

	"shootbook/models"
)

// ValidateStep runs the validator guarding the exit of step.
func ValidateStep(step models.WizardStep, d models.BookingDraft, now time.Time) FieldErrors {
	d = Normalize(d)
	switch step {
	case models.StepContact:
		return ValidateContact(d.Contact)
	case models.StepDetails:
		return ValidateDetails(d.Details)
	case models.StepSchedule:
		return ValidateSchedule(d.Schedule, d.AddOns.ExtraEdits, now)
	case models.StepEquipment:
		return ValidateEquipment(d)
	case models.StepReview:
		_, errs := ValidateFinal(d, now)
		return errs
	}
	return FieldErrors{}
}

// Next advances s one step when the current step validates. The review step
// is left only through Submit.
func Next(s models.BookingSession, now time.Time) (models.BookingSession, error) {
	switch s.Step {
	case models.StepSubmitted:
		return s, ErrSessionSubmitted
	case models.StepReview:
		return s, ErrSubmitFromReview
	}
	if errs := ValidateStep(s.Step, s.Draft, now); len(errs) > 0 {
		return s, &StepError{Step: s.Step, Fields: errs}
	}
	s.Step = offset(s.Step, 1)
	return s, nil
}

// Back moves s one step backwards without validating anything.
func Back(s models.BookingSession) (models.BookingSession, error) {
	switch s.Step {
	case models.StepSubmitted:
		return s, ErrSessionSubmitted
	case models.StepContact:
		return s, ErrNoPreviousStep
	}
	s.Step = offset(s.Step, -1)
	return s, nil
}

// Submit runs the final cross-step validation from the review step and
// returns the record to persist. The session is marked submitted; callers
// keep the previous session if persisting fails.
func Submit(s models.BookingSession, now time.Time) (models.BookingSession, *models.BookingRecord, error) {
	switch s.Step {
	case models.StepSubmitted:
		return s, nil, ErrSessionSubmitted
	case models.StepReview:
	default:
		return s, nil, ErrNotAtReview
	}
	rec, errs := ValidateFinal(s.Draft, now)
	if len(errs) > 0 {
		return s, nil, &StepError{Step: models.StepReview, Fields: errs}
	}
	s.Step = models.StepSubmitted
	return s, rec, nil
}

// Edit applies a patch to the session's draft. Submitted sessions are frozen.
func Edit(s models.BookingSession, p DraftPatch) (models.BookingSession, error) {
	if s.Step == models.StepSubmitted {
		return s, ErrSessionSubmitted
	}
	s.Draft = Apply(s.Draft, p)
	return s, nil
}

func offset(step models.WizardStep, delta int) models.WizardStep {
	for i, st := range models.WizardSteps {
		if st == step {
			j := i + delta
			if j < 0 || j >= len(models.WizardSteps) {
				return step
			}
			return models.WizardSteps[j]
		}
	}
	return models.StepContact
}
