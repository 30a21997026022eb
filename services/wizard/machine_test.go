package wizard

import (
	"errors"
	"testing"

	"shootbook/models"
)

func TestWizardForwardIsGated(t *testing.T) {
	s := models.BookingSession{Step: models.StepContact}

	_, err := Next(s, testNow)
	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("expected *StepError, got %v", err)
	}
	if stepErr.Step != models.StepContact {
		t.Errorf("step = %s, want contact", stepErr.Step)
	}

	s.Draft = validDraft()
	for _, want := range []models.WizardStep{models.StepDetails, models.StepSchedule, models.StepEquipment, models.StepReview} {
		s, err = Next(s, testNow)
		if err != nil {
			t.Fatalf("Next: %v", err)
		}
		if s.Step != want {
			t.Fatalf("step = %s, want %s", s.Step, want)
		}
	}

	if _, err := Next(s, testNow); !errors.Is(err, ErrSubmitFromReview) {
		t.Errorf("Next from review = %v, want ErrSubmitFromReview", err)
	}
}

func TestWizardBackNeverValidates(t *testing.T) {
	s := models.BookingSession{Step: models.StepEquipment}
	var err error
	for _, want := range []models.WizardStep{models.StepSchedule, models.StepDetails, models.StepContact} {
		s, err = Back(s)
		if err != nil {
			t.Fatalf("Back: %v", err)
		}
		if s.Step != want {
			t.Fatalf("step = %s, want %s", s.Step, want)
		}
	}
	if _, err := Back(s); !errors.Is(err, ErrNoPreviousStep) {
		t.Errorf("Back from contact = %v, want ErrNoPreviousStep", err)
	}
}

func TestWizardSubmit(t *testing.T) {
	s := models.BookingSession{Step: models.StepEquipment, Draft: validDraft()}
	if _, _, err := Submit(s, testNow); !errors.Is(err, ErrNotAtReview) {
		t.Fatalf("Submit before review = %v, want ErrNotAtReview", err)
	}

	s.Step = models.StepReview
	done, rec, err := Submit(s, testNow)
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if done.Step != models.StepSubmitted || rec == nil {
		t.Fatalf("step = %s, record = %v", done.Step, rec)
	}
	if s.Step != models.StepReview {
		t.Error("Submit must not modify the caller's session")
	}

	if _, err := Edit(done, DraftPatch{}); !errors.Is(err, ErrSessionSubmitted) {
		t.Errorf("Edit after submit = %v, want ErrSessionSubmitted", err)
	}
	if _, err := Back(done); !errors.Is(err, ErrSessionSubmitted) {
		t.Errorf("Back after submit = %v, want ErrSessionSubmitted", err)
	}
}

func TestEditRenormalizes(t *testing.T) {
	s := models.BookingSession{Step: models.StepEquipment, Draft: validDraft()}
	loc := "Quebec City"
	s, err := Edit(s, DraftPatch{Location: &loc})
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if !s.Draft.Derived.Effective.NikonDslr || s.Draft.Derived.BillableHours != 4 {
		t.Errorf("derived not refreshed: %+v", s.Draft.Derived)
	}

	addon := 5
	s, _ = Edit(s, DraftPatch{DslrAddonPhotos: &addon})
	if s.Draft.AddOns.DslrAddonPhotos == nil || *s.Draft.AddOns.DslrAddonPhotos != 5 {
		t.Fatal("add-on not applied")
	}
	s, _ = Edit(s, DraftPatch{ClearDslrAddonPhotos: true})
	if s.Draft.AddOns.DslrAddonPhotos != nil {
		t.Error("add-on not cleared")
	}
}
