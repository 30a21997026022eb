package pricing

import "fmt"

// ConstraintError is a cross-field violation that blocks pricing and submission.
type ConstraintError struct {
	Field   string
	Message string
}

func (e *ConstraintError) Error() string {
	if e.Field == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func NewConstraintError(field, msg string) error {
	return &ConstraintError{
		Field:   field,
		Message: msg,
	}
}

// Messages surfaced on breakdowns and validation maps.
const (
	MsgNoEquipmentSelected = "no equipment selected"
	MsgSelectEquipment     = "select at least one equipment option"
	MsgOneHourDSLRCombo    = "1h DSLR: CCD/Phone unavailable - ignored"
	MsgCcdPhoneIncluded    = "CCD/Phone included free (≥2h DSLR)"
	MsgDSLRAsAddon         = "DSLR under 2h is offered as paid add-on photos"
	MsgAddonIgnoredDSLR    = "DSLR add-on photos ignored: the DSLR package already covers DSLR shots"
	MsgDSLRWithoutAddon    = "DSLR selected under 2h without add-on photos: DSLR not billed"
)
