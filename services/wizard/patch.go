package wizard

import "shootbook/models"

// DraftPatch carries the fields a client changed. Nil fields are left alone.
type DraftPatch struct {
	Name          *string               `json:"name"`
	ContactMethod *models.ContactMethod `json:"contactMethod"`
	ContactValue  *string               `json:"contact"`

	ShootKind *models.ShootKind `json:"photoshootKind"`
	Location  *string           `json:"location"`
	Language  *string           `json:"language"`
	Notes     *string           `json:"notes"`

	Date          *string  `json:"date"`
	Time          *string  `json:"time"`
	DurationHours *float64 `json:"durationHours"`
	PeopleCount   *int     `json:"peopleCount"`

	CanonIxus980is *bool `json:"equipCanonIxus980is"`
	HpCcd          *bool `json:"equipHpCcd"`
	IphoneX        *bool `json:"equipIphoneX"`
	Iphone13       *bool `json:"equipIphone13"`
	NikonDslr      *bool `json:"equipNikonDslr"`

	DslrAddonPhotos      *int `json:"dslrAddonPhotos"`
	ClearDslrAddonPhotos bool `json:"clearDslrAddonPhotos"`
	ExtraEdits           *int `json:"extraEdits"`
}

// Apply returns d with the patch applied and re-normalized.
func Apply(d models.BookingDraft, p DraftPatch) models.BookingDraft {
	setString(&d.Contact.Name, p.Name)
	if p.ContactMethod != nil {
		d.Contact.Method = *p.ContactMethod
	}
	setString(&d.Contact.Value, p.ContactValue)

	if p.ShootKind != nil {
		d.Details.Kind = *p.ShootKind
	}
	setString(&d.Details.Location, p.Location)
	setString(&d.Details.Language, p.Language)
	setString(&d.Details.Notes, p.Notes)

	setString(&d.Schedule.Date, p.Date)
	setString(&d.Schedule.Time, p.Time)
	if p.DurationHours != nil {
		d.Schedule.DurationHours = *p.DurationHours
	}
	if p.PeopleCount != nil {
		d.Schedule.PeopleCount = *p.PeopleCount
	}

	setBool(&d.Equipment.CanonIxus980is, p.CanonIxus980is)
	setBool(&d.Equipment.HpCcd, p.HpCcd)
	setBool(&d.Equipment.IphoneX, p.IphoneX)
	setBool(&d.Equipment.Iphone13, p.Iphone13)
	setBool(&d.Equipment.NikonDslr, p.NikonDslr)

	switch {
	case p.ClearDslrAddonPhotos:
		d.AddOns.DslrAddonPhotos = nil
	case p.DslrAddonPhotos != nil:
		v := *p.DslrAddonPhotos
		d.AddOns.DslrAddonPhotos = &v
	}
	if p.ExtraEdits != nil {
		d.AddOns.ExtraEdits = *p.ExtraEdits
	}

	return Normalize(d)
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
