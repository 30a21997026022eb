package wizard

import (
	"math"

	"shootbook/models"
	"shootbook/services/pricing"
)

// Normalize recomputes the derived equipment block from the raw draft fields.
// It is pure and idempotent and runs after every field mutation, so the
// derived flags never drift from what the client entered.
func Normalize(d models.BookingDraft) models.BookingDraft {
	eff := d.Equipment
	duration := d.Schedule.DurationHours
	special := pricing.IsSpecialCity(d.Details.Location)
	if special {
		eff.NikonDslr = true
		if math.IsNaN(duration) || duration < pricing.SpecialCityMinHours {
			duration = pricing.SpecialCityMinHours
		}
	}

	derived := models.DerivedEquipment{
		Effective:     eff,
		ForcedDSLR:    special,
		DurationHours: duration,
		Package:       models.PackageNone,
		BillableHours: pricing.BillableHours(duration),
	}
	if caps, err := pricing.NormalizeEquipment(eff); err == nil {
		res := pricing.ResolvePackage(caps, duration, d.Details.Location)
		derived.Package = res.Package
		derived.BillableHours = res.Hours
		derived.IncludesCcdPhone = res.IncludesCcdPhone
	}

	d.Derived = derived
	return d
}

// DraftQuote prices a draft from its derived equipment and duration.
func DraftQuote(d models.BookingDraft, rates pricing.RateCard) models.PricingBreakdown {
	d = Normalize(d)
	return pricing.Quote(models.QuoteRequest{
		Equipment:              d.Derived.Effective,
		Location:               d.Details.Location,
		RequestedDurationHours: d.Derived.DurationHours,
		PeopleCount:            d.Schedule.PeopleCount,
		DslrAddonPhotos:        d.AddOns.DslrAddonPhotos,
		ExtraEdits:             d.AddOns.ExtraEdits,
	}, rates)
}
