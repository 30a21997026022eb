package pricing

import (
	"math"

	"shootbook/models"
)

// CalculationInput is everything the calculator prices: a resolved package
// plus the quantities the client asked for.
type CalculationInput struct {
	Resolution   Resolution
	Capabilities Capabilities
	Equipment    models.EquipmentSelection
	PeopleCount  int
	// AddonPhotos is the raw requested DSLR add-on count; nil means none.
	AddonPhotos *int
	// ExtraEdits counts edits beyond the included ones, never the total.
	ExtraEdits        int
	Location          string
	TransportationFee *float64
}

// Calculate itemizes a quote. It never fails: invalid combinations come back
// as a NONE package with Errors, downgraded selections as Warnings.
func Calculate(in CalculationInput, rates RateCard) models.PricingBreakdown {
	res := in.Resolution
	hours := res.Hours
	if hours < 1 {
		hours = 1
	}
	people := in.PeopleCount
	if people < 1 {
		people = 1
	}

	b := models.PricingBreakdown{
		Package:          res.Package,
		Hours:            hours,
		PeopleCount:      people,
		Equipment:        in.Equipment,
		IncludesCcdPhone: res.IncludesCcdPhone,
		Inclusions:       append([]string{}, res.Notes...),
		Warnings:         append([]string{}, res.Warnings...),
		Errors:           append([]string{}, res.Errors...),
	}

	if res.Package != models.PackageCCDPhone && res.Package != models.PackageDSLR {
		b.Package = models.PackageNone
		if len(b.Errors) == 0 {
			b.Errors = append(b.Errors, MsgSelectEquipment)
		}
		return b
	}

	b.HourlyRate = rates.HourlyRate(b.Package, hours)
	b.BaseCost = b.HourlyRate * float64(hours)

	b.SurchargeRate = rates.SurchargeRate(b.Package)
	b.PeopleSurcharge = float64(people-1) * b.SurchargeRate * float64(hours)
	b.CoupleFee = b.PeopleSurcharge

	special := IsSpecialCity(in.Location)
	if special {
		b.CityFee = rates.CityFee
	}
	b.TransportationFee = transportationFee(in.TransportationFee, special, rates)

	requested := 0
	if in.AddonPhotos != nil && *in.AddonPhotos > 0 {
		requested = *in.AddonPhotos
	}
	switch {
	case requested > 0 && b.Package == models.PackageCCDPhone:
		b.AddonPhotos = max(requested, rates.MinAddonPhotos)
		b.AddonCost = float64(b.AddonPhotos) * rates.AddonPhotoPrice
	case requested > 0:
		b.Warnings = append(b.Warnings, MsgAddonIgnoredDSLR)
	case b.Package == models.PackageCCDPhone && in.Capabilities.HasDSLR:
		b.Warnings = append(b.Warnings, MsgDSLRWithoutAddon)
	}

	b.IncludedEdits = rates.IncludedEditsFor(b.Package, hours)
	b.ExtraEdits = max(in.ExtraEdits, 0)
	b.ExtraEditsCost = float64(b.ExtraEdits) * rates.ExtraEditPrice

	total := b.BaseCost + b.PeopleSurcharge + b.CityFee + b.TransportationFee + b.AddonCost + b.ExtraEditsCost
	b.Total = roundCents(math.Max(total, 0))
	return b
}

// transportationFee returns an explicit positive override (never below the
// minimum fee) or the special-city default.
func transportationFee(override *float64, special bool, rates RateCard) float64 {
	if override != nil && *override > 0 && !math.IsInf(*override, 0) {
		return math.Max(*override, rates.MinTransportationFee)
	}
	if special {
		return rates.MinTransportationFee
	}
	return 0
}

// roundCents rounds half-up to two decimals. The epsilon absorbs binary
// representation error so 10.005 rounds to 10.01.
func roundCents(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Floor(v*100+0.5+centsEpsilon) / 100
}

const centsEpsilon = 1e-6
