package pricing

import "shootbook/models"

// RateCard carries every monetary constant of the calculator. It is passed
// explicitly so independent drafts never share mutable pricing state.
type RateCard struct {
	CcdPhoneHourly       float64 `mapstructure:"RATE_CCD_PHONE_HOURLY"`
	DSLRSingleHour       float64 `mapstructure:"RATE_DSLR_SINGLE_HOUR"`
	DSLRHourly           float64 `mapstructure:"RATE_DSLR_HOURLY"`
	CcdPhoneSurcharge    float64 `mapstructure:"RATE_CCD_PHONE_SURCHARGE"`
	DSLRSurcharge        float64 `mapstructure:"RATE_DSLR_SURCHARGE"`
	CityFee              float64 `mapstructure:"RATE_CITY_FEE"`
	MinTransportationFee float64 `mapstructure:"RATE_MIN_TRANSPORTATION_FEE"`
	AddonPhotoPrice      float64 `mapstructure:"RATE_ADDON_PHOTO_PRICE"`
	MinAddonPhotos       int     `mapstructure:"RATE_MIN_ADDON_PHOTOS"`
	ExtraEditPrice       float64 `mapstructure:"RATE_EXTRA_EDIT_PRICE"`
	IncludedEdits        int     `mapstructure:"RATE_INCLUDED_EDITS"`
	BonusEditsPerHour    int     `mapstructure:"RATE_BONUS_EDITS_PER_HOUR"`
}

// DefaultRateCard returns the standard studio prices.
func DefaultRateCard() RateCard {
	return RateCard{
		CcdPhoneHourly:       35,
		DSLRSingleHour:       50,
		DSLRHourly:           40,
		CcdPhoneSurcharge:    10,
		DSLRSurcharge:        15,
		CityFee:              100,
		MinTransportationFee: 100,
		AddonPhotoPrice:      3,
		MinAddonPhotos:       MinAddonPhotos,
		ExtraEditPrice:       3,
		IncludedEdits:        4,
		BonusEditsPerHour:    2,
	}
}

// HourlyRate is the per-hour base price of a package.
func (r RateCard) HourlyRate(pkg models.Package, hours int) float64 {
	switch pkg {
	case models.PackageCCDPhone:
		return r.CcdPhoneHourly
	case models.PackageDSLR:
		if hours == 1 {
			return r.DSLRSingleHour
		}
		return r.DSLRHourly
	}
	return 0
}

// SurchargeRate is the per person-hour charge for each person beyond the first.
func (r RateCard) SurchargeRate(pkg models.Package) float64 {
	switch pkg {
	case models.PackageCCDPhone:
		return r.CcdPhoneSurcharge
	case models.PackageDSLR:
		return r.DSLRSurcharge
	}
	return 0
}

// IncludedEditsFor is the number of edits bundled into the base price. DSLR
// sessions of three hours or more earn bonus edits for every hour past two.
func (r RateCard) IncludedEditsFor(pkg models.Package, hours int) int {
	if pkg == models.PackageDSLR && hours >= 3 {
		return r.IncludedEdits + r.BonusEditsPerHour*(hours-2)
	}
	return r.IncludedEdits
}
