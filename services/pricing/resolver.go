package pricing

import (
	"math"
	"strings"

	"shootbook/models"
)

const (
	// SpecialCity forces the DSLR package and a minimum billable duration.
	SpecialCity = "Quebec City"
	// DefaultCity is the reference location for the default rules.
	DefaultCity = "Montreal"

	SpecialCityMinHours = 4
	// DSLRIncludesCcdPhoneHours is the duration from which CCD/Phone come free with the DSLR.
	DSLRIncludesCcdPhoneHours = 2
	// MinAddonPhotos is the smallest DSLR add-on photo order.
	MinAddonPhotos = 3
)

// IsSpecialCity reports whether location gets the special-city rules.
func IsSpecialCity(location string) bool {
	return strings.EqualFold(strings.TrimSpace(location), SpecialCity)
}

// Resolution is the outcome of package and duration resolution.
type Resolution struct {
	Package          models.Package `json:"package"`
	Hours            int            `json:"hours"`
	IncludesCcdPhone bool           `json:"includesCcdPhone"`
	Notes            []string       `json:"notes"`
	Warnings         []string       `json:"warnings"`
	Errors           []string       `json:"errors"`
}

// BillableHours rounds a requested duration up to whole hours. Non-finite or
// non-positive durations bill as one hour.
func BillableHours(requested float64) int {
	if math.IsNaN(requested) || math.IsInf(requested, 0) || requested <= 0 {
		return 1
	}
	h := math.Ceil(requested)
	if h > math.MaxInt32 {
		return math.MaxInt32
	}
	return int(h)
}

// ResolvePackage picks the billing package and billable hours. Feeding the
// result back in with the same capabilities yields the same package and hours.
func ResolvePackage(caps Capabilities, requestedHours float64, location string) Resolution {
	res := Resolution{Hours: BillableHours(requestedHours)}

	switch {
	case caps.HasDSLR && res.Hours >= DSLRIncludesCcdPhoneHours:
		res.Package = models.PackageDSLR
		res.IncludesCcdPhone = true
	case caps.HasDSLR && caps.HasCcdOrPhone:
		res.Package = models.PackageCCDPhone
		res.Notes = append(res.Notes, MsgDSLRAsAddon)
	case caps.HasDSLR:
		res.Package = models.PackageDSLR
	case caps.HasCcdOrPhone:
		res.Package = models.PackageCCDPhone
	default:
		res.Package = models.PackageNone
		res.Errors = append(res.Errors, MsgSelectEquipment)
		return res
	}

	if res.Package == models.PackageDSLR && IsSpecialCity(location) && res.Hours < SpecialCityMinHours {
		res.Hours = SpecialCityMinHours
		res.IncludesCcdPhone = true
	}

	if res.Package == models.PackageDSLR {
		if res.Hours == 1 && caps.HasCcdOrPhone {
			res.Warnings = append(res.Warnings, MsgOneHourDSLRCombo)
		}
		if res.Hours >= DSLRIncludesCcdPhoneHours {
			res.Notes = append(res.Notes, MsgCcdPhoneIncluded)
		}
	}
	return res
}
