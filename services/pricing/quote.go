package pricing

import "shootbook/models"

// Quote runs normalizer, resolver and calculator over a raw request. It is
// cheap enough to call on every keystroke and safe to call redundantly.
func Quote(req models.QuoteRequest, rates RateCard) models.PricingBreakdown {
	caps, err := NormalizeEquipment(req.Equipment)
	var res Resolution
	if err != nil {
		res = Resolution{
			Package: models.PackageNone,
			Hours:   BillableHours(req.RequestedDurationHours),
			Errors:  []string{MsgSelectEquipment},
		}
	} else {
		res = ResolvePackage(caps, req.RequestedDurationHours, req.Location)
	}

	return Calculate(CalculationInput{
		Resolution:        res,
		Capabilities:      caps,
		Equipment:         req.Equipment,
		PeopleCount:       req.PeopleCount,
		AddonPhotos:       req.DslrAddonPhotos,
		ExtraEdits:        req.ExtraEdits,
		Location:          req.Location,
		TransportationFee: req.TransportationFee,
	}, rates)
}

// ExtraEditsBeyond converts a total requested edit count into the overage the
// calculator bills for.
func ExtraEditsBeyond(totalEdits, included int) int {
	return max(totalEdits-included, 0)
}
