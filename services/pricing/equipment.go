package pricing

import "shootbook/models"

// Capabilities is the projection of the five equipment flags onto what the
// package rules care about.
type Capabilities struct {
	HasCCD        bool `json:"hasCcd"`
	HasPhone      bool `json:"hasPhone"`
	HasCcdOrPhone bool `json:"hasCcdOrPhone"`
	HasDSLR       bool `json:"hasDslr"`
}

// NormalizeEquipment derives the capability flags. Selecting nothing is a
// ConstraintError and callers must not go on to pricing.
func NormalizeEquipment(sel models.EquipmentSelection) (Capabilities, error) {
	caps := Capabilities{
		HasCCD:   sel.CanonIxus980is || sel.HpCcd,
		HasPhone: sel.IphoneX || sel.Iphone13,
		HasDSLR:  sel.NikonDslr,
	}
	caps.HasCcdOrPhone = caps.HasCCD || caps.HasPhone

	if !sel.Any() {
		return caps, NewConstraintError("equipment", MsgNoEquipmentSelected)
	}
	return caps, nil
}
