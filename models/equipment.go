package models

// EquipmentSelection holds the five independent equipment choices of a booking.
// The Canon and HP are CCD cameras, the two iPhones are phones and the Nikon is the DSLR.
type EquipmentSelection struct {
	CanonIxus980is bool `json:"equipCanonIxus980is" bson:"equip_canon_ixus980is"`
	HpCcd          bool `json:"equipHpCcd" bson:"equip_hp_ccd"`
	IphoneX        bool `json:"equipIphoneX" bson:"equip_iphone_x"`
	Iphone13       bool `json:"equipIphone13" bson:"equip_iphone13"`
	NikonDslr      bool `json:"equipNikonDslr" bson:"equip_nikon_dslr"`
}

// Any reports whether at least one piece of equipment is chosen.
func (e EquipmentSelection) Any() bool {
	return e.CanonIxus980is || e.HpCcd || e.IphoneX || e.Iphone13 || e.NikonDslr
}

// Package is the mutually exclusive billing tier of a quote.
type Package string

const (
	PackageCCDPhone Package = "CCD_PHONE"
	PackageDSLR     Package = "DSLR"
	// PackageNone is only an error state (no equipment), never priced.
	PackageNone Package = "NONE"
)
