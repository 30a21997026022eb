package models

// QuoteRequest is the already-coerced input of a live quote.
type QuoteRequest struct {
	Equipment              EquipmentSelection `json:"equipment"`
	Location               string             `json:"location"`
	RequestedDurationHours float64            `json:"requestedDurationHours"`
	PeopleCount            int                `json:"peopleCount"`
	DslrAddonPhotos        *int               `json:"dslrAddonPhotos"`
	// ExtraEdits is the number of edits beyond the included count.
	ExtraEdits int `json:"extraEdits"`
	// TransportationFee overrides the default fee when set and positive.
	TransportationFee *float64 `json:"transportationFee,omitempty"`
}

// PricingBreakdown is the itemized, immutable result of a quote.
// The receipt renderer consumes it verbatim.
type PricingBreakdown struct {
	Package Package `json:"package"`
	Hours   int     `json:"hours"`
	// Equipment echoes the selection for the receipt's line items.
	Equipment       EquipmentSelection `json:"equipment"`
	HourlyRate      float64            `json:"hourlyRate"`
	BaseCost        float64            `json:"baseCost"`
	SurchargeRate   float64            `json:"surchargeRate"`
	PeopleCount     int                `json:"peopleCount"`
	PeopleSurcharge float64            `json:"peopleSurcharge"`
	// Deprecated: CoupleFee mirrors PeopleSurcharge for older receipt templates
	// and is not added to Total.
	CoupleFee         float64 `json:"coupleFee"`
	CityFee           float64 `json:"cityFee"`
	TransportationFee float64 `json:"transportationFee"`
	AddonPhotos       int     `json:"addonPhotos"`
	AddonCost         float64 `json:"addonCost"`
	IncludedEdits     int     `json:"includedEdits"`
	ExtraEdits        int     `json:"extraEdits"`
	ExtraEditsCost    float64 `json:"extraEditsCost"`
	// IncludesCcdPhone is set when CCD/Phone come free with a ≥2h DSLR package,
	// whether or not the client selected them.
	IncludesCcdPhone bool     `json:"includesCcdPhone"`
	Inclusions       []string `json:"inclusions"`
	Total            float64  `json:"total"`
	Warnings         []string `json:"warnings"`
	Errors           []string `json:"errors"`
}
