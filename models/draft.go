package models

// ContactMethod tags which contact validator applies to a contact value.
type ContactMethod string

const (
	ContactEmail     ContactMethod = "email"
	ContactWeChat    ContactMethod = "wechat"
	ContactInstagram ContactMethod = "instagram"
	ContactPhone     ContactMethod = "phone"
)

// ShootKind is the category of photography session.
type ShootKind string

const (
	ShootPortrait   ShootKind = "portrait"
	ShootCouple     ShootKind = "couple"
	ShootFamily     ShootKind = "family"
	ShootEvent      ShootKind = "event"
	ShootGraduation ShootKind = "graduation"
	ShootProduct    ShootKind = "product"
)

// ShootKinds lists every accepted shoot kind.
var ShootKinds = []ShootKind{ShootPortrait, ShootCouple, ShootFamily, ShootEvent, ShootGraduation, ShootProduct}

type ContactInfo struct {
	Name   string        `json:"name"`
	Method ContactMethod `json:"method"`
	Value  string        `json:"value"`
}

type ShootDetails struct {
	Kind     ShootKind `json:"kind"`
	Location string    `json:"location"`
	Language string    `json:"language"`
	Notes    string    `json:"notes"`
}

type ScheduleInfo struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	Time          string  `json:"time"` // HH:MM
	DurationHours float64 `json:"durationHours"`
	PeopleCount   int     `json:"peopleCount"`
}

type AddOnSelection struct {
	DslrAddonPhotos *int `json:"dslrAddonPhotos"`
	ExtraEdits      int  `json:"extraEdits"`
}

// DerivedEquipment is recomputed from the raw draft fields after every
// mutation; it is never edited directly.
type DerivedEquipment struct {
	Effective        EquipmentSelection `json:"effective"`
	ForcedDSLR       bool               `json:"forcedDslr"`
	DurationHours    float64            `json:"durationHours"`
	Package          Package            `json:"package"`
	BillableHours    int                `json:"billableHours"`
	IncludesCcdPhone bool               `json:"includesCcdPhone"`
}

// BookingDraft is the wizard-session aggregate. It belongs to exactly one
// session and is discarded on submission or abandonment.
type BookingDraft struct {
	Contact   ContactInfo        `json:"contact"`
	Details   ShootDetails       `json:"details"`
	Schedule  ScheduleInfo       `json:"schedule"`
	Equipment EquipmentSelection `json:"equipment"`
	AddOns    AddOnSelection     `json:"addOns"`
	Derived   DerivedEquipment   `json:"derived"`
}
