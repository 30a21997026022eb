package models

import "time"

// BookingRecord is the flattened record handed to the persistence boundary.
type BookingRecord struct {
	ID             string        `bson:"id" json:"id,omitempty"`
	ClientName     string        `bson:"client_name" json:"clientName"`
	ContactMethod  ContactMethod `bson:"contact_method" json:"contactMethod"`
	Contact        string        `bson:"contact" json:"contact"`
	PhotoshootKind ShootKind     `bson:"photoshoot_kind" json:"photoshootKind"`
	Start          time.Time     `bson:"start" json:"start"`
	End            time.Time     `bson:"end" json:"end"`
	Location       string        `bson:"location" json:"location"`
	PeopleCount    int           `bson:"people_count" json:"peopleCount"`
	Language       string        `bson:"language" json:"language"`
	Notes          string        `bson:"notes" json:"notes"`

	EquipmentSelection `bson:",inline"`

	DslrAddonPhotos *int `bson:"dslr_addon_photos" json:"dslrAddonPhotos"`
	ExtraEdits      int  `bson:"extra_edits" json:"extraEdits"`

	Total     float64   `bson:"total" json:"total"`
	CreatedAt time.Time `bson:"created_at" json:"createdAt"`
}

// ElapsedHours is the actual booked duration, unrounded.
func (r BookingRecord) ElapsedHours() float64 {
	return r.End.Sub(r.Start).Hours()
}
