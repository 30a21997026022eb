package wizard

import (
	"math"
	"strings"
	"time"

	"shootbook/models"
	"shootbook/services/pricing"
)

// BuildRecord flattens a normalized draft into the submission record. start
// and end are zero when the date or time does not parse.
func BuildRecord(d models.BookingDraft, loc *time.Location) models.BookingRecord {
	d = Normalize(d)
	lang, _ := MatchLanguage(d.Details.Language)

	rec := models.BookingRecord{
		ClientName:     NormalizeName(d.Contact.Name),
		ContactMethod:  d.Contact.Method,
		Contact:        NormalizeContact(d.Contact.Method, d.Contact.Value),
		PhotoshootKind: d.Details.Kind,
		Location:       strings.TrimSpace(d.Details.Location),
		PeopleCount:    d.Schedule.PeopleCount,
		Language:       lang,
		Notes:          strings.TrimSpace(d.Details.Notes),
		EquipmentSelection: models.EquipmentSelection{
			CanonIxus980is: d.Equipment.CanonIxus980is,
			HpCcd:          d.Equipment.HpCcd,
			IphoneX:        d.Equipment.IphoneX,
			Iphone13:       d.Equipment.Iphone13,
			NikonDslr:      d.Derived.Effective.NikonDslr,
		},
		ExtraEdits: d.AddOns.ExtraEdits,
	}
	if addonPresent(d.AddOns.DslrAddonPhotos) {
		v := *d.AddOns.DslrAddonPhotos
		rec.DslrAddonPhotos = &v
	}

	start, err := time.ParseInLocation(dateLayout+" "+timeLayout,
		strings.TrimSpace(d.Schedule.Date)+" "+strings.TrimSpace(d.Schedule.Time), loc)
	if err == nil && !math.IsNaN(d.Derived.DurationHours) && !math.IsInf(d.Derived.DurationHours, 0) {
		rec.Start = start
		rec.End = start.Add(time.Duration(d.Derived.DurationHours * float64(time.Hour)))
	}
	return rec
}

// ValidateFinal re-derives every step check and the record-level rules the
// submission boundary enforces. The record is returned only when valid.
func ValidateFinal(d models.BookingDraft, now time.Time) (*models.BookingRecord, FieldErrors) {
	d = Normalize(d)

	errs := FieldErrors{}
	errs.merge(ValidateContact(d.Contact))
	errs.merge(ValidateDetails(d.Details))
	errs.merge(ValidateSchedule(d.Schedule, d.AddOns.ExtraEdits, now))
	errs.merge(ValidateEquipment(d))

	rec := BuildRecord(d, now.Location())
	for field, msg := range recordRules(rec) {
		errs.add(draftField(field), msg)
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return &rec, errs
}

// ValidateSubmission checks a flattened record submitted without the wizard.
// The contact, name, location and language are normalized in place.
func ValidateSubmission(rec *models.BookingRecord, now time.Time) FieldErrors {
	errs := FieldErrors{}

	if msg := checkName(rec.ClientName); msg != "" {
		errs.add("clientName", msg)
	}
	contactErrs := checkContact(rec.ContactMethod, rec.Contact)
	if msg, ok := contactErrs["method"]; ok {
		errs.add("contactMethod", msg)
	}
	if msg, ok := contactErrs["value"]; ok {
		errs.add("contact", msg)
	}
	if !validShootKind(rec.PhotoshootKind) {
		errs.add("photoshootKind", "choose a photoshoot type")
	}
	if msg := checkLocation(rec.Location); msg != "" {
		errs.add("location", msg)
	}
	lang, ok := MatchLanguage(rec.Language)
	if !ok {
		errs.add("language", "language must be English, French or Chinese")
	}
	if rec.PeopleCount < 1 {
		errs.add("peopleCount", "at least one person is required")
	}
	if rec.ExtraEdits < 0 || rec.ExtraEdits > maxExtraEdits {
		errs.add("extraEdits", "extra edits must be between 0 and 50")
	}
	if !rec.Start.IsZero() && rec.Start.Before(startOfDay(now.In(rec.Start.Location()))) {
		errs.add("start", "date cannot be in the past")
	}
	if h := rec.ElapsedHours(); h > maxDurationHours {
		errs.add("end", "bookings cannot exceed 12 hours")
	}
	errs.merge(recordRules(*rec))

	if len(errs) == 0 {
		rec.ClientName = NormalizeName(rec.ClientName)
		rec.Contact = NormalizeContact(rec.ContactMethod, rec.Contact)
		rec.Location = strings.TrimSpace(rec.Location)
		rec.Language = lang
		rec.Notes = strings.TrimSpace(rec.Notes)
	}
	return errs
}

// recordRules are the cross-field checks on a flattened record. The add-on
// window uses the actual elapsed duration, not the billable hours.
func recordRules(rec models.BookingRecord) FieldErrors {
	errs := FieldErrors{}

	if rec.Start.IsZero() {
		errs.add("start", "start date and time are required")
		return errs
	}
	if !rec.Start.Before(rec.End) {
		errs.add("end", "end must be after start")
		return errs
	}
	if !rec.EquipmentSelection.Any() {
		errs.add("equipment", pricing.MsgSelectEquipment)
		return errs
	}

	elapsed := rec.ElapsedHours()
	if pricing.IsSpecialCity(rec.Location) && (!rec.NikonDslr || elapsed < pricing.SpecialCityMinHours) {
		errs.add("equipment", "Quebec City bookings require the DSLR for at least 4 hours")
	}

	hasCcdOrPhone := rec.CanonIxus980is || rec.HpCcd || rec.IphoneX || rec.Iphone13
	window := rec.NikonDslr && hasCcdOrPhone && elapsed < pricing.DSLRIncludesCcdPhoneHours
	present := addonPresent(rec.DslrAddonPhotos)
	switch {
	case window && !present:
		errs.add("dslrAddonPhotos", "DSLR under 2h with CCD/Phone needs at least 3 add-on photos")
	case window && *rec.DslrAddonPhotos < pricing.MinAddonPhotos:
		errs.add("dslrAddonPhotos", "choose at least 3 DSLR add-on photos")
	case !window && present:
		errs.add("dslrAddonPhotos", "DSLR add-on photos only apply to DSLR under 2h with CCD/Phone")
	}
	return errs
}

// draftField maps record field names onto the wizard's field paths.
func draftField(recordField string) string {
	switch recordField {
	case "start":
		return "schedule.date"
	case "end":
		return "schedule.durationHours"
	case "dslrAddonPhotos":
		return "addOns.dslrAddonPhotos"
	}
	return recordField
}
