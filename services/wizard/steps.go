package wizard

import (
	"math"
	"regexp"
	"strings"
	"time"

	"shootbook/models"
	"shootbook/services/pricing"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"

	minDurationHours = 1
	maxDurationHours = 12
	maxExtraEdits    = 50
	minLocationLen   = 2
)

var clockPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)

// ValidateContact checks the contact step.
func ValidateContact(c models.ContactInfo) FieldErrors {
	errs := FieldErrors{}
	if msg := checkName(c.Name); msg != "" {
		errs.add("contact.name", msg)
	}
	for field, msg := range checkContact(c.Method, c.Value) {
		errs.add("contact."+field, msg)
	}
	return errs
}

// ValidateDetails checks the shoot details step.
func ValidateDetails(d models.ShootDetails) FieldErrors {
	errs := FieldErrors{}
	if !validShootKind(d.Kind) {
		errs.add("details.kind", "choose a photoshoot type")
	}
	if msg := checkLocation(d.Location); msg != "" {
		errs.add("details.location", msg)
	}
	if _, ok := MatchLanguage(d.Language); !ok {
		errs.add("details.language", "language must be English, French or Chinese")
	}
	return errs
}

// ValidateSchedule checks the schedule step against the current day.
func ValidateSchedule(s models.ScheduleInfo, extraEdits int, now time.Time) FieldErrors {
	errs := FieldErrors{}

	day, err := time.ParseInLocation(dateLayout, strings.TrimSpace(s.Date), now.Location())
	switch {
	case err != nil:
		errs.add("schedule.date", "date must be YYYY-MM-DD")
	case day.Before(startOfDay(now)):
		errs.add("schedule.date", "date cannot be in the past")
	}

	if !clockPattern.MatchString(strings.TrimSpace(s.Time)) {
		errs.add("schedule.time", "time must be HH:MM")
	}

	d := s.DurationHours
	if math.IsNaN(d) || d != math.Trunc(d) || d < minDurationHours || d > maxDurationHours {
		errs.add("schedule.durationHours", "duration must be a whole number of hours between 1 and 12")
	}
	if s.PeopleCount < 1 {
		errs.add("schedule.peopleCount", "at least one person is required")
	}
	if extraEdits < 0 || extraEdits > maxExtraEdits {
		errs.add("addOns.extraEdits", "extra edits must be between 0 and 50")
	}
	return errs
}

// ValidateEquipment re-runs equipment normalization and package resolution
// for the draft's current duration and location. The draft must already be
// normalized.
func ValidateEquipment(d models.BookingDraft) FieldErrors {
	errs := FieldErrors{}

	caps, err := pricing.NormalizeEquipment(d.Derived.Effective)
	if err != nil {
		errs.add("equipment", pricing.MsgSelectEquipment)
		return errs
	}
	res := pricing.ResolvePackage(caps, d.Derived.DurationHours, d.Details.Location)
	if res.Package == models.PackageNone {
		errs.add("equipment", pricing.MsgSelectEquipment)
		return errs
	}

	if msg := checkAddon(caps, res, d.AddOns.DslrAddonPhotos); msg != "" {
		errs.add("addOns.dslrAddonPhotos", msg)
	}
	return errs
}

// checkAddon applies the add-on eligibility window for a resolved package.
func checkAddon(caps pricing.Capabilities, res pricing.Resolution, addon *int) string {
	present := addonPresent(addon)
	switch {
	case present && !caps.HasDSLR:
		return "DSLR add-on photos require the DSLR"
	case present && !caps.HasCcdOrPhone:
		return "DSLR add-on photos require a CCD camera or phone package"
	case present && res.IncludesCcdPhone:
		return "DSLR add-on photos are not needed: CCD/Phone are included with 2h+ DSLR"
	case present && *addon < pricing.MinAddonPhotos:
		return "choose at least 3 DSLR add-on photos"
	case !present && caps.HasDSLR && caps.HasCcdOrPhone && res.Package == models.PackageCCDPhone:
		return "DSLR under 2h with CCD/Phone needs at least 3 add-on photos"
	}
	return ""
}

func addonPresent(addon *int) bool {
	return addon != nil && *addon != 0
}

func validShootKind(k models.ShootKind) bool {
	for _, kind := range models.ShootKinds {
		if k == kind {
			return true
		}
	}
	return false
}

func checkLocation(loc string) string {
	if len([]rune(strings.TrimSpace(loc))) < minLocationLen {
		return "location must be at least 2 characters"
	}
	return ""
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
