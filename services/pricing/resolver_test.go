package pricing

import (
	"math"
	"testing"

	"shootbook/models"
)

var (
	dslrOnly     = Capabilities{HasDSLR: true}
	ccdOnly      = Capabilities{HasCCD: true, HasCcdOrPhone: true}
	phoneOnly    = Capabilities{HasPhone: true, HasCcdOrPhone: true}
	dslrAndCombo = Capabilities{HasCCD: true, HasPhone: true, HasCcdOrPhone: true, HasDSLR: true}
)

func TestBillableHours(t *testing.T) {
	tests := []struct {
		name      string
		requested float64
		expect    int
	}{
		{"zero", 0, 1},
		{"negative", -3, 1},
		{"NaN", math.NaN(), 1},
		{"positive infinity", math.Inf(1), 1},
		{"negative infinity", math.Inf(-1), 1},
		{"fraction under one", 0.25, 1},
		{"exact hour", 2, 2},
		{"rounds up", 2.1, 3},
		{"half hour", 1.5, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := BillableHours(tt.requested); got != tt.expect {
				t.Errorf("BillableHours(%v) = %d, want %d", tt.requested, got, tt.expect)
			}
		})
	}
}

func TestResolvePackageDecisionTable(t *testing.T) {
	tests := []struct {
		name     string
		caps     Capabilities
		hours    float64
		location string
		pkg      models.Package
		expectH  int
		included bool
	}{
		{"dslr 2h", dslrOnly, 2, DefaultCity, models.PackageDSLR, 2, true},
		{"dslr and combo 3h", dslrAndCombo, 3, DefaultCity, models.PackageDSLR, 3, true},
		{"dslr and combo 1h demotes", dslrAndCombo, 1, DefaultCity, models.PackageCCDPhone, 1, false},
		{"dslr only 1h", dslrOnly, 1, DefaultCity, models.PackageDSLR, 1, false},
		{"ccd only", ccdOnly, 5, DefaultCity, models.PackageCCDPhone, 5, false},
		{"phone only", phoneOnly, 1, DefaultCity, models.PackageCCDPhone, 1, false},
		{"nothing", Capabilities{}, 2, DefaultCity, models.PackageNone, 2, false},
		{"special city dslr 1h", dslrOnly, 1, SpecialCity, models.PackageDSLR, 4, true},
		{"special city dslr 6h", dslrOnly, 6, SpecialCity, models.PackageDSLR, 6, true},
		{"special city combo 1h keeps ccd phone", dslrAndCombo, 1, SpecialCity, models.PackageCCDPhone, 1, false},
		{"special city ccd only", ccdOnly, 1, SpecialCity, models.PackageCCDPhone, 1, false},
		{"special city case insensitive", dslrOnly, 2, "  quebec city ", models.PackageDSLR, 4, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolvePackage(tt.caps, tt.hours, tt.location)
			if got.Package != tt.pkg {
				t.Errorf("package = %s, want %s", got.Package, tt.pkg)
			}
			if got.Hours != tt.expectH {
				t.Errorf("hours = %d, want %d", got.Hours, tt.expectH)
			}
			if got.IncludesCcdPhone != tt.included {
				t.Errorf("includesCcdPhone = %v, want %v", got.IncludesCcdPhone, tt.included)
			}
		})
	}
}

func TestResolvePackageMatchesPackageRule(t *testing.T) {
	capsSet := []Capabilities{{}, dslrOnly, ccdOnly, phoneOnly, dslrAndCombo}
	for _, caps := range capsSet {
		for _, requested := range []float64{-1, 0, 0.5, 1, 1.2, 2, 3.7, 8} {
			res := ResolvePackage(caps, requested, DefaultCity)
			var want models.Package
			switch {
			case caps.HasDSLR && (res.Hours >= 2 || !caps.HasCcdOrPhone):
				want = models.PackageDSLR
			case caps.HasCcdOrPhone:
				want = models.PackageCCDPhone
			default:
				want = models.PackageNone
			}
			if res.Package != want {
				t.Errorf("ResolvePackage(%+v, %v) = %s, want %s", caps, requested, res.Package, want)
			}
		}
	}
}

func TestResolvePackageIsIdempotent(t *testing.T) {
	capsSet := []Capabilities{dslrOnly, ccdOnly, phoneOnly, dslrAndCombo}
	locations := []string{DefaultCity, SpecialCity, "Toronto"}
	for _, caps := range capsSet {
		for _, loc := range locations {
			for _, requested := range []float64{math.NaN(), 0, 0.3, 1, 1.5, 2, 3, 4.2, 12} {
				first := ResolvePackage(caps, requested, loc)
				second := ResolvePackage(caps, float64(first.Hours), loc)
				if first.Package != second.Package || first.Hours != second.Hours {
					t.Errorf("not idempotent for %+v at %s (%v): (%s,%d) then (%s,%d)",
						caps, loc, requested, first.Package, first.Hours, second.Package, second.Hours)
				}
			}
		}
	}
}

func TestResolvePackageMessages(t *testing.T) {
	res := ResolvePackage(dslrAndCombo, 2, DefaultCity)
	if !contains(res.Notes, MsgCcdPhoneIncluded) {
		t.Errorf("expected inclusion note, got %v", res.Notes)
	}

	res = ResolvePackage(dslrOnly, 1, DefaultCity)
	if len(res.Notes) != 0 || len(res.Warnings) != 0 {
		t.Errorf("1h DSLR-only should carry no messages, got notes=%v warnings=%v", res.Notes, res.Warnings)
	}

	res = ResolvePackage(dslrAndCombo, 1, DefaultCity)
	if !contains(res.Notes, MsgDSLRAsAddon) {
		t.Errorf("expected add-on note when DSLR is demoted, got %v", res.Notes)
	}

	res = ResolvePackage(Capabilities{}, 1, DefaultCity)
	if len(res.Errors) != 1 || res.Errors[0] != MsgSelectEquipment {
		t.Errorf("errors = %v, want [%q]", res.Errors, MsgSelectEquipment)
	}
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
