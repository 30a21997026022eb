package pricing

import (
	"math"
	"testing"

	"shootbook/models"
)

func intPtr(v int) *int { return &v }

func floatPtr(v float64) *float64 { return &v }

func TestQuoteScenarios(t *testing.T) {
	rates := DefaultRateCard()

	t.Run("A: nikon only 1h montreal", func(t *testing.T) {
		b := Quote(models.QuoteRequest{
			Equipment:              models.EquipmentSelection{NikonDslr: true},
			RequestedDurationHours: 1,
			PeopleCount:            1,
			Location:               "Montreal",
		}, rates)
		if b.Package != models.PackageDSLR {
			t.Fatalf("package = %s, want DSLR", b.Package)
		}
		if b.HourlyRate != 50 || b.BaseCost != 50 {
			t.Errorf("hourly/base = %v/%v, want 50/50", b.HourlyRate, b.BaseCost)
		}
		if len(b.Warnings) != 0 {
			t.Errorf("expected no warnings, got %v", b.Warnings)
		}
		if b.Total != 50 {
			t.Errorf("total = %v, want 50", b.Total)
		}
	})

	t.Run("B: canon only two people 2h", func(t *testing.T) {
		b := Quote(models.QuoteRequest{
			Equipment:              models.EquipmentSelection{CanonIxus980is: true},
			RequestedDurationHours: 2,
			PeopleCount:            2,
			Location:               "Montreal",
		}, rates)
		if b.Package != models.PackageCCDPhone {
			t.Fatalf("package = %s, want CCD_PHONE", b.Package)
		}
		if b.BaseCost != 70 {
			t.Errorf("base = %v, want 70", b.BaseCost)
		}
		if b.PeopleSurcharge != 20 {
			t.Errorf("peopleSurcharge = %v, want 20", b.PeopleSurcharge)
		}
		if b.CoupleFee != b.PeopleSurcharge {
			t.Errorf("coupleFee = %v, want mirror of peopleSurcharge %v", b.CoupleFee, b.PeopleSurcharge)
		}
		if b.Total != 90 {
			t.Errorf("total = %v, want 90", b.Total)
		}
	})

	t.Run("C: nikon only 3h quebec city", func(t *testing.T) {
		b := Quote(models.QuoteRequest{
			Equipment:              models.EquipmentSelection{NikonDslr: true},
			RequestedDurationHours: 3,
			PeopleCount:            1,
			Location:               "Quebec City",
		}, rates)
		if b.Package != models.PackageDSLR || b.Hours != 4 {
			t.Fatalf("package/hours = %s/%d, want DSLR/4", b.Package, b.Hours)
		}
		if b.HourlyRate != 40 || b.BaseCost != 160 {
			t.Errorf("hourly/base = %v/%v, want 40/160", b.HourlyRate, b.BaseCost)
		}
		if b.CityFee != 100 {
			t.Errorf("cityFee = %v, want 100", b.CityFee)
		}
		if b.TransportationFee != 100 {
			t.Errorf("transportationFee = %v, want 100", b.TransportationFee)
		}
		if b.IncludedEdits != 8 {
			t.Errorf("includedEdits = %d, want 8", b.IncludedEdits)
		}
		if b.Total != 360 {
			t.Errorf("total = %v, want 360", b.Total)
		}
	})

	t.Run("D: nothing selected", func(t *testing.T) {
		b := Quote(models.QuoteRequest{RequestedDurationHours: 2, PeopleCount: 1, Location: "Montreal"}, rates)
		if b.Package != models.PackageNone {
			t.Errorf("package = %s, want NONE", b.Package)
		}
		if b.Total != 0 {
			t.Errorf("total = %v, want 0", b.Total)
		}
		if len(b.Errors) != 1 || b.Errors[0] != MsgSelectEquipment {
			t.Errorf("errors = %v, want [%q]", b.Errors, MsgSelectEquipment)
		}
	})
}

func TestCalculateHourlyRates(t *testing.T) {
	rates := DefaultRateCard()
	tests := []struct {
		name   string
		pkg    models.Package
		hours  int
		expect float64
	}{
		{"ccd phone 1h", models.PackageCCDPhone, 1, 35},
		{"ccd phone 5h", models.PackageCCDPhone, 5, 35},
		{"dslr 1h", models.PackageDSLR, 1, 50},
		{"dslr 2h", models.PackageDSLR, 2, 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(CalculationInput{
				Resolution:  Resolution{Package: tt.pkg, Hours: tt.hours},
				PeopleCount: 1,
			}, rates)
			if b.HourlyRate != tt.expect {
				t.Errorf("hourlyRate = %v, want %v", b.HourlyRate, tt.expect)
			}
			if b.BaseCost != tt.expect*float64(tt.hours) {
				t.Errorf("baseCost = %v, want %v", b.BaseCost, tt.expect*float64(tt.hours))
			}
		})
	}
}

func TestCalculatePeopleSurcharge(t *testing.T) {
	rates := DefaultRateCard()
	tests := []struct {
		name   string
		pkg    models.Package
		hours  int
		people int
		expect float64
	}{
		{"single person", models.PackageCCDPhone, 3, 1, 0},
		{"zero people clamps to one", models.PackageCCDPhone, 3, 0, 0},
		{"ccd phone three people", models.PackageCCDPhone, 2, 3, 40},
		{"dslr couple", models.PackageDSLR, 2, 2, 30},
		{"dslr four people 3h", models.PackageDSLR, 3, 4, 135},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(CalculationInput{
				Resolution:  Resolution{Package: tt.pkg, Hours: tt.hours},
				PeopleCount: tt.people,
			}, rates)
			if b.PeopleSurcharge != tt.expect {
				t.Errorf("peopleSurcharge = %v, want %v", b.PeopleSurcharge, tt.expect)
			}
		})
	}
}

func TestCalculateTransportationFee(t *testing.T) {
	rates := DefaultRateCard()
	tests := []struct {
		name     string
		location string
		override *float64
		expect   float64
	}{
		{"default city no override", DefaultCity, nil, 0},
		{"special city default", SpecialCity, nil, 100},
		{"zero override falls back", SpecialCity, floatPtr(0), 100},
		{"negative override falls back", DefaultCity, floatPtr(-20), 0},
		{"override above minimum", DefaultCity, floatPtr(140), 140},
		{"override below minimum", DefaultCity, floatPtr(30), 100},
		{"override at special city", SpecialCity, floatPtr(250), 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(CalculationInput{
				Resolution:        Resolution{Package: models.PackageCCDPhone, Hours: 1},
				PeopleCount:       1,
				Location:          tt.location,
				TransportationFee: tt.override,
			}, rates)
			if b.TransportationFee != tt.expect {
				t.Errorf("transportationFee = %v, want %v", b.TransportationFee, tt.expect)
			}
		})
	}
}

func TestCalculateAddonPhotos(t *testing.T) {
	rates := DefaultRateCard()
	tests := []struct {
		name       string
		pkg        models.Package
		caps       Capabilities
		addon      *int
		expectN    int
		expectCost float64
		warning    string
	}{
		{"none requested", models.PackageCCDPhone, ccdOnly, nil, 0, 0, ""},
		{"clamped to minimum", models.PackageCCDPhone, dslrAndCombo, intPtr(1), 3, 9, ""},
		{"above minimum", models.PackageCCDPhone, dslrAndCombo, intPtr(10), 10, 30, ""},
		{"negative ignored", models.PackageCCDPhone, ccdOnly, intPtr(-4), 0, 0, ""},
		{"ignored under dslr", models.PackageDSLR, dslrOnly, intPtr(5), 0, 0, MsgAddonIgnoredDSLR},
		{"dslr demoted without add-on", models.PackageCCDPhone, dslrAndCombo, nil, 0, 0, MsgDSLRWithoutAddon},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(CalculationInput{
				Resolution:   Resolution{Package: tt.pkg, Hours: 1},
				Capabilities: tt.caps,
				PeopleCount:  1,
				AddonPhotos:  tt.addon,
			}, rates)
			if b.AddonPhotos != tt.expectN || b.AddonCost != tt.expectCost {
				t.Errorf("addon = %d/%v, want %d/%v", b.AddonPhotos, b.AddonCost, tt.expectN, tt.expectCost)
			}
			if tt.warning == "" && len(b.Warnings) != 0 {
				t.Errorf("expected no warnings, got %v", b.Warnings)
			}
			if tt.warning != "" && !contains(b.Warnings, tt.warning) {
				t.Errorf("warnings = %v, want %q", b.Warnings, tt.warning)
			}
			if b.AddonPhotos != 0 && b.Package != models.PackageCCDPhone {
				t.Errorf("add-on photos priced under %s", b.Package)
			}
		})
	}
}

func TestCalculateEdits(t *testing.T) {
	rates := DefaultRateCard()
	tests := []struct {
		name           string
		pkg            models.Package
		hours          int
		extra          int
		expectIncluded int
		expectCost     float64
	}{
		{"ccd phone baseline", models.PackageCCDPhone, 5, 0, 4, 0},
		{"dslr 2h baseline", models.PackageDSLR, 2, 0, 4, 0},
		{"dslr 3h bonus", models.PackageDSLR, 3, 0, 6, 0},
		{"dslr 6h bonus", models.PackageDSLR, 6, 0, 12, 0},
		{"extra edits", models.PackageCCDPhone, 1, 5, 4, 15},
		{"negative extra clamps", models.PackageCCDPhone, 1, -2, 4, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := Calculate(CalculationInput{
				Resolution:  Resolution{Package: tt.pkg, Hours: tt.hours},
				PeopleCount: 1,
				ExtraEdits:  tt.extra,
			}, rates)
			if b.IncludedEdits != tt.expectIncluded {
				t.Errorf("includedEdits = %d, want %d", b.IncludedEdits, tt.expectIncluded)
			}
			if b.ExtraEditsCost != tt.expectCost {
				t.Errorf("extraEditsCost = %v, want %v", b.ExtraEditsCost, tt.expectCost)
			}
		})
	}
}

func TestCalculateTotalIsRoundedSum(t *testing.T) {
	rates := DefaultRateCard()
	equipment := []models.EquipmentSelection{
		{},
		{NikonDslr: true},
		{HpCcd: true},
		{IphoneX: true, NikonDslr: true},
		{CanonIxus980is: true, Iphone13: true, NikonDslr: true},
	}
	for _, eq := range equipment {
		for _, hours := range []float64{math.Inf(1), -2, 0.4, 1, 2.5, 7} {
			for _, loc := range []string{DefaultCity, SpecialCity} {
				b := Quote(models.QuoteRequest{
					Equipment:              eq,
					RequestedDurationHours: hours,
					PeopleCount:            3,
					Location:               loc,
					DslrAddonPhotos:        intPtr(4),
					ExtraEdits:             2,
					TransportationFee:      floatPtr(112.345),
				}, rates)
				if b.Total < 0 {
					t.Fatalf("negative total %v", b.Total)
				}
				if math.Abs(b.Total*100-math.Round(b.Total*100)) > 1e-6 {
					t.Errorf("total %v not rounded to cents", b.Total)
				}
				sum := b.BaseCost + b.PeopleSurcharge + b.CityFee + b.TransportationFee + b.AddonCost + b.ExtraEditsCost
				if math.Abs(roundCents(sum)-b.Total) > 1e-9 {
					t.Errorf("total %v != rounded sum %v", b.Total, roundCents(sum))
				}
				if loc == SpecialCity && b.Package == models.PackageDSLR && b.Hours < 4 {
					t.Errorf("special city DSLR billed %d hours", b.Hours)
				}
			}
		}
	}
}

func TestRoundCents(t *testing.T) {
	tests := []struct {
		in     float64
		expect float64
	}{
		{0, 0},
		{10.004, 10},
		{10.005, 10.01},
		{112.345, 112.35},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		if got := roundCents(tt.in); got != tt.expect {
			t.Errorf("roundCents(%v) = %v, want %v", tt.in, got, tt.expect)
		}
	}
}

func TestExtraEditsBeyond(t *testing.T) {
	if got := ExtraEditsBeyond(10, 8); got != 2 {
		t.Errorf("ExtraEditsBeyond(10, 8) = %d, want 2", got)
	}
	if got := ExtraEditsBeyond(3, 4); got != 0 {
		t.Errorf("ExtraEditsBeyond(3, 4) = %d, want 0", got)
	}
}
