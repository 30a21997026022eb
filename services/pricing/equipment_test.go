package pricing

import (
	"errors"
	"testing"

	"shootbook/models"
)

func TestNormalizeEquipment(t *testing.T) {
	tests := []struct {
		name   string
		sel    models.EquipmentSelection
		expect Capabilities
	}{
		{"canon only", models.EquipmentSelection{CanonIxus980is: true}, Capabilities{HasCCD: true, HasCcdOrPhone: true}},
		{"hp only", models.EquipmentSelection{HpCcd: true}, Capabilities{HasCCD: true, HasCcdOrPhone: true}},
		{"iphone x only", models.EquipmentSelection{IphoneX: true}, Capabilities{HasPhone: true, HasCcdOrPhone: true}},
		{"iphone 13 only", models.EquipmentSelection{Iphone13: true}, Capabilities{HasPhone: true, HasCcdOrPhone: true}},
		{"nikon only", models.EquipmentSelection{NikonDslr: true}, Capabilities{HasDSLR: true}},
		{
			"everything",
			models.EquipmentSelection{CanonIxus980is: true, HpCcd: true, IphoneX: true, Iphone13: true, NikonDslr: true},
			Capabilities{HasCCD: true, HasPhone: true, HasCcdOrPhone: true, HasDSLR: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NormalizeEquipment(tt.sel)
			if err != nil {
				t.Fatalf("NormalizeEquipment(%+v) returned error: %v", tt.sel, err)
			}
			if got != tt.expect {
				t.Errorf("NormalizeEquipment(%+v) = %+v, want %+v", tt.sel, got, tt.expect)
			}
		})
	}
}

func TestNormalizeEquipmentNothingSelected(t *testing.T) {
	_, err := NormalizeEquipment(models.EquipmentSelection{})
	if err == nil {
		t.Fatal("expected constraint error for empty selection")
	}
	var ce *ConstraintError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConstraintError, got %T", err)
	}
	if ce.Message != MsgNoEquipmentSelected {
		t.Errorf("message = %q, want %q", ce.Message, MsgNoEquipmentSelected)
	}
}
