package tui

import (
	"errors"
	"testing"

	"github.com/theirongolddev/payreal/internal/engine"
)

func TestFormValuesRoundTrip(t *testing.T) {
	in := referenceInput()
	in.WalksToWork = true

	got, err := NewFormValues(in).Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if got != in {
		t.Errorf("round trip = %+v, want %+v", got, in)
	}
}

func TestFormValuesParsesFriendlyAmounts(t *testing.T) {
	v := &FormValues{Gross: "₦3,000,000", City: "Ibadan", Family: "40k", Upkeep: "", Goal: "1.5m"}
	in, err := v.Input()
	if err != nil {
		t.Fatalf("Input: %v", err)
	}
	if in.GrossAnnual != 3_000_000 || in.FamilySupport != 40_000 || in.HouseUpkeep != 0 || in.GoalAmount != 1_500_000 {
		t.Errorf("parsed %+v", in)
	}
	if in.City != engine.CityIbadan {
		t.Errorf("City = %q", in.City)
	}
}

func TestFormValuesRejectsBadAmount(t *testing.T) {
	v := NewFormValues(referenceInput())
	v.Upkeep = "lots"
	if _, err := v.Input(); !errors.Is(err, engine.ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
	if validateAmount("-5") == nil {
		t.Error("validateAmount should reject negative amounts")
	}
}

func TestNewFormValuesMapsUnknownCity(t *testing.T) {
	in := referenceInput()
	in.City = "Kano"
	if got := NewFormValues(in).City; got != string(engine.CityOther) {
		t.Errorf("City = %q, want %q", got, engine.CityOther)
	}
}

func TestNewInputFormGroups(t *testing.T) {
	v := NewFormValues(referenceInput())
	if NewInputForm(v, false) == nil || NewInputForm(v, true) == nil {
		t.Fatal("NewInputForm returned nil")
	}
}
