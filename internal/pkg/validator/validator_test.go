package validator

import "testing"

func TestIsEmpty(t *testing.T) {
	if !IsEmpty("   ") {
		t.Error("whitespace-only string should be empty")
	}
	if IsEmpty(" x ") {
		t.Error("non-blank string should not be empty")
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-02"); !ok {
		t.Error("expected 2026-03-02 to parse")
	}
	if _, ok := IsValidDate("03/02/2026"); ok {
		t.Error("expected 03/02/2026 to be rejected")
	}
	if _, ok := IsValidDate("2026-02-30"); ok {
		t.Error("expected 2026-02-30 to be rejected")
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "09:30", "23:59"}
	for _, s := range valid {
		if !IsValidClock(s) {
			t.Errorf("expected %q to be valid", s)
		}
	}
	invalid := []string{"24:00", "9:00am", "0930"}
	for _, s := range invalid {
		if IsValidClock(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

func TestValidationErrorsError(t *testing.T) {
	errs := ValidationErrors{
		{Field: "date", Message: "is required"},
		{Field: "start", Message: "must be a valid time (HH:MM)"},
	}
	want := "date: is required; start: must be a valid time (HH:MM)"
	if errs.Error() != want {
		t.Errorf("got %q, want %q", errs.Error(), want)
	}
	if len(errs.ToMap()) != 2 {
		t.Errorf("expected two mapped fields, got %d", len(errs.ToMap()))
	}
}
