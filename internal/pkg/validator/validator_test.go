package validator

import (
	"testing"
)

func TestIsEmpty(t *testing.T) {
	cases := []struct {
		input string
		want  bool
	}{
		{"", true},
		{"   ", true},
		{"abc", false},
		{" abc ", false},
	}
	for _, c := range cases {
		got := IsEmpty(c.input)
		if got != c.want {
			t.Errorf("IsEmpty(%q) = %v, want %v", c.input, got, c.want)
		}
	}
}

func TestIsValidEmail(t *testing.T) {
	valid := []string{"test@example.com", "user.name+1@domain.co", "a@b.cd"}
	invalid := []string{"test@", "@example.com", "test@com", " ", ""}
	for _, email := range valid {
		if !IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = false, want true", email)
		}
	}
	for _, email := range invalid {
		if IsValidEmail(email) {
			t.Errorf("IsValidEmail(%q) = true, want false", email)
		}
	}
}

func TestIsValidClock(t *testing.T) {
	valid := []string{"00:00", "08:30", "17:45", "23:59"}
	invalid := []string{"24:00", "12:60", "8:30", "08:5", "0830", "08:30:00", ""}
	for _, clock := range valid {
		if !IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = false, want true", clock)
		}
	}
	for _, clock := range invalid {
		if IsValidClock(clock) {
			t.Errorf("IsValidClock(%q) = true, want false", clock)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2026-03-09"); !ok {
		t.Error("IsValidDate(2026-03-09) = false, want true")
	}
	for _, date := range []string{"2026-13-01", "09-03-2026", "2026/03/09", ""} {
		if _, ok := IsValidDate(date); ok {
			t.Errorf("IsValidDate(%q) = true, want false", date)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"FACE", "GEO_PRESENCE", "KIOSK"}
	if !IsInSlice("KIOSK", slice) {
		t.Error("IsInSlice(KIOSK) = false, want true")
	}
	if IsInSlice("kiosk", slice) {
		t.Error("IsInSlice(kiosk) = true, want false (case sensitive)")
	}
	if IsInSlice("FACE", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "employee_id", Message: "employee_id is required"},
		{Field: "method", Message: "method must be one of FACE, GEO_PRESENCE, KIOSK"},
	}

	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("ToMap() has %d entries, want 2", len(m))
	}
	if m["employee_id"] != "employee_id is required" {
		t.Errorf("ToMap()[employee_id] = %q", m["employee_id"])
	}

	if errs.Error() == "" {
		t.Error("Error() should join messages, got empty string")
	}
}
