package validator

import (
	"testing"
	"time"
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

func TestIsValidUUID(t *testing.T) {
	valid := []string{
		"0188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // valid UUIDv7
		"0188D0F2-7B8C-7B4A-8A2B-6B8B8B8B8B8B", // valid UUIDv7 (uppercase)
	}
	invalid := []string{
		"123e4567-e89b-12d3-a456-426614174000", // not v7
		"0188d0f27b8c7b4a8a2b6b8b8b8b8b8b",     // missing dashes
		"g188d0f2-7b8c-7b4a-8a2b-6b8b8b8b8b8b", // invalid hex
		"",                                     // empty
	}
	for _, uuid := range valid {
		if !IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = false, want true", uuid)
		}
	}
	for _, uuid := range invalid {
		if IsValidUUID(uuid) {
			t.Errorf("IsValidUUID(%q) = true, want false", uuid)
		}
	}
}

func TestIsValidDate(t *testing.T) {
	if _, ok := IsValidDate("2025-03-03"); !ok {
		t.Error("IsValidDate(2025-03-03) = false, want true")
	}
	for _, s := range []string{"2025-13-01", "03-03-2025", "2025-3-3", "not-a-date", ""} {
		if _, ok := IsValidDate(s); ok {
			t.Errorf("IsValidDate(%q) = true, want false", s)
		}
	}
}

func TestParseDateRange(t *testing.T) {
	start, end, ok := ParseDateRange("2025-03-01", "2025-03-14")
	if !ok {
		t.Fatal("ParseDateRange(2025-03-01, 2025-03-14) = false, want true")
	}
	if !start.Equal(time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v", start)
	}
	if !end.Equal(time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v", end)
	}

	// Single-day range is allowed
	if _, _, ok := ParseDateRange("2025-03-01", "2025-03-01"); !ok {
		t.Error("single-day range rejected")
	}

	// End before start
	if _, _, ok := ParseDateRange("2025-03-14", "2025-03-01"); ok {
		t.Error("reversed range accepted")
	}

	// Malformed input
	if _, _, ok := ParseDateRange("2025-03-01", "bad"); ok {
		t.Error("malformed end accepted")
	}
}

func TestIsValidEmployeeNumber(t *testing.T) {
	valid := []string{"2024-0001", "1999-9999"}
	invalid := []string{"20240001", "2024-001", "abcd-0001", "2024-00011", ""}
	for _, n := range valid {
		if !IsValidEmployeeNumber(n) {
			t.Errorf("IsValidEmployeeNumber(%q) = false, want true", n)
		}
	}
	for _, n := range invalid {
		if IsValidEmployeeNumber(n) {
			t.Errorf("IsValidEmployeeNumber(%q) = true, want false", n)
		}
	}
}

func TestIsInSlice(t *testing.T) {
	slice := []string{"a", "b", "c"}
	if !IsInSlice("b", slice) {
		t.Error("IsInSlice(b) = false, want true")
	}
	if IsInSlice("d", slice) {
		t.Error("IsInSlice(d) = true, want false")
	}
	if IsInSlice("a", nil) {
		t.Error("IsInSlice on nil slice = true, want false")
	}
}

func TestValidationErrorsToMap(t *testing.T) {
	errs := ValidationErrors{
		{Field: "pay_period_start", Message: "is required"},
		{Field: "pay_period_end", Message: "must be an ISO date (YYYY-MM-DD)"},
	}
	m := errs.ToMap()
	if len(m) != 2 {
		t.Fatalf("len = %d, want 2", len(m))
	}
	if m["pay_period_start"] != "is required" {
		t.Errorf("pay_period_start = %q", m["pay_period_start"])
	}
}
