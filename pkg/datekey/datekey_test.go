package datekey

import "testing"

func TestNormalize_SeparatorEquivalence(t *testing.T) {
	inputs := []string{"31/12/2024", "31-12-2024", "31122024", "31.12.2024", "31 12 2024"}
	for _, in := range inputs {
		got, err := Normalize(in)
		if err != nil {
			t.Fatalf("Normalize(%q) returned error: %v", in, err)
		}
		if got != "31122024" {
			t.Fatalf("Normalize(%q) = %q, want 31122024", in, got)
		}
	}
}

func TestNormalize_PreservesDigitOrder(t *testing.T) {
	// Month-day input is not reordered; only separators are stripped.
	got, err := Normalize("12/31/2024")
	if err != nil {
		t.Fatalf("Normalize returned error: %v", err)
	}
	if got != "12312024" {
		t.Fatalf("Normalize(12/31/2024) = %q, want 12312024", got)
	}
}

func TestNormalize_RejectsWrongDigitCount(t *testing.T) {
	for _, in := range []string{"", "1/1/2024", "311220241", "abc", "3112202"} {
		if _, err := Normalize(in); err != ErrFormat {
			t.Fatalf("Normalize(%q): expected ErrFormat, got %v", in, err)
		}
	}
}

func TestIsValidCalendarDate(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
	}{
		{"29022024", true},  // leap year
		{"29022023", false}, // not a leap year
		{"31042024", false}, // April has 30 days
		{"30042024", true},
		{"31122024", true},
		{"00012024", false}, // day zero rolls back into December
		{"01132024", false}, // month 13 rolls into next year
		{"01011899", false}, // below year floor
		{"01011900", true},  // floor inclusive
		{"01012100", true},  // ceiling inclusive
		{"01012101", false}, // above year ceiling
		{"29/02/2024", true},
		{"31-04-2024", false},
	}
	for _, tc := range cases {
		if got := IsValidCalendarDate(tc.in); got != tc.valid {
			t.Errorf("IsValidCalendarDate(%q) = %v, want %v", tc.in, got, tc.valid)
		}
	}
}

func TestIsValidCalendarDate_FailsClosedOnFormatError(t *testing.T) {
	for _, in := range []string{"", "not-a-date", "1/1/24", "123456789"} {
		if IsValidCalendarDate(in) {
			t.Errorf("IsValidCalendarDate(%q) = true, want false", in)
		}
	}
}
