package entity

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	cases := []struct {
		in    string
		valid bool
		want  string
	}{
		{"1500000", true, "1500000"},
		{" 2500.75 ", true, "2500.75"},
		{"0", true, "0"},
		{"-12", true, "-12"},
		{"1e3", true, "1000"},
		{"123456789012345.6789", true, "123456789012345.6789"},
		{"", false, ""},
		{"   ", false, ""},
		{"nan", false, ""},
		{"Rp 1.000", false, ""},
		{"1,000", false, ""},
		{"abc", false, ""},
	}
	for _, tc := range cases {
		got := ParseAmount(tc.in)
		if got.Valid != tc.valid {
			t.Fatalf("%q: valid = %v, want %v", tc.in, got.Valid, tc.valid)
		}
		if tc.valid && !got.Decimal.Equal(decimal.RequireFromString(tc.want)) {
			t.Fatalf("%q: got %s, want %s", tc.in, got.Decimal, tc.want)
		}
	}
}

func TestParseAmountZeroIsNotNull(t *testing.T) {
	if v := ParseAmount("0"); !v.Valid || !v.Decimal.IsZero() {
		t.Fatalf("explicit zero must be a valid amount, got %+v", v)
	}
}

func TestParseInt(t *testing.T) {
	cases := []struct {
		in   string
		want *int
	}{
		{"60", ptr(60)},
		{" 7 ", ptr(7)},
		{"12.0", ptr(12)},
		{"12.5", nil},
		{"", nil},
		{"x", nil},
		{"NaN", nil},
		{"inf", nil},
	}
	for _, tc := range cases {
		got := ParseInt(tc.in)
		switch {
		case tc.want == nil && got != nil:
			t.Errorf("%q: expected nil, got %d", tc.in, *got)
		case tc.want != nil && (got == nil || *got != *tc.want):
			t.Errorf("%q: expected %d, got %v", tc.in, *tc.want, FormatInt(got))
		}
	}
}

func TestFormatHelpers(t *testing.T) {
	if FormatInt(nil) != "" || FormatInt(ptr(3)) != "3" {
		t.Fatal("FormatInt mismatch")
	}
	if FormatAmount(decimal.NullDecimal{}) != "" {
		t.Fatal("null amount should format empty")
	}
	if got := FormatAmount(ParseAmount("1234.500")); got != "1234.5" {
		t.Fatalf("FormatAmount = %q", got)
	}
}

func TestSequenceAndCodes(t *testing.T) {
	for in, want := range map[string]bool{"1": true, " 12 ": true, "": false, "nan": false, "NaN": false} {
		if HasSequence(in) != want {
			t.Errorf("HasSequence(%q) != %v", in, want)
		}
	}
	if !IsProgramCode("1.01.02") || IsProgramCode("1.01") || IsProgramCode("1.01.02.03") || IsProgramCode("a.b.c") {
		t.Error("IsProgramCode mismatch")
	}
	if FunctionPrefix("2.11.01.02") != "2.11" || FunctionPrefix("x") != "" {
		t.Error("FunctionPrefix mismatch")
	}
}

func ptr(n int) *int { return &n }
