package util

import "testing"

func TestValidateEmail(t *testing.T) {
	cases := []struct {
		email string
		ok    bool
	}{
		{"user@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"", false},
		{"not-an-email", false},
		{"user@", false},
		{"@example.com", false},
	}
	for _, tc := range cases {
		if got := ValidateEmail(tc.email); got != tc.ok {
			t.Errorf("%q: expected %v, got %v", tc.email, tc.ok, got)
		}
	}
}

func TestValidatePassword(t *testing.T) {
	cases := []struct {
		password string
		ok       bool
	}{
		{"Str0ng!pass", true},
		{"short1!A", true},
		{"alllowercase1!", false},
		{"ALLUPPERCASE1!", false},
		{"NoDigits!!", false},
		{"NoSpecial11", false},
		{"S1!a", false},
	}
	for _, tc := range cases {
		if got := ValidatePassword(tc.password); got != tc.ok {
			t.Errorf("%q: expected %v, got %v", tc.password, tc.ok, got)
		}
	}
}

func TestValidateLedgerName(t *testing.T) {
	cases := []struct {
		name string
		ok   bool
	}{
		{"Household", true},
		{"", false},
		{"   ", false},
		{string(make([]byte, 101)), false},
	}
	for _, tc := range cases {
		if got := ValidateLedgerName(tc.name); got != tc.ok {
			t.Errorf("%q: expected %v, got %v", tc.name, tc.ok, got)
		}
	}
}

func TestParseAmount(t *testing.T) {
	cases := []struct {
		raw string
		ok  bool
	}{
		{"10", true},
		{"0.01", true},
		{" 42.50 ", true},
		{"0", false},
		{"-5", false},
		{"", false},
		{"ten", false},
	}
	for _, tc := range cases {
		amount, ok := ParseAmount(tc.raw)
		if ok != tc.ok {
			t.Errorf("%q: expected ok=%v, got %v", tc.raw, tc.ok, ok)
		}
		if ok && !amount.IsPositive() {
			t.Errorf("%q: parsed amount %s is not positive", tc.raw, amount)
		}
	}
}
