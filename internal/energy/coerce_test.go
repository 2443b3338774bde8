package energy

import "testing"

func TestParseNumber(t *testing.T) {
	cases := []struct {
		in     string
		want   float64
		wantOK bool
	}{
		{"", 0, false},
		{"   ", 0, false},
		{"abc", 0, false},
		{"NaN", 0, false},
		{"Infinity", 0, false},
		{"1e999", 0, false},
		{"80", 80, true},
		{" 72.5 ", 72.5, true},
		{"80kg", 80, true},
		{".5", 0.5, true},
		{"5.", 5, true},
		{"1e2", 100, true},
		{"1.5e2x", 150, true},
		{"2e", 2, true},
		{"+3", 3, true},
		{"-4.25", -4.25, true},
		{"12,5", 12, true},
	}
	for _, tc := range cases {
		t.Run(tc.in, func(t *testing.T) {
			got, ok := ParseNumber(tc.in)
			if got != tc.want || ok != tc.wantOK {
				t.Errorf("ParseNumber(%q) = (%v, %v), want (%v, %v)", tc.in, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestNumberOrZero(t *testing.T) {
	if got := NumberOrZero("not a number"); got != 0 {
		t.Errorf("NumberOrZero(garbage) = %v, want 0", got)
	}
	if got := NumberOrZero("180"); got != 180 {
		t.Errorf("NumberOrZero(180) = %v, want 180", got)
	}
}
