package task

import "testing"

func TestParseRef(t *testing.T) {
	tests := []struct {
		arg   string
		index bool
	}{
		{"1", true},
		{"42", true},
		{"0", true},
		{"a9x2", false},
		{"12ab", false}, // mixed digits and letters is an ID
		{"1.5", false},
		{"-1", false},
		// Digit strings past the int range must not wrap around to a
		// small position.
		{"18446744073709551617", false},
		{"99999999999999999999999999", false},
	}
	for _, tc := range tests {
		ref := ParseRef(tc.arg)
		if ref.IsIndex() != tc.index {
			t.Errorf("ParseRef(%q).IsIndex() = %v, want %v", tc.arg, ref.IsIndex(), tc.index)
		}
	}
}

func TestRefString(t *testing.T) {
	if got := ByIndex(3).String(); got != "task number 3" {
		t.Errorf("unexpected index ref string %q", got)
	}
	if got := ByID("a9x2").String(); got != "task ID a9x2" {
		t.Errorf("unexpected id ref string %q", got)
	}
}
