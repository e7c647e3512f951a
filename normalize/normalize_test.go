package normalize

import "testing"

// Test the two rewrites: "**" to "^", and whitespace elision.
func TestNormalize(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"2+3", "2+3"},
		{"2 + 3", "2+3"},
		{"a ** b", "a^b"},
		{"a**b", "a^b"},
		{"2 ** (1+2)", "2^(1+2)"},
		{"  sqrt( x )  ", "sqrt(x)"},
		{"", ""},
		{"* *", "**"},
	}

	for _, test := range tests {
		got := Normalize(test.input)
		if got.Text != test.expected {
			t.Errorf("Normalize(%q) = %q, want %q", test.input, got.Text, test.expected)
		}
		if len(got.PosMap) != len(got.Text) {
			t.Errorf("Normalize(%q): position map has %d entries for %d bytes",
				test.input, len(got.PosMap), len(got.Text))
		}
	}
}

// Test the position map points back at the original characters.
func TestPositionMap(t *testing.T) {
	// original:   "a ** b"  (1-based positions 1..6)
	// normalised: "a^b"
	got := Normalize("a ** b")

	if got.Text != "a^b" {
		t.Fatalf("unexpected normalised text %q", got.Text)
	}

	wants := []int{1, 3, 6}
	for k, want := range wants {
		if got.OriginalIndex(k) != want {
			t.Errorf("OriginalIndex(%d) = %d, want %d", k, got.OriginalIndex(k), want)
		}
	}

	// One past the end maps one past the last surviving origin, for
	// faults raised at end-of-input.
	if got.OriginalIndex(3) != 7 {
		t.Errorf("OriginalIndex(3) = %d, want 7", got.OriginalIndex(3))
	}
}

// Test both spellings of exponentiation normalise identically.
func TestPowerEquivalence(t *testing.T) {
	pairs := [][2]string{
		{"a ** b", "a^b"},
		{"a**b", "a ^ b"},
		{"2**3**4", "2^3^4"},
	}

	for _, pair := range pairs {
		a := Normalize(pair[0])
		b := Normalize(pair[1])
		if a.Text != b.Text {
			t.Errorf("%q and %q normalise differently: %q vs %q",
				pair[0], pair[1], a.Text, b.Text)
		}
	}
}
