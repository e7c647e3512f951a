package paren

import "testing"

// Test matching a '(' to its closing ')'.
func TestMatch(t *testing.T) {
	tests := []struct {
		input    string
		open     int
		close    int
		expectOK bool
	}{
		{"(a)", 0, 2, true},
		{"((a))", 0, 4, true},
		{"((a))", 1, 3, true},
		{"f(a,(b))", 1, 7, true},
		{"(a", 0, 0, false},
		{"a)", 0, 0, false},
		{"", 0, 0, false},
	}

	for _, test := range tests {
		close, ok := Match(test.input, test.open)
		if ok != test.expectOK {
			t.Errorf("Match(%q, %d) ok=%v, want %v", test.input, test.open, ok, test.expectOK)
			continue
		}
		if ok && close != test.close {
			t.Errorf("Match(%q, %d) = %d, want %d", test.input, test.open, close, test.close)
		}
	}
}

// Test the fully-enclosing test the compiler's case 2 relies on.
func TestEncloses(t *testing.T) {
	tests := []struct {
		input    string
		b, e     int
		expected bool
	}{
		{"(a)", 0, 2, true},
		{"(a)(b)", 0, 2, true},
		{"(a)(b)", 0, 5, false},
		{"(a)+(b)", 0, 6, false},
		{"((a))", 0, 4, true},
		{"(a))", 0, 3, false},
		{"a", 0, 0, false},
	}

	for _, test := range tests {
		if got := Encloses(test.input, test.b, test.e); got != test.expected {
			t.Errorf("Encloses(%q, %d, %d) = %v, want %v",
				test.input, test.b, test.e, got, test.expected)
		}
	}
}

// Test top-level comma location inside an argument region.
func TestTopLevelCommas(t *testing.T) {
	// The argument region of atan2(f(a,b),c) is offsets 6..13.
	input := "atan2(f(a,b),c)"
	commas := TopLevelCommas(input, 6, 13)
	if len(commas) != 1 || commas[0] != 12 {
		t.Errorf("TopLevelCommas = %v, want [12]", commas)
	}

	if got := FirstTopLevelComma(input, 6, 13); got != 12 {
		t.Errorf("FirstTopLevelComma = %d, want 12", got)
	}

	if got := FirstTopLevelComma("(a)", 1, 1); got != -1 {
		t.Errorf("FirstTopLevelComma on comma-free region = %d, want -1", got)
	}
}
