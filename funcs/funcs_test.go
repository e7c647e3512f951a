package funcs

import (
	"testing"

	"mathengine/bytecode"
)

// Test longest-match lookup: atan2 must win over atan, and matching
// is case-insensitive.
func TestLookup(t *testing.T) {
	tests := []struct {
		input    string
		name     string
		arity    int
		expectOK bool
	}{
		{"atan2(1,1)", "atan2", 2, true},
		{"atan(1)", "atan", 1, true},
		{"ATAN2(1,1)", "atan2", 2, true},
		{"Sin(x)", "sin", 1, true},
		{"sinh(x)", "sinh", 1, true},
		{"gamf(3)", "gamf", 1, true},
		{"log10(x)", "log10", 1, true},
		{"log(x)", "log", 1, true},
		{"erfcs(x)", "erfcs", 1, true},
		{"erfc(x)", "erfc", 1, true},
		{"erf(x)", "erf", 1, true},
		{"foo(x)", "", 0, false},
		{"", "", 0, false},
	}

	for _, test := range tests {
		def, consumed, ok := Lookup(test.input)
		if ok != test.expectOK {
			t.Errorf("Lookup(%q) ok=%v, want %v", test.input, ok, test.expectOK)
			continue
		}
		if !ok {
			continue
		}
		if def.Name != test.name || def.Arity != test.arity || consumed != len(test.name) {
			t.Errorf("Lookup(%q) = (%q, arity %d, consumed %d), want (%q, %d, %d)",
				test.input, def.Name, def.Arity, consumed,
				test.name, test.arity, len(test.name))
		}
	}
}

// Test case-sensitive variable lookup and name spanning.
func TestLookupVariable(t *testing.T) {
	names := []string{"x", "y", "Temp"}

	tests := []struct {
		input string
		index int
		span  int
	}{
		{"x+1", 1, 1},
		{"y)", 2, 1},
		{"Temp*2", 3, 4},
		{"temp*2", 0, 4},
		{"z", 0, 1},
		{"xy", 0, 2},
		{"x,y", 1, 1},
	}

	for _, test := range tests {
		index, span := LookupVariable(test.input, names)
		if index != test.index || span != test.span {
			t.Errorf("LookupVariable(%q) = (%d, %d), want (%d, %d)",
				test.input, index, span, test.index, test.span)
		}
	}
}

// Test the two named constants.
func TestLookupConstant(t *testing.T) {
	if v, n, ok := LookupConstant("pi*2", 1); !ok || n != 2 || v != Pi {
		t.Errorf("pi lookup = (%g, %d, %v)", v, n, ok)
	}
	if v, n, ok := LookupConstant("mu*2", 4.5); !ok || n != 2 || v != 4.5 {
		t.Errorf("mu lookup = (%g, %d, %v)", v, n, ok)
	}
	if _, _, ok := LookupConstant("PI", 1); ok {
		t.Errorf("constant lookup should be case-sensitive")
	}
	if _, _, ok := LookupConstant("nu", 1); ok {
		t.Errorf("unknown constant unexpectedly matched")
	}
}

// Test the opcode reverse-lookup.
func TestByOpcode(t *testing.T) {
	def, ok := ByOpcode(bytecode.Atan2)
	if !ok || def.Name != "atan2" {
		t.Errorf("ByOpcode(Atan2) = (%q, %v)", def.Name, ok)
	}
	if _, ok := ByOpcode(bytecode.Add); ok {
		t.Errorf("ByOpcode(Add) should miss: Add is not a named function")
	}
}
