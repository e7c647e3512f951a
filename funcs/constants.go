package funcs

// Pi is the constant value the "pi" token lowers to.
const Pi = 3.14159265358979323846

// constantNames are matched as a fixed 2-character prefix, longest
// first is irrelevant here since both are the same length - but the
// order still decides which wins if a caller ever extends this list.
var constantNames = []string{"pi", "mu"}

// LookupConstant performs a case-sensitive match of a named constant
// at the start of s. Constants are matched like any other identifier,
// so case rules follow the variable-name convention, not the
// case-insensitive function-name convention. mu0 is the registry's
// current process-wide "mu" value, baked into the result at parse
// time.
func LookupConstant(s string, mu0 float64) (value float64, consumed int, ok bool) {
	for _, name := range constantNames {
		if len(s) >= len(name) && s[:len(name)] == name {
			switch name {
			case "pi":
				return Pi, len(name), true
			case "mu":
				return mu0, len(name), true
			}
		}
	}
	return 0, 0, false
}

// DefaultMu0 is the value a fresh registry's "mu" constant carries
// before SetMu0 is ever called.
const DefaultMu0 = 1.0
