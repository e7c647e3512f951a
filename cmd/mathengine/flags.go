// flags.go holds the flag helpers the subcommands share.

package main

import (
	"strconv"
	"strings"
)

// splitNames turns a comma-separated -vars value into the ordered
// variable-name list. An empty flag means no variables, which is
// legal: every identifier then resolves through the constants.
func splitNames(flagValue string) []string {
	if flagValue == "" {
		return nil
	}
	out := strings.Split(flagValue, ",")
	for i := range out {
		out[i] = strings.TrimSpace(out[i])
	}
	return out
}

// splitValues turns a comma-separated -at value into the value
// vector.
func splitValues(flagValue string) ([]float64, error) {
	if flagValue == "" {
		return nil, nil
	}
	parts := strings.Split(flagValue, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}
