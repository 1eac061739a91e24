// Package validation holds the local syntax checks applied to caller input
// before any request is issued.
package validation

import "log/slog"

// digitPositions are the indexes of a YYYY-MM-DD string that must be digits;
// positions 4 and 7 must be dashes.
var digitPositions = map[int]bool{0: true, 1: true, 2: true, 3: true, 5: true, 6: true, 8: true, 9: true}

// ValidDate reports whether s has the exact shape YYYY-MM-DD. Only the shape
// is checked, not calendar validity: "9999-99-99" passes.
func ValidDate(s string) bool {
	if len(s) != 10 {
		slog.Error("date has incorrect length", slog.Int("length", len(s)))
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if digitPositions[i] {
			if c < '0' || c > '9' {
				slog.Warn("not a digit", slog.String("char", string(c)), slog.Int("position", i))
				return false
			}
		} else if c != '-' {
			slog.Warn("not a dash", slog.String("char", string(c)), slog.Int("position", i))
			return false
		}
	}
	return true
}

// ValidYear reports whether s is exactly four ASCII digits.
func ValidYear(s string) bool {
	if len(s) != 4 {
		slog.Error("year has incorrect length", slog.Int("length", len(s)))
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			slog.Warn("not a digit", slog.String("char", string(s[i])), slog.Int("position", i))
			return false
		}
	}
	return true
}
