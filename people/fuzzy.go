// ABOUTME: Fuzzy key normalization and date detection helpers
// ABOUTME: Reduces names to lowercase alphanumerics for exact-match comparison
package people

import (
	"strconv"
	"strings"
)

// fuzzyKey strips everything but ASCII letters and digits and lowercases the
// rest, so "Room Number", "room_number", and "ROOMNUMBER" all compare equal.
// Comparison is equality on the normalized form only; there is no
// edit-distance matching.
func fuzzyKey(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r >= 'A' && r <= 'Z':
			b.WriteRune(r + ('a' - 'A'))
		}
	}
	return b.String()
}

// isoDate rewrites values shaped like MM/DD/YYYY to ISO YYYY-MM-DD. Values
// that do not look like a US-formatted date, including out-of-range months
// or days, come back unchanged.
func isoDate(v string) string {
	parts := strings.Split(v, "/")
	if len(parts) != 3 {
		return v
	}
	month, errM := strconv.Atoi(parts[0])
	day, errD := strconv.Atoi(parts[1])
	year, errY := strconv.Atoi(parts[2])
	if errM != nil || errD != nil || errY != nil {
		return v
	}
	if month < 1 || month > 12 || day < 1 || day > 31 || year < 0 || year > 9999 {
		return v
	}
	return parts[2] + "-" + parts[0] + "-" + parts[1]
}
