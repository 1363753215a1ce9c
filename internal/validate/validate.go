package validate

import (
	"regexp"
	"strings"
)

var (
	reEmail = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	reExtID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)
)

// ExternalID validates a partner-side user identifier (ram_user_id).
func ExternalID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reExtID.MatchString(s)
}

func Email(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if len(s) == 0 || len(s) > 100 {
		return "", false
	}
	return s, reEmail.MatchString(s)
}

// Name trims a display name and caps it at 100 characters, matching the
// partner payload contract. Empty is allowed; callers substitute defaults.
func Name(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 100 {
		s = s[:100]
	}
	return s
}

// Qty clamps a requested line quantity to a sane window.
func Qty(n int) int {
	if n < 1 {
		return 1
	}
	if n > 50 {
		return 50
	}
	return n
}

// Clamp bounds n into [lo,hi].
func Clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
