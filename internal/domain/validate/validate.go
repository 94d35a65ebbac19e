// Package validate provides the stateless predicates shared by every
// configuration aggregate. Predicates only report validity; callers decide
// which domain error to raise.
package validate

import (
	"net/mail"
	"net/url"
	"strings"
)

// IsNonEmpty reports whether s contains at least one non-whitespace character.
func IsNonEmpty(s string) bool {
	return strings.TrimSpace(s) != ""
}

// IsURL reports whether s parses as an absolute http(s) URL.
func IsURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}

	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHostname reports whether s looks like a bare hostname (e.g. "shop.example.com").
// A full URL is also accepted, since purchased domains arrive both ways.
func IsHostname(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	if strings.Contains(s, "://") {
		return IsURL(s)
	}
	if strings.ContainsAny(s, " /?#@") {
		return false
	}

	for _, label := range strings.Split(s, ".") {
		if label == "" || len(label) > 63 {
			return false
		}
		if strings.HasPrefix(label, "-") || strings.HasSuffix(label, "-") {
			return false
		}
		for _, r := range label {
			switch {
			case r >= 'a' && r <= 'z':
			case r >= 'A' && r <= 'Z':
			case r >= '0' && r <= '9':
			case r == '-':
			default:
				return false
			}
		}
	}

	return len(s) <= 253
}

// IsEmail reports whether s is a valid single email address.
func IsEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}

	// Reject display-name forms like `Bob <bob@example.com>`; only the bare
	// address is accepted.
	return addr.Address == s
}

// IsEnumMember reports whether value is one of the allowed members.
func IsEnumMember[T ~string](value T, members ...T) bool {
	for _, m := range members {
		if value == m {
			return true
		}
	}

	return false
}

// IsNonNegative reports whether v is zero or greater.
func IsNonNegative(v float64) bool {
	return v >= 0
}

// InRange reports whether v lies in the closed interval [min, max].
func InRange(v, min, max float64) bool {
	return v >= min && v <= max
}
