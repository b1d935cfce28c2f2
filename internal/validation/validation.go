package validation

import "regexp"

const (
	// SeedLength is the exact length required for an employee seed.
	SeedLength = 7
	// MinPasswordLength is the minimum length of a plaintext password.
	MinPasswordLength = 6
	// MaxSkillLevel is the upper bound of a skill level, inclusive.
	MaxSkillLevel = 100
)

var emailRegexp = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

// IsValidEmail reports whether s looks like local@domain.tld.
func IsValidEmail(s string) bool {
	return emailRegexp.MatchString(s)
}

// IsValidSeed reports whether s is exactly SeedLength characters long.
func IsValidSeed(s string) bool {
	return len(s) == SeedLength
}

// IsValidPassword reports whether s is long enough to be accepted as a password.
func IsValidPassword(s string) bool {
	return len(s) >= MinPasswordLength
}

// IsValidSkillLevel reports whether v is within [0, MaxSkillLevel].
func IsValidSkillLevel(v int) bool {
	return v >= 0 && v <= MaxSkillLevel
}
