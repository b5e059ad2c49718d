package validation

import (
	"regexp"
)

// Validation rule patterns
var (
	// Email validation pattern
	EmailPattern = `^[a-z0-9._%+\-]+@[a-z0-9.\-]+\.[a-z]{2,4}$`

	// Nomor induk (NPM/NIDN) pattern - digits only, 5 to 20 characters
	NomorIndukPattern = `^\d{5,20}$`

	// Academic year pattern, e.g. 2023/2024
	TahunAkademikPattern = `^\d{4}/\d{4}$`

	// Password min length
	PasswordMinLength = 8

	// Name validation min/max length
	NameMinLength = 2
	NameMaxLength = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Email         *regexp.Regexp
	NomorInduk    *regexp.Regexp
	TahunAkademik *regexp.Regexp
}{
	Email:         regexp.MustCompile(EmailPattern),
	NomorInduk:    regexp.MustCompile(NomorIndukPattern),
	TahunAkademik: regexp.MustCompile(TahunAkademikPattern),
}

// IsValidEmail reports whether the value matches the email pattern.
func IsValidEmail(value string) bool {
	return CompiledPatterns.Email.MatchString(value)
}

// IsValidNomorInduk reports whether the value is a valid NPM/NIDN.
func IsValidNomorInduk(value string) bool {
	return CompiledPatterns.NomorInduk.MatchString(value)
}

// IsValidTahunAkademik reports whether the value looks like an academic
// year such as 2023/2024.
func IsValidTahunAkademik(value string) bool {
	return CompiledPatterns.TahunAkademik.MatchString(value)
}

// IsValidPassword reports whether the password meets the length rule.
func IsValidPassword(value string) bool {
	return len(value) >= PasswordMinLength
}
