// Package validation holds the input validation rules the domain state
// store enforces before persisting anything.
package validation

import (
	"net/url"
	"regexp"
	"strings"
)

// Validation rule patterns and limits
var (
	// EmailPattern matches the addresses accepted at registration
	EmailPattern = `^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`

	// NameMinLength / NameMaxLength bound member names
	NameMinLength = 2
	NameMaxLength = 100

	// TitleMaxLength bounds submission and event titles
	TitleMaxLength = 200
)

var emailRegexp = regexp.MustCompile(EmailPattern)

// IsValidEmail reports whether the address is acceptable for registration
func IsValidEmail(email string) bool {
	return emailRegexp.MatchString(strings.TrimSpace(email))
}

// IsValidName reports whether the member name is within bounds
func IsValidName(name string) bool {
	n := len(strings.TrimSpace(name))
	return n >= NameMinLength && n <= NameMaxLength
}

// IsValidURL reports whether the value is an absolute http(s) URL.
// Image and video submissions carry their content as a URL.
func IsValidURL(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// NotBlank reports whether the value contains non-whitespace content
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}
