package domain

import "net/mail"

// IsValidEmail reports whether s is a syntactically valid email address
func IsValidEmail(s string) bool {
	addr, err := mail.ParseAddress(s)
	return err == nil && addr.Address == s
}
