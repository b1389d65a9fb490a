package utils

import (
	"strings"
	"time"
)

// ValidateDate checks the canonical YYYY-MM-DD form used by booking dates.
func ValidateDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// UsernameFromEmail derives a username from the local part of an email.
func UsernameFromEmail(email string) string {
	if i := strings.Index(email, "@"); i > 0 {
		return email[:i]
	}
	return email
}
