package respond

import "regexp"

// Credentials embedded in connection strings must never reach logs.
var dsnPasswordPattern = regexp.MustCompile(`://([^:]+):([^@]+)@`)

// SanitizeError returns the error message with secrets masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}
	return dsnPasswordPattern.ReplaceAllString(err.Error(), "://$1:****@")
}
