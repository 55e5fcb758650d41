package utils

import "strings"

// NewNullString is a helper for string pointers, returning nil if the string is
// empty after trimming. Useful for fields that are optional and should be NULL
// in the DB if not provided.
func NewNullString(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
