package utils

import "strings"

// NormalizeText trims s and collapses every run of whitespace into a single space.
// Movement numbers and reference names are stored in this form.
func NormalizeText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
