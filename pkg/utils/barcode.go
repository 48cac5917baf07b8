package utils

import "regexp"

var barcodePattern = regexp.MustCompile(`^[0-9A-Za-z-]+$`)

// IsValidBarcode reports whether s is acceptable as a product barcode:
// non-empty, at most 64 characters, alphanumeric plus hyphens.
func IsValidBarcode(s string) bool {
	return s != "" && len(s) <= 64 && barcodePattern.MatchString(s)
}
