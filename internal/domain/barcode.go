// Package domain contains the core data types for the parcel intake backend.
// This package has no internal dependencies and is imported by every other
// internal package (classifier, workflow, service, repo, handler).
package domain

import (
	"fmt"
	"strings"
)

// BarcodeCode is the decoded payload of the package barcode.
// It is opaque to this system: no checksum or format is enforced.
type BarcodeCode string

// NewBarcodeCode trims raw and rejects it when nothing is left.
func NewBarcodeCode(raw string) (BarcodeCode, error) {
	code := strings.TrimSpace(raw)
	if code == "" {
		return "", fmt.Errorf("%w: barcode is required", ErrValidation)
	}
	return BarcodeCode(code), nil
}

// IsZero reports whether no barcode has been set.
func (b BarcodeCode) IsZero() bool {
	return b == ""
}

func (b BarcodeCode) String() string {
	return string(b)
}
