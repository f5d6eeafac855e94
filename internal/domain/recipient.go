package domain

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// MaxNotesLength is the upper bound, in characters, of RecipientData.Notes.
const MaxNotesLength = 256

// Sentinel placeholders returned by the classifier when a field could not be
// recognized. Downstream they mean "needs manual entry".
const (
	UnidentifiedName    = "Nome não identificado"
	UnidentifiedAddress = "Endereço não identificado"
)

// RecipientData describes who a delivery is for.
// Values are treated as immutable: the With* and Apply methods return a
// modified copy, and the workflow controller commits it into the session.
type RecipientData struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Unit    string `json:"unit,omitempty"` // block or department, picked from the unit catalog
	Notes   string `json:"notes,omitempty"`
}

// RecipientUpdate is a partial edit of the recipient's name and address.
// Nil fields are left unchanged.
type RecipientUpdate struct {
	Name    *string
	Address *string
}

// IsEmpty reports whether the update changes nothing.
func (u RecipientUpdate) IsEmpty() bool {
	return u.Name == nil && u.Address == nil
}

// WithNotes returns a copy of r with Notes replaced.
// Returns ErrValidation if notes exceeds MaxNotesLength characters.
func (r RecipientData) WithNotes(notes string) (RecipientData, error) {
	notes = strings.TrimSpace(notes)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return r, fmt.Errorf("%w: notes must be at most %d characters", ErrValidation, MaxNotesLength)
	}
	r.Notes = notes
	return r, nil
}

// WithUnit returns a copy of r with Unit replaced.
// Returns ErrValidation if unit is blank.
func (r RecipientData) WithUnit(unit string) (RecipientData, error) {
	unit = strings.TrimSpace(unit)
	if unit == "" {
		return r, fmt.Errorf("%w: unit is required", ErrValidation)
	}
	r.Unit = unit
	return r, nil
}

// Apply returns a copy of r with the non-nil fields of u applied.
// Values are trimmed; blanking a field is allowed and is caught at confirm.
func (r RecipientData) Apply(u RecipientUpdate) RecipientData {
	if u.Name != nil {
		r.Name = strings.TrimSpace(*u.Name)
	}
	if u.Address != nil {
		r.Address = strings.TrimSpace(*u.Address)
	}
	return r
}

// Missing returns the names of required fields that are empty or still hold
// a sentinel placeholder. A nil result means the record can be confirmed.
func (r RecipientData) Missing() []string {
	var missing []string
	if r.Name == "" || r.Name == UnidentifiedName {
		missing = append(missing, "name")
	}
	if r.Address == "" || r.Address == UnidentifiedAddress {
		missing = append(missing, "address")
	}
	return missing
}
