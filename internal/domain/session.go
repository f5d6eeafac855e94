package domain

import (
	"time"

	"github.com/google/uuid"
)

// RegistrationSession is one in-progress registration attempt, from barcode
// scan to completion or cancellation. It is owned by a single workflow
// controller; everything else works on copies.
type RegistrationSession struct {
	ID        uuid.UUID
	Phase     Phase
	Barcode   BarcodeCode // empty until the scan phase is left
	Recipient RecipientData

	// Revision increases by one on every mutation. Edits may name the
	// revision they were based on to detect lost updates.
	Revision int64

	// Confidence of the classification the recipient came from.
	// Empty when the recipient was entered manually.
	Confidence Confidence

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Submission is the hand-off record of a completed session.
type Submission struct {
	SessionID   uuid.UUID     `json:"session_id"`
	Barcode     BarcodeCode   `json:"barcode"`
	Recipient   RecipientData `json:"recipient"`
	CompletedAt time.Time     `json:"completed_at"`
}
