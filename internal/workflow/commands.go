package workflow

import "github.com/pkordes/parcel-intake/internal/domain"

// ScanBarcode records the decoded barcode and leaves the scan phase.
func (c *Controller) ScanBarcode(code string) (Transition, error) {
	return c.Apply(Event{Kind: EventBarcodeScanned, Code: code})
}

// TimerElapsed delivers a fixed-delay expiry armed while the session was in
// phase armedFor. Pass "" when the caller does not track it.
func (c *Controller) TimerElapsed(armedFor domain.Phase) (Transition, error) {
	return c.Apply(Event{Kind: EventTimerElapsed, ArmedFor: armedFor})
}

// Advance leaves the recipient intro early, as a tap on the screen would.
func (c *Controller) Advance() (Transition, error) {
	return c.Apply(Event{Kind: EventAdvance})
}

// DeliverClassification fills the recipient from a classifier result and
// moves to review.
func (c *Controller) DeliverClassification(r domain.ClassificationResult) (Transition, error) {
	return c.Apply(Event{Kind: EventClassified, Result: r})
}

// RequestManualEntry moves to review with an empty recipient.
func (c *Controller) RequestManualEntry() (Transition, error) {
	return c.Apply(Event{Kind: EventManualEntry})
}

// EditNotes replaces the delivery notes. A non-zero expectedRevision must
// match the session revision.
func (c *Controller) EditNotes(notes string, expectedRevision int64) (Transition, error) {
	return c.Apply(Event{Kind: EventEditNotes, Notes: notes, ExpectedRevision: expectedRevision})
}

// EditRecipient applies a partial name/address edit.
func (c *Controller) EditRecipient(u domain.RecipientUpdate, expectedRevision int64) (Transition, error) {
	return c.Apply(Event{Kind: EventEditRecipient, Update: u, ExpectedRevision: expectedRevision})
}

// SelectUnit sets the recipient unit. The caller checks it against the catalog.
func (c *Controller) SelectUnit(unit string, expectedRevision int64) (Transition, error) {
	return c.Apply(Event{Kind: EventSelectUnit, Unit: unit, ExpectedRevision: expectedRevision})
}

// Reedit discards the recipient and returns to capture for another reading.
func (c *Controller) Reedit() (Transition, error) {
	return c.Apply(Event{Kind: EventReedit})
}

// Confirm freezes the recipient and completes the session.
func (c *Controller) Confirm() (Transition, error) {
	return c.Apply(Event{Kind: EventConfirm})
}

// Close ends the session. Every later Apply fails with ErrSessionClosed.
func (c *Controller) Close() (Transition, error) {
	return c.Apply(Event{Kind: EventClose})
}
