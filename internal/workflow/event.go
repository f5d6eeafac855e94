package workflow

import "github.com/pkordes/parcel-intake/internal/domain"

// EventKind names a trigger the controller understands.
type EventKind string

const (
	EventBarcodeScanned EventKind = "barcode_scanned"
	EventTimerElapsed   EventKind = "timer_elapsed"
	EventAdvance        EventKind = "advance"
	EventClassified     EventKind = "classified"
	EventManualEntry    EventKind = "manual_entry"
	EventEditNotes      EventKind = "edit_notes"
	EventEditRecipient  EventKind = "edit_recipient"
	EventSelectUnit     EventKind = "select_unit"
	EventReedit         EventKind = "reedit"
	EventConfirm        EventKind = "confirm"
	EventClose          EventKind = "close"
)

// Event is a trigger delivered to a Controller.
// Only the payload fields belonging to Kind are read.
type Event struct {
	Kind EventKind

	Code     string                      // EventBarcodeScanned
	ArmedFor domain.Phase                // EventTimerElapsed; empty matches the current phase
	Result   domain.ClassificationResult // EventClassified
	Notes    string                      // EventEditNotes
	Update   domain.RecipientUpdate      // EventEditRecipient
	Unit     string                      // EventSelectUnit

	// ExpectedRevision, when non-zero, must equal the session revision or
	// the event is rejected with domain.ErrRevisionConflict.
	ExpectedRevision int64
}

// Transition records an accepted event.
type Transition struct {
	From     domain.Phase
	To       domain.Phase
	Event    EventKind
	Revision int64 // session revision after the event
}

// Discarded reports whether the transition closed the session.
func (t Transition) Discarded() bool {
	return t.Event == EventClose
}

// transitions is the complete table of accepted (phase, event) pairs.
// EventClose is handled separately: it is accepted from every non-terminal phase.
var transitions = map[domain.Phase]map[EventKind]domain.Phase{
	domain.PhaseAwaitingBarcode: {
		EventBarcodeScanned: domain.PhaseBarcodeConfirmed,
	},
	domain.PhaseBarcodeConfirmed: {
		EventTimerElapsed: domain.PhaseRecipientIntro,
	},
	domain.PhaseRecipientIntro: {
		EventTimerElapsed: domain.PhaseRecipientCapture,
		EventAdvance:      domain.PhaseRecipientCapture,
	},
	domain.PhaseRecipientCapture: {
		EventClassified:  domain.PhaseRecipientReview,
		EventManualEntry: domain.PhaseRecipientReview,
	},
	domain.PhaseRecipientReview: {
		EventEditNotes:     domain.PhaseRecipientReview,
		EventEditRecipient: domain.PhaseRecipientReview,
		EventSelectUnit:    domain.PhaseRecipientReview,
		EventReedit:        domain.PhaseRecipientCapture,
		EventConfirm:       domain.PhaseCompleted,
	},
}

// Accepts reports whether phase p has a transition for kind.
func Accepts(p domain.Phase, kind EventKind) bool {
	if kind == EventClose {
		return p.Rank() >= 0 && !p.IsTerminal()
	}
	_, ok := transitions[p][kind]
	return ok
}
