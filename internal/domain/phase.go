package domain

import "fmt"

// Phase is a step of the registration workflow.
type Phase string

const (
	PhaseAwaitingBarcode  Phase = "awaiting_barcode"
	PhaseBarcodeConfirmed Phase = "barcode_confirmed"
	PhaseRecipientIntro   Phase = "recipient_intro"
	PhaseRecipientCapture Phase = "recipient_capture"
	PhaseRecipientReview  Phase = "recipient_review"
	PhaseCompleted        Phase = "completed"
)

// phaseOrder lists the phases in workflow order.
var phaseOrder = []Phase{
	PhaseAwaitingBarcode,
	PhaseBarcodeConfirmed,
	PhaseRecipientIntro,
	PhaseRecipientCapture,
	PhaseRecipientReview,
	PhaseCompleted,
}

// Phases returns all phases in workflow order.
func Phases() []Phase {
	out := make([]Phase, len(phaseOrder))
	copy(out, phaseOrder)
	return out
}

// ParsePhase converts its wire name into a Phase.
func ParsePhase(s string) (Phase, error) {
	for _, p := range phaseOrder {
		if string(p) == s {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: unknown phase %q", ErrValidation, s)
}

// Rank is the position of p in workflow order, or -1 for an unknown phase.
func (p Phase) Rank() int {
	for i, q := range phaseOrder {
		if q == p {
			return i
		}
	}
	return -1
}

// IsTerminal reports whether no further transitions leave p.
func (p Phase) IsTerminal() bool {
	return p == PhaseCompleted
}

func (p Phase) String() string {
	return string(p)
}
