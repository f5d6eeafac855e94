// Package workflow implements the registration state machine.
//
// A Controller owns one domain.RegistrationSession and moves it through
// AwaitingBarcode → BarcodeConfirmed → RecipientIntro → RecipientCapture →
// RecipientReview → Completed. It performs no I/O and owns no timers: scans,
// timer expiries, classification results and user actions all arrive as
// Events. A Controller is not safe for concurrent use; callers serialize
// events per session.
package workflow

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pkordes/parcel-intake/internal/domain"
)

// Controller drives a single registration session.
type Controller struct {
	session domain.RegistrationSession
	closed  bool
	now     func() time.Time
}

// Option configures a Controller.
type Option func(*Controller)

// WithClock overrides the time source used for CreatedAt/UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// New starts a session in PhaseAwaitingBarcode.
func New(id uuid.UUID, opts ...Option) *Controller {
	c := &Controller{now: time.Now}
	for _, opt := range opts {
		opt(c)
	}
	ts := c.now().UTC()
	c.session = domain.RegistrationSession{
		ID:        id,
		Phase:     domain.PhaseAwaitingBarcode,
		CreatedAt: ts,
		UpdatedAt: ts,
	}
	return c
}

// Snapshot returns a copy of the session.
func (c *Controller) Snapshot() domain.RegistrationSession {
	return c.session
}

// Phase returns the current phase.
func (c *Controller) Phase() domain.Phase {
	return c.session.Phase
}

// Closed reports whether the session was discarded by EventClose.
func (c *Controller) Closed() bool {
	return c.closed
}

// Submission returns the hand-off record. Only completed sessions have one.
func (c *Controller) Submission() (domain.Submission, error) {
	if c.closed {
		return domain.Submission{}, fmt.Errorf("workflow.Controller.Submission: %w", domain.ErrSessionClosed)
	}
	if c.session.Phase != domain.PhaseCompleted {
		return domain.Submission{}, fmt.Errorf("%w: session is %s, not completed", domain.ErrInvalidTransition, c.session.Phase)
	}
	return domain.Submission{
		SessionID:   c.session.ID,
		Barcode:     c.session.Barcode,
		Recipient:   c.session.Recipient,
		CompletedAt: c.session.UpdatedAt,
	}, nil
}

// Apply delivers ev. On error the session is unchanged.
//
// Revision is bumped when barcode or recipient data changes; phase-only
// moves (timers, advance, confirm) keep it.
func (c *Controller) Apply(ev Event) (Transition, error) {
	if c.closed {
		return Transition{}, fmt.Errorf("workflow.Controller.Apply: %w", domain.ErrSessionClosed)
	}

	from := c.session.Phase
	if !Accepts(from, ev.Kind) {
		return Transition{}, fmt.Errorf("workflow.Controller.Apply: %w: %s is not accepted in phase %s", domain.ErrInvalidTransition, ev.Kind, from)
	}
	if ev.Kind == EventTimerElapsed && ev.ArmedFor != "" && ev.ArmedFor != from {
		return Transition{}, fmt.Errorf("workflow.Controller.Apply: %w: timer armed for %s fired in phase %s", domain.ErrInvalidTransition, ev.ArmedFor, from)
	}
	if ev.ExpectedRevision != 0 && ev.ExpectedRevision != c.session.Revision {
		return Transition{}, fmt.Errorf("workflow.Controller.Apply: %w: expected revision %d, session is at %d",
			domain.ErrRevisionConflict, ev.ExpectedRevision, c.session.Revision)
	}

	if ev.Kind == EventClose {
		c.closed = true
		return Transition{From: from, To: from, Event: ev.Kind, Revision: c.session.Revision}, nil
	}

	next := c.session
	mutated, err := applyEffect(&next, ev)
	if err != nil {
		return Transition{}, err
	}
	next.Phase = transitions[from][ev.Kind]
	if mutated {
		next.Revision++
	}
	next.UpdatedAt = c.now().UTC()
	c.session = next

	return Transition{From: from, To: next.Phase, Event: ev.Kind, Revision: next.Revision}, nil
}

// applyEffect performs the data side of an accepted event on s.
// It reports whether barcode or recipient data changed.
func applyEffect(s *domain.RegistrationSession, ev Event) (bool, error) {
	switch ev.Kind {
	case EventBarcodeScanned:
		code, err := domain.NewBarcodeCode(ev.Code)
		if err != nil {
			return false, err
		}
		s.Barcode = code
		return true, nil

	case EventClassified:
		s.Recipient = ev.Result.Recipient()
		s.Confidence = ev.Result.Confidence
		return true, nil

	case EventManualEntry, EventReedit:
		s.Recipient = domain.RecipientData{}
		s.Confidence = ""
		return true, nil

	case EventEditNotes:
		r, err := s.Recipient.WithNotes(ev.Notes)
		if err != nil {
			return false, err
		}
		s.Recipient = r
		return true, nil

	case EventEditRecipient:
		if ev.Update.IsEmpty() {
			return false, fmt.Errorf("%w: name or address is required", domain.ErrValidation)
		}
		s.Recipient = s.Recipient.Apply(ev.Update)
		return true, nil

	case EventSelectUnit:
		r, err := s.Recipient.WithUnit(ev.Unit)
		if err != nil {
			return false, err
		}
		s.Recipient = r
		return true, nil

	case EventConfirm:
		if missing := s.Recipient.Missing(); len(missing) > 0 {
			return false, fmt.Errorf("%w: missing %s", domain.ErrIncompleteData, strings.Join(missing, ", "))
		}
		return false, nil
	}
	return false, nil
}
