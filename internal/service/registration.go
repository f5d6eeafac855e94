// Package service contains the business logic of the parcel intake API.
// Services own the live registration sessions, run the classifier on
// recognized label text and hand completed registrations to the submission
// sink. No SQL and no HTTP live here.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/pkordes/parcel-intake/internal/classifier"
	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/metrics"
	"github.com/pkordes/parcel-intake/internal/repo"
	"github.com/pkordes/parcel-intake/internal/submission"
	"github.com/pkordes/parcel-intake/internal/workflow"
)

// Timing controls server-side delivery of the fixed-delay timers.
type Timing struct {
	// AutoAdvance enables the timers. When false the client drives the
	// workflow with explicit timer and advance events.
	AutoAdvance         bool
	BarcodeConfirmDelay time.Duration
	RecipientIntroDelay time.Duration
}

// DefaultTiming matches the delays of the mobile client.
var DefaultTiming = Timing{
	AutoAdvance:         true,
	BarcodeConfirmDelay: 3 * time.Second,
	RecipientIntroDelay: 2 * time.Second,
}

// delay returns the auto-advance delay armed on entering p, or 0 if p has none.
func (t Timing) delay(p domain.Phase) time.Duration {
	if !t.AutoAdvance {
		return 0
	}
	switch p {
	case domain.PhaseBarcodeConfirmed:
		return t.BarcodeConfirmDelay
	case domain.PhaseRecipientIntro:
		return t.RecipientIntroDelay
	}
	return 0
}

// RegistrationService runs registration sessions on behalf of the HTTP layer.
// Events on one session are serialized by the session entry's lock; events on
// different sessions run concurrently.
type RegistrationService struct {
	sessions repo.SessionRepo
	units    repo.UnitRepo
	submit   submission.Submitter
	timing   Timing
	metrics  *metrics.Metrics
	logger   *slog.Logger
	tracer   trace.Tracer
	now      func() time.Time
}

// RegistrationOption configures a RegistrationService.
type RegistrationOption func(*RegistrationService)

// WithTiming sets the auto-advance delays. Without it timers are off.
func WithTiming(t Timing) RegistrationOption {
	return func(s *RegistrationService) { s.timing = t }
}

// WithMetrics records session and event metrics on m.
func WithMetrics(m *metrics.Metrics) RegistrationOption {
	return func(s *RegistrationService) { s.metrics = m }
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) RegistrationOption {
	return func(s *RegistrationService) { s.logger = l }
}

// WithTracer sets the tracer for classifier spans.
func WithTracer(t trace.Tracer) RegistrationOption {
	return func(s *RegistrationService) { s.tracer = t }
}

// WithClock overrides the time source handed to new workflow controllers.
func WithClock(now func() time.Time) RegistrationOption {
	return func(s *RegistrationService) { s.now = now }
}

// NewRegistrationService constructs a RegistrationService.
// Auto-advance timers are off unless WithTiming enables them.
func NewRegistrationService(sessions repo.SessionRepo, units repo.UnitRepo, submit submission.Submitter, opts ...RegistrationOption) *RegistrationService {
	s := &RegistrationService{
		sessions: sessions,
		units:    units,
		submit:   submit,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	if s.tracer == nil {
		s.tracer = otel.Tracer("parcel-intake/service")
	}
	return s
}

// Start opens a new session in PhaseAwaitingBarcode.
func (s *RegistrationService) Start(ctx context.Context) (domain.RegistrationSession, error) {
	c := workflow.New(uuid.New(), workflow.WithClock(s.now))
	s.sessions.Put(ctx, repo.NewSessionEntry(c))
	s.metrics.SessionStarted()

	snap := c.Snapshot()
	s.logger.InfoContext(ctx, "registration started", "session_id", snap.ID)
	return snap, nil
}

// Get returns a snapshot of the session.
func (s *RegistrationService) Get(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.Get: %w", err)
	}
	e.Lock()
	defer e.Unlock()
	if e.Removed {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.Get: %w", domain.ErrNotFound)
	}
	return e.Controller.Snapshot(), nil
}

// List returns one page of live sessions ordered by creation time, and the
// total number of live sessions.
func (s *RegistrationService) List(ctx context.Context, p domain.PaginationParams) ([]domain.RegistrationSession, int64, error) {
	all := make([]domain.RegistrationSession, 0)
	for _, e := range s.sessions.List(ctx) {
		e.Lock()
		if !e.Removed {
			all = append(all, e.Controller.Snapshot())
		}
		e.Unlock()
	}
	start, end := p.Window(len(all))
	return all[start:end], int64(len(all)), nil
}

// ScanBarcode delivers a barcode scan result.
func (s *RegistrationService) ScanBarcode(ctx context.Context, id uuid.UUID, code string) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventBarcodeScanned, Code: code})
}

// TimerElapsed delivers a fixed-delay expiry armed in phase armedFor.
// While server-side timers are on, armedFor is required so a client expiry
// cannot outrun the intro the server is still timing.
func (s *RegistrationService) TimerElapsed(ctx context.Context, id uuid.UUID, armedFor domain.Phase) (domain.RegistrationSession, error) {
	if s.timing.AutoAdvance && armedFor == "" {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.TimerElapsed: %w: phase is required while server-side timers are enabled", domain.ErrValidation)
	}
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventTimerElapsed, ArmedFor: armedFor})
}

// Advance skips the recipient introduction.
func (s *RegistrationService) Advance(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventAdvance})
}

// Classify runs the label classifier over lines. It never fails.
func (s *RegistrationService) Classify(ctx context.Context, lines []string) domain.ClassificationResult {
	_, span := s.tracer.Start(ctx, "classifier.classify", trace.WithAttributes(
		attribute.Int("lines", len(lines)),
	))
	defer span.End()

	started := time.Now()
	result := classifier.Classify(lines)
	s.metrics.Classification(string(result.Confidence), time.Since(started).Seconds())

	span.SetAttributes(attribute.String("confidence", string(result.Confidence)))
	return result
}

// SubmitRecognition classifies the recognized label lines and delivers the
// result to the session.
func (s *RegistrationService) SubmitRecognition(ctx context.Context, id uuid.UUID, lines []string) (domain.RegistrationSession, error) {
	result := s.Classify(ctx, lines)
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventClassified, Result: result})
}

// ManualEntry bypasses recognition and opens an empty recipient for editing.
func (s *RegistrationService) ManualEntry(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventManualEntry})
}

// EditNotes replaces the recipient notes. A non-zero expectedRevision must
// match the session.
func (s *RegistrationService) EditNotes(ctx context.Context, id uuid.UUID, notes string, expectedRevision int64) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventEditNotes, Notes: notes, ExpectedRevision: expectedRevision})
}

// EditRecipient corrects the recipient name and/or address.
func (s *RegistrationService) EditRecipient(ctx context.Context, id uuid.UUID, u domain.RecipientUpdate, expectedRevision int64) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventEditRecipient, Update: u, ExpectedRevision: expectedRevision})
}

// SelectUnit assigns a unit from the catalog. Labels not in the catalog are
// rejected with domain.ErrValidation.
func (s *RegistrationService) SelectUnit(ctx context.Context, id uuid.UUID, unit string, expectedRevision int64) (domain.RegistrationSession, error) {
	u, err := s.units.GetByLabel(ctx, unit)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.RegistrationSession{}, fmt.Errorf("%w: unknown unit %q", domain.ErrValidation, unit)
		}
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.SelectUnit: %w", err)
	}
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventSelectUnit, Unit: u.Label, ExpectedRevision: expectedRevision})
}

// Reedit discards the recipient and returns to capture.
func (s *RegistrationService) Reedit(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	return s.apply(ctx, id, workflow.Event{Kind: workflow.EventReedit})
}

// Confirm completes the session and hands it to the submission sink.
//
// If the hand-off fails the session stays completed and the returned error
// wraps domain.ErrSubmissionFailed; Submit retries it. On success the
// session is removed.
func (s *RegistrationService) Confirm(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.Confirm: %w", err)
	}
	e.Lock()
	defer e.Unlock()

	if _, err := s.applyLocked(ctx, e, workflow.Event{Kind: workflow.EventConfirm}); err != nil {
		return domain.RegistrationSession{}, err
	}
	return s.handOffLocked(ctx, e)
}

// Submit retries the hand-off of a completed session.
func (s *RegistrationService) Submit(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.Submit: %w", err)
	}
	e.Lock()
	defer e.Unlock()
	if e.Removed {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.Submit: %w", domain.ErrNotFound)
	}
	return s.handOffLocked(ctx, e)
}

// Close cancels the session. Pending timers are stopped and the session is
// removed; later events get domain.ErrNotFound.
func (s *RegistrationService) Close(ctx context.Context, id uuid.UUID) error {
	e, err := s.entry(ctx, id)
	if err != nil {
		return fmt.Errorf("service.RegistrationService.Close: %w", err)
	}
	e.Lock()
	defer e.Unlock()

	if _, err := s.applyLocked(ctx, e, workflow.Event{Kind: workflow.EventClose}); err != nil {
		return err
	}
	s.removeLocked(ctx, e)
	return nil
}

// apply delivers ev to the session under its lock.
func (s *RegistrationService) apply(ctx context.Context, id uuid.UUID, ev workflow.Event) (domain.RegistrationSession, error) {
	e, err := s.entry(ctx, id)
	if err != nil {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.apply: %w", err)
	}
	e.Lock()
	defer e.Unlock()
	return s.applyLocked(ctx, e, ev)
}

// applyLocked delivers ev and re-arms the auto-advance timer for the new
// phase. The caller holds e's lock.
func (s *RegistrationService) applyLocked(ctx context.Context, e *repo.SessionEntry, ev workflow.Event) (domain.RegistrationSession, error) {
	if e.Removed {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.apply: %w", domain.ErrNotFound)
	}

	tr, err := e.Controller.Apply(ev)
	s.metrics.Event(string(ev.Kind), err == nil)
	if err != nil {
		s.logger.DebugContext(ctx, "workflow event rejected",
			"session_id", e.ID,
			"event", ev.Kind,
			"phase", e.Controller.Phase(),
			"error", err,
		)
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.apply: %w", err)
	}

	s.logger.InfoContext(ctx, "workflow event",
		"session_id", e.ID,
		"event", tr.Event,
		"from", tr.From,
		"to", tr.To,
		"revision", tr.Revision,
	)

	if tr.From != tr.To || tr.Discarded() {
		e.StopTimer()
		if !tr.Discarded() {
			s.armTimer(e, tr.To)
		}
	}
	return e.Controller.Snapshot(), nil
}

// armTimer schedules the auto-advance expiry for phase p, if it has one.
// The caller holds e's lock.
func (s *RegistrationService) armTimer(e *repo.SessionEntry, p domain.Phase) {
	d := s.timing.delay(p)
	if d <= 0 {
		return
	}
	id := e.ID
	e.Timer = time.AfterFunc(d, func() {
		ctx := context.Background()
		if _, err := s.TimerElapsed(ctx, id, p); err != nil {
			s.logger.DebugContext(ctx, "auto-advance dropped", "session_id", id, "armed_for", p, "error", err)
		}
	})
}

// handOffLocked submits a completed session and removes it on success.
// The caller holds e's lock.
func (s *RegistrationService) handOffLocked(ctx context.Context, e *repo.SessionEntry) (domain.RegistrationSession, error) {
	sub, err := e.Controller.Submission()
	if err != nil {
		return domain.RegistrationSession{}, fmt.Errorf("service.RegistrationService.handOff: %w", err)
	}
	snap := e.Controller.Snapshot()

	started := time.Now()
	err = s.submit.Submit(ctx, sub)
	s.metrics.Submission(err == nil, time.Since(started).Seconds())
	if err != nil {
		s.logger.WarnContext(ctx, "submission failed", "session_id", e.ID, "error", err)
		if !errors.Is(err, domain.ErrSubmissionFailed) {
			err = fmt.Errorf("%w: %v", domain.ErrSubmissionFailed, err)
		}
		return snap, fmt.Errorf("service.RegistrationService.handOff: %w", err)
	}

	s.logger.InfoContext(ctx, "registration handed off", "session_id", e.ID, "barcode", sub.Barcode)
	s.removeLocked(ctx, e)
	return snap, nil
}

// removeLocked marks e removed and drops it from the repo.
// The caller holds e's lock.
func (s *RegistrationService) removeLocked(ctx context.Context, e *repo.SessionEntry) {
	e.StopTimer()
	e.Removed = true
	if err := s.sessions.Delete(ctx, e.ID); err != nil && !errors.Is(err, domain.ErrNotFound) {
		s.logger.WarnContext(ctx, "session delete failed", "session_id", e.ID, "error", err)
	}
}

func (s *RegistrationService) entry(ctx context.Context, id uuid.UUID) (*repo.SessionEntry, error) {
	return s.sessions.Get(ctx, id)
}
