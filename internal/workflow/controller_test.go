package workflow_test

import (
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/workflow"
)

// ---- helpers ---------------------------------------------------------------

var fixedNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newController() *workflow.Controller {
	return workflow.New(uuid.New(), workflow.WithClock(func() time.Time { return fixedNow }))
}

func resolved() domain.ClassificationResult {
	return domain.ClassificationResult{
		Name:       "Maria Santos Oliveira",
		Address:    "Avenida Brasil, 456 - Bloco B - Copacabana",
		Confidence: domain.ConfidenceResolved,
	}
}

// inCapture returns a controller that has scanned a barcode and reached
// RecipientCapture through both timers.
func inCapture(t *testing.T) *workflow.Controller {
	t.Helper()
	c := newController()
	_, err := c.ScanBarcode("7891234567895")
	require.NoError(t, err)
	_, err = c.TimerElapsed(domain.PhaseBarcodeConfirmed)
	require.NoError(t, err)
	_, err = c.TimerElapsed(domain.PhaseRecipientIntro)
	require.NoError(t, err)
	require.Equal(t, domain.PhaseRecipientCapture, c.Phase())
	return c
}

func inReview(t *testing.T) *workflow.Controller {
	t.Helper()
	c := inCapture(t)
	_, err := c.DeliverClassification(resolved())
	require.NoError(t, err)
	require.Equal(t, domain.PhaseRecipientReview, c.Phase())
	return c
}

func ptr(s string) *string { return &s }

// ---- barcode ---------------------------------------------------------------

func TestNew_StartsAwaitingBarcode(t *testing.T) {
	c := newController()

	s := c.Snapshot()
	assert.Equal(t, domain.PhaseAwaitingBarcode, s.Phase)
	assert.True(t, s.Barcode.IsZero())
	assert.Zero(t, s.Revision)
	assert.Equal(t, fixedNow, s.CreatedAt)
}

func TestScanBarcode_SetsBarcodeAndBumpsRevisionOnce(t *testing.T) {
	c := newController()

	tr, err := c.ScanBarcode("  7891234567895 ")

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseAwaitingBarcode, tr.From)
	assert.Equal(t, domain.PhaseBarcodeConfirmed, tr.To)
	assert.EqualValues(t, 1, tr.Revision)

	s := c.Snapshot()
	assert.Equal(t, domain.BarcodeCode("7891234567895"), s.Barcode)
	assert.EqualValues(t, 1, s.Revision)
}

func TestScanBarcode_Blank(t *testing.T) {
	c := newController()

	_, err := c.ScanBarcode("   ")

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.Equal(t, domain.PhaseAwaitingBarcode, c.Phase())
	assert.Zero(t, c.Snapshot().Revision)
}

func TestScanBarcode_OnlyOnce(t *testing.T) {
	c := newController()
	_, err := c.ScanBarcode("first")
	require.NoError(t, err)

	_, err = c.ScanBarcode("second")

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.EqualError(t, err, "workflow.Controller.Apply: invalid transition: barcode_scanned is not accepted in phase barcode_confirmed")
	assert.Equal(t, domain.BarcodeCode("first"), c.Snapshot().Barcode)
}

// ---- timers ----------------------------------------------------------------

func TestTimers_AdvanceWithoutRevisionBump(t *testing.T) {
	c := newController()
	_, err := c.ScanBarcode("abc")
	require.NoError(t, err)

	tr, err := c.TimerElapsed(domain.PhaseBarcodeConfirmed)
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientIntro, tr.To)

	tr, err = c.TimerElapsed("")
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientCapture, tr.To)
	assert.EqualValues(t, 1, c.Snapshot().Revision)
}

func TestTimer_StaleIsRejected(t *testing.T) {
	c := newController()
	_, err := c.ScanBarcode("abc")
	require.NoError(t, err)
	_, err = c.TimerElapsed(domain.PhaseBarcodeConfirmed)
	require.NoError(t, err)

	// A second timer armed for BarcodeConfirmed must not push the intro along.
	_, err = c.TimerElapsed(domain.PhaseBarcodeConfirmed)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.ErrorContains(t, err, "workflow.Controller.Apply: ")
	assert.Equal(t, domain.PhaseRecipientIntro, c.Phase())
}

func TestAdvance_OnlyFromIntro(t *testing.T) {
	c := newController()
	_, err := c.ScanBarcode("abc")
	require.NoError(t, err)

	_, err = c.Advance()
	assert.ErrorIs(t, err, domain.ErrInvalidTransition)

	_, err = c.TimerElapsed(domain.PhaseBarcodeConfirmed)
	require.NoError(t, err)

	tr, err := c.Advance()
	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientCapture, tr.To)
}

// ---- capture ---------------------------------------------------------------

func TestDeliverClassification_PopulatesRecipient(t *testing.T) {
	c := inCapture(t)

	tr, err := c.DeliverClassification(resolved())

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientReview, tr.To)
	s := c.Snapshot()
	assert.Equal(t, "Maria Santos Oliveira", s.Recipient.Name)
	assert.Equal(t, domain.ConfidenceResolved, s.Confidence)
	assert.EqualValues(t, 2, s.Revision)
}

func TestRequestManualEntry_EmptyRecord(t *testing.T) {
	c := inCapture(t)

	_, err := c.RequestManualEntry()

	require.NoError(t, err)
	s := c.Snapshot()
	assert.Equal(t, domain.PhaseRecipientReview, s.Phase)
	assert.Equal(t, domain.RecipientData{}, s.Recipient)
	assert.Empty(t, s.Confidence)
	assert.EqualValues(t, 2, s.Revision)
}

func TestDeliverClassification_InReviewIsRejected(t *testing.T) {
	c := inReview(t)
	before := c.Snapshot()

	_, err := c.DeliverClassification(domain.ClassificationResult{Name: "Other", Address: "Elsewhere 1"})

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	assert.Equal(t, before, c.Snapshot())
}

// ---- review ----------------------------------------------------------------

func TestEditNotes_SelfLoop(t *testing.T) {
	c := inReview(t)

	tr, err := c.EditNotes("Deixar na portaria", 0)

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientReview, tr.From)
	assert.Equal(t, domain.PhaseRecipientReview, tr.To)
	assert.EqualValues(t, 3, tr.Revision)
	assert.Equal(t, "Deixar na portaria", c.Snapshot().Recipient.Notes)
}

func TestEditNotes_TooLong(t *testing.T) {
	c := inReview(t)

	_, err := c.EditNotes(strings.Repeat("é", domain.MaxNotesLength+1), 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualValues(t, 2, c.Snapshot().Revision)
}

func TestEditNotes_RevisionConflict(t *testing.T) {
	c := inReview(t)

	_, err := c.EditNotes("late edit", 1)

	assert.ErrorIs(t, err, domain.ErrRevisionConflict)
	assert.Empty(t, c.Snapshot().Recipient.Notes)
}

func TestEditNotes_OutsideReview(t *testing.T) {
	c := inCapture(t)

	_, err := c.EditNotes("too early", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

func TestEditRecipient_CompletesManualEntry(t *testing.T) {
	c := inCapture(t)
	_, err := c.RequestManualEntry()
	require.NoError(t, err)

	_, err = c.EditRecipient(domain.RecipientUpdate{Name: ptr(" João da Silva "), Address: ptr("Rua Exemplo, 123")}, 2)
	require.NoError(t, err)
	_, err = c.SelectUnit("Bloco A - Administrativo", 3)
	require.NoError(t, err)

	s := c.Snapshot()
	assert.Equal(t, "João da Silva", s.Recipient.Name)
	assert.Equal(t, "Rua Exemplo, 123", s.Recipient.Address)
	assert.Equal(t, "Bloco A - Administrativo", s.Recipient.Unit)
	assert.EqualValues(t, 4, s.Revision)
}

func TestEditRecipient_EmptyUpdate(t *testing.T) {
	c := inReview(t)

	_, err := c.EditRecipient(domain.RecipientUpdate{}, 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestSelectUnit_Blank(t *testing.T) {
	c := inReview(t)

	_, err := c.SelectUnit("  ", 0)

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestReedit_ReturnsToCaptureAndClears(t *testing.T) {
	c := inReview(t)

	tr, err := c.Reedit()

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseRecipientCapture, tr.To)
	s := c.Snapshot()
	assert.Equal(t, domain.RecipientData{}, s.Recipient)
	assert.EqualValues(t, 3, s.Revision)

	// The capture phase accepts a fresh result.
	_, err = c.DeliverClassification(resolved())
	require.NoError(t, err)
}

// ---- confirm ---------------------------------------------------------------

func TestConfirm_Completes(t *testing.T) {
	c := inReview(t)

	tr, err := c.Confirm()

	require.NoError(t, err)
	assert.Equal(t, domain.PhaseCompleted, tr.To)

	sub, err := c.Submission()
	require.NoError(t, err)
	assert.Equal(t, domain.BarcodeCode("7891234567895"), sub.Barcode)
	assert.Equal(t, "Maria Santos Oliveira", sub.Recipient.Name)
	assert.Equal(t, c.Snapshot().ID, sub.SessionID)
}

func TestConfirm_EmptyName(t *testing.T) {
	c := inCapture(t)
	_, err := c.RequestManualEntry()
	require.NoError(t, err)
	_, err = c.EditRecipient(domain.RecipientUpdate{Address: ptr("Rua Exemplo, 123")}, 0)
	require.NoError(t, err)

	_, err = c.Confirm()

	assert.ErrorIs(t, err, domain.ErrIncompleteData)
	assert.ErrorContains(t, err, "name")
	assert.Equal(t, domain.PhaseRecipientReview, c.Phase())
}

func TestConfirm_SentinelPlaceholdersAreIncomplete(t *testing.T) {
	c := inCapture(t)
	_, err := c.DeliverClassification(domain.ClassificationResult{
		Name:       domain.UnidentifiedName,
		Address:    domain.UnidentifiedAddress,
		Confidence: domain.ConfidenceFallback,
	})
	require.NoError(t, err)

	_, err = c.Confirm()

	assert.ErrorIs(t, err, domain.ErrIncompleteData)
	assert.Equal(t, domain.PhaseRecipientReview, c.Phase())
}

func TestCompleted_IsFrozen(t *testing.T) {
	c := inReview(t)
	_, err := c.Confirm()
	require.NoError(t, err)
	before := c.Snapshot()

	for _, ev := range []workflow.Event{
		{Kind: workflow.EventEditNotes, Notes: "after the fact"},
		{Kind: workflow.EventEditRecipient, Update: domain.RecipientUpdate{Name: ptr("Someone")}},
		{Kind: workflow.EventReedit},
		{Kind: workflow.EventConfirm},
		{Kind: workflow.EventClose},
	} {
		_, err := c.Apply(ev)
		assert.ErrorIs(t, err, domain.ErrInvalidTransition, "event %s", ev.Kind)
	}
	assert.Equal(t, before, c.Snapshot())
}

func TestSubmission_NotCompleted(t *testing.T) {
	c := inReview(t)

	_, err := c.Submission()

	assert.ErrorIs(t, err, domain.ErrInvalidTransition)
}

// ---- close -----------------------------------------------------------------

func TestClose_FromEveryNonTerminalPhase(t *testing.T) {
	setups := map[domain.Phase]func(t *testing.T) *workflow.Controller{
		domain.PhaseAwaitingBarcode: func(*testing.T) *workflow.Controller { return newController() },
		domain.PhaseRecipientCapture: inCapture,
		domain.PhaseRecipientReview:  inReview,
	}
	for phase, setup := range setups {
		t.Run(string(phase), func(t *testing.T) {
			c := setup(t)

			tr, err := c.Close()
			require.NoError(t, err)
			assert.True(t, tr.Discarded())
			assert.True(t, c.Closed())

			_, err = c.ScanBarcode("again")
			assert.ErrorIs(t, err, domain.ErrSessionClosed)
			_, err = c.Close()
			assert.ErrorIs(t, err, domain.ErrSessionClosed)
			_, err = c.Submission()
			assert.ErrorIs(t, err, domain.ErrSessionClosed)
		})
	}
}

func TestAccepts(t *testing.T) {
	assert.True(t, workflow.Accepts(domain.PhaseAwaitingBarcode, workflow.EventBarcodeScanned))
	assert.True(t, workflow.Accepts(domain.PhaseRecipientReview, workflow.EventClose))
	assert.False(t, workflow.Accepts(domain.PhaseCompleted, workflow.EventClose))
	assert.False(t, workflow.Accepts(domain.PhaseBarcodeConfirmed, workflow.EventAdvance))
	assert.False(t, workflow.Accepts(domain.Phase("bogus"), workflow.EventClose))
}
