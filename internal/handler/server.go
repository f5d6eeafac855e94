// Package handler implements the HTTP handlers for the parcel intake API.
// All handlers are methods on Server, which implements
// gen.StrictServerInterface generated from spec/openapi.yaml. Methods are
// split into domain-specific files (health.go, registration.go, unit.go) but
// share the same Server struct so they can access its dependencies.
package handler

import (
	"context"

	"github.com/google/uuid"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
)

// RegistrationServicer defines the session operations the handlers depend on.
// Defining the interface here, in the consumer package, lets handler tests
// inject a mock without the service layer.
type RegistrationServicer interface {
	Start(ctx context.Context) (domain.RegistrationSession, error)
	Get(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	List(ctx context.Context, p domain.PaginationParams) ([]domain.RegistrationSession, int64, error)
	ScanBarcode(ctx context.Context, id uuid.UUID, code string) (domain.RegistrationSession, error)
	TimerElapsed(ctx context.Context, id uuid.UUID, armedFor domain.Phase) (domain.RegistrationSession, error)
	Advance(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	Classify(ctx context.Context, lines []string) domain.ClassificationResult
	SubmitRecognition(ctx context.Context, id uuid.UUID, lines []string) (domain.RegistrationSession, error)
	ManualEntry(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	EditNotes(ctx context.Context, id uuid.UUID, notes string, expectedRevision int64) (domain.RegistrationSession, error)
	EditRecipient(ctx context.Context, id uuid.UUID, u domain.RecipientUpdate, expectedRevision int64) (domain.RegistrationSession, error)
	SelectUnit(ctx context.Context, id uuid.UUID, unit string, expectedRevision int64) (domain.RegistrationSession, error)
	Reedit(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	Confirm(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	Submit(ctx context.Context, id uuid.UUID) (domain.RegistrationSession, error)
	Close(ctx context.Context, id uuid.UUID) error
}

// UnitServicer defines the unit catalog operations the handlers depend on.
type UnitServicer interface {
	List(ctx context.Context) ([]domain.Unit, error)
}

// Server implements gen.StrictServerInterface for all API endpoints.
// Wire it in main.go via gen.NewStrictHandlerWithOptions(server, nil, StrictOptions()).
type Server struct {
	registrations RegistrationServicer
	units         UnitServicer
}

var _ gen.StrictServerInterface = (*Server)(nil)

// NewServer constructs the Server with all its dependencies.
func NewServer(registrations RegistrationServicer, units UnitServicer) *Server {
	return &Server{registrations: registrations, units: units}
}

// NewHealthHandler returns a Server for health-check-only use.
func NewHealthHandler() *Server {
	return NewServer(nil, nil)
}
