package handler

import (
	"context"
	"errors"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
)

// StartRegistration handles POST /registrations.
func (s *Server) StartRegistration(ctx context.Context, _ gen.StartRegistrationRequestObject) (gen.StartRegistrationResponseObject, error) {
	session, err := s.registrations.Start(ctx)
	if err != nil {
		return nil, err
	}
	return gen.StartRegistration201JSONResponse(registrationToResponse(session)), nil
}

// ListRegistrations handles GET /registrations?page=&limit=.
func (s *Server) ListRegistrations(ctx context.Context, req gen.ListRegistrationsRequestObject) (gen.ListRegistrationsResponseObject, error) {
	params := domain.NewPaginationParams(req.Params.Page, req.Params.Limit)

	sessions, total, err := s.registrations.List(ctx, params)
	if err != nil {
		return nil, err
	}

	data := make([]gen.Registration, len(sessions))
	for i, session := range sessions {
		data[i] = registrationToResponse(session)
	}
	return gen.ListRegistrations200JSONResponse{
		Data:       data,
		Pagination: gen.Pagination{Page: params.Page, Limit: params.Limit, Total: int(total)},
	}, nil
}

// GetRegistration handles GET /registrations/{id}.
func (s *Server) GetRegistration(ctx context.Context, req gen.GetRegistrationRequestObject) (gen.GetRegistrationResponseObject, error) {
	session, err := s.registrations.Get(ctx, req.Id)
	if err != nil {
		if kind, body := classifyError(err); kind == kindNotFound {
			return gen.GetRegistration404JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.GetRegistration200JSONResponse(registrationToResponse(session)), nil
}

// CloseRegistration handles DELETE /registrations/{id}.
func (s *Server) CloseRegistration(ctx context.Context, req gen.CloseRegistrationRequestObject) (gen.CloseRegistrationResponseObject, error) {
	if err := s.registrations.Close(ctx, req.Id); err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.CloseRegistration404JSONResponse(body), nil
		case kindConflict:
			return gen.CloseRegistration409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.CloseRegistration204Response{}, nil
}

// ScanBarcode handles POST /registrations/{id}/barcode.
func (s *Server) ScanBarcode(ctx context.Context, req gen.ScanBarcodeRequestObject) (gen.ScanBarcodeResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.ScanBarcode422JSONResponse(requestBody(err.Error())), nil
	}
	session, err := s.registrations.ScanBarcode(ctx, req.Id, req.Body.Code)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.ScanBarcode404JSONResponse(body), nil
		case kindConflict:
			return gen.ScanBarcode409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.ScanBarcode422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ScanBarcode200JSONResponse(registrationToResponse(session)), nil
}

// TimerElapsed handles POST /registrations/{id}/timer.
// The optional phase names the phase the timer was armed in; an expiry
// armed in an earlier phase is rejected as stale.
func (s *Server) TimerElapsed(ctx context.Context, req gen.TimerElapsedRequestObject) (gen.TimerElapsedResponseObject, error) {
	var armedFor domain.Phase
	if req.Body != nil && req.Body.Phase != nil {
		phase, err := domain.ParsePhase(string(*req.Body.Phase))
		if err != nil {
			return gen.TimerElapsed422JSONResponse(validationBody(err)), nil
		}
		armedFor = phase
	}
	session, err := s.registrations.TimerElapsed(ctx, req.Id, armedFor)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.TimerElapsed404JSONResponse(body), nil
		case kindConflict:
			return gen.TimerElapsed409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.TimerElapsed422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.TimerElapsed200JSONResponse(registrationToResponse(session)), nil
}

// Advance handles POST /registrations/{id}/advance.
func (s *Server) Advance(ctx context.Context, req gen.AdvanceRequestObject) (gen.AdvanceResponseObject, error) {
	session, err := s.registrations.Advance(ctx, req.Id)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.Advance404JSONResponse(body), nil
		case kindConflict:
			return gen.Advance409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.Advance200JSONResponse(registrationToResponse(session)), nil
}

// SubmitRecognition handles POST /registrations/{id}/recognition.
func (s *Server) SubmitRecognition(ctx context.Context, req gen.SubmitRecognitionRequestObject) (gen.SubmitRecognitionResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.SubmitRecognition422JSONResponse(requestBody(err.Error())), nil
	}
	session, err := s.registrations.SubmitRecognition(ctx, req.Id, req.Body.Lines)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.SubmitRecognition404JSONResponse(body), nil
		case kindConflict:
			return gen.SubmitRecognition409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.SubmitRecognition422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SubmitRecognition200JSONResponse(registrationToResponse(session)), nil
}

// ManualEntry handles POST /registrations/{id}/manual.
func (s *Server) ManualEntry(ctx context.Context, req gen.ManualEntryRequestObject) (gen.ManualEntryResponseObject, error) {
	session, err := s.registrations.ManualEntry(ctx, req.Id)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.ManualEntry404JSONResponse(body), nil
		case kindConflict:
			return gen.ManualEntry409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.ManualEntry200JSONResponse(registrationToResponse(session)), nil
}

// EditNotes handles PUT /registrations/{id}/notes.
func (s *Server) EditNotes(ctx context.Context, req gen.EditNotesRequestObject) (gen.EditNotesResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.EditNotes422JSONResponse(requestBody(err.Error())), nil
	}
	revision, err := expectedRevision(req.Body.Revision)
	if err != nil {
		return gen.EditNotes422JSONResponse(requestBody(err.Error())), nil
	}
	session, err := s.registrations.EditNotes(ctx, req.Id, req.Body.Notes, revision)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.EditNotes404JSONResponse(body), nil
		case kindConflict:
			return gen.EditNotes409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.EditNotes422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.EditNotes200JSONResponse(registrationToResponse(session)), nil
}

// EditRecipient handles PUT /registrations/{id}/recipient.
func (s *Server) EditRecipient(ctx context.Context, req gen.EditRecipientRequestObject) (gen.EditRecipientResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.EditRecipient422JSONResponse(requestBody(err.Error())), nil
	}
	revision, err := expectedRevision(req.Body.Revision)
	if err != nil {
		return gen.EditRecipient422JSONResponse(requestBody(err.Error())), nil
	}
	u := domain.RecipientUpdate{Name: req.Body.Name, Address: req.Body.Address}
	session, err := s.registrations.EditRecipient(ctx, req.Id, u, revision)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.EditRecipient404JSONResponse(body), nil
		case kindConflict:
			return gen.EditRecipient409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.EditRecipient422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.EditRecipient200JSONResponse(registrationToResponse(session)), nil
}

// SelectUnit handles PUT /registrations/{id}/unit.
func (s *Server) SelectUnit(ctx context.Context, req gen.SelectUnitRequestObject) (gen.SelectUnitResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.SelectUnit422JSONResponse(requestBody(err.Error())), nil
	}
	revision, err := expectedRevision(req.Body.Revision)
	if err != nil {
		return gen.SelectUnit422JSONResponse(requestBody(err.Error())), nil
	}
	session, err := s.registrations.SelectUnit(ctx, req.Id, req.Body.Unit, revision)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.SelectUnit404JSONResponse(body), nil
		case kindConflict:
			return gen.SelectUnit409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.SelectUnit422JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.SelectUnit200JSONResponse(registrationToResponse(session)), nil
}

// Reedit handles POST /registrations/{id}/reedit.
func (s *Server) Reedit(ctx context.Context, req gen.ReeditRequestObject) (gen.ReeditResponseObject, error) {
	session, err := s.registrations.Reedit(ctx, req.Id)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.Reedit404JSONResponse(body), nil
		case kindConflict:
			return gen.Reedit409JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.Reedit200JSONResponse(registrationToResponse(session)), nil
}

// Confirm handles POST /registrations/{id}/confirm.
func (s *Server) Confirm(ctx context.Context, req gen.ConfirmRequestObject) (gen.ConfirmResponseObject, error) {
	session, err := s.registrations.Confirm(ctx, req.Id)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.Confirm404JSONResponse(body), nil
		case kindConflict:
			return gen.Confirm409JSONResponse(body), nil
		case kindUnprocessable:
			return gen.Confirm422JSONResponse(body), nil
		case kindBadGateway:
			return gen.Confirm502JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.Confirm200JSONResponse(registrationToResponse(session)), nil
}

// Submit handles POST /registrations/{id}/submit.
func (s *Server) Submit(ctx context.Context, req gen.SubmitRequestObject) (gen.SubmitResponseObject, error) {
	session, err := s.registrations.Submit(ctx, req.Id)
	if err != nil {
		switch kind, body := classifyError(err); kind {
		case kindNotFound:
			return gen.Submit404JSONResponse(body), nil
		case kindConflict:
			return gen.Submit409JSONResponse(body), nil
		case kindBadGateway:
			return gen.Submit502JSONResponse(body), nil
		}
		return nil, err
	}
	return gen.Submit200JSONResponse(registrationToResponse(session)), nil
}

// expectedRevision unwraps the optional revision an edit was based on.
// Omitted means 0, which skips the check.
func expectedRevision(rev *gen.ExpectedRevision) (int64, error) {
	if rev == nil {
		return 0, nil
	}
	if *rev < 0 {
		return 0, errors.New("revision must be at least 0")
	}
	return *rev, nil
}

// registrationToResponse converts a session to its client view.
// Barcode appears once scanned; Recipient appears once the review step is
// reached.
func registrationToResponse(s domain.RegistrationSession) gen.Registration {
	resp := gen.Registration{
		Id:        s.ID,
		Phase:     gen.Phase(s.Phase),
		Revision:  s.Revision,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
	if !s.Barcode.IsZero() {
		barcode := s.Barcode.String()
		resp.Barcode = &barcode
	}
	if s.Confidence != "" {
		confidence := gen.Confidence(s.Confidence)
		resp.Confidence = &confidence
	}
	if s.Phase.Rank() >= domain.PhaseRecipientReview.Rank() {
		resp.Recipient = &gen.Recipient{
			Name:    s.Recipient.Name,
			Address: s.Recipient.Address,
			Unit:    optional(s.Recipient.Unit),
			Notes:   optional(s.Recipient.Notes),
		}
	}
	return resp
}

func optional(v string) *string {
	if v == "" {
		return nil
	}
	return &v
}
