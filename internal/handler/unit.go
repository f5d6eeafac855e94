package handler

import (
	"context"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
)

// ListUnits handles GET /units.
func (s *Server) ListUnits(ctx context.Context, _ gen.ListUnitsRequestObject) (gen.ListUnitsResponseObject, error) {
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, err
	}
	resp := make(gen.ListUnits200JSONResponse, len(units))
	for i, u := range units {
		resp[i] = unitToResponse(u)
	}
	return resp, nil
}

// Classify handles POST /classify. It runs the label classifier without
// touching any session.
func (s *Server) Classify(ctx context.Context, req gen.ClassifyRequestObject) (gen.ClassifyResponseObject, error) {
	if err := validate(req.Body); err != nil {
		return gen.Classify422JSONResponse(requestBody(err.Error())), nil
	}
	result := s.registrations.Classify(ctx, req.Body.Lines)
	return gen.Classify200JSONResponse{
		Name:       result.Name,
		Address:    result.Address,
		Confidence: gen.Confidence(result.Confidence),
	}, nil
}

func unitToResponse(u domain.Unit) gen.Unit {
	return gen.Unit{Id: u.ID, Label: u.Label}
}
