package service

import (
	"context"
	"fmt"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/repo"
)

// UnitService exposes the unit catalog.
type UnitService struct {
	units repo.UnitRepo
}

// NewUnitService constructs a UnitService backed by the provided UnitRepo.
func NewUnitService(units repo.UnitRepo) *UnitService {
	return &UnitService{units: units}
}

// List returns the whole catalog. Never returns a nil slice.
func (s *UnitService) List(ctx context.Context) ([]domain.Unit, error) {
	units, err := s.units.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("service.UnitService.List: %w", err)
	}
	if units == nil {
		units = []domain.Unit{}
	}
	return units, nil
}
