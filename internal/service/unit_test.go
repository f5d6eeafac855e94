package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/service"
)

func TestUnitService_List(t *testing.T) {
	svc := service.NewUnitService(&mockUnitRepo{
		list: func(context.Context) ([]domain.Unit, error) {
			return []domain.Unit{{ID: 1, Label: "Bloco A - Administrativo"}}, nil
		},
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []domain.Unit{{ID: 1, Label: "Bloco A - Administrativo"}}, got)
}

func TestUnitService_List_ReturnsEmptySlice(t *testing.T) {
	svc := service.NewUnitService(&mockUnitRepo{
		list: func(context.Context) ([]domain.Unit, error) { return nil, nil },
	})

	got, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestUnitService_List_Error(t *testing.T) {
	dbErr := errors.New("boom")
	svc := service.NewUnitService(&mockUnitRepo{
		list: func(context.Context) ([]domain.Unit, error) { return nil, dbErr },
	})

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, dbErr)
}
