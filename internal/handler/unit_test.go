package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/handler"
	"github.com/pkordes/parcel-intake/internal/handler/gen"
)

type mockUnitServicer struct {
	list func(ctx context.Context) ([]domain.Unit, error)
}

func (m *mockUnitServicer) List(ctx context.Context) ([]domain.Unit, error) {
	return m.list(ctx)
}

var _ handler.UnitServicer = (*mockUnitServicer)(nil)

func TestListUnits_OK(t *testing.T) {
	h := newRouter(handler.NewServer(nil, &mockUnitServicer{
		list: func(context.Context) ([]domain.Unit, error) {
			return []domain.Unit{
				{Id: 1, Label: "Bloco A - Administrativo"},
				{Id: 2, Label: "Bloco B - Produção"},
			}, nil
		},
	}))

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var body []gen.Unit
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []gen.Unit{
		{Id: 1, Label: "Bloco A - Administrativo"},
		{Id: 2, Label: "Bloco B - Produção"},
	}, body)
}

func TestListUnits_Empty(t *testing.T) {
	h := newRouter(handler.NewServer(nil, &mockUnitServicer{
		list: func(context.Context) ([]domain.Unit, error) { return []domain.Unit{}, nil },
	}))

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListUnits_InternalError(t *testing.T) {
	h := newRouter(handler.NewServer(nil, &mockUnitServicer{
		list: func(context.Context) ([]domain.Unit, error) { return nil, errors.New("db down") },
	}))

	req := httptest.NewRequest(http.MethodGet, "/units", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.NotContains(t, rec.Body.String(), "db down")
}
