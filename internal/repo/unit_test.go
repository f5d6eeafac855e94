package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/parcel-intake/internal/domain"
	"github.com/pkordes/parcel-intake/internal/repo"
	"github.com/pkordes/parcel-intake/testutil"
)

func newTestUnitRepo(t *testing.T) repo.UnitRepo {
	t.Helper()
	return repo.NewUnitRepo(testutil.NewTx(t))
}

func TestUnitRepo_List_Seeded(t *testing.T) {
	units := newTestUnitRepo(t)

	got, err := units.List(context.Background())

	require.NoError(t, err)
	require.Len(t, got, 5)
	assert.Equal(t, "Bloco A - Administrativo", got[0].Label)
	assert.Equal(t, "Bloco E - Laboratório", got[4].Label)
	for i := 1; i < len(got); i++ {
		assert.Less(t, got[i-1].ID, got[i].ID, "units must be ordered by id")
	}
}

func TestUnitRepo_GetByLabel_OK(t *testing.T) {
	units := newTestUnitRepo(t)

	got, err := units.GetByLabel(context.Background(), "Bloco D - Expedição")

	require.NoError(t, err)
	assert.Equal(t, "Bloco D - Expedição", got.Label)
	assert.NotZero(t, got.ID)
}

func TestUnitRepo_GetByLabel_NotFound(t *testing.T) {
	units := newTestUnitRepo(t)

	_, err := units.GetByLabel(context.Background(), "Bloco Z - Inexistente")

	assert.ErrorIs(t, err, domain.ErrNotFound)
}
