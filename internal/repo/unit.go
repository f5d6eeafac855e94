package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/parcel-intake/internal/domain"
)

// UnitRepo reads the unit catalog. The catalog is seeded by migration and
// never written by the API.
type UnitRepo interface {
	// List returns every unit ordered by id.
	List(ctx context.Context) ([]domain.Unit, error)

	// GetByLabel returns the unit with the exact label.
	// Returns domain.ErrNotFound if no unit matches.
	GetByLabel(ctx context.Context, label string) (domain.Unit, error)
}

// pgUnitRepo is the Postgres implementation of UnitRepo.
type pgUnitRepo struct {
	db db
}

// NewUnitRepo constructs a UnitRepo backed by the provided db connection.
func NewUnitRepo(db db) UnitRepo {
	return &pgUnitRepo{db: db}
}

func (r *pgUnitRepo) List(ctx context.Context) ([]domain.Unit, error) {
	const q = `
		SELECT id, label
		FROM units
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.UnitRepo.List: %w", err)
	}
	defer rows.Close()

	units := []domain.Unit{}
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.UnitRepo.List: scan: %w", err)
		}
		units = append(units, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.UnitRepo.List: rows: %w", err)
	}
	return units, nil
}

func (r *pgUnitRepo) GetByLabel(ctx context.Context, label string) (domain.Unit, error) {
	const q = `
		SELECT id, label
		FROM units
		WHERE label = @label`

	u, err := scanUnit(r.db.QueryRow(ctx, q, pgx.NamedArgs{"label": label}))
	if err != nil {
		return domain.Unit{}, fmt.Errorf("repo.UnitRepo.GetByLabel: %w", err)
	}
	return u, nil
}

func scanUnit(s scanner) (domain.Unit, error) {
	var u domain.Unit
	if err := s.Scan(&u.ID, &u.Label); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Unit{}, domain.ErrNotFound
		}
		return domain.Unit{}, err
	}
	return u, nil
}
