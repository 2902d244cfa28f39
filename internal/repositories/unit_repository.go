package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/propwise/manager-api/internal/models"
)

/* ───────────── public interface ───────────── */

type UnitRepository interface {
	ListAll(ctx context.Context) ([]*models.Unit, error)
}

/* ───────────── implementation ───────────── */

type unitRepo struct {
	db DB
}

func NewUnitRepository(db DB) UnitRepository {
	return &unitRepo{db: db}
}

func (r *unitRepo) ListAll(ctx context.Context) ([]*models.Unit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, building_id, unit_number, rent, created_at
		FROM units
		ORDER BY unit_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.Unit
	for rows.Next() {
		u, err := scanUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func scanUnit(row pgx.Row) (*models.Unit, error) {
	var u models.Unit
	err := row.Scan(&u.ID, &u.BuildingID, &u.UnitNumber, &u.Rent, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
