package repositories

import (
	"context"

	"github.com/jackc/pgx/v4"

	"github.com/propwise/manager-api/internal/models"
)

/* ───────────── public interface ───────────── */

type ApartmentUnitRepository interface {
	ListAll(ctx context.Context) ([]*models.ApartmentUnit, error)
}

/* ───────────── implementation ───────────── */

type apartmentUnitRepo struct {
	db DB
}

func NewApartmentUnitRepository(db DB) ApartmentUnitRepository {
	return &apartmentUnitRepo{db: db}
}

func (r *apartmentUnitRepo) ListAll(ctx context.Context) ([]*models.ApartmentUnit, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, building_id, apartment_number, bedrooms, rent, created_at
		FROM apartment_units
		ORDER BY apartment_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var units []*models.ApartmentUnit
	for rows.Next() {
		u, err := scanApartmentUnit(rows)
		if err != nil {
			return nil, err
		}
		units = append(units, u)
	}
	return units, rows.Err()
}

func scanApartmentUnit(row pgx.Row) (*models.ApartmentUnit, error) {
	var u models.ApartmentUnit
	err := row.Scan(&u.ID, &u.BuildingID, &u.ApartmentNumber, &u.Bedrooms, &u.Rent, &u.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &u, nil
}
