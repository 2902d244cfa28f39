package repositories

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgtype"
	"github.com/jackc/pgx/v4"

	"github.com/propwise/manager-api/internal/models"
	"github.com/propwise/manager-api/internal/utils"
)

/* ------------------------------------------------------------------
   Public interface
------------------------------------------------------------------ */

// ManagerRepository persists building-manager accounts. Uniqueness of
// username and email is enforced by the store's constraints, which keeps
// concurrent signups with the same identifier race-free.
type ManagerRepository interface {
	// Create assigns the id and timestamps. A unique-constraint violation
	// comes back as *utils.AppError (KindDuplicateKey) naming the fields.
	Create(ctx context.Context, m *models.BuildingManager) error

	GetByID(ctx context.Context, id uuid.UUID) (*models.BuildingManager, error)
	GetByUsername(ctx context.Context, username string) (*models.BuildingManager, error)
	GetByEmail(ctx context.Context, email string) (*models.BuildingManager, error)
}

/* ------------------------------------------------------------------
   Implementation
------------------------------------------------------------------ */

type managerRepo struct {
	db DB
}

func NewManagerRepository(db DB) ManagerRepository {
	return &managerRepo{db: db}
}

/* ---------- Create ---------- */

func (r *managerRepo) Create(ctx context.Context, m *models.BuildingManager) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	if m.Role == "" {
		m.Role = models.RoleBuildingManager
	}

	buildings, err := uuidArrayParam(m.AssociatedBuildingIDs)
	if err != nil {
		return err
	}

	row := r.db.QueryRow(ctx, `
		INSERT INTO building_managers (
			id,name,username,email,password_hash,phone,avatar_url,
			associated_building_ids,role,
			created_at,updated_at
		) VALUES (
			$1,$2,$3,$4,$5,$6,$7,
			$8,$9,
			NOW(),NOW()
		) RETURNING created_at, updated_at`,
		m.ID, m.Name, m.Username, m.Email, nullableHash(m.PasswordHash),
		m.Phone, m.AvatarURL, buildings, m.Role,
	)

	if err := row.Scan(&m.CreatedAt, &m.UpdatedAt); err != nil {
		if dup := duplicateKeyError(err); dup != nil {
			return dup
		}
		utils.Logger.WithError(err).Error("Failed to insert building manager")
		return err
	}
	return nil
}

/* ---------- Reads ---------- */

func (r *managerRepo) GetByID(ctx context.Context, id uuid.UUID) (*models.BuildingManager, error) {
	row := r.db.QueryRow(ctx, baseSelectManager()+" WHERE id=$1", id)
	return scanManager(row)
}

func (r *managerRepo) GetByUsername(ctx context.Context, username string) (*models.BuildingManager, error) {
	row := r.db.QueryRow(ctx, baseSelectManager()+" WHERE username=$1", username)
	return scanManager(row)
}

func (r *managerRepo) GetByEmail(ctx context.Context, email string) (*models.BuildingManager, error) {
	row := r.db.QueryRow(ctx, baseSelectManager()+" WHERE email=$1", email)
	return scanManager(row)
}

/* ---------- internals ---------- */

func baseSelectManager() string {
	return `
		SELECT id,name,username,email,password_hash,phone,avatar_url,
		       associated_building_ids,role,created_at,updated_at
		FROM building_managers`
}

func scanManager(row pgx.Row) (*models.BuildingManager, error) {
	var m models.BuildingManager
	var hash *string
	var buildings pgtype.UUIDArray

	err := row.Scan(
		&m.ID, &m.Name, &m.Username, &m.Email, &hash, &m.Phone, &m.AvatarURL,
		&buildings, &m.Role, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if hash != nil {
		m.PasswordHash = *hash
	}
	m.AssociatedBuildingIDs, err = uuidArrayValue(buildings)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

func nullableHash(hash string) *string {
	if hash == "" {
		return nil
	}
	return &hash
}

// duplicateKeyError translates a Postgres 23505 into the domain error,
// pulling the offending field name out of the constraint.
func duplicateKeyError(err error) *utils.AppError {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" {
		return nil
	}

	var fields []string
	for _, field := range []string{"username", "email"} {
		if strings.Contains(pgErr.ConstraintName, field) {
			fields = append(fields, field)
		}
	}
	if len(fields) == 0 {
		fields = append(fields, pgErr.ConstraintName)
	}
	return utils.NewDuplicateKeyError(fields...)
}

func uuidArrayParam(ids []uuid.UUID) (pgtype.UUIDArray, error) {
	strs := make([]string, len(ids))
	for i, id := range ids {
		strs[i] = id.String()
	}
	var arr pgtype.UUIDArray
	err := arr.Set(strs)
	return arr, err
}

func uuidArrayValue(arr pgtype.UUIDArray) ([]uuid.UUID, error) {
	if arr.Status != pgtype.Present {
		return nil, nil
	}
	ids := make([]uuid.UUID, 0, len(arr.Elements))
	for _, el := range arr.Elements {
		if el.Status != pgtype.Present {
			continue
		}
		ids = append(ids, uuid.UUID(el.Bytes))
	}
	return ids, nil
}
