package models

import (
	"time"

	"github.com/google/uuid"
)

// RoleBuildingManager is the only role an account can hold. It is set at
// creation and never changes.
const RoleBuildingManager = "buildingManager"

// BuildingManager is the persisted account record. PasswordHash is internal
// state: it is only populated for password-based signups and must never
// reach a response payload (the DTO layer allow-lists every serialized
// field).
type BuildingManager struct {
	ID                    uuid.UUID
	Name                  *string
	Username              *string
	Email                 *string
	PasswordHash          string
	Phone                 *string
	AvatarURL             *string
	AssociatedBuildingIDs []uuid.UUID
	Role                  string
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// HasPassword reports whether the account was created via direct signup.
// Federated accounts carry no hash and can never pass a password login.
func (m *BuildingManager) HasPassword() bool { return m.PasswordHash != "" }
