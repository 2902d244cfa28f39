package dtos

import (
	"time"

	"github.com/google/uuid"

	"github.com/propwise/manager-api/internal/models"
)

// ---------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------

type SignupRequest struct {
	Name      string `json:"name"`
	Username  string `json:"username"`
	Email     string `json:"email" validate:"omitempty,email"`
	Password  string `json:"password" validate:"required"`
	Phone     string `json:"phone" validate:"omitempty,e164"`
	AvatarURL string `json:"avatar_url" validate:"omitempty,url"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// ---------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------

// BuildingManager is the wire shape of an account. Serialization is an
// explicit allow-list: the password hash has no field here, so it cannot
// leak no matter what the model carries.
type BuildingManager struct {
	ID                    string      `json:"id"`
	Name                  *string     `json:"name,omitempty"`
	Username              *string     `json:"username,omitempty"`
	Email                 *string     `json:"email,omitempty"`
	Phone                 *string     `json:"phone,omitempty"`
	AvatarURL             *string     `json:"avatar_url,omitempty"`
	AssociatedBuildingIDs []uuid.UUID `json:"associated_building_ids,omitempty"`
	Role                  string      `json:"role"`
	CreatedAt             time.Time   `json:"created_at"`
	UpdatedAt             time.Time   `json:"updated_at"`
}

func NewManagerFromModel(m models.BuildingManager) BuildingManager {
	return BuildingManager{
		ID:                    m.ID.String(),
		Name:                  m.Name,
		Username:              m.Username,
		Email:                 m.Email,
		Phone:                 m.Phone,
		AvatarURL:             m.AvatarURL,
		AssociatedBuildingIDs: m.AssociatedBuildingIDs,
		Role:                  m.Role,
		CreatedAt:             m.CreatedAt,
		UpdatedAt:             m.UpdatedAt,
	}
}

type AccountEnvelope struct {
	Account BuildingManager `json:"account"`
}

// AccountResponse is the success envelope for every operation that returns
// an account.
type AccountResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message,omitempty"`
	Data    AccountEnvelope `json:"data"`
}

func NewAccountResponse(m models.BuildingManager, message string) AccountResponse {
	return AccountResponse{
		Status:  "success",
		Message: message,
		Data:    AccountEnvelope{Account: NewManagerFromModel(m)},
	}
}

type MessageResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
