package controllers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/propwise/manager-api/internal/config"
	"github.com/propwise/manager-api/internal/dtos"
	"github.com/propwise/manager-api/internal/services"
	"github.com/propwise/manager-api/internal/utils"
)

var managerValidate = validator.New()

type ManagerAuthController struct {
	authService services.ManagerAuthService
	cfg         *config.Config
}

func NewManagerAuthController(authService services.ManagerAuthService, cfg *config.Config) *ManagerAuthController {
	return &ManagerAuthController{authService: authService, cfg: cfg}
}

// -------------------
// Signup / Login
// -------------------

func (c *ManagerAuthController) SignUp(w http.ResponseWriter, r *http.Request) {
	var req dtos.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid request payload"))
		return
	}
	if err := managerValidate.Struct(req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Validation error"))
		return
	}

	manager, token, err := c.authService.SignUp(r.Context(), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.SetSessionCookie(w, token, c.cfg.TokenTTL, c.cfg.IsProduction())
	utils.RespondWithJSON(w, http.StatusOK,
		dtos.NewAccountResponse(*manager, "Building manager sign up success"))
}

func (c *ManagerAuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dtos.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid request payload"))
		return
	}
	if err := managerValidate.Struct(req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Username and password are required"))
		return
	}

	manager, token, err := c.authService.Login(r.Context(), req)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.SetSessionCookie(w, token, c.cfg.TokenTTL, c.cfg.IsProduction())
	utils.RespondWithJSON(w, http.StatusOK, dtos.NewAccountResponse(*manager, ""))
}

// -------------------
// Session
// -------------------

func (c *ManagerAuthController) Current(w http.ResponseWriter, r *http.Request) {
	var token string
	if ck, err := r.Cookie(utils.SessionCookieName); err == nil {
		token = ck.Value
	}

	manager, err := c.authService.CurrentManager(r.Context(), token)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewAccountResponse(*manager, ""))
}

// SignOut is stateless: the session lives only in the cookie, so clearing
// it with mirrored attributes is the whole operation.
func (c *ManagerAuthController) SignOut(w http.ResponseWriter, r *http.Request) {
	utils.ClearSessionCookie(w, c.cfg.IsProduction())
	utils.RespondWithJSON(w, http.StatusOK, dtos.MessageResponse{
		Status:  "success",
		Message: "Signed out successfully",
	})
}

// -------------------
// Federated / email lookup
// -------------------

func (c *ManagerAuthController) SignUpGoogle(w http.ResponseWriter, r *http.Request) {
	var req dtos.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid request payload"))
		return
	}
	if err := managerValidate.Struct(req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid email address format"))
		return
	}

	// Returns the existing account or creates a minimal one; deliberately
	// no session cookie on this path.
	manager, err := c.authService.ProvisionByEmail(r.Context(), req.Email)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewAccountResponse(*manager, ""))
}

func (c *ManagerAuthController) CurrentByEmail(w http.ResponseWriter, r *http.Request) {
	var req dtos.EmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid request payload"))
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		utils.RespondError(w, utils.NewValidationError("Email is required"))
		return
	}
	if err := managerValidate.Struct(req); err != nil {
		utils.RespondError(w, utils.NewValidationError("Invalid email address format"))
		return
	}

	manager, err := c.authService.GetByEmail(r.Context(), req.Email)
	if err != nil {
		utils.RespondError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, dtos.NewAccountResponse(*manager, ""))
}
