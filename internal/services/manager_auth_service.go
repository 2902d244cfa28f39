package services

import (
	"context"
	"errors"
	"regexp"
	"strings"

	"github.com/jackc/pgx/v4"

	"github.com/propwise/manager-api/internal/config"
	"github.com/propwise/manager-api/internal/dtos"
	"github.com/propwise/manager-api/internal/models"
	"github.com/propwise/manager-api/internal/repositories"
	"github.com/propwise/manager-api/internal/utils"
)

// Login failures are deliberately indistinguishable: an unknown username
// and a wrong password produce the identical error so callers cannot
// enumerate accounts.
const wrongCredentialsMessage = "Wrong username or password"

var usernamePattern = regexp.MustCompile(`^manager@.+`)

// ManagerAuthService orchestrates signup, login, session lookup and
// federated provisioning for building-manager accounts.
type ManagerAuthService interface {
	// SignUp creates a password-based account and returns it with a fresh
	// session token.
	SignUp(ctx context.Context, req dtos.SignupRequest) (*models.BuildingManager, string, error)

	// Login verifies credentials and returns the account with a fresh
	// session token.
	Login(ctx context.Context, req dtos.LoginRequest) (*models.BuildingManager, string, error)

	// CurrentManager resolves the account behind a session token.
	CurrentManager(ctx context.Context, tokenString string) (*models.BuildingManager, error)

	// ProvisionByEmail implements federated (email-only) signup: it returns
	// the existing account for the email, creating a minimal one if absent.
	// No session is started on this path.
	ProvisionByEmail(ctx context.Context, email string) (*models.BuildingManager, error)

	// GetByEmail is a pure lookup; it never creates.
	GetByEmail(ctx context.Context, email string) (*models.BuildingManager, error)
}

type managerAuthService struct {
	managerRepo repositories.ManagerRepository
	tokens      TokenService
	cfg         *config.Config
}

func NewManagerAuthService(
	managerRepo repositories.ManagerRepository,
	tokens TokenService,
	cfg *config.Config,
) ManagerAuthService {
	return &managerAuthService{
		managerRepo: managerRepo,
		tokens:      tokens,
		cfg:         cfg,
	}
}

// ---------------------------------------------------------------------
// SignUp
// ---------------------------------------------------------------------

func (s *managerAuthService) SignUp(ctx context.Context, req dtos.SignupRequest) (*models.BuildingManager, string, error) {
	if req.Password == "" {
		return nil, "", utils.NewValidationError("Password is required")
	}

	username := normalize(req.Username)
	if username != "" && !usernamePattern.MatchString(username) {
		return nil, "", utils.NewValidationError("Username must start with 'manager@'")
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.Logger.WithError(err).Error("Password hashing failed during signup")
		return nil, "", err
	}

	// Every account gets a resolvable email: when a username is present a
	// placeholder is synthesized from it, overriding any supplied address.
	// This mirrors a long-standing product rule; see DESIGN.md before
	// changing it.
	email := normalize(req.Email)
	if username != "" {
		email = dummyEmailForUsername(username)
	}

	manager := &models.BuildingManager{
		Name:         optional(strings.TrimSpace(req.Name)),
		Username:     optional(username),
		Email:        optional(email),
		PasswordHash: hash,
		Phone:        optional(req.Phone),
		AvatarURL:    optional(req.AvatarURL),
		Role:         models.RoleBuildingManager,
	}

	if err := s.managerRepo.Create(ctx, manager); err != nil {
		return nil, "", err
	}

	token, err := s.tokens.Issue(manager.ID, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}

	utils.Logger.Debugf("Building manager %s signed up", manager.ID)
	return manager, token, nil
}

// ---------------------------------------------------------------------
// Login
// ---------------------------------------------------------------------

func (s *managerAuthService) Login(ctx context.Context, req dtos.LoginRequest) (*models.BuildingManager, string, error) {
	if req.Username == "" || req.Password == "" {
		return nil, "", utils.NewValidationError("Username and password are required")
	}

	manager, err := s.managerRepo.GetByUsername(ctx, normalize(req.Username))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", utils.NewAuthError(wrongCredentialsMessage)
		}
		return nil, "", err
	}

	// Federated accounts have no hash and can never pass here.
	if !manager.HasPassword() || !utils.CheckPasswordHash(req.Password, manager.PasswordHash) {
		return nil, "", utils.NewAuthError(wrongCredentialsMessage)
	}

	token, err := s.tokens.Issue(manager.ID, s.cfg.TokenTTL)
	if err != nil {
		return nil, "", err
	}

	return manager, token, nil
}

// ---------------------------------------------------------------------
// Current session
// ---------------------------------------------------------------------

func (s *managerAuthService) CurrentManager(ctx context.Context, tokenString string) (*models.BuildingManager, error) {
	accountID, err := s.tokens.Verify(tokenString)
	if err != nil {
		return nil, err
	}

	manager, err := s.managerRepo.GetByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Building manager not found")
		}
		return nil, err
	}
	return manager, nil
}

// ---------------------------------------------------------------------
// Federated provisioning
// ---------------------------------------------------------------------

func (s *managerAuthService) ProvisionByEmail(ctx context.Context, email string) (*models.BuildingManager, error) {
	email = normalize(email)
	if email == "" {
		return nil, utils.NewValidationError("Email is required")
	}

	manager, err := s.managerRepo.GetByEmail(ctx, email)
	if err == nil {
		return manager, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	username := "manager@" + localPart(email)
	manager = &models.BuildingManager{
		Username: optional(username),
		Email:    optional(email),
		Role:     models.RoleBuildingManager,
	}

	if err := s.managerRepo.Create(ctx, manager); err != nil {
		// A concurrent call may have created the account between the lookup
		// and the insert; resolve to the winner so the operation stays
		// idempotent.
		var appErr *utils.AppError
		if errors.As(err, &appErr) && appErr.Kind == utils.KindDuplicateKey {
			return s.managerRepo.GetByEmail(ctx, email)
		}
		return nil, err
	}

	utils.Logger.Debugf("Provisioned federated building manager %s", manager.ID)
	return manager, nil
}

// ---------------------------------------------------------------------
// Lookup by email
// ---------------------------------------------------------------------

func (s *managerAuthService) GetByEmail(ctx context.Context, email string) (*models.BuildingManager, error) {
	email = normalize(email)
	if email == "" {
		return nil, utils.NewValidationError("Email is required")
	}

	manager, err := s.managerRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.NewNotFoundError("Building manager not found")
		}
		return nil, err
	}
	return manager, nil
}

// ---------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// dummyEmailForUsername synthesizes the placeholder address for a signup
// that supplied a username. The substring starts at offset 8, past the
// "manager@" prefix.
func dummyEmailForUsername(username string) string {
	rest := ""
	if len(username) > 8 {
		rest = username[8:]
	}
	return "dummyEmail" + rest + "@example.com"
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
