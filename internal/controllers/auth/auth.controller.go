package authController

import (
	"context"
	"errors"
	"strings"
	"upkeep/internal/database"
	"upkeep/internal/logger"
	. "upkeep/internal/models"
	"upkeep/internal/repositories"
	"upkeep/internal/services"

	"gorm.io/gorm"
)

const (
	MinPasswordLength = 8
)

var (
	ErrValidation   = errors.New("validation error")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
)

type AuthController struct {
	userRepo           repositories.UserRepository
	settingsRepo       repositories.SettingsRepository
	authService        *services.AuthService
	transactionService *services.TransactionService
	db                 database.DB
	log                logger.Logger
}

type RegisterRequest struct {
	Email       string `json:"email"`
	DisplayName string `json:"displayName"`
	Password    string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type AuthResponse struct {
	User  *User  `json:"user"`
	Token string `json:"token"`
}

type AuthControllerInterface interface {
	Register(ctx context.Context, request *RegisterRequest) (*AuthResponse, error)
	Login(ctx context.Context, request *LoginRequest) (*AuthResponse, error)
	GetUserByID(ctx context.Context, id string) (*User, error)
}

func New(
	repos repositories.Repository,
	services services.Service,
	db database.DB,
) AuthControllerInterface {
	return &AuthController{
		userRepo:           repos.User,
		settingsRepo:       repos.Settings,
		authService:        services.Auth,
		transactionService: services.Transaction,
		db:                 db,
		log:                logger.New("authController"),
	}
}

func (c *AuthController) Register(
	ctx context.Context,
	request *RegisterRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Register")

	email := strings.TrimSpace(strings.ToLower(request.Email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, log.ErrorWithType(ErrValidation, "a valid email is required")
	}

	if len(request.Password) < MinPasswordLength {
		return nil, log.ErrorWithType(ErrValidation, "password must be at least 8 characters")
	}

	displayName := strings.TrimSpace(request.DisplayName)
	if displayName == "" {
		return nil, log.ErrorWithType(ErrValidation, "displayName is required")
	}

	if _, err := c.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, log.ErrorWithType(ErrConflict, "email is already registered")
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, log.Err("failed to check existing user", err)
	}

	passwordHash, err := c.authService.HashPassword(request.Password)
	if err != nil {
		return nil, log.Err("failed to hash password", err)
	}

	user := &User{
		Email:        email,
		DisplayName:  displayName,
		PasswordHash: passwordHash,
		IsActive:     true,
	}

	err = c.transactionService.Execute(ctx, func(ctx context.Context, tx *gorm.DB) error {
		if err := c.userRepo.Create(ctx, tx, user); err != nil {
			return err
		}

		return c.settingsRepo.Create(ctx, tx, &UserSettings{
			UserID:               user.ID,
			NotificationsEnabled: true,
			DefaultReminderDays:  DefaultReminderDays,
			DueSoonWindowDays:    DefaultDueSoonWindowDays,
		})
	})
	if err != nil {
		return nil, log.Err("failed to register user", err, "email", email)
	}

	token, err := c.authService.GenerateToken(user.ID)
	if err != nil {
		return nil, log.Err("failed to generate session token", err, "userID", user.ID)
	}

	log.Info("User registered successfully", "userID", user.ID)

	return &AuthResponse{User: user, Token: token}, nil
}

func (c *AuthController) Login(
	ctx context.Context,
	request *LoginRequest,
) (*AuthResponse, error) {
	log := c.log.Function("Login")

	email := strings.TrimSpace(strings.ToLower(request.Email))
	if email == "" || request.Password == "" {
		return nil, log.ErrorWithType(ErrValidation, "email and password are required")
	}

	user, err := c.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrUnauthorized, "invalid credentials")
		}
		return nil, log.Err("failed to look up user", err)
	}

	if !user.IsActive {
		return nil, log.ErrorWithType(ErrUnauthorized, "account is disabled")
	}

	if !c.authService.CheckPassword(user.PasswordHash, request.Password) {
		return nil, log.ErrorWithType(ErrUnauthorized, "invalid credentials")
	}

	token, err := c.authService.GenerateToken(user.ID)
	if err != nil {
		return nil, log.Err("failed to generate session token", err, "userID", user.ID)
	}

	log.Info("User logged in", "userID", user.ID)

	return &AuthResponse{User: user, Token: token}, nil
}

// GetUserByID resolves a user from a validated session token subject. Used by
// the auth middleware.
func (c *AuthController) GetUserByID(ctx context.Context, id string) (*User, error) {
	log := c.log.Function("GetUserByID")

	user, err := c.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, log.ErrorWithType(ErrUnauthorized, "user not found")
		}
		return nil, err
	}

	if !user.IsActive {
		return nil, log.ErrorWithType(ErrUnauthorized, "account is disabled")
	}

	return user, nil
}
