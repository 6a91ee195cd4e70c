package services

import (
	"context"

	"globetrotter/internal/models/db_models"
	"globetrotter/internal/models/request_models"
	"globetrotter/internal/models/response_models"
	"globetrotter/internal/repositories"
	"globetrotter/pkg/utils"
)

type AccountServiceInterface interface {
	SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error)
	Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error)
	GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error)
}

type AccountService struct {
	userRepo   repositories.UserRepository
	jwtManager *utils.JWTManager
}

func NewAccountService(userRepo repositories.UserRepository, jwtManager *utils.JWTManager) AccountServiceInterface {
	return &AccountService{
		userRepo:   userRepo,
		jwtManager: jwtManager,
	}
}

func (a *AccountService) SignUp(ctx context.Context, request request_models.SignUpRequest) (*response_models.AuthResponse, error) {
	if request.Name == "" || request.Email == "" || request.Password == "" {
		return nil, utils.ErrMissingFields
	}

	existing, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if existing != nil {
		return nil, utils.ErrEmailAlreadyExists
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	user := &db_models.User{
		Name:         request.Name,
		Email:        request.Email,
		PasswordHash: hashedPassword,
	}
	if err := a.userRepo.InsertTx(user, ctx); err != nil {
		// The unique index is the authority; a concurrent signup that
		// slipped past the pre-check still surfaces as a conflict.
		return nil, utils.ErrEmailAlreadyExists
	}

	token, err := a.jwtManager.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.AuthResponse{
		Token: token,
		User: response_models.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (a *AccountService) Login(ctx context.Context, request request_models.LoginRequest) (*response_models.AuthResponse, error) {
	user, err := a.userRepo.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrInvalidCredentials
	}

	if err := utils.ComparePasswords(user.PasswordHash, request.Password); err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	token, err := a.jwtManager.CreateToken(user.ID, user.Email)
	if err != nil {
		return nil, utils.ErrInvalidCredentials
	}

	return &response_models.AuthResponse{
		Token: token,
		User: response_models.UserResponse{
			ID:    user.ID.String(),
			Name:  user.Name,
			Email: user.Email,
		},
	}, nil
}

func (a *AccountService) GetProfile(ctx context.Context, userID string) (*response_models.UserResponse, error) {
	user, err := a.userRepo.FindByID(ctx, userID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if user == nil {
		return nil, utils.ErrAccountNotFound
	}

	return &response_models.UserResponse{
		ID:    user.ID.String(),
		Name:  user.Name,
		Email: user.Email,
	}, nil
}
