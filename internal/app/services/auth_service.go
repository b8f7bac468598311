// Package services holds the thin application services between the HTTP
// controllers and the domain state store.
package services

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/dccc/clubportal/internal/app/models"
	"github.com/dccc/clubportal/internal/app/models/dto"
	"github.com/dccc/clubportal/internal/app/store"
	"github.com/dccc/clubportal/internal/pkg/auth"
)

// AuthService defines the authentication operations
type AuthService interface {
	Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
}

// authServiceImpl implements AuthService
type authServiceImpl struct {
	store      *store.Store
	jwtService *auth.JWTService
	logger     zerolog.Logger
}

// NewAuthService creates a new AuthService
func NewAuthService(st *store.Store, jwtService *auth.JWTService, logger zerolog.Logger) AuthService {
	return &authServiceImpl{
		store:      st,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates a new member account and signs them in. New members
// always start as General Student.
func (s *authServiceImpl) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	user, err := s.store.RegisterUser(ctx, store.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Phone:    req.Phone,
		Batch:    req.Batch,
		Province: req.Province,
	})
	if err != nil {
		return nil, err
	}

	return s.authResponse(&user)
}

// Login authenticates a member by e-mail and issues an access token.
// Suspended accounts are blocked.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.store.Login(ctx, req.Email)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("userId", user.ID).Msg("User logged in")
	return s.authResponse(&user)
}

func (s *authServiceImpl) authResponse(user *models.User) (*dto.AuthResponse, error) {
	token, expiresIn, err := s.jwtService.GenerateToken(user)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Token: dto.TokenResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   expiresIn,
		},
		User: dto.NewUserResponse(*user),
	}, nil
}
