package service

import (
	"context"
	"fmt"

	"github.com/careercracker/webclient/internal/backend"
	"github.com/careercracker/webclient/internal/dto"
	"github.com/rs/zerolog/log"
)

// AccountBackend is the slice of the backend client the auth service uses.
type AccountBackend interface {
	SignUp(ctx context.Context, username, email, password string) (*backend.AuthResult, error)
	SignIn(ctx context.Context, username, password string) (*backend.AuthResult, error)
}

// AuthService passes credentials through to the backend account endpoints.
// The returned token is opaque; the gateway never inspects or mints one.
type AuthService interface {
	SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponseDTO, error)
	SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponseDTO, error)
}

type authService struct {
	backend AccountBackend
}

func NewAuthService(client AccountBackend) AuthService {
	return &authService{backend: client}
}

func (s *authService) SignUp(ctx context.Context, req dto.SignUpRequest) (*dto.AuthResponseDTO, error) {
	result, err := s.backend.SignUp(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		log.Error().Err(err).Str("username", req.Username).Msg("Sign-up failed")
		return nil, fmt.Errorf("failed to sign up: %w", err)
	}
	log.Info().Str("username", req.Username).Msg("Account created")
	return &dto.AuthResponseDTO{Token: result.Token}, nil
}

func (s *authService) SignIn(ctx context.Context, req dto.SignInRequest) (*dto.AuthResponseDTO, error) {
	result, err := s.backend.SignIn(ctx, req.Username, req.Password)
	if err != nil {
		log.Warn().Err(err).Str("username", req.Username).Msg("Sign-in failed")
		return nil, fmt.Errorf("failed to sign in: %w", err)
	}
	return &dto.AuthResponseDTO{Token: result.Token}, nil
}
