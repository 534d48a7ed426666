package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"barberagenda/pkg/config"
	apperrors "barberagenda/pkg/errors"
	"barberagenda/pkg/model"
)

const tokenPrefix = "mock-token-"

type Service interface {
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type authService struct {
	repo Repository
	cfg  *config.Config
}

func NewService(repo Repository, cfg *config.Config) Service {
	return &authService{repo: repo, cfg: cfg}
}

// Login checks credentials against the users collection and hands back a
// mock session token. Passwords are compared in plaintext, a stand-in
// until real credential hashing lands.
func (s *authService) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	if req.Username == "" || req.Password == "" {
		return nil, apperrors.InvalidInput("Username and password are required")
	}

	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, apperrors.Unauthorized("Invalid username or password")
		}
		s.cfg.Log.Error("Failed to look up user", "username", req.Username, "error", err)
		return nil, apperrors.Internal("Login failed", err)
	}

	if user.Password != req.Password {
		return nil, apperrors.Unauthorized("Invalid username or password")
	}

	s.cfg.Log.Info("User logged in", "username", req.Username)
	return &model.LoginResponse{
		User:  user,
		Token: fmt.Sprintf("%s%d", tokenPrefix, time.Now().UnixMilli()),
	}, nil
}
