package service

import (
	"context"
	"errors"

	"inventra/internal/apierror"
	"inventra/internal/dto"
	"inventra/internal/model"
	"inventra/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// loginFailed is deliberately identical for an unknown username and a wrong
// password so the response never discloses which one failed.
const loginFailed = "Invalid username or password"

type AuthService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	Register(ctx context.Context, req dto.RegisterRequest) error
	Logout(ctx context.Context) error
}

type authService struct {
	repo   repository.UserRepository
	issuer IdentityIssuer
}

func NewAuthService(repo repository.UserRepository, issuer IdentityIssuer) AuthService {
	return &authService{repo: repo, issuer: issuer}
}

func (s *authService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.repo.FindByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apierror.Auth(loginFailed)
		}
		return nil, apierror.Server(err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return nil, apierror.Auth(loginFailed)
	}

	if err := s.issuer.Issue(ctx, user); err != nil {
		return nil, apierror.Server(err)
	}

	return &dto.LoginResponse{
		Success:  true,
		Message:  "Login successful",
		Redirect: "dashboard.html",
		User: dto.UserSummary{
			ID:       user.ID,
			Username: user.Username,
			FullName: user.FullName,
			Role:     user.Role,
		},
	}, nil
}

// Register inserts the user in one atomic statement. The UNIQUE constraint
// on username turns a duplicate into gorm.ErrDuplicatedKey, so there is no
// racy existence pre-check.
func (s *authService) Register(ctx context.Context, req dto.RegisterRequest) error {
	role := req.Role
	if role == "" {
		role = "user"
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apierror.Server(err)
	}

	user := &model.User{
		Username: req.Username,
		Password: string(hash),
		FullName: req.FullName,
		Email:    req.Email,
		Role:     role,
	}
	if err := s.repo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return apierror.Conflict("Username already exists")
		}
		return apierror.Server(err)
	}
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	return s.issuer.Clear(ctx)
}
