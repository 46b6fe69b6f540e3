package service

import (
	"context"
	"errors"
	"fmt"

	"checklist_api/internal/models"
	"checklist_api/internal/repository"

	"golang.org/x/crypto/bcrypt"
)

// Domain errors for auth flows.
var (
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrPasswordTooLong    = errors.New("password exceeds 72 bytes")
)

// AuthService handles user auth logic
type AuthService struct {
	authRepo repository.Authorization
	tokens   *TokenManager
}

func NewAuthService(repo repository.Authorization, tokens *TokenManager) *AuthService {
	return &AuthService{authRepo: repo, tokens: tokens}
}

// SignUp creates a user unless the username is already present.
// The lookup and the insert are not atomic; a lost race is caught by the
// store's unique constraint and reported as ErrUsernameTaken as well.
func (s *AuthService) SignUp(ctx context.Context, in SignUpInput) (int64, error) {
	existing, err := s.authRepo.GetByUsername(ctx, in.Username)
	if err != nil {
		return 0, err
	}
	if existing != nil {
		return 0, ErrUsernameTaken
	}

	hash, err := hashPassword(in.Password)
	if err != nil {
		return 0, err
	}

	id, err := s.authRepo.Create(ctx, models.User{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
	})
	if errors.Is(err, repository.ErrDuplicateUsername) {
		return 0, ErrUsernameTaken
	}
	return id, err
}

// GenerateToken validates credentials and returns JWT.
// Unknown user and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) GenerateToken(ctx context.Context, username, password string) (string, error) {
	u, err := s.authRepo.GetByUsername(ctx, username)
	if err != nil {
		return "", err
	}
	if u == nil {
		return "", ErrInvalidCredentials
	}

	if err := verifyPassword(u.PasswordHash, password); err != nil {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(u.Username)
}

// ParseToken verifies the token and returns the username claim.
func (s *AuthService) ParseToken(accessToken string) (string, error) {
	claims, err := s.tokens.Verify(accessToken)
	if err != nil {
		return "", err
	}
	return claims.Username, nil
}

// helper: hash password safely
func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", ErrPasswordTooLong
	}
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hash), nil
}

// helper: verify password against hash
func verifyPassword(hash, password string) error {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
}
