package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"dollshop-backend/internal/domain"
	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrInvalidCredentials is returned when email/password do not match.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// userRepo is the slice of the user repository the auth flows need.
type userRepo interface {
	Create(ctx context.Context, u domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	SetRefreshTokenHash(ctx context.Context, id int64, hash *string) error
}

// cartRepo lets signup provision the account cart up front.
type cartRepo interface {
	Create(ctx context.Context, userID int64) (*domain.Cart, error)
}

// Service handles signup, signin, logout and refresh rotation.
type Service struct {
	users       userRepo
	carts       cartRepo
	tokens      *tokenManager
	passwordMin int
}

// New creates a Service with the given token secrets and lifetimes.
func New(users userRepo, carts cartRepo, accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *Service {
	return &Service{
		users:       users,
		carts:       carts,
		tokens:      newTokenManager(accessSecret, refreshSecret, accessTTL, refreshTTL),
		passwordMin: 8,
	}
}

// SignupInput captures fields expected by the signup endpoint.
type SignupInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Signup registers a new account, provisions its cart and signs it in.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, Tokens, error) {
	email := strings.TrimSpace(strings.ToLower(in.Email))
	if email == "" {
		return nil, Tokens{}, domain.Invalid("email required")
	}
	password := strings.TrimSpace(in.Password)
	if len(password) < s.passwordMin {
		return nil, Tokens{}, domain.Invalid(fmt.Sprintf("password must be at least %d characters", s.passwordMin))
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, Tokens{}, err
	}

	u, err := s.users.Create(ctx, domain.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        strings.TrimSpace(in.Phone),
	})
	if err != nil {
		return nil, Tokens{}, err
	}
	if _, err := s.carts.Create(ctx, u.ID); err != nil {
		return nil, Tokens{}, err
	}

	tokens, err := s.issueAndStore(ctx, u)
	if err != nil {
		return nil, Tokens{}, err
	}
	return u, tokens, nil
}

// Signin validates credentials and returns a fresh token pair.
func (s *Service) Signin(ctx context.Context, email, password string) (*domain.User, Tokens, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, Tokens{}, ErrInvalidCredentials
		}
		return nil, Tokens{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(strings.TrimSpace(password))); err != nil {
		return nil, Tokens{}, ErrInvalidCredentials
	}

	tokens, err := s.issueAndStore(ctx, u)
	if err != nil {
		return nil, Tokens{}, err
	}
	return u, tokens, nil
}

// Logout invalidates the stored refresh token. Signing out twice is fine.
func (s *Service) Logout(ctx context.Context, userID int64) error {
	return s.users.SetRefreshTokenHash(ctx, userID, nil)
}

// Refresh validates the presented refresh token against the stored hash and
// rotates the pair, so a token can only be redeemed once.
func (s *Service) Refresh(ctx context.Context, refreshToken string) (Tokens, error) {
	userID, err := s.tokens.ParseRefresh(refreshToken)
	if err != nil {
		return Tokens{}, ErrInvalidToken
	}
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return Tokens{}, ErrInvalidToken
		}
		return Tokens{}, err
	}
	if u.RefreshTokenHash == nil || !compareToken(*u.RefreshTokenHash, refreshToken) {
		return Tokens{}, ErrInvalidToken
	}
	return s.issueAndStore(ctx, u)
}

// VerifyAccess validates an access token and returns the user id it names.
func (s *Service) VerifyAccess(token string) (int64, error) {
	return s.tokens.ParseAccess(token)
}

func (s *Service) issueAndStore(ctx context.Context, u *domain.User) (Tokens, error) {
	tokens, err := s.tokens.IssuePair(u.ID, u.Email)
	if err != nil {
		return Tokens{}, err
	}
	hash, err := hashToken(tokens.RefreshToken)
	if err != nil {
		return Tokens{}, err
	}
	if err := s.users.SetRefreshTokenHash(ctx, u.ID, &hash); err != nil {
		return Tokens{}, err
	}
	return tokens, nil
}
