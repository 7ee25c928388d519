package user

import (
	"context"
	"errors"
	"strings"

	"dollshop-backend/internal/domain"
	userrepo "dollshop-backend/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

type userRepo interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	Update(ctx context.Context, id int64, in userrepo.UpdateInput) error
	Delete(ctx context.Context, id int64) error
}

type cartRepo interface {
	DeleteByUser(ctx context.Context, userID int64) error
}

// Service exposes profile reads and mutations.
type Service struct {
	users userRepo
	carts cartRepo
}

func New(users userRepo, carts cartRepo) *Service {
	return &Service{users: users, carts: carts}
}

// UpdateInput carries the editable profile fields. Password is optional and,
// when present, replaces the stored hash.
type UpdateInput struct {
	Name     string `json:"name" binding:"required"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	return s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateInput) (*domain.User, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, domain.Invalid("name required")
	}
	var passwordHash *string
	if p := strings.TrimSpace(in.Password); p != "" {
		if len(p) < 8 {
			return nil, domain.Invalid("password must be at least 8 characters")
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte(p), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hashed)
		passwordHash = &h
	}
	err := s.users.Update(ctx, id, userrepo.UpdateInput{
		Name:         strings.TrimSpace(in.Name),
		Phone:        strings.TrimSpace(in.Phone),
		PasswordHash: passwordHash,
	})
	if err != nil {
		return nil, err
	}
	return s.users.GetByID(ctx, id)
}

// Delete removes the account and its cart. The cart goes first so a failure
// leaves the account intact and retryable.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.carts.DeleteByUser(ctx, id); err != nil && !errors.Is(err, domain.ErrCartNotFound) {
		return err
	}
	return s.users.Delete(ctx, id)
}
