package user

import (
	"context"
	"errors"
	"testing"

	"dollshop-backend/internal/domain"
	userrepo "dollshop-backend/internal/repository/user"
	"golang.org/x/crypto/bcrypt"
)

type stubUserRepo struct {
	user       domain.User
	lastUpdate userrepo.UpdateInput
	deleted    []int64
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	if id != r.user.ID {
		return nil, domain.ErrNotFound
	}
	u := r.user
	return &u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	if email != r.user.Email {
		return nil, domain.ErrNotFound
	}
	u := r.user
	return &u, nil
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.User, error) {
	return []domain.User{r.user}, nil
}

func (r *stubUserRepo) Update(_ context.Context, id int64, in userrepo.UpdateInput) error {
	if id != r.user.ID {
		return domain.ErrNotFound
	}
	r.lastUpdate = in
	r.user.Name = in.Name
	r.user.Phone = in.Phone
	return nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) error {
	if id != r.user.ID {
		return domain.ErrNotFound
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type stubCartRepo struct {
	deletedFor []int64
	err        error
}

func (r *stubCartRepo) DeleteByUser(_ context.Context, userID int64) error {
	if r.err != nil {
		return r.err
	}
	r.deletedFor = append(r.deletedFor, userID)
	return nil
}

func TestUpdate_HashesNewPassword(t *testing.T) {
	users := &stubUserRepo{user: domain.User{ID: 1, Name: "Old"}}
	svc := New(users, &stubCartRepo{})

	updated, err := svc.Update(context.Background(), 1, UpdateInput{
		Name:     "  New Name  ",
		Phone:    "010-1234-5678",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "New Name" {
		t.Fatalf("expected trimmed name, got %q", updated.Name)
	}
	if users.lastUpdate.PasswordHash == nil {
		t.Fatalf("expected password hash set")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*users.lastUpdate.PasswordHash), []byte("correct horse")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestUpdate_KeepsPasswordWhenOmitted(t *testing.T) {
	users := &stubUserRepo{user: domain.User{ID: 1, Name: "Old"}}
	svc := New(users, &stubCartRepo{})

	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: "New"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if users.lastUpdate.PasswordHash != nil {
		t.Fatalf("expected password untouched, got hash %q", *users.lastUpdate.PasswordHash)
	}
}

func TestUpdate_RejectsBadInput(t *testing.T) {
	svc := New(&stubUserRepo{user: domain.User{ID: 1}}, &stubCartRepo{})

	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: "   "}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank name, got %v", err)
	}
	if _, err := svc.Update(context.Background(), 1, UpdateInput{Name: "ok", Password: "short"}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for short password, got %v", err)
	}
}

func TestDelete_RemovesCartFirst(t *testing.T) {
	users := &stubUserRepo{user: domain.User{ID: 1}}
	carts := &stubCartRepo{}
	svc := New(users, carts)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(carts.deletedFor) != 1 || carts.deletedFor[0] != 1 {
		t.Fatalf("expected cart removed for user 1, got %v", carts.deletedFor)
	}
	if len(users.deleted) != 1 {
		t.Fatalf("expected user removed, got %v", users.deleted)
	}
}

func TestDelete_ToleratesMissingCart(t *testing.T) {
	users := &stubUserRepo{user: domain.User{ID: 1}}
	svc := New(users, &stubCartRepo{err: domain.ErrCartNotFound})

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("expected missing cart tolerated, got %v", err)
	}
	if len(users.deleted) != 1 {
		t.Fatalf("expected user removed, got %v", users.deleted)
	}
}
