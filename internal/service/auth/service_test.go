package auth

import (
	"context"
	"errors"
	"testing"
	"time"

	"dollshop-backend/internal/domain"
)

// memoryUserRepo is a lightweight in-memory user repository for tests.
type memoryUserRepo struct {
	byEmail map[string]*domain.User
	nextID  int64
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{byEmail: make(map[string]*domain.User)}
}

func (r *memoryUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	if _, exists := r.byEmail[u.Email]; exists {
		return nil, domain.ErrAlreadyExists
	}
	r.nextID++
	u.ID = r.nextID
	clone := u
	r.byEmail[u.Email] = &clone
	return &u, nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	for _, u := range r.byEmail {
		if u.ID == id {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	u, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *memoryUserRepo) SetRefreshTokenHash(_ context.Context, id int64, hash *string) error {
	for _, u := range r.byEmail {
		if u.ID == id {
			u.RefreshTokenHash = hash
			return nil
		}
	}
	return domain.ErrNotFound
}

type memoryCartRepo struct {
	createdFor []int64
}

func (r *memoryCartRepo) Create(_ context.Context, userID int64) (*domain.Cart, error) {
	r.createdFor = append(r.createdFor, userID)
	return &domain.Cart{ID: int64(len(r.createdFor)), UserID: userID}, nil
}

func newTestService(users *memoryUserRepo, carts *memoryCartRepo) *Service {
	return New(users, carts, "access-secret", "refresh-secret", 30*time.Minute, 14*24*time.Hour)
}

func TestSignup_CreatesUserAndCart(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	carts := &memoryCartRepo{}
	svc := newTestService(users, carts)

	u, tokens, err := svc.Signup(ctx, SignupInput{
		Name:     "Jamie",
		Email:    "Jamie@Example.com",
		Password: "supersecret",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if u.Email != "jamie@example.com" {
		t.Fatalf("expected lowercased email, got %q", u.Email)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", tokens)
	}
	if len(carts.createdFor) != 1 || carts.createdFor[0] != u.ID {
		t.Fatalf("expected cart created for user %d, got %v", u.ID, carts.createdFor)
	}
	stored, _ := users.GetByID(ctx, u.ID)
	if stored.RefreshTokenHash == nil {
		t.Fatalf("expected refresh token hash stored after signup")
	}
}

func TestSignup_RejectsShortPassword(t *testing.T) {
	svc := newTestService(newMemoryUserRepo(), &memoryCartRepo{})
	_, _, err := svc.Signup(context.Background(), SignupInput{
		Name:     "Jamie",
		Email:    "jamie@example.com",
		Password: "short",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", err)
	}
}

func TestSignin(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	svc := newTestService(users, &memoryCartRepo{})

	if _, _, err := svc.Signup(ctx, SignupInput{Name: "Jamie", Email: "jamie@example.com", Password: "supersecret"}); err != nil {
		t.Fatalf("signup: %v", err)
	}

	if _, _, err := svc.Signin(ctx, "jamie@example.com", "supersecret"); err != nil {
		t.Fatalf("signin: %v", err)
	}
	if _, _, err := svc.Signin(ctx, "jamie@example.com", "wrongpass"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for bad password, got %v", err)
	}
	if _, _, err := svc.Signin(ctx, "nobody@example.com", "supersecret"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("expected ErrInvalidCredentials for unknown email, got %v", err)
	}
}

func TestRefresh_RotatesToken(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	svc := newTestService(users, &memoryCartRepo{})

	_, tokens, err := svc.Signup(ctx, SignupInput{Name: "Jamie", Email: "jamie@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	rotated, err := svc.Refresh(ctx, tokens.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rotated.RefreshToken == tokens.RefreshToken {
		t.Fatalf("expected a new refresh token after rotation")
	}

	// The old token must be dead once rotated.
	if _, err := svc.Refresh(ctx, tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for redeemed token, got %v", err)
	}
	if _, err := svc.Refresh(ctx, rotated.RefreshToken); err != nil {
		t.Fatalf("refresh with rotated token: %v", err)
	}
}

func TestRefresh_RejectsAccessToken(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryUserRepo(), &memoryCartRepo{})

	_, tokens, err := svc.Signup(ctx, SignupInput{Name: "Jamie", Email: "jamie@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if _, err := svc.Refresh(ctx, tokens.AccessToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for access token, got %v", err)
	}
}

func TestLogout_InvalidatesRefresh(t *testing.T) {
	ctx := context.Background()
	users := newMemoryUserRepo()
	svc := newTestService(users, &memoryCartRepo{})

	u, tokens, err := svc.Signup(ctx, SignupInput{Name: "Jamie", Email: "jamie@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}
	if err := svc.Logout(ctx, u.ID); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if _, err := svc.Refresh(ctx, tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken after logout, got %v", err)
	}

	// Logging out twice is fine.
	if err := svc.Logout(ctx, u.ID); err != nil {
		t.Fatalf("second logout: %v", err)
	}
}

func TestVerifyAccess(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(newMemoryUserRepo(), &memoryCartRepo{})

	u, tokens, err := svc.Signup(ctx, SignupInput{Name: "Jamie", Email: "jamie@example.com", Password: "supersecret"})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	id, err := svc.VerifyAccess(tokens.AccessToken)
	if err != nil {
		t.Fatalf("verify access: %v", err)
	}
	if id != u.ID {
		t.Fatalf("expected user id %d, got %d", u.ID, id)
	}
	if _, err := svc.VerifyAccess(tokens.RefreshToken); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for refresh token on access check, got %v", err)
	}
	if _, err := svc.VerifyAccess("not-a-token"); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken for garbage, got %v", err)
	}
}
