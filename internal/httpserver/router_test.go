package httpserver

import (
	"context"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"dollshop-backend/internal/domain"
	"dollshop-backend/internal/service/auth"
)

type stubUserRepo struct {
	users  map[int64]*domain.User
	nextID int64
}

func (r *stubUserRepo) Create(_ context.Context, u domain.User) (*domain.User, error) {
	r.nextID++
	u.ID = r.nextID
	if r.users == nil {
		r.users = make(map[int64]*domain.User)
	}
	r.users[u.ID] = &u
	return &u, nil
}

func (r *stubUserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return u, nil
}

func (r *stubUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *stubUserRepo) SetRefreshTokenHash(_ context.Context, id int64, hash *string) error {
	u, ok := r.users[id]
	if !ok {
		return domain.ErrNotFound
	}
	u.RefreshTokenHash = hash
	return nil
}

type stubCartRepo struct{}

func (stubCartRepo) Create(_ context.Context, userID int64) (*domain.Cart, error) {
	return &domain.Cart{ID: 1, UserID: userID}, nil
}

func testRouter(t *testing.T) (http.Handler, auth.Tokens) {
	t.Helper()
	svc := auth.New(&stubUserRepo{}, stubCartRepo{}, "access-secret", "refresh-secret", time.Minute, time.Hour)
	_, tokens, err := svc.Signup(context.Background(), auth.SignupInput{
		Name:     "Tester",
		Email:    "tester@example.com",
		Password: "long enough",
		Phone:    "010-0000-0000",
	})
	if err != nil {
		t.Fatalf("signup: %v", err)
	}

	logger := log.New(os.Stderr, "[api] ", log.LstdFlags)
	router := buildRouter(logger, nil, Deps{Auth: svc}, []string{"http://localhost:3000"})
	return router, tokens
}

func TestHealthz(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestRequireAuth(t *testing.T) {
	router, tokens := testRouter(t)

	// No Authorization header at all.
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "missing bearer token") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}

	// A syntactically valid but unsigned token.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with garbage token, got %d", rec.Code)
	}

	// Refresh tokens are not access tokens.
	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.RefreshToken)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 with refresh token, got %d", rec.Code)
	}

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204 with access token, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestErrorShape(t *testing.T) {
	router, _ := testRouter(t)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/auth/local/signin", strings.NewReader(`{"email":"nobody@example.com","password":"whatever"}`))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for unknown user, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, `"statusCode":401`) || !strings.Contains(body, `"message"`) {
		t.Fatalf("unexpected error shape: %s", body)
	}
}
