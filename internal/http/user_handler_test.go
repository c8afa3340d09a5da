package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"moodlens/internal/domain"
	"moodlens/internal/service"
)

type mockUserRepo struct {
	usersByID    map[string]domain.User
	usersByEmail map[string]string
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		usersByID:    make(map[string]domain.User),
		usersByEmail: make(map[string]string),
	}
}

func (m *mockUserRepo) Create(_ context.Context, user domain.User) error {
	m.usersByID[user.ID] = user
	if user.Email != "" {
		m.usersByEmail[user.Email] = user.ID
	}
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (domain.User, error) {
	user, ok := m.usersByID[id]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return user, nil
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (domain.User, error) {
	id, ok := m.usersByEmail[email]
	if !ok {
		return domain.User{}, pgx.ErrNoRows
	}
	return m.GetByID(context.Background(), id)
}

func newTestJWTService() *service.JWTService {
	return service.NewJWTServiceWithStore("secret", 15*time.Minute, 30*time.Minute, service.NewMemoryRefreshTokenStore())
}

func setupUserRouter(userSvc *service.UserService, jwtSvc *service.JWTService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewUserHandler(zap.NewNop(), userSvc, jwtSvc)
	r.POST("/users", h.CreateUser)
	r.POST("/auth/login", h.Login)
	r.POST("/auth/refresh", h.RefreshToken)
	r.POST("/auth/logout", h.Logout)
	r.GET("/users/me", JWTAuthMiddleware(jwtSvc), h.Me)
	return r
}

func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var payload []byte
	if body != nil {
		payload, _ = json.Marshal(body)
	}
	req := httptest.NewRequest(method, path, bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestUserHandlerCreateUser_Success(t *testing.T) {
	svc := service.NewUserService(zap.NewNop(), newMockUserRepo())
	r := setupUserRouter(svc, newTestJWTService())

	rec := performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":        "user@example.com",
		"display_name": "Test",
		"password":     "hunter2hunter2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}
	if bytes.Contains(rec.Body.Bytes(), []byte("hunter2")) {
		t.Fatalf("password material must not appear in response: %s", rec.Body.String())
	}
}

func TestUserHandlerCreateUser_InvalidRequest(t *testing.T) {
	svc := service.NewUserService(zap.NewNop(), newMockUserRepo())
	r := setupUserRouter(svc, newTestJWTService())

	rec := performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":    "not-an-email",
		"password": "hunter2hunter2",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":    "user@example.com",
		"password": "short",
	})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400 for weak password, got %d", rec.Code)
	}
}

func TestUserHandlerLogin_SuccessAndFailure(t *testing.T) {
	svc := service.NewUserService(zap.NewNop(), newMockUserRepo())
	r := setupUserRouter(svc, newTestJWTService())

	rec := performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", rec.Code)
	}
	var loginResp struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}
	if loginResp.Tokens.AccessToken == "" || loginResp.Tokens.RefreshToken == "" {
		t.Fatalf("expected token pair, got %+v", loginResp.Tokens)
	}

	rec = performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "wrong-password",
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", rec.Code)
	}
}

func TestUserHandlerRefreshAndLogout(t *testing.T) {
	svc := service.NewUserService(zap.NewNop(), newMockUserRepo())
	jwtSvc := newTestJWTService()
	r := setupUserRouter(svc, jwtSvc)

	performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	var loginResp struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	rec = performRequest(r, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": loginResp.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("expected status 200 on refresh, got %d", rec.Code)
	}

	// El refresh token ya fue rotado: un segundo uso falla.
	rec = performRequest(r, http.MethodPost, "/auth/refresh", map[string]string{
		"refresh_token": loginResp.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 on reused refresh token, got %d", rec.Code)
	}

	rec = performRequest(r, http.MethodPost, "/auth/logout", map[string]string{
		"refresh_token": loginResp.Tokens.RefreshToken,
	})
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", rec.Code)
	}
}

func TestUserHandlerMe(t *testing.T) {
	svc := service.NewUserService(zap.NewNop(), newMockUserRepo())
	jwtSvc := newTestJWTService()
	r := setupUserRouter(svc, jwtSvc)

	performRequest(r, http.MethodPost, "/users", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	rec := performRequest(r, http.MethodPost, "/auth/login", map[string]string{
		"email":    "user@example.com",
		"password": "hunter2hunter2",
	})
	var loginResp struct {
		Tokens service.TokenPair `json:"tokens"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &loginResp); err != nil {
		t.Fatalf("decode login response: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/users/me", nil)
	req.Header.Set("Authorization", "Bearer "+loginResp.Tokens.AccessToken)
	recorder := httptest.NewRecorder()
	r.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}

	// Sin token: 401.
	req = httptest.NewRequest(http.MethodGet, "/users/me", nil)
	recorder = httptest.NewRecorder()
	r.ServeHTTP(recorder, req)
	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}
