package handlers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/wastewise-api/config"
	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
	"github.com/wastewise/wastewise-api/pkg/helpers"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type memAccountRepo struct {
	accounts []*entity.Account
}

func (m *memAccountRepo) Create(a *entity.Account) error {
	for _, existing := range m.accounts {
		if existing.Email == a.Email {
			return repo.ErrDuplicateEmail
		}
	}
	a.ID = "acc-" + a.Email
	cp := *a
	m.accounts = append(m.accounts, &cp)
	return nil
}

func (m *memAccountRepo) GetByID(id string) (*entity.Account, error) {
	for _, a := range m.accounts {
		if a.ID == id {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range m.accounts {
		if a.Email == email {
			cp := *a
			return &cp, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (m *memAccountRepo) GetIdentity(id string) (*entity.Account, error) {
	a, err := m.GetByID(id)
	if err != nil {
		return nil, err
	}
	a.PasswordHash = ""
	return a, nil
}

func (m *memAccountRepo) GetAll() ([]*entity.Account, error) {
	out := make([]*entity.Account, 0, len(m.accounts))
	for _, a := range m.accounts {
		cp := *a
		cp.PasswordHash = ""
		out = append(out, &cp)
	}
	return out, nil
}

func newTestEngine() (*gin.Engine, *application.AuthService) {
	gin.SetMode(gin.TestMode)
	validation.Init()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	svc := application.NewAuthService(
		&memAccountRepo{},
		helpers.NewJWTManager("test-secret", time.Hour),
		nil,
		logger,
	)
	cfg := &config.Config{FrontendURL: "http://front.example"}
	h := NewAuthHandler(svc, nil, nil, cfg, logger)

	r := gin.New()
	api := r.Group("/api")
	api.POST("/auth/signup", h.Signup)
	api.POST("/auth/login", h.Login)
	api.POST("/auth/logout", h.Logout)
	api.GET("/auth/me", middleware.Auth(svc), h.Me)
	api.GET("/auth/all", middleware.Auth(svc), middleware.RequireAdmin(), h.GetAll)
	return r, svc
}

func doJSON(r *gin.Engine, method, path, body, token string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	r.ServeHTTP(w, req)
	return w
}

const signupBody = `{
	"fname": "Amara", "lname": "Perera", "mobile": "0771234567",
	"email": "amara@example.com", "password": "supersecret",
	"residenceId": "RES-42"
}`

func TestSignupReturnsEmailAndToken(t *testing.T) {
	r, svc := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		Data struct {
			Email string `json:"email"`
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "amara@example.com", resp.Data.Email)

	claims, err := svc.JWT.Parse(resp.Data.Token)
	require.NoError(t, err)
	assert.NotEmpty(t, claims.UserID)
}

func TestSignupDuplicateEmailRejected(t *testing.T) {
	r, _ := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Email already in use")
}

func TestSignupShortPasswordRejected(t *testing.T) {
	r, _ := newTestEngine()

	body := strings.Replace(signupBody, "supersecret", "short", 1)
	w := doJSON(r, http.MethodPost, "/api/auth/signup", body, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "password")
}

func TestLoginWrongPassword(t *testing.T) {
	r, _ := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email": "amara@example.com", "password": "not-the-password"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect password")

	w = doJSON(r, http.MethodPost, "/api/auth/login",
		`{"email": "nobody@example.com", "password": "whatever123"}`, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Incorrect email")
}

func TestMeReturnsIdentity(t *testing.T) {
	r, svc := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	account, err := svc.Repo.GetByEmail("amara@example.com")
	require.NoError(t, err)
	token, _, err := svc.IssueToken(account.ID)
	require.NoError(t, err)

	w = doJSON(r, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Email       string `json:"email"`
			ResidenceID string `json:"residenceId"`
			AdminType   bool   `json:"admintype"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "amara@example.com", resp.Data.Email)
	assert.Equal(t, "RES-42", resp.Data.ResidenceID)
	assert.False(t, resp.Data.AdminType)
}

func TestGetAllRequiresAdmin(t *testing.T) {
	r, svc := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	account, err := svc.Repo.GetByEmail("amara@example.com")
	require.NoError(t, err)
	token, _, err := svc.IssueToken(account.ID)
	require.NoError(t, err)

	w = doJSON(r, http.MethodGet, "/api/auth/all", "", token)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLogoutWithoutTokenStillSucceeds(t *testing.T) {
	r, _ := newTestEngine()

	w := doJSON(r, http.MethodPost, "/api/auth/logout", "", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Logged out successfully")
}

type memDenylist struct {
	revoked map[string]bool
}

func (d *memDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.revoked[jti] = true
	return nil
}

func (d *memDenylist) IsRevoked(_ context.Context, jti string) bool {
	return d.revoked[jti]
}

func TestLogoutInvalidatesToken(t *testing.T) {
	r, svc := newTestEngine()
	svc.Denylist = &memDenylist{revoked: map[string]bool{}}

	w := doJSON(r, http.MethodPost, "/api/auth/signup", signupBody, "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	token := body.Data.Token

	w = doJSON(r, http.MethodGet, "/api/auth/me", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/api/auth/logout", "", token)
	require.Equal(t, http.StatusOK, w.Code)

	// The same token no longer authorizes anything.
	w = doJSON(r, http.MethodGet, "/api/auth/me", "", token)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Request is not authorized")
}
