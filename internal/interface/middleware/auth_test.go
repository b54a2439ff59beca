package middleware

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	repo "github.com/wastewise/wastewise-api/internal/domain/repository"
	"github.com/wastewise/wastewise-api/pkg/helpers"
)

type stubAccountRepo struct {
	accounts map[string]*entity.Account
}

func (s *stubAccountRepo) Create(a *entity.Account) error { return nil }

func (s *stubAccountRepo) GetByEmail(email string) (*entity.Account, error) {
	for _, a := range s.accounts {
		if a.Email == email {
			return a, nil
		}
	}
	return nil, repo.ErrNotFound
}

func (s *stubAccountRepo) GetIdentity(id string) (*entity.Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return a, nil
}

func (s *stubAccountRepo) GetAll() ([]*entity.Account, error) { return nil, nil }

type stubDenylist struct {
	revoked map[string]bool
}

func (d *stubDenylist) Revoke(_ context.Context, jti string, _ time.Duration) error {
	d.revoked[jti] = true
	return nil
}

func (d *stubDenylist) IsRevoked(_ context.Context, jti string) bool {
	return d.revoked[jti]
}

func testAuthService(accounts map[string]*entity.Account) *application.AuthService {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return application.NewAuthService(
		&stubAccountRepo{accounts: accounts},
		helpers.NewJWTManager("test-secret", time.Hour),
		nil,
		logger,
	)
}

func testRouter(svc *application.AuthService) (*gin.Engine, *bool) {
	gin.SetMode(gin.TestMode)
	reached := false
	r := gin.New()
	r.GET("/protected", Auth(svc), func(c *gin.Context) {
		reached = true
		c.JSON(http.StatusOK, gin.H{
			"userID":      c.GetString(CtxUserIDKey),
			"residenceID": c.GetString(CtxResidenceIDKey),
			"admin":       c.GetBool(CtxAdminKey),
		})
	})
	r.GET("/admin", Auth(svc), RequireAdmin(), func(c *gin.Context) {
		reached = true
		c.Status(http.StatusOK)
	})
	return r, &reached
}

func TestAuthMissingHeader(t *testing.T) {
	r, reached := testRouter(testAuthService(nil))

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Authorization token required")
	assert.False(t, *reached, "handler must not run without a token")
}

func TestAuthMalformedToken(t *testing.T) {
	r, reached := testRouter(testAuthService(nil))

	for _, header := range []string{"Bearer not-a-jwt", "Basic abc", "Bearer"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set("Authorization", header)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code, "header %q", header)
		assert.False(t, *reached)
	}
}

func TestAuthExpiredToken(t *testing.T) {
	svc := testAuthService(nil)
	r, reached := testRouter(svc)

	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	token, _, err := expired.Generate("acc-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, *reached)
}

func TestAuthRevokedToken(t *testing.T) {
	svc := testAuthService(map[string]*entity.Account{
		"acc-1": {ID: "acc-1", Email: "amara@example.com", ResidenceID: "RES-42"},
	})
	svc.Denylist = &stubDenylist{revoked: map[string]bool{}}
	r, reached := testRouter(svc)

	token, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)

	// Usable before logout.
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	claims, err := svc.JWT.Parse(token)
	require.NoError(t, err)
	require.NoError(t, svc.RevokeToken(context.Background(), claims))

	// Same token is dead after revocation even though the signature and
	// expiry are still valid.
	*reached = false
	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Request is not authorized")
	assert.False(t, *reached)
}

func TestAuthDeletedAccount(t *testing.T) {
	svc := testAuthService(nil) // no accounts exist
	r, reached := testRouter(svc)

	token, _, err := svc.IssueToken("acc-gone")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "User not found")
	assert.False(t, *reached)
}

func TestAuthSuccessAttachesIdentity(t *testing.T) {
	svc := testAuthService(map[string]*entity.Account{
		"acc-1": {ID: "acc-1", Email: "amara@example.com", ResidenceID: "RES-42", AdminType: false},
	})
	r, reached := testRouter(svc)

	token, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, *reached)
	assert.Contains(t, w.Body.String(), "RES-42")
}

func TestRequireAdmin(t *testing.T) {
	svc := testAuthService(map[string]*entity.Account{
		"acc-1": {ID: "acc-1", Email: "resident@example.com"},
		"acc-2": {ID: "acc-2", Email: "staff@example.com", AdminType: true},
	})
	r, _ := testRouter(svc)

	resident, _, err := svc.IssueToken("acc-1")
	require.NoError(t, err)
	staff, _, err := svc.IssueToken("acc-2")
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+resident)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.Header.Set("Authorization", "Bearer "+staff)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}
