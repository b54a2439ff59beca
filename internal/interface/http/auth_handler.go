package handlers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/config"
	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
	"github.com/wastewise/wastewise-api/internal/oauth"
	"github.com/wastewise/wastewise-api/pkg/response"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type AuthHandler struct {
	Service *application.AuthService
	Google  *oauth.GoogleProvider
	RDB     *redis.Client
	Cfg     *config.Config
	Logger  *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, google *oauth.GoogleProvider, rdb *redis.Client, cfg *config.Config, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Service: svc, Google: google, RDB: rdb, Cfg: cfg, Logger: logger}
}

func keyOAuthState(s string) string { return "oauth:state:" + s }

func genState(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

func accountView(a *entity.Account) gin.H {
	return gin.H{
		"id":          a.ID,
		"fname":       a.FirstName,
		"lname":       a.LastName,
		"email":       a.Email,
		"mobile":      a.Mobile,
		"residenceId": a.ResidenceID,
		"admintype":   a.AdminType,
	}
}

// Signup POST /api/auth/signup
func (h *AuthHandler) Signup(c *gin.Context) {
	var req struct {
		FirstName   string `json:"fname" binding:"required"`
		LastName    string `json:"lname" binding:"required"`
		Mobile      string `json:"mobile" binding:"required"`
		Email       string `json:"email" binding:"required,email"`
		Password    string `json:"password" binding:"required,pwd"`
		ResidenceID string `json:"residenceId" binding:"required"`
		AdminType   bool   `json:"admintype"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	account, err := h.Service.Signup(application.SignupInput{
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		Mobile:      req.Mobile,
		Email:       req.Email,
		ResidenceID: req.ResidenceID,
		Password:    req.Password,
		AdminType:   req.AdminType,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrEmailTaken),
			errors.Is(err, application.ErrMissingFields):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("signup failed")
			response.Error[any](c, http.StatusInternalServerError, "signup failed", nil)
		}
		return
	}

	token, _, err := h.Service.IssueToken(account.ID)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error[any](c, http.StatusInternalServerError, "token signing failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"email": account.Email, "token": token}, "signup successful", nil)
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required,email"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	account, err := h.Service.Login(req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, application.ErrIncorrectEmail),
			errors.Is(err, application.ErrIncorrectPassword),
			errors.Is(err, application.ErrMissingFields):
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
		default:
			h.Logger.WithError(err).Error("login failed")
			response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		}
		return
	}

	token, _, err := h.Service.IssueToken(account.ID)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error[any](c, http.StatusInternalServerError, "token signing failed", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"email": account.Email, "token": token}, "login successful", nil)
}

// Logout POST /api/auth/logout
// The bearer token is optional; when a valid one is presented its id goes on
// the denylist so the token stops verifying immediately.
func (h *AuthHandler) Logout(c *gin.Context) {
	if token, ok := middleware.BearerToken(c); ok {
		if claims, err := h.Service.JWT.Parse(token); err == nil {
			if err := h.Service.RevokeToken(c.Request.Context(), claims); err != nil {
				h.Logger.WithError(err).Warn("token revocation failed")
			}
		}
	}
	response.Success[any](c, http.StatusOK, nil, "Logged out successfully", nil)
}

// Me GET /api/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"id":          c.GetString(middleware.CtxUserIDKey),
		"email":       c.GetString(middleware.CtxUserEmailKey),
		"residenceId": c.GetString(middleware.CtxResidenceIDKey),
		"admintype":   c.GetBool(middleware.CtxAdminKey),
	}, "current user", nil)
}

// GetAll GET /api/auth/all (admin)
func (h *AuthHandler) GetAll(c *gin.Context) {
	accounts, err := h.Service.GetAllAccounts()
	if err != nil {
		h.Logger.WithError(err).Error("list accounts failed")
		response.Error[any](c, http.StatusInternalServerError, "could not list accounts", nil)
		return
	}
	list := make([]gin.H, 0, len(accounts))
	for _, a := range accounts {
		list = append(list, accountView(a))
	}
	response.Success(c, http.StatusOK, list, "accounts", nil)
}

// GoogleLogin GET /api/auth/google
func (h *AuthHandler) GoogleLogin(c *gin.Context) {
	state, err := genState(24)
	if err != nil {
		response.Error[any](c, http.StatusInternalServerError, "state generation failed", nil)
		return
	}
	if h.RDB != nil {
		h.RDB.Set(c, keyOAuthState(state), "1", 10*time.Minute)
	}
	c.Redirect(http.StatusFound, h.Google.LoginURL(state))
}

// GoogleCallback GET /api/auth/google/callback?code=&state=
// Finds or creates the account for the Google identity and hands the token
// to the front end via redirect.
func (h *AuthHandler) GoogleCallback(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		response.Error[any](c, http.StatusBadRequest, "missing authorization code", nil)
		return
	}
	if h.RDB != nil {
		state := c.Query("state")
		n, err := h.RDB.Del(c, keyOAuthState(state)).Result()
		if err == nil && n == 0 {
			response.Error[any](c, http.StatusBadRequest, "invalid oauth state", nil)
			return
		}
	}

	info, err := h.Google.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.Logger.WithError(err).Error("google code exchange failed")
		response.Error[any](c, http.StatusBadGateway, "google authentication failed", nil)
		return
	}

	account, err := h.Service.LoginWithGoogle(info)
	if err != nil {
		h.Logger.WithError(err).Error("google login failed")
		response.Error[any](c, http.StatusInternalServerError, "google authentication failed", nil)
		return
	}

	token, _, err := h.Service.IssueToken(account.ID)
	if err != nil {
		h.Logger.WithError(err).Error("token signing failed")
		response.Error[any](c, http.StatusInternalServerError, "token signing failed", nil)
		return
	}
	c.Redirect(http.StatusFound, h.Cfg.FrontendURL+"?token="+token)
}
