package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/container"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// AuthModule wires account routes.
// Public: signup, login, logout, google consent + callback.
// Protected: me; admin: the full account list.
type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Credential endpoints get tight per-IP limits
	signupLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), middleware.AllowPrivateIP())

	rg.POST("/auth/signup", signupLimiter, m.Handler.Signup)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/logout", m.Handler.Logout)
	rg.GET("/auth/google", m.Handler.GoogleLogin)
	rg.GET("/auth/google/callback", m.Handler.GoogleCallback)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	{
		auth.GET("/auth/me", m.Handler.Me)
		auth.GET("/auth/all", middleware.RequireAdmin(), m.Handler.GetAll)
	}
}
