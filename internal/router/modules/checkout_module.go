package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/container"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// CheckoutModule wires one-off Stripe checkout routes.
type CheckoutModule struct {
	Handler *handlers.CheckoutHandler
	Auth    *application.AuthService
}

func NewCheckoutModule(h *handlers.CheckoutHandler, auth *application.AuthService) *CheckoutModule {
	return &CheckoutModule{Handler: h, Auth: auth}
}

func (m *CheckoutModule) Register(rg *gin.RouterGroup) {
	pay := rg.Group("/userpay")
	pay.Use(middleware.Auth(m.Auth))
	{
		// Session creation hits Stripe; keep per-user volume low
		checkoutLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByUserID(), nil)
		pay.POST("/checkout", checkoutLimiter, m.Handler.Create)
		pay.GET("/get", middleware.RequireAdmin(), m.Handler.GetAll)
	}
}
