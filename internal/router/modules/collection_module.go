package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/container"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// CollectionModule wires waste-collection record routes. The whole group is
// rate-limited per IP; mutations are staff-only.
type CollectionModule struct {
	Handler *handlers.CollectionHandler
	Auth    *application.AuthService
}

func NewCollectionModule(h *handlers.CollectionHandler, auth *application.AuthService) *CollectionModule {
	return &CollectionModule{Handler: h, Auth: auth}
}

func (m *CollectionModule) Register(rg *gin.RouterGroup) {
	wasteLimiter := middleware.RateLimit(container.GetRedis(), 100, 15*time.Minute, middleware.KeyByIP(), nil)

	wc := rg.Group("/wastecollection")
	wc.Use(wasteLimiter, middleware.Auth(m.Auth))
	{
		wc.GET("", m.Handler.GetAll)
		wc.GET("/residence/:residenceId", m.Handler.GetByResidence)
		wc.GET("/:id", m.Handler.GetByID)

		admin := wc.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.POST("/create", m.Handler.Create)
			admin.PUT("/:id", m.Handler.Update)
			admin.DELETE("/:id", m.Handler.Delete)
		}
	}
}
