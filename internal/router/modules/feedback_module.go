package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// FeedbackModule wires resident feedback routes. Listing everything,
// deleting, responding and search are staff-only.
type FeedbackModule struct {
	Handler *handlers.FeedbackHandler
	Auth    *application.AuthService
}

func NewFeedbackModule(h *handlers.FeedbackHandler, auth *application.AuthService) *FeedbackModule {
	return &FeedbackModule{Handler: h, Auth: auth}
}

func (m *FeedbackModule) Register(rg *gin.RouterGroup) {
	fb := rg.Group("/feedback")
	fb.Use(middleware.Auth(m.Auth))
	{
		fb.POST("", m.Handler.Create)
		fb.GET("/:email", m.Handler.GetByEmail)
		fb.GET("/doc/:id", m.Handler.GetByID)
		fb.GET("/user/:userId", m.Handler.GetByUser)
		fb.PUT("/:id", m.Handler.Update)

		admin := fb.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.GET("/all", m.Handler.GetAll)
			admin.GET("/search", m.Handler.Search)
			admin.DELETE("/:id", m.Handler.Delete)
			admin.PUT("/response/:id", m.Handler.AddResponse)
			admin.DELETE("/response/:id", m.Handler.DeleteResponse)
		}
	}
}
