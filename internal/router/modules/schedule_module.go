package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// ScheduleModule wires pickup schedule routes; all require a bearer token.
type ScheduleModule struct {
	Handler *handlers.ScheduleHandler
	Auth    *application.AuthService
}

func NewScheduleModule(h *handlers.ScheduleHandler, auth *application.AuthService) *ScheduleModule {
	return &ScheduleModule{Handler: h, Auth: auth}
}

func (m *ScheduleModule) Register(rg *gin.RouterGroup) {
	sched := rg.Group("/schedule")
	sched.Use(middleware.Auth(m.Auth))
	{
		sched.GET("/view", m.Handler.GetAll)
		sched.GET("/user/:userid", m.Handler.GetByUser)
		sched.GET("/doc/:id", m.Handler.GetByID)
		sched.POST("/create", m.Handler.Create)
		sched.PUT("/:id", m.Handler.Update)
		sched.DELETE("/:id", m.Handler.Delete)
	}
}
