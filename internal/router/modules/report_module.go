package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// ReportModule wires staff reporting routes.
type ReportModule struct {
	Handler *handlers.ReportHandler
	Auth    *application.AuthService
}

func NewReportModule(h *handlers.ReportHandler, auth *application.AuthService) *ReportModule {
	return &ReportModule{Handler: h, Auth: auth}
}

func (m *ReportModule) Register(rg *gin.RouterGroup) {
	reports := rg.Group("/reports")
	reports.Use(middleware.Auth(m.Auth), middleware.RequireAdmin())
	{
		reports.GET("/payments", m.Handler.PaymentsByMonth)
		reports.GET("/schedules", m.Handler.SchedulesByArea)
		reports.GET("/waste-collected", m.Handler.WasteCollectedByMonth)
	}
}
