package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// WasteTypeModule wires waste category routes. Reads are public; creation
// is staff-only.
type WasteTypeModule struct {
	Handler *handlers.WasteTypeHandler
	Auth    *application.AuthService
}

func NewWasteTypeModule(h *handlers.WasteTypeHandler, auth *application.AuthService) *WasteTypeModule {
	return &WasteTypeModule{Handler: h, Auth: auth}
}

func (m *WasteTypeModule) Register(rg *gin.RouterGroup) {
	rg.GET("/type/view", m.Handler.GetAll)
	rg.POST("/type/create", middleware.Auth(m.Auth), middleware.RequireAdmin(), m.Handler.Create)
}
