package modules

import (
	"github.com/gin-gonic/gin"

	"github.com/wastewise/wastewise-api/internal/application"
	handlers "github.com/wastewise/wastewise-api/internal/interface/http"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
)

// PaymentModule wires flat-fee billing routes. Mutations other than adding
// one's own record are staff-only.
type PaymentModule struct {
	Handler *handlers.PaymentHandler
	Auth    *application.AuthService
}

func NewPaymentModule(h *handlers.PaymentHandler, auth *application.AuthService) *PaymentModule {
	return &PaymentModule{Handler: h, Auth: auth}
}

func (m *PaymentModule) Register(rg *gin.RouterGroup) {
	pay := rg.Group("/payments")
	pay.Use(middleware.Auth(m.Auth))
	{
		pay.POST("/add", m.Handler.Add)
		pay.GET("/getuserpay", m.Handler.GetByUser)

		admin := pay.Group("/")
		admin.Use(middleware.RequireAdmin())
		{
			admin.PUT("/update/:id", m.Handler.Update)
			admin.DELETE("/delete/:id", m.Handler.Delete)
			admin.GET("/get", m.Handler.GetAll)
		}
	}
}
