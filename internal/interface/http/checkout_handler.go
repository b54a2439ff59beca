package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
	"github.com/wastewise/wastewise-api/pkg/response"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type CheckoutHandler struct {
	Service *application.CheckoutService
	Logger  *logrus.Logger
}

func NewCheckoutHandler(svc *application.CheckoutService, logger *logrus.Logger) *CheckoutHandler {
	return &CheckoutHandler{Service: svc, Logger: logger}
}

// Create POST /api/userpay/checkout
// Opens a hosted Stripe Checkout session for the items and returns its URL.
func (h *CheckoutHandler) Create(c *gin.Context) {
	var req struct {
		Items []struct {
			Name  string  `json:"name" binding:"required"`
			Price float64 `json:"price" binding:"required,gt=0"`
		} `json:"items" binding:"required,min=1,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	items := make([]entity.CheckoutItem, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, entity.CheckoutItem{Name: it.Name, Price: it.Price})
	}

	url, err := h.Service.CreateSession(c.GetString(middleware.CtxUserIDKey), items)
	if err != nil {
		if errors.Is(err, application.ErrNoCheckoutItems) {
			response.Error[any](c, http.StatusBadRequest, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("checkout session failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating checkout session", nil)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"url": url}, "checkout session created", nil)
}

// GetAll GET /api/userpay/get (admin)
func (h *CheckoutHandler) GetAll(c *gin.Context) {
	orders, err := h.Service.GetAll()
	if err != nil {
		h.Logger.WithError(err).Error("list orders failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving orders", nil)
		return
	}
	list := make([]gin.H, 0, len(orders))
	for _, o := range orders {
		list = append(list, gin.H{
			"id":            o.ID,
			"userID":        o.UserID,
			"items":         o.Items,
			"totalAmount":   o.TotalAmount,
			"paymentStatus": o.PaymentStatus,
			"sessionId":     o.SessionID,
			"createdAt":     o.CreatedAt,
		})
	}
	response.Success(c, http.StatusOK, list, "orders", nil)
}
