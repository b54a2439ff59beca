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

type PaymentHandler struct {
	Service *application.PaymentService
	Logger  *logrus.Logger
}

func NewPaymentHandler(svc *application.PaymentService, logger *logrus.Logger) *PaymentHandler {
	return &PaymentHandler{Service: svc, Logger: logger}
}

func paymentView(p *entity.Payment) gin.H {
	return gin.H{
		"id":         p.ID,
		"userID":     p.UserID,
		"fname":      p.FirstName,
		"lname":      p.LastName,
		"status":     p.Status,
		"paybackFee": p.PaybackFee,
		"flatFee":    p.FlatFee,
		"totalBill":  p.TotalBill,
		"createdAt":  p.CreatedAt,
		"updatedAt":  p.UpdatedAt,
	}
}

func paymentViews(list []*entity.Payment) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, p := range list {
		out = append(out, paymentView(p))
	}
	return out
}

// Add POST /api/payments/add
func (h *PaymentHandler) Add(c *gin.Context) {
	var req struct {
		FirstName  string  `json:"fname" binding:"required"`
		LastName   string  `json:"lname" binding:"required"`
		Status     string  `json:"status"`
		PaybackFee float64 `json:"paybackFee"`
		FlatFee    float64 `json:"flatFee" binding:"required,gt=0"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	p := &entity.Payment{
		UserID:     c.GetString(middleware.CtxUserIDKey),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Status:     req.Status,
		PaybackFee: req.PaybackFee,
		FlatFee:    req.FlatFee,
	}
	if err := h.Service.Add(p); err != nil {
		h.Logger.WithError(err).Error("create payment failed")
		response.Error[any](c, http.StatusInternalServerError, "Error adding payment", nil)
		return
	}
	response.Success(c, http.StatusCreated, paymentView(p), "payment added", nil)
}

// Update PUT /api/payments/update/:id (admin)
// Zero-valued fields are left untouched; changing the flat fee recomputes
// the total bill.
func (h *PaymentHandler) Update(c *gin.Context) {
	var req struct {
		FirstName  string  `json:"fname"`
		LastName   string  `json:"lname"`
		Status     string  `json:"status"`
		PaybackFee float64 `json:"paybackFee"`
		FlatFee    float64 `json:"flatFee"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	updated, err := h.Service.Update(&entity.Payment{
		ID:         c.Param("id"),
		FirstName:  req.FirstName,
		LastName:   req.LastName,
		Status:     req.Status,
		PaybackFee: req.PaybackFee,
		FlatFee:    req.FlatFee,
	})
	if err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("update payment failed")
		response.Error[any](c, http.StatusInternalServerError, "Error updating payment", nil)
		return
	}
	response.Success(c, http.StatusOK, paymentView(updated), "payment updated", nil)
}

// Delete DELETE /api/payments/delete/:id (admin)
func (h *PaymentHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrPaymentNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("delete payment failed")
		response.Error[any](c, http.StatusInternalServerError, "Error deleting payment", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Payment deleted successfully", nil)
}

// GetAll GET /api/payments/get (admin)
func (h *PaymentHandler) GetAll(c *gin.Context) {
	payments, err := h.Service.GetAll()
	if err != nil {
		h.Logger.WithError(err).Error("list payments failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving payments", nil)
		return
	}
	response.Success(c, http.StatusOK, paymentViews(payments), "payments", nil)
}

// GetByUser GET /api/payments/getuserpay?userId=
// Residents can read their own records only; staff can read anyone's.
func (h *PaymentHandler) GetByUser(c *gin.Context) {
	userID := c.Query("userId")
	if userID == "" {
		userID = c.GetString(middleware.CtxUserIDKey)
	}
	if userID != c.GetString(middleware.CtxUserIDKey) && !c.GetBool(middleware.CtxAdminKey) {
		response.Error[any](c, http.StatusForbidden, "cannot access another user's payments", nil)
		return
	}

	payments, err := h.Service.GetByUser(userID)
	if err != nil {
		if errors.Is(err, application.ErrNoPaymentsForUser) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("list user payments failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving user payments", nil)
		return
	}
	response.Success(c, http.StatusOK, paymentViews(payments), "user payments", nil)
}
