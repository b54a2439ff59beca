package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/internal/interface/middleware"
	"github.com/wastewise/wastewise-api/pkg/response"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type FeedbackHandler struct {
	Service *application.FeedbackService
	Logger  *logrus.Logger
}

func NewFeedbackHandler(svc *application.FeedbackService, logger *logrus.Logger) *FeedbackHandler {
	return &FeedbackHandler{Service: svc, Logger: logger}
}

type feedbackRequest struct {
	EmailAddress  string `json:"emailAddress" binding:"required,email"`
	ContactNumber string `json:"contactNumber" binding:"required,max=20"`
	Area          string `json:"area" binding:"required,max=100"`
	FeedbackType  string `json:"feedbackType" binding:"required,max=100"`
	Message       string `json:"message" binding:"required,min=5,max=5000"`
}

func feedbackView(f *entity.Feedback) gin.H {
	return gin.H{
		"id":            f.ID,
		"userID":        f.UserID,
		"emailAddress":  f.EmailAddress,
		"contactNumber": f.ContactNumber,
		"area":          f.Area,
		"feedbackType":  f.FeedbackType,
		"message":       f.Message,
		"response":      f.Response,
		"date":          f.Date,
	}
}

func feedbackViews(list []*entity.Feedback) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, f := range list {
		out = append(out, feedbackView(f))
	}
	return out
}

// GetAll GET /api/feedback/all (admin)
func (h *FeedbackHandler) GetAll(c *gin.Context) {
	list, err := h.Service.GetAll()
	if err != nil {
		h.Logger.WithError(err).Error("list feedback failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackViews(list), "feedback", nil)
}

// Create POST /api/feedback
func (h *FeedbackHandler) Create(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	f := &entity.Feedback{
		UserID:        c.GetString(middleware.CtxUserIDKey),
		EmailAddress:  req.EmailAddress,
		ContactNumber: req.ContactNumber,
		Area:          req.Area,
		FeedbackType:  req.FeedbackType,
		Message:       req.Message,
		Date:          time.Now(),
	}
	if err := h.Service.Create(c.Request.Context(), f); err != nil {
		h.Logger.WithError(err).Error("create feedback failed")
		response.Error[any](c, http.StatusInternalServerError, "Error submitting feedback", nil)
		return
	}
	response.Success(c, http.StatusCreated, feedbackView(f), "Feedback submitted successfully", nil)
}

// GetByEmail GET /api/feedback/:email
func (h *FeedbackHandler) GetByEmail(c *gin.Context) {
	list, err := h.Service.GetByEmail(c.Param("email"))
	if err != nil {
		h.Logger.WithError(err).Error("list feedback by email failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackViews(list), "feedback by email", nil)
}

// GetByID GET /api/feedback/doc/:id
func (h *FeedbackHandler) GetByID(c *gin.Context) {
	f, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrFeedbackNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("get feedback failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackView(f), "feedback", nil)
}

// GetByUser GET /api/feedback/user/:userId
func (h *FeedbackHandler) GetByUser(c *gin.Context) {
	list, err := h.Service.GetByUserID(c.Param("userId"))
	if err != nil {
		h.Logger.WithError(err).Error("list feedback by user failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackViews(list), "feedback by user", nil)
}

// Update PUT /api/feedback/:id
func (h *FeedbackHandler) Update(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	f := &entity.Feedback{
		ID:            c.Param("id"),
		UserID:        c.GetString(middleware.CtxUserIDKey),
		EmailAddress:  req.EmailAddress,
		ContactNumber: req.ContactNumber,
		Area:          req.Area,
		FeedbackType:  req.FeedbackType,
		Message:       req.Message,
	}
	if err := h.Service.Update(c.Request.Context(), f); err != nil {
		if errors.Is(err, application.ErrFeedbackNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("update feedback failed")
		response.Error[any](c, http.StatusInternalServerError, "Error updating feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackView(f), "feedback updated", nil)
}

// Delete DELETE /api/feedback/:id (admin)
func (h *FeedbackHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrFeedbackNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("delete feedback failed")
		response.Error[any](c, http.StatusInternalServerError, "Error deleting feedback", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Feedback deleted successfully", nil)
}

// AddResponse PUT /api/feedback/response/:id (admin)
// Stores the staff response and queues a notification email to the resident.
func (h *FeedbackHandler) AddResponse(c *gin.Context) {
	var req struct {
		Response string `json:"response" binding:"required,max=5000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	f, err := h.Service.AddResponse(c.Request.Context(), c.Param("id"), req.Response)
	if err != nil {
		if errors.Is(err, application.ErrFeedbackNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("add feedback response failed")
		response.Error[any](c, http.StatusInternalServerError, "Error adding response", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackView(f), "response added", nil)
}

// DeleteResponse DELETE /api/feedback/response/:id (admin)
func (h *FeedbackHandler) DeleteResponse(c *gin.Context) {
	f, err := h.Service.DeleteResponse(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrFeedbackNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("delete feedback response failed")
		response.Error[any](c, http.StatusInternalServerError, "Error deleting response", nil)
		return
	}
	response.Success(c, http.StatusOK, feedbackView(f), "response deleted", nil)
}

// Search GET /api/feedback/search?q=&size= (admin)
func (h *FeedbackHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter q is required", nil)
		return
	}
	size, _ := strconv.Atoi(c.DefaultQuery("size", "10"))

	hits, err := h.Service.Search(c.Request.Context(), q, size)
	if err != nil {
		h.Logger.WithError(err).Error("feedback search failed")
		response.Error[any](c, http.StatusInternalServerError, "Error searching feedback", nil)
		return
	}
	response.Success(c, http.StatusOK, hits, "search results", gin.H{"count": len(hits)})
}
