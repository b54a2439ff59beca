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

type ScheduleHandler struct {
	Service *application.ScheduleService
	Logger  *logrus.Logger
}

func NewScheduleHandler(svc *application.ScheduleService, logger *logrus.Logger) *ScheduleHandler {
	return &ScheduleHandler{Service: svc, Logger: logger}
}

type scheduleRequest struct {
	FirstName   string `json:"fname" binding:"required"`
	LastName    string `json:"lname" binding:"required"`
	Mobile      string `json:"mobile" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	CollectDate string `json:"cdate" binding:"required"`
	Area        string `json:"area" binding:"required"`
	TimeSlot    string `json:"timeslot" binding:"required"`
	JobStatus   bool   `json:"jobstatus"`
	WasteType   string `json:"wastetype" binding:"required"`
	Description string `json:"description"`
}

func (r *scheduleRequest) toEntity(userID string) *entity.Schedule {
	return &entity.Schedule{
		UserID:      userID,
		FirstName:   r.FirstName,
		LastName:    r.LastName,
		Mobile:      r.Mobile,
		Email:       r.Email,
		CollectDate: r.CollectDate,
		Area:        r.Area,
		TimeSlot:    r.TimeSlot,
		JobStatus:   r.JobStatus,
		WasteType:   r.WasteType,
		Description: r.Description,
	}
}

func scheduleView(s *entity.Schedule) gin.H {
	return gin.H{
		"id":          s.ID,
		"userID":      s.UserID,
		"fname":       s.FirstName,
		"lname":       s.LastName,
		"mobile":      s.Mobile,
		"email":       s.Email,
		"cdate":       s.CollectDate,
		"area":        s.Area,
		"timeslot":    s.TimeSlot,
		"jobstatus":   s.JobStatus,
		"wastetype":   s.WasteType,
		"description": s.Description,
		"createdAt":   s.CreatedAt,
		"updatedAt":   s.UpdatedAt,
	}
}

func scheduleViews(list []*entity.Schedule) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, s := range list {
		out = append(out, scheduleView(s))
	}
	return out
}

// GetAll GET /api/schedule/view
func (h *ScheduleHandler) GetAll(c *gin.Context) {
	schedules, err := h.Service.GetAll()
	if err != nil {
		h.Logger.WithError(err).Error("list schedules failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving schedules", nil)
		return
	}
	response.Success(c, http.StatusOK, scheduleViews(schedules), "schedules", nil)
}

// GetByUser GET /api/schedule/user/:userid
// Residents can read their own schedules only; staff can read anyone's.
func (h *ScheduleHandler) GetByUser(c *gin.Context) {
	userID := c.Param("userid")
	if userID != c.GetString(middleware.CtxUserIDKey) && !c.GetBool(middleware.CtxAdminKey) {
		response.Error[any](c, http.StatusForbidden, "cannot access another user's schedules", nil)
		return
	}

	schedules, err := h.Service.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, application.ErrNoSchedulesForUser) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("list user schedules failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving schedules", nil)
		return
	}
	response.Success(c, http.StatusOK, scheduleViews(schedules), "user schedules", nil)
}

// GetByID GET /api/schedule/doc/:id
func (h *ScheduleHandler) GetByID(c *gin.Context) {
	sch, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrNoScheduleForID) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("get schedule failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving schedule", nil)
		return
	}
	response.Success(c, http.StatusOK, scheduleView(sch), "schedule", nil)
}

// Create POST /api/schedule/create
func (h *ScheduleHandler) Create(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sch := req.toEntity(c.GetString(middleware.CtxUserIDKey))
	if err := h.Service.Create(sch); err != nil {
		h.Logger.WithError(err).Error("create schedule failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating schedule", nil)
		return
	}
	response.Success(c, http.StatusCreated, scheduleView(sch), "schedule created", nil)
}

// Update PUT /api/schedule/:id
func (h *ScheduleHandler) Update(c *gin.Context) {
	var req scheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	sch := req.toEntity(c.GetString(middleware.CtxUserIDKey))
	sch.ID = c.Param("id")
	if err := h.Service.Update(sch); err != nil {
		if errors.Is(err, application.ErrScheduleNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("update schedule failed")
		response.Error[any](c, http.StatusInternalServerError, "Error updating schedule", nil)
		return
	}
	response.Success(c, http.StatusOK, scheduleView(sch), "schedule updated", nil)
}

// Delete DELETE /api/schedule/:id
func (h *ScheduleHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrScheduleNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("delete schedule failed")
		response.Error[any](c, http.StatusInternalServerError, "Error deleting schedule", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Schedule deleted successfully.", nil)
}
