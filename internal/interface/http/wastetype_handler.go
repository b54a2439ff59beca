package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/internal/domain/entity"
	"github.com/wastewise/wastewise-api/pkg/response"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type WasteTypeHandler struct {
	Service *application.WasteTypeService
	Logger  *logrus.Logger
}

func NewWasteTypeHandler(svc *application.WasteTypeService, logger *logrus.Logger) *WasteTypeHandler {
	return &WasteTypeHandler{Service: svc, Logger: logger}
}

// GetAll GET /api/type/view (public)
func (h *WasteTypeHandler) GetAll(c *gin.Context) {
	types, err := h.Service.GetAll()
	if err != nil {
		h.Logger.WithError(err).Error("list waste types failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving waste types", nil)
		return
	}
	list := make([]gin.H, 0, len(types))
	for _, t := range types {
		list = append(list, gin.H{
			"id":              t.ID,
			"wastetype":       t.Name,
			"typedescription": t.Description,
		})
	}
	response.Success(c, http.StatusOK, list, "waste types", nil)
}

// Create POST /api/type/create (admin)
func (h *WasteTypeHandler) Create(c *gin.Context) {
	var req struct {
		Name        string `json:"wastetype" binding:"required,max=100"`
		Description string `json:"typedescription" binding:"required,max=500"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	t := &entity.WasteType{Name: req.Name, Description: req.Description}
	if err := h.Service.Create(t); err != nil {
		h.Logger.WithError(err).Error("create waste type failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating waste type", nil)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"id":              t.ID,
		"wastetype":       t.Name,
		"typedescription": t.Description,
	}, "waste type created", nil)
}
