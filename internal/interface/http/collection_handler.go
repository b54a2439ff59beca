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
	"github.com/wastewise/wastewise-api/pkg/response"
	"github.com/wastewise/wastewise-api/pkg/validation"
)

type CollectionHandler struct {
	Service *application.CollectionService
	Logger  *logrus.Logger
}

func NewCollectionHandler(svc *application.CollectionService, logger *logrus.Logger) *CollectionHandler {
	return &CollectionHandler{Service: svc, Logger: logger}
}

type collectionRequest struct {
	ResidenceID     string  `json:"residenceId" binding:"required"`
	CollectionDate  string  `json:"collectionDate" binding:"required"`
	WasteType       string  `json:"wasteType" binding:"required"`
	AmountCollected float64 `json:"amountCollected" binding:"required,gt=0"`
	CollectorName   string  `json:"collectorName" binding:"required"`
}

func (r *collectionRequest) toEntity() (*entity.CollectionRecord, error) {
	date, err := time.Parse("2006-01-02", r.CollectionDate)
	if err != nil {
		return nil, err
	}
	return &entity.CollectionRecord{
		ResidenceID:     r.ResidenceID,
		CollectionDate:  date,
		WasteType:       r.WasteType,
		AmountCollected: r.AmountCollected,
		CollectorName:   r.CollectorName,
	}, nil
}

// collectionView exposes the safe field projection only.
func collectionView(r *entity.CollectionRecord) gin.H {
	return gin.H{
		"id":              r.ID,
		"residenceId":     r.ResidenceID,
		"collectionDate":  r.CollectionDate.Format("2006-01-02"),
		"wasteType":       r.WasteType,
		"amountCollected": r.AmountCollected,
		"collectorName":   r.CollectorName,
	}
}

func collectionViews(list []*entity.CollectionRecord) []gin.H {
	out := make([]gin.H, 0, len(list))
	for _, r := range list {
		out = append(out, collectionView(r))
	}
	return out
}

// GetAll GET /api/wastecollection?skip=&limit=
func (h *CollectionHandler) GetAll(c *gin.Context) {
	skip, _ := strconv.Atoi(c.DefaultQuery("skip", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	records, err := h.Service.GetAll(skip, limit)
	if err != nil {
		h.Logger.WithError(err).Error("list collection records failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving waste collection data", nil)
		return
	}
	response.Success(c, http.StatusOK, collectionViews(records), "waste collection records",
		gin.H{"skip": skip, "limit": limit, "count": len(records)})
}

// GetByResidence GET /api/wastecollection/residence/:residenceId
func (h *CollectionHandler) GetByResidence(c *gin.Context) {
	records, err := h.Service.GetByResidenceID(c.Param("residenceId"))
	if err != nil {
		if errors.Is(err, application.ErrNoCollectionForResidence) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("list residence records failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving waste collection data", nil)
		return
	}
	response.Success(c, http.StatusOK, collectionViews(records), "residence records", nil)
}

// GetByID GET /api/wastecollection/:id
func (h *CollectionHandler) GetByID(c *gin.Context) {
	rec, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		if errors.Is(err, application.ErrCollectionNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("get collection record failed")
		response.Error[any](c, http.StatusInternalServerError, "Error retrieving waste collection data", nil)
		return
	}
	response.Success(c, http.StatusOK, collectionView(rec), "waste collection record", nil)
}

// Create POST /api/wastecollection/create (admin)
func (h *CollectionHandler) Create(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := req.toEntity()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid collectionDate: expected YYYY-MM-DD", nil)
		return
	}

	if err := h.Service.Create(rec); err != nil {
		h.Logger.WithError(err).Error("create collection record failed")
		response.Error[any](c, http.StatusInternalServerError, "Error creating waste collection record", nil)
		return
	}
	response.Success(c, http.StatusCreated, collectionView(rec), "waste collection record created", nil)
}

// Update PUT /api/wastecollection/:id (admin)
func (h *CollectionHandler) Update(c *gin.Context) {
	var req collectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}
	rec, err := req.toEntity()
	if err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid collectionDate: expected YYYY-MM-DD", nil)
		return
	}
	rec.ID = c.Param("id")

	if err := h.Service.Update(rec); err != nil {
		if errors.Is(err, application.ErrCollectionNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("update collection record failed")
		response.Error[any](c, http.StatusInternalServerError, "Error updating waste collection record", nil)
		return
	}
	response.Success(c, http.StatusOK, collectionView(rec), "waste collection record updated", nil)
}

// Delete DELETE /api/wastecollection/:id (admin)
func (h *CollectionHandler) Delete(c *gin.Context) {
	if err := h.Service.Delete(c.Param("id")); err != nil {
		if errors.Is(err, application.ErrCollectionNotFound) {
			response.Error[any](c, http.StatusNotFound, err.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("delete collection record failed")
		response.Error[any](c, http.StatusInternalServerError, "Error deleting waste collection record", nil)
		return
	}
	response.Success[any](c, http.StatusOK, nil, "Waste collection record deleted successfully.", nil)
}
