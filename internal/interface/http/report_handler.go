package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/wastewise/wastewise-api/internal/application"
	"github.com/wastewise/wastewise-api/pkg/response"
)

// ReportHandler serves staff reporting views built on the payment, schedule
// and collection services.
type ReportHandler struct {
	Payments    *application.PaymentService
	Schedules   *application.ScheduleService
	Collections *application.CollectionService
	Logger      *logrus.Logger
}

func NewReportHandler(p *application.PaymentService, s *application.ScheduleService, col *application.CollectionService, logger *logrus.Logger) *ReportHandler {
	return &ReportHandler{Payments: p, Schedules: s, Collections: col, Logger: logger}
}

// PaymentsByMonth GET /api/reports/payments?month=YYYY-MM (admin)
func (h *ReportHandler) PaymentsByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter month is required (YYYY-MM)", nil)
		return
	}

	payments, err := h.Payments.GetByMonth(month)
	if err != nil {
		if _, _, perr := application.MonthRange(month); perr != nil {
			response.Error[any](c, http.StatusBadRequest, perr.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("payments report failed")
		response.Error[any](c, http.StatusInternalServerError, "Error generating payments report", nil)
		return
	}

	total := 0.0
	for _, p := range payments {
		total += p.TotalBill
	}
	response.Success(c, http.StatusOK, paymentViews(payments), "payments report",
		gin.H{"month": month, "count": len(payments), "totalBilled": total})
}

// SchedulesByArea GET /api/reports/schedules?area= (admin)
func (h *ReportHandler) SchedulesByArea(c *gin.Context) {
	area := c.Query("area")
	if area == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter area is required", nil)
		return
	}

	schedules, err := h.Schedules.GetByArea(area)
	if err != nil {
		h.Logger.WithError(err).Error("schedules report failed")
		response.Error[any](c, http.StatusInternalServerError, "Error generating schedules report", nil)
		return
	}

	completed := 0
	for _, s := range schedules {
		if s.JobStatus {
			completed++
		}
	}
	response.Success(c, http.StatusOK, scheduleViews(schedules), "schedules report",
		gin.H{"area": area, "count": len(schedules), "completed": completed})
}

// WasteCollectedByMonth GET /api/reports/waste-collected?month=YYYY-MM (admin)
func (h *ReportHandler) WasteCollectedByMonth(c *gin.Context) {
	month := c.Query("month")
	if month == "" {
		response.Error[any](c, http.StatusBadRequest, "query parameter month is required (YYYY-MM)", nil)
		return
	}

	records, err := h.Collections.GetByMonth(month)
	if err != nil {
		if _, _, perr := application.MonthRange(month); perr != nil {
			response.Error[any](c, http.StatusBadRequest, perr.Error(), nil)
			return
		}
		h.Logger.WithError(err).Error("waste collected report failed")
		response.Error[any](c, http.StatusInternalServerError, "Error generating waste collection report", nil)
		return
	}

	// total kilograms, broken down by waste type
	byType := map[string]float64{}
	total := 0.0
	for _, r := range records {
		byType[r.WasteType] += r.AmountCollected
		total += r.AmountCollected
	}
	response.Success(c, http.StatusOK, collectionViews(records), "waste collected report",
		gin.H{"month": month, "count": len(records), "totalCollected": total, "byType": byType})
}
