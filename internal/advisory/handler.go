package advisory

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crop-compass/advisory-portal/advisory-portal-backend/internal/export"
)

// Handler handles HTTP requests for advisory operations
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new advisory handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers advisory routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	adv := router.Group("/advisory")
	{
		adv.POST("/recommend", h.recommend)
		adv.POST("/fertilizer", h.fertilizerPlan)
		adv.POST("/fertilizer/export", h.exportFertilizerPlan)
		adv.GET("/crops", h.listCrops)
	}
}

// recommend handles POST /api/v1/advisory/recommend
func (h *Handler) recommend(c *gin.Context) {
	var profile SoilProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.service.Recommend(c.Request.Context(), profile)
	if err != nil {
		h.logger.Error("Failed to generate recommendation", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// fertilizerPlan handles POST /api/v1/advisory/fertilizer
func (h *Handler) fertilizerPlan(c *gin.Context) {
	var nutrients NutrientLevels
	if err := c.ShouldBindJSON(&nutrients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := h.service.FertilizerPlan(nutrients)

	c.JSON(http.StatusOK, gin.H{
		"recommendations": plan,
		"count":           len(plan),
	})
}

// exportFertilizerPlan handles POST /api/v1/advisory/fertilizer/export?format=csv|xlsx
func (h *Handler) exportFertilizerPlan(c *gin.Context) {
	var nutrients NutrientLevels
	if err := c.ShouldBindJSON(&nutrients); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan := h.service.FertilizerPlan(nutrients)
	report := fertilizerPlanReport(plan)
	filename := fmt.Sprintf("fertilizer-plan-%s", time.Now().Format("2006-01-02"))

	switch c.DefaultQuery("format", "csv") {
	case "xlsx":
		exporter := export.NewExcelExporter(export.DefaultExcelOptions())
		if err := exporter.Export(report); err != nil {
			h.logger.Error("Failed to build Excel export", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.xlsx", filename))
		c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		if err := exporter.WriteTo(c.Writer); err != nil {
			h.logger.Error("Failed to write Excel export", zap.Error(err))
		}
	case "csv":
		c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.csv", filename))
		c.Header("Content-Type", "text/csv")
		exporter := export.NewCSVExporter(c.Writer, export.DefaultCSVOptions())
		if err := exporter.Export(report); err != nil {
			h.logger.Error("Failed to write CSV export", zap.Error(err))
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unsupported format, use csv or xlsx"})
	}
}

// fertilizerPlanReport flattens a fertilizer plan into exportable rows,
// preserving the plan's priority order
func fertilizerPlanReport(plan []FertilizerAdvice) *export.Report {
	report := &export.Report{
		Columns: []string{"Amendment", "Amount", "Unit", "Priority", "Application Method", "Timing", "Benefits"},
	}

	for _, advice := range plan {
		report.Rows = append(report.Rows, []interface{}{
			string(advice.Type),
			advice.Amount,
			advice.Unit,
			string(advice.Priority),
			advice.ApplicationMethod,
			advice.Timing,
			strings.Join(advice.Benefits, "; "),
		})
	}

	return report
}

// listCrops handles GET /api/v1/advisory/crops
func (h *Handler) listCrops(c *gin.Context) {
	labels, err := h.service.ListCropLabels(c.Request.Context())
	if err != nil {
		h.logger.Error("Failed to list crops", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"crops": labels})
}
