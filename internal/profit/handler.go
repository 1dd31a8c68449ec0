package profit

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"crop-compass/advisory-portal/advisory-portal-backend/internal/export"
)

// Handler handles HTTP requests for profit analysis
type Handler struct {
	logger *zap.Logger
}

// NewHandler creates a new profit handler
func NewHandler(logger *zap.Logger) *Handler {
	return &Handler{logger: logger}
}

// RegisterRoutes registers profit routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	p := router.Group("/profit")
	{
		p.POST("/analyze", h.analyze)
		p.POST("/analyze/export", h.exportAnalysis)
	}
}

// analyze handles POST /api/v1/profit/analyze
func (h *Handler) analyze(c *gin.Context) {
	var inputs Inputs
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	analysis := Analyze(inputs)

	h.logger.Info("Profit analysis computed",
		zap.String("crop", inputs.CropType),
		zap.Float64("gross_profit", analysis.GrossProfit),
		zap.String("risk", string(analysis.RiskAssessment)))

	c.JSON(http.StatusOK, analysis)
}

// analysisReport flattens a profit analysis into metric/value rows
func analysisReport(analysis Analysis) *export.Report {
	return &export.Report{
		Columns: []string{"Metric", "Value"},
		Rows: [][]interface{}{
			{"Total Revenue", analysis.TotalRevenue},
			{"Total Costs", analysis.TotalCosts},
			{"Gross Profit", analysis.GrossProfit},
			{"Profit Margin (%)", analysis.ProfitMargin},
			{"ROI (%)", analysis.ROI},
			{"Break-even Yield (quintals/acre)", analysis.BreakEvenYield},
			{"Profit per Acre", analysis.ProfitPerAcre},
			{"Risk Assessment", string(analysis.RiskAssessment)},
		},
	}
}

// exportAnalysis handles POST /api/v1/profit/analyze/export?format=csv|xlsx
func (h *Handler) exportAnalysis(c *gin.Context) {
	var inputs Inputs
	if err := c.ShouldBindJSON(&inputs); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	report := analysisReport(Analyze(inputs))
	filename := fmt.Sprintf("profit-analysis-%s", time.Now().Format("2006-01-02"))

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
