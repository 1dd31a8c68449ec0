package market

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for market data
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new market handler
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers market routes
func (h *Handler) RegisterRoutes(router *gin.RouterGroup) {
	m := router.Group("/market")
	{
		m.GET("/prices", h.recentPrices)
		m.GET("/profitability", h.profitability)
		m.POST("/prices", h.recordPrice)
	}
}

// recentPrices handles GET /api/v1/market/prices?limit=N
func (h *Handler) recentPrices(c *gin.Context) {
	limit := DefaultFeedWindow
	if raw := c.Query("limit"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			limit = parsed
		}
	}

	records, err := h.service.RecentPrices(c.Request.Context(), limit)
	if err != nil {
		h.logger.Error("Failed to load market prices", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"prices": records,
		"count":  len(records),
	})
}

// profitability handles GET /api/v1/market/profitability
func (h *Handler) profitability(c *gin.Context) {
	ranking := h.service.Profitability(c.Request.Context())

	c.JSON(http.StatusOK, gin.H{
		"ranking":      ranking,
		"generated_at": time.Now(),
	})
}

// recordPrice handles POST /api/v1/market/prices
func (h *Handler) recordPrice(c *gin.Context) {
	var record PriceRecord
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if record.ObservedAt.IsZero() {
		record.ObservedAt = time.Now()
	}

	if err := h.service.RecordPrice(c.Request.Context(), &record); err != nil {
		h.logger.Error("Failed to record market price", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, record)
}
