package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/dashboard"
)

type DashboardHandler struct {
	uc     dashboard.UseCase
	logger *zap.Logger
}

func NewDashboardHandler(uc dashboard.UseCase, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{uc: uc, logger: logger}
}

func (h *DashboardHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/dashboard/stats", h.stats)
}

func (h *DashboardHandler) stats(c *gin.Context) {
	stats, err := h.uc.Stats(c.Request.Context())
	if err != nil {
		h.logger.Error("stats aggregation failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
		return
	}
	c.JSON(http.StatusOK, stats)
}
