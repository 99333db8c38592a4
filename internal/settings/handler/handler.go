package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/model"
	"github.com/mebelart/admin-service/internal/settings"
)

type SettingsHandler struct {
	uc     settings.UseCase
	logger *zap.Logger
}

func NewSettingsHandler(uc settings.UseCase, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{uc: uc, logger: logger}
}

func (h *SettingsHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/settings", h.get)
	rg.PUT("/settings", h.update)
}

func (h *SettingsHandler) get(c *gin.Context) {
	s, err := h.uc.GetSettings(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, s)
}

func (h *SettingsHandler) update(c *gin.Context) {
	var s model.Settings
	if err := c.ShouldBindJSON(&s); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.uc.UpdateSettings(c.Request.Context(), &s)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (h *SettingsHandler) fail(c *gin.Context, err error) {
	h.logger.Error("settings request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
