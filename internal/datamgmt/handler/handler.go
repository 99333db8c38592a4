package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/datamgmt"
)

type DataHandler struct {
	uc     datamgmt.UseCase
	logger *zap.Logger
}

func NewDataHandler(uc datamgmt.UseCase, logger *zap.Logger) *DataHandler {
	return &DataHandler{uc: uc, logger: logger}
}

func (h *DataHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/data/collections", h.collections)
	rg.POST("/data/:collection/purge", h.purge)
}

func (h *DataHandler) collections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"collections": h.uc.Collections()})
}

type purgeInput struct {
	// Explicit confirmation is required; the dashboard sends it after the
	// blocking dialog is accepted.
	Confirm bool `json:"confirm"`
}

func (h *DataHandler) purge(c *gin.Context) {
	var input purgeInput
	if err := c.ShouldBindJSON(&input); err != nil || !input.Confirm {
		c.JSON(http.StatusBadRequest, gin.H{"error": "confirmation required"})
		return
	}

	collection := c.Param("collection")
	deleted, err := h.uc.Purge(c.Request.Context(), collection, func(done, total int) {
		h.logger.Debug("purge progress",
			zap.String("collection", collection),
			zap.Int("deleted", done),
			zap.Int("total", total))
	})
	if err != nil {
		switch {
		case errors.Is(err, datamgmt.ErrUnknownCollection):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, datamgmt.ErrPurgeInProgress):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			h.logger.Error("purge failed", zap.String("collection", collection), zap.Error(err))
			// Partial progress is reported alongside the generic failure.
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "internal error",
				"deleted": deleted,
			})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"deleted": deleted})
}
