package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/gallery"
	"github.com/mebelart/admin-service/internal/gallery/dto"
)

type GalleryHandler struct {
	uc     gallery.UseCase
	logger *zap.Logger
}

func NewGalleryHandler(uc gallery.UseCase, logger *zap.Logger) *GalleryHandler {
	return &GalleryHandler{uc: uc, logger: logger}
}

func (h *GalleryHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/gallery", h.list)
	rg.POST("/gallery", h.create)
	rg.GET("/gallery/:id", h.get)
	rg.PUT("/gallery/:id", h.update)
	rg.DELETE("/gallery/:id", h.delete)
	rg.POST("/gallery/images", h.uploadImage)
}

func (h *GalleryHandler) list(c *gin.Context) {
	items, err := h.uc.ListItems(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

func (h *GalleryHandler) create(c *gin.Context) {
	var input dto.CreateGalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	item, err := h.uc.CreateItem(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *GalleryHandler) get(c *gin.Context) {
	item, err := h.uc.GetItem(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if item == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "gallery item not found"})
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) update(c *gin.Context) {
	var input dto.UpdateGalleryItemInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	item, err := h.uc.UpdateItem(c.Request.Context(), &input)
	if err != nil {
		if errors.Is(err, gallery.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *GalleryHandler) delete(c *gin.Context) {
	if err := h.uc.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *GalleryHandler) uploadImage(c *gin.Context) {
	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request.Context(), header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *GalleryHandler) fail(c *gin.Context, err error) {
	h.logger.Error("gallery request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
