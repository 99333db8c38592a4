package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/product"
	"github.com/mebelart/admin-service/internal/product/dto"
)

type CatalogHandler struct {
	uc     product.UseCase
	logger *zap.Logger
}

func NewCatalogHandler(uc product.UseCase, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{uc: uc, logger: logger}
}

func (h *CatalogHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/products", list(h, h.uc.ListProducts, "products"))
	rg.POST("/products", create(h, h.uc.CreateProduct))
	rg.GET("/products/:id", get(h, h.uc.GetProduct))
	rg.PUT("/products/:id", h.updateProduct)
	rg.DELETE("/products/:id", remove(h, h.uc.DeleteProduct))

	rg.GET("/tables", list(h, h.uc.ListTables, "tables"))
	rg.POST("/tables", create(h, h.uc.CreateTable))
	rg.GET("/tables/:id", get(h, h.uc.GetTable))
	rg.PUT("/tables/:id", h.updateTable)
	rg.DELETE("/tables/:id", remove(h, h.uc.DeleteTable))

	rg.GET("/shelves", list(h, h.uc.ListShelves, "shelves"))
	rg.POST("/shelves", create(h, h.uc.CreateShelf))
	rg.GET("/shelves/:id", get(h, h.uc.GetShelf))
	rg.PUT("/shelves/:id", h.updateShelf)
	rg.DELETE("/shelves/:id", remove(h, h.uc.DeleteShelf))

	rg.GET("/chests", list(h, h.uc.ListChests, "chests"))
	rg.POST("/chests", create(h, h.uc.CreateChest))
	rg.GET("/chests/:id", get(h, h.uc.GetChest))
	rg.PUT("/chests/:id", h.updateChest)
	rg.DELETE("/chests/:id", remove(h, h.uc.DeleteChest))

	rg.POST("/catalog/:kind/images", h.uploadImage)
}

func list[T any](h *CatalogHandler, fn func(context.Context) ([]T, error), key string) gin.HandlerFunc {
	return func(c *gin.Context) {
		items, err := fn(c.Request.Context())
		if err != nil {
			h.fail(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{key: items})
	}
}

func create[I any, T any](h *CatalogHandler, fn func(context.Context, *I) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input I
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		item, err := fn(c.Request.Context(), &input)
		if err != nil {
			h.respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, item)
	}
}

func get[T any](h *CatalogHandler, fn func(context.Context, string) (*T, error)) gin.HandlerFunc {
	return func(c *gin.Context) {
		item, err := fn(c.Request.Context(), c.Param("id"))
		if err != nil {
			h.fail(c, err)
			return
		}
		if item == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "item not found"})
			return
		}
		c.JSON(http.StatusOK, item)
	}
}

func remove(h *CatalogHandler, fn func(context.Context, string) error) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := fn(c.Request.Context(), c.Param("id")); err != nil {
			h.fail(c, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}

func (h *CatalogHandler) updateProduct(c *gin.Context) {
	var input dto.UpdateProductInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	item, err := h.uc.UpdateProduct(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) updateTable(c *gin.Context) {
	var input dto.UpdateTableInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	item, err := h.uc.UpdateTable(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) updateShelf(c *gin.Context) {
	var input dto.UpdateShelfInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	item, err := h.uc.UpdateShelf(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) updateChest(c *gin.Context) {
	var input dto.UpdateChestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.ID = c.Param("id")

	item, err := h.uc.UpdateChest(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *CatalogHandler) uploadImage(c *gin.Context) {
	kind, ok := product.ParseKind(c.Param("kind"))
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown catalog kind"})
		return
	}

	file, header, err := c.Request.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file"})
		return
	}
	defer file.Close()

	url, err := h.uc.UploadImage(c.Request.Context(), kind, header.Filename, file, header.Header.Get("Content-Type"))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *CatalogHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, product.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, product.ErrTooManyImages):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		h.fail(c, err)
	}
}

func (h *CatalogHandler) fail(c *gin.Context, err error) {
	h.logger.Error("catalog request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
