package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mebelart/admin-service/internal/order"
	"github.com/mebelart/admin-service/internal/order/dto"
)

type OrderHandler struct {
	uc     order.UseCase
	logger *zap.Logger
}

func NewOrderHandler(uc order.UseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

func (h *OrderHandler) Register(rg *gin.RouterGroup) {
	rg.GET("/orders", h.listOrders)
	rg.POST("/orders", h.createOrder)
	rg.GET("/orders/:id", h.getOrder)
	rg.PATCH("/orders/:id/status", h.updateOrderStatus)
	rg.DELETE("/orders/:id", h.deleteOrder)
	rg.POST("/orders/reconcile", h.reconcile)

	rg.GET("/contact-requests", h.listRequests)
	rg.POST("/contact-requests", h.createRequest)
	rg.PATCH("/contact-requests/:id/status", h.updateRequestStatus)
	rg.DELETE("/contact-requests/:id", h.deleteRequest)
	rg.POST("/contact-requests/:id/convert", h.convert)
}

type statusInput struct {
	Status string `json:"status" binding:"required"`
}

func (h *OrderHandler) listOrders(c *gin.Context) {
	orders, err := h.uc.ListOrders(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func (h *OrderHandler) createOrder(c *gin.Context) {
	var input dto.CreateOrderInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	o, err := h.uc.CreateOrder(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) getOrder(c *gin.Context) {
	o, err := h.uc.GetOrder(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.fail(c, err)
		return
	}
	if o == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}
	c.JSON(http.StatusOK, o)
}

func (h *OrderHandler) updateOrderStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.UpdateOrderStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) deleteOrder(c *gin.Context) {
	if err := h.uc.DeleteOrder(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) reconcile(c *gin.Context) {
	result, err := h.uc.ReconcileConversions(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *OrderHandler) listRequests(c *gin.Context) {
	requests, err := h.uc.ListRequests(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": requests})
}

func (h *OrderHandler) createRequest(c *gin.Context) {
	var input dto.CreateRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	req, err := h.uc.CreateRequest(c.Request.Context(), &input)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, req)
}

func (h *OrderHandler) updateRequestStatus(c *gin.Context) {
	var input statusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.uc.UpdateRequestStatus(c.Request.Context(), c.Param("id"), input.Status); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) deleteRequest(c *gin.Context) {
	if err := h.uc.DeleteRequest(c.Request.Context(), c.Param("id")); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *OrderHandler) convert(c *gin.Context) {
	var input dto.ConvertRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	input.RequestID = c.Param("id")

	o, err := h.uc.ConvertRequest(c.Request.Context(), &input)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, o)
}

func (h *OrderHandler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, order.ErrNoItems),
		errors.Is(err, order.ErrInvalidStatus),
		errors.Is(err, order.ErrUnknownProduct):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrOrderNotFound), errors.Is(err, order.ErrRequestNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, order.ErrAlreadyConverted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		h.fail(c, err)
	}
}

func (h *OrderHandler) fail(c *gin.Context, err error) {
	h.logger.Error("order request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
