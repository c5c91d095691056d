package handler

import (
	"net/http"
	"strconv"

	"inventra/internal/dto"
	"inventra/internal/service"

	"github.com/gin-gonic/gin"
)

// OrdersHandler serves /orders with the same action-dispatch shape as
// /products. The default GET (no action) lists all orders newest first.
type OrdersHandler struct {
	svc     service.OrderService
	actions map[string]gin.HandlerFunc
}

func NewOrdersHandler(svc service.OrderService) *OrdersHandler {
	h := &OrdersHandler{svc: svc}
	h.actions = map[string]gin.HandlerFunc{
		"getAll":   h.getAll,
		"getById":  h.getByID,
		"byStatus": h.byStatus,
		"stats":    h.stats,
	}
	return h
}

func (h *OrdersHandler) Get(c *gin.Context) {
	fn, ok := h.actions[c.DefaultQuery("action", "getAll")]
	if !ok {
		fn = h.getAll
	}
	fn(c)
}

func (h *OrdersHandler) getAll(c *gin.Context) {
	rows, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *OrdersHandler) getByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid id"})
		return
	}
	row, err := h.svc.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		getError(c, err)
		return
	}
	if row == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}
	c.JSON(http.StatusOK, row)
}

func (h *OrdersHandler) byStatus(c *gin.Context) {
	rows, err := h.svc.ByStatus(c.Request.Context(), c.Query("status"))
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *OrdersHandler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *OrdersHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, number, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     "Order created",
		"id":          id,
		"orderNumber": number,
	})
}

// Update handles both the full overwrite and, via ?action=updateStatus, the
// status-only transition.
func (h *OrdersHandler) Update(c *gin.Context) {
	if c.Query("action") == "updateStatus" {
		h.updateStatus(c)
		return
	}

	var req dto.UpdateOrderRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, ok := queryID(c, req.ID)
	if !ok {
		missingID(c)
		return
	}
	if err := h.svc.Update(c.Request.Context(), id, req); err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order updated"})
}

func (h *OrdersHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateOrderStatusRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, ok := queryID(c, req.ID)
	if !ok {
		missingID(c)
		return
	}
	if err := h.svc.UpdateStatus(c.Request.Context(), id, req.Status); err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order status updated"})
}

func (h *OrdersHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, nil)
	if !ok {
		missingID(c)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Order deleted"})
}
