package handler

import (
	"net/http"
	"strconv"

	"inventra/internal/dto"
	"inventra/internal/service"

	"github.com/gin-gonic/gin"
)

type SuppliersHandler struct{ svc service.SupplierService }

func NewSuppliersHandler(svc service.SupplierService) *SuppliersHandler {
	return &SuppliersHandler{svc: svc}
}

// Get lists all suppliers (name ascending), or a single one when ?id= is
// present.
func (h *SuppliersHandler) Get(c *gin.Context) {
	if raw := c.Query("id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
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
		return
	}

	rows, err := h.svc.List(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *SuppliersHandler) Create(c *gin.Context) {
	var req dto.CreateSupplierRequest
	if !bindAndValidate(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supplier added", "id": id})
}

func (h *SuppliersHandler) Update(c *gin.Context) {
	var req dto.UpdateSupplierRequest
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
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supplier updated"})
}

func (h *SuppliersHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, nil)
	if !ok {
		missingID(c)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Supplier deleted"})
}
