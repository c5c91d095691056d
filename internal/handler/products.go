package handler

import (
	"net/http"
	"strconv"

	"inventra/internal/dto"
	"inventra/internal/service"

	"github.com/gin-gonic/gin"
)

// ProductsHandler serves /products. Reads are multiplexed through the
// ?action= dispatch table; an unknown or missing action falls back to getAll.
type ProductsHandler struct {
	svc     service.ProductService
	actions map[string]gin.HandlerFunc
}

func NewProductsHandler(svc service.ProductService) *ProductsHandler {
	h := &ProductsHandler{svc: svc}
	h.actions = map[string]gin.HandlerFunc{
		"getAll":     h.getAll,
		"getById":    h.getByID,
		"search":     h.search,
		"stats":      h.stats,
		"lowStock":   h.lowStock,
		"byCategory": h.byCategory,
		"bySupplier": h.bySupplier,
	}
	return h
}

func (h *ProductsHandler) Get(c *gin.Context) {
	fn, ok := h.actions[c.DefaultQuery("action", "getAll")]
	if !ok {
		fn = h.getAll
	}
	fn(c)
}

func (h *ProductsHandler) getAll(c *gin.Context) {
	rows, err := h.svc.GetAll(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

// getByID answers with an empty object, not a 404, when nothing matches.
func (h *ProductsHandler) getByID(c *gin.Context) {
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

func (h *ProductsHandler) search(c *gin.Context) {
	rows, err := h.svc.Search(c.Request.Context(), c.Query("keyword"))
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductsHandler) stats(c *gin.Context) {
	stats, err := h.svc.Stats(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ProductsHandler) lowStock(c *gin.Context) {
	rows, err := h.svc.LowStock(c.Request.Context())
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductsHandler) byCategory(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("categoryId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid categoryId"})
		return
	}
	rows, err := h.svc.ByCategory(c.Request.Context(), uint(id))
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductsHandler) bySupplier(c *gin.Context) {
	id, err := strconv.ParseUint(c.Query("supplierId"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing or invalid supplierId"})
		return
	}
	rows, err := h.svc.BySupplier(c.Request.Context(), uint(id))
	if err != nil {
		getError(c, err)
		return
	}
	c.JSON(http.StatusOK, rows)
}

func (h *ProductsHandler) Create(c *gin.Context) {
	var req dto.CreateProductRequest
	if !bindJSON(c, &req) {
		return
	}
	id, err := h.svc.Create(c.Request.Context(), req)
	if err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product added", "id": id})
}

// Update reads the id from the query string, falling back to the body, and
// overwrites every field. A missing row is still reported as success.
func (h *ProductsHandler) Update(c *gin.Context) {
	var req dto.UpdateProductRequest
	if !bindJSON(c, &req) {
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
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product updated"})
}

// Delete is unconditional: removing an absent id is still a success.
func (h *ProductsHandler) Delete(c *gin.Context) {
	id, ok := queryID(c, nil)
	if !ok {
		missingID(c)
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		mutationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Product deleted"})
}
