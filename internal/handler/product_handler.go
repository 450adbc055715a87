package handler

import (
	"encoding/json"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
	"github.com/spf13/cast"
)

type ProductHandler struct {
	repo core.ProductRepository
}

func NewProductHandler(repo core.ProductRepository) *ProductHandler {
	return &ProductHandler{repo: repo}
}

// List handles GET /api/products?page=wishlist|marketplace&limit=N
func (h *ProductHandler) List(e *pbCore.RequestEvent) error {
	q := e.Request.URL.Query()
	page := q.Get("page")
	limit := cast.ToInt(q.Get("limit")) // 0 = no limit

	products, err := h.repo.List(page, limit)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to load products"})
	}
	return e.JSON(200, products)
}

// Create handles POST /api/products (admin)
func (h *ProductHandler) Create(e *pbCore.RequestEvent) error {
	var req core.Product
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	if req.Title == "" || req.Page == "" {
		return e.JSON(400, map[string]string{"error": "Missing title or page"})
	}
	if req.Page != "wishlist" && req.Page != "marketplace" {
		return e.JSON(400, map[string]string{"error": "page must be wishlist or marketplace"})
	}

	created, err := h.repo.Create(&req)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to create product"})
	}
	return e.JSON(200, created)
}

// Update handles PUT /api/products/{id} (admin)
func (h *ProductHandler) Update(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")

	var req core.Product
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	req.Id = id

	if err := h.repo.Update(&req); err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to update product"})
	}
	return e.JSON(200, map[string]string{"status": "ok"})
}

// Delete handles DELETE /api/products/{id} (admin)
func (h *ProductHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if err := h.repo.Delete(id); err != nil {
		return e.JSON(404, map[string]string{"error": "Product not found"})
	}
	return e.JSON(200, map[string]string{"status": "ok"})
}
