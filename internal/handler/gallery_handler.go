package handler

import (
	"encoding/json"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type GalleryHandler struct {
	repo core.GalleryRepository
}

func NewGalleryHandler(repo core.GalleryRepository) *GalleryHandler {
	return &GalleryHandler{repo: repo}
}

// List handles GET /api/gallery
func (h *GalleryHandler) List(e *pbCore.RequestEvent) error {
	items, err := h.repo.List()
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to load gallery"})
	}
	return e.JSON(200, items)
}

// Create handles POST /api/gallery (admin). The image arrives as a data
// URL or remote URL string; no file processing happens server-side.
func (h *GalleryHandler) Create(e *pbCore.RequestEvent) error {
	var req core.GalleryItem
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}
	if req.Image == "" {
		return e.JSON(400, map[string]string{"error": "Missing image"})
	}

	created, err := h.repo.Create(&req)
	if err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to save gallery item"})
	}
	return e.JSON(200, created)
}

// Delete handles DELETE /api/gallery/{id} (admin)
func (h *GalleryHandler) Delete(e *pbCore.RequestEvent) error {
	id := e.Request.PathValue("id")
	if err := h.repo.Delete(id); err != nil {
		return e.JSON(404, map[string]string{"error": "Gallery item not found"})
	}
	return e.JSON(200, map[string]string{"status": "ok"})
}
