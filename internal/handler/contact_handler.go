package handler

import (
	"encoding/json"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type ContactHandler struct {
	repo core.ContactRepository
}

func NewContactHandler(repo core.ContactRepository) *ContactHandler {
	return &ContactHandler{repo: repo}
}

// Submit handles POST /api/contact
func (h *ContactHandler) Submit(e *pbCore.RequestEvent) error {
	var req core.ContactMessage
	if err := json.NewDecoder(e.Request.Body).Decode(&req); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	if req.FirstName == "" || req.Email == "" || req.Message == "" {
		return e.JSON(400, map[string]string{"error": "Missing required fields"})
	}
	if req.Type == "" {
		req.Type = "general"
	}

	if err := h.repo.Create(&req); err != nil {
		return e.JSON(500, map[string]string{"error": "Failed to send message"})
	}
	return e.JSON(200, map[string]string{"status": "ok"})
}
