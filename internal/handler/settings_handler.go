package handler

import (
	"encoding/json"
	"log"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"

	pbCore "github.com/pocketbase/pocketbase/core"
)

type SettingsHandler struct {
	repo core.SettingsRepository
}

func NewSettingsHandler(repo core.SettingsRepository) *SettingsHandler {
	return &SettingsHandler{repo: repo}
}

// Get handles GET /api/settings. Public; always answers a full document
// (the repo substitutes hardcoded defaults on read failure).
func (h *SettingsHandler) Get(e *pbCore.RequestEvent) error {
	settings, err := h.repo.GetSettings()
	if err != nil {
		// Repo normally degrades to defaults itself; this is a last resort.
		log.Printf("settings read failed twice: %v", err)
		return e.JSON(500, map[string]string{"error": "Failed to load settings"})
	}
	return e.JSON(200, settings)
}

// Update handles PUT /api/settings (admin only, enforced by middleware).
//
// The body is a partial document; only the top-level keys present are
// merged over the stored record. A sectionStyles key replaces the whole
// map, so editors must send the entire updated map, not a delta.
func (h *SettingsHandler) Update(e *pbCore.RequestEvent) error {
	var patch core.SettingsPatch
	if err := json.NewDecoder(e.Request.Body).Decode(&patch); err != nil {
		return e.JSON(400, map[string]string{"error": "Invalid request body"})
	}

	if err := h.repo.UpdateSettings(&patch); err != nil {
		log.Printf("❌ Settings update failed: %v", err)
		return e.JSON(500, map[string]string{"error": "Failed to update settings"})
	}

	return e.JSON(200, map[string]string{"status": "ok"})
}
