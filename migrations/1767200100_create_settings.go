package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		// ----------------------------------------------------
		// SETTINGS COLLECTION (singleton)
		// ----------------------------------------------------
		settings := core.NewBaseCollection("settings")

		settings.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		settings.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		// Public read (the storefront needs the tokens without auth);
		// writes go through the admin API only.
		settings.ListRule = types.Pointer("")
		settings.ViewRule = types.Pointer("")
		settings.CreateRule = nil // Only created via migration
		settings.DeleteRule = nil // Never deleted

		// --- global theme tokens ---
		settings.Fields.Add(&core.TextField{Name: "primary_color", Required: true})
		settings.Fields.Add(&core.TextField{Name: "secondary_color", Required: true})
		settings.Fields.Add(&core.TextField{Name: "font_family"})
		settings.Fields.Add(&core.TextField{Name: "button_border_radius"})
		settings.Fields.Add(&core.TextField{Name: "button_padding"})

		// --- hero ---
		// Plain text: holds a remote URL or an inlined data URL.
		settings.Fields.Add(&core.TextField{Name: "hero_image", Max: 10485760})

		// --- per-section overrides ---
		// Opaque string keys -> partial style records.
		settings.Fields.Add(&core.JSONField{Name: "section_styles"})

		if err := app.Save(settings); err != nil {
			return err
		}

		// ----------------------------------------------------
		// SEED DEFAULT RECORD
		// ----------------------------------------------------
		record := core.NewRecord(settings)
		record.Set("primary_color", "#007bff")
		record.Set("secondary_color", "#6c757d")
		record.Set("font_family", "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif")
		record.Set("button_border_radius", "4px")
		record.Set("button_padding", "0.5rem 1rem")
		record.Set("section_styles", map[string]any{})

		return app.Save(record)
	}, nil)
}
