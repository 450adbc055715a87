package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("gallery"); err == nil {
			return nil
		}

		gallery := core.NewBaseCollection("gallery")

		gallery.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})

		gallery.ListRule = types.Pointer("")
		gallery.ViewRule = types.Pointer("")

		gallery.Fields.Add(&core.TextField{Name: "title"})
		// Remote URL or data URL; data URLs for pasted images can be large.
		gallery.Fields.Add(&core.TextField{Name: "image", Required: true, Max: 10485760})
		gallery.Fields.Add(&core.TextField{Name: "caption"})
		gallery.Fields.Add(&core.NumberField{Name: "position"})

		return app.Save(gallery)
	}, nil)
}
