package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("contacts"); err == nil {
			return nil
		}

		contacts := core.NewBaseCollection("contacts")

		contacts.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})

		// No public rules: submissions come in through the API handler,
		// reading is for admins only.

		contacts.Fields.Add(&core.TextField{Name: "first_name", Required: true})
		contacts.Fields.Add(&core.TextField{Name: "last_name"})
		contacts.Fields.Add(&core.EmailField{Name: "email", Required: true})
		contacts.Fields.Add(&core.TextField{Name: "phone"})
		contacts.Fields.Add(&core.TextField{Name: "message", Required: true})
		contacts.Fields.Add(&core.SelectField{
			Name:   "type",
			Values: []string{"general", "business", "feedback"},
		})

		return app.Save(contacts)
	}, nil)
}
