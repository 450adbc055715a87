package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("users"); err == nil {
			return nil
		}

		users := core.NewAuthCollection("users")
		users.Fields.Add(&core.TextField{Name: "first_name", Required: true})
		users.Fields.Add(&core.TextField{Name: "last_name"})
		users.Fields.Add(&core.SelectField{
			Name:     "role",
			Required: true,
			Values:   []string{"regular", "admin"},
		})

		return app.Save(users)
	}, nil)
}
