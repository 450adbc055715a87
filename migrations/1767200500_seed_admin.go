package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
)

func init() {
	m.Register(func(app core.App) error {
		collection, err := app.FindCollectionByNameOrId("users")
		if err != nil {
			return err
		}

		// Demo admin for local development; change the password on deploy.
		existing, _ := app.FindAuthRecordByEmail("users", "admin@zcorner.local")
		if existing != nil {
			return nil
		}

		record := core.NewRecord(collection)
		record.SetEmail("admin@zcorner.local")
		record.SetPassword("changeme123")
		record.Set("first_name", "Site")
		record.Set("last_name", "Admin")
		record.Set("role", "admin")
		record.SetVerified(true)

		return app.Save(record)
	}, func(app core.App) error {
		return nil
	})
}
