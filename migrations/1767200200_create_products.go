package migrations

import (
	"github.com/pocketbase/pocketbase/core"
	m "github.com/pocketbase/pocketbase/migrations"
	"github.com/pocketbase/pocketbase/tools/types"
)

func init() {
	m.Register(func(app core.App) error {
		if _, err := app.FindCollectionByNameOrId("products"); err == nil {
			return nil
		}

		products := core.NewBaseCollection("products")

		products.Fields.Add(&core.AutodateField{Name: "created", OnCreate: true})
		products.Fields.Add(&core.AutodateField{Name: "updated", OnCreate: true, OnUpdate: true})

		products.ListRule = types.Pointer("")
		products.ViewRule = types.Pointer("")

		products.Fields.Add(&core.TextField{
			Name:     "title",
			Required: true,
		})

		minZero := float64(0)
		products.Fields.Add(&core.NumberField{
			Name: "price",
			Min:  &minZero,
		})

		products.Fields.Add(&core.TextField{
			Name: "description",
		})

		// Image URLs / data URLs, no upload pipeline
		products.Fields.Add(&core.JSONField{
			Name: "images",
		})

		// Which storefront page lists the product
		products.Fields.Add(&core.SelectField{
			Name:     "page",
			Required: true,
			Values:   []string{"wishlist", "marketplace"},
		})

		// Per-item button toggles and targets
		products.Fields.Add(&core.BoolField{Name: "buy_enabled"})
		products.Fields.Add(&core.BoolField{Name: "detail_enabled"})
		products.Fields.Add(&core.TextField{Name: "buy_link"})
		products.Fields.Add(&core.TextField{Name: "detail_link"})

		// Manual ordering within a page
		products.Fields.Add(&core.NumberField{Name: "position"})

		return app.Save(products)
	}, nil)
}
