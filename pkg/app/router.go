package app

import (
	"os"

	internalApp "github.com/Elshan-Aliyev/zcorner-front/internal/app"
	"github.com/Elshan-Aliyev/zcorner-front/pkg/middleware"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/apis"
	"github.com/pocketbase/pocketbase/core"
)

// RegisterRoutes configures all application routes.
func RegisterRoutes(pb *pocketbase.PocketBase, c *internalApp.Container) {
	pb.OnServe().BindFunc(func(se *core.ServeEvent) error {

		// ---------------------------------------------------------
		// 1. STATIC FILES (built SPA bundle, if deployed alongside)
		// ---------------------------------------------------------
		if _, err := os.Stat("./public"); err == nil {
			se.Router.GET("/{path...}", apis.Static(os.DirFS("./public"), true))
		}

		// ---------------------------------------------------------
		// 2. PUBLIC API
		// ---------------------------------------------------------
		se.Router.GET("/api/settings", c.SettingsHandler.Get)
		se.Router.GET("/api/products", c.ProductHandler.List)
		se.Router.GET("/api/gallery", c.GalleryHandler.List)
		se.Router.POST("/api/contact", c.ContactHandler.Submit)

		// ---------------------------------------------------------
		// 3. AUTH
		// ---------------------------------------------------------
		se.Router.POST("/api/auth/login", c.AuthHandler.Login)
		se.Router.POST("/api/auth/register", c.AuthHandler.Register)

		// ---------------------------------------------------------
		// 4. ADMIN API (Bearer token protected)
		// ---------------------------------------------------------
		adminAPI := se.Router.Group("")
		adminAPI.BindFunc(middleware.RequireAdminAPI(pb))

		adminAPI.PUT("/api/settings", c.SettingsHandler.Update)
		adminAPI.POST("/api/products", c.ProductHandler.Create)
		adminAPI.PUT("/api/products/{id}", c.ProductHandler.Update)
		adminAPI.DELETE("/api/products/{id}", c.ProductHandler.Delete)
		adminAPI.POST("/api/gallery", c.GalleryHandler.Create)
		adminAPI.DELETE("/api/gallery/{id}", c.GalleryHandler.Delete)

		return se.Next()
	})
}
