// Package app provides the dependency injection container for the
// storefront backend. All service initialization lives in one place.
package app

import (
	"github.com/Elshan-Aliyev/zcorner-front/internal/adapter/repository"
	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"
	"github.com/Elshan-Aliyev/zcorner-front/internal/handler"

	"github.com/pocketbase/pocketbase"
)

// Container holds all application dependencies.
type Container struct {
	PB *pocketbase.PocketBase

	// Repositories (Data Access Layer)
	SettingsRepo domain.SettingsRepository
	ProductRepo  domain.ProductRepository
	GalleryRepo  domain.GalleryRepository
	ContactRepo  domain.ContactRepository

	// Handlers
	SettingsHandler *handler.SettingsHandler
	ProductHandler  *handler.ProductHandler
	GalleryHandler  *handler.GalleryHandler
	ContactHandler  *handler.ContactHandler
	AuthHandler     *handler.AuthHandler
}

// NewContainer creates and wires all dependencies.
func NewContainer(pb *pocketbase.PocketBase) *Container {
	c := &Container{PB: pb}

	c.SettingsRepo = repository.NewSettingsRepo(pb)
	c.ProductRepo = repository.NewProductRepo(pb)
	c.GalleryRepo = repository.NewGalleryRepo(pb)
	c.ContactRepo = repository.NewContactRepo(pb)

	c.SettingsHandler = handler.NewSettingsHandler(c.SettingsRepo)
	c.ProductHandler = handler.NewProductHandler(c.ProductRepo)
	c.GalleryHandler = handler.NewGalleryHandler(c.GalleryRepo)
	c.ContactHandler = handler.NewContactHandler(c.ContactRepo)
	c.AuthHandler = handler.NewAuthHandler(pb)

	return c
}
