package core

// SettingsRepository is the only reader/writer of the persisted settings
// document on the server side.
type SettingsRepository interface {
	GetSettings() (*SiteSettings, error)
	// UpdateSettings merges the provided top-level keys over the stored
	// document and saves it (see SettingsPatch.Apply).
	UpdateSettings(patch *SettingsPatch) error
}

// ProductRepository defines data access for Products
type ProductRepository interface {
	List(page string, limit int) ([]*Product, error)
	GetByID(id string) (*Product, error)
	Create(p *Product) (*Product, error)
	Update(p *Product) error
	Delete(id string) error
}

// GalleryRepository defines data access for GalleryItems
type GalleryRepository interface {
	List() ([]*GalleryItem, error)
	Create(item *GalleryItem) (*GalleryItem, error)
	Delete(id string) error
}

// ContactRepository stores contact form submissions
type ContactRepository interface {
	Create(msg *ContactMessage) error
}
