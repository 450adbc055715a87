package core

// Product is a wishlist or marketplace item. Images are stored as plain
// strings (remote URLs or data URLs pasted by the admin); there is no
// upload pipeline.
type Product struct {
	Id          string   `json:"id"`
	Title       string   `json:"title"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Images      []string `json:"images"`

	// Page controls which storefront page lists the product
	// ("wishlist" or "marketplace").
	Page string `json:"page"`

	// Per-item button toggles and their targets.
	BuyEnabled    bool   `json:"buyEnabled"`
	DetailEnabled bool   `json:"detailEnabled"`
	BuyLink       string `json:"buyLink,omitempty"`
	DetailLink    string `json:"detailLink,omitempty"`

	Position int    `json:"position"`
	Created  string `json:"created,omitempty"`
	Updated  string `json:"updated,omitempty"`
}

// GalleryItem is a single gallery image record.
type GalleryItem struct {
	Id       string `json:"id"`
	Title    string `json:"title"`
	Image    string `json:"image"`
	Caption  string `json:"caption,omitempty"`
	Position int    `json:"position"`
	Created  string `json:"created,omitempty"`
}

// ContactMessage is a contact form submission.
type ContactMessage struct {
	Id        string `json:"id,omitempty"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Email     string `json:"email"`
	Phone     string `json:"phone,omitempty"`
	Message   string `json:"message"`
	Type      string `json:"type"` // general, business, feedback
	Created   string `json:"created,omitempty"`
}

// User roles
const (
	RoleRegular = "regular"
	RoleAdmin   = "admin"
)

// User is the public view of an account record returned by the auth
// endpoints and persisted client-side alongside the token.
type User struct {
	Id        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
	Role      string `json:"role"`
}

// IsAdmin reports whether the user may edit settings, products and the
// gallery. Callers pass the result down explicitly instead of reaching
// into ambient auth state.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
