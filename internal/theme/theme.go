// Package theme implements the client side of the site theming model:
// global tokens fetched once per session, per-section style overrides
// layered over component-local defaults, and the registry that keeps
// the override map in sync with the remote settings document.
package theme

import (
	"context"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

// Known section keys used by the storefront pages. This is a naming
// convention, not an enum: any page may invent a new key at render time
// and it will round-trip through the registry unchanged.
const (
	SectionHero              = "hero"
	SectionWishlist          = "wishlist"
	SectionWishlistHeader    = "wishlist-header"
	SectionMarketplace       = "marketplace"
	SectionMarketplaceHeader = "marketplace-header"
	SectionContactHeader     = "contact-header"
	SectionGalleryHeader     = "gallery-header"
)

// Gateway is the settings resource as seen by the theming subsystem.
// It is the only reader/writer of the persisted document.
type Gateway interface {
	GetSettings(ctx context.Context) (*core.SiteSettings, error)
	UpdateSettings(ctx context.Context, patch *core.SettingsPatch) error
}

// Tokens are the global site-wide style values applied everywhere a
// section override does not take precedence.
type Tokens struct {
	PrimaryColor       string
	SecondaryColor     string
	FontFamily         string
	ButtonBorderRadius string
	ButtonPadding      string
}

// DefaultTokens returns the built-in token set used whenever the
// settings document cannot be fetched.
func DefaultTokens() Tokens {
	return Tokens{
		PrimaryColor:       "#007bff",
		SecondaryColor:     "#6c757d",
		FontFamily:         "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
		ButtonBorderRadius: "4px",
		ButtonPadding:      "0.5rem 1rem",
	}
}

// TokensFrom maps a settings document onto tokens, falling back per
// field to the built-in default for any empty value.
func TokensFrom(s *core.SiteSettings) Tokens {
	def := DefaultTokens()
	return Tokens{
		PrimaryColor:       Fallback(s.PrimaryColor, def.PrimaryColor),
		SecondaryColor:     Fallback(s.SecondaryColor, def.SecondaryColor),
		FontFamily:         Fallback(s.FontFamily, def.FontFamily),
		ButtonBorderRadius: Fallback(s.ButtonStyle.BorderRadius, def.ButtonBorderRadius),
		ButtonPadding:      Fallback(s.ButtonStyle.Padding, def.ButtonPadding),
	}
}
