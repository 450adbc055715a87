package theme

import (
	"testing"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

func TestResolveAbsentKeyYieldsEmptyOverride(t *testing.T) {
	styles := map[string]core.SectionStyle{
		"hero": {HeaderColor: "#ff0000"},
	}

	got := Resolve("contact-header", styles)
	if !got.IsZero() {
		t.Errorf("Absent key must yield the empty override, got %+v", got)
	}

	if Resolve("anything", nil) != (core.SectionStyle{}) {
		t.Error("Resolve must be total over a nil registry")
	}
}

// A consumer renders each attribute independently: an override that
// sets exactly one field applies that field and every other attribute
// falls back to its own local default. Fallback is per field, never per
// override object.
func TestSingleFieldOverrideFallsBackPerField(t *testing.T) {
	styles := map[string]core.SectionStyle{
		"wishlist-header": {HeaderColor: "#ff0000"},
	}
	o := Resolve("wishlist-header", styles)

	// Local defaults as a heading consumer would hardcode them.
	headerColor := Fallback(o.HeaderColor, "#000000")
	headerSize := Fallback(o.HeaderSize, "2rem")
	headerWeight := Fallback(o.HeaderWeight, "700")
	textColor := Fallback(o.TextColor, "#666666")
	textSize := Fallback(o.TextSize, "1rem")
	textWeight := Fallback(o.TextWeight, "400")
	background := Fallback(o.BackgroundColor, "#ffffff")

	if headerColor != "#ff0000" {
		t.Errorf("Set field must apply, got %s", headerColor)
	}
	for name, tc := range map[string]struct{ got, want string }{
		"headerSize":      {headerSize, "2rem"},
		"headerWeight":    {headerWeight, "700"},
		"textColor":       {textColor, "#666666"},
		"textSize":        {textSize, "1rem"},
		"textWeight":      {textWeight, "400"},
		"backgroundColor": {background, "#ffffff"},
	} {
		if tc.got != tc.want {
			t.Errorf("%s must fall back independently: got %s want %s", name, tc.got, tc.want)
		}
	}
}

func TestOverridesDoNotInheritGlobalTokens(t *testing.T) {
	// Section-level text/header colors never pick up primary/secondary
	// tokens; the fallback target is the consumer's local default.
	o := Resolve("marketplace-header", map[string]core.SectionStyle{})
	def := DefaultTokens()

	headerColor := Fallback(o.HeaderColor, "#000000")
	if headerColor == def.PrimaryColor {
		t.Errorf("Header color fell back to the primary token: %s", headerColor)
	}
}
