package core

import (
	"encoding/json"
	"testing"
)

func baseSettings() *SiteSettings {
	return &SiteSettings{
		PrimaryColor:   "#007bff",
		SecondaryColor: "#6c757d",
		FontFamily:     "Arial, sans-serif",
		ButtonStyle:    ButtonStyle{BorderRadius: "4px", Padding: "0.5rem 1rem"},
		HeroImage:      "https://example.com/hero.jpg",
		SectionStyles: map[string]SectionStyle{
			"wishlist": {HeaderColor: "#111111"},
		},
	}
}

func strPtr(s string) *string { return &s }

func TestPatchAppliesOnlyProvidedKeys(t *testing.T) {
	s := baseSettings()

	patch := &SettingsPatch{PrimaryColor: strPtr("#ff0000")}
	patch.Apply(s)

	if s.PrimaryColor != "#ff0000" {
		t.Errorf("Expected primary #ff0000, got %s", s.PrimaryColor)
	}
	if s.SecondaryColor != "#6c757d" {
		t.Errorf("Secondary color should be untouched, got %s", s.SecondaryColor)
	}
	if s.HeroImage != "https://example.com/hero.jpg" {
		t.Errorf("Hero image should be untouched, got %s", s.HeroImage)
	}
	if _, ok := s.SectionStyles["wishlist"]; !ok {
		t.Error("Section styles should be untouched by a token-only patch")
	}
}

func TestPatchAllowsClearingHeroImage(t *testing.T) {
	s := baseSettings()

	patch := &SettingsPatch{HeroImage: strPtr("")}
	patch.Apply(s)

	if s.HeroImage != "" {
		t.Errorf("Expected hero image cleared, got %q", s.HeroImage)
	}
}

func TestPatchReplacesSectionStylesWholesale(t *testing.T) {
	s := baseSettings()

	// The patch carries only "hero"; the stored "wishlist" key is lost
	// because sectionStyles is replaced, not merged. This is the
	// documented contract: callers must round-trip the full map.
	patch := &SettingsPatch{
		SectionStyles: map[string]SectionStyle{
			"hero": {HeaderColor: "#ff0000"},
		},
	}
	patch.Apply(s)

	if _, ok := s.SectionStyles["hero"]; !ok {
		t.Error("Expected hero key after patch")
	}
	if _, ok := s.SectionStyles["wishlist"]; ok {
		t.Error("wishlist should be lost when the patch map omits it")
	}
}

func TestPatchKeepsSectionStylesWhenCallerIncludedSiblings(t *testing.T) {
	s := baseSettings()

	// A well-behaved caller merges its edit into the full current map
	// before sending.
	patch := &SettingsPatch{
		SectionStyles: map[string]SectionStyle{
			"wishlist": {HeaderColor: "#111111"},
			"hero":     {HeaderColor: "#ff0000"},
		},
	}
	patch.Apply(s)

	if len(s.SectionStyles) != 2 {
		t.Fatalf("Expected 2 section keys, got %d", len(s.SectionStyles))
	}
	if s.SectionStyles["hero"].HeaderColor != "#ff0000" {
		t.Errorf("Unexpected hero override: %+v", s.SectionStyles["hero"])
	}
}

func TestPatchDecodeDistinguishesAbsentFromEmpty(t *testing.T) {
	var patch SettingsPatch
	if err := json.Unmarshal([]byte(`{"heroImage":""}`), &patch); err != nil {
		t.Fatal(err)
	}
	if patch.HeroImage == nil {
		t.Error("heroImage present in body must decode to a non-nil pointer")
	}
	if patch.PrimaryColor != nil {
		t.Error("absent primaryColor must stay nil")
	}
	if patch.SectionStyles != nil {
		t.Error("absent sectionStyles must stay nil")
	}
}

func TestSectionStyleOmitsUnsetFields(t *testing.T) {
	raw, err := json.Marshal(SectionStyle{HeaderColor: "#ff0000"})
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != `{"headerColor":"#ff0000"}` {
		t.Errorf("Unset override fields must not be serialized, got %s", raw)
	}
}
