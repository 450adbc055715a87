package core

// ButtonStyle holds the global button shape tokens (CSS length strings).
type ButtonStyle struct {
	BorderRadius string `json:"borderRadius"`
	Padding      string `json:"padding"`
}

// SectionStyle is a partial per-section style override. Every field is
// optional; an empty string means "not set" and consumers fall back per
// field to their own local default, never to the global tokens.
type SectionStyle struct {
	BackgroundColor string `json:"backgroundColor,omitempty"`
	HeaderColor     string `json:"headerColor,omitempty"`
	HeaderSize      string `json:"headerSize,omitempty"`
	HeaderWeight    string `json:"headerWeight,omitempty"`
	TextColor       string `json:"textColor,omitempty"`
	TextSize        string `json:"textSize,omitempty"`
	TextWeight      string `json:"textWeight,omitempty"`
}

// IsZero reports whether no field of the override is set.
func (s SectionStyle) IsZero() bool {
	return s == SectionStyle{}
}

// SiteSettings is the singleton settings document: global theme tokens,
// the hero image and the per-section override map. Section keys are
// opaque strings invented by the pages that render them.
type SiteSettings struct {
	Id             string                  `json:"id,omitempty"`
	PrimaryColor   string                  `json:"primaryColor"`
	SecondaryColor string                  `json:"secondaryColor"`
	FontFamily     string                  `json:"fontFamily"`
	ButtonStyle    ButtonStyle             `json:"buttonStyle"`
	HeroImage      string                  `json:"heroImage,omitempty"`
	SectionStyles  map[string]SectionStyle `json:"sectionStyles"`
}

// SettingsPatch is a partial settings document as accepted by
// PUT /api/settings. Only keys present in the request body are applied.
// SectionStyles, when present, replaces the stored map wholesale, so a
// caller must round-trip the entire map or sibling sections are lost.
type SettingsPatch struct {
	PrimaryColor   *string                 `json:"primaryColor,omitempty"`
	SecondaryColor *string                 `json:"secondaryColor,omitempty"`
	FontFamily     *string                 `json:"fontFamily,omitempty"`
	ButtonStyle    *ButtonStyle            `json:"buttonStyle,omitempty"`
	HeroImage      *string                 `json:"heroImage,omitempty"`
	SectionStyles  map[string]SectionStyle `json:"sectionStyles,omitempty"`
}

// Apply performs the shallow top-level merge of the patch over the stored
// document. There is no version check; writes are last-write-wins.
func (p *SettingsPatch) Apply(s *SiteSettings) {
	if p.PrimaryColor != nil {
		s.PrimaryColor = *p.PrimaryColor
	}
	if p.SecondaryColor != nil {
		s.SecondaryColor = *p.SecondaryColor
	}
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.ButtonStyle != nil {
		s.ButtonStyle = *p.ButtonStyle
	}
	if p.HeroImage != nil {
		s.HeroImage = *p.HeroImage
	}
	if p.SectionStyles != nil {
		s.SectionStyles = p.SectionStyles
	}
}
