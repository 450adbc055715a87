package theme

import "github.com/Elshan-Aliyev/zcorner-front/internal/core"

// Resolve returns the override registered for sectionID, or the zero
// override when the key is absent. Pure and total; it never consults
// the global tokens.
func Resolve(sectionID string, styles map[string]core.SectionStyle) core.SectionStyle {
	return styles[sectionID]
}

// Fallback applies the field-level fallback rule: a consumer takes the
// override value if set, otherwise its own local default. The fallback
// is per field, never per override object, so an override that sets a
// single field leaves every other field on its local default.
func Fallback(value, def string) string {
	if value != "" {
		return value
	}
	return def
}
