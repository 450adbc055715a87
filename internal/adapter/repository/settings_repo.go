package repository

import (
	"errors"
	"log"

	domain "github.com/Elshan-Aliyev/zcorner-front/internal/core"

	"github.com/pocketbase/pocketbase"
	"github.com/pocketbase/pocketbase/core"
)

type SettingsRepo struct {
	pb *pocketbase.PocketBase
}

func NewSettingsRepo(pb *pocketbase.PocketBase) *SettingsRepo {
	return &SettingsRepo{pb: pb}
}

// DefaultSettings are the tokens served when the settings record cannot
// be read. They mirror the client-side defaults so a broken database
// still yields a usable site.
func DefaultSettings() *domain.SiteSettings {
	return &domain.SiteSettings{
		PrimaryColor:   "#007bff",
		SecondaryColor: "#6c757d",
		FontFamily:     "-apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif",
		ButtonStyle:    domain.ButtonStyle{BorderRadius: "4px", Padding: "0.5rem 1rem"},
		SectionStyles:  map[string]domain.SectionStyle{},
	}
}

// GetSettings fetches the single settings record.
// If it cannot be read (shouldn't happen due to migration), it returns
// the hardcoded defaults instead of an error.
func (r *SettingsRepo) GetSettings() (*domain.SiteSettings, error) {
	rec, err := r.getSettingsRecord()
	if err != nil {
		log.Printf("⚠️ Warning: Could not fetch settings from DB: %v. Using hardcoded defaults.", err)
		return DefaultSettings(), nil
	}
	return recordToSettings(rec), nil
}

// UpdateSettings merges the provided top-level keys over the stored
// document and saves the record. The whole document is rewritten from
// the merged state; there is no version check (last-write-wins).
func (r *SettingsRepo) UpdateSettings(patch *domain.SettingsPatch) error {
	rec, err := r.getSettingsRecord()
	if err != nil {
		return err
	}

	merged := recordToSettings(rec)
	patch.Apply(merged)

	rec.Set("primary_color", merged.PrimaryColor)
	rec.Set("secondary_color", merged.SecondaryColor)
	rec.Set("font_family", merged.FontFamily)
	rec.Set("button_border_radius", merged.ButtonStyle.BorderRadius)
	rec.Set("button_padding", merged.ButtonStyle.Padding)
	rec.Set("hero_image", merged.HeroImage)
	rec.Set("section_styles", merged.SectionStyles)

	return r.pb.Save(rec)
}

func (r *SettingsRepo) getSettingsRecord() (*core.Record, error) {
	records, err := r.pb.FindRecordsByFilter(
		"settings",
		"1=1", // singleton, just take the newest
		"-created",
		1,
		0,
		nil,
	)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, errors.New("settings record not found")
	}
	return records[0], nil
}

func recordToSettings(rec *core.Record) *domain.SiteSettings {
	styles := map[string]domain.SectionStyle{}
	if err := rec.UnmarshalJSONField("section_styles", &styles); err != nil {
		log.Printf("⚠️ Warning: invalid section_styles JSON on record %s: %v", rec.Id, err)
		styles = map[string]domain.SectionStyle{}
	}

	return &domain.SiteSettings{
		Id:             rec.Id,
		PrimaryColor:   rec.GetString("primary_color"),
		SecondaryColor: rec.GetString("secondary_color"),
		FontFamily:     rec.GetString("font_family"),
		ButtonStyle: domain.ButtonStyle{
			BorderRadius: rec.GetString("button_border_radius"),
			Padding:      rec.GetString("button_padding"),
		},
		HeroImage:     rec.GetString("hero_image"),
		SectionStyles: styles,
	}
}
