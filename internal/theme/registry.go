package theme

import (
	"context"
	"sync"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

// Registry maps section ids to style overrides, mirroring the
// sectionStyles map of the remote settings document.
//
// Set performs a read-modify-write against the WHOLE map based on the
// locally cached snapshot: two editors writing different sections from
// stale snapshots will race, and the second write silently drops the
// first one's section. The document carries no version or etag, so this
// is a real property of the system, preserved deliberately; Reload
// narrows the window but does not close it.
type Registry struct {
	gw Gateway

	mu     sync.RWMutex
	styles map[string]core.SectionStyle
}

func NewRegistry(gw Gateway) *Registry {
	return &Registry{gw: gw, styles: map[string]core.SectionStyle{}}
}

// Load populates the local cache from one read of the settings
// document. Pages call it once at mount.
func (r *Registry) Load(ctx context.Context) error {
	settings, err := r.gw.GetSettings(ctx)
	if err != nil {
		return err
	}

	styles := settings.SectionStyles
	if styles == nil {
		styles = map[string]core.SectionStyle{}
	}

	r.mu.Lock()
	r.styles = styles
	r.mu.Unlock()
	return nil
}

// Reload is Load under its editing-session name.
func (r *Registry) Reload(ctx context.Context) error {
	return r.Load(ctx)
}

// Get returns the override for sectionID, or the zero override when the
// key is absent. Never errors; unknown keys are expected.
func (r *Registry) Get(sectionID string) core.SectionStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return Resolve(sectionID, r.styles)
}

// All returns a copy of the cached override map.
func (r *Registry) All() map[string]core.SectionStyle {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]core.SectionStyle, len(r.styles))
	for k, v := range r.styles {
		out[k] = v
	}
	return out
}

// Set replaces one section's override and persists the ENTIRE updated
// map as the sectionStyles field of a settings patch. The local cache
// is replaced only after the write succeeds; on failure it is left
// untouched and the caller must not assume the write happened.
func (r *Registry) Set(ctx context.Context, sectionID string, style core.SectionStyle) error {
	r.mu.RLock()
	next := make(map[string]core.SectionStyle, len(r.styles)+1)
	for k, v := range r.styles {
		next[k] = v
	}
	r.mu.RUnlock()
	next[sectionID] = style

	if err := r.gw.UpdateSettings(ctx, &core.SettingsPatch{SectionStyles: next}); err != nil {
		return err
	}

	r.mu.Lock()
	r.styles = next
	r.mu.Unlock()
	return nil
}
