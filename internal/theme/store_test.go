package theme

import (
	"context"
	"testing"

	"github.com/Elshan-Aliyev/zcorner-front/internal/client"
	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

func TestTokenStoreFetchFailureKeepsDefaults(t *testing.T) {
	// Nothing listens here; the fetch fails fast.
	gw := client.New("http://127.0.0.1:1")
	store := NewTokenStore(gw)

	store.Load(context.Background()) // must not panic or surface an error

	got := store.Tokens()
	want := DefaultTokens()
	if got != want {
		t.Errorf("Fetch failure must leave all defaults applied:\n got %+v\nwant %+v", got, want)
	}
	if got.PrimaryColor != "#007bff" || got.SecondaryColor != "#6c757d" {
		t.Errorf("Default color tokens wrong: %+v", got)
	}
}

func TestTokenStoreLoadAppliesFetchedTokens(t *testing.T) {
	srv := newSettingsServer(t, core.SiteSettings{
		PrimaryColor:   "#112233",
		SecondaryColor: "#445566",
		FontFamily:     "Georgia, serif",
		ButtonStyle:    core.ButtonStyle{BorderRadius: "8px", Padding: "1rem 2rem"},
	})
	store := NewTokenStore(srv.gateway())

	store.Load(context.Background())

	got := store.Tokens()
	if got.PrimaryColor != "#112233" || got.FontFamily != "Georgia, serif" || got.ButtonBorderRadius != "8px" {
		t.Errorf("Fetched tokens not applied: %+v", got)
	}
}

func TestTokenStoreLoadFallsBackPerEmptyField(t *testing.T) {
	// The document sets only the primary color; the remaining tokens
	// fall back field by field.
	srv := newSettingsServer(t, core.SiteSettings{PrimaryColor: "#112233"})
	store := NewTokenStore(srv.gateway())

	store.Load(context.Background())

	got := store.Tokens()
	def := DefaultTokens()
	if got.PrimaryColor != "#112233" {
		t.Errorf("Set token must apply, got %s", got.PrimaryColor)
	}
	if got.SecondaryColor != def.SecondaryColor || got.FontFamily != def.FontFamily ||
		got.ButtonBorderRadius != def.ButtonBorderRadius || got.ButtonPadding != def.ButtonPadding {
		t.Errorf("Empty tokens must fall back to defaults: %+v", got)
	}
}

func TestTokenStoreCancelledLoadKeepsDefaults(t *testing.T) {
	srv := newSettingsServer(t, core.SiteSettings{PrimaryColor: "#112233"})
	store := NewTokenStore(srv.gateway())

	ctx, cancel := context.WithCancel(context.Background())
	cancel() // the page is gone before the fetch resolves

	store.Load(ctx)

	if got := store.Tokens(); got != DefaultTokens() {
		t.Errorf("A cancelled fetch must not apply tokens, got %+v", got)
	}
}

func TestTokenStoreSaveCommitsLocallyOnSuccess(t *testing.T) {
	srv := newSettingsServer(t, core.SiteSettings{})
	store := NewTokenStore(srv.gateway())
	store.Load(context.Background())

	next := Tokens{
		PrimaryColor:       "#ff6600",
		SecondaryColor:     "#222222",
		FontFamily:         "Verdana, sans-serif",
		ButtonBorderRadius: "0",
		ButtonPadding:      "0.25rem 0.75rem",
	}
	if err := store.Save(context.Background(), next); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if got := store.Tokens(); got != next {
		t.Errorf("Successful save must apply tokens locally, got %+v", got)
	}
	if doc := srv.snapshot(); doc.PrimaryColor != "#ff6600" || doc.ButtonStyle.Padding != "0.25rem 0.75rem" {
		t.Errorf("Saved tokens not persisted: %+v", doc)
	}
}

func TestTokenStoreSaveFailureLeavesTokensUntouched(t *testing.T) {
	srv := newSettingsServer(t, core.SiteSettings{})
	gw := client.New(srv.srv.URL) // unauthenticated -> PUT rejected
	store := NewTokenStore(gw)
	store.Load(context.Background())

	before := store.Tokens()
	err := store.Save(context.Background(), Tokens{PrimaryColor: "#ff6600"})
	if err == nil {
		t.Fatal("Expected the unauthenticated save to fail")
	}
	if got := store.Tokens(); got != before {
		t.Errorf("Failed save must not change local tokens, got %+v", got)
	}
}
