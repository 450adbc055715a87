package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

func TestUpdateSettingsSendsBearerAndFullBody(t *testing.T) {
	var gotAuth string
	var gotPatch core.SettingsPatch

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPut || r.URL.Path != "/api/settings" {
			t.Errorf("Unexpected request: %s %s", r.Method, r.URL.Path)
		}
		gotAuth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&gotPatch); err != nil {
			t.Errorf("decode: %v", err)
		}
		json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
	}))
	defer srv.Close()

	c := New(srv.URL)
	c.SetTokenSource(func() string { return "tok-123" })

	err := c.UpdateSettings(context.Background(), &core.SettingsPatch{
		SectionStyles: map[string]core.SectionStyle{
			"hero":     {HeaderColor: "#ff0000"},
			"wishlist": {TextColor: "#666666"},
		},
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}

	if gotAuth != "Bearer tok-123" {
		t.Errorf("Expected bearer header, got %q", gotAuth)
	}
	if len(gotPatch.SectionStyles) != 2 {
		t.Errorf("The entire map must go over the wire, got %v", gotPatch.SectionStyles)
	}
	if gotPatch.PrimaryColor != nil {
		t.Error("Keys not in the patch must not be serialized")
	}
}

func TestGetSettingsNoAuthRequired(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "" {
			t.Errorf("GET /api/settings should be unauthenticated, got %q", r.Header.Get("Authorization"))
		}
		json.NewEncoder(w).Encode(core.SiteSettings{PrimaryColor: "#112233"})
	}))
	defer srv.Close()

	settings, err := New(srv.URL).GetSettings(context.Background())
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if settings.PrimaryColor != "#112233" {
		t.Errorf("Unexpected settings: %+v", settings)
	}
}

func TestNon2xxSurfacesServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Admin access required"})
	}))
	defer srv.Close()

	err := New(srv.URL).UpdateSettings(context.Background(), &core.SettingsPatch{})
	if err == nil {
		t.Fatal("Expected an error for a 401 response")
	}
	if !strings.Contains(err.Error(), "Admin access required") {
		t.Errorf("Server error message should surface to the caller, got %v", err)
	}
}

func TestListProductsQueryParams(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("page") != "wishlist" || q.Get("limit") != "6" {
			t.Errorf("Unexpected query: %s", r.URL.RawQuery)
		}
		json.NewEncoder(w).Encode([]*core.Product{{Id: "p1", Title: "Gift", Page: "wishlist"}})
	}))
	defer srv.Close()

	products, err := New(srv.URL).ListProducts(context.Background(), "wishlist", 6)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(products) != 1 || products[0].Title != "Gift" {
		t.Errorf("Unexpected products: %+v", products)
	}
}

func TestLoginReturnsTokenAndUser(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req map[string]string
		json.NewDecoder(r.Body).Decode(&req)
		if req["email"] != "admin@zcorner.local" {
			t.Errorf("Unexpected login body: %v", req)
		}
		json.NewEncoder(w).Encode(map[string]any{
			"token": "tok-abc",
			"user":  &core.User{Id: "u1", Email: req["email"], Role: core.RoleAdmin},
		})
	}))
	defer srv.Close()

	token, user, err := New(srv.URL).Login(context.Background(), "admin@zcorner.local", "changeme123")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if token != "tok-abc" {
		t.Errorf("Expected token tok-abc, got %s", token)
	}
	if !user.IsAdmin() {
		t.Errorf("Expected admin user, got %+v", user)
	}
}
