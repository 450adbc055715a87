// Package client is the HTTP client for the storefront REST API. It is
// the settings gateway consumed by internal/theme plus the page-level
// calls (products, gallery, contact, auth) the site makes around it.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/Elshan-Aliyev/zcorner-front/internal/core"
)

type Client struct {
	baseURL string
	http    *http.Client

	// token supplies the bearer token for authenticated calls; nil or
	// empty result means the request goes out unauthenticated.
	token func() string
}

func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

// SetTokenSource wires the session's token into outgoing requests.
func (c *Client) SetTokenSource(fn func() string) {
	c.token = fn
}

// GetSettings fetches the full settings document. No auth required.
func (c *Client) GetSettings(ctx context.Context) (*core.SiteSettings, error) {
	var settings core.SiteSettings
	if err := c.do(ctx, http.MethodGet, "/api/settings", nil, &settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings sends a partial settings document; the server merges
// the provided top-level keys over the stored record. Requires an admin
// bearer token.
func (c *Client) UpdateSettings(ctx context.Context, patch *core.SettingsPatch) error {
	return c.do(ctx, http.MethodPut, "/api/settings", patch, nil)
}

// ListProducts fetches products for a storefront page; limit 0 means
// all of them.
func (c *Client) ListProducts(ctx context.Context, page string, limit int) ([]*core.Product, error) {
	q := url.Values{}
	if page != "" {
		q.Set("page", page)
	}
	if limit > 0 {
		q.Set("limit", fmt.Sprint(limit))
	}
	path := "/api/products"
	if len(q) > 0 {
		path += "?" + q.Encode()
	}

	var products []*core.Product
	if err := c.do(ctx, http.MethodGet, path, nil, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (c *Client) CreateProduct(ctx context.Context, p *core.Product) (*core.Product, error) {
	var created core.Product
	if err := c.do(ctx, http.MethodPost, "/api/products", p, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) UpdateProduct(ctx context.Context, p *core.Product) error {
	return c.do(ctx, http.MethodPut, "/api/products/"+url.PathEscape(p.Id), p, nil)
}

func (c *Client) DeleteProduct(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/api/products/"+url.PathEscape(id), nil, nil)
}

func (c *Client) ListGallery(ctx context.Context) ([]*core.GalleryItem, error) {
	var items []*core.GalleryItem
	if err := c.do(ctx, http.MethodGet, "/api/gallery", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (c *Client) AddGalleryItem(ctx context.Context, item *core.GalleryItem) (*core.GalleryItem, error) {
	var created core.GalleryItem
	if err := c.do(ctx, http.MethodPost, "/api/gallery", item, &created); err != nil {
		return nil, err
	}
	return &created, nil
}

func (c *Client) SubmitContact(ctx context.Context, msg *core.ContactMessage) error {
	return c.do(ctx, http.MethodPost, "/api/contact", msg, nil)
}

type authResponse struct {
	Token string     `json:"token"`
	User  *core.User `json:"user"`
}

func (c *Client) Login(ctx context.Context, email, password string) (string, *core.User, error) {
	body := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *Client) Register(ctx context.Context, firstName, lastName, email, password string) (string, *core.User, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"password":  password,
	}
	var resp authResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", body, &resp); err != nil {
		return "", nil, err
	}
	return resp.Token, resp.User, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var payload *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("%s %s: encode body: %w", method, path, err)
		}
		payload = bytes.NewReader(raw)
	} else {
		payload = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, payload)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if t := c.token(); t != "" {
			req.Header.Set("Authorization", "Bearer "+t)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var apiErr struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		if apiErr.Error != "" {
			return fmt.Errorf("%s %s: %s (status %d)", method, path, apiErr.Error, resp.StatusCode)
		}
		return fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("%s %s: decode response: %w", method, path, err)
		}
	}
	return nil
}
