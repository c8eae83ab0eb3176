package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"

	"github.com/gorilla/schema"

	"storesetup-backend/model"
)

// Client talks to the remote platform's catalog API for one connected
// store. Mutations report per-call results instead of returning errors
// so partial failures stay visible per item.
type Client struct {
	cfg  Config
	http *http.Client
	enc  *schema.Encoder
}

func NewClient(cfg Config) *Client {
	cfg = cfg.withDefaults()
	return &Client{
		cfg:  cfg,
		http: cfg.HTTPClient,
		enc:  schema.NewEncoder(),
	}
}

func (c *Client) endpoint(path string) string {
	return strings.TrimRight(c.cfg.BaseURL, "/") + path
}

func (c *Client) do(req *http.Request) (int, []byte, error) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.AccessToken)
	req.Header.Set("Accept", "application/json")
	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, nil, err
	}
	return resp.StatusCode, body, nil
}

func succeeded(status int) bool {
	return status >= 200 && status < 300
}

// ListCategories fetches the live category list and normalizes it.
func (c *Client) ListCategories(ctx context.Context) ([]model.RemoteCategory, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint(c.cfg.ListCategoriesPath), nil)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !succeeded(status) {
		return nil, fmt.Errorf("list categories: status %d", status)
	}
	items, okShape := unwrapList(body, categoryWrapperKeys)
	if !okShape {
		return nil, fmt.Errorf("list categories: unrecognized response shape")
	}
	categories := []model.RemoteCategory{}
	for _, item := range items {
		if cat, valid := normalizeCategory(item); valid {
			categories = append(categories, cat)
		}
	}
	return categories, nil
}

// CreateCategories creates the whole batch in one call.
func (c *Client) CreateCategories(ctx context.Context, categories []model.ProposedCategory) CallResult {
	type namePair struct {
		Ar string `json:"ar"`
		En string `json:"en"`
	}
	type categoryPayload struct {
		Name namePair `json:"name"`
	}
	payload := struct {
		Categories []categoryPayload `json:"categories"`
	}{Categories: []categoryPayload{}}
	for _, cat := range categories {
		payload.Categories = append(payload.Categories, categoryPayload{Name: namePair{Ar: cat.NameAr, En: cat.NameEn}})
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fail(err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.cfg.CreateCategoriesPath), bytes.NewReader(body))
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Content-Type", "application/json")
	status, respBody, err := c.do(req)
	if err != nil {
		return fail(err)
	}
	if !succeeded(status) {
		return fail(fmt.Errorf("create categories: status %d: %s", status, respBody))
	}
	return ok()
}

type categoryUpdateForm struct {
	NameAr        string `schema:"name[ar]"`
	NameEn        string `schema:"name[en]"`
	DescriptionAr string `schema:"description[ar]"`
	DescriptionEn string `schema:"description[en]"`
}

// UpdateCategoryName renames one category. The platform expects a
// form-encoded multi-field payload with a field per locale name and
// description fields always present (empty), not a JSON body.
func (c *Client) UpdateCategoryName(ctx context.Context, id, nameAr, nameEn string) CallResult {
	form := categoryUpdateForm{NameAr: nameAr, NameEn: nameEn}
	vals := url.Values{}
	if err := c.enc.Encode(&form, vals); err != nil {
		return fail(err)
	}
	target := c.endpoint(fmt.Sprintf(c.cfg.UpdateCategoryPath, id))
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, target, strings.NewReader(vals.Encode()))
	if err != nil {
		return fail(err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body, err := c.do(req)
	if err != nil {
		return fail(err)
	}
	if !succeeded(status) {
		return fail(fmt.Errorf("update category %s: status %d: %s", id, status, body))
	}
	return ok()
}

// DeleteCategory attempts the REST-style delete first, then falls back
// to the legacy form-POST delete action some platform versions expose.
// The operation succeeds if either attempt succeeds.
func (c *Client) DeleteCategory(ctx context.Context, id string) CallResult {
	target := c.endpoint(fmt.Sprintf(c.cfg.DeleteCategoryPath, id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return fail(err)
	}
	status, body, err := c.do(req)
	if err != nil {
		log.Printf("delete category %s: primary attempt failed: %v", id, err)
	} else {
		log.Printf("delete category %s: primary attempt status=%d body=%s", id, status, body)
		if succeeded(status) {
			return ok()
		}
	}

	vals := url.Values{}
	vals.Set("action", "delete")
	vals.Set("category_id", id)
	fallbackReq, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.cfg.DeleteCategoryFallbackPath), strings.NewReader(vals.Encode()))
	if err != nil {
		return fail(err)
	}
	fallbackReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	status, body, err = c.do(fallbackReq)
	if err != nil {
		log.Printf("delete category %s: fallback attempt failed: %v", id, err)
		return fail(err)
	}
	log.Printf("delete category %s: fallback attempt status=%d body=%s", id, status, body)
	if !succeeded(status) {
		return fail(fmt.Errorf("delete category %s: status %d", id, status))
	}
	return ok()
}
