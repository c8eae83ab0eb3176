package platform

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"storesetup-backend/model"
)

// ProductPayload is one product create request. CategoryID nil means
// uncategorized.
type ProductPayload struct {
	NameAr        string
	NameEn        string
	Price         float64
	DescriptionAr string
	DescriptionEn string
	CategoryID    *string
}

// ListProducts fetches one page of the product list.
func (c *Client) ListProducts(ctx context.Context, page int) ([]model.RemoteProduct, error) {
	target := c.endpoint(c.cfg.ListProductsPath)
	if page > 1 {
		target += "?page=" + strconv.Itoa(page)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, err
	}
	status, body, err := c.do(req)
	if err != nil {
		return nil, err
	}
	if !succeeded(status) {
		return nil, fmt.Errorf("list products: status %d", status)
	}
	items, okShape := unwrapList(body, productWrapperKeys)
	if !okShape {
		return nil, fmt.Errorf("list products: unrecognized response shape")
	}
	products := []model.RemoteProduct{}
	for _, item := range items {
		if p, valid := normalizeProduct(item); valid {
			products = append(products, p)
		}
	}
	return products, nil
}

// CreateProduct creates one product. Products are pushed one at a time
// so callers can surface per-item progress.
func (c *Client) CreateProduct(ctx context.Context, p ProductPayload) CreateResult {
	type namePair struct {
		Ar string `json:"ar"`
		En string `json:"en"`
	}
	payload := map[string]interface{}{
		"name":        namePair{Ar: p.NameAr, En: p.NameEn},
		"price":       p.Price,
		"description": namePair{Ar: p.DescriptionAr, En: p.DescriptionEn},
	}
	if p.CategoryID != nil {
		payload["category_ids"] = []string{*p.CategoryID}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return CreateResult{CallResult: fail(err)}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint(c.cfg.CreateProductPath), bytes.NewReader(body))
	if err != nil {
		return CreateResult{CallResult: fail(err)}
	}
	req.Header.Set("Content-Type", "application/json")
	status, respBody, err := c.do(req)
	if err != nil {
		return CreateResult{CallResult: fail(err)}
	}
	if !succeeded(status) {
		return CreateResult{CallResult: fail(fmt.Errorf("create product: status %d: %s", status, respBody))}
	}
	return CreateResult{CallResult: ok(), RemoteID: extractCreatedID(respBody)}
}

// DeleteProduct removes one product.
func (c *Client) DeleteProduct(ctx context.Context, id string) CallResult {
	target := c.endpoint(fmt.Sprintf(c.cfg.DeleteProductPath, id))
	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, target, nil)
	if err != nil {
		return fail(err)
	}
	status, body, err := c.do(req)
	if err != nil {
		return fail(err)
	}
	if !succeeded(status) {
		return fail(fmt.Errorf("delete product %s: status %d: %s", id, status, body))
	}
	return ok()
}

// extractCreatedID pulls the new id out of a create response, which may
// nest the created entity under a wrapper key.
func extractCreatedID(body []byte) string {
	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return ""
	}
	if raw, present := envelope["id"]; present {
		return decodeID(raw)
	}
	for _, key := range []string{"product", "data", "result"} {
		raw, present := envelope[key]
		if !present {
			continue
		}
		var nested struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &nested); err == nil {
			if id := decodeID(nested.ID); id != "" {
				return id
			}
		}
	}
	return ""
}
