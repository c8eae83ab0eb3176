package platform

import (
	"encoding/json"
	"strings"

	"storesetup-backend/model"
)

// The platform is inconsistent about where it puts list payloads and
// how it spells display names. Everything funnels through here so call
// sites only ever see model.RemoteCategory / model.RemoteProduct.

var categoryWrapperKeys = []string{"categories", "data", "items", "result"}
var productWrapperKeys = []string{"products", "data", "items", "result"}

// unwrapList accepts either a bare JSON array or an object wrapping the
// array under one of keys, tried in priority order. First present wins.
func unwrapList(body []byte, keys []string) ([]json.RawMessage, bool) {
	trimmed := strings.TrimSpace(string(body))
	if strings.HasPrefix(trimmed, "[") {
		var items []json.RawMessage
		if err := json.Unmarshal(body, &items); err != nil {
			return nil, false
		}
		return items, true
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil, false
	}
	for _, key := range keys {
		raw, present := envelope[key]
		if !present {
			continue
		}
		var items []json.RawMessage
		if err := json.Unmarshal(raw, &items); err != nil {
			continue
		}
		return items, true
	}
	return nil, false
}

type nameKind int

const (
	nameFlat nameKind = iota
	nameLocalized
)

// nameVariant is the tagged form of a raw name field, which the
// platform sends either as a flat string or as a locale-keyed object.
type nameVariant struct {
	kind  nameKind
	value string
	ar    string
	en    string
}

func parseNameField(raw json.RawMessage) nameVariant {
	if len(raw) == 0 {
		return nameVariant{kind: nameFlat}
	}
	var flat string
	if err := json.Unmarshal(raw, &flat); err == nil {
		return nameVariant{kind: nameFlat, value: flat}
	}
	var localized struct {
		Ar string `json:"ar"`
		En string `json:"en"`
	}
	if err := json.Unmarshal(raw, &localized); err == nil {
		return nameVariant{kind: nameLocalized, ar: localized.Ar, en: localized.En}
	}
	return nameVariant{kind: nameFlat}
}

// canonical resolves a variant to a bilingual pair. A missing locale
// falls back to the other; an entirely empty object yields empty
// strings for both. Missing localization never fails.
func (v nameVariant) canonical() (ar, en string) {
	if v.kind == nameFlat {
		return v.value, v.value
	}
	ar, en = v.ar, v.en
	if ar == "" {
		ar = en
	}
	if en == "" {
		en = ar
	}
	return ar, en
}

// decodeID tolerates numeric and string ids.
func decodeID(raw json.RawMessage) string {
	if len(raw) == 0 {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

type rawCategory struct {
	ID            json.RawMessage `json:"id"`
	Name          json.RawMessage `json:"name"`
	Slug          string          `json:"slug"`
	ProductsCount int             `json:"products_count"`
	ItemsCount    int             `json:"items_count"`
}

func normalizeCategory(raw json.RawMessage) (model.RemoteCategory, bool) {
	var rc rawCategory
	if err := json.Unmarshal(raw, &rc); err != nil {
		return model.RemoteCategory{}, false
	}
	id := decodeID(rc.ID)
	if id == "" {
		return model.RemoteCategory{}, false
	}
	ar, en := parseNameField(rc.Name).canonical()
	count := rc.ProductsCount
	if count == 0 {
		count = rc.ItemsCount
	}
	return model.RemoteCategory{
		ID:            id,
		NameAr:        ar,
		NameEn:        en,
		Slug:          rc.Slug,
		ProductsCount: count,
	}, true
}

type rawProduct struct {
	ID          json.RawMessage   `json:"id"`
	Name        json.RawMessage   `json:"name"`
	Price       json.RawMessage   `json:"price"`
	Categories  []json.RawMessage `json:"categories"`
	CategoryIDs []json.RawMessage `json:"category_ids"`
}

func decodePrice(raw json.RawMessage) float64 {
	if len(raw) == 0 {
		return 0
	}
	var n float64
	if err := json.Unmarshal(raw, &n); err == nil {
		return n
	}
	// some platform versions nest the amount
	var nested struct {
		Amount float64 `json:"amount"`
	}
	if err := json.Unmarshal(raw, &nested); err == nil {
		return nested.Amount
	}
	return 0
}

// resolveCategoryIDs flattens whichever shape the platform used:
// an array of ids, or an array of category objects carrying ids.
func resolveCategoryIDs(rp rawProduct) []string {
	ids := []string{}
	for _, raw := range rp.CategoryIDs {
		if id := decodeID(raw); id != "" {
			ids = append(ids, id)
		}
	}
	for _, raw := range rp.Categories {
		if id := decodeID(raw); id != "" {
			ids = append(ids, id)
			continue
		}
		var obj struct {
			ID json.RawMessage `json:"id"`
		}
		if err := json.Unmarshal(raw, &obj); err == nil {
			if id := decodeID(obj.ID); id != "" {
				ids = append(ids, id)
			}
		}
	}
	return ids
}

func normalizeProduct(raw json.RawMessage) (model.RemoteProduct, bool) {
	var rp rawProduct
	if err := json.Unmarshal(raw, &rp); err != nil {
		return model.RemoteProduct{}, false
	}
	id := decodeID(rp.ID)
	if id == "" {
		return model.RemoteProduct{}, false
	}
	ar, en := parseNameField(rp.Name).canonical()
	return model.RemoteProduct{
		ID:          id,
		NameAr:      ar,
		NameEn:      en,
		Price:       decodePrice(rp.Price),
		CategoryIDs: resolveCategoryIDs(rp),
	}, true
}
