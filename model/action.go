package model

import "encoding/json"

type ActionType string

const (
	ActionNone                ActionType = "none"
	ActionSuggestCategories   ActionType = "suggest_categories"
	ActionPreviewProduct      ActionType = "preview_product"
	ActionPreviewCoupon       ActionType = "preview_coupon"
	ActionSuggestThemes       ActionType = "suggest_themes"
	ActionGenerateLogo        ActionType = "generate_logo"
	ActionBulkProducts        ActionType = "bulk_products"
	ActionGenerateLandingPage ActionType = "generate_landing_page"
)

// AIAction is the typed instruction embedded in an assistant turn.
// Data is kept raw; decode it with the helper matching Type.
type AIAction struct {
	Type ActionType      `json:"type"`
	Data json.RawMessage `json:"data,omitempty"`
}

func (a *AIAction) IsNone() bool {
	return a == nil || a.Type == "" || a.Type == ActionNone
}

type SuggestCategoriesData struct {
	Categories         []ProposedCategory `json:"categories"`
	ExistingCategories []RemoteCategory   `json:"existingCategories,omitempty"`
}

type PreviewProductData struct {
	NameAr        string   `json:"nameAr"`
	NameEn        string   `json:"nameEn"`
	DescriptionAr string   `json:"descriptionAr"`
	DescriptionEn string   `json:"descriptionEn"`
	Price         float64  `json:"price"`
	Variants      []string `json:"variants,omitempty"`
}

type PreviewCouponData struct {
	Code          string  `json:"code"`
	DiscountType  string  `json:"discountType"`
	DiscountValue float64 `json:"discountValue"`
	ExpiryDate    string  `json:"expiryDate,omitempty"`
	MinOrderValue float64 `json:"minOrderValue,omitempty"`
	DescriptionAr string  `json:"descriptionAr,omitempty"`
	DescriptionEn string  `json:"descriptionEn,omitempty"`
}

type BulkProductsData struct {
	Products []ProposedProduct `json:"products"`
}

func (a *AIAction) SuggestCategories() (*SuggestCategoriesData, error) {
	var d SuggestCategoriesData
	if err := json.Unmarshal(a.Data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (a *AIAction) PreviewProduct() (*PreviewProductData, error) {
	var d PreviewProductData
	if err := json.Unmarshal(a.Data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}

func (a *AIAction) BulkProducts() (*BulkProductsData, error) {
	var d BulkProductsData
	if err := json.Unmarshal(a.Data, &d); err != nil {
		return nil, err
	}
	return &d, nil
}
