package model

import "time"

// Merchant is the authenticated owner of a connected store.
type Merchant struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Email           string `json:"email"`
	PreferredLocale string `json:"preferred_locale"` // "ar" or "en"
}

// ConnectedStore records one merchant's link to the remote platform.
// Tokens are opaque credentials obtained through the OAuth handoff.
type ConnectedStore struct {
	ID              string    `json:"id"`
	MerchantID      string    `json:"merchant_id"`
	Platform        string    `json:"platform"`
	ExternalStoreID string    `json:"external_store_id"`
	Name            string    `json:"name"`
	AccessToken     string    `json:"-"`
	RefreshToken    string    `json:"-"`
	ThemeID         *string   `json:"theme_id,omitempty"`
	LogoURL         *string   `json:"logo_url,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// Coupon is a locally-recorded coupon accepted from a preview action.
type Coupon struct {
	ID            string    `json:"id"`
	StoreID       string    `json:"store_id"`
	Code          string    `json:"code"`
	DiscountType  string    `json:"discount_type"`
	DiscountValue float64   `json:"discount_value"`
	ExpiryDate    *string   `json:"expiry_date,omitempty"`
	MinOrderValue float64   `json:"min_order_value"`
	CreatedAt     time.Time `json:"created_at"`
}

// StoreCategory mirrors a category this system pushed to the platform.
type StoreCategory struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"store_id"`
	RemoteID        *string   `json:"remote_id,omitempty"`
	NameAr          string    `json:"name_ar"`
	NameEn          string    `json:"name_en"`
	RemoteConfirmed bool      `json:"remote_confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}

// StoreProduct mirrors a product this system pushed to the platform.
// RemoteConfirmed separates locally-accepted from remotely-confirmed:
// a row with RemoteConfirmed=false was accepted in the flow but its
// create call never succeeded.
type StoreProduct struct {
	ID              string    `json:"id"`
	StoreID         string    `json:"store_id"`
	RemoteID        *string   `json:"remote_id,omitempty"`
	NameAr          string    `json:"name_ar"`
	NameEn          string    `json:"name_en"`
	Price           float64   `json:"price"`
	CategoryID      *string   `json:"category_id,omitempty"`
	RemoteConfirmed bool      `json:"remote_confirmed"`
	CreatedAt       time.Time `json:"created_at"`
}
