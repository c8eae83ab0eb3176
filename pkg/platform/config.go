package platform

import "net/http"

// Config points the client at one connected store. Paths are
// platform-specific and therefore configuration, not contract.
type Config struct {
	BaseURL     string
	AccessToken string
	Locale      string // preferred locale for display-name resolution

	ListCategoriesPath         string
	CreateCategoriesPath       string
	UpdateCategoryPath         string // printf pattern, category id substituted
	DeleteCategoryPath         string // printf pattern, primary REST delete
	DeleteCategoryFallbackPath string // legacy form-POST delete action
	ListProductsPath           string
	CreateProductPath          string
	DeleteProductPath          string // printf pattern
	StoreInfoPath              string

	HTTPClient *http.Client
}

func (c Config) withDefaults() Config {
	if c.Locale == "" {
		c.Locale = "ar"
	}
	if c.ListCategoriesPath == "" {
		c.ListCategoriesPath = "/categories"
	}
	if c.CreateCategoriesPath == "" {
		c.CreateCategoriesPath = "/categories"
	}
	if c.UpdateCategoryPath == "" {
		c.UpdateCategoryPath = "/categories/%s"
	}
	if c.DeleteCategoryPath == "" {
		c.DeleteCategoryPath = "/categories/%s"
	}
	if c.DeleteCategoryFallbackPath == "" {
		c.DeleteCategoryFallbackPath = "/categories/delete"
	}
	if c.ListProductsPath == "" {
		c.ListProductsPath = "/products"
	}
	if c.CreateProductPath == "" {
		c.CreateProductPath = "/products"
	}
	if c.DeleteProductPath == "" {
		c.DeleteProductPath = "/products/%s"
	}
	if c.StoreInfoPath == "" {
		c.StoreInfoPath = "/store/info"
	}
	if c.HTTPClient == nil {
		c.HTTPClient = http.DefaultClient
	}
	return c
}

// CallResult is the outcome of one remote mutation. Remote failures are
// carried here instead of bubbling up, so the merchant-facing flow can
// report the failing item without hard-failing.
type CallResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

func ok() CallResult {
	return CallResult{Success: true}
}

func fail(err error) CallResult {
	return CallResult{Success: false, Error: err.Error()}
}

// CreateResult is a CallResult plus the platform-assigned id when the
// response carried one.
type CreateResult struct {
	CallResult
	RemoteID string `json:"remoteId,omitempty"`
}
