package usecase

import (
	"context"
	"errors"
	"math/rand"
	"time"

	"github.com/oklog/ulid/v2"

	"storesetup-backend/model"
	"storesetup-backend/pkg/assistant"
	"storesetup-backend/pkg/platform"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrUnauthorized = errors.New("unauthorized")
	ErrNotFound     = errors.New("not found")
)

func newID() string {
	entropy := ulid.Monotonic(rand.New(rand.NewSource(time.Now().UnixNano())), 0)
	return ulid.MustNew(ulid.Now(), entropy).String()
}

// Narrow views of the dao repositories, so flows can be exercised
// against fakes.

type SessionStore interface {
	Insert(s *model.SetupSession) error
	GetByID(id string) (*model.SetupSession, error)
	GetInProgressByStoreID(storeID string) (*model.SetupSession, error)
	UpdateProgress(s *model.SetupSession) error
	UpdateLandingPage(id string, content string) error
}

type MessageStore interface {
	CreateMessage(msg *model.ChatMessage) error
	GetBySessionID(sessionID string) ([]model.ChatMessage, error)
}

type StoreRecords interface {
	Insert(s *model.ConnectedStore) error
	GetByID(id string) (*model.ConnectedStore, error)
	GetByMerchantID(merchantID string) (*model.ConnectedStore, error)
	GetByExternalID(platform, externalID string) (*model.ConnectedStore, error)
	UpdateTokens(id, accessToken, refreshToken string) error
	UpdateThemeID(id, themeID string) error
	UpdateLogoURL(id, logoURL string) error
}

type MerchantStore interface {
	Insert(m *model.Merchant) error
	GetByID(id string) (*model.Merchant, error)
}

type CatalogStore interface {
	InsertCategory(c *model.StoreCategory) error
	InsertProduct(p *model.StoreProduct) error
	InsertCoupon(c *model.Coupon) error
	GetUnconfirmedProducts(storeID string) ([]model.StoreProduct, error)
}

// CatalogClient is the remote catalog surface the executors drive.
type CatalogClient interface {
	ListCategories(ctx context.Context) ([]model.RemoteCategory, error)
	CreateCategories(ctx context.Context, categories []model.ProposedCategory) platform.CallResult
	UpdateCategoryName(ctx context.Context, id, nameAr, nameEn string) platform.CallResult
	DeleteCategory(ctx context.Context, id string) platform.CallResult
	CreateProduct(ctx context.Context, p platform.ProductPayload) platform.CreateResult
}

// CatalogClientFactory builds a client bound to one store's credentials.
type CatalogClientFactory func(store *model.ConnectedStore) CatalogClient

type AssistantGateway interface {
	Generate(ctx context.Context, req assistant.Request) (*assistant.Reply, error)
}

type LogoUploader interface {
	UploadLogo(ctx context.Context, source string, storeID string) (string, error)
}
