package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"storesetup-backend/model"
	"storesetup-backend/pkg/platform"
)

// OAuthUsecase runs the authorization-code handoff with the platform.
// The core only consumes the resulting tokens as opaque credentials.
type OAuthUsecase struct {
	merchantRepo MerchantStore
	storeRepo    StoreRecords
	oauth        platform.OAuthConfig
	platformName string
	apiBaseURL   string

	mu     sync.Mutex
	states map[string]string // state nonce -> merchant id
}

func NewOAuthUsecase(merchantRepo MerchantStore, storeRepo StoreRecords, oauth platform.OAuthConfig, platformName, apiBaseURL string) *OAuthUsecase {
	return &OAuthUsecase{
		merchantRepo: merchantRepo,
		storeRepo:    storeRepo,
		oauth:        oauth,
		platformName: platformName,
		apiBaseURL:   apiBaseURL,
		states:       map[string]string{},
	}
}

// AuthorizeURL builds the redirect target for the merchant, binding a
// fresh state nonce to them. The merchant row does not have to exist
// yet; a first-time merchant is created when the callback lands.
func (u *OAuthUsecase) AuthorizeURL(merchantID string) (string, error) {
	if merchantID == "" {
		return "", ErrUnauthorized
	}

	state := uuid.NewString()
	u.mu.Lock()
	u.states[state] = merchantID
	u.mu.Unlock()

	return u.oauth.AuthorizeRedirect(state), nil
}

// HandleCallback exchanges the code, resolves the store's identity and
// upserts the connected-store record.
func (u *OAuthUsecase) HandleCallback(ctx context.Context, code, state string) (*model.ConnectedStore, error) {
	if code == "" || state == "" {
		return nil, fmt.Errorf("%w: code and state are required", ErrInvalidInput)
	}

	u.mu.Lock()
	merchantID, known := u.states[state]
	delete(u.states, state)
	u.mu.Unlock()
	if !known {
		return nil, fmt.Errorf("%w: unknown state", ErrUnauthorized)
	}

	token, err := u.oauth.ExchangeCode(ctx, code)
	if err != nil {
		return nil, err
	}

	client := platform.NewClient(platform.Config{
		BaseURL:     u.apiBaseURL,
		AccessToken: token.AccessToken,
	})
	identity, err := client.FetchStoreIdentity(ctx)
	if err != nil {
		return nil, err
	}

	// First-time merchants are created from the store identity; the
	// connected platform is the registration path.
	merchant, err := u.merchantRepo.GetByID(merchantID)
	if err != nil {
		return nil, err
	}
	if merchant == nil {
		merchant = &model.Merchant{
			ID:              merchantID,
			Name:            identity.Name,
			Email:           identity.Email,
			PreferredLocale: "ar",
		}
		if err := u.merchantRepo.Insert(merchant); err != nil {
			return nil, err
		}
	}

	existing, err := u.storeRepo.GetByExternalID(u.platformName, identity.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		if err := u.storeRepo.UpdateTokens(existing.ID, token.AccessToken, token.RefreshToken); err != nil {
			return nil, err
		}
		existing.AccessToken = token.AccessToken
		existing.RefreshToken = token.RefreshToken
		return existing, nil
	}

	store := &model.ConnectedStore{
		ID:              newID(),
		MerchantID:      merchantID,
		Platform:        u.platformName,
		ExternalStoreID: identity.ID,
		Name:            identity.Name,
		AccessToken:     token.AccessToken,
		RefreshToken:    token.RefreshToken,
		CreatedAt:       time.Now(),
	}
	if err := u.storeRepo.Insert(store); err != nil {
		return nil, err
	}
	return store, nil
}
