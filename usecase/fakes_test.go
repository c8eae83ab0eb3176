package usecase

import (
	"context"
	"fmt"
	"time"

	"storesetup-backend/model"
	"storesetup-backend/pkg/assistant"
	"storesetup-backend/pkg/platform"
)

type fakeSessionStore struct {
	sessions map[string]*model.SetupSession
	updates  int
}

func newFakeSessionStore(sessions ...*model.SetupSession) *fakeSessionStore {
	s := &fakeSessionStore{sessions: map[string]*model.SetupSession{}}
	for _, sess := range sessions {
		s.sessions[sess.ID] = sess
	}
	return s
}

func (s *fakeSessionStore) Insert(sess *model.SetupSession) error {
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) GetByID(id string) (*model.SetupSession, error) {
	return s.sessions[id], nil
}

func (s *fakeSessionStore) GetInProgressByStoreID(storeID string) (*model.SetupSession, error) {
	for _, sess := range s.sessions {
		if sess.StoreID == storeID && sess.Status == model.SessionInProgress {
			return sess, nil
		}
	}
	return nil, nil
}

func (s *fakeSessionStore) UpdateProgress(sess *model.SetupSession) error {
	s.updates++
	s.sessions[sess.ID] = sess
	return nil
}

func (s *fakeSessionStore) UpdateLandingPage(id string, content string) error {
	if sess, present := s.sessions[id]; present {
		sess.LandingPage = &content
	}
	return nil
}

type fakeStoreRecords struct {
	stores map[string]*model.ConnectedStore
}

func newFakeStoreRecords(stores ...*model.ConnectedStore) *fakeStoreRecords {
	s := &fakeStoreRecords{stores: map[string]*model.ConnectedStore{}}
	for _, store := range stores {
		s.stores[store.ID] = store
	}
	return s
}

func (s *fakeStoreRecords) Insert(store *model.ConnectedStore) error {
	s.stores[store.ID] = store
	return nil
}

func (s *fakeStoreRecords) GetByID(id string) (*model.ConnectedStore, error) {
	return s.stores[id], nil
}

func (s *fakeStoreRecords) GetByMerchantID(merchantID string) (*model.ConnectedStore, error) {
	for _, store := range s.stores {
		if store.MerchantID == merchantID {
			return store, nil
		}
	}
	return nil, nil
}

func (s *fakeStoreRecords) GetByExternalID(platform, externalID string) (*model.ConnectedStore, error) {
	for _, store := range s.stores {
		if store.Platform == platform && store.ExternalStoreID == externalID {
			return store, nil
		}
	}
	return nil, nil
}

func (s *fakeStoreRecords) UpdateTokens(id, accessToken, refreshToken string) error {
	if store, present := s.stores[id]; present {
		store.AccessToken = accessToken
		store.RefreshToken = refreshToken
	}
	return nil
}

func (s *fakeStoreRecords) UpdateThemeID(id, themeID string) error {
	if store, present := s.stores[id]; present {
		store.ThemeID = &themeID
	}
	return nil
}

func (s *fakeStoreRecords) UpdateLogoURL(id, logoURL string) error {
	if store, present := s.stores[id]; present {
		store.LogoURL = &logoURL
	}
	return nil
}

type fakeMerchantStore struct {
	merchants map[string]*model.Merchant
}

func newFakeMerchantStore(merchants ...*model.Merchant) *fakeMerchantStore {
	s := &fakeMerchantStore{merchants: map[string]*model.Merchant{}}
	for _, m := range merchants {
		s.merchants[m.ID] = m
	}
	return s
}

func (s *fakeMerchantStore) Insert(m *model.Merchant) error {
	s.merchants[m.ID] = m
	return nil
}

func (s *fakeMerchantStore) GetByID(id string) (*model.Merchant, error) {
	return s.merchants[id], nil
}

type fakeMessageStore struct {
	messages []model.ChatMessage
}

func (s *fakeMessageStore) CreateMessage(msg *model.ChatMessage) error {
	s.messages = append(s.messages, *msg)
	return nil
}

func (s *fakeMessageStore) GetBySessionID(sessionID string) ([]model.ChatMessage, error) {
	var out []model.ChatMessage
	for _, m := range s.messages {
		if m.SessionID == sessionID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeCatalogStore struct {
	categories []model.StoreCategory
	products   []model.StoreProduct
	coupons    []model.Coupon
}

func (s *fakeCatalogStore) InsertCategory(c *model.StoreCategory) error {
	s.categories = append(s.categories, *c)
	return nil
}

func (s *fakeCatalogStore) InsertProduct(p *model.StoreProduct) error {
	s.products = append(s.products, *p)
	return nil
}

func (s *fakeCatalogStore) InsertCoupon(c *model.Coupon) error {
	s.coupons = append(s.coupons, *c)
	return nil
}

func (s *fakeCatalogStore) GetUnconfirmedProducts(storeID string) ([]model.StoreProduct, error) {
	var pending []model.StoreProduct
	for _, p := range s.products {
		if p.StoreID == storeID && !p.RemoteConfirmed {
			pending = append(pending, p)
		}
	}
	return pending, nil
}

type renameCall struct {
	id     string
	nameAr string
	nameEn string
}

// fakeCatalogClient records every remote call and can be told to fail
// specific deletes or product creates.
type fakeCatalogClient struct {
	remoteCategories []model.RemoteCategory
	listErr          error

	renameCalls   []renameCall
	deleteCalls   []string
	createBatches [][]model.ProposedCategory
	productCalls  []platform.ProductPayload

	failDeletes  map[string]bool
	failProducts map[string]bool // keyed by NameEn
}

func (c *fakeCatalogClient) ListCategories(ctx context.Context) ([]model.RemoteCategory, error) {
	return c.remoteCategories, c.listErr
}

func (c *fakeCatalogClient) CreateCategories(ctx context.Context, categories []model.ProposedCategory) platform.CallResult {
	c.createBatches = append(c.createBatches, categories)
	return platform.CallResult{Success: true}
}

func (c *fakeCatalogClient) UpdateCategoryName(ctx context.Context, id, nameAr, nameEn string) platform.CallResult {
	c.renameCalls = append(c.renameCalls, renameCall{id: id, nameAr: nameAr, nameEn: nameEn})
	return platform.CallResult{Success: true}
}

func (c *fakeCatalogClient) DeleteCategory(ctx context.Context, id string) platform.CallResult {
	c.deleteCalls = append(c.deleteCalls, id)
	if c.failDeletes[id] {
		return platform.CallResult{Success: false, Error: "remote delete failed"}
	}
	return platform.CallResult{Success: true}
}

func (c *fakeCatalogClient) CreateProduct(ctx context.Context, p platform.ProductPayload) platform.CreateResult {
	c.productCalls = append(c.productCalls, p)
	if c.failProducts[p.NameEn] {
		return platform.CreateResult{CallResult: platform.CallResult{Success: false, Error: "network error"}}
	}
	return platform.CreateResult{
		CallResult: platform.CallResult{Success: true},
		RemoteID:   fmt.Sprintf("remote-%d", len(c.productCalls)),
	}
}

type fakeGateway struct {
	lastRequest assistant.Request
	reply       *assistant.Reply
	err         error
}

func (g *fakeGateway) Generate(ctx context.Context, req assistant.Request) (*assistant.Reply, error) {
	g.lastRequest = req
	if g.err != nil {
		return nil, g.err
	}
	return g.reply, nil
}

func testFixtures() (*model.SetupSession, *model.ConnectedStore) {
	session := &model.SetupSession{
		ID:          "sess-1",
		StoreID:     "store-1",
		Status:      model.SessionInProgress,
		CurrentStep: model.StepBusiness,
		CreatedAt:   time.Now(),
		UpdatedAt:   time.Now(),
	}
	store := &model.ConnectedStore{
		ID:              "store-1",
		MerchantID:      "merchant-1",
		Platform:        "salla",
		ExternalStoreID: "ext-1",
		Name:            "Test Store",
		AccessToken:     "token",
		CreatedAt:       time.Now(),
	}
	return session, store
}

func clientFactory(c *fakeCatalogClient) CatalogClientFactory {
	return func(store *model.ConnectedStore) CatalogClient { return c }
}
