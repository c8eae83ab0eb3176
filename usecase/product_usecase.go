package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"storesetup-backend/model"
	"storesetup-backend/pkg/platform"
)

// ProductUsecase pushes confirmed products to the platform. Single
// confirms are one call; bulk confirms iterate the merchant's selection
// sequentially, in selection order, so progress is meaningful per item.
// Failures are swallowed per item; the flow always reaches a confirmed
// state. The local mirror row records whether the remote call actually
// succeeded.
type ProductUsecase struct {
	sessionRepo SessionStore
	storeRepo   StoreRecords
	catalogRepo CatalogStore
	catalogFor  CatalogClientFactory
}

func NewProductUsecase(sessionRepo SessionStore, storeRepo StoreRecords, catalogRepo CatalogStore, catalogFor CatalogClientFactory) *ProductUsecase {
	return &ProductUsecase{
		sessionRepo: sessionRepo,
		storeRepo:   storeRepo,
		catalogRepo: catalogRepo,
		catalogFor:  catalogFor,
	}
}

type SingleProductResult struct {
	Product model.StoreProduct    `json:"product"`
	Remote  platform.CreateResult `json:"remote"`
	Session *model.SetupSession   `json:"session"`
}

func (u *ProductUsecase) ConfirmSingle(ctx context.Context, merchantID, sessionID string, p model.ProposedProduct, categoryID *string) (*SingleProductResult, error) {
	if p.NameAr == "" && p.NameEn == "" {
		return nil, fmt.Errorf("%w: product name is required", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}

	result := u.catalogFor(store).CreateProduct(ctx, platform.ProductPayload{
		NameAr:        p.NameAr,
		NameEn:        p.NameEn,
		Price:         p.Price,
		DescriptionAr: p.DescriptionAr,
		DescriptionEn: p.DescriptionEn,
		CategoryID:    categoryID,
	})
	if !result.Success {
		log.Printf("products: remote create for %q failed: %s", p.NameEn, result.Error)
	}

	record := model.StoreProduct{
		ID:              newID(),
		StoreID:         store.ID,
		NameAr:          p.NameAr,
		NameEn:          p.NameEn,
		Price:           p.Price,
		CategoryID:      categoryID,
		RemoteConfirmed: result.Success,
		CreatedAt:       time.Now(),
	}
	if result.RemoteID != "" {
		record.RemoteID = &result.RemoteID
	}
	if err := u.catalogRepo.InsertProduct(&record); err != nil {
		log.Printf("products: recording %q locally failed: %v", p.NameEn, err)
	}

	u.advance(session, model.ActionPreviewProduct, session.ConfirmedProducts+1)

	return &SingleProductResult{Product: record, Remote: result, Session: session}, nil
}

type BulkItemResult struct {
	Index  int    `json:"index"`
	NameAr string `json:"nameAr"`
	NameEn string `json:"nameEn"`
	Done   bool   `json:"done"`
	Error  string `json:"error,omitempty"`
}

type BulkResult struct {
	Items     []BulkItemResult    `json:"items"`
	Confirmed bool                `json:"confirmed"`
	Session   *model.SetupSession `json:"session"`
}

// ConfirmBulk pushes the selected products one at a time, in the order
// the merchant selected them. A failed item is marked not-done and the
// loop continues; the overall result is confirmed regardless.
func (u *ProductUsecase) ConfirmBulk(ctx context.Context, merchantID, sessionID string, products []model.ProposedProduct, categoryID *string) (*BulkResult, error) {
	if len(products) == 0 {
		return nil, fmt.Errorf("%w: no products selected", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}
	client := u.catalogFor(store)

	items := make([]BulkItemResult, 0, len(products))
	for i, p := range products {
		result := client.CreateProduct(ctx, platform.ProductPayload{
			NameAr:        p.NameAr,
			NameEn:        p.NameEn,
			Price:         p.Price,
			DescriptionAr: p.DescriptionAr,
			DescriptionEn: p.DescriptionEn,
			CategoryID:    categoryID,
		})
		item := BulkItemResult{Index: i, NameAr: p.NameAr, NameEn: p.NameEn, Done: result.Success}
		if !result.Success {
			item.Error = result.Error
			log.Printf("products: bulk item %d (%q) failed: %s", i, p.NameEn, result.Error)
		}
		items = append(items, item)

		record := model.StoreProduct{
			ID:              newID(),
			StoreID:         store.ID,
			NameAr:          p.NameAr,
			NameEn:          p.NameEn,
			Price:           p.Price,
			CategoryID:      categoryID,
			RemoteConfirmed: result.Success,
			CreatedAt:       time.Now(),
		}
		if result.RemoteID != "" {
			record.RemoteID = &result.RemoteID
		}
		if err := u.catalogRepo.InsertProduct(&record); err != nil {
			log.Printf("products: recording bulk item %d locally failed: %v", i, err)
		}
	}

	u.advance(session, model.ActionBulkProducts, session.ConfirmedProducts+len(products))

	return &BulkResult{Items: items, Confirmed: true, Session: session}, nil
}

func (u *ProductUsecase) advance(session *model.SetupSession, actionType model.ActionType, confirmedProducts int) {
	if ApplyConfirmation(session, actionType, confirmedProducts) {
		if err := u.sessionRepo.UpdateProgress(session); err != nil {
			log.Printf("products: persisting progress failed: %v", err)
		}
	}
}
