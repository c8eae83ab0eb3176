package usecase

import (
	"context"
	"fmt"
	"log"
	"time"

	"storesetup-backend/model"
)

// CategoryUsecase reconciles a confirmed suggest_categories action
// against the live remote catalog: renames for kept-but-edited items,
// deletes for removed items, one batch create for the remaining new
// suggestions. Every sub-step is independent and best-effort; there is
// no transaction and no rollback.
type CategoryUsecase struct {
	sessionRepo SessionStore
	storeRepo   StoreRecords
	catalogRepo CatalogStore
	catalogFor  CatalogClientFactory
}

func NewCategoryUsecase(sessionRepo SessionStore, storeRepo StoreRecords, catalogRepo CatalogStore, catalogFor CatalogClientFactory) *CategoryUsecase {
	return &CategoryUsecase{
		sessionRepo: sessionRepo,
		storeRepo:   storeRepo,
		catalogRepo: catalogRepo,
		catalogFor:  catalogFor,
	}
}

type ConfirmCategoriesInput struct {
	SessionID string                   `json:"sessionId"`
	Existing  []model.CategoryEdit     `json:"existing"`
	New       []model.ProposedCategory `json:"new"`
}

type CategoryItemResult struct {
	Operation string `json:"operation"` // rename, delete, create
	ID        string `json:"id,omitempty"`
	Name      string `json:"name,omitempty"`
	Success   bool   `json:"success"`
	Error     string `json:"error,omitempty"`
}

// CategorySummary reports counts computed from the dispositions the
// merchant confirmed, not from verified remote state: a silently failed
// call still counts. Items carries the per-call truth.
type CategorySummary struct {
	Kept    int                  `json:"kept"`
	Added   int                  `json:"added"`
	Removed int                  `json:"removed"`
	Summary string               `json:"summary"`
	Items   []CategoryItemResult `json:"items"`
	Session *model.SetupSession  `json:"session"`
}

func (u *CategoryUsecase) Confirm(ctx context.Context, merchantID string, in ConfirmCategoriesInput) (*CategorySummary, error) {
	if len(in.Existing)+len(in.New) == 0 {
		return nil, fmt.Errorf("%w: nothing to confirm", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, in.SessionID)
	if err != nil {
		return nil, err
	}
	client := u.catalogFor(store)

	var items []CategoryItemResult

	// 1. Renames: items not marked for removal whose effective name
	// differs from the fetched one. Untouched keeps cause no call.
	for _, edit := range in.Existing {
		if edit.Disposition == model.DispositionRemove {
			continue
		}
		if !edit.Renamed() {
			continue
		}
		ar, en := edit.EffectiveNames()
		result := client.UpdateCategoryName(ctx, edit.Category.ID, ar, en)
		items = append(items, CategoryItemResult{
			Operation: "rename",
			ID:        edit.Category.ID,
			Name:      en,
			Success:   result.Success,
			Error:     result.Error,
		})
	}

	// 2. Deletes. A failure here never blocks other items.
	for _, edit := range in.Existing {
		if edit.Disposition != model.DispositionRemove {
			continue
		}
		result := client.DeleteCategory(ctx, edit.Category.ID)
		items = append(items, CategoryItemResult{
			Operation: "delete",
			ID:        edit.Category.ID,
			Name:      edit.Category.NameEn,
			Success:   result.Success,
			Error:     result.Error,
		})
	}

	// 3. One batch create for whatever new suggestions survived review.
	if len(in.New) > 0 {
		result := client.CreateCategories(ctx, in.New)
		for _, cat := range in.New {
			items = append(items, CategoryItemResult{
				Operation: "create",
				Name:      cat.NameEn,
				Success:   result.Success,
				Error:     result.Error,
			})
			record := &model.StoreCategory{
				ID:              newID(),
				StoreID:         store.ID,
				NameAr:          cat.NameAr,
				NameEn:          cat.NameEn,
				RemoteConfirmed: result.Success,
				CreatedAt:       time.Now(),
			}
			if err := u.catalogRepo.InsertCategory(record); err != nil {
				log.Printf("categories: recording %s locally failed: %v", cat.NameEn, err)
			}
		}
	}

	kept, removed := 0, 0
	for _, edit := range in.Existing {
		if edit.Disposition == model.DispositionRemove {
			removed++
		} else {
			kept++
		}
	}
	added := len(in.New)

	if ApplyConfirmation(session, model.ActionSuggestCategories, session.ConfirmedProducts) {
		if err := u.sessionRepo.UpdateProgress(session); err != nil {
			log.Printf("categories: persisting progress failed: %v", err)
		}
	}

	return &CategorySummary{
		Kept:    kept,
		Added:   added,
		Removed: removed,
		Summary: fmt.Sprintf("%d kept · %d new · %d removed", kept, added, removed),
		Items:   items,
		Session: session,
	}, nil
}
