package usecase

import (
	"fmt"
	"time"

	"storesetup-backend/model"
)

type SessionUsecase struct {
	sessionRepo SessionStore
	storeRepo   StoreRecords
	catalogRepo CatalogStore
}

func NewSessionUsecase(sessionRepo SessionStore, storeRepo StoreRecords, catalogRepo CatalogStore) *SessionUsecase {
	return &SessionUsecase{sessionRepo: sessionRepo, storeRepo: storeRepo, catalogRepo: catalogRepo}
}

// SessionView is the session plus the count of product pushes whose
// remote create never confirmed, so the client can show a retry banner.
type SessionView struct {
	*model.SetupSession
	PendingProducts int `json:"pendingProducts"`
}

// GetOrCreate returns the merchant's in-progress session, creating one
// lazily on first visit. Sessions are never hard-deleted; a finished
// one would transition to completed, never disappear.
func (u *SessionUsecase) GetOrCreate(merchantID string) (*SessionView, error) {
	store, err := u.storeRepo.GetByMerchantID(merchantID)
	if err != nil {
		return nil, err
	}
	if store == nil {
		return nil, fmt.Errorf("%w: no connected store", ErrNotFound)
	}

	session, err := u.sessionRepo.GetInProgressByStoreID(store.ID)
	if err != nil {
		return nil, err
	}
	if session == nil {
		now := time.Now()
		session = &model.SetupSession{
			ID:                   newID(),
			StoreID:              store.ID,
			Status:               model.SessionInProgress,
			CurrentStep:          model.StepBusiness,
			CompletionPercentage: 0,
			CreatedAt:            now,
			UpdatedAt:            now,
		}
		if err := u.sessionRepo.Insert(session); err != nil {
			return nil, err
		}
	}

	pending, err := u.catalogRepo.GetUnconfirmedProducts(store.ID)
	if err != nil {
		return nil, err
	}
	return &SessionView{SetupSession: session, PendingProducts: len(pending)}, nil
}

// authorizeSession resolves the session and its store, verifying the
// caller owns it. Shared by every confirm flow.
func authorizeSession(sessionRepo SessionStore, storeRepo StoreRecords, merchantID, sessionID string) (*model.SetupSession, *model.ConnectedStore, error) {
	if merchantID == "" {
		return nil, nil, ErrUnauthorized
	}
	if sessionID == "" {
		return nil, nil, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}
	session, err := sessionRepo.GetByID(sessionID)
	if err != nil {
		return nil, nil, err
	}
	if session == nil {
		return nil, nil, fmt.Errorf("%w: session %s", ErrNotFound, sessionID)
	}
	store, err := storeRepo.GetByID(session.StoreID)
	if err != nil {
		return nil, nil, err
	}
	if store == nil {
		return nil, nil, fmt.Errorf("%w: store %s", ErrNotFound, session.StoreID)
	}
	if store.MerchantID != merchantID {
		return nil, nil, ErrUnauthorized
	}
	return session, store, nil
}
