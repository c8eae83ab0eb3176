package usecase

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"storesetup-backend/model"
)

// BrandingUsecase handles the marketing-phase confirmations: theme,
// logo, landing page, coupon.
type BrandingUsecase struct {
	sessionRepo SessionStore
	storeRepo   StoreRecords
	catalogRepo CatalogStore
	uploader    LogoUploader
}

func NewBrandingUsecase(sessionRepo SessionStore, storeRepo StoreRecords, catalogRepo CatalogStore, uploader LogoUploader) *BrandingUsecase {
	return &BrandingUsecase{
		sessionRepo: sessionRepo,
		storeRepo:   storeRepo,
		catalogRepo: catalogRepo,
		uploader:    uploader,
	}
}

func (u *BrandingUsecase) ConfirmTheme(ctx context.Context, merchantID, sessionID, themeID string) (*model.SetupSession, error) {
	if themeID == "" {
		return nil, fmt.Errorf("%w: theme id is required", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := u.storeRepo.UpdateThemeID(store.ID, themeID); err != nil {
		log.Printf("branding: persisting theme failed: %v", err)
	}
	u.advance(session, model.ActionSuggestThemes)
	return session, nil
}

// ConfirmLogo uploads the image and stores the hosted URL. An upload
// failure is logged and the confirmation still goes through; the
// returned URL is empty in that case.
func (u *BrandingUsecase) ConfirmLogo(ctx context.Context, merchantID, sessionID, source string) (string, *model.SetupSession, error) {
	if source == "" {
		return "", nil, fmt.Errorf("%w: logo image is required", ErrInvalidInput)
	}
	session, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return "", nil, err
	}

	logoURL := ""
	if url, uploadErr := u.uploader.UploadLogo(ctx, source, store.ID); uploadErr == nil {
		logoURL = url
		if err := u.storeRepo.UpdateLogoURL(store.ID, logoURL); err != nil {
			log.Printf("branding: persisting logo URL failed: %v", err)
		}
	} else {
		log.Printf("branding: logo upload failed: %v", uploadErr)
	}

	u.advance(session, model.ActionGenerateLogo)
	return logoURL, session, nil
}

func (u *BrandingUsecase) ConfirmLandingPage(ctx context.Context, merchantID, sessionID string, content json.RawMessage) (*model.SetupSession, error) {
	if len(content) == 0 {
		return nil, fmt.Errorf("%w: landing page content is required", ErrInvalidInput)
	}
	session, _, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}
	if err := u.sessionRepo.UpdateLandingPage(session.ID, string(content)); err != nil {
		log.Printf("branding: persisting landing page failed: %v", err)
	}
	u.advance(session, model.ActionGenerateLandingPage)
	return session, nil
}

// ConfirmCoupon records the coupon locally. Coupons do not move the
// setup step.
func (u *BrandingUsecase) ConfirmCoupon(ctx context.Context, merchantID, sessionID string, data model.PreviewCouponData) (*model.Coupon, error) {
	if data.Code == "" {
		return nil, fmt.Errorf("%w: coupon code is required", ErrInvalidInput)
	}
	_, store, err := authorizeSession(u.sessionRepo, u.storeRepo, merchantID, sessionID)
	if err != nil {
		return nil, err
	}

	coupon := &model.Coupon{
		ID:            newID(),
		StoreID:       store.ID,
		Code:          data.Code,
		DiscountType:  data.DiscountType,
		DiscountValue: data.DiscountValue,
		MinOrderValue: data.MinOrderValue,
		CreatedAt:     time.Now(),
	}
	if data.ExpiryDate != "" {
		expiry := data.ExpiryDate
		coupon.ExpiryDate = &expiry
	}
	if err := u.catalogRepo.InsertCoupon(coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

func (u *BrandingUsecase) advance(session *model.SetupSession, actionType model.ActionType) {
	if ApplyConfirmation(session, actionType, session.ConfirmedProducts) {
		if err := u.sessionRepo.UpdateProgress(session); err != nil {
			log.Printf("branding: persisting progress failed: %v", err)
		}
	}
}
