package usecase

import (
	"context"
	"errors"
	"testing"

	"storesetup-backend/model"
)

type fakeUploader struct {
	url string
	err error
}

func (f *fakeUploader) UploadLogo(ctx context.Context, source, storeID string) (string, error) {
	return f.url, f.err
}

func newBrandingFixture(uploader LogoUploader) (*BrandingUsecase, *fakeStoreRecords, *fakeSessionStore, *fakeCatalogStore) {
	session, store := testFixtures()
	session.CurrentStep = model.StepCategories
	session.CompletionPercentage = 25
	sessions := newFakeSessionStore(session)
	stores := newFakeStoreRecords(store)
	catalog := &fakeCatalogStore{}
	return NewBrandingUsecase(sessions, stores, catalog, uploader), stores, sessions, catalog
}

func TestConfirmTheme_ForcesMarketingJump(t *testing.T) {
	u, stores, _, _ := newBrandingFixture(&fakeUploader{})

	session, err := u.ConfirmTheme(context.Background(), "merchant-1", "sess-1", "theme-42")
	if err != nil {
		t.Fatal(err)
	}
	if session.CurrentStep != model.StepMarketing || session.CompletionPercentage != 75 {
		t.Errorf("theme confirm must jump to marketing: %+v", session)
	}
	store, _ := stores.GetByID("store-1")
	if store.ThemeID == nil || *store.ThemeID != "theme-42" {
		t.Errorf("theme id not stored")
	}
}

func TestConfirmLogo_SetsPercentageAndURL(t *testing.T) {
	u, stores, _, _ := newBrandingFixture(&fakeUploader{url: "https://cdn.example/logo.png"})

	logoURL, session, err := u.ConfirmLogo(context.Background(), "merchant-1", "sess-1", "data:image/png;base64,AAA")
	if err != nil {
		t.Fatal(err)
	}
	if logoURL != "https://cdn.example/logo.png" {
		t.Errorf("logo url = %q", logoURL)
	}
	if session.CompletionPercentage != 88 {
		t.Errorf("percentage = %d, want 88", session.CompletionPercentage)
	}
	if session.CurrentStep != model.StepCategories {
		t.Errorf("logo confirm must not change the step")
	}
	store, _ := stores.GetByID("store-1")
	if store.LogoURL == nil {
		t.Errorf("logo url not stored")
	}
}

// Upload failures are swallowed: the confirmation still lands, with no
// stored URL.
func TestConfirmLogo_UploadFailureStillConfirms(t *testing.T) {
	u, stores, _, _ := newBrandingFixture(&fakeUploader{err: errors.New("cloud down")})

	logoURL, session, err := u.ConfirmLogo(context.Background(), "merchant-1", "sess-1", "data:image/png;base64,AAA")
	if err != nil {
		t.Fatalf("upload failure must not surface: %v", err)
	}
	if logoURL != "" {
		t.Errorf("expected empty url on failure")
	}
	if session.CompletionPercentage != 88 {
		t.Errorf("percentage = %d, want 88", session.CompletionPercentage)
	}
	store, _ := stores.GetByID("store-1")
	if store.LogoURL != nil {
		t.Errorf("failed upload must not store a URL")
	}
}

func TestConfirmLandingPage_StoresContent(t *testing.T) {
	u, _, sessions, _ := newBrandingFixture(&fakeUploader{})

	session, err := u.ConfirmLandingPage(context.Background(), "merchant-1", "sess-1", []byte(`{"hero":{"title":"Welcome"}}`))
	if err != nil {
		t.Fatal(err)
	}
	if session.CompletionPercentage != 95 {
		t.Errorf("percentage = %d, want 95", session.CompletionPercentage)
	}
	stored, _ := sessions.GetByID("sess-1")
	if stored.LandingPage == nil {
		t.Errorf("landing page content not persisted")
	}
}

func TestConfirmCoupon_RecordsWithoutProgress(t *testing.T) {
	u, _, sessions, catalog := newBrandingFixture(&fakeUploader{})

	coupon, err := u.ConfirmCoupon(context.Background(), "merchant-1", "sess-1", model.PreviewCouponData{
		Code:          "WELCOME10",
		DiscountType:  "percentage",
		DiscountValue: 10,
	})
	if err != nil {
		t.Fatal(err)
	}
	if coupon.Code != "WELCOME10" {
		t.Errorf("coupon = %+v", coupon)
	}
	if len(catalog.coupons) != 1 {
		t.Errorf("coupon not recorded")
	}
	session, _ := sessions.GetByID("sess-1")
	if session.CompletionPercentage != 25 {
		t.Errorf("coupon confirm must not move progress, pct=%d", session.CompletionPercentage)
	}
}
