package usecase

import (
	"context"
	"errors"
	"testing"

	"storesetup-backend/model"
)

func newProductFixture() (*ProductUsecase, *fakeCatalogClient, *fakeSessionStore, *fakeCatalogStore) {
	session, store := testFixtures()
	session.CurrentStep = model.StepCategories
	session.CompletionPercentage = 25
	sessions := newFakeSessionStore(session)
	stores := newFakeStoreRecords(store)
	catalog := &fakeCatalogStore{}
	client := &fakeCatalogClient{}
	u := NewProductUsecase(sessions, stores, catalog, clientFactory(client))
	return u, client, sessions, catalog
}

func bulkProducts(names ...string) []model.ProposedProduct {
	products := make([]model.ProposedProduct, 0, len(names))
	for _, n := range names {
		products = append(products, model.ProposedProduct{NameAr: "منتج", NameEn: n, Price: 10})
	}
	return products
}

func TestConfirmSingle_PushesAndRecords(t *testing.T) {
	u, client, _, catalog := newProductFixture()
	categoryID := "7"

	result, err := u.ConfirmSingle(context.Background(), "merchant-1", "sess-1",
		model.ProposedProduct{NameAr: "فستان", NameEn: "Dress", Price: 120}, &categoryID)
	if err != nil {
		t.Fatal(err)
	}
	if len(client.productCalls) != 1 {
		t.Fatalf("expected one create call, got %d", len(client.productCalls))
	}
	if client.productCalls[0].CategoryID == nil || *client.productCalls[0].CategoryID != "7" {
		t.Errorf("category id not attached")
	}
	if !result.Remote.Success {
		t.Errorf("remote result not surfaced")
	}
	if len(catalog.products) != 1 || !catalog.products[0].RemoteConfirmed {
		t.Errorf("mirror row missing or unconfirmed: %+v", catalog.products)
	}
	if result.Session.CurrentStep != model.StepProducts || result.Session.CompletionPercentage != 50 {
		t.Errorf("session not advanced: %+v", result.Session)
	}
}

// A failed remote create still confirms locally; the mirror row records
// the gap.
func TestConfirmSingle_RemoteFailureStillConfirms(t *testing.T) {
	u, client, _, catalog := newProductFixture()
	client.failProducts = map[string]bool{"Dress": true}

	result, err := u.ConfirmSingle(context.Background(), "merchant-1", "sess-1",
		model.ProposedProduct{NameAr: "فستان", NameEn: "Dress", Price: 120}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Remote.Success {
		t.Errorf("remote result should carry the failure")
	}
	if len(catalog.products) != 1 || catalog.products[0].RemoteConfirmed {
		t.Errorf("failed push must be recorded unconfirmed: %+v", catalog.products)
	}
}

func TestConfirmBulk_PartialFailure(t *testing.T) {
	u, client, _, _ := newProductFixture()
	client.failProducts = map[string]bool{"Item3": true}

	result, err := u.ConfirmBulk(context.Background(), "merchant-1", "sess-1",
		bulkProducts("Item1", "Item2", "Item3", "Item4", "Item5"), nil)
	if err != nil {
		t.Fatal(err)
	}

	if len(client.productCalls) != 5 {
		t.Fatalf("all five items must be attempted, got %d", len(client.productCalls))
	}
	for i, item := range result.Items {
		wantDone := i != 2
		if item.Done != wantDone {
			t.Errorf("item %d done=%v, want %v", i, item.Done, wantDone)
		}
	}
	if result.Items[2].Error == "" {
		t.Errorf("failed item carries no error")
	}
	if !result.Confirmed {
		t.Errorf("bulk flow must reach the confirmed state regardless")
	}
}

func TestConfirmBulk_PreservesSelectionOrder(t *testing.T) {
	u, client, _, _ := newProductFixture()

	_, err := u.ConfirmBulk(context.Background(), "merchant-1", "sess-1",
		bulkProducts("C", "A", "B"), nil)
	if err != nil {
		t.Fatal(err)
	}
	got := []string{client.productCalls[0].NameEn, client.productCalls[1].NameEn, client.productCalls[2].NameEn}
	want := []string{"C", "A", "B"}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("push order %v, want %v", got, want)
		}
	}
}

func TestConfirmBulk_ThreeProductsForceMarketing(t *testing.T) {
	u, _, _, _ := newProductFixture()

	result, err := u.ConfirmBulk(context.Background(), "merchant-1", "sess-1",
		bulkProducts("Item1", "Item2", "Item3"), nil)
	if err != nil {
		t.Fatal(err)
	}
	if result.Session.CurrentStep != model.StepMarketing || result.Session.CompletionPercentage != 75 {
		t.Errorf("three products must force marketing: %+v", result.Session)
	}
	if result.Session.ConfirmedProducts != 3 {
		t.Errorf("confirmed products = %d", result.Session.ConfirmedProducts)
	}
}

func TestConfirmBulk_EmptySelectionRejected(t *testing.T) {
	u, _, _, _ := newProductFixture()

	_, err := u.ConfirmBulk(context.Background(), "merchant-1", "sess-1", nil, nil)
	if !errors.Is(err, ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}
