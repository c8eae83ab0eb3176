package platform

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"storesetup-backend/model"
)

type recordedRequest struct {
	method string
	path   string
	header http.Header
	body   string
}

func newTestClient(handler http.HandlerFunc) (*Client, *[]recordedRequest, *httptest.Server) {
	requests := &[]recordedRequest{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		*requests = append(*requests, recordedRequest{
			method: r.Method,
			path:   r.URL.Path,
			header: r.Header.Clone(),
			body:   string(body),
		})
		handler(w, r)
	}))
	client := NewClient(Config{
		BaseURL:     srv.URL,
		AccessToken: "tok-123",
		HTTPClient:  srv.Client(),
	})
	return client, requests, srv
}

func TestListCategories_SendsBearerAndNormalizes(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":[{"id":1,"name":{"ar":"رجالي","en":"Men"}},{"name":"no id, dropped"}]}`))
	})
	defer srv.Close()

	cats, err := client.ListCategories(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(cats) != 1 {
		t.Fatalf("categories = %d", len(cats))
	}
	if cats[0] != (model.RemoteCategory{ID: "1", NameAr: "رجالي", NameEn: "Men"}) {
		t.Errorf("category = %+v", cats[0])
	}
	req := (*requests)[0]
	if req.method != http.MethodGet || req.path != "/categories" {
		t.Errorf("request = %s %s", req.method, req.path)
	}
	if got := req.header.Get("Authorization"); got != "Bearer tok-123" {
		t.Errorf("authorization = %q", got)
	}
}

func TestCreateCategories_OneBatchCall(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	})
	defer srv.Close()

	res := client.CreateCategories(context.Background(), []model.ProposedCategory{
		{NameAr: "نسائي", NameEn: "Women"},
		{NameAr: "أطفال", NameEn: "Kids"},
	})
	if !res.Success {
		t.Fatalf("create failed: %s", res.Error)
	}
	if len(*requests) != 1 {
		t.Fatalf("expected one batch call, got %d", len(*requests))
	}
	req := (*requests)[0]
	if req.method != http.MethodPost {
		t.Errorf("method = %s", req.method)
	}
	if got := req.header.Get("Content-Type"); got != "application/json" {
		t.Errorf("content type = %q", got)
	}
	want := `{"categories":[{"name":{"ar":"نسائي","en":"Women"}},{"name":{"ar":"أطفال","en":"Kids"}}]}`
	if req.body != want {
		t.Errorf("body = %s", req.body)
	}
}

func TestUpdateCategoryName_FormEncodedFields(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	res := client.UpdateCategoryName(context.Background(), "c-9", "ملابس", "Clothing")
	if !res.Success {
		t.Fatalf("update failed: %s", res.Error)
	}
	req := (*requests)[0]
	if req.method != http.MethodPut || req.path != "/categories/c-9" {
		t.Errorf("request = %s %s", req.method, req.path)
	}
	if got := req.header.Get("Content-Type"); got != "application/x-www-form-urlencoded" {
		t.Errorf("content type = %q", got)
	}
	vals, err := url.ParseQuery(req.body)
	if err != nil {
		t.Fatal(err)
	}
	if got := vals.Get("name[ar]"); got != "ملابس" {
		t.Errorf("name[ar] = %q", got)
	}
	if got := vals.Get("name[en]"); got != "Clothing" {
		t.Errorf("name[en] = %q", got)
	}
	// description fields ride along empty but must be present
	for _, key := range []string{"description[ar]", "description[en]"} {
		if _, present := vals[key]; !present {
			t.Errorf("missing form field %s", key)
		}
		if got := vals.Get(key); got != "" {
			t.Errorf("%s = %q, want empty", key, got)
		}
	}
}

func TestDeleteCategory_PrimarySucceeds(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	defer srv.Close()

	res := client.DeleteCategory(context.Background(), "c-1")
	if !res.Success {
		t.Fatalf("delete failed: %s", res.Error)
	}
	if len(*requests) != 1 {
		t.Errorf("fallback should not fire after a successful delete, calls = %d", len(*requests))
	}
	req := (*requests)[0]
	if req.method != http.MethodDelete || req.path != "/categories/c-1" {
		t.Errorf("request = %s %s", req.method, req.path)
	}
}

func TestDeleteCategory_FallbackAfterPrimaryFailure(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		w.WriteHeader(http.StatusOK)
	})
	defer srv.Close()

	res := client.DeleteCategory(context.Background(), "c-2")
	if !res.Success {
		t.Fatalf("delete should succeed via fallback: %s", res.Error)
	}
	if len(*requests) != 2 {
		t.Fatalf("expected two attempts, got %d", len(*requests))
	}
	fallback := (*requests)[1]
	if fallback.method != http.MethodPost || fallback.path != "/categories/delete" {
		t.Errorf("fallback request = %s %s", fallback.method, fallback.path)
	}
	vals, err := url.ParseQuery(fallback.body)
	if err != nil {
		t.Fatal(err)
	}
	if vals.Get("action") != "delete" || vals.Get("category_id") != "c-2" {
		t.Errorf("fallback form = %q", fallback.body)
	}
}

func TestDeleteCategory_BothAttemptsFail(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})
	defer srv.Close()

	res := client.DeleteCategory(context.Background(), "c-3")
	if res.Success {
		t.Error("delete should fail when both attempts fail")
	}
	if res.Error == "" {
		t.Error("failure should carry an error message")
	}
	if len(*requests) != 2 {
		t.Errorf("expected two attempts, got %d", len(*requests))
	}
}

func TestCreateProduct_ExtractsRemoteID(t *testing.T) {
	client, requests, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"data":{"id":555}}`))
	})
	defer srv.Close()

	catID := "31"
	res := client.CreateProduct(context.Background(), ProductPayload{
		NameAr:     "حذاء جلد",
		NameEn:     "Leather Shoe",
		Price:      120,
		CategoryID: &catID,
	})
	if !res.Success {
		t.Fatalf("create failed: %s", res.Error)
	}
	if res.RemoteID != "555" {
		t.Errorf("remote id = %q", res.RemoteID)
	}
	req := (*requests)[0]
	if req.method != http.MethodPost || req.path != "/products" {
		t.Errorf("request = %s %s", req.method, req.path)
	}
}

func TestCreateProduct_RemoteFailure(t *testing.T) {
	client, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"price required"}`))
	})
	defer srv.Close()

	res := client.CreateProduct(context.Background(), ProductPayload{NameEn: "Broken"})
	if res.Success {
		t.Error("create should report failure")
	}
	if res.Error == "" {
		t.Error("failure should carry the response detail")
	}
}

func TestListProducts_Pagination(t *testing.T) {
	client, _, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("page") != "2" {
			t.Errorf("page query = %q", r.URL.Query().Get("page"))
		}
		w.Write([]byte(`{"products":[{"id":1,"name":"A"}]}`))
	})
	defer srv.Close()

	products, err := client.ListProducts(context.Background(), 2)
	if err != nil {
		t.Fatal(err)
	}
	if len(products) != 1 {
		t.Errorf("products = %d", len(products))
	}
}
