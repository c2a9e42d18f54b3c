package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/JuanQuenga/Storefront/internal/domain"
	"github.com/JuanQuenga/Storefront/internal/shopify"
	"github.com/JuanQuenga/Storefront/internal/toolcall"
	apperrors "github.com/JuanQuenga/Storefront/pkg/errors"
)

// fakeUpstream serves a canned GraphQL data payload and records the last
// request body for assertions.
type fakeUpstream struct {
	data        string
	status      int
	lastRequest shopify.GraphQLRequest
	calls       int
}

func (f *fakeUpstream) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		f.calls++
		_ = json.NewDecoder(r.Body).Decode(&f.lastRequest)
		if f.status != 0 && f.status != http.StatusOK {
			w.WriteHeader(f.status)
			w.Write([]byte(`{"errors":[{"message":"boom"}]}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":` + f.data + `}`))
	}
}

func newTestCatalog(t *testing.T, f *fakeUpstream) (Catalog, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(f.handler())
	t.Cleanup(srv.Close)
	client := shopify.NewClientWithEndpoint(srv.URL, zap.NewNop())
	return NewCatalogServiceWithClient(client, zap.NewNop()), srv
}

const twoProductsData = `{"products":{
	"pageInfo":{"hasNextPage":true,"endCursor":"cur_2"},
	"edges":[
		{"node":{"id":"gid://shopify/Product/1","title":"Basic Tee","handle":"basic-tee",
			"availableForSale":true,
			"priceRange":{"minVariantPrice":{"amount":"19.99","currencyCode":"USD"}},
			"images":{"edges":[{"node":{"url":"https://cdn/img1.jpg","altText":"tee"}}]},
			"variants":{"edges":[{"node":{"id":"gid://shopify/ProductVariant/11","title":"S",
				"availableForSale":true,"quantityAvailable":9,
				"price":{"amount":"19.99","currencyCode":"USD"}}}]}}},
		{"node":{"id":"gid://shopify/Product/2","title":"V-Neck Tee","handle":"v-neck-tee",
			"availableForSale":false,
			"priceRange":{"minVariantPrice":{"amount":"24.99","currencyCode":"USD"}},
			"images":{"edges":[]},
			"variants":{"edges":[]}}}
	]}}`

func TestSearchProducts_MapsResult(t *testing.T) {
	f := &fakeUpstream{data: twoProductsData}
	catalog, _ := newTestCatalog(t, f)

	result, err := catalog.SearchProducts(context.Background(), toolcall.SearchArgs{Query: "t-shirt", Limit: 5})
	if err != nil {
		t.Fatal(err)
	}
	if result.Pagination.TotalCount != 2 {
		t.Fatalf("expected totalCount 2, got %d", result.Pagination.TotalCount)
	}
	if !result.Pagination.HasNextPage || result.Pagination.EndCursor != "cur_2" {
		t.Fatalf("pagination must mirror upstream pageInfo: %+v", result.Pagination)
	}
	if result.Products[0].Image == nil || result.Products[0].Image.URL != "https://cdn/img1.jpg" {
		t.Fatalf("first image not projected: %+v", result.Products[0])
	}
	if result.Products[1].Image != nil {
		t.Fatal("product without images must have nil image")
	}
	if f.lastRequest.Variables["query"] != "t-shirt" || f.lastRequest.Variables["first"] != float64(5) {
		t.Fatalf("unexpected upstream variables: %v", f.lastRequest.Variables)
	}
	if f.calls != 1 {
		t.Fatalf("expected exactly one upstream attempt, got %d", f.calls)
	}
}

func TestSearchProducts_UpstreamFailure(t *testing.T) {
	f := &fakeUpstream{status: http.StatusBadGateway}
	catalog, _ := newTestCatalog(t, f)

	_, err := catalog.SearchProducts(context.Background(), toolcall.SearchArgs{Query: "x", Limit: 5})
	var upstreamErr *apperrors.ErrUpstream
	if !errors.As(err, &upstreamErr) {
		t.Fatalf("expected ErrUpstream, got %v", err)
	}
	if upstreamErr.Status != http.StatusBadGateway {
		t.Fatalf("expected upstream status carried, got %d", upstreamErr.Status)
	}
	if f.calls != 1 {
		t.Fatalf("failures must not be retried, got %d attempts", f.calls)
	}
}

func TestGetProduct_NullNodeIsNotFound(t *testing.T) {
	f := &fakeUpstream{data: `{"node":null}`}
	catalog, _ := newTestCatalog(t, f)

	_, err := catalog.GetProduct(context.Background(), "doesnotexist")
	var notFoundErr *apperrors.ErrNotFound
	if !errors.As(err, &notFoundErr) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if f.lastRequest.Variables["id"] != "gid://shopify/Product/doesnotexist" {
		t.Fatalf("bare id not normalized: %v", f.lastRequest.Variables)
	}
}

func TestCheckInventory_SummaryBuckets(t *testing.T) {
	f := &fakeUpstream{data: `{"nodes":[
		{"id":"gid://shopify/ProductVariant/1","title":"S","availableForSale":true,"quantityAvailable":20,
			"price":{"amount":"10.00","currencyCode":"USD"},"product":{"id":"p1","title":"Tee","handle":"tee"}},
		{"id":"gid://shopify/ProductVariant/2","title":"M","availableForSale":true,"quantityAvailable":3,
			"price":{"amount":"10.00","currencyCode":"USD"},"product":{"id":"p1","title":"Tee","handle":"tee"}},
		{"id":"gid://shopify/ProductVariant/3","title":"L","availableForSale":false,"quantityAvailable":0,
			"price":{"amount":"10.00","currencyCode":"USD"},"product":{"id":"p1","title":"Tee","handle":"tee"}},
		null
	]}`}
	catalog, _ := newTestCatalog(t, f)

	report, err := catalog.CheckInventory(context.Background(), []string{"1", "2", "3", "4"})
	if err != nil {
		t.Fatal(err)
	}
	s := report.Summary
	if s.TotalVariants != 4 || s.InStock != 1 || s.LowStock != 1 || s.OutOfStock != 2 {
		t.Fatalf("unexpected summary: %+v", s)
	}
	if report.Inventory[1].Status != domain.StockLowStock {
		t.Fatalf("quantity 3 must be low stock, got %s", report.Inventory[1].Status)
	}
	ids, ok := f.lastRequest.Variables["ids"].([]interface{})
	if !ok || len(ids) != 4 || ids[0] != "gid://shopify/ProductVariant/1" {
		t.Fatalf("variant ids not normalized: %v", f.lastRequest.Variables["ids"])
	}
}

func TestListCollections_IncludeProductsSwitchesQuery(t *testing.T) {
	f := &fakeUpstream{data: `{"collections":{
		"pageInfo":{"hasNextPage":false,"endCursor":""},
		"edges":[{"node":{"id":"gid://shopify/Collection/1","title":"Sale","handle":"sale",
			"products":{"edges":[{"node":{"id":"p1","title":"Tee","handle":"tee"}}]}}}]}}`}
	catalog, _ := newTestCatalog(t, f)

	list, err := catalog.ListCollections(context.Background(), 20, "", true)
	if err != nil {
		t.Fatal(err)
	}
	if len(list.Collections) != 1 || len(list.Collections[0].Products) != 1 {
		t.Fatalf("products not projected: %+v", list.Collections)
	}
	if !strings.Contains(f.lastRequest.Query, "products(first: 5)") {
		t.Fatal("include_products must select the products query")
	}

	_, err = catalog.ListCollections(context.Background(), 20, "", false)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(f.lastRequest.Query, "products(first: 5)") {
		t.Fatal("plain listing must not fetch products")
	}
}

func TestSummarizeSearch(t *testing.T) {
	result := &domain.SearchResult{
		Products: []domain.Product{
			{Title: "Basic Tee", AvailableForSale: true, Price: domain.Money{Amount: "19.99", CurrencyCode: "USD"}},
			{Title: "V-Neck Tee", AvailableForSale: false, Price: domain.Money{Amount: "24.99", CurrencyCode: "USD"}},
		},
		Pagination: domain.Pagination{HasNextPage: true, TotalCount: 2},
	}
	text := SummarizeSearch(result, "t-shirt")
	for _, want := range []string{"Found 2 products", "1. Basic Tee - 19.99 USD", "(sold out)", "More results"} {
		if !strings.Contains(text, want) {
			t.Fatalf("summary missing %q:\n%s", want, text)
		}
	}

	empty := SummarizeSearch(&domain.SearchResult{}, "nothing")
	if !strings.Contains(empty, "No products found") {
		t.Fatalf("unexpected empty summary: %s", empty)
	}
}
