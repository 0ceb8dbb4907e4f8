package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func newCatalogTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/products", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("category") == "Electronics" {
			w.Write([]byte(`[{"id":"3","name":"Sonic Pro Wireless","price":"$89.99","rating":4.6,"image":"","category":"Electronics"}]`))
			return
		}
		w.Write([]byte(`[
			{"id":"1","name":"Marble Desk Set","price":"$45.00","rating":4.8,"image":"","category":"Desk Accessories"},
			{"id":"2","name":"Abstract Bronze Form","price":"$120.00","rating":5,"image":"","category":"Decor"}
		]`))
	})
	mux.HandleFunc("/products/search", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") == "" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"id":"1","name":"Marble Desk Set","price":"$45.00","rating":4.8,"image":"","category":"Desk Accessories"}]`))
	})
	mux.HandleFunc("/products/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/products/1" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"1","name":"Marble Desk Set","price":"$45.00","rating":4.8,"image":"","category":"Desk Accessories"}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestClientFetchProducts(t *testing.T) {
	srv := newCatalogTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	products, err := c.FetchProducts(context.Background(), "")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("products = %d, want 2", len(products))
	}
	if products[0].Price.Cents() != 4500 {
		t.Fatalf("price cents = %d, want 4500", products[0].Price.Cents())
	}
}

func TestClientFetchProductsWithCategory(t *testing.T) {
	srv := newCatalogTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	products, err := c.FetchProducts(context.Background(), "Electronics")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "3" {
		t.Fatalf("products = %+v, want only product 3", products)
	}
}

func TestClientFetchProductByID(t *testing.T) {
	srv := newCatalogTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	p, err := c.FetchProductByID(context.Background(), "1")
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if p.Name != "Marble Desk Set" || p.Price.String() != "$45.00" {
		t.Fatalf("product = %+v", p)
	}

	if _, err := c.FetchProductByID(context.Background(), "999"); !errors.Is(err, ErrRemoteNotFound) {
		t.Fatalf("error = %v, want ErrRemoteNotFound", err)
	}
}

func TestClientSearchProducts(t *testing.T) {
	srv := newCatalogTestServer(t)
	c := NewClient(ClientConfig{BaseURL: srv.URL})

	products, err := c.SearchProducts(context.Background(), "marble")
	if err != nil {
		t.Fatalf("search failed: %v", err)
	}
	if len(products) != 1 || products[0].ID != "1" {
		t.Fatalf("products = %+v, want only product 1", products)
	}

	if _, err := c.SearchProducts(context.Background(), ""); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
}

func TestClientWithoutBaseURL(t *testing.T) {
	c := NewClient(ClientConfig{})
	if _, err := c.FetchProducts(context.Background(), ""); !errors.Is(err, ErrFetchFailed) {
		t.Fatalf("error = %v, want ErrFetchFailed", err)
	}
}
