package store_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"banquetpro/internal/store"
)

func TestClient(t *testing.T) {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/v1/items", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		switch r.Method {
		case http.MethodGet:
			if r.URL.Query().Get("category") == "boom" {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte("store down"))
				return
			}
			json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "Tablecloth"}})
		case http.MethodPost:
			var body map[string]any
			json.NewDecoder(r.Body).Decode(&body)
			body["id"] = 42
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(body)
		}
	})

	mux.HandleFunc("/api/v1/items/9", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	mux.HandleFunc("/api/v1/items/1", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPut:
			json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "Renamed"})
		case http.MethodDelete:
			w.WriteHeader(http.StatusOK)
		}
	})

	ts := httptest.NewServer(mux)
	defer ts.Close()

	client := store.NewClient(ts.URL, "test-token")
	ctx := context.Background()

	t.Run("Get With Query", func(t *testing.T) {
		var items []struct {
			ID   int64  `json:"id"`
			Name string `json:"name"`
		}
		q := url.Values{}
		q.Set("category", "linen")
		if err := client.Get(ctx, "/api/v1/items", q, &items); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(items) != 1 || items[0].Name != "Tablecloth" {
			t.Errorf("unexpected items: %+v", items)
		}
	})

	t.Run("Post", func(t *testing.T) {
		var created struct {
			ID int64 `json:"id"`
		}
		err := client.Post(ctx, "/api/v1/items", map[string]string{"name": "Vase"}, &created)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != 42 {
			t.Errorf("expected id 42, got %d", created.ID)
		}
	})

	t.Run("Put", func(t *testing.T) {
		var updated struct {
			Name string `json:"name"`
		}
		err := client.Put(ctx, "/api/v1/items/1", map[string]string{"name": "Renamed"}, &updated)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Name != "Renamed" {
			t.Errorf("unexpected name %q", updated.Name)
		}
	})

	t.Run("Delete", func(t *testing.T) {
		if err := client.Delete(ctx, "/api/v1/items/1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("NotFound Sentinel", func(t *testing.T) {
		err := client.Get(ctx, "/api/v1/items/9", nil, &struct{}{})
		if !errors.Is(err, store.ErrNotFound) {
			t.Errorf("expected ErrNotFound, got %v", err)
		}
	})

	t.Run("APIError Carries Status And Body", func(t *testing.T) {
		q := url.Values{}
		q.Set("category", "boom")
		err := client.Get(ctx, "/api/v1/items", q, &struct{}{})

		var apiErr *store.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError || apiErr.Body != "store down" {
			t.Errorf("unexpected APIError: %+v", apiErr)
		}
	})
}
