package qdrant_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"uxo-chatbot/pkg/qdrant"
)

func TestQdrantClient(t *testing.T) {
	var (
		mu      sync.Mutex
		created = map[string]bool{"uxo_docs": true}
	)

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("api-key") != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		path := r.URL.Path

		switch {
		case r.Method == http.MethodGet && strings.HasPrefix(path, "/collections/"):
			name := strings.TrimPrefix(path, "/collections/")
			mu.Lock()
			ok := created[name]
			mu.Unlock()
			if !ok {
				w.WriteHeader(http.StatusNotFound)
				w.Write([]byte(`{"status":{"error":"Not found"}}`))
				return
			}
			w.Write([]byte(`{"result":{"status":"green","points_count":42}}`))

		case r.Method == http.MethodPut && strings.HasSuffix(path, "/points"):
			var req qdrant.UpsertPointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if r.URL.Query().Get("wait") != "true" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if len(req.Points) > 0 {
				if val, ok := req.Points[0].Payload["cause_500"]; ok && val == true {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
			}
			w.Write([]byte(`{"result":{"status":"completed"}}`))

		case r.Method == http.MethodPut && strings.HasPrefix(path, "/collections/"):
			var req qdrant.CreateCollectionRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Vectors.Size == 0 {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			mu.Lock()
			created[strings.TrimPrefix(path, "/collections/")] = true
			mu.Unlock()
			w.Write([]byte(`{"result":true}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/search"):
			var req qdrant.SearchRequest
			json.NewDecoder(r.Body).Decode(&req)
			if req.Limit == 999 {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{
				"result": [
					{"id": "7f1c2a4e-0000-5000-8000-000000000000", "score": 0.95, "payload": {"content": "Không chạm vào vật lạ"}}
				],
				"status": "ok"
			}`))

		case r.Method == http.MethodPost && strings.HasSuffix(path, "/points/delete"):
			var req qdrant.DeletePointsRequest
			json.NewDecoder(r.Body).Decode(&req)
			if len(req.Points) > 0 && req.Points[0] == "cause_500" {
				w.WriteHeader(http.StatusInternalServerError)
				return
			}
			w.Write([]byte(`{"result":{"status":"completed"}}`))

		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer ts.Close()

	client := qdrant.NewClient(ts.URL).WithAPIKey("secret")
	ctx := context.Background()

	t.Run("GetCollection", func(t *testing.T) {
		info, err := client.GetCollection(ctx, "uxo_docs")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if info.PointsCount != 42 {
			t.Errorf("expected 42 points, got %d", info.PointsCount)
		}
	})

	t.Run("GetCollection NotFound", func(t *testing.T) {
		_, err := client.GetCollection(ctx, "missing")
		if !errors.Is(err, qdrant.ErrCollectionNotFound) {
			t.Fatalf("expected ErrCollectionNotFound, got %v", err)
		}
	})

	t.Run("EnsureCollection creates once", func(t *testing.T) {
		req := qdrant.CreateCollectionRequest{
			Name:    "fresh",
			Vectors: qdrant.VectorConfig{Size: 1024, Distance: "Cosine"},
		}
		if err := client.EnsureCollection(ctx, req); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := client.GetCollection(ctx, "fresh"); err != nil {
			t.Fatalf("collection should exist after ensure: %v", err)
		}
		if err := client.EnsureCollection(ctx, req); err != nil {
			t.Fatalf("second ensure should be a no-op: %v", err)
		}
	})

	t.Run("UpsertPoints Success", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "uxo_docs", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"key": "val"}, Vector: []float32{0.1, 0.2}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("UpsertPoints Error", func(t *testing.T) {
		err := client.UpsertPoints(ctx, "uxo_docs", qdrant.UpsertPointsRequest{
			Points: []qdrant.Point{{ID: "123", Payload: map[string]interface{}{"cause_500": true}, Vector: []float32{0.1}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("SearchPoints Success", func(t *testing.T) {
		resp, err := client.SearchPoints(ctx, "uxo_docs", qdrant.SearchRequest{Limit: 3, WithPayload: true})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Result) != 1 || resp.Result[0].Payload["content"] != "Không chạm vào vật lạ" {
			t.Errorf("unexpected search results: %+v", resp)
		}
	})

	t.Run("SearchPoints Error", func(t *testing.T) {
		if _, err := client.SearchPoints(ctx, "uxo_docs", qdrant.SearchRequest{Limit: 999}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("DeletePoints", func(t *testing.T) {
		if err := client.DeletePoints(ctx, "uxo_docs", []string{"123"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if err := client.DeletePoints(ctx, "uxo_docs", []string{"cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Unauthorized", func(t *testing.T) {
		bare := qdrant.NewClient(ts.URL)
		if _, err := bare.SearchPoints(ctx, "uxo_docs", qdrant.SearchRequest{Limit: 1}); err == nil {
			t.Fatalf("expected error without api key")
		}
	})

	t.Run("Context Cancelation Error", func(t *testing.T) {
		cctx, cancel := context.WithCancel(ctx)
		cancel()
		if err := client.CreateCollection(cctx, qdrant.CreateCollectionRequest{Name: "test"}); err == nil {
			t.Errorf("expected error on canceled context")
		}
	})
}
