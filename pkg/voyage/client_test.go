package voyage_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uxo-chatbot/pkg/voyage"
)

func TestVoyageClient(t *testing.T) {
	var lastInputType string

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-voyage-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"detail":"Provided API key is invalid."}`))
			return
		}

		var req voyage.EmbedRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		lastInputType = req.InputType

		if len(req.Input) > 0 && req.Input[0] == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		if len(req.Input) > 0 && req.Input[0] == "short_reply" {
			w.Write([]byte(`{"data": []}`))
			return
		}

		// Out-of-order indices must be placed back by position.
		w.Write([]byte(`{
			"data": [
				{"embedding": [0.4, 0.5, 0.6], "index": 1},
				{"embedding": [0.1, 0.2, 0.3], "index": 0}
			]
		}`))
	}))
	defer ts.Close()

	client, err := voyage.New(voyage.Config{APIKey: "test-voyage-key", BaseURL: ts.URL, Model: "custom-model"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		emb, err := client.EmbedWithInputType(context.Background(), []string{"bom mìn", "vật nổ"}, voyage.InputTypeDocument)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(emb) != 2 || len(emb[0]) != 3 {
			t.Fatalf("expected 2 embeds with 3 dims, got len=%d", len(emb))
		}
		if emb[0][0] != 0.1 || emb[1][0] != 0.4 {
			t.Errorf("embeddings not ordered by index: %v", emb)
		}
		if lastInputType != voyage.InputTypeDocument {
			t.Errorf("expected input_type document, got %q", lastInputType)
		}
	})

	t.Run("Count Mismatch", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"short_reply"}); err == nil {
			t.Fatalf("expected error when the API returns fewer embeddings")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), []string{"cause_500"}); err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Empty Input", func(t *testing.T) {
		if _, err := client.Embed(context.Background(), nil); err == nil {
			t.Fatalf("expected error on empty input")
		}
	})

	t.Run("Unauthorized Error Flow", func(t *testing.T) {
		badClient, _ := voyage.New(voyage.Config{APIKey: "bad-key", BaseURL: ts.URL})
		_, err := badClient.Embed(context.Background(), []string{"Hello world"})
		if err == nil || !strings.Contains(err.Error(), "401") || !strings.Contains(err.Error(), "invalid") {
			t.Fatalf("expected 401 error, got %v", err)
		}
		var apiErr *voyage.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Errorf("expected *voyage.APIError, got %#v", err)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := voyage.New(voyage.Config{}); err == nil {
			t.Fatalf("expected error without api key")
		}
	})
}
