package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"uxo-chatbot/pkg/gemini"
)

type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"system_instruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		ResponseMIMEType string `json:"responseMimeType"`
	} `json:"generationConfig"`
}

func TestGemini_GenerateContent(t *testing.T) {
	var got wireRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("x-goog-api-key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		got = wireRequest{}
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := got.Contents[len(got.Contents)-1].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			return
		case "no_candidates":
			w.Write([]byte(`{"candidates": []}`))
			return
		}

		w.Write([]byte(`{
			"candidates": [
				{
					"content": {"parts": [{"text": "Bom mìn là "}, {"text": "vật nổ."}], "role": "model"},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 5, "totalTokenCount": 17}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: "Bạn là trợ lý.",
			Messages: []gemini.Content{
				{Role: "user", Text: "Xin chào"},
				{Role: "assistant", Text: "Chào bạn"},
				{Role: "user", Text: "Bom mìn là gì?"},
			},
			JSONOutput: true,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Text != "Bom mìn là vật nổ." {
			t.Errorf("unexpected text: %q", resp.Text)
		}
		if resp.Usage.TotalTokens != 17 || resp.Usage.InputTokens != 12 {
			t.Errorf("unexpected usage: %+v", resp.Usage)
		}
		if got.SystemInstruction == nil || got.SystemInstruction.Parts[0].Text != "Bạn là trợ lý." {
			t.Errorf("system instruction not sent")
		}
		if got.Contents[1].Role != gemini.RoleModel {
			t.Errorf("assistant role should map to model, got %q", got.Contents[1].Role)
		}
		if got.GenerationConfig == nil || got.GenerationConfig.ResponseMIMEType != "application/json" {
			t.Errorf("json output not requested")
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Text: "cause_500"}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusInternalServerError || !apiErr.Retryable() {
			t.Errorf("expected retryable APIError, got %#v", err)
		}
	})

	t.Run("Empty Candidates", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Text: "no_candidates"}},
		})
		if err == nil {
			t.Fatalf("expected error on empty candidates")
		}
	})

	t.Run("No Messages", func(t *testing.T) {
		if _, err := client.GenerateContent(context.Background(), &gemini.Request{}); err == nil {
			t.Fatalf("expected validation error")
		}
	})

	t.Run("Config Validation", func(t *testing.T) {
		if _, err := gemini.New(gemini.Config{}); err == nil {
			t.Fatalf("expected error without api key")
		}
		c, err := gemini.New(gemini.Config{APIKey: "k"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if c.Model() != gemini.DefaultModel {
			t.Errorf("expected default model, got %s", c.Model())
		}
	})
}
