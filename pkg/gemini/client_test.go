package gemini_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"multilanguage-agent/pkg/gemini"
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
}

func TestGemini_GenerateContent(t *testing.T) {
	var captured wireRequest

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if err := json.NewDecoder(r.Body).Decode(&captured); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if captured.Contents[0].Parts[0].Text == "cause_500" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{"content": {"parts": [{"text": "Guten Tag!"}], "role": "model"}}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 3, "totalTokenCount": 15}
		}`))
	}))
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "Du musst nur auf Deutsch antworten."}}},
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hallo"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Content.Parts[0].Text != "Guten Tag!" {
			t.Errorf("unexpected content response: %s", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 15 {
			t.Errorf("expected 15 total tokens, got %d", resp.Usage.TotalTokens)
		}
		if captured.SystemInstruction == nil || captured.SystemInstruction.Parts[0].Text != "Du musst nur auf Deutsch antworten." {
			t.Errorf("system instruction was not sent: %+v", captured.SystemInstruction)
		}
	})

	t.Run("Assistant Role Is Mapped To Model", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{
				{Role: "user", Parts: []gemini.Part{{Text: "Hi"}}},
				{Role: "assistant", Parts: []gemini.Part{{Text: "Hello"}}},
				{Role: "user", Parts: []gemini.Part{{Text: "again"}}},
			},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if captured.Contents[1].Role != "model" {
			t.Errorf("expected role model, got %s", captured.Contents[1].Role)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		if err == nil {
			t.Fatalf("expected error from 500 response")
		}
	})

	t.Run("Model Default", func(t *testing.T) {
		if client.Model() != gemini.DefaultModel {
			t.Errorf("expected default model %s, got %s", gemini.DefaultModel, client.Model())
		}
	})
}

func TestGemini_New_RequiresAPIKey(t *testing.T) {
	if _, err := gemini.New(gemini.Config{}); err == nil {
		t.Fatalf("expected error for missing API key")
	}
}
