package gemini_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"focus-dashboard/pkg/gemini"
)

type wireRequest struct {
	SystemInstruction *struct {
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"systemInstruction"`
	Contents []struct {
		Role  string `json:"role"`
		Parts []struct {
			Text string `json:"text"`
		} `json:"parts"`
	} `json:"contents"`
	GenerationConfig *struct {
		Temperature      float64                `json:"temperature"`
		ResponseMIMEType string                 `json:"responseMimeType"`
		ResponseSchema   map[string]interface{} `json:"responseSchema"`
	} `json:"generationConfig"`
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Content-Type") != "application/json" {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if r.URL.Query().Get("key") != "test-api-key" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		if !strings.HasSuffix(r.URL.Path, "/models/gemini-test:generateContent") {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		var req wireRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		text := req.Contents[0].Parts[0].Text
		switch text {
		case "cause_500":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":{"message":"boom"}}`))
			return
		case "cause_garbage":
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`not json`))
			return
		case "echo_config":
			if req.GenerationConfig == nil || req.GenerationConfig.ResponseMIMEType != gemini.MIMETypeJSON || req.GenerationConfig.ResponseSchema == nil {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
			if req.SystemInstruction == nil || req.SystemInstruction.Parts[0].Text != "system" {
				w.WriteHeader(http.StatusBadRequest)
				return
			}
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"candidates": [
				{
					"content": {
						"parts": [
							{ "text": "{\"title\":\"디자인 미팅\"}" }
						],
						"role": "model"
					},
					"finishReason": "STOP"
				}
			],
			"usageMetadata": {"promptTokenCount": 12, "candidatesTokenCount": 8, "totalTokenCount": 20}
		}`))
	}))
}

func TestNew(t *testing.T) {
	_, err := gemini.New(gemini.Config{})
	if !errors.Is(err, gemini.ErrMissingAPIKey) {
		t.Fatalf("expected ErrMissingAPIKey, got %v", err)
	}

	client, err := gemini.New(gemini.Config{APIKey: "k"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if client.Model() != gemini.DefaultModel {
		t.Errorf("expected default model, got %s", client.Model())
	}
}

func TestGenerateContent(t *testing.T) {
	ts := newTestServer(t)
	defer ts.Close()

	client, err := gemini.New(gemini.Config{APIKey: "test-api-key", Model: "gemini-test", APIURL: ts.URL})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("Success Flow", func(t *testing.T) {
		resp, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "Hello world"}}}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(resp.Content.Parts) != 1 {
			t.Fatalf("expected 1 part, got %d", len(resp.Content.Parts))
		}
		if resp.Content.Parts[0].Text != `{"title":"디자인 미팅"}` {
			t.Errorf("unexpected content response: %s", resp.Content.Parts[0].Text)
		}
		if resp.Usage.TotalTokens != 20 {
			t.Errorf("expected 20 total tokens, got %d", resp.Usage.TotalTokens)
		}
		if resp.FinishReason != "STOP" {
			t.Errorf("unexpected finish reason %q", resp.FinishReason)
		}
	})

	t.Run("Structured Output Config", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			SystemInstruction: &gemini.Content{Parts: []gemini.Part{{Text: "system"}}},
			Messages:          []gemini.Content{{Role: "user", Parts: []gemini.Part{{Text: "echo_config"}}}},
			Temperature:       0.1,
			ResponseMIMEType:  gemini.MIMETypeJSON,
			ResponseSchema:    map[string]interface{}{"type": "OBJECT"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("Server Error Flow", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_500"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", apiErr.StatusCode)
		}
	})

	t.Run("Undecodable Body", func(t *testing.T) {
		_, err := client.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "cause_garbage"}}}},
		})
		if !errors.Is(err, gemini.ErrDecodeResponse) {
			t.Fatalf("expected ErrDecodeResponse, got %v", err)
		}
	})

	t.Run("Wrong Key", func(t *testing.T) {
		c2, _ := gemini.New(gemini.Config{APIKey: "wrong", Model: "gemini-test", APIURL: ts.URL})
		_, err := c2.GenerateContent(context.Background(), &gemini.Request{
			Messages: []gemini.Content{{Parts: []gemini.Part{{Text: "hi"}}}},
		})
		var apiErr *gemini.APIError
		if !errors.As(err, &apiErr) || apiErr.StatusCode != http.StatusUnauthorized {
			t.Fatalf("expected 401 APIError, got %v", err)
		}
	})
}
