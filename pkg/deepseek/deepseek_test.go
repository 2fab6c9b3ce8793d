package deepseek_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"focus-dashboard/pkg/deepseek"
)

func TestClient_GenerateContent(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error":{"message":"invalid api key","type":"auth"}}`))
			return
		}

		var req deepseek.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}

		if req.ResponseFormat == nil || req.ResponseFormat.Type != deepseek.ResponseFormatJSON {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"error":{"message":"json mode expected"}}`))
			return
		}

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{
			"id": "cmpl-1",
			"model": "` + req.Model + `",
			"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"title\":\"standup\"}"}, "finish_reason": "stop"}],
			"usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
		}`))
	}))
	defer ts.Close()

	t.Run("Success Flow", func(t *testing.T) {
		client, err := deepseek.New(deepseek.Config{APIKey: "test-key", BaseURL: ts.URL})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		resp, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages:       []deepseek.Message{{Role: "user", Content: "standup at 10"}},
			ResponseFormat: &deepseek.ResponseFormat{Type: deepseek.ResponseFormatJSON},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if resp.Model != deepseek.DefaultModel {
			t.Errorf("expected default model to be sent, got %s", resp.Model)
		}
		if resp.Choices[0].Message.Content != `{"title":"standup"}` {
			t.Errorf("unexpected content: %s", resp.Choices[0].Message.Content)
		}
	})

	t.Run("Auth Failure", func(t *testing.T) {
		client, _ := deepseek.New(deepseek.Config{APIKey: "wrong", BaseURL: ts.URL})

		_, err := client.GenerateContent(context.Background(), &deepseek.Request{
			Messages: []deepseek.Message{{Role: "user", Content: "x"}},
		})
		var apiErr *deepseek.APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected APIError, got %v", err)
		}
		if apiErr.StatusCode != http.StatusUnauthorized || apiErr.Message != "invalid api key" {
			t.Errorf("unexpected api error: %+v", apiErr)
		}
	})

	t.Run("Missing Key", func(t *testing.T) {
		if _, err := deepseek.New(deepseek.Config{}); err == nil {
			t.Fatal("expected error for missing API key")
		}
	})
}
