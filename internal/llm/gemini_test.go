package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func geminiStub(t *testing.T, text string) http.HandlerFunc {
	t.Helper()
	return func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, ":generateContent"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		resp := map[string]any{
			"candidates": []map[string]any{
				{"content": map[string]any{
					"role":  "model",
					"parts": []map[string]string{{"text": text}},
				}},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(resp))
	}
}

func TestGeminiClient_ParseTransaction(t *testing.T) {
	server := httptest.NewServer(geminiStub(t,
		`{"amount": 12, "category": "Food", "type": "Expense", "channel": "WeChat", "note": "lunch"}`))
	defer server.Close()

	client, err := NewClient(Config{Provider: "gemini", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	parsed, err := client.ParseTransaction(context.Background(), "12 for lunch")
	require.NoError(t, err)
	assert.Equal(t, "Food", parsed.Category)
	assert.Equal(t, TypeExpense, parsed.Type)
	assert.Equal(t, 12.0, parsed.Amount)
}

func TestGeminiClient_Advise(t *testing.T) {
	server := httptest.NewServer(geminiStub(t, "Plain text advice."))
	defer server.Close()

	client, err := NewClient(Config{Provider: "gemini", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	advice, err := client.Advise(context.Background(), "digest")
	require.NoError(t, err)
	assert.Equal(t, "Plain text advice.", advice)
}

func TestGeminiClient_NoCandidates(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates": []}`))
	}))
	defer server.Close()

	client, err := NewClient(Config{Provider: "gemini", APIKey: "test-key", BaseURL: server.URL})
	require.NoError(t, err)

	_, err = client.Advise(context.Background(), "digest")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no candidates")
}

func TestGeminiClient_Close(t *testing.T) {
	client, err := NewClient(Config{Provider: "gemini", APIKey: "test-key"})
	require.NoError(t, err)

	closer, ok := client.(interface{ Close() error })
	require.True(t, ok, "client should expose Close for teardown")
	require.NoError(t, closer.Close())
}
