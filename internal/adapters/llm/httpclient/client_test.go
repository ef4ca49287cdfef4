package httpclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gxcuit/vibe-translate/internal/ports"
)

func params() ports.TranslateParams {
	return ports.TranslateParams{
		Model:        "test-model",
		Temperature:  0.3,
		MaxTokens:    1024,
		SystemPrompt: "translate things",
		UserPrompt:   "Text: hello",
	}
}

func TestTranslateOpenAI(t *testing.T) {
	var gotPath, gotAuth string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" bonjour "}}]}`))
	}))
	defer srv.Close()

	c := New(TypeOpenAI, "sk-test", srv.URL, "test-model")
	res, err := c.Translate(context.Background(), params())
	require.NoError(t, err)
	assert.Equal(t, "bonjour", res.Translation)

	assert.Equal(t, "/v1/chat/completions", gotPath)
	assert.Equal(t, "Bearer sk-test", gotAuth)
	assert.Equal(t, "test-model", gotBody["model"])
	assert.Equal(t, 0.3, gotBody["temperature"])
	assert.Equal(t, float64(1024), gotBody["max_tokens"])
	msgs, ok := gotBody["messages"].([]any)
	require.True(t, ok)
	require.Len(t, msgs, 2)
	assert.Equal(t, "system", msgs[0].(map[string]any)["role"])
	assert.Equal(t, "user", msgs[1].(map[string]any)["role"])
}

func TestTranslateOpenAIBaseAlreadyV1(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer srv.Close()

	c := New(TypeOpenAI, "sk-test", srv.URL+"/v1", "test-model")
	_, err := c.Translate(context.Background(), params())
	require.NoError(t, err)
	assert.Equal(t, "/v1/chat/completions", gotPath)
}

func TestTranslateGemini(t *testing.T) {
	var gotPath, gotKey string
	var gotBody map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"hola"}]}}]}`))
	}))
	defer srv.Close()

	c := New(TypeGemini, "g-key", srv.URL, "gemini-test")
	res, err := c.Translate(context.Background(), params())
	require.NoError(t, err)
	assert.Equal(t, "hola", res.Translation)

	assert.Equal(t, "/v1beta/models/gemini-test:generateContent", gotPath)
	assert.Equal(t, "g-key", gotKey)
	gc, ok := gotBody["generationConfig"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, 0.3, gc["temperature"])
	assert.Equal(t, float64(1024), gc["maxOutputTokens"])
	assert.Contains(t, gotBody, "systemInstruction")
	assert.Contains(t, gotBody, "contents")
}

func TestTranslateErrorStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":{"message":"bad key"}}`))
	}))
	defer srv.Close()

	c := New(TypeOpenAI, "sk-bad", srv.URL, "test-model")
	_, err := c.Translate(context.Background(), params())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "openai translate")
	assert.Contains(t, err.Error(), "bad key")
}

func TestTranslateMissingToken(t *testing.T) {
	c := New(TypeOpenAI, "", "http://localhost:1", "m")
	_, err := c.Translate(context.Background(), params())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing api token")
}

func TestTranslateUnsupportedType(t *testing.T) {
	c := New("ollama", "k", "http://localhost:1", "m")
	_, err := c.Translate(context.Background(), params())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestListModels(t *testing.T) {
	t.Run("openai", func(t *testing.T) {
		var gotPath string
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotPath = r.URL.Path
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"data":[{"id":"gpt-a"},{"id":"gpt-b"}]}`))
		}))
		defer srv.Close()

		c := New(TypeOpenAI, "sk", srv.URL, "")
		models, err := c.ListModels(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "/v1/models", gotPath)
		require.Len(t, models, 2)
		assert.Equal(t, "gpt-a", models[0].Name)
	})

	t.Run("gemini strips models prefix", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1beta/models", r.URL.Path)
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"models":[{"name":"models/gemini-test","displayName":"Gemini Test"}]}`))
		}))
		defer srv.Close()

		c := New(TypeGemini, "k", srv.URL, "")
		models, err := c.ListModels(context.Background())
		require.NoError(t, err)
		require.Len(t, models, 1)
		assert.Equal(t, "gemini-test", models[0].Name)
		assert.Equal(t, "Gemini Test", models[0].Description)
	})
}
