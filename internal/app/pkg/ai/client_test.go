package ai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatSuccess(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req ChatRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "how much water should I drink", req.Message)
		require.Len(t, req.History, 1)
		assert.Equal(t, "user", req.History[0].Role)

		json.NewEncoder(w).Encode(map[string]string{"response": "about two liters"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	answer, err := client.Chat(context.Background(), ChatRequest{
		Message: "how much water should I drink",
		History: []Message{{Role: "user", Content: "hi"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "about two liters", answer)
}

func TestChatUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestChatEmptyResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{"response": ""})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.Error(t, err)
}

func TestChatBadJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	_, err := client.Chat(context.Background(), ChatRequest{Message: "hi"})
	assert.Error(t, err)
}

func TestAnalyzeImagePath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/analyze-image-url", r.URL.Path)

		var req ImageRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "http://files/bucket/x.png", req.ImageURL)

		json.NewEncoder(w).Encode(map[string]string{"response": "looks normal"})
	}))
	defer srv.Close()

	client := NewHTTPClient(srv.URL, time.Second)
	answer, err := client.AnalyzeImage(context.Background(), ImageRequest{
		Message:  "what does this show",
		ImageURL: "http://files/bucket/x.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "looks normal", answer)
}
