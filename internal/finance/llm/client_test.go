package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCompleteParsesFirstChoice(t *testing.T) {
	var gotAuth string
	var gotReq completionRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "spend less on coffee"}},
			},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "sk-test", "gpt-4o-mini")
	reply, err := c.Complete(context.Background(), []Message{
		{Role: RoleSystem, Content: "you are a finance assistant"},
		{Role: RoleUser, Content: "spending trend?"},
	})
	require.NoError(t, err)
	require.Equal(t, "spend less on coffee", reply)
	require.Equal(t, "Bearer sk-test", gotAuth)
	require.Equal(t, "gpt-4o-mini", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]string{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.ErrorContains(t, err, "rate limited")
}

func TestCompleteWithoutAPIKey(t *testing.T) {
	c := NewHTTPClient("http://localhost:0", "", "gpt-4o-mini")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.ErrorIs(t, err, ErrRelayDisabled)
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "sk-test", "gpt-4o-mini")
	_, err := c.Complete(context.Background(), []Message{{Role: RoleUser, Content: "hi"}})
	require.ErrorIs(t, err, ErrEmptyCompletion)
}
