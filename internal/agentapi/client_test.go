package agentapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	ai "github.com/spetersoncode/agentchat"
)

func TestClientChat(t *testing.T) {
	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, chatPath, r.URL.Path)
			assert.Equal(t, "test-key", r.Header.Get("apikey"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.Empty(t, r.URL.Query().Get("apikey"), "key must not leak into the URL")

			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "helpdesk", req["model"])
			assert.Equal(t, false, req["stream"])

			// Optional fields that were not supplied must be absent, not null.
			assert.NotContains(t, req, "sessionId")
			assert.NotContains(t, req, "maxTokens")
			assert.NotContains(t, req, "temperature")

			msgs, ok := req["messages"].([]any)
			require.True(t, ok)
			require.Len(t, msgs, 2)
			first := msgs[0].(map[string]any)
			assert.Equal(t, "system", first["role"])
			assert.Equal(t, "be brief", first["content"])
			// Only the role/content projection goes on the wire.
			assert.NotContains(t, first, "id")

			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "ok"}},
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-key")
		resp, err := c.Chat(context.Background(), []ai.Message{
			{ID: ai.GenerateMessageID(), Role: ai.RoleSystem, Content: "be brief"},
			{Role: ai.RoleUser, Content: "hi"},
		}, ai.WithModel("helpdesk"))

		require.NoError(t, err)
		assert.Equal(t, "ok", resp.Content)
	})

	t.Run("optional fields sent when supplied", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var req map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
			assert.Equal(t, "sess-42", req["sessionId"])
			assert.Equal(t, float64(256), req["maxTokens"])
			assert.Equal(t, 0.5, req["temperature"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"choices": []map[string]any{
					{"message": map[string]any{"content": "ok"}},
				},
			})
		}))
		defer server.Close()

		c := New(server.URL, "test-key")
		_, err := c.Chat(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithModel("helpdesk"),
			ai.WithSession("sess-42"),
			ai.WithMaxTokens(256),
			ai.WithTemperature(0.5),
		)
		require.NoError(t, err)
	})

	t.Run("status codes map to error categories", func(t *testing.T) {
		tests := []struct {
			name      string
			status    int
			transient bool
			permanent bool
			userInput bool
		}{
			{"unauthorized", http.StatusUnauthorized, false, true, false},
			{"forbidden", http.StatusForbidden, false, true, false},
			{"bad request", http.StatusBadRequest, false, false, true},
			{"rate limited", http.StatusTooManyRequests, true, false, false},
			{"server error", http.StatusInternalServerError, true, false, false},
			{"not found", http.StatusNotFound, false, true, false},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					http.Error(w, `{"message":"nope"}`, tt.status)
				}))
				defer server.Close()

				c := New(server.URL, "test-key")
				_, err := c.Chat(context.Background(),
					[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
					ai.WithModel("helpdesk"))

				require.Error(t, err)
				assert.Equal(t, tt.transient, ai.IsTransient(err))
				assert.Equal(t, tt.permanent, ai.IsPermanent(err))
				assert.Equal(t, tt.userInput, ai.IsUserInput(err))
				assert.Equal(t, tt.status, ai.StatusCodeOf(err))
				assert.Contains(t, err.Error(), "nope")
			})
		}
	})

	t.Run("malformed response body", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte("not json"))
		}))
		defer server.Close()

		c := New(server.URL, "test-key")
		_, err := c.Chat(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithModel("helpdesk"))

		require.Error(t, err)
		assert.True(t, ai.IsPermanent(err))
	})

	t.Run("empty choices", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
		}))
		defer server.Close()

		c := New(server.URL, "test-key")
		_, err := c.Chat(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithModel("helpdesk"))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "no choices")
	})

	t.Run("transport failure", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		server.Close() // refuse connections

		c := New(server.URL, "test-key")
		_, err := c.Chat(context.Background(),
			[]ai.Message{{Role: ai.RoleUser, Content: "hi"}},
			ai.WithModel("helpdesk"))

		require.Error(t, err)
		assert.True(t, ai.IsTransient(err))
	})

	t.Run("empty messages rejected", func(t *testing.T) {
		c := New("http://localhost", "key")
		_, err := c.Chat(context.Background(), nil, ai.WithModel("m"))
		assert.ErrorIs(t, err, ai.ErrEmptyInput)
	})
}

func TestErrorMessage(t *testing.T) {
	t.Run("prefers JSON message envelope", func(t *testing.T) {
		assert.Equal(t, "boom", errorMessage([]byte(`{"message":"boom"}`)))
	})

	t.Run("falls back to raw text", func(t *testing.T) {
		assert.Equal(t, "plain failure", errorMessage([]byte("plain failure\n")))
	})

	t.Run("empty body yields empty string", func(t *testing.T) {
		assert.Empty(t, errorMessage(nil))
	})
}
