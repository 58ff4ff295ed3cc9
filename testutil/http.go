package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	openai "github.com/sashabaranov/go-openai"
)

// ChatStub fakes the OpenAI chat completions endpoint.
type ChatStub struct {
	Server *httptest.Server

	mu       sync.Mutex
	requests []openai.ChatCompletionRequest
}

// NewChatStub answers every completion with content, or with status if it is not 200.
// An empty content with a 200 status yields a reply with no choices.
func NewChatStub(t *testing.T, status int, content string) *ChatStub {
	t.Helper()
	stub := &ChatStub{}
	stub.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req openai.ChatCompletionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		stub.mu.Lock()
		stub.requests = append(stub.requests, req)
		stub.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if status != http.StatusOK {
			w.WriteHeader(status)
			json.NewEncoder(w).Encode(map[string]any{
				"error": map[string]any{"message": "stub failure", "type": "server_error"},
			})
			return
		}

		resp := openai.ChatCompletionResponse{ID: "chatcmpl-123", Object: "chat.completion", Model: req.Model}
		if content != "" {
			resp.Choices = []openai.ChatCompletionChoice{{
				Message:      openai.ChatCompletionMessage{Role: openai.ChatMessageRoleAssistant, Content: content},
				FinishReason: openai.FinishReasonStop,
			}}
		}
		json.NewEncoder(w).Encode(resp)
	}))
	t.Cleanup(stub.Server.Close)
	return stub
}

// BaseURL is what go-openai expects as ClientConfig.BaseURL.
func (s *ChatStub) BaseURL() string {
	return s.Server.URL + "/v1"
}

func (s *ChatStub) Requests() []openai.ChatCompletionRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]openai.ChatCompletionRequest(nil), s.requests...)
}

// NewFeedStub serves body with status for every request.
func NewFeedStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}
