package e2e_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"
)

// LineAPICall is one request received by the LINE API stand-in.
type LineAPICall struct {
	Method  string
	Path    string
	Headers map[string]string
	Body    string
	Time    time.Time
}

// pushBody is the decoded body of a push call.
type pushBody struct {
	To       string           `json:"to"`
	Messages []map[string]any `json:"messages"`
}

// mockLineAPI records push and profile calls and answers like the LINE Messaging API.
type mockLineAPI struct {
	server   *httptest.Server
	received []LineAPICall
	mu       sync.RWMutex

	failPushTo map[string]bool
}

func newMockLineAPI() *mockLineAPI {
	m := &mockLineAPI{
		failPushTo: make(map[string]bool),
	}

	m.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(r.Body)
		if err != nil {
			http.Error(w, "Failed to read body", http.StatusBadRequest)
			return
		}

		headers := make(map[string]string)
		for key, values := range r.Header {
			if len(values) > 0 {
				headers[key] = values[0]
			}
		}

		m.mu.Lock()
		m.received = append(m.received, LineAPICall{
			Method:  r.Method,
			Path:    r.URL.Path,
			Headers: headers,
			Body:    string(body),
			Time:    time.Now(),
		})
		m.mu.Unlock()

		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/v2/bot/message/push":
			var req pushBody
			if err := json.Unmarshal(body, &req); err != nil {
				http.Error(w, `{"message":"The request body has 1 error(s)"}`, http.StatusBadRequest)
				return
			}
			m.mu.RLock()
			fail := m.failPushTo[req.To]
			m.mu.RUnlock()
			if fail {
				http.Error(w, `{"message":"Failed to send messages"}`, http.StatusBadRequest)
				return
			}
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{}`))
		case r.Method == http.MethodGet && strings.HasPrefix(r.URL.Path, "/v2/bot/profile/"):
			userID := strings.TrimPrefix(r.URL.Path, "/v2/bot/profile/")
			w.Header().Set("Content-Type", "application/json")
			_ = json.NewEncoder(w).Encode(map[string]string{
				"userId":      userID,
				"displayName": "Taro " + userID,
			})
		default:
			http.NotFound(w, r)
		}
	}))
	return m
}

func (m *mockLineAPI) URL() string {
	return m.server.URL
}

// FailPushTo makes every push to userID answer 400.
func (m *mockLineAPI) FailPushTo(userID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failPushTo[userID] = true
}

func (m *mockLineAPI) GetReceivedCalls() []LineAPICall {
	m.mu.RLock()
	defer m.mu.RUnlock()

	result := make([]LineAPICall, len(m.received))
	copy(result, m.received)
	return result
}

// Pushes returns the decoded push calls in the order they arrived.
func (m *mockLineAPI) Pushes() []pushBody {
	var pushes []pushBody
	for _, call := range m.GetReceivedCalls() {
		if call.Path != "/v2/bot/message/push" {
			continue
		}
		var p pushBody
		if err := json.Unmarshal([]byte(call.Body), &p); err == nil {
			pushes = append(pushes, p)
		}
	}
	return pushes
}

func (m *mockLineAPI) Close() {
	m.server.Close()
}
