package llm

import (
	"context"
	"encoding/json"
	"sync"
)

// MockResponse is a canned reply.
type MockResponse struct {
	Content json.RawMessage
	Usage   Usage
	Err     error
}

// MockProvider replays canned responses in FIFO order and records every
// request. When the queue is empty it falls back to Respond, if set.
type MockProvider struct {
	// Respond builds a reply when no canned response is queued.
	Respond func(Request) MockResponse

	mu        sync.Mutex
	responses []MockResponse
	Calls     []Request
}

func NewMockProvider(responses ...MockResponse) *MockProvider {
	return &MockProvider{responses: responses}
}

func (m *MockProvider) Generate(_ context.Context, req Request) (*Response, error) {
	m.mu.Lock()
	m.Calls = append(m.Calls, req)
	var (
		resp MockResponse
		ok   bool
	)
	if len(m.responses) > 0 {
		resp, ok = m.responses[0], true
		m.responses = m.responses[1:]
	}
	respond := m.Respond
	m.mu.Unlock()

	if !ok {
		if respond == nil {
			return nil, &ErrProviderUnavailable{}
		}
		resp = respond(req)
	}
	if resp.Err != nil {
		return nil, resp.Err
	}
	return finish(req, resp.Content, resp.Usage, "mock", stopEnd)
}

func (m *MockProvider) ModelID() string {
	return "mock"
}

// AddResponse queues a canned response.
func (m *MockProvider) AddResponse(resp MockResponse) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses = append(m.responses, resp)
}

// CallCount returns the number of Generate calls so far.
func (m *MockProvider) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.Calls)
}
