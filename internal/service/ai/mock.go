package ai

import (
	"context"
	"errors"
	"sync"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/schema"
)

// MockResponse is a canned completion for MockChatModel.
type MockResponse struct {
	Content string
	Err     error
}

// MockCall records one request seen by MockChatModel.
type MockCall struct {
	Messages []*schema.Message
	Options  *model.Options
}

// MockChatModel is a test double returning responses in order. After the
// list is exhausted it keeps returning the last one.
type MockChatModel struct {
	mu        sync.Mutex
	responses []MockResponse
	calls     []MockCall
	idx       int
}

var _ model.BaseChatModel = (*MockChatModel)(nil)

// NewMockChatModel creates a mock that answers with the given responses.
func NewMockChatModel(responses ...MockResponse) *MockChatModel {
	return &MockChatModel{responses: responses}
}

// Generate returns the next canned response and records the request.
func (m *MockChatModel) Generate(ctx context.Context, input []*schema.Message, opts ...model.Option) (*schema.Message, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.calls = append(m.calls, MockCall{
		Messages: input,
		Options:  model.GetCommonOptions(&model.Options{}, opts...),
	})

	if len(m.responses) == 0 {
		return schema.AssistantMessage("", nil), nil
	}

	r := m.responses[m.idx]
	if m.idx < len(m.responses)-1 {
		m.idx++
	}
	if r.Err != nil {
		return nil, r.Err
	}
	return schema.AssistantMessage(r.Content, nil), nil
}

// Stream is not used by the generator.
func (m *MockChatModel) Stream(_ context.Context, _ []*schema.Message, _ ...model.Option) (*schema.StreamReader[*schema.Message], error) {
	return nil, errors.New("mock chat model does not stream")
}

// Calls returns a copy of all recorded requests.
func (m *MockChatModel) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()

	out := make([]MockCall, len(m.calls))
	copy(out, m.calls)
	return out
}
