package api

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockTransport is a mock implementation of Transport for testing.
// It uses testify/mock to provide flexible behavior configuration and
// method call tracking for assertions.
//
// Example usage:
//
//	transport := new(MockTransport)
//	transport.On("MarkRead", mock.Anything, "n1").Return(nil)
//
//	err := transport.MarkRead(ctx, "n1")
//	assert.NoError(t, err)
//	transport.AssertCalled(t, "MarkRead", mock.Anything, "n1")
type MockTransport struct {
	mock.Mock
}

var _ Transport = (*MockTransport)(nil)

// List returns a mocked page of the full notification list.
func (m *MockTransport) List(ctx context.Context, opts ListOptions) (ListResult, error) {
	args := m.Called(ctx, opts)
	return args.Get(0).(ListResult), args.Error(1)
}

// UnreadList returns a mocked unread view.
func (m *MockTransport) UnreadList(ctx context.Context) (UnreadResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(UnreadResult), args.Error(1)
}

// UnreadCount returns a mocked unread counter.
func (m *MockTransport) UnreadCount(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

// MarkRead returns a mocked confirmation error.
func (m *MockTransport) MarkRead(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MarkAllRead returns a mocked confirmation error.
func (m *MockTransport) MarkAllRead(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Delete returns a mocked confirmation error.
func (m *MockTransport) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
