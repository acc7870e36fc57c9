package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockGateway struct {
	mock.Mock
}

func (m *MockGateway) Summarize(ctx context.Context, text string, apiKey string) (string, error) {
	args := m.Called(ctx, text, apiKey)
	return args.String(0), args.Error(1)
}
