//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/ujwal-s-r/system-design/internal/domain/messages"
)

// MockMessageCipherService is a mock implementation of MessageCipherService
type MockMessageCipherService struct {
	mock.Mock
}

func (m *MockMessageCipherService) GenerateKey(ctx context.Context) (*messages.KeyMaterial, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.KeyMaterial), args.Error(1)
}

func (m *MockMessageCipherService) EncryptMessage(ctx context.Context, message, key string) (*messages.EncryptedMessage, error) {
	args := m.Called(ctx, message, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.EncryptedMessage), args.Error(1)
}

func (m *MockMessageCipherService) DecryptMessage(ctx context.Context, ciphertext, key string) (*messages.DecryptedMessage, error) {
	args := m.Called(ctx, ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*messages.DecryptedMessage), args.Error(1)
}
