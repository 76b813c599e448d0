//go:build unit
// +build unit

package v1

import (
	"context"
	"io"

	"github.com/MGTheTrain/text-vault/internal/domain/crypto"
	"github.com/MGTheTrain/text-vault/internal/domain/keys"

	"github.com/stretchr/testify/mock"
)

// MockTextSignService is a mock implementation of TextSignService
type MockTextSignService struct {
	mock.Mock
}

func (m *MockTextSignService) Sign(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error) {
	args := m.Called(ctx, input, key, alg)
	return args.String(0), args.Error(1)
}

func (m *MockTextSignService) Verify(ctx context.Context, input, key io.Reader, signature string, alg crypto.Algorithm) (bool, error) {
	args := m.Called(ctx, input, key, signature, alg)
	return args.Bool(0), args.Error(1)
}

// MockTextCipherService is a mock implementation of TextCipherService
type MockTextCipherService struct {
	mock.Mock
}

func (m *MockTextCipherService) Encrypt(ctx context.Context, input, key io.Reader, alg crypto.Algorithm) (string, error) {
	args := m.Called(ctx, input, key, alg)
	return args.String(0), args.Error(1)
}

func (m *MockTextCipherService) Decrypt(ctx context.Context, ciphertext string, key io.Reader, alg crypto.Algorithm) ([]byte, error) {
	args := m.Called(ctx, ciphertext, key, alg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockPasswordService is a mock implementation of PasswordService
type MockPasswordService struct {
	mock.Mock
}

func (m *MockPasswordService) Generate(ctx context.Context, length int, upper, lower, number, symbol bool) (string, error) {
	args := m.Called(ctx, length, upper, lower, number, symbol)
	return args.String(0), args.Error(1)
}

// MockKeyGenerationService is a mock implementation of KeyGenerationService
type MockKeyGenerationService struct {
	mock.Mock
}

func (m *MockKeyGenerationService) Generate(ctx context.Context, alg crypto.Algorithm) (*keys.GeneratedKeySet, error) {
	args := m.Called(ctx, alg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*keys.GeneratedKeySet), args.Error(1)
}

func (m *MockKeyGenerationService) Save(ctx context.Context, set *keys.GeneratedKeySet, dir string) ([]string, error) {
	args := m.Called(ctx, set, dir)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
