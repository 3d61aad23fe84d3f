package auth_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/avelov/authkit/pkg/auth"
)

// MockStorage is a mock implementation of auth.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) GetUserByEmail(ctx context.Context, email string) (*auth.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockStorage) GetUserByID(ctx context.Context, id uuid.UUID) (*auth.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*auth.User), args.Error(1)
}

func (m *MockStorage) CreateUser(ctx context.Context, user *auth.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockStorage) LinkIdentity(ctx context.Context, provider, providerAccountID string, userID uuid.UUID) error {
	args := m.Called(ctx, provider, providerAccountID, userID)
	return args.Error(0)
}
