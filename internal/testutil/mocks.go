package testutil

import (
	"context"

	"storebot/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockSessionRepository is a mock for repository.SessionRepository
type MockSessionRepository struct {
	mock.Mock
}

func (m *MockSessionRepository) GetState(ctx context.Context, chatID int64) (domain.SessionState, error) {
	args := m.Called(ctx, chatID)
	return args.Get(0).(domain.SessionState), args.Error(1)
}

func (m *MockSessionRepository) SetState(ctx context.Context, chatID int64, state domain.SessionState) error {
	args := m.Called(ctx, chatID, state)
	return args.Error(0)
}

// MockStoreClient is a mock for service.StoreClient
type MockStoreClient struct {
	mock.Mock
}

func (m *MockStoreClient) ListProducts(ctx context.Context) ([]domain.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Product), args.Error(1)
}

func (m *MockStoreClient) GetProduct(ctx context.Context, productID int) (*domain.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Product), args.Error(1)
}

func (m *MockStoreClient) GetCart(ctx context.Context, chatID int64) (*domain.Cart, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockStoreClient) CreateCart(ctx context.Context, chatID int64) (*domain.Cart, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Cart), args.Error(1)
}

func (m *MockStoreClient) ReplaceCartItems(ctx context.Context, documentID string, items []domain.CartItem) error {
	args := m.Called(ctx, documentID, items)
	return args.Error(0)
}

func (m *MockStoreClient) GetClient(ctx context.Context, chatID int64) (*domain.Client, error) {
	args := m.Called(ctx, chatID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockStoreClient) CreateClient(ctx context.Context, chatID int64, email string) (*domain.Client, error) {
	args := m.Called(ctx, chatID, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockStoreClient) UpdateClientEmail(ctx context.Context, client *domain.Client, email string) error {
	args := m.Called(ctx, client, email)
	return args.Error(0)
}
