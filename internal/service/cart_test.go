package service

import (
	"context"
	"fmt"
	"testing"

	"storebot/internal/domain"
	"storebot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCartService_Add(t *testing.T) {
	tests := []struct {
		name          string
		chatID        int64
		productID     int
		quantity      int
		cart          *domain.Cart
		expectedItems []domain.CartItem
	}{
		{
			name:          "first line in empty cart",
			chatID:        100,
			productID:     42,
			quantity:      1,
			cart:          testutil.NewTestCart("doc-1"),
			expectedItems: []domain.CartItem{{ProductID: 42, Quantity: 1}},
		},
		{
			name:      "existing line is incremented, not duplicated",
			chatID:    100,
			productID: 42,
			quantity:  1,
			cart:      testutil.NewTestCart("doc-1", domain.CartItem{ProductID: 42, Quantity: 1}),
			expectedItems: []domain.CartItem{
				{ProductID: 42, Quantity: 2},
			},
		},
		{
			name:      "new line appended after existing ones",
			chatID:    100,
			productID: 7,
			quantity:  3,
			cart: testutil.NewTestCart("doc-1",
				domain.CartItem{ProductID: 42, Quantity: 2},
			),
			expectedItems: []domain.CartItem{
				{ProductID: 42, Quantity: 2},
				{ProductID: 7, Quantity: 3},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockStoreClient)
			mockStore.On("GetCart", mock.Anything, tt.chatID).Return(tt.cart, nil)
			mockStore.On("ReplaceCartItems", mock.Anything, tt.cart.DocumentID, tt.expectedItems).Return(nil)

			service := NewCartService(mockStore)

			err := service.Add(context.Background(), tt.chatID, tt.productID, tt.quantity)

			assert.NoError(t, err)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestCartService_Add_CreatesCartLazily(t *testing.T) {
	mockStore := new(testutil.MockStoreClient)
	mockStore.On("GetCart", mock.Anything, int64(100)).Return(nil, nil)
	mockStore.On("CreateCart", mock.Anything, int64(100)).Return(testutil.NewTestCart("doc-new"), nil)
	mockStore.On("ReplaceCartItems", mock.Anything, "doc-new", []domain.CartItem{{ProductID: 42, Quantity: 1}}).Return(nil)

	service := NewCartService(mockStore)

	err := service.Add(context.Background(), 100, 42, 1)

	assert.NoError(t, err)
	mockStore.AssertExpectations(t)
}

func TestCartService_Add_SequentialAddsAccumulate(t *testing.T) {
	// add(P, 1) twice yields one line for P with quantity 2
	mockStore := new(testutil.MockStoreClient)
	mockStore.On("GetCart", mock.Anything, int64(100)).
		Return(testutil.NewTestCart("doc-1"), nil).Once()
	mockStore.On("ReplaceCartItems", mock.Anything, "doc-1", []domain.CartItem{{ProductID: 42, Quantity: 1}}).
		Return(nil).Once()
	mockStore.On("GetCart", mock.Anything, int64(100)).
		Return(testutil.NewTestCart("doc-1", domain.CartItem{ProductID: 42, Quantity: 1}), nil).Once()
	mockStore.On("ReplaceCartItems", mock.Anything, "doc-1", []domain.CartItem{{ProductID: 42, Quantity: 2}}).
		Return(nil).Once()

	service := NewCartService(mockStore)

	require.NoError(t, service.Add(context.Background(), 100, 42, 1))
	require.NoError(t, service.Add(context.Background(), 100, 42, 1))

	mockStore.AssertExpectations(t)
}

func TestCartService_Add_InvalidQuantity(t *testing.T) {
	mockStore := new(testutil.MockStoreClient)
	service := NewCartService(mockStore)

	assert.Error(t, service.Add(context.Background(), 100, 42, 0))
	assert.Error(t, service.Add(context.Background(), 100, 42, -1))

	mockStore.AssertNotCalled(t, "GetCart")
	mockStore.AssertNotCalled(t, "ReplaceCartItems")
}

func TestCartService_Add_BackendError(t *testing.T) {
	backendErr := fmt.Errorf("store backend unavailable")

	mockStore := new(testutil.MockStoreClient)
	mockStore.On("GetCart", mock.Anything, int64(100)).Return(nil, backendErr)

	service := NewCartService(mockStore)

	err := service.Add(context.Background(), 100, 42, 1)

	assert.ErrorIs(t, err, backendErr)
	mockStore.AssertNotCalled(t, "ReplaceCartItems")
}

func TestCartService_Remove(t *testing.T) {
	tests := []struct {
		name          string
		productID     int
		cart          *domain.Cart
		expectedItems []domain.CartItem
	}{
		{
			name:      "removes exactly the matching line, order preserved",
			productID: 42,
			cart: testutil.NewTestCart("doc-1",
				domain.CartItem{ProductID: 1, Quantity: 1},
				domain.CartItem{ProductID: 42, Quantity: 2},
				domain.CartItem{ProductID: 3, Quantity: 1},
			),
			expectedItems: []domain.CartItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 3, Quantity: 1},
			},
		},
		{
			name:      "product not in cart leaves the list unchanged",
			productID: 99,
			cart: testutil.NewTestCart("doc-1",
				domain.CartItem{ProductID: 1, Quantity: 1},
				domain.CartItem{ProductID: 3, Quantity: 1},
			),
			expectedItems: []domain.CartItem{
				{ProductID: 1, Quantity: 1},
				{ProductID: 3, Quantity: 1},
			},
		},
		{
			name:          "removing the only line empties the cart",
			productID:     42,
			cart:          testutil.NewTestCart("doc-1", domain.CartItem{ProductID: 42, Quantity: 5}),
			expectedItems: []domain.CartItem{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockStore := new(testutil.MockStoreClient)
			mockStore.On("GetCart", mock.Anything, int64(100)).Return(tt.cart, nil)
			mockStore.On("ReplaceCartItems", mock.Anything, tt.cart.DocumentID, tt.expectedItems).Return(nil)

			service := NewCartService(mockStore)

			err := service.Remove(context.Background(), 100, tt.productID)

			assert.NoError(t, err)
			mockStore.AssertExpectations(t)
		})
	}
}

func TestCartService_Remove_NoCartIsNoop(t *testing.T) {
	mockStore := new(testutil.MockStoreClient)
	mockStore.On("GetCart", mock.Anything, int64(100)).Return(nil, nil)

	service := NewCartService(mockStore)

	err := service.Remove(context.Background(), 100, 42)

	assert.NoError(t, err)
	mockStore.AssertNotCalled(t, "ReplaceCartItems")
}

// TestCartService_ConcurrentAddLosesUpdate documents the lost-update
// hazard of the whole-list-replace protocol: two reconciliations that
// read the same prior list each compute their own merge, and the later
// write silently discards the earlier one's line. The backend offers no
// partial update or version check to close this.
func TestCartService_ConcurrentAddLosesUpdate(t *testing.T) {
	snapshot := testutil.NewTestCart("doc-1")

	var writes [][]domain.CartItem

	mockStore := new(testutil.MockStoreClient)
	// Both adds observe the same empty snapshot
	mockStore.On("GetCart", mock.Anything, int64(100)).Return(snapshot, nil).Twice()
	mockStore.On("ReplaceCartItems", mock.Anything, "doc-1", mock.Anything).
		Run(func(args mock.Arguments) {
			writes = append(writes, args.Get(2).([]domain.CartItem))
		}).
		Return(nil).Twice()

	service := NewCartService(mockStore)

	require.NoError(t, service.Add(context.Background(), 100, 1, 1))
	require.NoError(t, service.Add(context.Background(), 100, 2, 1))

	require.Len(t, writes, 2)
	assert.Equal(t, []domain.CartItem{{ProductID: 1, Quantity: 1}}, writes[0])
	// The second write wins and the first add's line is gone
	assert.Equal(t, []domain.CartItem{{ProductID: 2, Quantity: 1}}, writes[1])
	mockStore.AssertExpectations(t)
}
