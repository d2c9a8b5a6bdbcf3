package postgres

import (
	"encoding/json"
	"testing"

	"evently/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToOrderDomain_BuyerProjection(t *testing.T) {
	buyerID := uuid.New()
	orderM := &model.OrderModel{
		ID:               uuid.New(),
		PaymentSessionID: "cs_1",
		TotalAmount:      "25",
		BuyerID:          &buyerID,
		Buyer: &model.AccountModel{
			ID:         buyerID,
			IdentityID: "user_buyer",
			Email:      "buyer@example.com",
			Username:   "buyer1",
			FirstName:  "Sam",
			LastName:   "Lee",
		},
	}

	order := toOrderDomain(orderM)

	require.NotNil(t, order.Buyer)
	assert.Equal(t, buyerID, order.Buyer.ID)
	assert.Equal(t, "Sam", order.Buyer.FirstName)
	assert.Equal(t, "Lee", order.Buyer.LastName)

	payload, err := json.Marshal(order)
	require.NoError(t, err)
	assert.NotContains(t, string(payload), "user_buyer")
	assert.NotContains(t, string(payload), "buyer@example.com")
	assert.NotContains(t, string(payload), "buyer1")
}
