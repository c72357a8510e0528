package commands_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/identity"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role identity.Role) identity.Actor {
	t.Helper()
	actor, err := identity.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func testItems(t *testing.T) []order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Wireless Mouse", 29.99, 2)
	require.NoError(t, err)
	return []order.Item{item}
}

func testAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("221B Baker Street", "London", "Greater London", "NW1 6XE", "UK")
	require.NoError(t, err)
	return address
}

func testPaymentResult(t *testing.T) order.PaymentResult {
	t.Helper()
	result, err := order.NewPaymentResult("pay_123", "COMPLETED", "", "")
	require.NoError(t, err)
	return result
}

func testOrderOwnedBy(t *testing.T, userID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(), userID,
		testItems(t), testAddress(t),
		order.PaymentMethodCreditCard,
		5.40, 9.99, 75.37,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}
