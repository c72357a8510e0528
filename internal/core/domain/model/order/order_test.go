package order_test

import (
	"testing"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustItem(t *testing.T) order.Item {
	t.Helper()
	item, err := order.NewItem(kernel.NewUUID(), "Wireless Mouse", 29.99, 2)
	require.NoError(t, err)
	return item
}

func mustAddress(t *testing.T) order.Address {
	t.Helper()
	address, err := order.NewAddress("221B Baker Street", "London", "Greater London", "NW1 6XE", "UK")
	require.NoError(t, err)
	return address
}

func mustPaymentResult(t *testing.T) order.PaymentResult {
	t.Helper()
	result, err := order.NewPaymentResult("pay_123", "COMPLETED", "2026-08-28T10:00:00Z", "buyer@example.com")
	require.NoError(t, err)
	return result
}

func createTestOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		[]order.Item{mustItem(t)},
		mustAddress(t),
		order.PaymentMethodCreditCard,
		5.40, 9.99, 75.37,
		time.Now().UTC(),
	)
	require.NoError(t, err)
	return o
}

func TestNewOrder(t *testing.T) {
	t.Run("should create pending unpaid order", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		now := time.Now().UTC()

		o, err := order.NewOrder(
			id, userID,
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethodPayPal,
			5.40, 9.99, 75.37,
			now,
		)

		require.NoError(t, err)
		assert.NoError(t, o.Validate())
		assert.True(t, o.ID().IsEqual(id))
		assert.True(t, o.UserID().IsEqual(userID))
		assert.Equal(t, order.Pending, o.Status())
		assert.False(t, o.IsPaid())
		assert.Nil(t, o.PaidAt())
		assert.Nil(t, o.PaymentResult())
		assert.False(t, o.IsDelivered())
		assert.Nil(t, o.DeliveredAt())
		assert.Equal(t, now, o.CreatedAt())
		assert.Equal(t, now, o.UpdatedAt())
		assert.Equal(t, int64(1), o.Version())
	})

	t.Run("should capture amounts verbatim", func(t *testing.T) {
		o := createTestOrder(t)

		assert.Equal(t, 5.40, o.TaxAmount())
		assert.Equal(t, 9.99, o.ShippingAmount())
		assert.Equal(t, 75.37, o.TotalAmount())
	})

	t.Run("should reject empty items", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			nil,
			mustAddress(t),
			order.PaymentMethodCreditCard,
			0, 0, 0,
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject unconstructed address", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t)},
			order.Address{},
			order.PaymentMethodCreditCard,
			0, 0, 10,
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})

	t.Run("should reject invalid payment method", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethod("Cash"),
			0, 0, 10,
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethodCreditCard,
			-1, 0, 10,
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should collect multiple validation errors", func(t *testing.T) {
		_, err := order.NewOrder(
			kernel.UUID{}, kernel.UUID{},
			nil,
			order.Address{},
			order.PaymentMethod(""),
			-1, -1, -1,
			time.Now().UTC(),
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.ErrorIs(t, err, order.ErrAddressIsNotConstructed)
	})
}

func TestRestoreOrder(t *testing.T) {
	t.Run("should restore persisted state without replaying transitions", func(t *testing.T) {
		id := kernel.NewUUID()
		userID := kernel.NewUUID()
		paidAt := time.Now().UTC().Add(-time.Hour)
		createdAt := paidAt.Add(-time.Hour)
		result := mustPaymentResult(t)

		o, err := order.RestoreOrder(
			id, userID,
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethodBankTransfer,
			5.40, 9.99, 75.37,
			order.Processing,
			true, &paidAt, &result,
			false, nil,
			createdAt, paidAt,
			3,
		)

		require.NoError(t, err)
		assert.Equal(t, order.Processing, o.Status())
		assert.True(t, o.IsPaid())
		assert.Equal(t, &paidAt, o.PaidAt())
		require.NotNil(t, o.PaymentResult())
		assert.Equal(t, "pay_123", o.PaymentResult().GatewayID())
		assert.Equal(t, int64(3), o.Version())
	})

	t.Run("should reject invalid version", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethodCreditCard,
			0, 0, 10,
			order.Pending,
			false, nil, nil,
			false, nil,
			time.Now().UTC(), time.Now().UTC(),
			0,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrVersionIsInvalid)
	})

	t.Run("should reject invalid status", func(t *testing.T) {
		_, err := order.RestoreOrder(
			kernel.NewUUID(), kernel.NewUUID(),
			[]order.Item{mustItem(t)},
			mustAddress(t),
			order.PaymentMethodCreditCard,
			0, 0, 10,
			order.Unknown,
			false, nil, nil,
			false, nil,
			time.Now().UTC(), time.Now().UTC(),
			1,
		)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	t.Run("should set payment fields without advancing status", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Now().UTC().Add(time.Minute)

		err := o.MarkPaid(mustPaymentResult(t), now)

		require.NoError(t, err)
		assert.True(t, o.IsPaid())
		assert.Equal(t, &now, o.PaidAt())
		require.NotNil(t, o.PaymentResult())
		assert.Equal(t, "pay_123", o.PaymentResult().GatewayID())
		assert.Equal(t, "COMPLETED", o.PaymentResult().Status())
		assert.Equal(t, order.Pending, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("repeated confirmation overwrites the gateway result", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.MarkPaid(mustPaymentResult(t), time.Now().UTC()))

		second, err := order.NewPaymentResult("pay_456", "COMPLETED", "", "")
		require.NoError(t, err)
		err = o.MarkPaid(second, time.Now().UTC())

		require.NoError(t, err)
		assert.Equal(t, "pay_456", o.PaymentResult().GatewayID())
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Cancel(time.Now().UTC()))

		err := o.MarkPaid(mustPaymentResult(t), time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, o.IsPaid())
	})

	t.Run("should reject unconstructed payment result", func(t *testing.T) {
		o := createTestOrder(t)

		err := o.MarkPaid(order.PaymentResult{}, time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, order.ErrPaymentResultIsNotConstructed)
	})
}

func TestOrder_MarkDelivered(t *testing.T) {
	t.Run("should set flag, timestamp and status together", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Now().UTC().Add(time.Minute)

		err := o.MarkDelivered(now)

		require.NoError(t, err)
		assert.True(t, o.IsDelivered())
		assert.Equal(t, &now, o.DeliveredAt())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should tolerate repeated confirmation", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.MarkDelivered(time.Now().UTC()))

		later := time.Now().UTC().Add(time.Hour)
		err := o.MarkDelivered(later)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, o.Status())
		assert.Equal(t, &later, o.DeliveredAt())
	})

	t.Run("should fail on cancelled order", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Cancel(time.Now().UTC()))

		err := o.MarkDelivered(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.False(t, o.IsDelivered())
		assert.Equal(t, order.Cancelled, o.Status())
	})
}

func TestOrder_Cancel(t *testing.T) {
	t.Run("should cancel a pending unpaid order", func(t *testing.T) {
		o := createTestOrder(t)
		now := time.Now().UTC().Add(time.Minute)

		err := o.Cancel(now)

		require.NoError(t, err)
		assert.Equal(t, order.Cancelled, o.Status())
		assert.Equal(t, now, o.UpdatedAt())
	})

	t.Run("should fail when order is paid", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.MarkPaid(mustPaymentResult(t), time.Now().UTC()))

		err := o.Cancel(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
		assert.Contains(t, err.Error(), "cannot cancel a paid order")
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("should fail when order is delivered", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.MarkDelivered(time.Now().UTC()))

		err := o.Cancel(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})

	t.Run("should fail when already cancelled", func(t *testing.T) {
		o := createTestOrder(t)
		require.NoError(t, o.Cancel(time.Now().UTC()))

		err := o.Cancel(time.Now().UTC())

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrInvalidState)
	})
}

func TestOrder_Items(t *testing.T) {
	t.Run("should return a defensive copy", func(t *testing.T) {
		o := createTestOrder(t)

		items := o.Items()
		require.Len(t, items, 1)
		items[0] = order.Item{}

		assert.Equal(t, "Wireless Mouse", o.Items()[0].Name())
	})
}

func TestOrder_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var o order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})

	t.Run("nil pointer fails validation", func(t *testing.T) {
		var o *order.Order

		assert.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestNewItem(t *testing.T) {
	t.Run("should reject zero quantity", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Mouse", 10, 0)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject negative price", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "Mouse", -1, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := order.NewItem(kernel.NewUUID(), "", 10, 1)

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestNewAddress(t *testing.T) {
	t.Run("should require every field", func(t *testing.T) {
		_, err := order.NewAddress("", "London", "", "NW1 6XE", "UK")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "street")
		assert.Contains(t, err.Error(), "state")
	})
}

func TestNewPaymentResult(t *testing.T) {
	t.Run("optional gateway metadata may be empty", func(t *testing.T) {
		result, err := order.NewPaymentResult("pay_1", "PENDING", "", "")

		require.NoError(t, err)
		assert.Empty(t, result.SettledAt())
		assert.Empty(t, result.PayerEmail())
	})

	t.Run("should require id and status", func(t *testing.T) {
		_, err := order.NewPaymentResult("", "PENDING", "", "")
		require.Error(t, err)

		_, err = order.NewPaymentResult("pay_1", "", "", "")
		require.Error(t, err)
	})
}
