package order

import (
	"errors"
	"fmt"
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a purchase transaction. It owns the lifecycle
// state machine and keeps the status field consistent with the paid/delivered
// flags: the only writers of those fields are the transition methods below,
// which update them together.
//
// Invariants:
//   - The owner is fixed at creation and never changes.
//   - Items are non-empty and each line has quantity >= 1.
//   - Monetary totals are captured at creation and never recomputed.
//   - A paid order can never transition to Cancelled.
//   - Delivered status implies delivered=true; Cancelled implies paid=false.
//
// The version field supports optimistic concurrency: the repository refuses a
// write when the stored version no longer matches the one the aggregate was
// loaded with, so concurrent mutations surface as conflicts instead of silent
// lost updates.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID

	items         []Item
	address       Address
	paymentMethod PaymentMethod

	taxAmount      float64
	shippingAmount float64
	totalAmount    float64

	status        Status
	paid          bool
	paidAt        *time.Time
	paymentResult *PaymentResult
	delivered     bool
	deliveredAt   *time.Time

	createdAt time.Time
	updatedAt time.Time
	version   int64

	isConstructed bool
}

// NewOrder creates a Pending, unpaid, undelivered order owned by userID.
// Totals are copied verbatim from the caller; there is no server-side price
// recomputation at this layer.
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	address Address,
	paymentMethod PaymentMethod,
	taxAmount, shippingAmount, totalAmount float64,
	now time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setAmounts(taxAmount, shippingAmount, totalAmount),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence without replaying its
// transitions. Field combinations are still validated so corrupted documents
// cannot re-enter the domain.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	items []Item,
	address Address,
	paymentMethod PaymentMethod,
	taxAmount, shippingAmount, totalAmount float64,
	status Status,
	paid bool,
	paidAt *time.Time,
	paymentResult *PaymentResult,
	delivered bool,
	deliveredAt *time.Time,
	createdAt, updatedAt time.Time,
	version int64,
) (*Order, error) {
	o := &Order{
		paid:          paid,
		paidAt:        paidAt,
		paymentResult: paymentResult,
		delivered:     delivered,
		deliveredAt:   deliveredAt,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setItems(items),
		o.setAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setAmounts(taxAmount, shippingAmount, totalAmount),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewVersionIsInvalidErrorWithCause(
			"order",
			fmt.Errorf("%d is not a valid version", version),
		)
	}

	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the owning user. Ownership never changes.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Items returns a copy of the captured order lines.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Address returns the shipping destination.
func (o *Order) Address() Address {
	return o.address
}

// PaymentMethod returns the payment instrument chosen at checkout.
func (o *Order) PaymentMethod() PaymentMethod {
	return o.paymentMethod
}

// TaxAmount returns the captured tax amount.
func (o *Order) TaxAmount() float64 {
	return o.taxAmount
}

// ShippingAmount returns the captured shipping amount.
func (o *Order) ShippingAmount() float64 {
	return o.shippingAmount
}

// TotalAmount returns the captured order total.
func (o *Order) TotalAmount() float64 {
	return o.totalAmount
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// IsPaid reports whether payment has been confirmed.
func (o *Order) IsPaid() bool {
	return o.paid
}

// PaidAt returns the payment confirmation time, or nil while unpaid.
func (o *Order) PaidAt() *time.Time {
	return o.paidAt
}

// PaymentResult returns the gateway confirmation record, or nil while unpaid.
func (o *Order) PaymentResult() *PaymentResult {
	return o.paymentResult
}

// IsDelivered reports whether delivery has been confirmed.
func (o *Order) IsDelivered() bool {
	return o.delivered
}

// DeliveredAt returns the delivery confirmation time, or nil while undelivered.
func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the last mutation timestamp.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency version the aggregate was loaded
// with. The repository increments it on every successful write.
func (o *Order) Version() int64 {
	return o.version
}

// MarkPaid records an external gateway's payment confirmation: sets the paid
// flag, the payment timestamp, and the gateway result in one step.
//
// Payment confirmation does not advance the status field; fulfillment
// transitions own that field. A repeated confirmation on an already paid order
// overwrites the stored gateway result.
//
// Fails with an invalid-state error on a cancelled order: Cancelled implies
// unpaid, and a late gateway callback must not resurrect it.
func (o *Order) MarkPaid(result PaymentResult, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := result.Validate(); err != nil {
		return err
	}
	if o.status == Cancelled {
		return errs.NewInvalidStateError("cannot pay a cancelled order")
	}

	o.paid = true
	o.paidAt = &now
	o.paymentResult = &result
	o.updatedAt = now
	return nil
}

// MarkDelivered records delivery confirmation: the delivered flag, the delivery
// timestamp, and the Delivered status change together or not at all.
//
// Authorization (fulfillment is an elevated-privilege action) is decided by the
// caller's access policy, not here.
func (o *Order) MarkDelivered(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.delivered = true
	o.deliveredAt = &now
	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel transitions the order to Cancelled.
//
// Fails with an invalid-state error when the order is already paid, and when
// the status is terminal. The paid/delivered flags are left untouched: the
// precondition guarantees both are false.
//
// Ownership (only the owner may cancel) is decided by the caller's access
// policy, not here.
func (o *Order) Cancel(now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.paid {
		return errs.NewInvalidStateError("cannot cancel a paid order")
	}

	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}
	o.userID = userID
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("order items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}
	o.items = make([]Item, len(items))
	copy(o.items, items)
	return nil
}

func (o *Order) setAddress(address Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setPaymentMethod(paymentMethod PaymentMethod) error {
	if err := paymentMethod.Validate(); err != nil {
		return err
	}
	o.paymentMethod = paymentMethod
	return nil
}

func (o *Order) setAmounts(taxAmount, shippingAmount, totalAmount float64) error {
	var joined error
	requireNonNegative := func(field string, value float64) {
		if value < 0 {
			joined = errors.Join(joined, errs.NewValueIsInvalidErrorWithCause(
				field,
				fmt.Errorf("%v is negative", value),
			))
		}
	}

	requireNonNegative("tax amount", taxAmount)
	requireNonNegative("shipping amount", shippingAmount)
	requireNonNegative("total amount", totalAmount)

	if joined != nil {
		return joined
	}

	o.taxAmount = taxAmount
	o.shippingAmount = shippingAmount
	o.totalAmount = totalAmount
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
