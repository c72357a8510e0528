package order

import (
	"errors"
	"fmt"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item was not created through NewItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

	// ErrAddressIsNotConstructed is returned when an Address was not created through NewAddress.
	ErrAddressIsNotConstructed = errors.New("Address must be created via NewAddress constructor")

	// ErrPaymentResultIsNotConstructed is returned when a PaymentResult was not created
	// through NewPaymentResult.
	ErrPaymentResultIsNotConstructed = errors.New("PaymentResult must be created via NewPaymentResult constructor")
)

// Item is a captured order line: a product reference plus the name and unit
// price snapshotted at checkout time, so later catalog edits never rewrite
// history.
type Item struct {
	productID kernel.UUID
	name      string
	unitPrice float64
	quantity  int

	isConstructed bool
}

// NewItem creates a validated order line. Quantity must be at least 1 and the
// unit price may not be negative.
func NewItem(productID kernel.UUID, name string, unitPrice float64, quantity int) (Item, error) {
	item := Item{isConstructed: true}

	if err := errors.Join(
		item.setProductID(productID),
		item.setName(name),
		item.setUnitPrice(unitPrice),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	return item, nil
}

// Validate ensures the item was created through NewItem.
func (i Item) Validate() error {
	if !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

// ProductID returns the referenced product's identifier.
func (i Item) ProductID() kernel.UUID {
	return i.productID
}

// Name returns the product name captured at order time.
func (i Item) Name() string {
	return i.name
}

// UnitPrice returns the unit price captured at order time.
func (i Item) UnitPrice() float64 {
	return i.unitPrice
}

// Quantity returns the ordered quantity.
func (i Item) Quantity() int {
	return i.quantity
}

func (i *Item) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Item) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("item name")
	}
	i.name = name
	return nil
}

func (i *Item) setUnitPrice(unitPrice float64) error {
	if unitPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item price",
			fmt.Errorf("%v is negative", unitPrice),
		)
	}
	i.unitPrice = unitPrice
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause(
			"item quantity",
			fmt.Errorf("%d is not at least 1", quantity),
		)
	}
	i.quantity = quantity
	return nil
}

// Address is the shipping destination captured at order time.
// All five fields are required.
type Address struct {
	street     string
	city       string
	state      string
	postalCode string
	country    string

	isConstructed bool
}

// NewAddress creates a validated shipping address.
func NewAddress(street, city, state, postalCode, country string) (Address, error) {
	var joined error
	require := func(field, value string) {
		if value == "" {
			joined = errors.Join(joined, errs.NewValueIsRequiredError(field))
		}
	}

	require("street", street)
	require("city", city)
	require("state", state)
	require("postal code", postalCode)
	require("country", country)

	if joined != nil {
		return Address{}, joined
	}

	return Address{
		street:        street,
		city:          city,
		state:         state,
		postalCode:    postalCode,
		country:       country,
		isConstructed: true,
	}, nil
}

// Validate ensures the address was created through NewAddress.
func (a Address) Validate() error {
	if !a.isConstructed {
		return ErrAddressIsNotConstructed
	}
	return nil
}

// Street returns the street line.
func (a Address) Street() string { return a.street }

// City returns the city.
func (a Address) City() string { return a.city }

// State returns the state or region.
func (a Address) State() string { return a.state }

// PostalCode returns the postal code.
func (a Address) PostalCode() string { return a.postalCode }

// Country returns the country.
func (a Address) Country() string { return a.country }

// PaymentMethod is the payment instrument chosen at checkout.
type PaymentMethod string

const (
	PaymentMethodCreditCard   PaymentMethod = "Credit Card"
	PaymentMethodPayPal       PaymentMethod = "PayPal"
	PaymentMethodBankTransfer PaymentMethod = "Bank Transfer"
)

// PaymentMethodFromString parses a payment method from its transported form.
func PaymentMethodFromString(s string) (PaymentMethod, error) {
	switch PaymentMethod(s) {
	case PaymentMethodCreditCard, PaymentMethodPayPal, PaymentMethodBankTransfer:
		return PaymentMethod(s), nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause(
			"payment method",
			fmt.Errorf("%q is not a valid payment method", s),
		)
	}
}

// Validate checks that the payment method is one of the known instruments.
func (m PaymentMethod) Validate() error {
	_, err := PaymentMethodFromString(string(m))
	return err
}

// String returns the textual form of the payment method.
func (m PaymentMethod) String() string {
	return string(m)
}

// PaymentResult is the confirmation record returned by an external payment
// gateway: its transaction id and status, plus settlement time and payer
// contact as opaque gateway-formatted strings.
type PaymentResult struct {
	gatewayID  string
	status     string
	settledAt  string
	payerEmail string

	isConstructed bool
}

// NewPaymentResult creates a validated gateway confirmation record.
// The gateway transaction id and status are required; settlement time and
// payer email are optional gateway metadata.
func NewPaymentResult(gatewayID, status, settledAt, payerEmail string) (PaymentResult, error) {
	if gatewayID == "" {
		return PaymentResult{}, errs.NewValueIsRequiredError("payment result id")
	}
	if status == "" {
		return PaymentResult{}, errs.NewValueIsRequiredError("payment result status")
	}

	return PaymentResult{
		gatewayID:     gatewayID,
		status:        status,
		settledAt:     settledAt,
		payerEmail:    payerEmail,
		isConstructed: true,
	}, nil
}

// Validate ensures the payment result was created through NewPaymentResult.
func (p PaymentResult) Validate() error {
	if !p.isConstructed {
		return ErrPaymentResultIsNotConstructed
	}
	return nil
}

// GatewayID returns the external gateway's transaction identifier.
func (p PaymentResult) GatewayID() string { return p.gatewayID }

// Status returns the gateway-reported payment status.
func (p PaymentResult) Status() string { return p.status }

// SettledAt returns the gateway-reported settlement time, verbatim.
func (p PaymentResult) SettledAt() string { return p.settledAt }

// PayerEmail returns the payer contact reported by the gateway.
func (p PaymentResult) PayerEmail() string { return p.payerEmail }
