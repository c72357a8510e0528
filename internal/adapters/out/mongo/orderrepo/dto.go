// Package orderrepo persists order aggregates as MongoDB documents. It maps
// between the encapsulated domain aggregate and a flat document layout, and
// guards every update with the aggregate's version.
package orderrepo

import (
	"time"

	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
)

// orderDocument is the stored shape of an order. Identifiers are stored in
// their canonical string form so documents stay readable in the shell.
type orderDocument struct {
	ID             string             `bson:"_id"`
	UserID         string             `bson:"user_id"`
	Items          []itemDocument     `bson:"items"`
	Address        addressDocument    `bson:"address"`
	PaymentMethod  string             `bson:"payment_method"`
	TaxAmount      float64            `bson:"tax_amount"`
	ShippingAmount float64            `bson:"shipping_amount"`
	TotalAmount    float64            `bson:"total_amount"`
	Status         string             `bson:"status"`
	IsPaid         bool               `bson:"is_paid"`
	PaidAt         *time.Time         `bson:"paid_at,omitempty"`
	PaymentResult  *paymentResultDoc  `bson:"payment_result,omitempty"`
	IsDelivered    bool               `bson:"is_delivered"`
	DeliveredAt    *time.Time         `bson:"delivered_at,omitempty"`
	CreatedAt      time.Time          `bson:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at"`
	Version        int64              `bson:"version"`
}

type itemDocument struct {
	ProductID string  `bson:"product_id"`
	Name      string  `bson:"name"`
	UnitPrice float64 `bson:"unit_price"`
	Quantity  int     `bson:"quantity"`
}

type addressDocument struct {
	Street     string `bson:"street"`
	City       string `bson:"city"`
	State      string `bson:"state"`
	PostalCode string `bson:"postal_code"`
	Country    string `bson:"country"`
}

type paymentResultDoc struct {
	GatewayID  string `bson:"gateway_id"`
	Status     string `bson:"status"`
	SettledAt  string `bson:"settled_at"`
	PayerEmail string `bson:"payer_email"`
}

// fromDomain converts an order aggregate to its document representation.
func fromDomain(aggregate *order.Order) orderDocument {
	items := make([]itemDocument, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, itemDocument{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	var paymentResult *paymentResultDoc
	if result := aggregate.PaymentResult(); result != nil {
		paymentResult = &paymentResultDoc{
			GatewayID:  result.GatewayID(),
			Status:     result.Status(),
			SettledAt:  result.SettledAt(),
			PayerEmail: result.PayerEmail(),
		}
	}

	address := aggregate.Address()

	return orderDocument{
		ID:     aggregate.ID().String(),
		UserID: aggregate.UserID().String(),
		Items:  items,
		Address: addressDocument{
			Street:     address.Street(),
			City:       address.City(),
			State:      address.State(),
			PostalCode: address.PostalCode(),
			Country:    address.Country(),
		},
		PaymentMethod:  aggregate.PaymentMethod().String(),
		TaxAmount:      aggregate.TaxAmount(),
		ShippingAmount: aggregate.ShippingAmount(),
		TotalAmount:    aggregate.TotalAmount(),
		Status:         aggregate.Status().String(),
		IsPaid:         aggregate.IsPaid(),
		PaidAt:         aggregate.PaidAt(),
		PaymentResult:  paymentResult,
		IsDelivered:    aggregate.IsDelivered(),
		DeliveredAt:    aggregate.DeliveredAt(),
		CreatedAt:      aggregate.CreatedAt(),
		UpdatedAt:      aggregate.UpdatedAt(),
		Version:        aggregate.Version(),
	}
}

// toDomain reconstructs an order aggregate from its document representation.
func toDomain(doc orderDocument) (*order.Order, error) {
	id, err := kernel.UUIDFromString(doc.ID)
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromString(doc.UserID)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(doc.Items))
	for _, itemDoc := range doc.Items {
		productID, itemErr := kernel.UUIDFromString(itemDoc.ProductID)
		if itemErr != nil {
			return nil, itemErr
		}

		item, itemErr := order.NewItem(productID, itemDoc.Name, itemDoc.UnitPrice, itemDoc.Quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		doc.Address.Street,
		doc.Address.City,
		doc.Address.State,
		doc.Address.PostalCode,
		doc.Address.Country,
	)
	if err != nil {
		return nil, err
	}

	paymentMethod, err := order.PaymentMethodFromString(doc.PaymentMethod)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(doc.Status)
	if err != nil {
		return nil, err
	}

	var paymentResult *order.PaymentResult
	if doc.PaymentResult != nil {
		result, resultErr := order.NewPaymentResult(
			doc.PaymentResult.GatewayID,
			doc.PaymentResult.Status,
			doc.PaymentResult.SettledAt,
			doc.PaymentResult.PayerEmail,
		)
		if resultErr != nil {
			return nil, resultErr
		}
		paymentResult = &result
	}

	return order.RestoreOrder(
		id, userID, items, address, paymentMethod,
		doc.TaxAmount, doc.ShippingAmount, doc.TotalAmount,
		status,
		doc.IsPaid, doc.PaidAt, paymentResult,
		doc.IsDelivered, doc.DeliveredAt,
		doc.CreatedAt, doc.UpdatedAt,
		doc.Version,
	)
}
