package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"commerce/internal/core/application/usecases/commands"
	"commerce/internal/core/domain/model/kernel"
	"commerce/internal/core/domain/model/order"
	"commerce/internal/pkg/errs"
)

type createOrderRequest struct {
	Items           []orderItemRequest  `json:"orderItems"`
	ShippingAddress addressRequest      `json:"shippingAddress"`
	PaymentMethod   string              `json:"paymentMethod"`
	TaxAmount       float64             `json:"taxPrice"`
	ShippingAmount  float64             `json:"shippingPrice"`
	TotalAmount     float64             `json:"totalPrice"`
}

type orderItemRequest struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type addressRequest struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type payOrderRequest struct {
	PaymentResult paymentResultRequest `json:"paymentResult"`
}

type paymentResultRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type orderItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

type addressResponse struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

type paymentResultResponse struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type orderResponse struct {
	ID             string                 `json:"id"`
	UserID         string                 `json:"userId"`
	Items          []orderItemResponse    `json:"orderItems"`
	Address        addressResponse        `json:"shippingAddress"`
	PaymentMethod  string                 `json:"paymentMethod"`
	TaxAmount      float64                `json:"taxPrice"`
	ShippingAmount float64                `json:"shippingPrice"`
	TotalAmount    float64                `json:"totalPrice"`
	Status         string                 `json:"status"`
	IsPaid         bool                   `json:"isPaid"`
	PaidAt         *time.Time             `json:"paidAt,omitempty"`
	PaymentResult  *paymentResultResponse `json:"paymentResult,omitempty"`
	IsDelivered    bool                   `json:"isDelivered"`
	DeliveredAt    *time.Time             `json:"deliveredAt,omitempty"`
	CreatedAt      time.Time              `json:"createdAt"`
}

func orderToResponse(aggregate *order.Order) orderResponse {
	items := make([]orderItemResponse, 0, len(aggregate.Items()))
	for _, item := range aggregate.Items() {
		items = append(items, orderItemResponse{
			ProductID: item.ProductID().String(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
		})
	}

	var paymentResult *paymentResultResponse
	if result := aggregate.PaymentResult(); result != nil {
		paymentResult = &paymentResultResponse{
			ID:           result.GatewayID(),
			Status:       result.Status(),
			UpdateTime:   result.SettledAt(),
			EmailAddress: result.PayerEmail(),
		}
	}

	address := aggregate.Address()

	return orderResponse{
		ID:     aggregate.ID().String(),
		UserID: aggregate.UserID().String(),
		Items:  items,
		Address: addressResponse{
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
	}
}

func (s *Server) createOrder(ctx echo.Context) error {
	var req createOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	items := make([]order.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		productID, err := kernel.UUIDFromString(itemReq.ProductID)
		if err != nil {
			return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("product id", err))
		}

		item, err := order.NewItem(productID, itemReq.Name, itemReq.UnitPrice, itemReq.Quantity)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	address, err := order.NewAddress(
		req.ShippingAddress.Street,
		req.ShippingAddress.City,
		req.ShippingAddress.State,
		req.ShippingAddress.PostalCode,
		req.ShippingAddress.Country,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	paymentMethod, err := order.PaymentMethodFromString(req.PaymentMethod)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), actorFrom(ctx),
		items, address, paymentMethod,
		req.TaxAmount, req.ShippingAmount, req.TotalAmount,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, orderToResponse(aggregate))
}

func (s *Server) payOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	var req payOrderRequest
	if err = ctx.Bind(&req); err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("request body", err))
	}

	paymentResult, err := order.NewPaymentResult(
		req.PaymentResult.ID,
		req.PaymentResult.Status,
		req.PaymentResult.UpdateTime,
		req.PaymentResult.EmailAddress,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkOrderPaidCommand(orderID, paymentResult)
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.MarkOrderPaid.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

func (s *Server) deliverOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewMarkOrderDeliveredCommand(orderID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.MarkOrderDelivered.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}

func (s *Server) cancelOrder(ctx echo.Context) error {
	orderID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, errs.NewValueIsInvalidErrorWithCause("order id", err))
	}

	cmd, err := commands.NewCancelOrderCommand(orderID, actorFrom(ctx))
	if err != nil {
		return writeError(ctx, err)
	}

	aggregate, err := s.handlers.CancelOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, orderToResponse(aggregate))
}
