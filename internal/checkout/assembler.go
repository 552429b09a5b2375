// Package checkout assembles the one-shot order-creation request from the
// persisted cart and a shipping form. The draft is ephemeral: built at
// submission, gone once the backend hands back an order.
package checkout

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/CM-market/cameroon-made-market-sub000/internal/api"
	"github.com/CM-market/cameroon-made-market-sub000/internal/cart"
	"github.com/CM-market/cameroon-made-market-sub000/internal/localstore"
)

// ErrEmptyCart rejects a checkout with nothing in the cart.
var ErrEmptyCart = errors.New("checkout: cart is empty")

// ValidationError blocks a submission before any request is sent.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("checkout: %s %s", e.Field, e.Reason)
	}
	return fmt.Sprintf("checkout: %s is required", e.Field)
}

// ShippingForm carries the delivery fields collected at checkout. All five
// are required; validation is presence-only except the phone, which must be
// numeric.
type ShippingForm struct {
	CustomerName    string
	CustomerPhone   string
	DeliveryAddress string
	City            string
	Region          string
}

func (f ShippingForm) Validate() error {
	required := []struct {
		field, value string
	}{
		{"customer_name", f.CustomerName},
		{"customer_phone", f.CustomerPhone},
		{"delivery_address", f.DeliveryAddress},
		{"city", f.City},
		{"region", f.Region},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}
	for _, c := range f.CustomerPhone {
		if c < '0' || c > '9' {
			return &ValidationError{Field: "customer_phone", Reason: "must be numeric"}
		}
	}
	return nil
}

// Draft is the transient order payload: wire items plus the computed total.
// No tax or shipping fee is added here; shipping is a display concern.
type Draft struct {
	Items []api.OrderItem
	Total float64
}

// BuildDraft maps cart lines to wire items and totals them.
func BuildDraft(items []cart.LineItem) (Draft, error) {
	if len(items) == 0 {
		return Draft{}, ErrEmptyCart
	}
	d := Draft{Items: make([]api.OrderItem, 0, len(items))}
	for _, it := range items {
		d.Items = append(d.Items, api.OrderItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     it.UnitPrice,
		})
		d.Total += it.UnitPrice * float64(it.Quantity)
	}
	return d, nil
}

// OrderCreator is the slice of the orders API checkout needs.
type OrderCreator interface {
	Create(ctx context.Context, req api.CreateOrderRequest) (api.Order, error)
}

type Assembler struct {
	cart   *cart.Store
	orders OrderCreator
	kv     localstore.Store
	logger *zap.Logger
}

func NewAssembler(cartStore *cart.Store, orders OrderCreator, kv localstore.Store, logger *zap.Logger) *Assembler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Assembler{cart: cartStore, orders: orders, kv: kv, logger: logger}
}

// Submit validates the form, snapshots the cart, and fires one
// order-creation request. On success the order overwrites the currentOrder
// key and is returned; on failure nothing changes. The cart is not cleared
// on either path — only the explicit clear action empties it.
func (a *Assembler) Submit(ctx context.Context, form ShippingForm, paymentMethod string) (api.Order, error) {
	if err := form.Validate(); err != nil {
		return api.Order{}, err
	}

	items, err := a.cart.Load()
	var corrupt *cart.CorruptError
	if err != nil && !errors.As(err, &corrupt) {
		return api.Order{}, err
	}

	draft, err := BuildDraft(items)
	if err != nil {
		return api.Order{}, err
	}

	req := api.CreateOrderRequest{
		CustomerName:    form.CustomerName,
		CustomerPhone:   form.CustomerPhone,
		DeliveryAddress: form.DeliveryAddress,
		City:            form.City,
		Region:          form.Region,
		PaymentMethod:   paymentMethod,
		Items:           draft.Items,
		Total:           draft.Total,
	}

	order, err := a.orders.Create(ctx, req)
	if err != nil {
		return api.Order{}, fmt.Errorf("create order: %w", err)
	}

	if data, err := json.Marshal(order); err == nil {
		if err := a.kv.Set(localstore.KeyCurrentOrder, string(data)); err != nil {
			// The order exists backend-side; losing the local snapshot is
			// recoverable through the orders list.
			a.logger.Warn("persist current order", zap.Error(err))
		}
	}

	a.logger.Info("order created",
		zap.String("orderId", order.ID),
		zap.Float64("total", order.Total))
	return order, nil
}

// CurrentOrder returns the last created order, if one was persisted.
func (a *Assembler) CurrentOrder() (api.Order, bool, error) {
	raw, ok, err := a.kv.Get(localstore.KeyCurrentOrder)
	if err != nil || !ok {
		return api.Order{}, false, err
	}
	var order api.Order
	if err := json.Unmarshal([]byte(raw), &order); err != nil {
		return api.Order{}, false, fmt.Errorf("decode current order: %w", err)
	}
	return order, true, nil
}

// ClearCurrentOrder drops the persisted order snapshot, as the payment
// screen does once the flow ends.
func (a *Assembler) ClearCurrentOrder() error {
	return a.kv.Remove(localstore.KeyCurrentOrder)
}
