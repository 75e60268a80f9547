package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
	"github.com/raan-pos/api/internal/enum"
	"github.com/raan-pos/api/internal/notify"
)

var (
	ErrEmptyCart           = errors.New("order must contain at least one item")
	ErrInvalidMethod       = errors.New("invalid payment method")
	ErrInvalidQuantity     = errors.New("item quantity must be positive")
	ErrInvalidUnitPrice    = errors.New("item unit price must not be negative")
	ErrInvalidTotal        = errors.New("order total must not be negative")
	ErrQuickNameRequired   = errors.New("quick sale line requires a name")
	ErrDebtorRequired      = errors.New("credit orders require a customer name")
	ErrInvalidProductID    = errors.New("invalid product id")
	ErrProductNotFound     = errors.New("product not found or inactive")
	ErrInsufficientStock   = errors.New("insufficient stock")
	ErrTotalMismatch       = errors.New("submitted total does not match computed total")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidSettleMethod = errors.New("debts can only be settled with CASH or QR")
)

// OrderStore is the subset of database queries the order workflows need.
// *database.Queries satisfies it.
type OrderStore interface {
	GetProductForOrder(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error)
	DeductProductStock(ctx context.Context, arg database.DeductProductStockParams) (int32, error)
	AdjustProductStock(ctx context.Context, arg database.AdjustProductStockParams) (database.Product, error)
	CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	CreateOrderItem(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error)
	GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error)
	ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderItem, error)
	SettleOrder(ctx context.Context, arg database.SettleOrderParams) (database.Order, error)
	DeleteOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) error
	DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error)
}

// NewOrderStore builds an OrderStore bound to the given connection or
// transaction, so the same workflow code runs inside and outside a tx.
type NewOrderStore func(db database.DBTX) OrderStore

type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Notifier delivers a best-effort notification. Failures never roll back
// the order they describe.
type Notifier interface {
	Send(ctx context.Context, embed notify.Embed) error
}

// EventPublisher pushes events to connected dashboard clients.
type EventPublisher interface {
	Publish(event string, data any)
}

type OrderService struct {
	db       TxBeginner
	newStore NewOrderStore
	notifier Notifier
	events   EventPublisher
}

func NewOrderService(db TxBeginner, newStore NewOrderStore, notifier Notifier, events EventPublisher) *OrderService {
	return &OrderService{
		db:       db,
		newStore: newStore,
		notifier: notifier,
		events:   events,
	}
}

// OrderItemInput is a single cart line. Lines with a ProductID take their
// name, price and cost from the catalog; custom lines carry their own name
// and price and never touch stock.
type OrderItemInput struct {
	ProductID string
	Name      string
	Quantity  int32
	UnitPrice decimal.Decimal
}

type SubmitOrderInput struct {
	Items           []OrderItemInput
	PaymentMethod   string
	Total           decimal.Decimal
	SlipURL         string
	CustomerName    string
	CustomerContact string
}

type SubmitOrderResult struct {
	Order    database.Order
	Items    []database.OrderItem
	Notified bool
}

// SubmitOrder records a sale. The order header, its items and every stock
// deduction commit in one transaction; any failure leaves stock untouched.
// Prices and the total are taken from the catalog, not from the caller.
func (s *OrderService) SubmitOrder(ctx context.Context, input SubmitOrderInput) (SubmitOrderResult, error) {
	if len(input.Items) == 0 {
		return SubmitOrderResult{}, ErrEmptyCart
	}
	switch input.PaymentMethod {
	case enum.PaymentMethodCash, enum.PaymentMethodQR, enum.PaymentMethodCredit:
	default:
		return SubmitOrderResult{}, ErrInvalidMethod
	}
	if input.PaymentMethod == enum.PaymentMethodCredit && strings.TrimSpace(input.CustomerName) == "" {
		return SubmitOrderResult{}, ErrDebtorRequired
	}
	if input.Total.IsNegative() {
		return SubmitOrderResult{}, ErrInvalidTotal
	}
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return SubmitOrderResult{}, ErrInvalidQuantity
		}
		if item.ProductID == "" {
			if strings.TrimSpace(item.Name) == "" {
				return SubmitOrderResult{}, ErrQuickNameRequired
			}
			if item.UnitPrice.IsNegative() {
				return SubmitOrderResult{}, ErrInvalidUnitPrice
			}
		}
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return SubmitOrderResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.newStore(tx)

	type resolvedLine struct {
		productID pgtype.UUID
		name      string
		quantity  int32
		unitPrice decimal.Decimal
		unitCost  decimal.Decimal
	}

	lines := make([]resolvedLine, 0, len(input.Items))
	total := decimal.Zero
	for _, item := range input.Items {
		line := resolvedLine{quantity: item.Quantity}
		if item.ProductID != "" {
			productID, err := uuid.Parse(item.ProductID)
			if err != nil {
				return SubmitOrderResult{}, ErrInvalidProductID
			}
			product, err := qtx.GetProductForOrder(ctx, productID)
			if err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return SubmitOrderResult{}, ErrProductNotFound
				}
				return SubmitOrderResult{}, fmt.Errorf("get product: %w", err)
			}
			if _, err := qtx.DeductProductStock(ctx, database.DeductProductStockParams{
				ID:    productID,
				Stock: item.Quantity,
			}); err != nil {
				if errors.Is(err, pgx.ErrNoRows) {
					return SubmitOrderResult{}, ErrInsufficientStock
				}
				return SubmitOrderResult{}, fmt.Errorf("deduct stock: %w", err)
			}
			line.productID = pgtype.UUID{Bytes: productID, Valid: true}
			line.name = product.Name
			line.unitPrice = numericToDecimal(product.Price)
			line.unitCost = numericToDecimal(product.Cost)
		} else {
			line.name = strings.TrimSpace(item.Name)
			line.unitPrice = item.UnitPrice
		}
		total = total.Add(line.unitPrice.Mul(decimal.NewFromInt(int64(line.quantity))))
		lines = append(lines, line)
	}

	if !total.Equal(input.Total) {
		return SubmitOrderResult{}, ErrTotalMismatch
	}

	status := enum.OrderStatusPaid
	paidAt := pgtype.Timestamptz{Time: time.Now(), Valid: true}
	// Customer details belong to the debt lifecycle; stray values on a
	// CASH or QR sale are dropped.
	customerName := pgtype.Text{}
	customerContact := pgtype.Text{}
	if input.PaymentMethod == enum.PaymentMethodCredit {
		status = enum.OrderStatusUnpaid
		paidAt = pgtype.Timestamptz{}
		customerName = textOrNull(input.CustomerName)
		customerContact = textOrNull(input.CustomerContact)
	}

	order, err := qtx.CreateOrder(ctx, database.CreateOrderParams{
		TotalAmount:     decimalToNumeric(total),
		PaymentMethod:   input.PaymentMethod,
		Status:          status,
		SlipUrl:         textOrNull(input.SlipURL),
		CustomerName:    customerName,
		CustomerContact: customerContact,
		PaidAt:          paidAt,
	})
	if err != nil {
		return SubmitOrderResult{}, fmt.Errorf("create order: %w", err)
	}

	items := make([]database.OrderItem, 0, len(lines))
	for _, line := range lines {
		item, err := qtx.CreateOrderItem(ctx, database.CreateOrderItemParams{
			OrderID:     order.ID,
			ProductID:   line.productID,
			ProductName: line.name,
			Quantity:    line.quantity,
			UnitPrice:   decimalToNumeric(line.unitPrice),
			UnitCost:    decimalToNumeric(line.unitCost),
		})
		if err != nil {
			return SubmitOrderResult{}, fmt.Errorf("create order item: %w", err)
		}
		items = append(items, item)
	}

	if err := tx.Commit(ctx); err != nil {
		return SubmitOrderResult{}, fmt.Errorf("commit tx: %w", err)
	}

	result := SubmitOrderResult{Order: order, Items: items}
	result.Notified = s.notify(ctx, orderCreatedEmbed(order, items))
	s.publish("order.created", order)
	return result, nil
}

type SettleDebtResult struct {
	Order    database.Order
	Notified bool
}

// SettleDebt marks an unpaid credit order as paid, recording the method the
// customer actually paid with. Settling an already-paid order re-stamps
// paid_at and the method, so a retried settle always lands in a paid state.
func (s *OrderService) SettleDebt(ctx context.Context, orderID uuid.UUID, method string) (SettleDebtResult, error) {
	if method != enum.PaymentMethodCash && method != enum.PaymentMethodQR {
		return SettleDebtResult{}, ErrInvalidSettleMethod
	}

	tx, err := s.db.Begin(ctx)
	if err != nil {
		return SettleDebtResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.newStore(tx)

	if _, err := qtx.GetOrder(ctx, orderID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return SettleDebtResult{}, ErrOrderNotFound
		}
		return SettleDebtResult{}, fmt.Errorf("get order: %w", err)
	}

	settled, err := qtx.SettleOrder(ctx, database.SettleOrderParams{
		ID:            orderID,
		PaymentMethod: method,
	})
	if err != nil {
		return SettleDebtResult{}, fmt.Errorf("settle order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return SettleDebtResult{}, fmt.Errorf("commit tx: %w", err)
	}

	result := SettleDebtResult{Order: settled}
	result.Notified = s.notify(ctx, debtSettledEmbed(settled))
	s.publish("order.settled", settled)
	return result, nil
}

type DeleteOrderResult struct {
	Order    database.Order
	Notified bool
}

// DeleteOrder removes an order and its items and puts the sold quantities
// back into stock, all in one transaction. Custom lines and lines whose
// product has since been removed restore nothing.
func (s *OrderService) DeleteOrder(ctx context.Context, orderID uuid.UUID) (DeleteOrderResult, error) {
	tx, err := s.db.Begin(ctx)
	if err != nil {
		return DeleteOrderResult{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	qtx := s.newStore(tx)

	order, err := qtx.GetOrder(ctx, orderID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return DeleteOrderResult{}, ErrOrderNotFound
		}
		return DeleteOrderResult{}, fmt.Errorf("get order: %w", err)
	}

	items, err := qtx.ListOrderItemsByOrder(ctx, orderID)
	if err != nil {
		return DeleteOrderResult{}, fmt.Errorf("list order items: %w", err)
	}

	for _, item := range items {
		if !item.ProductID.Valid {
			continue
		}
		if _, err := qtx.AdjustProductStock(ctx, database.AdjustProductStockParams{
			ID:    uuid.UUID(item.ProductID.Bytes),
			Stock: item.Quantity,
		}); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				continue
			}
			return DeleteOrderResult{}, fmt.Errorf("restore stock: %w", err)
		}
	}

	if err := qtx.DeleteOrderItemsByOrder(ctx, orderID); err != nil {
		return DeleteOrderResult{}, fmt.Errorf("delete order items: %w", err)
	}
	if _, err := qtx.DeleteOrder(ctx, orderID); err != nil {
		return DeleteOrderResult{}, fmt.Errorf("delete order: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return DeleteOrderResult{}, fmt.Errorf("commit tx: %w", err)
	}

	result := DeleteOrderResult{Order: order}
	result.Notified = s.notify(ctx, orderDeletedEmbed(order))
	s.publish("order.deleted", order)
	return result, nil
}

func (s *OrderService) notify(ctx context.Context, embed notify.Embed) bool {
	if s.notifier == nil {
		return false
	}
	if err := s.notifier.Send(ctx, embed); err != nil {
		log.Printf("ERROR: failed to send notification: %v", err)
		return false
	}
	return true
}

func (s *OrderService) publish(event string, data any) {
	if s.events != nil {
		s.events.Publish(event, data)
	}
}

func orderCreatedEmbed(order database.Order, items []database.OrderItem) notify.Embed {
	var sb strings.Builder
	for _, item := range items {
		fmt.Fprintf(&sb, "%dx %s — %s\n", item.Quantity, item.ProductName, numericToDecimal(item.UnitPrice).StringFixed(2))
	}
	fields := []notify.EmbedField{
		{Name: "Total", Value: numericToDecimal(order.TotalAmount).StringFixed(2), Inline: true},
		{Name: "Payment", Value: order.PaymentMethod, Inline: true},
	}
	if order.CustomerName.Valid {
		fields = append(fields, notify.EmbedField{Name: "Customer", Value: order.CustomerName.String, Inline: true})
	}
	embed := notify.Embed{
		Title:       "New Order",
		Description: strings.TrimRight(sb.String(), "\n"),
		Color:       notify.MethodColor(order.PaymentMethod),
		Fields:      fields,
	}
	if order.SlipUrl.Valid {
		embed.Image = &notify.EmbedImage{URL: order.SlipUrl.String}
	}
	return embed
}

func debtSettledEmbed(order database.Order) notify.Embed {
	fields := []notify.EmbedField{
		{Name: "Total", Value: numericToDecimal(order.TotalAmount).StringFixed(2), Inline: true},
		{Name: "Paid With", Value: order.PaymentMethod, Inline: true},
	}
	if order.CustomerName.Valid {
		fields = append(fields, notify.EmbedField{Name: "Customer", Value: order.CustomerName.String, Inline: true})
	}
	// Settled notices are always green, whatever the instrument.
	return notify.Embed{
		Title:  "Debt Settled",
		Color:  notify.ColorCash,
		Fields: fields,
	}
}

func orderDeletedEmbed(order database.Order) notify.Embed {
	return notify.Embed{
		Title: "Order Deleted",
		Color: notify.ColorNeutral,
		Fields: []notify.EmbedField{
			{Name: "Total", Value: numericToDecimal(order.TotalAmount).StringFixed(2), Inline: true},
			{Name: "Payment", Value: order.PaymentMethod, Inline: true},
		},
	}
}

func textOrNull(s string) pgtype.Text {
	s = strings.TrimSpace(s)
	if s == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: s, Valid: true}
}

func decimalToNumeric(d decimal.Decimal) pgtype.Numeric {
	var n pgtype.Numeric
	if err := n.Scan(d.String()); err != nil {
		return pgtype.Numeric{}
	}
	return n
}

func numericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid {
		return decimal.Zero
	}
	v, err := n.Value()
	if err != nil {
		return decimal.Zero
	}
	s, ok := v.(string)
	if !ok {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}
