package service

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"

	"github.com/raan-pos/api/internal/database"
	"github.com/raan-pos/api/internal/enum"
	"github.com/raan-pos/api/internal/notify"
)

type mockTx struct {
	committed  bool
	rolledBack bool
	commitErr  error
}

func (t *mockTx) Begin(ctx context.Context) (pgx.Tx, error) { panic("not implemented") }
func (t *mockTx) Commit(ctx context.Context) error {
	t.committed = true
	return t.commitErr
}
func (t *mockTx) Rollback(ctx context.Context) error {
	t.rolledBack = true
	return nil
}
func (t *mockTx) CopyFrom(ctx context.Context, tableName pgx.Identifier, columnNames []string, rowSrc pgx.CopyFromSource) (int64, error) {
	panic("not implemented")
}
func (t *mockTx) SendBatch(ctx context.Context, b *pgx.Batch) pgx.BatchResults {
	panic("not implemented")
}
func (t *mockTx) LargeObjects() pgx.LargeObjects { panic("not implemented") }
func (t *mockTx) Prepare(ctx context.Context, name, sql string) (*pgconn.StatementDescription, error) {
	panic("not implemented")
}
func (t *mockTx) Exec(ctx context.Context, sql string, arguments ...interface{}) (pgconn.CommandTag, error) {
	panic("not implemented")
}
func (t *mockTx) Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error) {
	panic("not implemented")
}
func (t *mockTx) QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row {
	panic("not implemented")
}
func (t *mockTx) Conn() *pgx.Conn { panic("not implemented") }

type mockDB struct {
	tx       *mockTx
	beginErr error
}

func (d *mockDB) Begin(ctx context.Context) (pgx.Tx, error) {
	if d.beginErr != nil {
		return nil, d.beginErr
	}
	return d.tx, nil
}

type mockOrderStore struct {
	getProductForOrderFn      func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error)
	deductProductStockFn      func(ctx context.Context, arg database.DeductProductStockParams) (int32, error)
	adjustProductStockFn      func(ctx context.Context, arg database.AdjustProductStockParams) (database.Product, error)
	createOrderFn             func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error)
	createOrderItemFn         func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error)
	getOrderFn                func(ctx context.Context, id uuid.UUID) (database.Order, error)
	listOrderItemsByOrderFn   func(ctx context.Context, orderID uuid.UUID) ([]database.OrderItem, error)
	settleOrderFn             func(ctx context.Context, arg database.SettleOrderParams) (database.Order, error)
	deleteOrderItemsByOrderFn func(ctx context.Context, orderID uuid.UUID) error
	deleteOrderFn             func(ctx context.Context, id uuid.UUID) (int64, error)
}

func (m *mockOrderStore) GetProductForOrder(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
	return m.getProductForOrderFn(ctx, id)
}
func (m *mockOrderStore) DeductProductStock(ctx context.Context, arg database.DeductProductStockParams) (int32, error) {
	return m.deductProductStockFn(ctx, arg)
}
func (m *mockOrderStore) AdjustProductStock(ctx context.Context, arg database.AdjustProductStockParams) (database.Product, error) {
	return m.adjustProductStockFn(ctx, arg)
}
func (m *mockOrderStore) CreateOrder(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
	return m.createOrderFn(ctx, arg)
}
func (m *mockOrderStore) CreateOrderItem(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
	return m.createOrderItemFn(ctx, arg)
}
func (m *mockOrderStore) GetOrder(ctx context.Context, id uuid.UUID) (database.Order, error) {
	return m.getOrderFn(ctx, id)
}
func (m *mockOrderStore) ListOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) ([]database.OrderItem, error) {
	return m.listOrderItemsByOrderFn(ctx, orderID)
}
func (m *mockOrderStore) SettleOrder(ctx context.Context, arg database.SettleOrderParams) (database.Order, error) {
	return m.settleOrderFn(ctx, arg)
}
func (m *mockOrderStore) DeleteOrderItemsByOrder(ctx context.Context, orderID uuid.UUID) error {
	return m.deleteOrderItemsByOrderFn(ctx, orderID)
}
func (m *mockOrderStore) DeleteOrder(ctx context.Context, id uuid.UUID) (int64, error) {
	return m.deleteOrderFn(ctx, id)
}

type mockNotifier struct {
	err  error
	sent []notify.Embed
}

func (m *mockNotifier) Send(ctx context.Context, embed notify.Embed) error {
	m.sent = append(m.sent, embed)
	return m.err
}

type mockEvents struct {
	published []string
}

func (m *mockEvents) Publish(event string, data any) {
	m.published = append(m.published, event)
}

func newTestService(store OrderStore) (*OrderService, *mockTx, *mockNotifier, *mockEvents) {
	tx := &mockTx{}
	notifier := &mockNotifier{}
	events := &mockEvents{}
	svc := NewOrderService(
		&mockDB{tx: tx},
		func(db database.DBTX) OrderStore { return store },
		notifier,
		events,
	)
	return svc, tx, notifier, events
}

func validUUID(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func productRow(id uuid.UUID, name, price, cost string, stock int32) database.GetProductForOrderRow {
	return database.GetProductForOrderRow{
		ID:    id,
		Name:  name,
		Price: decimalToNumeric(decimal.RequireFromString(price)),
		Cost:  decimalToNumeric(decimal.RequireFromString(cost)),
		Stock: stock,
	}
}

func TestSubmitOrderEmptyCart(t *testing.T) {
	svc, _, _, _ := newTestService(&mockOrderStore{})

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		PaymentMethod: enum.PaymentMethodCash,
	})
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestSubmitOrderInvalidMethod(t *testing.T) {
	svc, _, _, _ := newTestService(&mockOrderStore{})

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{Name: "Coffee", Quantity: 1, UnitPrice: decimal.NewFromInt(40)}},
		PaymentMethod: "CHECK",
	})
	if !errors.Is(err, ErrInvalidMethod) {
		t.Fatalf("expected ErrInvalidMethod, got %v", err)
	}
}

func TestSubmitOrderCreditRequiresCustomer(t *testing.T) {
	svc, _, _, _ := newTestService(&mockOrderStore{})

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{Name: "Coffee", Quantity: 1, UnitPrice: decimal.NewFromInt(40)}},
		PaymentMethod: enum.PaymentMethodCredit,
		Total:         decimal.NewFromInt(40),
		CustomerName:  "   ",
	})
	if !errors.Is(err, ErrDebtorRequired) {
		t.Fatalf("expected ErrDebtorRequired, got %v", err)
	}
}

func TestSubmitOrderInvalidQuantity(t *testing.T) {
	svc, _, _, _ := newTestService(&mockOrderStore{})

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{Name: "Coffee", Quantity: 0, UnitPrice: decimal.NewFromInt(40)}},
		PaymentMethod: enum.PaymentMethodCash,
	})
	if !errors.Is(err, ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}

func TestSubmitOrderInsufficientStock(t *testing.T) {
	productID := uuid.New()
	store := &mockOrderStore{
		getProductForOrderFn: func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
			return productRow(productID, "Latte", "50.00", "20.00", 1), nil
		},
		deductProductStockFn: func(ctx context.Context, arg database.DeductProductStockParams) (int32, error) {
			return 0, pgx.ErrNoRows
		},
	}
	svc, tx, _, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{ProductID: productID.String(), Quantity: 2}},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         decimal.NewFromInt(100),
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}
	if tx.committed {
		t.Error("expected tx not to be committed")
	}
	if !tx.rolledBack {
		t.Error("expected tx to be rolled back")
	}
}

func TestSubmitOrderUnknownProduct(t *testing.T) {
	store := &mockOrderStore{
		getProductForOrderFn: func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
			return database.GetProductForOrderRow{}, pgx.ErrNoRows
		},
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{ProductID: uuid.New().String(), Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         decimal.NewFromInt(50),
	})
	if !errors.Is(err, ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestSubmitOrderTotalMismatch(t *testing.T) {
	productID := uuid.New()
	store := &mockOrderStore{
		getProductForOrderFn: func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
			return productRow(productID, "Latte", "50.00", "20.00", 10), nil
		},
		deductProductStockFn: func(ctx context.Context, arg database.DeductProductStockParams) (int32, error) {
			return 8, nil
		},
	}
	svc, tx, _, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{ProductID: productID.String(), Quantity: 2}},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         decimal.NewFromInt(90),
	})
	if !errors.Is(err, ErrTotalMismatch) {
		t.Fatalf("expected ErrTotalMismatch, got %v", err)
	}
	if tx.committed {
		t.Error("expected tx not to be committed")
	}
}

func TestSubmitOrderCash(t *testing.T) {
	productID := uuid.New()
	orderID := uuid.New()
	var createdOrder database.CreateOrderParams
	var createdItems []database.CreateOrderItemParams
	store := &mockOrderStore{
		getProductForOrderFn: func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
			return productRow(productID, "Latte", "50.00", "20.00", 10), nil
		},
		deductProductStockFn: func(ctx context.Context, arg database.DeductProductStockParams) (int32, error) {
			return 8, nil
		},
		createOrderFn: func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
			createdOrder = arg
			return database.Order{
				ID:            orderID,
				TotalAmount:   arg.TotalAmount,
				PaymentMethod: arg.PaymentMethod,
				Status:        arg.Status,
				PaidAt:        arg.PaidAt,
			}, nil
		},
		createOrderItemFn: func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
			createdItems = append(createdItems, arg)
			return database.OrderItem{
				ID:          uuid.New(),
				OrderID:     arg.OrderID,
				ProductID:   arg.ProductID,
				ProductName: arg.ProductName,
				Quantity:    arg.Quantity,
				UnitPrice:   arg.UnitPrice,
				UnitCost:    arg.UnitCost,
			}, nil
		},
	}
	svc, tx, notifier, events := newTestService(store)

	result, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items: []OrderItemInput{
			{ProductID: productID.String(), Quantity: 2},
			{Name: "Gift wrap", Quantity: 1, UnitPrice: decimal.NewFromInt(10)},
		},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         decimal.NewFromInt(110),
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if !tx.committed {
		t.Error("expected tx to be committed")
	}
	if createdOrder.Status != enum.OrderStatusPaid {
		t.Errorf("expected status PAID, got %s", createdOrder.Status)
	}
	if !createdOrder.PaidAt.Valid {
		t.Error("expected paid_at to be set for a cash order")
	}
	if got := numericToDecimal(createdOrder.TotalAmount); !got.Equal(decimal.NewFromInt(110)) {
		t.Errorf("expected total 110, got %s", got)
	}
	if len(createdItems) != 2 {
		t.Fatalf("expected 2 items, got %d", len(createdItems))
	}
	if createdItems[0].ProductName != "Latte" {
		t.Errorf("expected catalog name Latte, got %s", createdItems[0].ProductName)
	}
	if got := numericToDecimal(createdItems[0].UnitPrice); !got.Equal(decimal.RequireFromString("50.00")) {
		t.Errorf("expected catalog price 50.00, got %s", got)
	}
	if createdItems[1].ProductID.Valid {
		t.Error("expected custom line to have no product id")
	}
	if !result.Notified {
		t.Error("expected order to be notified")
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	if len(events.published) != 1 || events.published[0] != "order.created" {
		t.Errorf("expected order.created event, got %v", events.published)
	}
}

func TestSubmitOrderCreditCreatesDebt(t *testing.T) {
	productID := uuid.New()
	var createdOrder database.CreateOrderParams
	store := &mockOrderStore{
		getProductForOrderFn: func(ctx context.Context, id uuid.UUID) (database.GetProductForOrderRow, error) {
			return productRow(productID, "Latte", "50.00", "20.00", 10), nil
		},
		deductProductStockFn: func(ctx context.Context, arg database.DeductProductStockParams) (int32, error) {
			return 9, nil
		},
		createOrderFn: func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
			createdOrder = arg
			return database.Order{ID: uuid.New(), Status: arg.Status, PaymentMethod: arg.PaymentMethod}, nil
		},
		createOrderItemFn: func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
			return database.OrderItem{}, nil
		},
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{ProductID: productID.String(), Quantity: 1}},
		PaymentMethod: enum.PaymentMethodCredit,
		Total:         decimal.NewFromInt(50),
		CustomerName:  "Somchai",
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if createdOrder.Status != enum.OrderStatusUnpaid {
		t.Errorf("expected status UNPAID, got %s", createdOrder.Status)
	}
	if createdOrder.PaidAt.Valid {
		t.Error("expected paid_at to be null for a credit order")
	}
	if !createdOrder.CustomerName.Valid || createdOrder.CustomerName.String != "Somchai" {
		t.Errorf("expected customer name Somchai, got %+v", createdOrder.CustomerName)
	}
}

func TestSubmitOrderCashDropsCustomerFields(t *testing.T) {
	var createdOrder database.CreateOrderParams
	store := &mockOrderStore{
		createOrderFn: func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
			createdOrder = arg
			return database.Order{ID: uuid.New()}, nil
		},
		createOrderItemFn: func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
			return database.OrderItem{}, nil
		},
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:           []OrderItemInput{{Name: "Snack", Quantity: 1, UnitPrice: decimal.NewFromInt(25)}},
		PaymentMethod:   enum.PaymentMethodCash,
		Total:           decimal.NewFromInt(25),
		CustomerName:    "Bob",
		CustomerContact: "0801234567",
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if createdOrder.CustomerName.Valid {
		t.Errorf("expected customer name null on a cash sale, got %+v", createdOrder.CustomerName)
	}
	if createdOrder.CustomerContact.Valid {
		t.Errorf("expected customer contact null on a cash sale, got %+v", createdOrder.CustomerContact)
	}
}

func TestSubmitOrderAttachesSlipImage(t *testing.T) {
	store := &mockOrderStore{
		createOrderFn: func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
			return database.Order{ID: uuid.New(), PaymentMethod: arg.PaymentMethod, SlipUrl: arg.SlipUrl}, nil
		},
		createOrderItemFn: func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
			return database.OrderItem{}, nil
		},
	}
	svc, _, notifier, _ := newTestService(store)

	_, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{Name: "Snack", Quantity: 1, UnitPrice: decimal.NewFromInt(25)}},
		PaymentMethod: enum.PaymentMethodQR,
		Total:         decimal.NewFromInt(25),
		SlipURL:       "https://cdn.shop.local/slips/abc.jpg",
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if len(notifier.sent) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.sent))
	}
	embed := notifier.sent[0]
	if embed.Image == nil || embed.Image.URL != "https://cdn.shop.local/slips/abc.jpg" {
		t.Errorf("expected slip image on embed, got %+v", embed.Image)
	}
}

func TestSubmitOrderNotifyFailureStillSucceeds(t *testing.T) {
	store := &mockOrderStore{
		createOrderFn: func(ctx context.Context, arg database.CreateOrderParams) (database.Order, error) {
			return database.Order{ID: uuid.New()}, nil
		},
		createOrderItemFn: func(ctx context.Context, arg database.CreateOrderItemParams) (database.OrderItem, error) {
			return database.OrderItem{}, nil
		},
	}
	svc, tx, notifier, _ := newTestService(store)
	notifier.err = errors.New("webhook down")

	result, err := svc.SubmitOrder(context.Background(), SubmitOrderInput{
		Items:         []OrderItemInput{{Name: "Snack", Quantity: 1, UnitPrice: decimal.NewFromInt(25)}},
		PaymentMethod: enum.PaymentMethodCash,
		Total:         decimal.NewFromInt(25),
	})
	if err != nil {
		t.Fatalf("SubmitOrder returned error: %v", err)
	}
	if !tx.committed {
		t.Error("expected tx to be committed despite notify failure")
	}
	if result.Notified {
		t.Error("expected Notified to be false when the webhook fails")
	}
}

func TestSettleDebtInvalidMethod(t *testing.T) {
	svc, _, _, _ := newTestService(&mockOrderStore{})

	_, err := svc.SettleDebt(context.Background(), uuid.New(), enum.PaymentMethodCredit)
	if !errors.Is(err, ErrInvalidSettleMethod) {
		t.Fatalf("expected ErrInvalidSettleMethod, got %v", err)
	}
}

func TestSettleDebtNotFound(t *testing.T) {
	store := &mockOrderStore{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.SettleDebt(context.Background(), uuid.New(), enum.PaymentMethodCash)
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestSettleDebtRestampsPaidOrder(t *testing.T) {
	orderID := uuid.New()
	settleCalls := 0
	store := &mockOrderStore{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{ID: orderID, Status: enum.OrderStatusPaid, PaymentMethod: enum.PaymentMethodQR}, nil
		},
		settleOrderFn: func(ctx context.Context, arg database.SettleOrderParams) (database.Order, error) {
			settleCalls++
			return database.Order{ID: orderID, Status: enum.OrderStatusPaid, PaymentMethod: arg.PaymentMethod}, nil
		},
	}
	svc, _, _, _ := newTestService(store)

	result, err := svc.SettleDebt(context.Background(), orderID, enum.PaymentMethodCash)
	if err != nil {
		t.Fatalf("SettleDebt returned error: %v", err)
	}
	if settleCalls != 1 {
		t.Fatalf("expected 1 settle call, got %d", settleCalls)
	}
	if result.Order.PaymentMethod != enum.PaymentMethodCash {
		t.Errorf("expected method overwritten to CASH, got %s", result.Order.PaymentMethod)
	}
}

func TestSettleDebt(t *testing.T) {
	orderID := uuid.New()
	var settleArg database.SettleOrderParams
	store := &mockOrderStore{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{ID: orderID, Status: enum.OrderStatusUnpaid, PaymentMethod: enum.PaymentMethodCredit}, nil
		},
		settleOrderFn: func(ctx context.Context, arg database.SettleOrderParams) (database.Order, error) {
			settleArg = arg
			return database.Order{ID: orderID, Status: enum.OrderStatusPaid, PaymentMethod: arg.PaymentMethod}, nil
		},
	}
	svc, tx, notifier, events := newTestService(store)

	result, err := svc.SettleDebt(context.Background(), orderID, enum.PaymentMethodQR)
	if err != nil {
		t.Fatalf("SettleDebt returned error: %v", err)
	}
	if !tx.committed {
		t.Error("expected tx to be committed")
	}
	if settleArg.PaymentMethod != enum.PaymentMethodQR {
		t.Errorf("expected settle method QR, got %s", settleArg.PaymentMethod)
	}
	if result.Order.Status != enum.OrderStatusPaid {
		t.Errorf("expected status PAID, got %s", result.Order.Status)
	}
	if !result.Notified || len(notifier.sent) != 1 {
		t.Fatal("expected settle notification")
	}
	if notifier.sent[0].Color != notify.ColorCash {
		t.Errorf("expected green settle notice, got color %d", notifier.sent[0].Color)
	}
	if len(events.published) != 1 || events.published[0] != "order.settled" {
		t.Errorf("expected order.settled event, got %v", events.published)
	}
}

func TestDeleteOrderRestoresStock(t *testing.T) {
	orderID := uuid.New()
	productID := uuid.New()
	var adjustArgs []database.AdjustProductStockParams
	itemsDeleted := false
	orderDeleted := false
	store := &mockOrderStore{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{ID: orderID, PaymentMethod: enum.PaymentMethodCash}, nil
		},
		listOrderItemsByOrderFn: func(ctx context.Context, id uuid.UUID) ([]database.OrderItem, error) {
			return []database.OrderItem{
				{OrderID: orderID, ProductID: validUUID(productID), ProductName: "Latte", Quantity: 3},
				{OrderID: orderID, ProductName: "Gift wrap", Quantity: 1},
			}, nil
		},
		adjustProductStockFn: func(ctx context.Context, arg database.AdjustProductStockParams) (database.Product, error) {
			adjustArgs = append(adjustArgs, arg)
			return database.Product{ID: arg.ID}, nil
		},
		deleteOrderItemsByOrderFn: func(ctx context.Context, id uuid.UUID) error {
			itemsDeleted = true
			return nil
		},
		deleteOrderFn: func(ctx context.Context, id uuid.UUID) (int64, error) {
			orderDeleted = true
			return 1, nil
		},
	}
	svc, tx, _, events := newTestService(store)

	_, err := svc.DeleteOrder(context.Background(), orderID)
	if err != nil {
		t.Fatalf("DeleteOrder returned error: %v", err)
	}
	if !tx.committed {
		t.Error("expected tx to be committed")
	}
	if len(adjustArgs) != 1 {
		t.Fatalf("expected 1 stock restore, got %d", len(adjustArgs))
	}
	if adjustArgs[0].ID != productID || adjustArgs[0].Stock != 3 {
		t.Errorf("expected +3 stock for %s, got %+v", productID, adjustArgs[0])
	}
	if !itemsDeleted || !orderDeleted {
		t.Error("expected order and items to be deleted")
	}
	if len(events.published) != 1 || events.published[0] != "order.deleted" {
		t.Errorf("expected order.deleted event, got %v", events.published)
	}
}

func TestDeleteOrderNotFound(t *testing.T) {
	store := &mockOrderStore{
		getOrderFn: func(ctx context.Context, id uuid.UUID) (database.Order, error) {
			return database.Order{}, pgx.ErrNoRows
		},
	}
	svc, _, _, _ := newTestService(store)

	_, err := svc.DeleteOrder(context.Background(), uuid.New())
	if !errors.Is(err, ErrOrderNotFound) {
		t.Fatalf("expected ErrOrderNotFound, got %v", err)
	}
}
