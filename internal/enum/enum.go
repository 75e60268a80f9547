package enum

// ── Order lifecycle (CHECK constrained in DB) ──

const (
	OrderStatusPaid   = "PAID"
	OrderStatusUnpaid = "UNPAID"
)

// ── Payment instruments (CHECK constrained in DB) ──
//
// CREDIT is only stored at creation time; settling a credit order
// overwrites it with the instrument actually used (CASH or QR).

const (
	PaymentMethodCash   = "CASH"
	PaymentMethodQR     = "QR"
	PaymentMethodCredit = "CREDIT"
)

// ── Auth ──

const RoleAdmin = "ADMIN"
