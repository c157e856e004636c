package models

// OrderStatus tracks an order through its lifecycle.
type OrderStatus string

const (
	OrderPending    OrderStatus = "PENDING"
	OrderProcessing OrderStatus = "PROCESSING"
	OrderCompleted  OrderStatus = "COMPLETED"
	OrderCancelled  OrderStatus = "CANCELLED"
	OrderRefunded   OrderStatus = "REFUNDED"
)

// PaymentStatus tracks a payment attempt.
type PaymentStatus string

const (
	PaymentPending    PaymentStatus = "PENDING"
	PaymentAuthorized PaymentStatus = "AUTHORIZED"
	PaymentCompleted  PaymentStatus = "COMPLETED"
	PaymentFailed     PaymentStatus = "FAILED"
	PaymentRefunded   PaymentStatus = "REFUNDED"
)

// PaymentMethod enumerates supported payment instruments.
type PaymentMethod string

const (
	PaymentCreditCard     PaymentMethod = "CREDIT_CARD"
	PaymentDebitCard      PaymentMethod = "DEBIT_CARD"
	PaymentPayPal         PaymentMethod = "PAYPAL"
	PaymentCryptocurrency PaymentMethod = "CRYPTOCURRENCY"
	PaymentBankTransfer   PaymentMethod = "BANK_TRANSFER"
)

// Payment records the payment attached to an order.
type Payment struct {
	ID              string        `json:"id"`
	OrderID         string        `json:"orderId"`
	Amount          float64       `json:"amount"`
	PaymentMethod   PaymentMethod `json:"paymentMethod"`
	PaymentStatus   PaymentStatus `json:"paymentStatus"`
	TransactionDate string        `json:"transactionDate"`
	TransactionID   string        `json:"transactionId,omitempty"`
}

// OrderItem is a single purchased game inside an order.
type OrderItem struct {
	ID           string  `json:"id"`
	OrderID      string  `json:"orderId"`
	GameID       string  `json:"gameId"`
	Game         Game    `json:"game"`
	Price        float64 `json:"price"`
	PurchaseDate string  `json:"purchaseDate"`
}

// Order is a completed or in-flight purchase.
type Order struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	OrderDate     string      `json:"orderDate"`
	TotalAmount   float64     `json:"totalAmount"`
	OrderStatus   OrderStatus `json:"orderStatus"`
	PaymentMethod string      `json:"paymentMethod"`
	Items         []OrderItem `json:"items"`
	Payment       *Payment    `json:"payment,omitempty"`
}
