package payment

import "context"

// SessionRequest describes the checkout session to open at the gateway.
type SessionRequest struct {
	OrderId       string
	GrossAmount   int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	Items         []SessionItem
	ExpiryMinutes int
	FinishURL     string
}

// SessionItem is a single line item shown on the gateway checkout page.
type SessionItem struct {
	Id    string
	Name  string
	Price int64
	Qty   int32
}

// Session is the handle the client uses to complete payment.
type Session struct {
	Token       string
	RedirectURL string
}

// Status is the gateway's view of a transaction, normalized for reconciliation.
type Status struct {
	OrderId              string
	TransactionStatus    string
	FraudStatus          string
	PaymentType          string
	GatewayTransactionId string
}

// Gateway abstracts the payment provider so reconciliation stays provider-agnostic.
type Gateway interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
	QueryStatus(ctx context.Context, orderId string) (*Status, error)
	Cancel(ctx context.Context, orderId string) error
	VerifySignature(orderId, statusCode, grossAmount, signatureKey string) bool
}
