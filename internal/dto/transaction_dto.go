package dto

import (
	"time"

	"github.com/google/uuid"
)

type PurchaseBookRequest struct {
	BookId uuid.UUID `json:"book_id" validate:"required"`
}

type PurchaseChapterRequest struct {
	ChapterId uuid.UUID `json:"chapter_id" validate:"required"`
}

type SubscribeRequest struct {
	PlanId uuid.UUID `json:"plan_id" validate:"required"`
}

// CheckoutResponse hands the client what it needs to open the Snap
// payment page. Resumed indicates an existing live pending checkout
// was returned instead of a fresh one.
type CheckoutResponse struct {
	TransactionId   uuid.UUID `json:"transaction_id"`
	Code            string    `json:"code"`
	TotalAmount     int64     `json:"total_amount"`
	AmountFormatted string    `json:"amount_formatted"`
	SnapToken       string    `json:"snap_token"`
	SnapRedirectUrl string    `json:"snap_redirect_url"`
	ExpiresAt       time.Time `json:"expires_at"`
	Resumed         bool      `json:"resumed"`
}

type MidtransWebhookRequest struct {
	TransactionStatus string `json:"transaction_status"`
	OrderId           string `json:"order_id"`
	FraudStatus       string `json:"fraud_status"`
	PaymentType       string `json:"payment_type"`
	TransactionId     string `json:"transaction_id"`
	// Signature validation fields
	SignatureKey string `json:"signature_key"`
	StatusCode   string `json:"status_code"`
	GrossAmount  string `json:"gross_amount"`
}

type TransactionItemResponse struct {
	ItemType string    `json:"item_type"`
	ItemId   uuid.UUID `json:"item_id"`
	Title    string    `json:"title"`
	Price    int64     `json:"price"`
	Quantity int       `json:"quantity"`
}

type TransactionResponse struct {
	Id              uuid.UUID                 `json:"id"`
	Code            string                    `json:"code"`
	Type            string                    `json:"type"`
	Status          string                    `json:"status"`
	TotalAmount     int64                     `json:"total_amount"`
	AmountFormatted string                    `json:"amount_formatted"`
	PaymentMethod   *string                   `json:"payment_method"`
	PaidAt          *time.Time                `json:"paid_at"`
	ExpiresAt       time.Time                 `json:"expires_at"`
	IsExpired       bool                      `json:"is_expired"`
	CanBePaid       bool                      `json:"can_be_paid"`
	Notes           *string                   `json:"notes"`
	CreatedAt       time.Time                 `json:"created_at"`
	Items           []TransactionItemResponse `json:"items"`
}

// TransactionStatusResponse is the poll endpoint's answer after the
// gateway has been consulted and the local row reconciled.
type TransactionStatusResponse struct {
	Code          string     `json:"code"`
	Status        string     `json:"status"`
	GatewayStatus string     `json:"gateway_status"`
	PaidAt        *time.Time `json:"paid_at"`
	IsExpired     bool       `json:"is_expired"`
	CanBePaid     bool       `json:"can_be_paid"`
}

// SyncRowResult is the per-transaction outcome of an admin bulk sync.
type SyncRowResult struct {
	Code       string `json:"code"`
	FromStatus string `json:"from_status"`
	ToStatus   string `json:"to_status"`
	Outcome    string `json:"outcome"`
	Error      string `json:"error,omitempty"`
}

type SyncResultResponse struct {
	Scanned     int             `json:"scanned"`
	Transitions int             `json:"transitions"`
	Conflicts   int             `json:"conflicts"`
	Errors      int             `json:"errors"`
	Rows        []SyncRowResult `json:"rows"`
}
