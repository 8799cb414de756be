package dto

import "github.com/google/uuid"

// SendReceiptMessage travels over the internal pub/sub channel from the
// reconciliation path to the receipt mailer.
type SendReceiptMessage struct {
	TransactionId uuid.UUID `json:"transaction_id"`
}
