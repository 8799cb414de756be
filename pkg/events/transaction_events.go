package events

import "time"

const (
	TypeTransactionCreated  = "TRANSACTION_CREATED"
	TypeTransactionPaid     = "TRANSACTION_PAID"
	TypeTransactionFailed   = "TRANSACTION_FAILED"
	TypeTransactionExpired  = "TRANSACTION_EXPIRED"
	TypeEntitlementGranted  = "ENTITLEMENT_GRANTED"
	TypeSubscriptionStarted = "SUBSCRIPTION_ACTIVATED"
)

// NewTransactionCreatedEvent is emitted when a checkout intent is opened.
func NewTransactionCreatedEvent(userId, transactionId, code string, totalAmount int64) Event {
	return BaseEvent{
		Type: TypeTransactionCreated,
		Data: map[string]interface{}{
			"user_id":        userId,
			"transaction_id": transactionId,
			"code":           code,
			"total_amount":   totalAmount,
		},
		OccurredAt: time.Now(),
	}
}

// NewTransactionPaidEvent is emitted after a settlement is committed.
func NewTransactionPaidEvent(userId, transactionId, code, source string, totalAmount int64) Event {
	return BaseEvent{
		Type: TypeTransactionPaid,
		Data: map[string]interface{}{
			"user_id":        userId,
			"transaction_id": transactionId,
			"code":           code,
			"source":         source,
			"total_amount":   totalAmount,
		},
		OccurredAt: time.Now(),
	}
}

// NewTransactionFailedEvent is emitted when the gateway reports a final failure.
func NewTransactionFailedEvent(userId, transactionId, code, reason string) Event {
	return BaseEvent{
		Type: TypeTransactionFailed,
		Data: map[string]interface{}{
			"user_id":        userId,
			"transaction_id": transactionId,
			"code":           code,
			"reason":         reason,
		},
		OccurredAt: time.Now(),
	}
}

// NewTransactionExpiredEvent is emitted when a pending transaction is hard-expired.
func NewTransactionExpiredEvent(userId, transactionId, code string) Event {
	return BaseEvent{
		Type: TypeTransactionExpired,
		Data: map[string]interface{}{
			"user_id":        userId,
			"transaction_id": transactionId,
			"code":           code,
		},
		OccurredAt: time.Now(),
	}
}

// NewEntitlementGrantedEvent is emitted for each purchasable unlocked by a payment.
func NewEntitlementGrantedEvent(userId, transactionId, purchasableType, purchasableId string) Event {
	return BaseEvent{
		Type: TypeEntitlementGranted,
		Data: map[string]interface{}{
			"user_id":          userId,
			"transaction_id":   transactionId,
			"purchasable_type": purchasableType,
			"purchasable_id":   purchasableId,
		},
		OccurredAt: time.Now(),
	}
}

// NewSubscriptionActivatedEvent is emitted when an author plan subscription goes active.
func NewSubscriptionActivatedEvent(userId, subscriptionId, planId string, expiresAt *time.Time) Event {
	data := map[string]interface{}{
		"user_id":         userId,
		"subscription_id": subscriptionId,
		"plan_id":         planId,
	}
	if expiresAt != nil {
		data["expires_at"] = expiresAt.UTC().Format(time.RFC3339)
	}
	return BaseEvent{
		Type:       TypeSubscriptionStarted,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
