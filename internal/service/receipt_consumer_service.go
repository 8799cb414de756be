// FILE: internal/service/receipt_consumer_service.go
package service

import (
	"context"
	"encoding/json"
	"log"

	"bookverse-be/internal/dto"
	"bookverse-be/internal/pkg/mailer"
	"bookverse-be/internal/repository/specification"
	"bookverse-be/internal/repository/unitofwork"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

// receiptConsumerService mails payment receipts. It runs off an
// in-process channel so a slow SMTP server never blocks a webhook
// response.
type receiptConsumerService struct {
	pubSub       *gochannel.GoChannel
	topicName    string
	uowFactory   unitofwork.RepositoryFactory
	emailService mailer.IEmailService
}

func NewReceiptConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	uowFactory unitofwork.RepositoryFactory,
	emailService mailer.IEmailService,
) IConsumerService {
	return &receiptConsumerService{
		pubSub:       pubSub,
		topicName:    topicName,
		uowFactory:   uowFactory,
		emailService: emailService,
	}
}

func (cs *receiptConsumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *receiptConsumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.SendReceiptMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Printf("[ERROR] Failed to unmarshal receipt message: %v", err)
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	uow := cs.uowFactory.NewUnitOfWork(ctx)

	txn, err := uow.TransactionRepository().FindOne(ctx, specification.ByID{ID: payload.TransactionId})
	if err != nil {
		log.Printf("[ERROR] Failed to get transaction %s: %v", payload.TransactionId, err)
		msg.Nack() // Nack for retriable errors
		return
	}
	if txn == nil {
		log.Printf("[ERROR] Transaction not found: %s", payload.TransactionId)
		msg.Ack()
		return
	}

	user, err := uow.UserRepository().FindOne(ctx, specification.ByID{ID: txn.UserId})
	if err != nil {
		log.Printf("[ERROR] Failed to get user %s: %v", txn.UserId, err)
		msg.Nack()
		return
	}
	if user == nil {
		log.Printf("[ERROR] User not found for transaction %s", txn.Code)
		msg.Ack()
		return
	}

	titles := make([]string, 0, len(txn.Items))
	for _, item := range txn.Items {
		titles = append(titles, item.Title)
	}

	if err := cs.emailService.SendReceipt(user.Email, user.FullName, txn.Code, txn.TotalAmount, titles); err != nil {
		log.Printf("[ERROR] Failed to send receipt for %s: %v", txn.Code, err)
		msg.Nack()
		return
	}

	log.Printf("[INFO] Receipt sent for transaction %s", txn.Code)
	msg.Ack()
}
