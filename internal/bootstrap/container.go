package bootstrap

import (
	"context"
	"fmt"
	"log"
	"time"

	"bookverse-be/internal/config"
	"bookverse-be/internal/controller"
	"bookverse-be/internal/pkg/logger"
	"bookverse-be/internal/pkg/mailer"
	"bookverse-be/internal/repository/unitofwork"
	"bookverse-be/internal/service"

	"bookverse-be/pkg/catalog/access"
	"bookverse-be/pkg/catalog/counts"
	pktNats "bookverse-be/pkg/nats"
	"bookverse-be/pkg/payment/midtrans"
	"bookverse-be/pkg/payment/reconcile"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const receiptTopicName = "SEND_PAYMENT_RECEIPT"

type Container struct {
	// Controllers
	AuthController         controller.IAuthController
	CatalogController      controller.ICatalogController
	TransactionController  controller.ITransactionController
	SubscriptionController controller.ISubscriptionController
	ReaderController       controller.IReaderController
	AdminController        controller.IAdminController

	// Background Services (Exposed for main.go to run)
	ReceiptConsumerService service.IConsumerService
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.SenderName,
	)

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 2.5 Infrastructure
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	}

	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{
			Addr: cfg.App.RedisURL,
		}
	}
	rdb := redis.NewClient(opt)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}

	gateway := midtrans.NewGateway(cfg.Midtrans.ServerKey, cfg.Midtrans.IsProduction)
	engine := reconcile.NewEngine(uowFactory, sysLogger)

	countsStore := counts.NewMemoryStore(10 * time.Minute)
	resolver := access.NewResolver(&entitlementReader{factory: uowFactory})

	// 3. Services
	publisherService := service.NewPublisherService(receiptTopicName, pubSub)
	receiptConsumerService := service.NewReceiptConsumerService(
		pubSub,
		receiptTopicName,
		uowFactory,
		emailService,
	)

	authService := service.NewAuthService(uowFactory, natsPub)
	catalogService := service.NewCatalogService(uowFactory, countsStore, resolver)
	reviewService := service.NewReviewService(uowFactory)
	subscriptionService := service.NewSubscriptionService(uowFactory)
	readerService := service.NewReaderService(uowFactory, resolver, rdb)

	finishURL := fmt.Sprintf("%s/transactions?payment=finished", cfg.App.ClientURL)
	purchaseService := service.NewPurchaseService(
		uowFactory,
		gateway,
		natsPub,
		sysLogger,
		cfg.Checkout.ExpiryMinutes,
		finishURL,
	)
	transactionService := service.NewTransactionService(
		uowFactory,
		gateway,
		engine,
		natsPub,
		publisherService,
		sysLogger,
	)

	// 4. Controllers
	return &Container{
		AuthController:         controller.NewAuthController(authService),
		CatalogController:      controller.NewCatalogController(catalogService, reviewService),
		TransactionController:  controller.NewTransactionController(purchaseService, transactionService),
		SubscriptionController: controller.NewSubscriptionController(subscriptionService),
		ReaderController:       controller.NewReaderController(readerService),
		AdminController:        controller.NewAdminController(catalogService, transactionService, cfg.Checkout.PendingSyncDays),

		ReceiptConsumerService: receiptConsumerService,
	}
}
