package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	_ "github.com/SergeyBogomolovv/buynothing-checkout/docs"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/app"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/checkout"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/config"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/events"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/gateway"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/handler"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/mailbox"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/postgres"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/redis"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/repo"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/service"
	"github.com/SergeyBogomolovv/buynothing-checkout/internal/storefront"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/cache"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/httpclient"
	"github.com/SergeyBogomolovv/buynothing-checkout/pkg/trm"

	"github.com/joho/godotenv"
)

// @title           Buy Nothing Checkout API
// @version         1.0
// @description     Оформление "пустых" заказов: сессии, оплата через шлюз, подтверждение и публикация в соцсетях
// @BasePath        /
func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	db, err := postgres.New(ctx, conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	panicIfErr("failed to migrate db", postgres.Migrate(ctx, db))
	logger.Info("postgres connected")

	redisClient, err := redis.New(ctx, conf.Redis)
	panicIfErr("failed to connect to redis", err)
	defer redisClient.Close()
	logger.Info("redis connected")

	receiptRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	receiptService := service.NewReceiptService(logger, txManager, receiptRepo)

	httpConf := httpclient.DefaultConfig()
	httpConf.Timeout = conf.Storefront.Timeout
	httpConf.MaxRetries = conf.Storefront.MaxRetries
	breakerConf := httpclient.DefaultCircuitBreakerConfig("storefront")
	breakerConf.Timeout = conf.Storefront.BreakerTimeout
	httpClient := httpclient.New(httpConf)
	storefrontClient := storefront.NewClient(
		logger,
		httpclient.NewCircuitBreakerClient(httpClient, breakerConf, logger),
		conf.Storefront.BaseURL,
	)

	productCache := cache.NewLRUCache("catalog", conf.Cache.Capacity, conf.Cache.TTL)
	catalogService := service.NewCatalogService(logger, storefrontClient, productCache)
	contactService := service.NewContactService(logger, storefrontClient)

	loader := gateway.NewLoader(logger, httpClient, conf.Gateway.SDKURL)
	adapter := gateway.NewAdapter(logger, loader, storefrontClient, storefrontClient, gateway.Config{
		KeyID:           conf.Gateway.KeyID,
		CheckoutURL:     conf.Gateway.CheckoutURL,
		Currency:        conf.Gateway.Currency,
		MerchantName:    conf.Gateway.MerchantName,
		CallbackBaseURL: conf.Http.PublicBaseURL,
		AttemptTTL:      conf.Gateway.AttemptTTL,
	})

	eventsWriter := events.NewWriter(conf.Kafka)
	publisher := events.NewPublisher(logger, eventsWriter, conf.Kafka.EventsTopic)
	defer publisher.Close()

	orderMailbox := mailbox.New(logger, redisClient, conf.Mailbox.TTL, conf.Mailbox.PollInterval)

	checkoutService := checkout.NewService(logger, checkout.Deps{
		Catalog:  catalogService,
		Payments: adapter,
		Orders:   storefrontClient,
		Mailbox:  orderMailbox,
		Journal:  receiptService,
		Events:   publisher,
	}, checkout.Config{
		MailboxKey: conf.Mailbox.Key,
		SessionTTL: conf.Checkout.SessionTTL,
	})

	checkoutHandler := handler.NewCheckoutHandler(logger, checkoutService)
	gatewayHandler := handler.NewGatewayHandler(logger, adapter, checkoutService)
	catalogHandler := handler.NewCatalogHandler(logger, catalogService, contactService)
	receiptHandler := handler.NewReceiptHandler(logger, receiptService, conf.Checkout.ReceiptsLimit)
	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, orderMailbox, conf.Mailbox.Key)

	app := app.New(logger, conf)

	app.SetHTTPHandlers(checkoutHandler, gatewayHandler, catalogHandler, receiptHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(productCache, catalogWarmUpAdapter{svc: catalogService, logger: logger}, checkoutService)

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}

type warmUpper interface {
	WarmUp(ctx context.Context) error
}

// catalogWarmUpAdapter fills the product cache in the background. The
// storefront being down at boot only means a cold cache.
type catalogWarmUpAdapter struct {
	svc    warmUpper
	logger *slog.Logger
}

func (a catalogWarmUpAdapter) Start(ctx context.Context) error {
	go func() {
		if err := a.svc.WarmUp(ctx); err != nil {
			a.logger.Warn("failed to warm up catalog cache", slog.Any("error", err))
		}
	}()
	return nil
}
