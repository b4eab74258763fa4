package routes

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	_ "photo_studio/docs" // This will be auto-generated
	"photo_studio/internal/adapter/http/handlers"
	repository2 "photo_studio/internal/adapter/persistence/repository"
	"photo_studio/internal/infrastructure/config"
	"photo_studio/internal/infrastructure/database"
	"photo_studio/internal/infrastructure/notification"
	"photo_studio/internal/infrastructure/payments"
	"photo_studio/internal/usecase"
	"photo_studio/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const shutdownTimeout = 10 * time.Second

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	app, err := getRoutes(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err)
	}

	srv := &http.Server{
		Addr:    ":" + strconv.Itoa(cfg.Port),
		Handler: router,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to startup the application: %v", err.Error())
		}
	}()
	log.Printf("[server] listening port=%d", cfg.Port)

	<-ctx.Done()
	log.Printf("[server] shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[server] http shutdown failed err=%v", err)
	}
	app.shutdown(shutdownCtx)
}

// application holds what must be drained on shutdown.
type application struct {
	poller     *usecase.PaymentPoller
	reconciler *usecase.PaymentReconciler
}

func (a application) shutdown(ctx context.Context) {
	if err := a.poller.Shutdown(ctx); err != nil {
		log.Printf("[server] poller shutdown failed err=%v", err)
	}
	done := make(chan struct{})
	go func() {
		a.reconciler.WaitNotifications()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		log.Printf("[server] pending notifications dropped err=%v", ctx.Err())
	}
}

func getRoutes(ctx context.Context, cfg config.Config) (application, error) {
	pricing, err := cfg.Pricing()
	if err != nil {
		return application{}, err
	}

	ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
	if err != nil {
		return application{}, err
	}

	orderRepo := repository2.NewOrderDynamoRepository(ddb, cfg.Tables.Orders)
	bookingRepo := repository2.NewBookingDynamoRepository(ddb, cfg.Tables.Bookings)
	galleryRepo := repository2.NewGalleryDynamoRepository(ddb, cfg.Tables.Galleries)
	attemptRepo := repository2.NewPaymentAttemptDynamoRepository(ddb, cfg.Tables.PaymentAttempts)

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(payments.GatewayConfig{
		AccessToken:     cfg.MercadoPagoAccessToken,
		NotificationURL: cfg.MercadoPagoNotificationURL,
		PixExpiration:   cfg.PixExpiration,
		Mock:            cfg.PaymentGatewayMock,
	})
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	var notifier interfaces.INotifier
	redisClient, err := database.ConnectRedis(ctx, cfg)
	if err != nil {
		log.Printf("[notification] redis unavailable, notifications disabled err=%v", err)
	} else {
		notifier = notification.NewRedisNotifier(redisClient, cfg.NotificationsQueue)
	}

	resolver := usecase.NewStatusResolver(paymentGateway, orderRepo)
	reconciler := usecase.NewPaymentReconciler(bookingRepo, galleryRepo, orderRepo, notifier, pricing)
	poller := usecase.NewPaymentPoller(resolver, reconciler, attemptRepo, usecase.PollPolicy{
		InitialInterval: cfg.Poll.InitialInterval,
		MaxInterval:     cfg.Poll.MaxInterval,
		Multiplier:      cfg.Poll.Multiplier,
		MaxAttempts:     cfg.Poll.MaxAttempts,
		Timeout:         cfg.Poll.Timeout,
	})

	bookingPaymentUseCase := usecase.NewBookingPaymentUseCase(paymentGateway, attemptRepo, orderRepo, poller, pricing)
	bookingUseCase := usecase.NewBookingUseCase(bookingRepo, galleryRepo)
	selectionUseCase := usecase.NewSelectionUseCase(galleryRepo, reconciler, paymentGateway, attemptRepo, orderRepo, poller, pricing)
	webhookUseCase := usecase.NewWebhookUseCase(paymentGateway, attemptRepo, reconciler)

	bookingPaymentHandler := handlers.NewBookingPaymentHandler(bookingPaymentUseCase)
	bookingHandler := handlers.NewBookingHandler(bookingUseCase)
	selectionHandler := handlers.NewSelectionHandler(selectionUseCase)
	webhookHandler := handlers.NewWebhookHandler(webhookUseCase)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addBookingRoutes(v1, bookingHandler, bookingPaymentHandler)
	addGalleryRoutes(v1, bookingHandler, selectionHandler)
	addPaymentRoutes(v1, bookingPaymentHandler)
	addWebhookRoutes(v1, webhookHandler)

	return application{poller: poller, reconciler: reconciler}, nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
