package routes

import (
	"context"
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "fieldops/docs"
	"fieldops/internal/adapter/http/handlers"
	"fieldops/internal/adapter/http/middleware"
	"fieldops/internal/adapter/persistence/repository"
	"fieldops/internal/config"
	"fieldops/internal/domain/permissions"
	"fieldops/internal/infrastructure/auth"
	"fieldops/internal/infrastructure/database"
	"fieldops/internal/infrastructure/logger"
	"fieldops/internal/infrastructure/notifications"
	"fieldops/internal/infrastructure/payments"
	"fieldops/internal/usecase"
	"fieldops/internal/usecase/interfaces"
)

// Handlers groups every HTTP handler mounted under /v1.
type Handlers struct {
	Customers *handlers.CustomerHandler
	Jobs      *handlers.JobHandler
	Estimates *handlers.EstimateHandler
	Invoices  *handlers.InvoiceHandler
	Activity  *handlers.ActivityHandler
}

func NewHandlers(d usecase.Dependencies, gateway interfaces.IPaymentGateway) Handlers {
	return Handlers{
		Customers: handlers.NewCustomerHandler(usecase.NewCustomerUseCase(d)),
		Jobs:      handlers.NewJobHandler(usecase.NewJobUseCase(d)),
		Estimates: handlers.NewEstimateHandler(usecase.NewEstimateUseCase(d)),
		Invoices:  handlers.NewInvoiceHandler(usecase.NewInvoiceUseCase(d, gateway)),
		Activity:  handlers.NewActivityHandler(usecase.NewActivityUseCase(d)),
	}
}

// NewRouter mounts swagger and ping publicly and everything else behind the
// bearer token identity middleware.
func NewRouter(h Handlers, verifier middleware.Verifier) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)

	api := v1.Group("", middleware.Identity(verifier))
	addCustomerRoutes(api, h.Customers)
	addJobRoutes(api, h.Jobs, h.Invoices)
	addEstimateRoutes(api, h.Estimates)
	addInvoiceRoutes(api, h.Invoices)
	addActivityRoutes(api, h.Activity)
	return router
}

// Run will start the server
func Run() {
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("load config: %v", err))
	}
	log, err := logger.New(cfg.Log.Level, cfg.Log.Format, cfg.ServiceName)
	if err != nil {
		panic(fmt.Sprintf("init logger: %v", err))
	}
	defer log.Sync() //nolint:errcheck

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	deps, gateway, err := buildDependencies(ctx, cfg, log)
	cancel()
	if err != nil {
		log.Fatal("failed to wire dependencies", zap.Error(err))
	}

	router := NewRouter(NewHandlers(deps, gateway), auth.NewTokenVerifier(cfg.JWTSecret))
	log.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
	if err := router.Run(cfg.HTTPAddr); err != nil {
		log.Fatal("failed to startup the application", zap.Error(err))
	}
}

func buildDependencies(ctx context.Context, cfg *config.Config, log *zap.Logger) (usecase.Dependencies, interfaces.IPaymentGateway, error) {
	deps := usecase.Dependencies{Logger: log}

	switch cfg.StoreBackend {
	case config.StorePostgres:
		db, err := database.OpenPostgres(ctx, cfg.Database)
		if err != nil {
			return deps, nil, err
		}
		deps.Store = repository.NewPostgresStore(db, log)
	default:
		log.Warn("using in-memory document store; data is lost on restart")
		deps.Store = repository.NewMemoryStore()
	}

	switch cfg.ActivityBackend {
	case config.ActivityDynamoDB:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return deps, nil, err
		}
		deps.Activity = repository.NewActivityLogDynamoRepository(ddb)
	default:
		deps.Activity = repository.NewMemoryActivityRepository()
	}

	switch cfg.NotifyTransport {
	case config.NotifyRedis:
		client := redis.NewClient(&redis.Options{Addr: cfg.Redis.Addr, Password: cfg.Redis.Password, DB: cfg.Redis.DB})
		if err := client.Ping(ctx).Err(); err != nil {
			return deps, nil, fmt.Errorf("ping redis: %w", err)
		}
		deps.Notifier = notifications.NewRedisStreamNotifier(client, cfg.Redis.Stream)
	case config.NotifyMQTT:
		client, err := notifications.ConnectMQTT(cfg.MQTT)
		if err != nil {
			return deps, nil, err
		}
		deps.Notifier = notifications.NewMQTTNotifier(client, cfg.MQTT.TopicPrefix)
	default:
		deps.Notifier = notifications.NewLogNotifier(log)
	}

	deps.Matrix = permissions.Default()
	if cfg.PermissionsFile != "" {
		m, err := permissions.LoadYAML(cfg.PermissionsFile)
		if err != nil {
			return deps, nil, err
		}
		deps.Matrix = m
	}

	var gateway interfaces.IPaymentGateway
	mp, err := payments.NewMercadoPagoGateway(cfg.MercadoPagoAccessToken, cfg.PaymentGatewayMock, log)
	if err != nil {
		log.Warn("mercado pago gateway not configured; card charges are disabled", zap.Error(err))
	} else {
		gateway = mp
	}
	return deps, gateway, nil
}
