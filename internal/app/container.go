package app

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"agrilink-fulfillment/internal/config"
	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/http/handlers"
	"agrilink-fulfillment/internal/http/router"
	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/metrics"
	"agrilink-fulfillment/internal/repository"
	"agrilink-fulfillment/internal/service/cart"
	"agrilink-fulfillment/internal/service/catalog"
	"agrilink-fulfillment/internal/service/logistics"
	"agrilink-fulfillment/internal/service/order"
	"agrilink-fulfillment/internal/service/payment"
	"agrilink-fulfillment/internal/store"
	"agrilink-fulfillment/internal/transport/kafka"
)

// releaseInterval is the period of the vehicle release sweep, carried as a
// named type so dig can tell it apart from other durations.
type releaseInterval time.Duration

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error)
	logFatalf func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		dbConnect: connectDbWithRetry,
		logFatalf: log.Fatalf,
	}
}

// WithDBConnect sets the database connection function
func (b *ContainerBuilder) WithDBConnect(
	fn func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) *ContainerBuilder {
	if fn != nil {
		b.dbConnect = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

// build builds and returns a new dig container
func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerDb(container, b.dbConnect); err != nil {
		return nil, fmt.Errorf("DB: %w", err)
	}
	if err := registerStores(container); err != nil {
		return nil, fmt.Errorf("stores: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(container *dig.Container, ctx context.Context) error {
	return provideAll(container,
		func() context.Context { return ctx },
		NewLogger,
		config.Load,
		func(cfg *config.Config) releaseInterval {
			return releaseInterval(cfg.Fleet.ReleaseInterval)
		},
		provideMetrics,
	)
}

// metricsOut carries the named prometheus counters through the container.
type metricsOut struct {
	dig.Out

	OrdersPlacedTotal        prometheus.Counter `name:"orders_placed_total"`
	PaymentsFailedTotal      prometheus.Counter `name:"payments_failed_total"`
	VehicleAssignmentsTotal  prometheus.Counter `name:"vehicle_assignments_total"`
	AssignmentConflictsTotal prometheus.Counter `name:"assignment_conflicts_total"`
}

func provideMetrics() (metricsOut, error) {
	placed, err := registerCounter("orders_placed_total", metrics.NewOrdersPlacedTotal)
	if err != nil {
		return metricsOut{}, err
	}
	failed, err := registerCounter("payments_failed_total", metrics.NewPaymentsFailedTotal)
	if err != nil {
		return metricsOut{}, err
	}
	assigned, err := registerCounter("vehicle_assignments_total", metrics.NewVehicleAssignmentsTotal)
	if err != nil {
		return metricsOut{}, err
	}
	conflicts, err := registerCounter("assignment_conflicts_total", metrics.NewAssignmentConflictsTotal)
	if err != nil {
		return metricsOut{}, err
	}
	return metricsOut{
		OrdersPlacedTotal:        placed,
		PaymentsFailedTotal:      failed,
		VehicleAssignmentsTotal:  assigned,
		AssignmentConflictsTotal: conflicts,
	}, nil
}

// registerCounter registers the counter on the default registerer, reusing an
// already registered collector so repeated container builds stay idempotent.
func registerCounter(name string, build func() prometheus.Counter) (prometheus.Counter, error) {
	c := build()
	if err := prometheus.DefaultRegisterer.Register(c); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing, nil
			}
		}
		return nil, fmt.Errorf("register %s: %w", name, err)
	}
	return c, nil
}

func registerDb(
	container *dig.Container,
	dbConnect func(context.Context, string, int, time.Duration) (*pgxpool.Pool, error),
) error {
	providerDB := func(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
		return dbConnect(ctx, cfg.DB.DSN(), 10, time.Second)
	}
	return provideAll(container, providerDB)
}

func registerStores(container *dig.Container) error {
	return provideAll(container,
		store.NewOrderStore,
		store.NewPaymentStore,
		store.NewCatalogStore,
		func() *store.FleetRegistry {
			reg := store.NewFleetRegistry()
			reg.Seed(seedFleet())
			return reg
		},
		repository.NewCartRepo,
	)
}

// seedFleet is the initial fleet loaded at startup until the registry gets a
// management API.
func seedFleet() []domain.Vehicle {
	return []domain.Vehicle{
		{
			ID:              "1",
			Type:            domain.VehicleMiniTruck,
			CapacityKg:      1000,
			DriverID:        "D001",
			DriverName:      "Suresh Singh",
			DriverPhone:     "+91-9876543220",
			VehicleNumber:   "PB-01-AB-1234",
			CurrentLocation: domain.Coordinate{Lat: 30.7046, Lng: 76.7179},
			IsAvailable:     true,
			CostPerKm:       15,
		},
		{
			ID:              "2",
			Type:            domain.VehicleTruck,
			CapacityKg:      5000,
			DriverID:        "D002",
			DriverName:      "Ramesh Yadav",
			DriverPhone:     "+91-9876543221",
			VehicleNumber:   "DL-01-CD-5678",
			CurrentLocation: domain.Coordinate{Lat: 28.5706, Lng: 77.3272},
			IsAvailable:     true,
			CostPerKm:       25,
		},
	}
}

type ledgerIn struct {
	dig.In

	Orders   *store.OrderStore
	Cart     *cart.Manager
	Producer *kafka.Producer
	Placed   prometheus.Counter `name:"orders_placed_total"`
	Logger   logx.Logger
}

type processorIn struct {
	dig.In

	Payments *store.PaymentStore
	Ledger   *order.Ledger
	Orders   *store.OrderStore
	Cfg      *config.Config
	Failed   prometheus.Counter `name:"payments_failed_total"`
	Logger   logx.Logger
}

type assignerIn struct {
	dig.In

	Fleet     *store.FleetRegistry
	Ledger    *order.Ledger
	Orders    *store.OrderStore
	Assigned  prometheus.Counter `name:"vehicle_assignments_total"`
	Conflicts prometheus.Counter `name:"assignment_conflicts_total"`
	Logger    logx.Logger
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func() time.Duration { return 3 * time.Second },
		func(repo *repository.CartRepo, products *store.CatalogStore, timeout time.Duration, logger logx.Logger) *cart.Manager {
			return cart.NewManager(repo, products, timeout, logger)
		},
		func(products *store.CatalogStore, logger logx.Logger) *catalog.Service {
			return catalog.NewService(products, logger)
		},
		func(cfg *config.Config, logger logx.Logger) (*kafka.Producer, error) {
			return kafka.NewProducer(logger, cfg.Kafka.Brokers, cfg.Kafka.Topic)
		},
		func(in ledgerIn) *order.Ledger {
			return order.NewLedger(in.Orders, in.Cart, in.Producer, in.Placed, in.Logger)
		},
		func(in processorIn) *payment.Processor {
			return payment.NewProcessor(in.Payments, in.Ledger, in.Orders,
				in.Cfg.Payment.SettleDelay, in.Failed, in.Logger)
		},
		func(in assignerIn) *logistics.Assigner {
			return logistics.NewAssigner(in.Fleet, in.Ledger, in.Orders,
				in.Assigned, in.Conflicts, in.Logger)
		},
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewCatalogUsecase,
		handlers.NewCatalogHandler,
		handlers.NewCartUsecase,
		handlers.NewCartHandler,
		handlers.NewOrderUsecase,
		handlers.NewOrderHandler,
		handlers.NewPaymentUsecase,
		handlers.NewPaymentHandler,
		handlers.NewLogisticsUsecase,
		handlers.NewLogisticsHandler,
		router.New,
		serverProvider,
	)
}
