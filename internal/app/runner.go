package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/dig"

	"agrilink-fulfillment/internal/domain"
	"agrilink-fulfillment/internal/logx"
	"agrilink-fulfillment/internal/service/logistics"
	"agrilink-fulfillment/internal/service/order"
	"agrilink-fulfillment/internal/service/payment"
	"agrilink-fulfillment/internal/transport/kafka"
)

// MustRun starts the HTTP server using the provided DI container
func MustRun(container *dig.Container) {
	if err := run(container); err != nil {
		switch {
		case errors.Is(err, context.Canceled):
			log.Println("shutdown requested, exiting")
			return
		case errors.Is(err, context.DeadlineExceeded):
			log.Println("startup aborted: startup timeout exceeded")
			return
		default:
			log.Fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	if err := container.Invoke(wireHooks); err != nil {
		return err
	}
	return container.Invoke(func(
		server *http.Server,
		ctx context.Context,
		pool *pgxpool.Pool,
		producer *kafka.Producer,
		logger logx.Logger,
	) error {
		startServer(server, logger)
		waitForShutdown(ctx, logger)
		gracefulShutdown(server, logger, 15*time.Second)
		closeResources(pool, producer, server, logger)
		return nil
	})
}

// wireHooks attaches the cross-service lifecycle reactions after all services
// exist, so the ledger never needs construction-time references back into the
// payment or logistics layer.
func wireHooks(
	ledger *order.Ledger,
	processor *payment.Processor,
	assigner *logistics.Assigner,
	logger logx.Logger,
) {
	ledger.OnStatus(domain.StatusCancelled, func(ctx context.Context, o domain.Order) {
		processor.CancelForOrder(ctx, o.ID)
		if err := assigner.Abort(ctx, o.ID); err != nil {
			logger.Warn("vehicle release on cancel failed",
				logx.String("order_id", o.ID), logx.Any("err", err))
		}
	})
	ledger.OnStatus(domain.StatusDelivered, func(ctx context.Context, o domain.Order) {
		if err := assigner.Release(ctx, o.ID); err != nil {
			logger.Warn("vehicle release on delivery failed",
				logx.String("order_id", o.ID), logx.Any("err", err))
		}
	})
}

func startServer(server *http.Server, logger logx.Logger) {
	go func() {
		logger.Info("agrilink-fulfillment listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen error: %v", err)
		}
	}()
}

func waitForShutdown(ctx context.Context, logger logx.Logger) {
	<-ctx.Done()
	logger.Info("shutting down agrilink-fulfillment...")
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Warn("graceful shutdown error", logx.Any("err", err))
	}
}

func closeResources(pool *pgxpool.Pool, producer *kafka.Producer, server *http.Server, logger logx.Logger) {
	if err := server.Close(); err != nil {
		logger.Warn("server close error", logx.Any("err", err))
	}
	if err := producer.Close(); err != nil {
		logger.Warn("kafka producer close error", logx.Any("err", err))
	}
	pool.Close()
}
