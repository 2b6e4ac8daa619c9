// Package app собирает зависимости и запускает HTTP API вместе с
// сервером метрик и health-проверок.
package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	healthcheck "github.com/vladislavdragonenkov/tienda/internal/health"
	"github.com/vladislavdragonenkov/tienda/internal/metrics"
	"github.com/vladislavdragonenkov/tienda/internal/service/catalog"
	"github.com/vladislavdragonenkov/tienda/internal/service/customers"
	"github.com/vladislavdragonenkov/tienda/internal/service/orders"
	transporthttp "github.com/vladislavdragonenkov/tienda/internal/transport/http"
	"github.com/vladislavdragonenkov/tienda/internal/version"
)

const shutdownTimeout = 5 * time.Second

// Run запускает приложение и блокируется до отмены контекста
// или фатальной ошибки сервера.
func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	deps, err := NewDependencies(ctx, cfg, logger)
	if err != nil {
		return err
	}
	defer deps.Close()

	kafkaProducer, _ := initKafkaProducer(cfg.KafkaBrokers, logger)
	defer closeKafka(kafkaProducer, logger)

	orderMetrics := metrics.NewOrderMetrics()

	var publisher orders.EventPublisher
	if kafkaProducer != nil {
		publisher = kafkaProducer
	}

	handler := transporthttp.NewHandler(
		customers.NewService(deps.Customers, logger.WithField("layer", "customers")),
		catalog.NewService(deps.Categories, deps.Products, logger.WithField("layer", "catalog")),
		orders.NewService(deps.Orders, deps.Products, deps.Customers, publisher, orderMetrics, logger.WithField("layer", "orders")),
		logger.WithField("layer", "http"),
	)

	api := fiber.New(fiber.Config{
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	})
	handler.RegisterRoutes(api)

	healthHandler := healthcheck.NewHandler(version.GetVersion())
	if deps.Store != nil {
		healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return deps.Store.Ping(pingCtx)
		}))
	}

	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("HTTP API слушает %s", cfg.HTTPAddr)
		errCh <- api.Listen(cfg.HTTPAddr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем HTTP API")
		if err := api.ShutdownWithTimeout(shutdownTimeout); err != nil {
			logger.WithError(err).Warn("graceful shutdown завершился с ошибкой")
		}
		shutdownHTTP(metricsSrv, logger)
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		return err
	}
}

// startMetricsServer запускает HTTP-обработчики /metrics и health-проверок.
func startMetricsServer(ctx context.Context, addr string, logger *log.Entry, healthHandler *healthcheck.Handler) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	mux.Handle("/healthz", healthHandler)
	mux.HandleFunc("/readyz", healthHandler.ReadinessHandler)
	mux.HandleFunc("/livez", healthcheck.LivenessHandler)

	srv := &http.Server{Addr: addr, Handler: mux}
	go func() {
		logger.Infof("метрики доступны по адресу %s/metrics", addr)
		logger.Infof("health checks: %s/healthz, %s/readyz, %s/livez", addr, addr, addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Warn("metrics server failed")
		}
	}()

	go func() {
		<-ctx.Done()
		shutdownHTTP(srv, logger)
	}()

	return srv
}

// shutdownHTTP аккуратно останавливает HTTP-сервер.
func shutdownHTTP(srv *http.Server, logger *log.Entry) {
	if srv == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("metrics shutdown with error")
	}
}
