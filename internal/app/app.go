package app

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/crm/internal/domain"
	healthcheck "github.com/vladislavdragonenkov/crm/internal/health"
	"github.com/vladislavdragonenkov/crm/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/crm/internal/metrics"
	"github.com/vladislavdragonenkov/crm/internal/service/crm"
	"github.com/vladislavdragonenkov/crm/internal/storage/memory"
	"github.com/vladislavdragonenkov/crm/internal/storage/postgres"
	transport "github.com/vladislavdragonenkov/crm/internal/transport/graphql"
	"github.com/vladislavdragonenkov/crm/internal/version"
)

// Config описывает минимальные настройки запуска приложения.
type Config struct {
	HTTPAddr    string
	MetricsAddr string
	// PostgresDSN пустой — работаем на in-memory хранилище (разработка и тесты).
	PostgresDSN string
}

// DefaultConfig возвращает базовые адреса для API и HTTP-метрик.
func DefaultConfig() Config {
	return Config{
		HTTPAddr:    ":8080",
		MetricsAddr: ":9090",
	}
}

func Run(ctx context.Context, cfg Config) error {
	logger := log.WithField("component", "app")

	var (
		customers domain.CustomerRepository
		products  domain.ProductRepository
		orders    domain.OrderRepository
	)

	healthHandler := healthcheck.NewHandler(version.GetVersion())

	if cfg.PostgresDSN != "" {
		store, err := postgres.Open(ctx, cfg.PostgresDSN)
		if err != nil {
			return err
		}
		defer func() {
			_ = store.Close()
		}()
		if err := store.EnsureSchema(ctx); err != nil {
			return err
		}
		customers = postgres.NewCustomerRepository(store)
		products = postgres.NewProductRepository(store)
		orders = postgres.NewOrderRepository(store)
		healthHandler.RegisterChecker("postgres", healthcheck.NewSimpleChecker("postgres", func() error {
			checkCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return store.Ping(checkCtx)
		}))
		logger.Info("postgres storage initialized")
	} else {
		customers = memory.NewCustomerRepository()
		products = memory.NewProductRepository()
		orders = memory.NewOrderRepository(customers)
		logger.Info("in-memory storage initialized")
	}

	// Инициализация Kafka producer (опционально)
	var publisher crm.EventPublisher
	var kafkaProducer *kafka.Producer

	kafkaBrokers := os.Getenv("CRM_KAFKA_BROKERS")
	if kafkaBrokers != "" {
		brokers := strings.Split(kafkaBrokers, ",")
		producer, err := kafka.NewProducer(brokers)
		if err != nil {
			logger.WithError(err).Warn("failed to create kafka producer, continuing without kafka")
		} else {
			kafkaProducer = producer
			publisher = producer
			logger.WithField("brokers", brokers).Info("kafka producer initialized")
		}
	}

	crmMetrics := metrics.NewCRMMetrics()
	service := crm.NewService(customers, products, orders, publisher, crmMetrics, logger.WithField("layer", "service"))

	schema, err := transport.NewSchema(service, logger.WithField("layer", "graphql"))
	if err != nil {
		return err
	}
	apiHandler := transport.NewHandler(schema, logger.WithField("layer", "graphql"))

	mux := http.NewServeMux()
	mux.Handle("/graphql", apiHandler)

	apiSrv := &http.Server{Addr: cfg.HTTPAddr, Handler: mux}
	metricsSrv := startMetricsServer(ctx, cfg.MetricsAddr, logger, healthHandler)

	errCh := make(chan error, 1)
	go func() {
		logger.Infof("GraphQL API слушает %s/graphql", cfg.HTTPAddr)
		errCh <- apiSrv.ListenAndServe()
	}()

	closeKafka := func() {
		if kafkaProducer == nil {
			return
		}
		if err := kafkaProducer.Close(); err != nil {
			logger.WithError(err).Warn("failed to close kafka producer")
		} else {
			logger.Info("kafka producer closed")
		}
	}

	select {
	case <-ctx.Done():
		logger.Info("получен сигнал остановки, останавливаем API сервер")
		shutdownHTTP(apiSrv, logger)
		shutdownHTTP(metricsSrv, logger)
		closeKafka()
		return ctx.Err()
	case err := <-errCh:
		shutdownHTTP(metricsSrv, logger)
		closeKafka()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// startMetricsServer запускает HTTP-обработчик /metrics для Prometheus.
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
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.WithError(err).Warn("http shutdown with error")
	}
}
