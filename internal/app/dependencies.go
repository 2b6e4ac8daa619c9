package app

import (
	"context"
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/storage/memory"
	"github.com/vladislavdragonenkov/tienda/internal/storage/postgres"
)

// Dependencies содержит репозитории и хранилище приложения.
type Dependencies struct {
	Customers  domain.CustomerRepository
	Categories domain.CategoryRepository
	Products   domain.ProductRepository
	Orders     domain.OrderRepository

	// Store не nil только для PostgreSQL-хранилища.
	Store  *postgres.Store
	Logger *log.Entry
}

// NewDependencies создаёт репозитории согласно конфигурации:
// PostgreSQL, если задан DSN, иначе in-memory хранилище.
func NewDependencies(ctx context.Context, cfg Config, logger *log.Entry) (*Dependencies, error) {
	if logger == nil {
		logger = log.WithField("component", "app")
	}

	if cfg.PostgresDSN == "" {
		logger.Info("postgres dsn is empty, using in-memory storage")
		store := memory.NewStore()
		return &Dependencies{
			Customers:  memory.NewCustomerRepository(store),
			Categories: memory.NewCategoryRepository(store),
			Products:   memory.NewProductRepository(store),
			Orders:     memory.NewOrderRepository(store),
			Logger:     logger,
		}, nil
	}

	store, err := postgres.Open(ctx, cfg.PostgresDSN)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}

	if cfg.PostgresAutoMigrate {
		if err := store.EnsureSchema(ctx); err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("apply migrations: %w", err)
		}
		logger.Info("postgres migrations applied")
	}

	logger.Info("using postgres storage")
	return &Dependencies{
		Customers:  postgres.NewCustomerRepository(store),
		Categories: postgres.NewCategoryRepository(store),
		Products:   postgres.NewProductRepository(store),
		Orders:     postgres.NewOrderRepository(store),
		Store:      store,
		Logger:     logger,
	}, nil
}

// Close освобождает ресурсы хранилища.
func (d *Dependencies) Close() {
	if d.Store == nil {
		return
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.WithError(err).Warn("failed to close postgres store")
	}
}
