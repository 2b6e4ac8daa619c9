// Package http реализует HTTP API поверх сервисного слоя.
// Ошибки доменного слоя переводятся в статусы через типизированные sentinel-ошибки.
package http

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/service/catalog"
	"github.com/vladislavdragonenkov/tienda/internal/service/customers"
	"github.com/vladislavdragonenkov/tienda/internal/service/orders"
)

// Handler связывает HTTP-маршруты с сервисами.
type Handler struct {
	customers *customers.Service
	catalog   *catalog.Service
	orders    *orders.Service
	logger    *log.Entry
}

// NewHandler конструирует HTTP-обработчик.
func NewHandler(
	customersService *customers.Service,
	catalogService *catalog.Service,
	ordersService *orders.Service,
	logger *log.Entry,
) *Handler {
	if logger == nil {
		logger = log.WithField("component", "http")
	}
	return &Handler{
		customers: customersService,
		catalog:   catalogService,
		orders:    ordersService,
		logger:    logger,
	}
}

// RegisterRoutes регистрирует все маршруты API на приложении fiber.
func (h *Handler) RegisterRoutes(app *fiber.App) {
	api := app.Group("/api")

	api.Get("/customers", h.listCustomers)
	api.Post("/customers", h.createCustomer)
	api.Get("/customers/:id", h.getCustomer)
	api.Put("/customers/:id", h.updateCustomer)
	api.Delete("/customers/:id", h.deleteCustomer)

	api.Get("/categories", h.listCategories)
	api.Post("/categories", h.createCategory)
	api.Get("/categories/:id", h.getCategory)
	api.Put("/categories/:id", h.updateCategory)
	api.Delete("/categories/:id", h.deleteCategory)

	api.Get("/products", h.listProducts)
	api.Post("/products", h.createProduct)
	api.Get("/products/:id", h.getProduct)
	api.Put("/products/:id", h.updateProduct)
	api.Delete("/products/:id", h.deleteProduct)

	api.Get("/orders", h.listOrders)
	api.Post("/orders", h.createOrder)
	api.Get("/orders/:id", h.getOrder)
	api.Put("/orders/:id", h.updateOrder)
	api.Delete("/orders/:id", h.deleteOrder)
}

// idParam извлекает числовой идентификатор из пути.
func idParam(c *fiber.Ctx) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errors.New("invalid id")
	}
	return id, nil
}

func badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": message})
}

// respondError переводит доменную ошибку в HTTP-статус.
func (h *Handler) respondError(c *fiber.Ctx, err error) error {
	switch {
	case domain.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
	case domain.IsValidation(err):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, domain.ErrCategoryNameTaken),
		errors.Is(err, domain.ErrCategoryInUse),
		errors.Is(err, domain.ErrProductInUse),
		errors.Is(err, domain.ErrCustomerInUse):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	default:
		h.logger.WithError(err).WithFields(log.Fields{
			"method": c.Method(),
			"path":   c.Path(),
		}).Error("request failed")
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "internal error"})
	}
}

// respondDeleted реализует контракт удаления: 204 при успехе, 404 при отсутствии.
func (h *Handler) respondDeleted(c *fiber.Ctx, deleted bool, err error) error {
	if err != nil {
		return h.respondError(c, err)
	}
	if !deleted {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	}
	return c.SendStatus(fiber.StatusNoContent)
}
