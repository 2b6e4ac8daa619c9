// Package orders реализует путь записи заказов: перевод черновика в
// доменный заказ, проверку ссылок на товары, пересчёт суммы и атомарную
// реконсиляцию набора позиций.
package orders

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
	"github.com/vladislavdragonenkov/tienda/internal/mapping"
	"github.com/vladislavdragonenkov/tienda/internal/messaging/kafka"
	"github.com/vladislavdragonenkov/tienda/internal/metrics"
)

// totalScale — число знаков после запятой в сумме заказа.
const totalScale = 2

// EventPublisher публикует события заказов; nil отключает публикацию.
type EventPublisher interface {
	PublishEvent(topic string, key string, event interface{}) error
}

// Service оркестрирует операции над заказами поверх репозиториев.
type Service struct {
	orders    domain.OrderRepository
	products  domain.ProductRepository
	customers domain.CustomerRepository
	events    EventPublisher
	metrics   *metrics.OrderMetrics
	logger    *log.Entry
}

// NewService конструирует сервис заказов. events и m могут быть nil.
func NewService(
	orders domain.OrderRepository,
	products domain.ProductRepository,
	customers domain.CustomerRepository,
	events EventPublisher,
	m *metrics.OrderMetrics,
	logger *log.Entry,
) *Service {
	if logger == nil {
		logger = log.WithField("component", "order-service")
	}
	return &Service{
		orders:    orders,
		products:  products,
		customers: customers,
		events:    events,
		metrics:   m,
		logger:    logger,
	}
}

// CreateOrder создаёт заказ из черновика.
// Все ссылки на товары разрешаются до какой-либо записи: при отсутствии
// хотя бы одного товара операция завершается без побочных эффектов.
func (s *Service) CreateOrder(draft dto.OrderDraft) (dto.Order, error) {
	started := time.Now()

	order, err := s.prepareOrder(draft)
	if err != nil {
		s.writeFailed("create", err)
		return dto.Order{}, err
	}
	order.Fecha = time.Now().UTC()

	if err := s.orders.Create(&order); err != nil {
		s.logger.WithError(err).WithField("customer_id", order.CustomerID).Error("failed to create order")
		s.writeFailed("create", err)
		return dto.Order{}, err
	}

	s.metrics.OrderCreated()
	s.metrics.ObserveWrite("create", time.Since(started))
	s.publishEvent(kafka.EventTypeOrderCreated, order)

	return mapping.OrderToDTO(order), nil
}

// UpdateOrder заменяет весь набор позиций существующего заказа по тем же
// правилам валидации и пересчёта, что и создание.
func (s *Service) UpdateOrder(id int64, draft dto.OrderDraft) (dto.Order, error) {
	started := time.Now()

	existing, err := s.orders.GetByID(id)
	if err != nil {
		s.writeFailed("update", err)
		return dto.Order{}, err
	}

	// Черновик без способа оплаты сохраняет текущий способ заказа.
	if draft.PaymentMethod == "" {
		draft.PaymentMethod = string(existing.PaymentMethod)
	}

	order, err := s.prepareOrder(draft)
	if err != nil {
		s.writeFailed("update", err)
		return dto.Order{}, err
	}

	order.ID = id
	order.Fecha = time.Now().UTC()
	for i := range order.Lines {
		order.Lines[i].OrderID = id
	}

	if err := s.orders.ReplaceLines(order); err != nil {
		s.logger.WithError(err).WithField("order_id", id).Error("failed to replace order lines")
		s.writeFailed("update", err)
		return dto.Order{}, err
	}

	s.metrics.OrderUpdated()
	s.metrics.ObserveWrite("update", time.Since(started))
	s.publishEvent(kafka.EventTypeOrderUpdated, order)

	return mapping.OrderToDTO(order), nil
}

// DeleteOrder удаляет заказ вместе с позициями.
// Отсутствие записи не ошибка: возвращается false.
func (s *Service) DeleteOrder(id int64) (bool, error) {
	deleted, err := s.orders.Delete(id)
	if err != nil {
		s.logger.WithError(err).WithField("order_id", id).Error("failed to delete order")
		s.writeFailed("delete", err)
		return false, err
	}

	if deleted {
		s.metrics.OrderDeleted()
		s.publishEvent(kafka.EventTypeOrderDeleted, domain.Order{ID: id})
	}

	return deleted, nil
}

// GetOrder возвращает заказ с позициями.
func (s *Service) GetOrder(id int64) (dto.Order, error) {
	order, err := s.orders.GetByID(id)
	if err != nil {
		return dto.Order{}, err
	}
	return mapping.OrderToDTO(order), nil
}

// ListOrders возвращает все заказы.
func (s *Service) ListOrders() ([]dto.Order, error) {
	orders, err := s.orders.GetAll()
	if err != nil {
		return nil, err
	}
	return mapping.OrdersToDTO(orders), nil
}

// prepareOrder переводит черновик в доменный заказ, проверяет инварианты,
// существование клиента и всех товаров и пересчитывает сумму.
// До возврата ошибки ни одной записи в хранилище не происходит.
func (s *Service) prepareOrder(draft dto.OrderDraft) (domain.Order, error) {
	order := mapping.OrderFromDraft(draft)
	if order.PaymentMethod == "" {
		order.PaymentMethod = domain.PaymentMethodCash
	}

	if errs := order.ValidateInvariants(); len(errs) > 0 {
		return domain.Order{}, errs[0]
	}

	if _, err := s.customers.GetByID(order.CustomerID); err != nil {
		return domain.Order{}, err
	}

	// Сначала разрешаем все товары, затем считаем сумму: частичных
	// коммитов под нарушение внешнего ключа быть не должно.
	total := decimal.Zero
	for _, line := range order.Lines {
		product, err := s.products.GetByID(line.ProductID)
		if err != nil {
			return domain.Order{}, err
		}
		total = total.Add(product.Price.Mul(line.Quantity))
	}
	// Округление до двух знаков, half away from zero.
	order.Total = total.Round(totalScale)

	return order, nil
}

func (s *Service) publishEvent(eventType kafka.EventType, order domain.Order) {
	if s.events == nil {
		return
	}

	event := kafka.NewOrderEvent(eventType, order.ID, order.CustomerID, order.Total.StringFixed(totalScale), len(order.Lines))
	if err := s.events.PublishEvent(kafka.TopicOrderEvents, event.EventID, event); err != nil {
		// Событие не входит в транзакцию; сбой публикации не откатывает запись.
		s.logger.WithError(err).WithField("order_id", order.ID).Warn("failed to publish order event")
	}
}

func (s *Service) writeFailed(operation string, err error) {
	s.metrics.WriteFailed(operation, failureReason(err))
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return "product_not_found"
	case errors.Is(err, domain.ErrCustomerNotFound):
		return "customer_not_found"
	case errors.Is(err, domain.ErrOrderNotFound):
		return "order_not_found"
	case domain.IsValidation(err):
		return "validation"
	default:
		return "store"
	}
}
