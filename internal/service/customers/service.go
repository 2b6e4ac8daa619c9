// Package customers реализует операции над клиентами.
package customers

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
	"github.com/vladislavdragonenkov/tienda/internal/dto"
	"github.com/vladislavdragonenkov/tienda/internal/mapping"
)

// Service оркестрирует CRUD клиентов поверх репозитория.
type Service struct {
	customers domain.CustomerRepository
	logger    *log.Entry
}

// NewService конструирует сервис клиентов.
func NewService(customers domain.CustomerRepository, logger *log.Entry) *Service {
	if logger == nil {
		logger = log.WithField("component", "customer-service")
	}
	return &Service{customers: customers, logger: logger}
}

// ListCustomers возвращает всех клиентов.
func (s *Service) ListCustomers() ([]dto.Customer, error) {
	customers, err := s.customers.GetAll()
	if err != nil {
		return nil, err
	}
	return mapping.CustomersToDTO(customers), nil
}

// GetCustomer возвращает клиента по идентификатору.
func (s *Service) GetCustomer(id int64) (dto.Customer, error) {
	customer, err := s.customers.GetByID(id)
	if err != nil {
		return dto.Customer{}, err
	}
	return mapping.CustomerToDTO(customer), nil
}

// CreateCustomer создаёт клиента; идентификатор присваивает хранилище.
func (s *Service) CreateCustomer(in dto.Customer) (dto.Customer, error) {
	customer := mapping.CustomerFromDTO(in)
	customer.ID = 0

	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		return dto.Customer{}, errs[0]
	}

	if err := s.customers.Add(&customer); err != nil {
		s.logger.WithError(err).Error("failed to create customer")
		return dto.Customer{}, err
	}

	return mapping.CustomerToDTO(customer), nil
}

// UpdateCustomer полностью замещает данные клиента.
func (s *Service) UpdateCustomer(id int64, in dto.Customer) (dto.Customer, error) {
	customer := mapping.CustomerFromDTO(in)
	customer.ID = id

	if errs := customer.ValidateInvariants(); len(errs) > 0 {
		return dto.Customer{}, errs[0]
	}

	if err := s.customers.Update(customer); err != nil {
		if !domain.IsNotFound(err) {
			s.logger.WithError(err).WithField("customer_id", id).Error("failed to update customer")
		}
		return dto.Customer{}, err
	}

	return mapping.CustomerToDTO(customer), nil
}

// DeleteCustomer удаляет клиента; false означает, что записи не было.
// Клиент, на которого ссылается хотя бы один заказ, не удаляется:
// возвращается domain.ErrCustomerInUse.
func (s *Service) DeleteCustomer(id int64) (bool, error) {
	deleted, err := s.customers.Delete(id)
	if err != nil {
		if !errors.Is(err, domain.ErrCustomerInUse) {
			s.logger.WithError(err).WithField("customer_id", id).Error("failed to delete customer")
		}
		return false, err
	}
	return deleted, nil
}
