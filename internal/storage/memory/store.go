package memory

import (
	"sync"

	"github.com/vladislavdragonenkov/tienda/internal/domain"
)

// Store — общее in-memory хранилище для локальной разработки и тестов.
// Ссылочные ограничения Postgres (уникальное имя категории, RESTRICT,
// каскад позиций заказа) воспроизводятся в коде, чтобы сервисные тесты
// проверяли те же контракты, что и настоящая база.
type Store struct {
	mu sync.RWMutex

	customers  map[int64]domain.Customer
	categories map[int64]domain.Category
	products   map[int64]domain.Product
	orders     map[int64]domain.Order

	nextCustomerID int64
	nextCategoryID int64
	nextProductID  int64
	nextOrderID    int64
}

// NewStore создаёт пустое хранилище.
func NewStore() *Store {
	return &Store{
		customers:  make(map[int64]domain.Customer),
		categories: make(map[int64]domain.Category),
		products:   make(map[int64]domain.Product),
		orders:     make(map[int64]domain.Order),
	}
}

func (s *Store) allocCustomerID() int64 {
	s.nextCustomerID++
	return s.nextCustomerID
}

func (s *Store) allocCategoryID() int64 {
	s.nextCategoryID++
	return s.nextCategoryID
}

func (s *Store) allocProductID() int64 {
	s.nextProductID++
	return s.nextProductID
}

func (s *Store) allocOrderID() int64 {
	s.nextOrderID++
	return s.nextOrderID
}

// copyOrder возвращает копию заказа с независимым срезом позиций,
// чтобы избежать непредсказуемых мутаций извне.
func copyOrder(order domain.Order) domain.Order {
	lines := make([]domain.OrderLine, len(order.Lines))
	copy(lines, order.Lines)
	order.Lines = lines
	return order
}
