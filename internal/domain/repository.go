package domain

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// GetAll возвращает всех клиентов в порядке хранения.
	GetAll() ([]Customer, error)
	// GetByID возвращает клиента или ErrCustomerNotFound, если его нет.
	GetByID(id int64) (Customer, error)
	// Add сохраняет клиента и проставляет сгенерированный ID до возврата.
	Add(customer *Customer) error
	// Update перезаписывает клиента; ErrCustomerNotFound, если ID отсутствует.
	Update(customer Customer) error
	// Delete удаляет клиента; false без ошибки, если записи не было;
	// ErrCustomerInUse, пока на клиента ссылаются заказы.
	Delete(id int64) (bool, error)
}

// CategoryRepository описывает требования к хранилищу категорий.
type CategoryRepository interface {
	GetAll() ([]Category, error)
	// GetByID возвращает категорию или ErrCategoryNotFound.
	GetByID(id int64) (Category, error)
	// Add сохраняет категорию; ErrCategoryNameTaken при дубликате имени.
	Add(category *Category) error
	// Update перезаписывает категорию; ErrCategoryNotFound, если ID отсутствует.
	Update(category Category) error
	// Delete удаляет категорию; ErrCategoryInUse, пока на неё ссылаются товары.
	Delete(id int64) (bool, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	GetAll() ([]Product, error)
	// GetByID возвращает товар или ErrProductNotFound, если его нет.
	GetByID(id int64) (Product, error)
	// Add сохраняет товар и проставляет сгенерированный ID до возврата.
	Add(product *Product) error
	// Update перезаписывает товар; ErrProductNotFound, если ID отсутствует.
	Update(product Product) error
	Delete(id int64) (bool, error)
}

// OrderRepository описывает требования к хранилищу заказов.
// Заказ и его позиции всегда читаются и пишутся вместе.
type OrderRepository interface {
	GetAll() ([]Order, error)
	// GetByID возвращает заказ с позициями или ErrOrderNotFound.
	GetByID(id int64) (Order, error)
	// Create сохраняет заказ вместе с позициями и суммой в одной транзакции
	// и проставляет сгенерированный ID до возврата.
	Create(order *Order) error
	// ReplaceLines загружает существующий заказ (ErrOrderNotFound, если его
	// нет), удаляет все его текущие позиции, записывает позиции из входного
	// заказа и копирует CustomerID, Total и Fecha. Всё выполняется атомарно.
	ReplaceLines(order Order) error
	// Delete удаляет заказ вместе с позициями; false без ошибки, если записи не было.
	Delete(id int64) (bool, error)
}
