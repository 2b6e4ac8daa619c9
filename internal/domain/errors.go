package domain

import "errors"

var (
	// Ошибка отсутствующего идентификатора клиента в заказе.
	ErrCustomerRequired = errors.New("customer_id is required")
	// Ошибка отсутствующего идентификатора товара в позиции заказа.
	ErrProductRequired = errors.New("line product_id is required")
	// Ошибка при некорректном количестве товара (<= 0).
	ErrInvalidQuantity = errors.New("line quantity must be greater than zero")
	// Ошибка, если один и тот же товар встречается в черновике дважды.
	ErrDuplicateOrderLine = errors.New("draft contains duplicate product line")
	// Ошибка отрицательной суммы заказа.
	ErrTotalNegative = errors.New("order total must be non-negative")
	// Ошибка неизвестного способа оплаты.
	ErrPaymentMethodUnknown = errors.New("unknown payment method")
	// Ошибка пустого имени категории.
	ErrCategoryNameRequired = errors.New("category name is required")
	// Ошибка слишком длинного имени категории (> 100 символов).
	ErrCategoryNameTooLong = errors.New("category name must be at most 100 characters")
	// Ошибка пустого имени клиента.
	ErrCustomerNameRequired = errors.New("customer name is required")
	// Ошибка пустого имени товара.
	ErrProductNameRequired = errors.New("product name is required")
	// Ошибка отрицательной цены товара.
	ErrProductPriceNegative = errors.New("product price must be non-negative")
	// Ошибка отсутствующей категории у товара.
	ErrCategoryRequired = errors.New("product category_id is required")

	// ErrOrderNotFound возвращается, если заказ не найден в репозитории.
	ErrOrderNotFound = errors.New("order not found")
	// ErrCustomerNotFound возвращается, если клиент не найден.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrProductNotFound возвращается, если товар не найден.
	ErrProductNotFound = errors.New("product not found")
	// ErrCategoryNotFound возвращается, если категория не найдена.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryNameTaken — категория с таким именем уже существует.
	ErrCategoryNameTaken = errors.New("category name already exists")
	// ErrCategoryInUse — категорию нельзя удалить, пока на неё ссылаются товары.
	ErrCategoryInUse = errors.New("category is referenced by products")
	// ErrProductInUse — товар нельзя удалить, пока на него ссылаются позиции заказов.
	ErrProductInUse = errors.New("product is referenced by order lines")
	// ErrCustomerInUse — клиента нельзя удалить, пока на него ссылаются заказы.
	ErrCustomerInUse = errors.New("customer is referenced by orders")
)

// IsNotFound проверяет, относится ли ошибка к отсутствующей сущности.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrOrderNotFound) ||
		errors.Is(err, ErrCustomerNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCategoryNotFound)
}

// IsValidation проверяет, является ли ошибка нарушением валидации до записи.
func IsValidation(err error) bool {
	for _, v := range []error{
		ErrCustomerRequired, ErrProductRequired, ErrInvalidQuantity,
		ErrDuplicateOrderLine, ErrTotalNegative, ErrPaymentMethodUnknown,
		ErrCategoryNameRequired, ErrCategoryNameTooLong, ErrCustomerNameRequired,
		ErrProductNameRequired, ErrProductPriceNegative, ErrCategoryRequired,
	} {
		if errors.Is(err, v) {
			return true
		}
	}
	return false
}
