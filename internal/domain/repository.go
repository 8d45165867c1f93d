package domain

// CustomerRepository описывает требования к хранилищу клиентов.
type CustomerRepository interface {
	// Create сохраняет нового клиента. Возвращает ErrEmailExists,
	// если email уже занят (в том числе при гонке на уровне хранилища).
	Create(customer Customer) error
	// Get возвращает клиента по идентификатору или ErrCustomerNotFound, если его нет.
	Get(id string) (Customer, error)
	// GetByEmail возвращает клиента по email или ErrCustomerNotFound, если его нет.
	GetByEmail(email string) (Customer, error)
	// List возвращает клиентов, удовлетворяющих фильтру. Пустой фильтр означает всех.
	List(filter CustomerFilter) ([]Customer, error)
}

// ProductRepository описывает требования к хранилищу товаров.
type ProductRepository interface {
	// Create сохраняет новый товар.
	Create(product Product) error
	// Get возвращает товар по идентификатору или ErrProductNotFound, если его нет.
	Get(id string) (Product, error)
	// List возвращает товары, удовлетворяющие фильтру. Пустой фильтр означает все.
	List(filter ProductFilter) ([]Product, error)
}

// OrderRepository описывает требования к хранилищу заказов.
type OrderRepository interface {
	// Create сохраняет заказ вместе со связями на товары одной атомарной записью:
	// либо заказ сохранён полностью со всеми связями, либо не сохранён вовсе.
	Create(order Order) error
	// Get возвращает заказ по идентификатору или ErrOrderNotFound, если его нет.
	Get(id string) (Order, error)
	// List возвращает заказы, удовлетворяющие фильтру. Пустой фильтр означает все.
	List(filter OrderFilter) ([]Order, error)
}
