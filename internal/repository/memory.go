package repository

import (
	"strings"

	"commerce_chatbot/internal/catalog"
	"commerce_chatbot/internal/models"
)

// In-memory implementations over the static catalog. The catalog is
// read-only, so these are safe for concurrent use without locking.

type memoryOrderRepository struct {
	catalog *catalog.Catalog
}

func NewMemoryOrderRepository(c *catalog.Catalog) OrderRepository {
	return &memoryOrderRepository{catalog: c}
}

func (r *memoryOrderRepository) GetByNumber(orderNumber string) (*models.Order, error) {
	for _, order := range r.catalog.Orders {
		if order.OrderNumber == orderNumber {
			o := order
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memoryOrderRepository) GetByCustomerID(customerID string) ([]models.Order, error) {
	var orders []models.Order
	for _, order := range r.catalog.Orders {
		if order.CustomerID == customerID {
			orders = append(orders, order)
		}
	}
	return orders, nil
}

type memoryProductRepository struct {
	catalog *catalog.Catalog
}

func NewMemoryProductRepository(c *catalog.Catalog) ProductRepository {
	return &memoryProductRepository{catalog: c}
}

func (r *memoryProductRepository) GetByID(productID string) (*models.Product, error) {
	for _, product := range r.catalog.Products {
		if product.ProductID == productID {
			p := product
			return &p, nil
		}
	}
	return nil, nil
}

func (r *memoryProductRepository) GetByIDs(productIDs []string) ([]models.Product, error) {
	products := make([]models.Product, 0, len(productIDs))
	for _, id := range productIDs {
		product, _ := r.GetByID(id)
		if product != nil {
			products = append(products, *product)
		}
	}
	return products, nil
}

func (r *memoryProductRepository) GetAll() ([]models.Product, error) {
	products := make([]models.Product, len(r.catalog.Products))
	copy(products, r.catalog.Products)
	return products, nil
}

type memoryCustomerRepository struct {
	catalog *catalog.Catalog
}

func NewMemoryCustomerRepository(c *catalog.Catalog) CustomerRepository {
	return &memoryCustomerRepository{catalog: c}
}

func (r *memoryCustomerRepository) GetByID(customerID string) (*models.Customer, error) {
	for _, customer := range r.catalog.Customers {
		if customer.CustomerID == customerID {
			c := customer
			return &c, nil
		}
	}
	return nil, nil
}

func (r *memoryCustomerRepository) GetByEmail(email string) (*models.Customer, error) {
	for _, customer := range r.catalog.Customers {
		if strings.EqualFold(customer.Email, email) {
			c := customer
			return &c, nil
		}
	}
	return nil, nil
}

type memoryContentRepository struct {
	catalog *catalog.Catalog
}

func NewMemoryContentRepository(c *catalog.Catalog) ContentRepository {
	return &memoryContentRepository{catalog: c}
}

func (r *memoryContentRepository) GetShippingOptions() ([]models.ShippingOption, error) {
	options := make([]models.ShippingOption, len(r.catalog.ShippingOptions))
	copy(options, r.catalog.ShippingOptions)
	return options, nil
}

func (r *memoryContentRepository) GetShippingOption(key string) (*models.ShippingOption, error) {
	for _, option := range r.catalog.ShippingOptions {
		if option.Key == key {
			o := option
			return &o, nil
		}
	}
	return nil, nil
}

func (r *memoryContentRepository) GetFreeShippingThreshold() (float64, error) {
	return r.catalog.FreeShippingThreshold, nil
}

func (r *memoryContentRepository) GetReturnPolicy() (*models.ReturnPolicy, error) {
	policy := r.catalog.ReturnPolicy
	return &policy, nil
}

func (r *memoryContentRepository) GetFAQs() ([]models.FAQ, error) {
	faqs := make([]models.FAQ, len(r.catalog.FAQs))
	copy(faqs, r.catalog.FAQs)
	return faqs, nil
}
