package services

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"commerce_chatbot/internal/models"
	"commerce_chatbot/internal/repository"
)

// StatusNotFound is the soft result for an unknown order number.
const StatusNotFound = "not found"

const trackingCarrier = "FastShip Logistics"

const (
	categoryRecommendationLimit = 3
	randomRecommendationLimit   = 5
)

// OrderDetails is an order with its item references resolved to full
// product records.
type OrderDetails struct {
	models.Order
	Products []models.Product `json:"products"`
}

type TrackingInfo struct {
	Found             bool   `json:"found"`
	Message           string `json:"message,omitempty"`
	TrackingNumber    string `json:"tracking_number,omitempty"`
	Carrier           string `json:"carrier,omitempty"`
	Status            string `json:"status,omitempty"`
	EstimatedDelivery string `json:"estimated_delivery,omitempty"`
	LastUpdate        string `json:"last_update,omitempty"`
}

// ShippingInfo carries either a single matched option or the full list with
// the free shipping threshold.
type ShippingInfo struct {
	Option                *models.ShippingOption  `json:"option,omitempty"`
	Options               []models.ShippingOption `json:"options,omitempty"`
	FreeShippingThreshold float64                 `json:"free_shipping_threshold,omitempty"`
}

// ReturnPolicyInfo carries either one category's policy text or the whole
// policy object.
type ReturnPolicyInfo struct {
	Category string               `json:"category,omitempty"`
	Policy   string               `json:"policy,omitempty"`
	Full     *models.ReturnPolicy `json:"full,omitempty"`
}

// CustomerAccount is a customer with every order placed under their id.
type CustomerAccount struct {
	models.Customer
	Orders []models.Order `json:"orders"`
}

// CatalogService is the data access layer over the store. Lookups fail
// softly: absence is a representable result, never an error. Every call
// waits out the configured artificial latency to keep callers honest about
// the eventual real datastore.
type CatalogService interface {
	GetOrderStatus(orderNumber string) (string, error)
	GetOrderDetails(orderNumber string) (*OrderDetails, error)
	GetTrackingInfo(orderNumber string) (*TrackingInfo, error)
	GetShippingInfo(shippingType string) (*ShippingInfo, error)
	GetReturnPolicy(category string) (*ReturnPolicyInfo, error)
	SearchProducts(query string) ([]models.Product, error)
	GetRecommendedProducts(productID, category string) ([]models.Product, error)
	GetFAQs(topic string) ([]models.FAQ, error)
	GetCustomerInfo(customerID string) (*models.Customer, error)
	FindCustomerByEmail(email string) (*CustomerAccount, error)
}

type catalogService struct {
	orderRepo    repository.OrderRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	contentRepo  repository.ContentRepository
	latency      time.Duration
}

func NewCatalogService(
	orderRepo repository.OrderRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	contentRepo repository.ContentRepository,
	latency time.Duration,
) CatalogService {
	return &catalogService{
		orderRepo:    orderRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		contentRepo:  contentRepo,
		latency:      latency,
	}
}

func (s *catalogService) simulateLatency() {
	if s.latency > 0 {
		time.Sleep(s.latency)
	}
}

func (s *catalogService) GetOrderStatus(orderNumber string) (string, error) {
	s.simulateLatency()

	order, err := s.orderRepo.GetByNumber(orderNumber)
	if err != nil {
		return "", fmt.Errorf("failed to get order %s: %w", orderNumber, err)
	}
	if order == nil {
		return StatusNotFound, nil
	}
	return order.Status, nil
}

func (s *catalogService) GetOrderDetails(orderNumber string) (*OrderDetails, error) {
	s.simulateLatency()

	order, err := s.orderRepo.GetByNumber(orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderNumber, err)
	}
	if order == nil {
		return nil, nil
	}

	products, err := s.productRepo.GetByIDs(order.Items)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve items for order %s: %w", orderNumber, err)
	}

	return &OrderDetails{Order: *order, Products: products}, nil
}

func (s *catalogService) GetTrackingInfo(orderNumber string) (*TrackingInfo, error) {
	s.simulateLatency()

	order, err := s.orderRepo.GetByNumber(orderNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get order %s: %w", orderNumber, err)
	}
	if order == nil {
		return &TrackingInfo{Found: false, Message: "Order not found."}, nil
	}
	if order.TrackingNumber == "" {
		return &TrackingInfo{Found: false, Message: "This order has not shipped yet."}, nil
	}

	lastUpdate := "In transit"
	if order.Status == string(models.OrderDelivered) && order.DeliveredDate != nil {
		lastUpdate = "Delivered on " + order.DeliveredDate.Format("2006-01-02")
	}

	estimatedDelivery := ""
	if order.EstimatedDelivery != nil {
		estimatedDelivery = order.EstimatedDelivery.Format("2006-01-02")
	}

	return &TrackingInfo{
		Found:             true,
		TrackingNumber:    order.TrackingNumber,
		Carrier:           trackingCarrier,
		Status:            order.Status,
		EstimatedDelivery: estimatedDelivery,
		LastUpdate:        lastUpdate,
	}, nil
}

// GetShippingInfo returns the matching option for a known shipping type; any
// other input, including empty, falls back to the full option list.
func (s *catalogService) GetShippingInfo(shippingType string) (*ShippingInfo, error) {
	s.simulateLatency()

	if shippingType != "" {
		option, err := s.contentRepo.GetShippingOption(shippingType)
		if err != nil {
			return nil, fmt.Errorf("failed to get shipping option %s: %w", shippingType, err)
		}
		if option != nil {
			return &ShippingInfo{Option: option}, nil
		}
	}

	options, err := s.contentRepo.GetShippingOptions()
	if err != nil {
		return nil, fmt.Errorf("failed to get shipping options: %w", err)
	}
	threshold, err := s.contentRepo.GetFreeShippingThreshold()
	if err != nil {
		return nil, err
	}

	return &ShippingInfo{Options: options, FreeShippingThreshold: threshold}, nil
}

// GetReturnPolicy returns the category text for a known category; any other
// input falls back to the full policy.
func (s *catalogService) GetReturnPolicy(category string) (*ReturnPolicyInfo, error) {
	s.simulateLatency()

	policy, err := s.contentRepo.GetReturnPolicy()
	if err != nil {
		return nil, err
	}

	if category != "" {
		if text, ok := policy.CategoryPolicy(category); ok {
			return &ReturnPolicyInfo{Category: category, Policy: text}, nil
		}
	}

	return &ReturnPolicyInfo{Full: policy}, nil
}

// SearchProducts tokenizes the query on whitespace and matches a product if
// any token is a substring of its lower-cased name, description or category.
func (s *catalogService) SearchProducts(query string) ([]models.Product, error) {
	s.simulateLatency()

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	terms := strings.Fields(strings.ToLower(query))

	var results []models.Product
	for _, product := range products {
		searchText := strings.ToLower(product.Name + " " + product.Description + " " + product.Category)
		for _, term := range terms {
			if strings.Contains(searchText, term) {
				results = append(results, product)
				break
			}
		}
	}
	return results, nil
}

// GetRecommendedProducts picks, in priority order: the in-stock related
// products of a known product id, up to 3 in-stock products of the given
// category, or up to 5 random in-stock products. The random branch is
// non-deterministic by contract.
func (s *catalogService) GetRecommendedProducts(productID, category string) ([]models.Product, error) {
	s.simulateLatency()

	if productID != "" {
		product, err := s.productRepo.GetByID(productID)
		if err != nil {
			return nil, fmt.Errorf("failed to get product %s: %w", productID, err)
		}
		if product != nil {
			related, err := s.productRepo.GetByIDs(product.RelatedProducts)
			if err != nil {
				return nil, fmt.Errorf("failed to resolve related products for %s: %w", productID, err)
			}
			var recommendations []models.Product
			for _, p := range related {
				if p.InStock {
					recommendations = append(recommendations, p)
				}
			}
			return recommendations, nil
		}
	}

	products, err := s.productRepo.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	if category != "" {
		var recommendations []models.Product
		for _, p := range products {
			if p.Category == category && p.InStock {
				recommendations = append(recommendations, p)
				if len(recommendations) == categoryRecommendationLimit {
					break
				}
			}
		}
		return recommendations, nil
	}

	var inStock []models.Product
	for _, p := range products {
		if p.InStock {
			inStock = append(inStock, p)
		}
	}
	rand.Shuffle(len(inStock), func(i, j int) {
		inStock[i], inStock[j] = inStock[j], inStock[i]
	})
	if len(inStock) > randomRecommendationLimit {
		inStock = inStock[:randomRecommendationLimit]
	}
	return inStock, nil
}

// GetFAQs filters by topic as a case-insensitive substring of question or
// answer; an empty topic returns everything.
func (s *catalogService) GetFAQs(topic string) ([]models.FAQ, error) {
	s.simulateLatency()

	faqs, err := s.contentRepo.GetFAQs()
	if err != nil {
		return nil, fmt.Errorf("failed to list FAQs: %w", err)
	}

	if topic == "" {
		return faqs, nil
	}

	topicLower := strings.ToLower(topic)
	var filtered []models.FAQ
	for _, faq := range faqs {
		if strings.Contains(strings.ToLower(faq.Question), topicLower) ||
			strings.Contains(strings.ToLower(faq.Answer), topicLower) {
			filtered = append(filtered, faq)
		}
	}
	return filtered, nil
}

func (s *catalogService) GetCustomerInfo(customerID string) (*models.Customer, error) {
	s.simulateLatency()

	customer, err := s.customerRepo.GetByID(customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer %s: %w", customerID, err)
	}
	return customer, nil
}

func (s *catalogService) FindCustomerByEmail(email string) (*CustomerAccount, error) {
	s.simulateLatency()

	customer, err := s.customerRepo.GetByEmail(email)
	if err != nil {
		return nil, fmt.Errorf("failed to find customer by email: %w", err)
	}
	if customer == nil {
		return nil, nil
	}

	orders, err := s.orderRepo.GetByCustomerID(customer.CustomerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get orders for customer %s: %w", customer.CustomerID, err)
	}

	return &CustomerAccount{Customer: *customer, Orders: orders}, nil
}
