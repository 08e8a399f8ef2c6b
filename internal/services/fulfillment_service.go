package services

import (
	"fmt"
	"log"
	"strings"

	"commerce_chatbot/internal/models"
)

// Intent names as the NLU agent reports them.
const (
	IntentCheckOrderStatus       = "Check Order Status"
	IntentOrderDetails           = "Order Details"
	IntentShippingInformation    = "Shipping Information"
	IntentReturnPolicy           = "Return Policy"
	IntentProductRecommendations = "Product Recommendations"
	IntentFAQs                   = "FAQs"
)

// Parameter keys the NLU agent extracts.
const (
	ParamOrderNumber     = "order_number"
	ParamShippingType    = "shipping_type"
	ParamProductCategory = "product_category"
	ParamProductID       = "product_id"
	ParamFAQTopic        = "faq_topic"
)

const (
	// FallbackResponse is returned for any intent name outside the handler table.
	FallbackResponse = "Sorry, I didn't understand that request."
	// ErrorResponse is returned when a handler fails unexpectedly.
	ErrorResponse = "I'm sorry, but I encountered an error processing your request."
)

const faqResponseLimit = 3

// FulfillmentService turns an intent and its parameter bag into reply text.
// Fulfill always returns a non-empty string; it has no mutable state and is
// safe for concurrent use.
type FulfillmentService interface {
	Fulfill(intentName string, parameters map[string]string) string
}

type intentHandler func(parameters map[string]string) (string, error)

type fulfillmentService struct {
	catalog  CatalogService
	handlers map[string]intentHandler
}

func NewFulfillmentService(catalog CatalogService) FulfillmentService {
	s := &fulfillmentService{catalog: catalog}
	s.handlers = map[string]intentHandler{
		IntentCheckOrderStatus:       s.checkOrderStatus,
		IntentOrderDetails:           s.orderDetails,
		IntentShippingInformation:    s.shippingInformation,
		IntentReturnPolicy:           s.returnPolicy,
		IntentProductRecommendations: s.productRecommendations,
		IntentFAQs:                   s.faqs,
	}
	return s
}

func (s *fulfillmentService) Fulfill(intentName string, parameters map[string]string) (text string) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("Panic while fulfilling intent %q: %v", intentName, r)
			text = ErrorResponse
		}
	}()

	handler, ok := s.handlers[intentName]
	if !ok {
		return FallbackResponse
	}

	text, err := handler(parameters)
	if err != nil {
		log.Printf("Error fulfilling intent %q: %v", intentName, err)
		return ErrorResponse
	}
	return text
}

func orderNotFoundReply(orderNumber string) string {
	return fmt.Sprintf("I couldn't find an order with number #%s. Please check the number and try again.", orderNumber)
}

func (s *fulfillmentService) checkOrderStatus(parameters map[string]string) (string, error) {
	orderNumber := parameters[ParamOrderNumber]

	status, err := s.catalog.GetOrderStatus(orderNumber)
	if err != nil {
		return "", err
	}
	if status == StatusNotFound {
		return orderNotFoundReply(orderNumber), nil
	}

	var response strings.Builder
	fmt.Fprintf(&response, "Your order #%s is currently %s.", orderNumber, status)

	// Shipped and delivered orders get their tracking details appended.
	if status == string(models.OrderShipped) || status == string(models.OrderDelivered) {
		tracking, err := s.catalog.GetTrackingInfo(orderNumber)
		if err != nil {
			return "", err
		}
		if tracking.Found {
			fmt.Fprintf(&response, "\n\nTracking number: %s.\n%s.", tracking.TrackingNumber, tracking.LastUpdate)
		}
	}

	return response.String(), nil
}

func (s *fulfillmentService) orderDetails(parameters map[string]string) (string, error) {
	orderNumber := parameters[ParamOrderNumber]

	details, err := s.catalog.GetOrderDetails(orderNumber)
	if err != nil {
		return "", err
	}
	if details == nil {
		return orderNotFoundReply(orderNumber), nil
	}

	var response strings.Builder
	fmt.Fprintf(&response, "Order #%s placed on %s\n\n", orderNumber, details.OrderDate.Format("2006-01-02"))

	if len(details.Products) > 0 {
		response.WriteString("Items:\n")
		for _, product := range details.Products {
			fmt.Fprintf(&response, "- %s: $%.2f\n", product.Name, product.Price)
		}
	}

	fmt.Fprintf(&response, "\nStatus: %s", details.Status)
	if details.TrackingNumber != "" {
		fmt.Fprintf(&response, "\nTracking Number: %s", details.TrackingNumber)
	}

	return response.String(), nil
}

func (s *fulfillmentService) shippingInformation(parameters map[string]string) (string, error) {
	shippingType := parameters[ParamShippingType]

	info, err := s.catalog.GetShippingInfo(shippingType)
	if err != nil {
		return "", err
	}

	if info.Option != nil {
		return fmt.Sprintf("%s costs $%.2f and takes %s.", info.Option.Name, info.Option.Cost, info.Option.EstimatedDays), nil
	}

	var response strings.Builder
	response.WriteString("We offer the following shipping options:\n\n")
	for _, option := range info.Options {
		fmt.Fprintf(&response, "- %s: $%.2f (%s)\n", option.Name, option.Cost, option.EstimatedDays)
	}
	fmt.Fprintf(&response, "\nOrders over $%.2f qualify for free standard shipping.", info.FreeShippingThreshold)

	return response.String(), nil
}

func (s *fulfillmentService) returnPolicy(parameters map[string]string) (string, error) {
	category := parameters[ParamProductCategory]

	info, err := s.catalog.GetReturnPolicy(category)
	if err != nil {
		return "", err
	}

	if info.Category != "" {
		return fmt.Sprintf("Return policy for %s products:\n\n%s", category, info.Policy), nil
	}

	var response strings.Builder
	response.WriteString(info.Full.General + "\n\n")
	if info.Full.Electronics != "" {
		fmt.Fprintf(&response, "Electronics:\n%s\n\n", info.Full.Electronics)
	}
	if info.Full.Clothing != "" {
		fmt.Fprintf(&response, "Clothing:\n%s\n\n", info.Full.Clothing)
	}
	fmt.Fprintf(&response, "Return Process:\n%s", info.Full.Process)

	return response.String(), nil
}

func (s *fulfillmentService) productRecommendations(parameters map[string]string) (string, error) {
	productID := parameters[ParamProductID]
	category := parameters[ParamProductCategory]

	recommendations, err := s.catalog.GetRecommendedProducts(productID, category)
	if err != nil {
		return "", err
	}

	if len(recommendations) == 0 {
		return "Sorry, I don't have any recommendations at the moment.", nil
	}

	var response strings.Builder
	if category != "" {
		fmt.Fprintf(&response, "Here are some popular products in the %s category:\n\n", category)
	} else {
		response.WriteString("Here are some products you might like:\n\n")
	}
	for _, product := range recommendations {
		fmt.Fprintf(&response, "- %s: $%.2f\n  %s\n\n", product.Name, product.Price, product.Description)
	}

	return response.String(), nil
}

func (s *fulfillmentService) faqs(parameters map[string]string) (string, error) {
	topic := parameters[ParamFAQTopic]

	faqs, err := s.catalog.GetFAQs(topic)
	if err != nil {
		return "", err
	}

	if len(faqs) == 0 {
		return fmt.Sprintf("I don't have information about %q in our FAQs.", topic), nil
	}

	var response strings.Builder
	if topic != "" {
		fmt.Fprintf(&response, "Here are FAQs about %q:\n\n", topic)
	} else {
		response.WriteString("Here are our most frequently asked questions:\n\n")
	}

	// Only the first few, to keep chat replies readable.
	limited := faqs
	if len(limited) > faqResponseLimit {
		limited = limited[:faqResponseLimit]
	}
	for _, faq := range limited {
		fmt.Fprintf(&response, "Q: %s\nA: %s\n\n", faq.Question, faq.Answer)
	}

	if len(faqs) > faqResponseLimit {
		response.WriteString("You can ask me about any of these topics specifically if you need more information.")
	}

	return response.String(), nil
}
