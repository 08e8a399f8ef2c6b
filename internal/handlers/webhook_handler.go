package handlers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"commerce_chatbot/internal/redis"
	"commerce_chatbot/internal/services"

	"github.com/gin-gonic/gin"
)

// Dialogflow V2 webhook envelope.
type WebhookIntent struct {
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
}

type WebhookQueryResult struct {
	QueryText  string         `json:"queryText"`
	Parameters map[string]any `json:"parameters"`
	Intent     WebhookIntent  `json:"intent"`
}

type WebhookRequest struct {
	ResponseID  string             `json:"responseId"`
	Session     string             `json:"session"`
	QueryResult WebhookQueryResult `json:"queryResult"`
}

type WebhookResponse struct {
	FulfillmentText string `json:"fulfillmentText"`
}

type WebhookHandler struct {
	fulfillment services.FulfillmentService
	cache       *redis.Client
	cacheTTL    time.Duration
}

// NewWebhookHandler builds the webhook handler; cache may be nil to disable
// response caching.
func NewWebhookHandler(fulfillment services.FulfillmentService, cache *redis.Client, cacheTTL time.Duration) *WebhookHandler {
	return &WebhookHandler{
		fulfillment: fulfillment,
		cache:       cache,
		cacheTTL:    cacheTTL,
	}
}

func (h *WebhookHandler) HandleWebhook(c *gin.Context) {
	var req WebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	intentName := req.QueryResult.Intent.DisplayName
	parameters := stringParameters(req.QueryResult.Parameters)

	log.Printf("Received intent %q with parameters %v", intentName, parameters)

	responseText := h.cachedFulfill(intentName, parameters)

	c.JSON(http.StatusOK, WebhookResponse{FulfillmentText: responseText})
}

func (h *WebhookHandler) cachedFulfill(intentName string, parameters map[string]string) string {
	if h.cache == nil || !cacheable(intentName) {
		return h.fulfillment.Fulfill(intentName, parameters)
	}

	key := redis.ResponseKey(intentName, parameters)
	if cached, err := h.cache.GetResponse(key); err != nil {
		log.Printf("Cache lookup failed: %v", err)
	} else if cached != "" {
		return cached
	}

	responseText := h.fulfillment.Fulfill(intentName, parameters)
	if err := h.cache.SetResponse(key, responseText, h.cacheTTL); err != nil {
		log.Printf("Cache store failed: %v", err)
	}
	return responseText
}

// Product recommendations can take the non-deterministic random branch, so
// those replies are never cached.
func cacheable(intentName string) bool {
	return intentName != services.IntentProductRecommendations
}

// stringParameters flattens the webhook parameter bag to strings. Dialogflow
// sends entity values as strings or numbers depending on the entity type.
func stringParameters(raw map[string]any) map[string]string {
	parameters := make(map[string]string, len(raw))
	for key, value := range raw {
		switch v := value.(type) {
		case string:
			if v != "" {
				parameters[key] = v
			}
		case float64:
			parameters[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case nil:
			// absent
		default:
			log.Printf("Ignoring parameter %q with unsupported type %T", key, value)
		}
	}
	return parameters
}
