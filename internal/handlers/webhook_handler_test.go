package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"commerce_chatbot/internal/catalog"
	"commerce_chatbot/internal/repository"
	"commerce_chatbot/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newWebhookRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	store := catalog.Default()
	catalogService := services.NewCatalogService(
		repository.NewMemoryOrderRepository(store),
		repository.NewMemoryProductRepository(store),
		repository.NewMemoryCustomerRepository(store),
		repository.NewMemoryContentRepository(store),
		0,
	)
	handler := NewWebhookHandler(services.NewFulfillmentService(catalogService), nil, 0)

	r := gin.New()
	r.POST("/webhook", handler.HandleWebhook)
	return r
}

func postWebhook(t *testing.T, r *gin.Engine, body string) (int, WebhookResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/webhook", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp WebhookResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestHandleWebhook(t *testing.T) {
	r := newWebhookRouter()

	t.Run("check order status", func(t *testing.T) {
		code, resp := postWebhook(t, r, `{
			"responseId": "abc",
			"queryResult": {
				"intent": {"displayName": "Check Order Status"},
				"parameters": {"order_number": "123456"}
			}
		}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, resp.FulfillmentText, "order #123456 is currently shipped")
		assert.Contains(t, resp.FulfillmentText, "TRK789012345")
	})

	t.Run("numeric parameter value", func(t *testing.T) {
		code, resp := postWebhook(t, r, `{
			"queryResult": {
				"intent": {"displayName": "Check Order Status"},
				"parameters": {"order_number": 123456}
			}
		}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Contains(t, resp.FulfillmentText, "order #123456 is currently shipped")
	})

	t.Run("unknown order", func(t *testing.T) {
		code, resp := postWebhook(t, r, `{
			"queryResult": {
				"intent": {"displayName": "Check Order Status"},
				"parameters": {"order_number": "999999"}
			}
		}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, "I couldn't find an order with number #999999. Please check the number and try again.", resp.FulfillmentText)
	})

	t.Run("unknown intent falls back", func(t *testing.T) {
		code, resp := postWebhook(t, r, `{
			"queryResult": {
				"intent": {"displayName": "Foo"},
				"parameters": {}
			}
		}`)
		assert.Equal(t, http.StatusOK, code)
		assert.Equal(t, services.FallbackResponse, resp.FulfillmentText)
	})

	t.Run("invalid json", func(t *testing.T) {
		code, _ := postWebhook(t, r, `{`)
		assert.Equal(t, http.StatusBadRequest, code)
	})
}

func TestStringParameters(t *testing.T) {
	raw := map[string]any{
		"order_number":     "123456",
		"product_id":       float64(42),
		"faq_topic":        "",
		"shipping_type":    nil,
		"product_category": []any{"electronics"},
	}

	parameters := stringParameters(raw)

	assert.Equal(t, "123456", parameters["order_number"])
	assert.Equal(t, "42", parameters["product_id"])
	assert.NotContains(t, parameters, "faq_topic")
	assert.NotContains(t, parameters, "shipping_type")
	assert.NotContains(t, parameters, "product_category")
}
