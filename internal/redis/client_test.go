package redis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResponseKey(t *testing.T) {
	key := ResponseKey("Check Order Status", map[string]string{"order_number": "123456"})
	assert.Equal(t, "response:Check Order Status|order_number=123456", key)
}

func TestResponseKeyIsOrderIndependent(t *testing.T) {
	a := ResponseKey("Product Recommendations", map[string]string{
		"product_id":       "prod003",
		"product_category": "electronics",
	})
	b := ResponseKey("Product Recommendations", map[string]string{
		"product_category": "electronics",
		"product_id":       "prod003",
	})
	assert.Equal(t, a, b)
}

func TestResponseKeyDistinguishesIntents(t *testing.T) {
	a := ResponseKey("FAQs", map[string]string{"faq_topic": "refund"})
	b := ResponseKey("Return Policy", map[string]string{"faq_topic": "refund"})
	assert.NotEqual(t, a, b)
}
