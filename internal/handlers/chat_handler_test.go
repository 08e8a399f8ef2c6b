package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/dialogflow/apiv2/dialogflowpb"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubDetector struct {
	result *dialogflowpb.QueryResult
	err    error

	lastSessionID string
	lastText      string
}

func (s *stubDetector) DetectIntent(_ context.Context, sessionID, text string) (*dialogflowpb.QueryResult, error) {
	s.lastSessionID = sessionID
	s.lastText = text
	return s.result, s.err
}

func newChatRouter(detector IntentDetector) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.POST("/chat", NewChatHandler(detector).HandleChat)
	return r
}

func postChat(t *testing.T, r *gin.Engine, body string) (int, ChatResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp ChatResponse
	if w.Code == http.StatusOK {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestHandleChat(t *testing.T) {
	t.Run("final answer", func(t *testing.T) {
		detector := &stubDetector{result: &dialogflowpb.QueryResult{
			FulfillmentText:          "Your order #123456 is currently shipped.",
			AllRequiredParamsPresent: true,
		}}
		r := newChatRouter(detector)

		code, resp := postChat(t, r, `{"message": "where is my order 123456", "sessionId": "sess-1"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.True(t, resp.Done)
		assert.Equal(t, "Your order #123456 is currently shipped.", resp.Reply)
		assert.Equal(t, "sess-1", detector.lastSessionID)
		assert.Equal(t, "where is my order 123456", detector.lastText)
	})

	t.Run("slot filling prompt", func(t *testing.T) {
		detector := &stubDetector{result: &dialogflowpb.QueryResult{
			FulfillmentText:          "What's your order number?",
			AllRequiredParamsPresent: false,
		}}
		r := newChatRouter(detector)

		code, resp := postChat(t, r, `{"message": "where is my order"}`)
		assert.Equal(t, http.StatusOK, code)
		assert.False(t, resp.Done)
		assert.Equal(t, "What's your order number?", resp.Reply)
		// A session id is generated when the client sends none.
		assert.NotEmpty(t, detector.lastSessionID)
	})

	t.Run("missing message", func(t *testing.T) {
		r := newChatRouter(&stubDetector{})
		code, _ := postChat(t, r, `{"sessionId": "sess-1"}`)
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("detector failure", func(t *testing.T) {
		r := newChatRouter(&stubDetector{err: errors.New("rpc error")})
		code, _ := postChat(t, r, `{"message": "hello"}`)
		assert.Equal(t, http.StatusInternalServerError, code)
	})

	t.Run("not configured", func(t *testing.T) {
		r := newChatRouter(nil)
		code, _ := postChat(t, r, `{"message": "hello"}`)
		assert.Equal(t, http.StatusServiceUnavailable, code)
	})
}
