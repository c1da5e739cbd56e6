package webserver

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/agentic-commerce/ap2-sim/src/agents/credentials"
	"github.com/agentic-commerce/ap2-sim/src/agents/merchant"
	"github.com/agentic-commerce/ap2-sim/src/agents/processor"
	"github.com/agentic-commerce/ap2-sim/src/agents/shopping"
	"github.com/agentic-commerce/ap2-sim/src/catalog"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	creds := credentials.New(credentials.DefaultName)
	shopper := shopping.New(shopping.Config{
		Merchant:    merchant.New("ECOMSURFER", catalog.NewStatic("ECOMSURFER")),
		Credentials: creds,
		Processor:   processor.New(processor.DefaultName),
	})
	return New(shopper, creds)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var parsed map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	}
	return w, parsed
}

func TestIntentRoute(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, "POST", "/intent", gin.H{"prompt": "Redmi Note 13 under 25000"})
	require.Equal(t, http.StatusOK, w.Code)

	product, ok := resp["product"].(map[string]interface{})
	require.True(t, ok, "product should be an object")
	assert.NotEmpty(t, product["name"])

	alts, ok := resp["alternatives"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, alts)

	logs, ok := resp["agentLogs"].([]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, logs)
}

func TestIntentRouteNoMatchStillOK(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, "POST", "/intent", gin.H{"prompt": "a unicycle made of cheese"})
	require.Equal(t, http.StatusOK, w.Code)

	assert.Nil(t, resp["product"])
	alts, ok := resp["alternatives"].([]interface{})
	require.True(t, ok, "alternatives should be [] not null")
	assert.Empty(t, alts)
	assert.NotEmpty(t, resp["agentLogs"])
}

func TestPayWithoutCart(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, "POST", "/pay", gin.H{"paymentMethod": "pm_1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "FAILED", resp["status"])
	assert.Nil(t, resp["receiptId"])
}

func TestPayMissingMethodIsBadRequest(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "POST", "/pay", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFullCheckoutFlow(t *testing.T) {
	r := newTestRouter()

	w, _ := doJSON(t, r, "POST", "/intent", gin.H{"prompt": "I want to buy a coffee machine"})
	require.Equal(t, http.StatusOK, w.Code)

	w, resp := doJSON(t, r, "POST", "/update-product", gin.H{
		"product_id": "prod_override",
		"name":       "De'Longhi Dedica EC685 Espresso Machine",
		"price":      24999,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "success", resp["status"])
	assert.Contains(t, resp["message"], "24999")

	w, resp = doJSON(t, r, "POST", "/pay", gin.H{"paymentMethod": "pm_1"})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "SUCCESS", resp["status"])
	receipt, ok := resp["receiptId"].(string)
	require.True(t, ok)
	assert.Contains(t, receipt, "txn_pay_")
}

func TestUpdateProductRejectsNegativePrice(t *testing.T) {
	r := newTestRouter()

	w, resp := doJSON(t, r, "POST", "/update-product", gin.H{
		"product_id": "prod_bad",
		"name":       "Broken Product",
		"price":      -10,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "error", resp["status"])
}

func TestPaymentMethodsRoute(t *testing.T) {
	r := newTestRouter()

	req := httptest.NewRequest("GET", "/payment-methods", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp struct {
		Methods []struct {
			ID    string `json:"id"`
			Alias string `json:"alias"`
		} `json:"methods"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Methods, 2)
	assert.Equal(t, "pm_1", resp.Methods[0].ID)
}
