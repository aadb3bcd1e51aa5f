package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The database is deliberately left uninitialized in these tests: a
// handler that touched it would panic, so a clean 422 proves the shape
// checks reject bad input before any database work.

func performJSON(t *testing.T, handler gin.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)

	encoded, err := json.Marshal(body)
	require.NoError(t, err)

	recorder := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(recorder)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(encoded))
	c.Request.Header.Set("Content-Type", "application/json")

	handler(c)
	return recorder
}

type errorBody struct {
	Status  string `json:"status"`
	Message string `json:"message"`
	Data    struct {
		Error []struct {
			Field   string `json:"field"`
			Message string `json:"message"`
		} `json:"error"`
	} `json:"data"`
}

func decodeErrors(t *testing.T, recorder *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &body))
	return body
}

func fieldMessage(body errorBody, field string) string {
	for _, e := range body.Data.Error {
		if e.Field == field {
			return e.Message
		}
	}
	return ""
}

func TestCreatePromotionRejectsEndBeforeStart(t *testing.T) {
	recorder := performJSON(t, CreatePromotion, gin.H{
		"name":       "Summer Sale",
		"type":       "store_wide",
		"start_date": "2025-06-10",
		"end_date":   "2025-06-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "error", body.Status)
	assert.Equal(t, "end date must not precede start date", fieldMessage(body, "end_date"))
}

func TestCreatePromotionRejectsUnknownType(t *testing.T) {
	recorder := performJSON(t, CreatePromotion, gin.H{
		"name":       "Summer Sale",
		"type":       "flash_sale",
		"start_date": "2025-06-01",
		"end_date":   "2025-06-10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "unknown promotion type", fieldMessage(body, "type"))
}

func TestCreatePromotionRejectsUnparseableDates(t *testing.T) {
	recorder := performJSON(t, CreatePromotion, gin.H{
		"name":       "Summer Sale",
		"type":       "store_wide",
		"start_date": "not a date",
		"end_date":   "2025-06-10",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "invalid date format", fieldMessage(body, "start_date"))
}

func TestCreatePricingRuleRejectsPercentageOverHundred(t *testing.T) {
	recorder := performJSON(t, CreatePricingRule, gin.H{
		"name":           "Big Discount",
		"type":           "promotional_price",
		"discount_type":  "percentage",
		"discount_value": 150,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "must be between 0 and 100", fieldMessage(body, "discount_value"))
}

func TestCreatePricingRuleRejectsBothTargets(t *testing.T) {
	recorder := performJSON(t, CreatePricingRule, gin.H{
		"name":           "Conflicting Rule",
		"type":           "quantity_discount",
		"discount_type":  "percentage",
		"discount_value": 10,
		"product_id":     1,
		"category_id":    2,
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "product and category cannot both be set", fieldMessage(body, "category_id"))
}

func TestCreatePricingRuleRejectsRuleWindowDisorder(t *testing.T) {
	recorder := performJSON(t, CreatePricingRule, gin.H{
		"name":           "Window Rule",
		"type":           "time_based",
		"discount_type":  "fixed",
		"discount_value": 5,
		"start_date":     "2025-06-10",
		"end_date":       "2025-06-01",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "end date must not precede start date", fieldMessage(body, "end_date"))
}

func TestCreatePurchaseOrderRejectsBadQuantity(t *testing.T) {
	recorder := performJSON(t, CreatePurchaseOrder, gin.H{
		"supplier_id": 1,
		"items": []gin.H{
			{"product_id": 3, "quantity": -2},
		},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, recorder.Code)
	body := decodeErrors(t, recorder)
	assert.Equal(t, "quantity must be greater than 0", fieldMessage(body, "items[0].quantity"))
}

func TestCreatePurchaseOrderRejectsMissingItems(t *testing.T) {
	recorder := performJSON(t, CreatePurchaseOrder, gin.H{
		"supplier_id": 1,
	})

	assert.Equal(t, http.StatusBadRequest, recorder.Code)
}
