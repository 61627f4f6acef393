package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/discount-service/internal/domain/dto"
	"github.com/guttosm/discount-service/internal/domain/model"
	"github.com/guttosm/discount-service/internal/mocks"
	"github.com/guttosm/discount-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func setupRouter() *gin.Engine {
	engine := service.NewDiscountEngineService()
	handler := NewHandler(engine, nil) // nil means pricing rules from MongoDB are disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig())
}

func setupRouterWithMock(t *testing.T) (*gin.Engine, *mocks.MockDiscountEngine) {
	mockEngine := mocks.NewMockDiscountEngine(t)
	handler := NewHandler(mockEngine, nil) // nil means pricing rules from MongoDB are disabled
	healthHandler := NewHealthHandler()
	return NewRouter(handler, healthHandler, DefaultRouterConfig()), mockEngine
}

// catalogBody builds a catalog request body for a single-line cart of the
// given quantity and unit price, purchased under the named company.
func catalogBody(company string, quantity int, amount string) string {
	body := map[string]interface{}{
		"cart": map[string]interface{}{
			"lines": []map[string]interface{}{
				{
					"id":       "gid://shopify/CartLine/0",
					"quantity": quantity,
					"merchandise": map[string]interface{}{
						"__typename": "ProductVariant",
						"product":    map[string]string{"id": "gid://shopify/Product/1"},
					},
					"cost": map[string]interface{}{
						"amountPerQuantity": map[string]string{"amount": amount, "currencyCode": "USD"},
					},
				},
			},
			"buyerIdentity": map[string]interface{}{
				"purchasingCompany": map[string]interface{}{
					"company": map[string]string{"name": company},
				},
			},
		},
		"discount": map[string]interface{}{
			"discountClasses": []string{"PRODUCT"},
		},
	}
	data, _ := json.Marshal(body)
	return string(data)
}

func TestGenerateCartDiscounts(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "valid request with tier discount",
			body:           catalogBody("College/gyms/other", 3, "40.00"),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)

				// Unmarshal data field
				dataBytes, _ := json.Marshal(resp.Data)
				var result model.OperationsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Len(t, result.Operations, 1)
				candidates := result.Operations[0].ProductDiscountsAdd.Candidates
				assert.Len(t, candidates, 1)
				assert.Equal(t, "5.00", candidates[0].Value.FixedAmount.Amount)
				assert.True(t, candidates[0].Value.FixedAmount.AppliesToEachItem)
				assert.Equal(t, model.SelectionStrategyAll, result.Operations[0].ProductDiscountsAdd.SelectionStrategy)
			},
		},
		{
			name:           "unknown company yields no operations",
			body:           catalogBody("Nobody Knows This Co", 3, "40.00"),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var result model.OperationsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Empty(t, result.Operations)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "missing cart",
			body:           `{}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "empty cart is a fatal input error",
			body:           `{"cart": {"lines": []}, "discount": {"discountClasses": ["PRODUCT"]}}`,
			expectedStatus: http.StatusBadRequest,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)
				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "No cart lines found", resp.Message)
			},
		},
		{
			name:           "negative line quantity",
			body:           `{"cart": {"lines": [{"id": "gid://shopify/CartLine/0", "quantity": -1, "merchandise": {"product": {"id": "gid://shopify/Product/1"}}, "cost": {"amountPerQuantity": {"amount": "40.00"}}}]}}`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "line without id",
			body:           `{"cart": {"lines": [{"quantity": 1, "merchandise": {"product": {"id": "gid://shopify/Product/1"}}, "cost": {"amountPerQuantity": {"amount": "40.00"}}}]}}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/discounts/cart", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGenerateTargetedDiscounts(t *testing.T) {
	router := setupRouter()

	targetedBody := func(company string, location string, quantity int) string {
		buyer := map[string]interface{}{}
		if company != "" {
			buyer["company"] = map[string]string{"name": company}
		}
		if location != "" {
			buyer["companyLocation"] = map[string]string{"name": location}
		}
		body := map[string]interface{}{
			"cart": map[string]interface{}{
				"lines": []map[string]interface{}{
					{
						"id":       "gid://shopify/CartLine/0",
						"quantity": quantity,
						"merchandise": map[string]interface{}{
							"__typename": "ProductVariant",
							"product":    map[string]string{"id": "gid://shopify/Product/9114452263135"},
						},
						"cost": map[string]interface{}{
							"amountPerQuantity": map[string]string{"amount": "40.00", "currencyCode": "USD"},
						},
					},
				},
				"buyerIdentity": buyer,
			},
		}
		data, _ := json.Marshal(body)
		return string(data)
	}

	tests := []struct {
		name           string
		body           string
		expectedStatus int
		checkResponse  func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "B2B cart on default table",
			body:           targetedBody("Some Gym", "Somewhere", 2),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var result model.DiscountsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Len(t, result.Discounts, 1)
				assert.Equal(t, service.WholesaleTierMessage, result.Discounts[0].Message)
				assert.Equal(t, "5.00", result.Discounts[0].Value.FixedAmount.Amount)
				assert.Equal(t, "USD", result.Discounts[0].Value.FixedAmount.CurrencyCode)
				assert.Equal(t, model.ApplicationStrategyMaximum, result.DiscountApplicationStrategy)
			},
		},
		{
			name:           "professional location gets professional table",
			body:           targetedBody("Texas Solutions", "Texas Solutions", 2),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var result model.DiscountsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Len(t, result.Discounts, 1)
				assert.Equal(t, "10.00", result.Discounts[0].Value.FixedAmount.Amount)
			},
		},
		{
			name:           "non-B2B cart yields empty result",
			body:           targetedBody("", "", 2),
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var result model.DiscountsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Empty(t, result.Discounts)
				assert.Equal(t, model.ApplicationStrategyMaximum, result.DiscountApplicationStrategy)
			},
		},
		{
			name:           "empty cart yields empty result",
			body:           `{"cart": {"lines": []}}`,
			expectedStatus: http.StatusOK,
			checkResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				assert.NoError(t, err)

				dataBytes, _ := json.Marshal(resp.Data)
				var result model.DiscountsResult
				err = json.Unmarshal(dataBytes, &result)
				assert.NoError(t, err)
				assert.Empty(t, result.Discounts)
			},
		},
		{
			name:           "invalid JSON",
			body:           `invalid`,
			expectedStatus: http.StatusBadRequest,
		},
		{
			name:           "negative line quantity",
			body:           `{"cart": {"lines": [{"id": "gid://shopify/CartLine/0", "quantity": -1, "merchandise": {"product": {"id": "gid://shopify/Product/1"}}, "cost": {"amountPerQuantity": {"amount": "40.00"}}}]}}`,
			expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/discounts/targeted", bytes.NewBufferString(tt.body))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.checkResponse != nil {
				tt.checkResponse(t, w)
			}
		})
	}
}

func TestGenerateCartDiscounts_WithMock(t *testing.T) {
	router, mockEngine := setupRouterWithMock(t)

	expectedResult := model.OperationsResult{
		Operations: []model.Operation{
			{
				ProductDiscountsAdd: model.ProductDiscountsAdd{
					Candidates: []model.Candidate{
						{
							Targets: []model.Target{{CartLine: model.CartLineTarget{ID: "gid://shopify/CartLine/0"}}},
							Value: model.DiscountValue{
								FixedAmount: model.FixedAmount{Amount: "5.00", AppliesToEachItem: true},
							},
						},
					},
					SelectionStrategy: model.SelectionStrategyAll,
				},
			},
		},
	}
	mockEngine.On("GenerateCartOperations", mock.Anything, mock.Anything).Return(expectedResult, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/discounts/cart", bytes.NewBufferString(catalogBody("College/gyms/other", 3, "40.00")))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.SuccessResponse
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	assert.NoError(t, err)

	dataBytes, _ := json.Marshal(resp.Data)
	var result model.OperationsResult
	err = json.Unmarshal(dataBytes, &result)
	assert.NoError(t, err)
	assert.Equal(t, expectedResult, result)
}

func TestGenerateCartDiscounts_EmptyCartWithMock(t *testing.T) {
	router, mockEngine := setupRouterWithMock(t)

	mockEngine.On("GenerateCartOperations", mock.Anything, mock.Anything).
		Return(model.OperationsResult{}, model.ErrEmptyCart)

	req := httptest.NewRequest(http.MethodPost, "/api/discounts/cart", bytes.NewBufferString(`{"cart": {"lines": []}}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHealthEndpoints(t *testing.T) {
	router := setupRouter()

	tests := []struct {
		name           string
		path           string
		expectedStatus int
		expectedBody   string
	}{
		{
			name:           "liveness probe",
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
		{
			name:           "readiness probe",
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			expectedBody:   `"status":"ok"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Contains(t, w.Body.String(), tt.expectedBody)
		})
	}
}

func BenchmarkHandler(b *testing.B) {
	router := setupRouter()
	body := []byte(catalogBody("College/gyms/other", 12, "40.00"))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		req := httptest.NewRequest(http.MethodPost, "/api/discounts/cart", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
	}
}
