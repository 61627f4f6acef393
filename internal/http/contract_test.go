//go:build contract

package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/discount-service/internal/domain/dto"
	"github.com/guttosm/discount-service/internal/middleware"
	"github.com/guttosm/discount-service/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func contractRouter() *gin.Engine {
	engine := service.NewDiscountEngineService()
	handler := NewHandler(engine, nil) // nil means pricing rules from MongoDB are disabled
	healthHandler := NewHealthHandler()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Recovery(), middleware.ErrorHandler())
	healthHandler.Register(router)
	api := router.Group("/api")
	api.POST("/discounts/cart", handler.GenerateCartDiscounts)
	api.POST("/discounts/targeted", handler.GenerateTargetedDiscounts)
	return router
}

// TestAPI_ContractCompliance validates that API responses match the documented contract.
func TestAPI_ContractCompliance(t *testing.T) {
	router := contractRouter()

	tests := []struct {
		name             string
		method           string
		path             string
		body             string
		expectedStatus   int
		validateResponse func(*testing.T, *httptest.ResponseRecorder)
	}{
		{
			name:           "POST /api/discounts/cart - Success 200",
			method:         http.MethodPost,
			path:           "/api/discounts/cart",
			body:           catalogBody("College/gyms/other", 3, "40.00"),
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				// Validate dto.SuccessResponse structure
				assert.NotEmpty(t, resp.RequestID, "Response must include request_id")
				assert.NotZero(t, resp.Timestamp, "Response must include timestamp")
				assert.NotNil(t, resp.Data, "Response must include data")

				// Validate OperationsResult structure
				result, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be OperationsResult")
				require.Contains(t, result, "operations")

				operations, ok := result["operations"].([]interface{})
				require.True(t, ok)
				require.NotEmpty(t, operations)

				op, ok := operations[0].(map[string]interface{})
				require.True(t, ok)
				require.Contains(t, op, "productDiscountsAdd")

				add, ok := op["productDiscountsAdd"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "All", add["selectionStrategy"])

				candidates, ok := add["candidates"].([]interface{})
				require.True(t, ok)
				require.NotEmpty(t, candidates)

				candidate, ok := candidates[0].(map[string]interface{})
				require.True(t, ok)
				assert.Contains(t, candidate, "targets")
				assert.Contains(t, candidate, "value")

				value, ok := candidate["value"].(map[string]interface{})
				require.True(t, ok)
				fixedAmount, ok := value["fixedAmount"].(map[string]interface{})
				require.True(t, ok)
				assert.Equal(t, "5.00", fixedAmount["amount"])
				assert.Equal(t, true, fixedAmount["appliesToEachItem"])
			},
		},
		{
			name:           "POST /api/discounts/targeted - Success 200 with strategy",
			method:         http.MethodPost,
			path:           "/api/discounts/targeted",
			body:           `{"cart": {"lines": []}}`,
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.SuccessResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				result, ok := resp.Data.(map[string]interface{})
				require.True(t, ok, "Data must be DiscountsResult")

				assert.Contains(t, result, "discounts")
				assert.Equal(t, "Maximum", result["discountApplicationStrategy"],
					"application strategy must be present even on empty results")

				discounts, ok := result["discounts"].([]interface{})
				require.True(t, ok, "discounts must serialize as an array, not null")
				assert.Empty(t, discounts)
			},
		},
		{
			name:           "POST /api/discounts/cart - Error 400 Invalid JSON",
			method:         http.MethodPost,
			path:           "/api/discounts/cart",
			body:           `invalid json`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.NotEmpty(t, resp.Message)
				assert.NotEmpty(t, resp.RequestID)
				assert.NotZero(t, resp.Timestamp)
			},
		},
		{
			name:           "POST /api/discounts/cart - Error 400 Empty Cart",
			method:         http.MethodPost,
			path:           "/api/discounts/cart",
			body:           `{"cart": {"lines": []}, "discount": {"discountClasses": ["PRODUCT"]}}`,
			expectedStatus: http.StatusBadRequest,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp dto.ErrorResponse
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Equal(t, dto.ErrCodeInvalidRequest, resp.Error)
				assert.Equal(t, "No cart lines found", resp.Message)
			},
		},
		{
			name:           "GET /healthz - Success 200",
			method:         http.MethodGet,
			path:           "/healthz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Equal(t, "ok", resp["status"])
			},
		},
		{
			name:           "GET /readyz - Success 200",
			method:         http.MethodGet,
			path:           "/readyz",
			expectedStatus: http.StatusOK,
			validateResponse: func(t *testing.T, w *httptest.ResponseRecorder) {
				var resp map[string]interface{}
				err := json.Unmarshal(w.Body.Bytes(), &resp)
				require.NoError(t, err)

				assert.Contains(t, resp, "status")
				assert.Contains(t, resp, "checks")
				assert.Equal(t, "ok", resp["status"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req *http.Request
			if tt.body != "" {
				req = httptest.NewRequest(tt.method, tt.path, bytes.NewReader([]byte(tt.body)))
				req.Header.Set("Content-Type", "application/json")
			} else {
				req = httptest.NewRequest(tt.method, tt.path, nil)
			}

			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			assert.Equal(t, tt.expectedStatus, w.Code, "Status code mismatch")
			assert.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))
			assert.NotEmpty(t, w.Header().Get("X-Request-ID"), "Response must include X-Request-ID header")

			if tt.validateResponse != nil {
				tt.validateResponse(t, w)
			}
		})
	}
}

// TestAPI_MoneyFormat validates the two-fractional-digit money contract.
func TestAPI_MoneyFormat(t *testing.T) {
	router := contractRouter()

	// 40.239 truncates to 4023 cents; tier 3200 leaves 823 -> "8.23".
	body := catalogBody("College/gyms/other", 12, "40.239")

	req := httptest.NewRequest(http.MethodPost, "/api/discounts/cart", bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"amount":"8.23"`)
}
