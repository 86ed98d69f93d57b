package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"admin-dashboard/internal/auth"
	"admin-dashboard/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func testContext(t *testing.T, target string) (*gin.Context, *httptest.ResponseRecorder) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	return c, rec
}

func TestReportErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"auth timeout", auth.ErrAuthTimeout, http.StatusUnauthorized},
		{"permission denied", &store.PermissionError{Table: "orders"}, http.StatusForbidden},
		{"generic fetch failure", errors.New("connection reset"), http.StatusInternalServerError},
	}

	h := &Handler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := testContext(t, "/api/v1/admin/dashboard/stats")
			h.reportError(c, tt.err)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestPermissionErrorNamesGrant(t *testing.T) {
	err := &store.PermissionError{Table: "orders"}
	assert.Contains(t, err.Error(), "orders")
	assert.Contains(t, err.Error(), "grant SELECT")
}

func TestGetChartSeriesRejectsUnknownPeriod(t *testing.T) {
	h := &Handler{}
	c, rec := testContext(t, "/api/v1/admin/dashboard/chart?period=week")

	h.getChartSeries(c)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetTopProductsRejectsBadLimit(t *testing.T) {
	h := &Handler{}

	for _, limit := range []string{"0", "-3", "abc"} {
		c, rec := testContext(t, "/api/v1/admin/dashboard/top-products?limit="+limit)
		h.getTopProducts(c)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	}
}

func TestBearerToken(t *testing.T) {
	c, _ := testContext(t, "/api/v1/admin/orders")
	c.Request.Header.Set("Authorization", "Bearer tok-123")
	assert.Equal(t, "tok-123", bearerToken(c))

	c, _ = testContext(t, "/api/v1/admin/orders")
	assert.Equal(t, "", bearerToken(c))

	c, _ = testContext(t, "/api/v1/admin/orders")
	c.Request.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
	assert.Equal(t, "", bearerToken(c))
}
