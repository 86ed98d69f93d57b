package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"admin-dashboard/internal/auth"
	"admin-dashboard/internal/reporting"
	"admin-dashboard/internal/store"
	"admin-dashboard/internal/util"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const defaultTopProducts = 5

// Handler contains HTTP handlers
type Handler struct {
	reports  *reporting.Service
	sessions *auth.SessionProvider
}

// NewHandler creates a new HTTP handler
func NewHandler(reports *reporting.Service, sessions *auth.SessionProvider) *Handler {
	return &Handler{
		reports:  reports,
		sessions: sessions,
	}
}

// SetupRoutes sets up HTTP routes
func (h *Handler) SetupRoutes(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(prometheusMiddleware())
	router.Use(gin.Logger())

	router.GET("/health", h.healthCheck)
	router.GET("/ready", h.readinessCheck)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	admin := router.Group("/api/v1/admin")
	admin.Use(h.requireAdmin())
	{
		admin.GET("/dashboard/stats", h.getDashboardStats)
		admin.GET("/dashboard/categories", h.getCategoryDistribution)
		admin.GET("/dashboard/chart", h.getChartSeries)
		admin.GET("/dashboard/top-products", h.getTopProducts)
		admin.GET("/orders", h.listOrders)
		admin.GET("/orders/:id", h.getOrder)
		admin.GET("/products", h.listProducts)
		admin.GET("/users", h.listUsers)
	}
}

// healthCheck handles health check requests
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"time":   time.Now().Unix(),
	})
}

// readinessCheck handles readiness check requests
func (h *Handler) readinessCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ready",
		"time":   time.Now().Unix(),
	})
}

// getDashboardStats returns the headline dashboard aggregate
func (h *Handler) getDashboardStats(c *gin.Context) {
	stats, err := h.reports.DashboardStats(c.Request.Context())
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// getCategoryDistribution returns the category share breakdown
func (h *Handler) getCategoryDistribution(c *gin.Context) {
	shares, err := h.reports.CategoryDistribution(c.Request.Context())
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": shares})
}

// getChartSeries returns the time-bucketed sales series
func (h *Handler) getChartSeries(c *gin.Context) {
	period, err := reporting.ParsePeriod(c.DefaultQuery("period", "day"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	points, err := h.reports.ChartSeries(c.Request.Context(), period)
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"period": period, "points": points})
}

// getTopProducts returns the units-sold ranking with formatted revenue
func (h *Handler) getTopProducts(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(defaultTopProducts)))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	ranks, err := h.reports.TopProducts(c.Request.Context(), limit)
	if err != nil {
		h.reportError(c, err)
		return
	}

	type rankedProduct struct {
		ProductID string `json:"product_id"`
		Name      string `json:"name"`
		UnitsSold int    `json:"units_sold"`
		Revenue   string `json:"revenue"`
	}

	out := make([]rankedProduct, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, rankedProduct{
			ProductID: r.ProductID,
			Name:      r.Name,
			UnitsSold: r.UnitsSold,
			Revenue:   FormatCurrency(r.Revenue),
		})
	}
	c.JSON(http.StatusOK, gin.H{"products": out})
}

// listOrders returns recent orders with an optional payment-status filter
func (h *Handler) listOrders(c *gin.Context) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
		return
	}

	orders, err := h.reports.RecentOrders(c.Request.Context(), c.Query("status"), limit)
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

// getOrder returns a single order with line items
func (h *Handler) getOrder(c *gin.Context) {
	order, err := h.reports.Order(c.Request.Context(), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"error":   "Order not found",
			"details": err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, order)
}

// listProducts returns the full catalog snapshot
func (h *Handler) listProducts(c *gin.Context) {
	products, err := h.reports.Products(c.Request.Context())
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"products": products})
}

// listUsers returns the full user snapshot
func (h *Handler) listUsers(c *gin.Context) {
	users, err := h.reports.Users(c.Request.Context())
	if err != nil {
		h.reportError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"users": users})
}

// reportError maps the reporting error taxonomy to HTTP responses
func (h *Handler) reportError(c *gin.Context, err error) {
	var permErr *store.PermissionError

	switch {
	case errors.Is(err, auth.ErrAuthTimeout):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.As(err, &permErr):
		c.JSON(http.StatusForbidden, gin.H{"error": permErr.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to build report",
			"details": err.Error(),
		})
	}
}

// requireAdmin resolves the request's session token and rejects non-admin
// principals. The principal is stored on the context for handlers.
func (h *Handler) requireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing session token"})
			return
		}

		principal, err := h.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Session lookup failed"})
			return
		}
		if principal == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired session"})
			return
		}
		if !principal.IsAdmin() {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Admin role required"})
			return
		}

		c.Set("principal", principal)
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	const prefix = "Bearer "
	header := c.GetHeader("Authorization")
	if len(header) > len(prefix) && header[:len(prefix)] == prefix {
		return header[len(prefix):]
	}
	return ""
}

// prometheusMiddleware collects HTTP metrics
func prometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		util.HTTPRequestDuration.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Observe(duration)

		util.HTTPRequestsTotal.WithLabelValues(
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()
	}
}
