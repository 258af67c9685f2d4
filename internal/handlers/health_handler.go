package handlers

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"greenscore-api/internal/dto"
)

const (
	serviceName        = "GreenScore API"
	serviceVersion     = "1.0.0"
	serviceDescription = "Sustainability Credit Scoring Platform"
)

// HealthCheckHandler handles the health check and API info endpoints
type HealthCheckHandler struct{}

// NewHealthCheckHandler creates a new health check handler
func NewHealthCheckHandler() *HealthCheckHandler {
	return &HealthCheckHandler{}
}

// HealthCheck reports service liveness
// @Summary Health check
// @Description Check API status
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string} "Service is healthy"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}

// APIInfo describes the service and its endpoint map
// @Summary API info
// @Description Service metadata and available endpoints
// @Tags Health
// @Produce json
// @Success 200 {object} dto.APIInfoResponse "Service info"
// @Router / [get]
func (h *HealthCheckHandler) APIInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, dto.APIInfoResponse{
		Name:        serviceName,
		Version:     serviceVersion,
		Status:      "running",
		Description: serviceDescription,
		Endpoints: map[string]string{
			"score":        "/api/v1/score",
			"transactions": "/api/v1/transactions",
			"insights":     "/api/v1/insights",
			"incentives":   "/api/v1/incentives",
			"classify":     "/api/v1/classify",
			"categories":   "/api/v1/categories",
			"users":        "/api/v1/users",
			"metrics":      "/metrics",
		},
	})
}
