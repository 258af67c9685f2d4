package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"greenscore-api/internal/dto"
)

// HealthHandlerSuite is the test suite for health and info endpoints
type HealthHandlerSuite struct {
	suite.Suite
	handler *HealthCheckHandler
	e       *echo.Echo
}

func TestHealthHandler(t *testing.T) {
	suite.Run(t, new(HealthHandlerSuite))
}

func (s *HealthHandlerSuite) SetupTest() {
	s.handler = NewHealthCheckHandler()
	s.e = echo.New()
}

func (s *HealthHandlerSuite) TestHealthCheck() {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.HealthCheck(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp map[string]string
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("healthy", resp["status"])
	_, parseErr := time.Parse(time.RFC3339, resp["time"])
	s.NoError(parseErr)
}

func (s *HealthHandlerSuite) TestAPIInfo() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.APIInfo(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.APIInfoResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("GreenScore API", resp.Name)
	s.Equal("running", resp.Status)
	s.Contains(resp.Endpoints, "score")
	s.Contains(resp.Endpoints, "users")
}
