package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/errors"
	"greenscore-api/internal/models"
	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

// UserHandlerSuite is the test suite for user endpoints
type UserHandlerSuite struct {
	suite.Suite
	handler *UserHandler
	e       *echo.Echo
}

func TestUserHandler(t *testing.T) {
	suite.Run(t, new(UserHandlerSuite))
}

func (s *UserHandlerSuite) SetupTest() {
	userRepo := repositories.NewUserRepository(services.NewTransactionGenerator(), 100)
	s.handler = NewUserHandler(
		userRepo,
		services.NewScoringService(),
		services.NewInsightService(),
		services.NewIncentiveService(),
		services.NewNoopMetrics(),
	)
	s.e = echo.New()
}

func (s *UserHandlerSuite) userContext(userID, path string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues(userID)
	return c, rec
}

func (s *UserHandlerSuite) TestListUsers_All() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	err := s.handler.ListUsers(c)

	s.NoError(err)
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.UserListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal(100, resp.Count)
	for _, user := range resp.Users {
		s.GreaterOrEqual(user.GreenScore, models.MinScore)
		s.LessOrEqual(user.GreenScore, models.MaxScore)
		s.GreaterOrEqual(user.TransactionCount, 10)
		s.LessOrEqual(user.TransactionCount, 20)
	}
}

func (s *UserHandlerSuite) TestListUsers_SearchByID() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?q=USR0031", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.ListUsers(c))

	var resp dto.UserListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal(1, resp.Count)
	s.Equal("USR0031", resp.Users[0].ID)
}

func (s *UserHandlerSuite) TestListUsers_ScoreRangeFilter() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?min_score=60&max_score=100", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.ListUsers(c))

	var resp dto.UserListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	for _, user := range resp.Users {
		s.GreaterOrEqual(user.GreenScore, 60)
	}
}

func (s *UserHandlerSuite) TestListUsers_InvalidScoreRange() {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/users?min_score=80&max_score=20", nil)
	rec := httptest.NewRecorder()
	c := s.e.NewContext(req, rec)

	s.NoError(s.handler.ListUsers(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.ValidationOutOfRange), resp.Error.Code)
}

func (s *UserHandlerSuite) TestGetUser_Found() {
	c, rec := s.userContext("USR0001", "/api/v1/users/USR0001")

	s.NoError(s.handler.GetUser(c))
	s.Equal(http.StatusOK, rec.Code)

	var profile models.UserProfile
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &profile))

	s.Equal("USR0001", profile.ID)
	s.NotEmpty(profile.Tier.TierID)
	s.True(profile.Tier.Contains(profile.GreenScore))
	s.True(profile.TotalSpent.IsPositive())
}

func (s *UserHandlerSuite) TestGetUser_NotFound() {
	c, rec := s.userContext("USR9999", "/api/v1/users/USR9999")

	s.NoError(s.handler.GetUser(c))
	s.Equal(http.StatusNotFound, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.UserNotFound), resp.Error.Code)
}

func (s *UserHandlerSuite) TestGetUser_MalformedID() {
	c, rec := s.userContext("bogus", "/api/v1/users/bogus")

	s.NoError(s.handler.GetUser(c))
	s.Equal(http.StatusBadRequest, rec.Code)

	var resp ErrorResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))
	s.Equal(string(errors.UserInvalidID), resp.Error.Code)
}

func (s *UserHandlerSuite) TestGetUserTransactions() {
	c, rec := s.userContext("USR0005", "/api/v1/users/USR0005/transactions")

	s.NoError(s.handler.GetUserTransactions(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.TransactionListResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal(len(resp.Transactions), resp.Count)
	s.GreaterOrEqual(resp.Count, 10)
	s.LessOrEqual(resp.Count, 20)
	for _, txn := range resp.Transactions {
		s.Equal("USR0005", txn.UserID)
	}
}

func (s *UserHandlerSuite) TestGetUserScore_ConsistentWithListing() {
	c, rec := s.userContext("USR0010", "/api/v1/users/USR0010/score")

	s.NoError(s.handler.GetUserScore(c))
	s.Equal(http.StatusOK, rec.Code)

	var scoreResp dto.UserScoreResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &scoreResp))

	s.Equal("USR0010", scoreResp.UserID)
	s.Equal(models.ScoreStatusFor(scoreResp.Score), scoreResp.Status)

	// The listing must report the same score for the same user
	listReq := httptest.NewRequest(http.MethodGet, "/api/v1/users?q=USR0010", nil)
	listRec := httptest.NewRecorder()
	s.NoError(s.handler.ListUsers(s.e.NewContext(listReq, listRec)))

	var listResp dto.UserListResponse
	s.NoError(json.Unmarshal(listRec.Body.Bytes(), &listResp))
	s.Equal(1, listResp.Count)
	s.Equal(scoreResp.Score, listResp.Users[0].GreenScore)
}

func (s *UserHandlerSuite) TestGetUserInsights() {
	c, rec := s.userContext("USR0020", "/api/v1/users/USR0020/insights")

	s.NoError(s.handler.GetUserInsights(c))
	s.Equal(http.StatusOK, rec.Code)

	var bundle models.InsightBundle
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &bundle))

	s.NotEmpty(bundle.Summary)
	s.LessOrEqual(len(bundle.Highlights), 5)
	s.LessOrEqual(len(bundle.Recommendations), 4)
	s.NotNil(bundle.Patterns)
}

func (s *UserHandlerSuite) TestGetUserIncentives() {
	c, rec := s.userContext("USR0033", "/api/v1/users/USR0033/incentives")

	s.NoError(s.handler.GetUserIncentives(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.IncentivesResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.True(resp.CurrentTier.Contains(resp.GreenScore))
	s.Len(resp.Incentives, 5)
	s.NotEmpty(resp.EstimatedMonthlyValue)
}

func (s *UserHandlerSuite) TestGetUserImprovements() {
	c, rec := s.userContext("USR0044", "/api/v1/users/USR0044/improvements")

	s.NoError(s.handler.GetUserImprovements(c))
	s.Equal(http.StatusOK, rec.Code)

	var resp dto.ImprovementsResponse
	s.NoError(json.Unmarshal(rec.Body.Bytes(), &resp))

	s.Equal("USR0044", resp.UserID)
	for _, area := range resp.Improvements {
		s.NotEmpty(area.Category)
		s.NotEmpty(area.Suggestion)
		s.LessOrEqual(len(area.Examples), 2)
		s.Negative(area.Impact)
	}
}
