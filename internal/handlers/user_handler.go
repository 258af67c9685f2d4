package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"greenscore-api/internal/dto"
	"greenscore-api/internal/errors"
	"greenscore-api/internal/models"
	"greenscore-api/internal/repositories"
	"greenscore-api/internal/services"
)

// UserHandler handles demo user requests
type UserHandler struct {
	userRepo         repositories.UserRepositoryInterface
	scoringService   services.ScoringServiceInterface
	insightService   services.InsightServiceInterface
	incentiveService services.IncentiveServiceInterface
	metrics          services.MetricsRecorderInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(
	userRepo repositories.UserRepositoryInterface,
	scoringService services.ScoringServiceInterface,
	insightService services.InsightServiceInterface,
	incentiveService services.IncentiveServiceInterface,
	metrics services.MetricsRecorderInterface,
) *UserHandler {
	return &UserHandler{
		userRepo:         userRepo,
		scoringService:   scoringService,
		insightService:   insightService,
		incentiveService: incentiveService,
		metrics:          metrics,
	}
}

// ListUsers returns demo users, searchable and filterable by score range
// @Summary List users
// @Description Return demo users with their scores, optionally searched by name/email/ID and filtered by score range
// @Tags Users
// @Produce json
// @Param q query string false "Search by name, email or user ID"
// @Param min_score query int false "Minimum GreenScore" default(0)
// @Param max_score query int false "Maximum GreenScore" default(100)
// @Success 200 {object} dto.UserListResponse "Users with count"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_004 - Score bounds out of range"
// @Router /users [get]
func (h *UserHandler) ListUsers(c echo.Context) error {
	params := dto.UserListParams{MinScore: models.MinScore, MaxScore: models.MaxScore}
	if err := c.Bind(&params); err != nil {
		return SendError(c, errors.ValidationInvalidFormat,
			errors.WithDetails("Query parameters could not be parsed"))
	}
	if params.MinScore < models.MinScore || params.MaxScore > models.MaxScore || params.MinScore > params.MaxScore {
		return SendError(c, errors.ValidationOutOfRange,
			errors.WithDetails("Score range must lie within 0-100 with min_score <= max_score"))
	}

	users := h.userRepo.Search(params.Query)

	summaries := make([]models.UserSummary, 0, len(users))
	for _, user := range users {
		summary, err := h.summarize(user)
		if err != nil {
			return SendSystemError(c, err)
		}
		if summary.GreenScore < params.MinScore || summary.GreenScore > params.MaxScore {
			continue
		}
		summaries = append(summaries, summary)
	}

	return c.JSON(http.StatusOK, dto.UserListResponse{
		Count: len(summaries),
		Users: summaries,
	})
}

// GetUser returns one user's profile with score and tier
// @Summary Get user by ID
// @Description Return a demo user's profile with GreenScore, tier and spending total
// @Tags Users
// @Produce json
// @Param id path string true "User ID, e.g. USR0042"
// @Success 200 {object} models.UserProfile "User profile"
// @Failure 400 {object} errors.ErrorResponse "USER_002 - Invalid user ID format"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	summary, err := h.summarize(*user)
	if err != nil {
		return SendSystemError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	totalSpent := decimal.Zero
	for _, txn := range transactions {
		totalSpent = totalSpent.Add(txn.Amount)
	}

	return c.JSON(http.StatusOK, models.UserProfile{
		UserSummary: summary,
		Tier:        h.incentiveService.TierForScore(summary.GreenScore),
		TotalSpent:  totalSpent,
	})
}

// GetUserTransactions returns a user's generated transaction history
// @Summary Get user transactions
// @Description Return a user's deterministic generated transaction history
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.TransactionListResponse "Transactions with count"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id}/transactions [get]
func (h *UserHandler) GetUserTransactions(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.TransactionListResponse{
		Count:        len(transactions),
		Transactions: transactions,
	})
}

// GetUserScore returns a user's GreenScore with breakdown and ESG components
// @Summary Get user score
// @Description Compute the user's GreenScore over their generated history
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.UserScoreResponse "Score with breakdown"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id}/score [get]
func (h *UserHandler) GetUserScore(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	report := h.scoringService.CalculateScore(transactions)
	esg := h.scoringService.ESGBreakdown(transactions)

	return c.JSON(http.StatusOK, dto.UserScoreResponse{
		UserID: user.ID,
		ScoreResponse: dto.ScoreResponse{
			Score:             report.Score,
			Status:            report.Status,
			Explanation:       report.Explanation,
			Breakdown:         report.Breakdown,
			ESG:               *esg,
			TotalTransactions: report.TotalTransactions,
			NetImpact:         report.NetImpact,
		},
	})
}

// GetUserInsights returns the insight bundle for a user's history
// @Summary Get user insights
// @Description Return summary, highlights and recommendations for the user's history
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.InsightBundle "Insight bundle"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id}/insights [get]
func (h *UserHandler) GetUserInsights(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	report := h.scoringService.CalculateScore(transactions)
	insights := h.insightService.GenerateInsights(transactions, report.Score)

	return c.JSON(http.StatusOK, insights)
}

// GetUserIncentives returns the incentives a user's score unlocks
// @Summary Get user incentives
// @Description Return the incentive offer for the user's current GreenScore
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.IncentivesResponse "Incentive offer"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id}/incentives [get]
func (h *UserHandler) GetUserIncentives(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	report := h.scoringService.CalculateScore(transactions)
	offer, err := h.incentiveService.IncentivesForScore(report.Score)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, dto.IncentivesResponse{
		GreenScore:     report.Score,
		IncentiveOffer: *offer,
	})
}

// GetUserImprovements returns improvement suggestions for a user's negative spending
// @Summary Get user improvement areas
// @Description Return per-category improvement suggestions for the user's negative-impact transactions
// @Tags Users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} dto.ImprovementsResponse "Improvement areas"
// @Failure 404 {object} errors.ErrorResponse "USER_001 - User not found"
// @Router /users/{id}/improvements [get]
func (h *UserHandler) GetUserImprovements(c echo.Context) error {
	user, err := h.lookupUser(c)
	if err != nil {
		return h.sendUserError(c, err)
	}

	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return SendSystemError(c, err)
	}

	improvements := h.insightService.ImprovementAreas(transactions)
	if improvements == nil {
		improvements = []models.ImprovementArea{}
	}

	return c.JSON(http.StatusOK, dto.ImprovementsResponse{
		UserID:       user.ID,
		Improvements: improvements,
	})
}

// lookupUser resolves the path user ID and records the lookup outcome
func (h *UserHandler) lookupUser(c echo.Context) (*models.User, error) {
	user, err := h.userRepo.GetByID(c.Param("id"))
	if err != nil {
		h.metrics.IncrementCounter("user_lookup", map[string]string{"status": "miss"})
		return nil, err
	}
	h.metrics.IncrementCounter("user_lookup", map[string]string{"status": "hit"})
	return user, nil
}

// sendUserError maps repository lookup errors onto the error envelope
func (h *UserHandler) sendUserError(c echo.Context, err error) error {
	switch err {
	case repositories.ErrInvalidUserID:
		return SendError(c, errors.UserInvalidID)
	case repositories.ErrUserNotFound:
		return SendError(c, errors.UserNotFound)
	default:
		return SendSystemError(c, err)
	}
}

// summarize attaches score data to a user profile
func (h *UserHandler) summarize(user models.User) (models.UserSummary, error) {
	transactions, err := h.userRepo.GetTransactions(user.ID)
	if err != nil {
		return models.UserSummary{}, err
	}

	report := h.scoringService.CalculateScore(transactions)

	netImpact := 0
	for _, txn := range transactions {
		netImpact += txn.EcoImpact
	}

	return models.UserSummary{
		User:             user,
		GreenScore:       report.Score,
		ScoreStatus:      report.Status,
		TransactionCount: len(transactions),
		NetImpact:        netImpact,
	}, nil
}
