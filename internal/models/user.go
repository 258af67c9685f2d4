package models

import "github.com/shopspring/decimal"

// User is a demo account with a deterministically generated profile and
// transaction history.
type User struct {
	ID          string `json:"id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	FullName    string `json:"full_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	AvatarColor string `json:"avatar_color"`
	JoinedDate  Date   `json:"joined_date"`
}

// UserSummary is the list-view projection of a user with derived score data.
type UserSummary struct {
	User
	GreenScore       int    `json:"green_score"`
	ScoreStatus      string `json:"score_status"`
	TransactionCount int    `json:"total_transactions"`
	NetImpact        int    `json:"net_impact"`
}

// UserProfile is the detail view: summary plus tier and spend totals.
type UserProfile struct {
	UserSummary
	Tier       Tier            `json:"tier"`
	TotalSpent decimal.Decimal `json:"total_spent"`
}
