package dto

// ClassifyRequest is the payload for classifying a single transaction description
type ClassifyRequest struct {
	Description string   `json:"description" validate:"required,min=2,max=500"`
	Amount      *float64 `json:"amount,omitempty" validate:"omitempty,positive_amount"`
}

// ClassifyBatchRequest classifies several descriptions in one call
type ClassifyBatchRequest struct {
	Descriptions []string `json:"descriptions" validate:"required,min=1,max=100,dive,required,min=2,max=500"`
}

// UserListParams are the query parameters accepted by the user listing endpoint
type UserListParams struct {
	Query    string `query:"q"`
	MinScore int    `query:"min_score" validate:"omitempty,green_score"`
	MaxScore int    `query:"max_score" validate:"omitempty,green_score"`
}
