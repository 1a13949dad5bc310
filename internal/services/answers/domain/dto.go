// Package domain holds DTOs and ports for the raw answer log
package domain

// ListInput selects the whole log
type ListInput struct {
	Recent bool `query:"recent" json:"recent" example:"true"`
}

// UserInput selects one user's rows
type UserInput struct {
	UserID int64 `path:"userId" json:"userId" example:"7"`
	Recent bool  `query:"recent" json:"recent" example:"true"`
}

// QuestionInput selects one question's rows
type QuestionInput struct {
	QuestionID int64 `path:"questionId" json:"questionId" example:"2"`
	Recent     bool  `query:"recent" json:"recent" example:"true"`
}
