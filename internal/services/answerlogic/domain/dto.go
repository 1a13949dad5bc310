// Package domain holds DTOs and ports for the selection endpoints
package domain

// UserMapInput selects one user's current answers
type UserMapInput struct {
	UserID int64 `path:"userId" json:"userId" example:"7"`
}

// QuestionMapInput selects one question's current answers
type QuestionMapInput struct {
	QuestionID int64 `path:"questionId" json:"questionId" example:"5"`
}

// AgeInput is an age threshold in whole years
type AgeInput struct {
	Years int `path:"years" json:"years" validate:"gte=0" example:"30"`
}

// HeightInput is a height threshold in inches
type HeightInput struct {
	Inches int `path:"inches" json:"inches" validate:"gte=0" example:"70"`
}

// BMIInput is a BMI threshold
type BMIInput struct {
	BMI float64 `path:"bmi" json:"bmi" validate:"gte=0" example:"25"`
}

// AnswerInput matches one exact answer text
type AnswerInput struct {
	QuestionID    int64  `path:"questionId" json:"questionId" example:"5"`
	Answer        string `path:"answer" json:"answer" validate:"required" example:"Good"`
	MinAnswerDate string `query:"minAnswerDate" json:"minAnswerDate,omitempty" example:"2000-01-01"`
}

// ChoicesInput matches any of several answer texts, encoded as <questionId>~<value>~<value>
type ChoicesInput struct {
	Choices       string `path:"questionIdAnswers" json:"questionIdAnswers" validate:"required" example:"5~Good~Fair"`
	MinAnswerDate string `query:"minAnswerDate" json:"minAnswerDate,omitempty" example:"2000-01-01"`
}

// MinValueInput is an inclusive numeric lower bound
type MinValueInput struct {
	QuestionID    int64   `path:"questionId" json:"questionId" example:"9"`
	Min           float64 `path:"minVal" json:"minVal" example:"3"`
	MinAnswerDate string  `query:"minAnswerDate" json:"minAnswerDate,omitempty" example:"2000-01-01"`
}

// MaxValueInput is an exclusive numeric upper bound
type MaxValueInput struct {
	QuestionID    int64   `path:"questionId" json:"questionId" example:"9"`
	Max           float64 `path:"maxVal" json:"maxVal" example:"10"`
	MinAnswerDate string  `query:"minAnswerDate" json:"minAnswerDate,omitempty" example:"2000-01-01"`
}
