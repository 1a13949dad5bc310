// Package http provides http transport for the selection endpoints
package http

import (
	stdhttp "net/http"

	"answerlog/internal/modkit/httpkit"
	"answerlog/internal/services/answerlogic/domain"
	svc "answerlog/internal/services/answerlogic/service"
)

// Register mounts the map and selection endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.Get(r, "/map", h.mapAll)
	httpkit.GetParams[domain.UserMapInput](r, "/map/users/{userId}", h.mapByUser)
	httpkit.GetParams[domain.QuestionMapInput](r, "/map/questions/{questionId}", h.mapByQuestion)

	httpkit.GetParams[domain.AgeInput](r, "/users/age/max/{years}", h.youngerThan)
	httpkit.GetParams[domain.AgeInput](r, "/users/age/min/{years}", h.atLeastAge)
	httpkit.GetParams[domain.HeightInput](r, "/users/height/max/{inches}", h.underHeight)
	httpkit.GetParams[domain.HeightInput](r, "/users/height/min/{inches}", h.atLeastHeight)
	httpkit.GetParams[domain.BMIInput](r, "/users/bmi/max/{bmi}", h.underBMI)
	httpkit.GetParams[domain.BMIInput](r, "/users/bmi/min/{bmi}", h.atLeastBMI)

	httpkit.GetParams[domain.ChoicesInput](r, "/users/questions/any/{questionIdAnswers}", h.answerIn)
	httpkit.GetParams[domain.AnswerInput](r, "/users/questions/{questionId}/answers/{answer}", h.answerEquals)
	httpkit.GetParams[domain.MinValueInput](r, "/users/questions/{questionId}/min/{minVal}", h.numericAtLeast)
	httpkit.GetParams[domain.MaxValueInput](r, "/users/questions/{questionId}/max/{maxVal}", h.numericUnder)
}

type handlers struct{ svc svc.Service }

// @Summary Current answers of every user
// @Tags AnswerLogic
// @Produce json
// @Success 200 {object} map[string]map[string]string "userId -> questionId -> answer"
// @Router /answer-logic/map [get]
func (h *handlers) mapAll(r *stdhttp.Request) (any, error) {
	return h.svc.MapAll(r.Context())
}

// @Summary Current answers of one user
// @Tags AnswerLogic
// @Produce json
// @Param userId path int true "user id"
// @Success 200 {object} map[string]string "questionId -> answer"
// @Router /answer-logic/map/users/{userId} [get]
func (h *handlers) mapByUser(r *stdhttp.Request, in domain.UserMapInput) (any, error) {
	return h.svc.MapByUser(r.Context(), in.UserID)
}

// @Summary Current answers to one question grouped by text
// @Tags AnswerLogic
// @Produce json
// @Param questionId path int true "question id"
// @Success 200 {object} map[string][]answer.Record "answer -> records"
// @Router /answer-logic/map/questions/{questionId} [get]
func (h *handlers) mapByQuestion(r *stdhttp.Request, in domain.QuestionMapInput) (any, error) {
	return h.svc.MapByQuestion(r.Context(), in.QuestionID)
}

// @Summary Users strictly younger than years
// @Tags AnswerLogic
// @Produce json
// @Param years path int true "age in whole years"
// @Success 200 {array} int64 "user ids"
// @Failure 422 {object} errors.Wire "malformed birth date"
// @Router /answer-logic/users/age/max/{years} [get]
func (h *handlers) youngerThan(r *stdhttp.Request, in domain.AgeInput) (any, error) {
	return h.svc.YoungerThan(r.Context(), in.Years)
}

// @Summary Users aged years or more
// @Tags AnswerLogic
// @Produce json
// @Param years path int true "age in whole years"
// @Success 200 {array} int64 "user ids"
// @Router /answer-logic/users/age/min/{years} [get]
func (h *handlers) atLeastAge(r *stdhttp.Request, in domain.AgeInput) (any, error) {
	return h.svc.AtLeastAge(r.Context(), in.Years)
}

// @Summary Users strictly shorter than inches
// @Tags AnswerLogic
// @Produce json
// @Param inches path int true "height in inches"
// @Success 200 {array} int64 "user ids"
// @Router /answer-logic/users/height/max/{inches} [get]
func (h *handlers) underHeight(r *stdhttp.Request, in domain.HeightInput) (any, error) {
	return h.svc.UnderHeight(r.Context(), in.Inches)
}

// @Summary Users inches tall or more
// @Tags AnswerLogic
// @Produce json
// @Param inches path int true "height in inches"
// @Success 200 {array} int64 "user ids"
// @Router /answer-logic/users/height/min/{inches} [get]
func (h *handlers) atLeastHeight(r *stdhttp.Request, in domain.HeightInput) (any, error) {
	return h.svc.AtLeastHeight(r.Context(), in.Inches)
}

// @Summary Users with BMI strictly below bmi
// @Tags AnswerLogic
// @Produce json
// @Param bmi path number true "bmi"
// @Success 200 {array} int64 "user ids"
// @Failure 422 {object} errors.Wire "height or weight missing for a user"
// @Router /answer-logic/users/bmi/max/{bmi} [get]
func (h *handlers) underBMI(r *stdhttp.Request, in domain.BMIInput) (any, error) {
	return h.svc.UnderBMI(r.Context(), in.BMI)
}

// @Summary Users with BMI of bmi or more
// @Tags AnswerLogic
// @Produce json
// @Param bmi path number true "bmi"
// @Success 200 {array} int64 "user ids"
// @Failure 422 {object} errors.Wire "height or weight missing for a user"
// @Router /answer-logic/users/bmi/min/{bmi} [get]
func (h *handlers) atLeastBMI(r *stdhttp.Request, in domain.BMIInput) (any, error) {
	return h.svc.AtLeastBMI(r.Context(), in.BMI)
}

// @Summary Users whose current answer equals answer
// @Tags AnswerLogic
// @Produce json
// @Param questionId path int true "question id"
// @Param answer path string true "exact answer text"
// @Param minAnswerDate query string false "inclusive floor, YYYY-MM-DD" default(2000-01-01)
// @Success 200 {array} int64 "user ids"
// @Router /answer-logic/users/questions/{questionId}/answers/{answer} [get]
func (h *handlers) answerEquals(r *stdhttp.Request, in domain.AnswerInput) (any, error) {
	return h.svc.AnswerEquals(r.Context(), in.QuestionID, in.Answer, in.MinAnswerDate)
}

// @Summary Users whose current answer is one of several values
// @Tags AnswerLogic
// @Produce json
// @Param questionIdAnswers path string true "questionId~value~value"
// @Param minAnswerDate query string false "inclusive floor, YYYY-MM-DD" default(2000-01-01)
// @Success 200 {array} int64 "user ids"
// @Router /answer-logic/users/questions/any/{questionIdAnswers} [get]
func (h *handlers) answerIn(r *stdhttp.Request, in domain.ChoicesInput) (any, error) {
	return h.svc.AnswerIn(r.Context(), in.Choices, in.MinAnswerDate)
}

// @Summary Users whose current numeric answer is minVal or more
// @Tags AnswerLogic
// @Produce json
// @Param questionId path int true "question id"
// @Param minVal path number true "inclusive lower bound"
// @Param minAnswerDate query string false "inclusive floor, YYYY-MM-DD" default(2000-01-01)
// @Success 200 {array} int64 "user ids"
// @Failure 422 {object} errors.Wire "non numeric answer"
// @Router /answer-logic/users/questions/{questionId}/min/{minVal} [get]
func (h *handlers) numericAtLeast(r *stdhttp.Request, in domain.MinValueInput) (any, error) {
	return h.svc.NumericAtLeast(r.Context(), in.QuestionID, in.Min, in.MinAnswerDate)
}

// @Summary Users whose current numeric answer is below maxVal
// @Tags AnswerLogic
// @Produce json
// @Param questionId path int true "question id"
// @Param maxVal path number true "exclusive upper bound"
// @Param minAnswerDate query string false "inclusive floor, YYYY-MM-DD" default(2000-01-01)
// @Success 200 {array} int64 "user ids"
// @Failure 422 {object} errors.Wire "non numeric answer"
// @Router /answer-logic/users/questions/{questionId}/max/{maxVal} [get]
func (h *handlers) numericUnder(r *stdhttp.Request, in domain.MaxValueInput) (any, error) {
	return h.svc.NumericUnder(r.Context(), in.QuestionID, in.Max, in.MinAnswerDate)
}
