// Package http provides http transport for the raw answer log
package http

import (
	stdhttp "net/http"

	"answerlog/internal/modkit/httpkit"
	"answerlog/internal/services/answers/domain"
	svc "answerlog/internal/services/answers/service"
)

// Register mounts answer log endpoints on the given router
func Register(r httpkit.Router, s svc.Service) {
	h := &handlers{svc: s}

	httpkit.GetParams[domain.ListInput](r, "/", h.all)
	httpkit.GetParams[domain.UserInput](r, "/users/{userId}", h.byUser)
	httpkit.GetParams[domain.QuestionInput](r, "/questions/{questionId}", h.byQuestion)
}

type handlers struct{ svc svc.Service }

// swagger:route GET /answers Answers answersAll
// @Summary All answer rows
// @Tags Answers
// @Produce json
// @Param recent query bool false "latest row per user and question only"
// @Success 200 {array} answer.Record "ok"
// @Router /answers [get]
func (h *handlers) all(r *stdhttp.Request, in domain.ListInput) (any, error) {
	return h.svc.All(r.Context(), in.Recent)
}

// swagger:route GET /answers/users/{userId} Answers answersByUser
// @Summary Answer rows for one user
// @Tags Answers
// @Produce json
// @Param userId path int true "user id"
// @Param recent query bool false "latest row per question only"
// @Success 200 {array} answer.Record "ok"
// @Router /answers/users/{userId} [get]
func (h *handlers) byUser(r *stdhttp.Request, in domain.UserInput) (any, error) {
	return h.svc.ByUser(r.Context(), in.UserID, in.Recent)
}

// swagger:route GET /answers/questions/{questionId} Answers answersByQuestion
// @Summary Answer rows for one question
// @Tags Answers
// @Produce json
// @Param questionId path int true "question id"
// @Param recent query bool false "latest row per user only"
// @Success 200 {array} answer.Record "ok"
// @Router /answers/questions/{questionId} [get]
func (h *handlers) byQuestion(r *stdhttp.Request, in domain.QuestionInput) (any, error) {
	return h.svc.ByQuestion(r.Context(), in.QuestionID, in.Recent)
}
