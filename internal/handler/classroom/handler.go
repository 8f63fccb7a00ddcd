package classroom

import (
	"errors"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"

	classroomService "github.com/kino-avatar/kino/internal/service/classroom"
	"github.com/kino-avatar/kino/pkg/utils"
)

// Handler 课堂问答的HTTP处理器
type Handler struct {
	svc *classroomService.Service
}

// New 创建课堂处理器
func New(svc *classroomService.Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes 注册问答相关的路由
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/questions", h.handleAsk)
	r.Get("/questions", h.handleListQuestions)
	r.Get("/answers/{answerID}", h.handleGetAnswer)
}

func (h *Handler) handleAsk(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		UserID   string `json:"userId"`
		Question string `json:"question"`
	}
	if err := utils.DecodeJSON(w, r, &payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	receipt, err := h.svc.Ask(r.Context(), payload.UserID, payload.Question)
	if err != nil {
		if errors.Is(err, classroomService.ErrQuestionRequired) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		log.Printf("[classroom] error processing question: %v", err)
		utils.RespondError(w, http.StatusInternalServerError, "Failed to process question")
		return
	}

	utils.RespondJSON(w, http.StatusOK, receipt)
}

func (h *Handler) handleListQuestions(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.svc.List(r.Context()))
}

func (h *Handler) handleGetAnswer(w http.ResponseWriter, r *http.Request) {
	answer, err := h.svc.Answer(r.Context(), chi.URLParam(r, "answerID"))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "Answer not found")
		return
	}
	utils.RespondJSON(w, http.StatusOK, answer)
}
