package api

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/kakomon-drill/backend/internal/catalog"
	"github.com/kakomon-drill/backend/internal/domain/answer"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
	"github.com/kakomon-drill/backend/internal/service"
)

// ── Request / Response types ────────────────────────────────────────────────

type SubmitAnswerRequest struct {
	QuestionID string `json:"question_id" example:"r07-01"`
	Choice     int    `json:"choice" example:"3"`
}

func (r *SubmitAnswerRequest) Validate() error {
	if r.QuestionID == "" {
		return errors.New("question_id is required")
	}
	if r.Choice < 1 {
		return errors.New("choice must be a 1-based option number")
	}
	return nil
}

type SubmitAnswerResponse struct {
	QuestionID    string `json:"question_id" example:"r07-01"`
	Choice        int    `json:"choice" example:"3"`
	IsCorrect     bool   `json:"is_correct" example:"true"`
	CorrectAnswer int    `json:"correct_answer" example:"3"`
	Explanation   string `json:"explanation,omitempty"`
	AnsweredAt    string `json:"answered_at" example:"2026-10-15T09:30:00Z"`
}

type AnswerStatusResponse struct {
	QuestionID string `json:"question_id" example:"r07-01"`
	Answered   bool   `json:"answered" example:"true"`
	Choice     *int   `json:"choice,omitempty" example:"3"`
	IsCorrect  *bool  `json:"is_correct,omitempty" example:"true"`
	AnsweredAt string `json:"answered_at,omitempty" example:"2026-10-15T09:30:00Z"`
}

type ResetDeclinedResponse struct {
	Error  string `json:"error" example:"confirmation required"`
	Prompt string `json:"prompt"`
}

func answeredAt(rec answer.Record) string {
	return time.UnixMilli(rec.Timestamp).UTC().Format(time.RFC3339)
}

// ── Handlers ────────────────────────────────────────────────────────────────

// submitAnswer grades and records the learner's choice.
// @Summary      Submit an answer
// @Description  Grades the 1-based choice against the catalog and records it, replacing any earlier attempt at the same question.
// @Tags         Progress
// @Accept       json
// @Produce      json
// @Param        body  body      SubmitAnswerRequest  true  "Answer"
// @Success      201   {object}  SubmitAnswerResponse
// @Failure      400   {object}  ErrorResponse
// @Failure      404   {object}  ErrorResponse
// @Failure      500   {object}  ErrorResponse
// @Failure      503   {object}  ErrorResponse
// @Router       /api/answers [post]
func (h *Handler) submitAnswer(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var req SubmitAnswerRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	q, err := catalog.Question(ctx, h.catalog, req.QuestionID)
	if h.handleCatalogError(w, err) {
		return
	}

	rec, err := h.tracker.Submit(ctx, q, req.Choice)
	if errors.Is(err, questionbank.ErrChoiceOutOfRange) {
		respondError(w, http.StatusBadRequest, "choice must be between 1 and "+strconv.Itoa(len(q.Choices)))
		return
	}
	if err != nil {
		h.metrics.RecordStoreError("save")
		h.logger.Error("failed to record answer", "question_id", q.ID, "error", err)
		respondError(w, http.StatusInternalServerError, "failed to save answer")
		return
	}
	h.metrics.RecordAnswer(rec.IsCorrect)

	respondJSON(w, http.StatusCreated, SubmitAnswerResponse{
		QuestionID:    q.ID,
		Choice:        rec.Choice,
		IsCorrect:     rec.IsCorrect,
		CorrectAnswer: q.CorrectAnswer,
		Explanation:   q.Explanation,
		AnsweredAt:    answeredAt(rec),
	})
}

// getAnswerStatus returns the latest attempt at a question.
// @Summary      Get answer status
// @Description  Returns answered=false for questions that were never attempted.
// @Tags         Progress
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  AnswerStatusResponse
// @Router       /api/answers/{questionID} [get]
func (h *Handler) getAnswerStatus(w http.ResponseWriter, r *http.Request) {
	questionID := r.PathValue("questionID")

	resp := AnswerStatusResponse{QuestionID: questionID}
	if rec, ok := h.tracker.AnswerStatus(questionID); ok {
		resp.Answered = true
		resp.Choice = &rec.Choice
		resp.IsCorrect = &rec.IsCorrect
		resp.AnsweredAt = answeredAt(rec)
	}

	respondJSON(w, http.StatusOK, resp)
}

// resetProgress deletes all learning history.
// @Summary      Reset all progress
// @Description  Irreversible. Requires confirm=true; without it nothing changes and 409 is returned with the prompt to show. On success the client should reload every view.
// @Tags         Progress
// @Produce      json
// @Param        confirm  query     bool  false  "Set to true to confirm"
// @Success      205
// @Failure      409      {object}  ResetDeclinedResponse
// @Failure      500      {object}  ErrorResponse
// @Router       /api/progress [delete]
func (h *Handler) resetProgress(w http.ResponseWriter, r *http.Request) {
	confirmed, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	reset, err := h.tracker.ResetAll(r.Context(), func(string) bool { return confirmed })
	if err != nil {
		h.metrics.RecordStoreError("clear")
		h.logger.Error("failed to reset progress", "error", err)
		respondError(w, http.StatusInternalServerError, "failed to reset progress")
		return
	}
	h.metrics.RecordReset(reset)

	if !reset {
		respondJSON(w, http.StatusConflict, ResetDeclinedResponse{
			Error:  "confirmation required",
			Prompt: service.ResetPrompt,
		})
		return
	}

	w.WriteHeader(http.StatusResetContent)
}
