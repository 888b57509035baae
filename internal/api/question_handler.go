package api

import (
	"net/http"

	"github.com/kakomon-drill/backend/internal/catalog"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
)

// ── Request / Response types ────────────────────────────────────────────────

type FilteredQuestion struct {
	questionbank.Question
	Status string `json:"status" example:"unanswered"` // unanswered, correct or incorrect
}

type FilterQuestionsResponse struct {
	Total     int                `json:"total" example:"250"`
	Displayed int                `json:"displayed" example:"50"`
	Questions []FilteredQuestion `json:"questions"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// listQuestions returns the whole catalog.
// @Summary      List questions
// @Description  Returns every question in catalog order, in the catalog's own JSON shape.
// @Tags         Questions
// @Produce      json
// @Success      200  {array}   questionbank.Question
// @Failure      503  {object}  ErrorResponse
// @Router       /api/questions [get]
func (h *Handler) listQuestions(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}
	if questions == nil {
		questions = []questionbank.Question{}
	}
	respondJSON(w, http.StatusOK, questions)
}

// getQuestion returns a single question.
// @Summary      Get a question
// @Tags         Questions
// @Produce      json
// @Param        questionID  path      string  true  "Question ID"
// @Success      200         {object}  questionbank.Question
// @Failure      404         {object}  ErrorResponse
// @Failure      503         {object}  ErrorResponse
// @Router       /api/questions/{questionID} [get]
func (h *Handler) getQuestion(w http.ResponseWriter, r *http.Request) {
	q, err := catalog.Question(r.Context(), h.catalog, r.PathValue("questionID"))
	if h.handleCatalogError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, q)
}

// filterQuestions narrows the catalog by year, category, answer status and text.
// @Summary      Filter questions
// @Description  Every parameter is optional; "all" matches everything. Search is case-insensitive over title and text.
// @Tags         Questions
// @Produce      json
// @Param        year      query     string  false  "Exam year code, e.g. r07"
// @Param        category  query     string  false  "Category code, e.g. law"
// @Param        status    query     string  false  "all, unanswered, correct or incorrect"
// @Param        q         query     string  false  "Search text"
// @Success      200       {object}  FilterQuestionsResponse
// @Failure      400       {object}  ErrorResponse
// @Failure      503       {object}  ErrorResponse
// @Router       /api/questions/filter [get]
func (h *Handler) filterQuestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := questionbank.Filter{
		Year:     query.Get("year"),
		Category: query.Get("category"),
		Status:   questionbank.Status(query.Get("status")),
		Search:   query.Get("q"),
	}
	switch filter.Status {
	case "", questionbank.StatusAll, questionbank.StatusUnanswered, questionbank.StatusCorrect, questionbank.StatusIncorrect:
	default:
		respondError(w, http.StatusBadRequest, "status must be one of all, unanswered, correct, incorrect")
		return
	}

	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}

	answers := h.tracker.Answers()
	lookup := func(id string) (bool, bool) {
		rec, ok := answers.Get(id)
		return rec.IsCorrect, ok
	}

	matched := filter.Apply(questions, lookup)
	out := make([]FilteredQuestion, len(matched))
	for i, q := range matched {
		status := "unanswered"
		if correct, answered := lookup(q.ID); answered {
			status = "incorrect"
			if correct {
				status = "correct"
			}
		}
		out[i] = FilteredQuestion{Question: q, Status: status}
	}

	respondJSON(w, http.StatusOK, FilterQuestionsResponse{
		Total:     len(questions),
		Displayed: len(out),
		Questions: out,
	})
}
