// internal/api/router.go
package api

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"
)

func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	mux.HandleFunc("GET /api/health", h.health)

	// Questions
	mux.HandleFunc("GET /api/questions", h.listQuestions)
	mux.HandleFunc("GET /api/questions/filter", h.filterQuestions)
	mux.HandleFunc("GET /api/questions/{questionID}", h.getQuestion)

	// Progress
	mux.HandleFunc("POST /api/answers", h.submitAnswer)
	mux.HandleFunc("GET /api/answers/{questionID}", h.getAnswerStatus)
	mux.HandleFunc("DELETE /api/progress", h.resetProgress)

	// Stats
	mux.HandleFunc("GET /api/stats", h.getStats)
	mux.HandleFunc("GET /api/stats/categories", h.getCategoryStats)
	mux.HandleFunc("GET /api/stats/years", h.getYearStats)
	mux.HandleFunc("GET /api/stats/weak-points", h.getWeakPoints)
	mux.HandleFunc("GET /api/stats/chart", h.getChart)

	// Operations
	mux.Handle("GET /metrics", h.metrics.Handler())
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)
}
