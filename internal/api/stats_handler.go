package api

import (
	"net/http"

	"github.com/kakomon-drill/backend/internal/domain/category"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
	"github.com/kakomon-drill/backend/internal/domain/stats"
)

// ── Request / Response types ────────────────────────────────────────────────

type RunningStreak struct {
	Current int `json:"current" example:"2"`
	Max     int `json:"max" example:"5"`
}

type StatsResponse struct {
	stats.Snapshot
	RunningStreak RunningStreak `json:"running_streak"`
}

type GroupStats struct {
	Code     string `json:"code" example:"law"`
	Label    string `json:"label" example:"法規"`
	Total    int    `json:"total" example:"40"`
	Answered int    `json:"answered" example:"12"`
	Correct  int    `json:"correct" example:"9"`
	Accuracy int    `json:"accuracy" example:"75"`
	Progress int    `json:"progress" example:"30"`
}

type WeakPointResponse struct {
	Category string `json:"category" example:"law"`
	Label    string `json:"label" example:"法規"`
	Accuracy int    `json:"accuracy" example:"33"`
	Answered int    `json:"answered" example:"3"`
	Correct  int    `json:"correct" example:"1"`
}

type ChartSeries struct {
	Label string `json:"label" example:"正答率 (%)"`
	Data  []int  `json:"data"`
}

type Chart struct {
	Labels []string      `json:"labels"`
	Series []ChartSeries `json:"series"`
}

type ChartResponse struct {
	Categories Chart `json:"categories"`
	Years      Chart `json:"years"`
}

func newGroupStats(code, label string, g stats.Group) GroupStats {
	return GroupStats{
		Code:     code,
		Label:    label,
		Total:    g.Total,
		Answered: g.Answered,
		Correct:  g.Correct,
		Accuracy: g.Accuracy(),
		Progress: g.Progress(),
	}
}

// categoryOrder lists category codes in the order they first appear in the
// catalog.
func categoryOrder(questions []questionbank.Question) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, q := range questions {
		if !seen[q.Category] {
			seen[q.Category] = true
			codes = append(codes, q.Category)
		}
	}
	return codes
}

func (h *Handler) categoryStats(questions []questionbank.Question) []GroupStats {
	groups := h.tracker.CategoryStatistics(questions)
	out := make([]GroupStats, 0, len(groups))
	for _, code := range categoryOrder(questions) {
		out = append(out, newGroupStats(code, category.Name(code), groups[code]))
	}
	return out
}

func (h *Handler) yearStats(questions []questionbank.Question) []GroupStats {
	groups := h.tracker.YearStatistics(questions)
	codes := make([]string, 0, len(groups))
	for code := range groups {
		codes = append(codes, code)
	}
	out := make([]GroupStats, 0, len(groups))
	for _, code := range questionbank.SortYears(codes) {
		out = append(out, newGroupStats(code, questionbank.YearName(code), groups[code]))
	}
	return out
}

// ── Handlers ────────────────────────────────────────────────────────────────

// getStats returns the overall progress snapshot.
// @Summary      Overall statistics
// @Description  Totals, accuracy and streaks recomputed from the answer log. running_streak is the incrementally kept counter and may differ from the recomputed streaks.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  StatsResponse
// @Router       /api/stats [get]
func (h *Handler) getStats(w http.ResponseWriter, r *http.Request) {
	snap, current, best := h.tracker.Overview()
	respondJSON(w, http.StatusOK, StatsResponse{
		Snapshot:      snap,
		RunningStreak: RunningStreak{Current: current, Max: best},
	})
}

// getCategoryStats returns progress per category.
// @Summary      Statistics by category
// @Description  One entry per category present in the catalog, in catalog order.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}   GroupStats
// @Failure      503  {object}  ErrorResponse
// @Router       /api/stats/categories [get]
func (h *Handler) getCategoryStats(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.categoryStats(questions))
}

// getYearStats returns progress per exam year.
// @Summary      Statistics by year
// @Description  Known years oldest first, then any other year codes in lexical order.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}   GroupStats
// @Failure      503  {object}  ErrorResponse
// @Router       /api/stats/years [get]
func (h *Handler) getYearStats(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}
	respondJSON(w, http.StatusOK, h.yearStats(questions))
}

// getWeakPoints lists categories that need more practice.
// @Summary      Weak points
// @Description  Categories with at least 3 answers and accuracy below 70%, weakest first.
// @Tags         Stats
// @Produce      json
// @Success      200  {array}   WeakPointResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /api/stats/weak-points [get]
func (h *Handler) getWeakPoints(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}

	weak := stats.WeakPoints(h.tracker.CategoryStatistics(questions))
	out := make([]WeakPointResponse, len(weak))
	for i, wp := range weak {
		out[i] = WeakPointResponse{
			Category: wp.Category,
			Label:    category.Name(wp.Category),
			Accuracy: wp.Accuracy,
			Answered: wp.Answered,
			Correct:  wp.Correct,
		}
	}
	respondJSON(w, http.StatusOK, out)
}

// getChart returns chart-ready series.
// @Summary      Chart data
// @Description  Category accuracy and progress percentages, and per-year totals for the known exam years.
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  ChartResponse
// @Failure      503  {object}  ErrorResponse
// @Router       /api/stats/chart [get]
func (h *Handler) getChart(w http.ResponseWriter, r *http.Request) {
	questions, err := h.catalog.Questions(r.Context())
	if h.handleCatalogError(w, err) {
		return
	}

	cats := Chart{
		Labels: []string{},
		Series: []ChartSeries{
			{Label: "正答率 (%)", Data: []int{}},
			{Label: "学習進捗 (%)", Data: []int{}},
		},
	}
	for _, g := range h.categoryStats(questions) {
		cats.Labels = append(cats.Labels, g.Label)
		cats.Series[0].Data = append(cats.Series[0].Data, g.Accuracy)
		cats.Series[1].Data = append(cats.Series[1].Data, g.Progress)
	}

	years := Chart{
		Labels: []string{},
		Series: []ChartSeries{
			{Label: "総問題数", Data: []int{}},
			{Label: "解答済み", Data: []int{}},
			{Label: "正解数", Data: []int{}},
		},
	}
	byYear := h.tracker.YearStatistics(questions)
	for _, code := range questionbank.YearOrder {
		g, ok := byYear[code]
		if !ok {
			continue
		}
		years.Labels = append(years.Labels, questionbank.YearName(code))
		years.Series[0].Data = append(years.Series[0].Data, g.Total)
		years.Series[1].Data = append(years.Series[1].Data, g.Answered)
		years.Series[2].Data = append(years.Series[2].Data, g.Correct)
	}

	respondJSON(w, http.StatusOK, ChartResponse{Categories: cats, Years: years})
}
