package questionbank

import (
	"errors"
	"strings"
)

// Question is one multiple-choice past-exam question from the catalog.
// The catalog is owned externally; this package never mutates it.
type Question struct {
	ID            string   `json:"id"`
	Number        int      `json:"number"`
	Year          string   `json:"year"`     // exam year code, e.g. "r07"
	Category      string   `json:"category"` // subject area code, e.g. "law"
	Title         string   `json:"title"`
	Text          string   `json:"text"`
	Choices       []string `json:"choices"`
	CorrectAnswer int      `json:"correctAnswer"` // 1-based
	Explanation   string   `json:"explanation,omitempty"`
	Image         string   `json:"image,omitempty"`
}

var ErrChoiceOutOfRange = errors.New("choice out of range")

// Grade reports whether choice is the correct answer.
func (q *Question) Grade(choice int) (bool, error) {
	if choice < 1 || choice > len(q.Choices) {
		return false, ErrChoiceOutOfRange
	}
	return choice == q.CorrectAnswer, nil
}

// Find returns the question with the given ID.
func Find(questions []Question, id string) (*Question, bool) {
	for i := range questions {
		if questions[i].ID == id {
			return &questions[i], true
		}
	}
	return nil, false
}

// Status filters questions by the learner's answer state.
type Status string

const (
	StatusAll        Status = "all"
	StatusUnanswered Status = "unanswered"
	StatusCorrect    Status = "correct"
	StatusIncorrect  Status = "incorrect"
)

// Filter narrows the question list. Empty or "all" fields match everything.
type Filter struct {
	Year     string
	Category string
	Status   Status
	Search   string
}

// AnswerLookup reports the learner's result for a question:
// answered is false when it has never been attempted.
type AnswerLookup func(questionID string) (correct bool, answered bool)

// Apply returns the questions matching f, preserving catalog order.
func (f Filter) Apply(questions []Question, lookup AnswerLookup) []Question {
	search := strings.ToLower(strings.TrimSpace(f.Search))

	out := make([]Question, 0, len(questions))
	for _, q := range questions {
		if f.Year != "" && f.Year != "all" && q.Year != f.Year {
			continue
		}
		if f.Category != "" && f.Category != "all" && q.Category != f.Category {
			continue
		}
		if !f.matchStatus(q.ID, lookup) {
			continue
		}
		if search != "" {
			haystack := strings.ToLower(q.Title) + " " + strings.ToLower(q.Text)
			if !strings.Contains(haystack, search) {
				continue
			}
		}
		out = append(out, q)
	}
	return out
}

func (f Filter) matchStatus(questionID string, lookup AnswerLookup) bool {
	if f.Status == "" || f.Status == StatusAll || lookup == nil {
		return true
	}
	correct, answered := lookup(questionID)
	switch f.Status {
	case StatusUnanswered:
		return !answered
	case StatusCorrect:
		return answered && correct
	case StatusIncorrect:
		return answered && !correct
	}
	return true
}
