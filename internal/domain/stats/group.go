package stats

import (
	"sort"

	"github.com/kakomon-drill/backend/internal/domain/answer"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
)

// Group aggregates progress over the questions sharing a category or year.
type Group struct {
	Total    int `json:"total"`
	Answered int `json:"answered"`
	Correct  int `json:"correct"`
}

// Accuracy is the percentage of answered questions answered correctly.
func (g Group) Accuracy() int {
	return Percent(g.Correct, g.Answered)
}

// Progress is the percentage of questions answered at least once.
func (g Group) Progress() int {
	return Percent(g.Answered, g.Total)
}

// ByCategory joins the log against the catalog's category codes.
// Only categories present in the catalog appear in the result.
func ByCategory(log answer.Log, questions []questionbank.Question) map[string]Group {
	return groupBy(log, questions, func(q questionbank.Question) string { return q.Category })
}

// ByYear joins the log against the catalog's year codes.
func ByYear(log answer.Log, questions []questionbank.Question) map[string]Group {
	return groupBy(log, questions, func(q questionbank.Question) string { return q.Year })
}

func groupBy(log answer.Log, questions []questionbank.Question, key func(questionbank.Question) string) map[string]Group {
	groups := make(map[string]Group)
	for _, q := range questions {
		k := key(q)
		g := groups[k]
		g.Total++
		if rec, ok := log[q.ID]; ok {
			g.Answered++
			if rec.IsCorrect {
				g.Correct++
			}
		}
		groups[k] = g
	}
	return groups
}

// Weak point thresholds.
const (
	WeakMinAnswered = 3
	WeakMaxAccuracy = 70
)

// WeakPoint is a category the learner keeps getting wrong.
type WeakPoint struct {
	Category string
	Accuracy int
	Answered int
	Correct  int
}

// WeakPoints lists categories with at least WeakMinAnswered answers and an
// accuracy below WeakMaxAccuracy, weakest first.
func WeakPoints(groups map[string]Group) []WeakPoint {
	var out []WeakPoint
	for cat, g := range groups {
		if g.Answered < WeakMinAnswered {
			continue
		}
		acc := g.Accuracy()
		if acc >= WeakMaxAccuracy {
			continue
		}
		out = append(out, WeakPoint{
			Category: cat,
			Accuracy: acc,
			Answered: g.Answered,
			Correct:  g.Correct,
		})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Accuracy != out[j].Accuracy {
			return out[i].Accuracy < out[j].Accuracy
		}
		return out[i].Category < out[j].Category
	})
	return out
}
