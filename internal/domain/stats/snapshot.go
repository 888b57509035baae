// Package stats derives learner progress from the answer log.
//
// Everything here is a pure function of its inputs. The snapshot computed by
// Compute is authoritative; the running StreakCounter kept alongside the log
// is a cheap hint that may drift from it (see StreakCounter).
package stats

import (
	"math"
	"sort"

	"github.com/kakomon-drill/backend/internal/domain/answer"
)

// Snapshot is a point-in-time view of overall progress.
type Snapshot struct {
	TotalAnswered  int `json:"totalAnswered"`
	CorrectCount   int `json:"correctCount"`
	IncorrectCount int `json:"incorrectCount"`
	Accuracy       int `json:"accuracy"` // percent, 0-100
	CurrentStreak  int `json:"currentStreak"`
	MaxStreak      int `json:"maxStreak"`
}

// Compute recomputes the snapshot from scratch.
func Compute(log answer.Log) Snapshot {
	total := len(log)
	correct := 0
	for _, rec := range log {
		if rec.IsCorrect {
			correct++
		}
	}

	ordered := Chronological(log)

	current := 0
	for i := len(ordered) - 1; i >= 0; i-- {
		if !ordered[i].IsCorrect {
			break
		}
		current++
	}

	best, run := 0, 0
	for _, e := range ordered {
		if e.IsCorrect {
			run++
			best = max(best, run)
		} else {
			run = 0
		}
	}

	return Snapshot{
		TotalAnswered:  total,
		CorrectCount:   correct,
		IncorrectCount: total - correct,
		Accuracy:       Percent(correct, total),
		CurrentStreak:  current,
		MaxStreak:      best,
	}
}

// Entry is a log record paired with its question ID.
type Entry struct {
	QuestionID string
	answer.Record
}

// Chronological returns the log ordered by timestamp, oldest first. Records
// sharing a timestamp are ordered by question ID so the result is the same
// on every call.
func Chronological(log answer.Log) []Entry {
	entries := make([]Entry, 0, len(log))
	for id, rec := range log {
		entries = append(entries, Entry{QuestionID: id, Record: rec})
	}
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Timestamp != entries[j].Timestamp {
			return entries[i].Timestamp < entries[j].Timestamp
		}
		return entries[i].QuestionID < entries[j].QuestionID
	})
	return entries
}

// Percent returns round(100*part/whole), or 0 when whole is zero.
// Halves round away from zero.
func Percent(part, whole int) int {
	if whole <= 0 {
		return 0
	}
	return int(math.Round(float64(part) * 100 / float64(whole)))
}
