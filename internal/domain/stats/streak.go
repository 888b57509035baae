package stats

import "github.com/kakomon-drill/backend/internal/domain/answer"

// Cache is the persisted statistics entry. Only CurrentStreak and MaxStreak
// are maintained, by StreakCounter; the rest is kept for layout
// compatibility. Nothing reads it for correctness.
type Cache struct {
	TotalAnswered  int              `json:"totalAnswered"`
	CorrectCount   int              `json:"correctCount"`
	IncorrectCount int              `json:"incorrectCount"`
	CurrentStreak  int              `json:"currentStreak"`
	MaxStreak      int              `json:"maxStreak"`
	CategoryStats  map[string]Group `json:"categoryStats"`
	YearStats      map[string]Group `json:"yearStats"`
}

// NewCache returns the zeroed cache.
func NewCache() Cache {
	return Cache{
		CategoryStats: map[string]Group{},
		YearStats:     map[string]Group{},
	}
}

// StreakCounter updates the cached streak in O(1) per answer.
//
// It is an approximation: a re-answer with the same result is ignored and a
// re-answer with a different result is applied as if it were a fresh
// attempt. With interleaved re-answers across questions the counter can
// disagree with Compute, which replays the log chronologically. Callers that
// need a correct value must use Compute.
type StreakCounter struct {
	cache *Cache
}

// NewStreakCounter updates c in place.
func NewStreakCounter(c *Cache) StreakCounter {
	return StreakCounter{cache: c}
}

// Apply records an attempt. prev is the replaced record, nil on first attempt.
func (s StreakCounter) Apply(prev *answer.Record, isCorrect bool) {
	if prev != nil && prev.IsCorrect == isCorrect {
		return
	}
	if !isCorrect {
		s.cache.CurrentStreak = 0
		return
	}
	s.cache.CurrentStreak++
	if s.cache.CurrentStreak > s.cache.MaxStreak {
		s.cache.MaxStreak = s.cache.CurrentStreak
	}
}
