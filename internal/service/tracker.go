// internal/service/tracker.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/kakomon-drill/backend/internal/domain/answer"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
	"github.com/kakomon-drill/backend/internal/domain/stats"
)

// ProgressStore is the persistence the Tracker needs.
type ProgressStore interface {
	Load(ctx context.Context) (answer.Log, stats.Cache, error)
	Save(ctx context.Context, log answer.Log, cache stats.Cache) error
	Clear(ctx context.Context) error
}

// ConfirmFunc asks the learner a yes/no question and reports whether to go on.
type ConfirmFunc func(prompt string) bool

// ResetPrompt is shown before all progress is deleted.
const ResetPrompt = "すべての学習履歴を削除してもよろしいですか?\nこの操作は取り消せません。"

// Tracker owns the learner's answer log. It is created once at startup and
// handed to every caller that reads or records progress.
//
// Operations are serialised: each RecordAnswer is applied and persisted
// before the next one starts.
type Tracker struct {
	store  ProgressStore
	logger *slog.Logger
	now    func() time.Time

	onReset []func()

	mu    sync.RWMutex
	log   answer.Log
	cache stats.Cache
}

// Option configures a Tracker.
type Option func(*Tracker)

// WithClock overrides the time source used to stamp answers.
func WithClock(now func() time.Time) Option {
	return func(t *Tracker) {
		if now != nil {
			t.now = now
		}
	}
}

// WithResetHook registers fn to run after a confirmed reset, e.g. to make
// views re-render from the now empty state.
func WithResetHook(fn func()) Option {
	return func(t *Tracker) {
		if fn != nil {
			t.onReset = append(t.onReset, fn)
		}
	}
}

// NewTracker loads the persisted state.
func NewTracker(ctx context.Context, s ProgressStore, logger *slog.Logger, opts ...Option) (*Tracker, error) {
	t := &Tracker{
		store:  s,
		logger: logger,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(t)
	}

	if err := t.reload(ctx); err != nil {
		return nil, err
	}
	return t, nil
}

// reload replaces in-memory state with what the store holds. Caller must
// hold mu or be the constructor.
func (t *Tracker) reload(ctx context.Context) error {
	log, cache, err := t.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load progress: %w", err)
	}
	t.log = log
	t.cache = cache
	return nil
}

// RecordAnswer stores the learner's latest attempt at questionID and
// persists it. A previous attempt at the same question is replaced.
func (t *Tracker) RecordAnswer(ctx context.Context, questionID string, choice int, isCorrect bool) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	cache := t.cache
	prev := t.log.Put(questionID, answer.NewRecord(choice, isCorrect, t.now()))
	stats.NewStreakCounter(&t.cache).Apply(prev, isCorrect)

	if err := t.store.Save(ctx, t.log, t.cache); err != nil {
		// Memory must not get ahead of the store.
		if prev != nil {
			t.log[questionID] = *prev
		} else {
			delete(t.log, questionID)
		}
		t.cache = cache
		return fmt.Errorf("save progress: %w", err)
	}

	t.logger.Debug("answer recorded",
		"question_id", questionID,
		"choice", choice,
		"correct", isCorrect,
		"reanswer", prev != nil,
	)
	return nil
}

// Submit grades choice against q and records the result.
func (t *Tracker) Submit(ctx context.Context, q *questionbank.Question, choice int) (answer.Record, error) {
	correct, err := q.Grade(choice)
	if err != nil {
		return answer.Record{}, err
	}
	if err := t.RecordAnswer(ctx, q.ID, choice, correct); err != nil {
		return answer.Record{}, err
	}
	rec, _ := t.AnswerStatus(q.ID)
	return rec, nil
}

// AnswerStatus returns the latest attempt at questionID; ok is false when
// the question was never answered.
func (t *Tracker) AnswerStatus(questionID string) (rec answer.Record, ok bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.log.Get(questionID)
}

// Statistics recomputes the overall snapshot from the log.
func (t *Tracker) Statistics() stats.Snapshot {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.statistics()
}

// Overview returns the recomputed snapshot together with the running streak
// hint, both read from the same state.
func (t *Tracker) Overview() (snap stats.Snapshot, runningCurrent, runningBest int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.statistics(), t.cache.CurrentStreak, t.cache.MaxStreak
}

// statistics requires mu to be held.
func (t *Tracker) statistics() stats.Snapshot {
	snap := stats.Compute(t.log)
	if snap.CurrentStreak != t.cache.CurrentStreak || snap.MaxStreak != t.cache.MaxStreak {
		t.logger.Debug("running streak differs from recomputation",
			"running_current", t.cache.CurrentStreak,
			"running_max", t.cache.MaxStreak,
			"current", snap.CurrentStreak,
			"max", snap.MaxStreak,
		)
	}
	return snap
}

// RunningStreak returns the incrementally maintained streak pair. It is a
// hint only; Statistics is authoritative.
func (t *Tracker) RunningStreak() (current, best int) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.cache.CurrentStreak, t.cache.MaxStreak
}

// CategoryStatistics joins the log against the catalog by category.
func (t *Tracker) CategoryStatistics(questions []questionbank.Question) map[string]stats.Group {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return stats.ByCategory(t.log, questions)
}

// YearStatistics joins the log against the catalog by exam year.
func (t *Tracker) YearStatistics(questions []questionbank.Question) map[string]stats.Group {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return stats.ByYear(t.log, questions)
}

// Answers returns a copy of the log.
func (t *Tracker) Answers() answer.Log {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.log.Clone()
}

// ResetAll deletes all persisted progress once confirm agrees. It reports
// whether the reset happened; a declined prompt changes nothing.
func (t *Tracker) ResetAll(ctx context.Context, confirm ConfirmFunc) (bool, error) {
	if confirm == nil || !confirm(ResetPrompt) {
		t.logger.Info("reset declined")
		return false, nil
	}

	t.mu.Lock()
	if err := t.store.Clear(ctx); err != nil {
		// Clear may have deleted some keys; resync with what is left.
		if rerr := t.reload(ctx); rerr != nil {
			t.logger.Error("failed to reload progress after partial reset", "error", rerr)
		}
		t.mu.Unlock()
		return false, fmt.Errorf("clear progress: %w", err)
	}
	err := t.reload(ctx)
	t.mu.Unlock()
	if err != nil {
		return false, err
	}

	t.logger.Info("all progress deleted")
	for _, fn := range t.onReset {
		fn()
	}
	return true, nil
}
