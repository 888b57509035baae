package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kakomon-drill/backend/internal/domain/answer"
	"github.com/kakomon-drill/backend/internal/domain/stats"
)

// Keys of the two persisted entries.
const (
	KeyAnswers    = "answers"
	KeyStatistics = "statistics"
)

// ProgressStore persists the answer log and the statistics cache.
// It is the only component that talks to the KV.
type ProgressStore struct {
	kv     KV
	logger *slog.Logger
}

func NewProgressStore(kv KV, logger *slog.Logger) *ProgressStore {
	return &ProgressStore{kv: kv, logger: logger}
}

// Load reads both entries. Absent or unparseable entries yield an empty log
// or a zeroed cache; only backend failures are returned.
func (s *ProgressStore) Load(ctx context.Context) (answer.Log, stats.Cache, error) {
	log, err := loadEntry(ctx, s, KeyAnswers, answer.NewLog)
	if err != nil {
		return nil, stats.Cache{}, err
	}
	if log == nil {
		log = answer.NewLog()
	}

	cache, err := loadEntry(ctx, s, KeyStatistics, stats.NewCache)
	if err != nil {
		return nil, stats.Cache{}, err
	}
	if cache.CategoryStats == nil {
		cache.CategoryStats = map[string]stats.Group{}
	}
	if cache.YearStats == nil {
		cache.YearStats = map[string]stats.Group{}
	}

	return log, cache, nil
}

// loadEntry decodes key, falling back to fresh() when the key is missing or
// its payload does not parse.
func loadEntry[T any](ctx context.Context, s *ProgressStore, key string, fresh func() T) (T, error) {
	raw, err := s.kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return fresh(), nil
	}
	if err != nil {
		var zero T
		return zero, fmt.Errorf("load %s: %w", key, err)
	}

	v := fresh()
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		s.logger.Warn("discarding malformed entry", "key", key, "error", err)
		return fresh(), nil
	}
	return v, nil
}

// Save overwrites both entries, one write per key.
func (s *ProgressStore) Save(ctx context.Context, log answer.Log, cache stats.Cache) error {
	answersJSON, err := json.Marshal(log)
	if err != nil {
		return fmt.Errorf("encode answers: %w", err)
	}
	statsJSON, err := json.Marshal(cache)
	if err != nil {
		return fmt.Errorf("encode statistics: %w", err)
	}

	if err := s.kv.Set(ctx, KeyAnswers, string(answersJSON)); err != nil {
		return fmt.Errorf("save %s: %w", KeyAnswers, err)
	}
	if err := s.kv.Set(ctx, KeyStatistics, string(statsJSON)); err != nil {
		return fmt.Errorf("save %s: %w", KeyStatistics, err)
	}
	return nil
}

// Clear deletes both entries.
func (s *ProgressStore) Clear(ctx context.Context) error {
	if err := s.kv.Delete(ctx, KeyAnswers); err != nil {
		return fmt.Errorf("clear %s: %w", KeyAnswers, err)
	}
	if err := s.kv.Delete(ctx, KeyStatistics); err != nil {
		return fmt.Errorf("clear %s: %w", KeyStatistics, err)
	}
	return nil
}
