package answer_test

import (
	"testing"
	"time"

	"github.com/kakomon-drill/backend/internal/domain/answer"
)

func TestNewRecord(t *testing.T) {
	at := time.UnixMilli(1_700_000_000_123)
	rec := answer.NewRecord(3, true, at)

	if rec.Choice != 3 {
		t.Errorf("expected choice 3, got %d", rec.Choice)
	}
	if !rec.IsCorrect {
		t.Error("expected record to be correct")
	}
	if rec.Timestamp != 1_700_000_000_123 {
		t.Errorf("expected timestamp %d, got %d", int64(1_700_000_000_123), rec.Timestamp)
	}
}

func TestLogPut_FirstAttempt(t *testing.T) {
	log := answer.NewLog()

	prev := log.Put("r07-01", answer.Record{Choice: 1, IsCorrect: true, Timestamp: 10})
	if prev != nil {
		t.Errorf("expected no previous record, got %+v", *prev)
	}
	if len(log) != 1 {
		t.Errorf("expected 1 record, got %d", len(log))
	}
}

func TestLogPut_ReplacesPrevious(t *testing.T) {
	log := answer.NewLog()
	log.Put("r07-01", answer.Record{Choice: 1, IsCorrect: false, Timestamp: 10})

	prev := log.Put("r07-01", answer.Record{Choice: 2, IsCorrect: true, Timestamp: 20})
	if prev == nil {
		t.Fatal("expected previous record")
	}
	if prev.Choice != 1 || prev.IsCorrect {
		t.Errorf("unexpected previous record %+v", *prev)
	}

	got, ok := log.Get("r07-01")
	if !ok {
		t.Fatal("expected record to exist")
	}
	if got.Choice != 2 || !got.IsCorrect || got.Timestamp != 20 {
		t.Errorf("unexpected current record %+v", got)
	}
	if len(log) != 1 {
		t.Errorf("expected a single record per question, got %d", len(log))
	}
}

func TestLogGet_Missing(t *testing.T) {
	log := answer.NewLog()

	if _, ok := log.Get("nope"); ok {
		t.Error("expected missing record")
	}
}

func TestLogClone_Independent(t *testing.T) {
	log := answer.NewLog()
	log.Put("a", answer.Record{Choice: 1})

	clone := log.Clone()
	clone.Put("b", answer.Record{Choice: 2})

	if len(log) != 1 {
		t.Errorf("expected original log untouched, got %d records", len(log))
	}
}
