package answer

import "time"

// Record is the latest attempt at a single question.
type Record struct {
	Choice    int   `json:"choice"`    // 1-based option index
	IsCorrect bool  `json:"isCorrect"` // graded against the catalog's correct answer
	Timestamp int64 `json:"timestamp"` // wall clock, Unix milliseconds
}

// NewRecord stamps an attempt with the given time.
func NewRecord(choice int, isCorrect bool, at time.Time) Record {
	return Record{
		Choice:    choice,
		IsCorrect: isCorrect,
		Timestamp: at.UnixMilli(),
	}
}

// Log maps question IDs to their latest recorded attempt.
// It holds at most one record per question.
type Log map[string]Record

// NewLog returns an empty log.
func NewLog() Log {
	return Log{}
}

// Get returns the record for questionID and whether one exists.
func (l Log) Get(questionID string) (Record, bool) {
	rec, ok := l[questionID]
	return rec, ok
}

// Put stores rec for questionID, replacing any earlier attempt, and returns
// the replaced record (nil on first attempt).
func (l Log) Put(questionID string, rec Record) *Record {
	var prev *Record
	if old, ok := l[questionID]; ok {
		prev = &old
	}
	l[questionID] = rec
	return prev
}

// Clone returns a shallow copy safe to hand out to readers.
func (l Log) Clone() Log {
	out := make(Log, len(l))
	for k, v := range l {
		out[k] = v
	}
	return out
}
