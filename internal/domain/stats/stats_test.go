package stats_test

import (
	"fmt"
	"math/rand"
	"testing"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/kakomon-drill/backend/internal/domain/answer"
	"github.com/kakomon-drill/backend/internal/domain/questionbank"
	"github.com/kakomon-drill/backend/internal/domain/stats"
)

func TestCompute(t *testing.T) {
	Convey("Given an empty answer log", t, func() {
		log := answer.NewLog()

		Convey("Then every figure is zero", func() {
			So(stats.Compute(log), ShouldResemble, stats.Snapshot{})
		})
	})

	Convey("Given q1 correct, q2 incorrect, q3 correct in that order", t, func() {
		log := answer.Log{
			"q1": {Choice: 1, IsCorrect: true, Timestamp: 1000},
			"q2": {Choice: 2, IsCorrect: false, Timestamp: 2000},
			"q3": {Choice: 3, IsCorrect: true, Timestamp: 3000},
		}

		snap := stats.Compute(log)

		Convey("Then totals and accuracy are derived from the log", func() {
			So(snap.TotalAnswered, ShouldEqual, 3)
			So(snap.CorrectCount, ShouldEqual, 2)
			So(snap.IncorrectCount, ShouldEqual, 1)
			So(snap.Accuracy, ShouldEqual, 67)
		})

		Convey("Then streaks follow the chronological order", func() {
			So(snap.CurrentStreak, ShouldEqual, 1)
			So(snap.MaxStreak, ShouldEqual, 1)
		})
	})

	Convey("Given a long correct run broken by a miss", t, func() {
		log := answer.Log{
			"a": {IsCorrect: true, Timestamp: 1},
			"b": {IsCorrect: true, Timestamp: 2},
			"c": {IsCorrect: true, Timestamp: 3},
			"d": {IsCorrect: false, Timestamp: 4},
			"e": {IsCorrect: true, Timestamp: 5},
			"f": {IsCorrect: true, Timestamp: 6},
		}

		snap := stats.Compute(log)

		Convey("Then the max streak remembers the earlier run", func() {
			So(snap.MaxStreak, ShouldEqual, 3)
			So(snap.CurrentStreak, ShouldEqual, 2)
		})
	})

	Convey("Given records sharing a timestamp", t, func() {
		log := answer.Log{
			"b": {IsCorrect: false, Timestamp: 5},
			"a": {IsCorrect: true, Timestamp: 5},
		}

		Convey("Then the ordering is consistent across computations", func() {
			first := stats.Compute(log)
			for i := 0; i < 20; i++ {
				So(stats.Compute(log), ShouldResemble, first)
			}
			// ties are broken by question ID, so "b" is the most recent
			So(first.CurrentStreak, ShouldEqual, 0)
		})
	})

	Convey("Given a record without a timestamp", t, func() {
		log := answer.Log{
			"legacy": {IsCorrect: false},
			"fresh":  {IsCorrect: true, Timestamp: 10},
		}

		Convey("Then it sorts as the oldest attempt", func() {
			So(stats.Compute(log).CurrentStreak, ShouldEqual, 1)
		})
	})
}

func TestCompute_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for n := 0; n < 200; n++ {
		log := answer.NewLog()
		size := rng.Intn(40)
		for i := 0; i < size; i++ {
			log.Put(fmt.Sprintf("q%d", rng.Intn(60)), answer.Record{
				Choice:    rng.Intn(4) + 1,
				IsCorrect: rng.Intn(2) == 0,
				Timestamp: int64(rng.Intn(1000)),
			})
		}

		snap := stats.Compute(log)

		if snap.CorrectCount+snap.IncorrectCount != snap.TotalAnswered {
			t.Fatalf("counts do not add up: %+v", snap)
		}
		if snap.Accuracy < 0 || snap.Accuracy > 100 {
			t.Fatalf("accuracy out of range: %+v", snap)
		}
		if snap.TotalAnswered == 0 && snap.Accuracy != 0 {
			t.Fatalf("accuracy must be zero for an empty log: %+v", snap)
		}
		if snap.CurrentStreak > snap.MaxStreak {
			t.Fatalf("current streak exceeds max: %+v", snap)
		}
		if again := stats.Compute(log); again != snap {
			t.Fatalf("compute is not idempotent: %+v vs %+v", snap, again)
		}
	}
}

func TestPercent(t *testing.T) {
	tests := []struct {
		part, whole, want int
	}{
		{0, 0, 0},
		{2, 3, 67},
		{1, 3, 33},
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{3, 8, 38}, // 37.5 rounds up
		{5, 5, 100},
	}

	for _, tt := range tests {
		if got := stats.Percent(tt.part, tt.whole); got != tt.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tt.part, tt.whole, got, tt.want)
		}
	}
}

func lawCatalog() []questionbank.Question {
	var qs []questionbank.Question
	for i := 1; i <= 5; i++ {
		qs = append(qs, questionbank.Question{ID: fmt.Sprintf("law-%d", i), Year: "r07", Category: "law"})
	}
	qs = append(qs,
		questionbank.Question{ID: "arch-1", Year: "r06", Category: "architecture"},
		questionbank.Question{ID: "arch-2", Year: "r06", Category: "architecture"},
	)
	return qs
}

func TestGrouping(t *testing.T) {
	Convey("Given a catalog with five law questions, two answered and one correct", t, func() {
		catalog := lawCatalog()
		log := answer.Log{
			"law-1": {IsCorrect: true, Timestamp: 1},
			"law-2": {IsCorrect: false, Timestamp: 2},
			"other": {IsCorrect: true, Timestamp: 3}, // not in the catalog
		}

		Convey("When grouping by category", func() {
			groups := stats.ByCategory(log, catalog)

			Convey("Then the law group reflects the join", func() {
				So(groups["law"], ShouldResemble, stats.Group{Total: 5, Answered: 2, Correct: 1})
			})

			Convey("Then unanswered categories are still totalled", func() {
				So(groups["architecture"], ShouldResemble, stats.Group{Total: 2})
			})

			Convey("Then categories absent from the catalog do not appear", func() {
				So(len(groups), ShouldEqual, 2)
				_, ok := groups["structure"]
				So(ok, ShouldBeFalse)
			})
		})

		Convey("When grouping by year", func() {
			groups := stats.ByYear(log, catalog)

			So(groups["r07"], ShouldResemble, stats.Group{Total: 5, Answered: 2, Correct: 1})
			So(groups["r06"], ShouldResemble, stats.Group{Total: 2})
		})
	})

	Convey("Given an empty catalog", t, func() {
		So(stats.ByCategory(answer.Log{"q": {}}, nil), ShouldBeEmpty)
	})
}

func TestGroupRates(t *testing.T) {
	g := stats.Group{Total: 5, Answered: 2, Correct: 1}

	if got := g.Accuracy(); got != 50 {
		t.Errorf("expected accuracy 50, got %d", got)
	}
	if got := g.Progress(); got != 40 {
		t.Errorf("expected progress 40, got %d", got)
	}
	if got := (stats.Group{}).Progress(); got != 0 {
		t.Errorf("expected zero progress for empty group, got %d", got)
	}
}

func TestWeakPoints(t *testing.T) {
	groups := map[string]stats.Group{
		"law":          {Total: 10, Answered: 4, Correct: 1}, // 25%
		"structure":    {Total: 10, Answered: 3, Correct: 2}, // 67%
		"architecture": {Total: 10, Answered: 2, Correct: 0}, // too few answers
		"construction": {Total: 10, Answered: 10, Correct: 7}, // 70% is not weak
	}

	got := stats.WeakPoints(groups)

	if len(got) != 2 {
		t.Fatalf("expected 2 weak points, got %d: %+v", len(got), got)
	}
	if got[0].Category != "law" || got[0].Accuracy != 25 {
		t.Errorf("expected law first at 25%%, got %+v", got[0])
	}
	if got[1].Category != "structure" || got[1].Accuracy != 67 {
		t.Errorf("expected structure second at 67%%, got %+v", got[1])
	}
}

func TestStreakCounter(t *testing.T) {
	Convey("Given a fresh cache", t, func() {
		cache := stats.NewCache()
		counter := stats.NewStreakCounter(&cache)

		Convey("When first attempts are correct", func() {
			counter.Apply(nil, true)
			counter.Apply(nil, true)

			Convey("Then the streak and max grow together", func() {
				So(cache.CurrentStreak, ShouldEqual, 2)
				So(cache.MaxStreak, ShouldEqual, 2)
			})

			Convey("And a miss resets only the current streak", func() {
				counter.Apply(nil, false)
				So(cache.CurrentStreak, ShouldEqual, 0)
				So(cache.MaxStreak, ShouldEqual, 2)
			})
		})

		Convey("When a question is re-answered with the same result", func() {
			counter.Apply(nil, true)
			prev := answer.Record{IsCorrect: true}
			counter.Apply(&prev, true)

			Convey("Then it is not counted twice", func() {
				So(cache.CurrentStreak, ShouldEqual, 1)
			})
		})

		Convey("When an incorrect answer is corrected", func() {
			counter.Apply(nil, false)
			prev := answer.Record{IsCorrect: false}
			counter.Apply(&prev, true)

			Convey("Then the streak is incremented exactly once", func() {
				So(cache.CurrentStreak, ShouldEqual, 1)
				So(cache.MaxStreak, ShouldEqual, 1)
			})
		})

		Convey("When a correct answer is re-answered wrongly", func() {
			counter.Apply(nil, true)
			prev := answer.Record{IsCorrect: true}
			counter.Apply(&prev, false)

			So(cache.CurrentStreak, ShouldEqual, 0)
			So(cache.MaxStreak, ShouldEqual, 1)
		})
	})
}
