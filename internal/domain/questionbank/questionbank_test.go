package questionbank_test

import (
	"errors"
	"testing"

	"github.com/kakomon-drill/backend/internal/domain/questionbank"
)

func sampleQuestions() []questionbank.Question {
	return []questionbank.Question{
		{ID: "r07-01", Year: "r07", Category: "architecture", Title: "換気", Text: "換気に関する記述", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: 2},
		{ID: "r07-02", Year: "r07", Category: "law", Title: "建築基準法", Text: "Building Standards Act", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: 4},
		{ID: "r06-01", Year: "r06", Category: "law", Title: "労働安全衛生法", Text: "安全", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: 1},
		{ID: "r05-10", Year: "r05", Category: "construction", Title: "鉄筋工事", Text: "かぶり厚さ", Choices: []string{"a", "b", "c", "d"}, CorrectAnswer: 3},
	}
}

func TestGrade(t *testing.T) {
	q := sampleQuestions()[0]

	tests := []struct {
		choice  int
		want    bool
		wantErr error
	}{
		{choice: 2, want: true},
		{choice: 1, want: false},
		{choice: 0, wantErr: questionbank.ErrChoiceOutOfRange},
		{choice: 5, wantErr: questionbank.ErrChoiceOutOfRange},
	}

	for _, tt := range tests {
		got, err := q.Grade(tt.choice)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("choice %d: expected error %v, got %v", tt.choice, tt.wantErr, err)
			continue
		}
		if got != tt.want {
			t.Errorf("choice %d: expected %v, got %v", tt.choice, tt.want, got)
		}
	}
}

func TestFind(t *testing.T) {
	questions := sampleQuestions()

	q, ok := questionbank.Find(questions, "r06-01")
	if !ok {
		t.Fatal("expected question to be found")
	}
	if q.Title != "労働安全衛生法" {
		t.Errorf("unexpected question %q", q.Title)
	}

	if _, ok := questionbank.Find(questions, "invalid_id"); ok {
		t.Error("expected missing question")
	}
}

func TestFilterApply(t *testing.T) {
	questions := sampleQuestions()
	answered := map[string]bool{"r07-01": true, "r07-02": false}
	lookup := func(id string) (bool, bool) {
		correct, ok := answered[id]
		return correct, ok
	}

	tests := []struct {
		name   string
		filter questionbank.Filter
		want   []string
	}{
		{"zero value matches all", questionbank.Filter{}, []string{"r07-01", "r07-02", "r06-01", "r05-10"}},
		{"year", questionbank.Filter{Year: "r07"}, []string{"r07-01", "r07-02"}},
		{"all year", questionbank.Filter{Year: "all", Category: "law"}, []string{"r07-02", "r06-01"}},
		{"unanswered", questionbank.Filter{Status: questionbank.StatusUnanswered}, []string{"r06-01", "r05-10"}},
		{"correct", questionbank.Filter{Status: questionbank.StatusCorrect}, []string{"r07-01"}},
		{"incorrect", questionbank.Filter{Status: questionbank.StatusIncorrect}, []string{"r07-02"}},
		{"search title", questionbank.Filter{Search: "鉄筋"}, []string{"r05-10"}},
		{"search is case insensitive", questionbank.Filter{Search: "BUILDING"}, []string{"r07-02"}},
		{"no match", questionbank.Filter{Year: "r03"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Apply(questions, lookup)
			if len(got) != len(tt.want) {
				t.Fatalf("expected %d questions, got %d", len(tt.want), len(got))
			}
			for i := range got {
				if got[i].ID != tt.want[i] {
					t.Errorf("position %d: expected %s, got %s", i, tt.want[i], got[i].ID)
				}
			}
		})
	}
}

func TestSortYears(t *testing.T) {
	got := questionbank.SortYears([]string{"r07", "h30", "r03", "r05", "a01"})
	want := []string{"r03", "r05", "r07", "a01", "h30"}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}

func TestYearName(t *testing.T) {
	if got := questionbank.YearName("r06"); got != "令和6年度" {
		t.Errorf("expected 令和6年度, got %q", got)
	}
	if got := questionbank.YearName("x99"); got != "x99" {
		t.Errorf("expected code fallback, got %q", got)
	}
}
