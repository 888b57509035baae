package metrics_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	. "github.com/smartystreets/goconvey/convey"

	"github.com/kakomon-drill/backend/internal/metrics"
)

func TestManager(t *testing.T) {
	Convey("Given a metrics manager on a private registry", t, func() {
		m := metrics.NewManager(metrics.WithNamespace("test"))

		Convey("When answers are recorded", func() {
			m.RecordAnswer(true)
			m.RecordAnswer(true)
			m.RecordAnswer(false)

			Convey("Then they are counted by result", func() {
				So(answerCount(m, "correct"), ShouldEqual, 2.0)
				So(answerCount(m, "incorrect"), ShouldEqual, 1.0)
			})
		})

		Convey("When the handler is scraped", func() {
			m.RecordReset(false)
			m.RecordHTTPRequest("/api/stats", "GET", 200, 3*time.Millisecond)

			rec := httptest.NewRecorder()
			m.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))
			body, _ := io.ReadAll(rec.Body)

			Convey("Then the exposition contains the namespaced series", func() {
				So(rec.Code, ShouldEqual, 200)
				So(string(body), ShouldContainSubstring, `test_progress_resets_total{outcome="declined"} 1`)
				So(string(body), ShouldContainSubstring, `test_progress_http_requests_total{endpoint="/api/stats",method="GET",status_code="200"} 1`)
			})
		})

		Convey("When two managers are created", func() {
			Convey("Then they do not collide on registration", func() {
				So(func() { metrics.NewManager(); metrics.NewManager() }, ShouldNotPanic)
			})
		})
	})
}

// answerCount reads the answers counter for one result label from the registry.
func answerCount(m *metrics.Manager, result string) float64 {
	families, err := m.Registry().Gather()
	if err != nil {
		return -1
	}
	for _, f := range families {
		if f.GetName() != "test_progress_answers_recorded_total" {
			continue
		}
		for _, metric := range f.GetMetric() {
			for _, lp := range metric.GetLabel() {
				if lp.GetName() == "result" && lp.GetValue() == result {
					return metric.GetCounter().GetValue()
				}
			}
		}
	}
	return 0
}
