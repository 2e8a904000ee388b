package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// value reads the current value of a counter or gauge
func value(t *testing.T, m prometheus.Metric) float64 {
	t.Helper()
	var out dto.Metric
	require.NoError(t, m.Write(&out))
	if c := out.GetCounter(); c != nil {
		return c.GetValue()
	}
	return out.GetGauge().GetValue()
}

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/diary/{kind}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	ok := HTTPRequestsTotal.WithLabelValues(http.MethodGet, "/diary/{kind}", "202")
	missing := HTTPRequestsTotal.WithLabelValues(http.MethodGet, UnmatchedRoute, "404")
	beforeOK, beforeMissing := value(t, ok), value(t, missing)

	for _, path := range []string{"/diary/a", "/diary/b", "/nowhere"} {
		r.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, beforeOK+2, value(t, ok))
	assert.Equal(t, beforeMissing+1, value(t, missing))
	assert.Equal(t, float64(0), value(t, HTTPRequestsInFlight))
}

func TestRecorders(t *testing.T) {
	tests := []struct {
		name   string
		record func()
		read   func(t *testing.T) float64
	}{
		{"special seed", func() { RecordSeedPlanted(true) }, func(t *testing.T) float64 { return value(t, SeedsPlanted.WithLabelValues(KindSpecial)) }},
		{"cache miss", func() { RecordCacheLookup(false) }, func(t *testing.T) float64 { return value(t, CellCacheLookups.WithLabelValues(ResultMiss)) }},
		{"harvest", RecordHarvest, func(t *testing.T) float64 { return value(t, FruitsHarvested) }},
		{"reaction", func() { RecordReaction("🙏") }, func(t *testing.T) float64 { return value(t, ReactionsAdded.WithLabelValues("🙏")) }},
		{"rate limited", RecordRateLimited, func(t *testing.T) float64 { return value(t, HTTPRateLimited) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.read(t)
			tt.record()
			assert.Equal(t, before+1, tt.read(t))
		})
	}
}
