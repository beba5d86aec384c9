package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMiddleware_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(Middleware)
	r.Get("/api/user/analyses/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/user/analyses/{id}", "418"))

	for _, id := range []string{"a", "b"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/user/analyses/"+id, nil))
		assert.Equal(t, http.StatusTeapot, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues(http.MethodGet, "/api/user/analyses/{id}", "418"))
	assert.Equal(t, 2.0, after-before)
}

func TestHandler_ExposesCollectors(t *testing.T) {
	CreditTransactions.WithLabelValues("purchase", OutcomeOK).Inc()

	rec := httptest.NewRecorder()
	Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "figmant_credits_transactions_total"))
}
