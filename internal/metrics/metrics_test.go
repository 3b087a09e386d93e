package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstrumentHandler_LabelsByRoutePattern(t *testing.T) {
	r := chi.NewRouter()
	r.Use(InstrumentHandler)
	r.Get("/api/petals/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	before := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/petals/{id}", "404"))

	for _, id := range []string{"a", "b", "c"} {
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/petals/"+id, nil))
		assert.Equal(t, http.StatusNotFound, rec.Code)
	}

	after := testutil.ToFloat64(httpRequests.WithLabelValues("GET", "/api/petals/{id}", "404"))
	assert.Equal(t, float64(3), after-before)
}

func TestRecordPetalWrite(t *testing.T) {
	okBefore := testutil.ToFloat64(petalWrites.WithLabelValues("create", ResultOK))
	missBefore := testutil.ToFloat64(petalWrites.WithLabelValues("delete", ResultNotFound))
	errBefore := testutil.ToFloat64(petalWrites.WithLabelValues("delete", ResultError))

	RecordPetalWrite("create", ResultOK)
	RecordPetalWrite("delete", ResultNotFound)
	RecordPetalWrite("delete", ResultNotFound)

	assert.Equal(t, float64(1), testutil.ToFloat64(petalWrites.WithLabelValues("create", ResultOK))-okBefore)
	assert.Equal(t, float64(2), testutil.ToFloat64(petalWrites.WithLabelValues("delete", ResultNotFound))-missBefore)
	assert.Equal(t, float64(0), testutil.ToFloat64(petalWrites.WithLabelValues("delete", ResultError))-errBefore)
}

func TestHandler_Exposition(t *testing.T) {
	RecordPetalWrite("update", ResultOK)

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "daisy_petals_writes_total")
}
