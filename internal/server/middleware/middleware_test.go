package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newsbench/newsd/pkg/logging"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestChainOrder(t *testing.T) {
	var calls []string
	tag := func(name string) func(http.Handler) http.Handler {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				calls = append(calls, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	handler := Chain(tag("outer"), tag("inner"))(okHandler())
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/", nil))

	assert.Equal(t, []string{"outer", "inner"}, calls)
}

func TestLoggerLogsAPIRequests(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := Logger(tl.Logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/articles?page=2", nil))

	require.NotEmpty(t, tl.Output())
	assert.True(t, tl.Contains(`"path":"/api/articles"`))
	assert.True(t, tl.Contains(`"query":"page=2"`))
	assert.True(t, tl.Contains(`"status":404`))
	assert.True(t, tl.Contains(`"method":"GET"`))
	assert.Len(t, tl.Lines(), 1)
}

func TestLoggerSkipsNonAPIPaths(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := Logger(tl.Logger)(okHandler())
	for _, path := range []string{"/favicon.ico", "/", "/robots.txt"} {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", path, nil))
	}

	assert.Empty(t, tl.Output())
}

func TestLoggerLogsHealthPath(t *testing.T) {
	tl := logging.NewTestLogger(t)

	Logger(tl.Logger)(okHandler()).ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/health", nil))
	assert.True(t, tl.Contains(`"path":"/health"`))
}

func TestLoggerInjectsContextLogger(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := Logger(tl.Logger)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logging.Ctx(r.Context()).Info().Msg("from handler")
	}))
	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest("GET", "/api/articles", nil))

	assert.True(t, tl.Contains("from handler"))
}

func TestRecoveryConvertsPanicTo500(t *testing.T) {
	tl := logging.NewTestLogger(t)

	handler := Recovery(tl.Logger)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/api/articles", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"error":"Internal Server Error","message":"An unexpected error occurred","statusCode":500}`, rec.Body.String())
	assert.True(t, tl.Contains("Panic recovered"))
	assert.True(t, tl.Contains("boom"))
}

func TestDefaultHeaders(t *testing.T) {
	rec := httptest.NewRecorder()
	DefaultHeaders("1.0.0")(okHandler()).ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))
	assert.Equal(t, "1.0.0", rec.Header().Get("X-API-Version"))
}
