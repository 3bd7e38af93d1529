package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type logRecorder struct {
	msg  string
	args []any
}

func (l *logRecorder) Info(msg string, args ...any) {
	l.msg = msg
	l.args = args
}

func TestLoggerMiddleware(t *testing.T) {
	t.Run("logs method status and size", func(t *testing.T) {
		l := &logRecorder{}
		handler := LoggerMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTeapot)
			_, _ = w.Write([]byte("hello"))
		}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/accounts/1/balance", nil))

		require.Equal(t, "got HTTP request", l.msg)

		// args come in key-value pairs
		kv := map[any]any{}
		for i := 0; i+1 < len(l.args); i += 2 {
			kv[l.args[i]] = l.args[i+1]
		}

		require.Equal(t, http.MethodGet, kv["method"])
		require.Equal(t, "/api/accounts/1/balance", kv["uri"])
		require.Equal(t, http.StatusTeapot, kv["status"])
		require.Equal(t, len("hello"), kv["size"])
	})

	t.Run("default status is 200", func(t *testing.T) {
		l := &logRecorder{}
		handler := LoggerMiddleware(l)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		kv := map[any]any{}
		for i := 0; i+1 < len(l.args); i += 2 {
			kv[l.args[i]] = l.args[i+1]
		}

		require.Equal(t, http.StatusOK, kv["status"])
	})
}
