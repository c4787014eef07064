package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

type MiddlewareSuite struct {
	suite.Suite
	logger *slog.Logger
}

func TestMiddlewareSuite(t *testing.T) {
	suite.Run(t, new(MiddlewareSuite))
}

func (s *MiddlewareSuite) SetupTest() {
	s.logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func (s *MiddlewareSuite) TestRequestID() {
	s.Run("mints an ID when the client sends none", func() {
		var seen string
		inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			seen = GetRequestID(r.Context())
		})

		rec := httptest.NewRecorder()
		RequestID(inner).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

		s.NotEmpty(seen)
		s.Equal(seen, rec.Header().Get("X-Request-ID"))
	})

	s.Run("honors a client-supplied ID", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("X-Request-ID", "dispatch-7f3a")

		rec := httptest.NewRecorder()
		RequestID(okHandler()).ServeHTTP(rec, req)

		s.Equal("dispatch-7f3a", rec.Header().Get("X-Request-ID"))
	})
}

func (s *MiddlewareSuite) TestGetRequestIDWithoutMiddleware() {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	s.Empty(GetRequestID(req.Context()))
}

func (s *MiddlewareSuite) TestRecovery() {
	panicking := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	s.NotPanics(func() {
		Recovery(s.logger)(panicking).ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/verify", nil))
	})
	s.Equal(http.StatusInternalServerError, rec.Code)
}

func (s *MiddlewareSuite) TestContentTypeJSON() {
	s.Run("accepts a JSON body", func() {
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")

		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("rejects a non-JSON body", func() {
		req := httptest.NewRequest(http.MethodPost, "/verify", strings.NewReader("id=load-1001"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, req)

		s.Equal(http.StatusUnsupportedMediaType, rec.Code)
		s.Contains(rec.Body.String(), "invalid_content_type")
	})

	s.Run("ignores reads", func() {
		req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
		req.Header.Set("Content-Type", "text/plain")

		rec := httptest.NewRecorder()
		ContentTypeJSON(okHandler()).ServeHTTP(rec, req)

		s.Equal(http.StatusOK, rec.Code)
	})
}

func (s *MiddlewareSuite) TestLoggerCapturesStatus() {
	teapot := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	Logger(s.logger)(teapot).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	s.Equal(http.StatusTeapot, rec.Code)
}
