package verify_test

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-chi/chi/v5"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"

	"github.com/meridian-health/meridian/internal/verify"
	_ "github.com/meridian-health/meridian/testing"
)

func newRouter(t *testing.T) (http.Handler, *fakeMailer) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := verify.NewStore(client, 10*time.Minute, 5)
	mailer := &fakeMailer{}
	logger := slog.New(slog.DiscardHandler)
	service := verify.NewService(store, mailer, logger, "founder@meridian.example", 10*time.Minute)
	handler := verify.NewHandler(logger, service)

	r := chi.NewRouter()
	r.Route("/api/verify", handler.MountRoutes)
	return r, mailer
}

func postJSON(t *testing.T, router http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestEndpoint(t *testing.T) {
	router, mailer := newRouter(t)

	rec := postJSON(t, router, "/api/verify/request", `{"email":"visitor@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "sent", body["status"])
	require.NotEmpty(t, body["reference"])
	require.Len(t, mailer.sent, 1)
}

func TestRequestEndpointRejectsBadEmail(t *testing.T) {
	router, mailer := newRouter(t)

	rec := postJSON(t, router, "/api/verify/request", `{"email":"not-an-email"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, mailer.sent)

	rec = postJSON(t, router, "/api/verify/request", `{`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestConfirmEndpoint(t *testing.T) {
	router, mailer := newRouter(t)

	rec := postJSON(t, router, "/api/verify/request", `{"email":"visitor@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	code := codePattern.FindStringSubmatch(mailer.sent[0].Body)[1]

	rec = postJSON(t, router, "/api/verify/confirm", `{"email":"visitor@example.com","code":"`+code+`"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Equal(t, "verified", body["status"])
}

func TestConfirmEndpointWrongCode(t *testing.T) {
	router, mailer := newRouter(t)

	rec := postJSON(t, router, "/api/verify/request", `{"email":"visitor@example.com"}`)
	require.Equal(t, http.StatusAccepted, rec.Code)
	require.Len(t, mailer.sent, 1)

	wrong := "000000"
	if codePattern.FindStringSubmatch(mailer.sent[0].Body)[1] == wrong {
		wrong = "000001"
	}
	rec = postJSON(t, router, "/api/verify/confirm", `{"email":"visitor@example.com","code":"`+wrong+`"}`)
	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestConfirmEndpointWithoutCode(t *testing.T) {
	router, _ := newRouter(t)

	rec := postJSON(t, router, "/api/verify/confirm", `{"email":"visitor@example.com","code":"123456"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(t, router, "/api/verify/confirm", `{"email":"visitor@example.com","code":"12"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRateLimit(t *testing.T) {
	router, _ := newRouter(t)

	var last int
	for i := 0; i < 6; i++ {
		rec := postJSON(t, router, "/api/verify/request", `{"email":"visitor@example.com"}`)
		last = rec.Code
	}
	require.Equal(t, http.StatusTooManyRequests, last)
}
