package report_test

import (
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/meridian-health/meridian/internal/model"
	"github.com/meridian-health/meridian/internal/report"
	"github.com/meridian-health/meridian/internal/view"
	_ "github.com/meridian-health/meridian/testing"
)

func newTestRouter(t *testing.T) (chi.Router, *model.Engine) {
	t.Helper()
	logger := slog.New(slog.DiscardHandler)
	engine := model.New(model.DefaultDataset())
	service := report.NewService(engine, report.NewCache(nil, time.Minute), logger)
	templates, err := view.NewEngine()
	require.NoError(t, err)
	handler, err := report.NewHandler(logger, service, templates)
	require.NoError(t, err)

	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r, engine
}

func TestHandleDashboard(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	require.Contains(t, rec.Body.String(), "Meridian Health")
	require.Contains(t, rec.Body.String(), "Growth scenario")
}

func TestHandlePnLPage(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pnl?year=2027", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "2027 ANNUAL TOTAL")
	require.Contains(t, body, "United States")
	require.Contains(t, body, "Ireland")
}

func TestHandlePnLRejectsBadFilters(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pnl?year=abc", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pnl?scenario=unplanned", nil))
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandleProjectionsDefaultsToHomeYear(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/projections", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "January 2026")
}

func TestHandlePerformance(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/performance", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "status-actual")
	require.Contains(t, body, "2025 TOTAL")
}

func TestHandleEconomics(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/economics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "B2C ADHD")
	require.Contains(t, body, "Self-pay ADHD")
}

func TestHandleScenarioSwitch(t *testing.T) {
	r, engine := newTestRouter(t)

	form := strings.NewReader("scenario=optimistic&redirect=/pnl")
	req := httptest.NewRequest(http.MethodPost, "/scenario", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/pnl", rec.Header().Get("Location"))
	require.Equal(t, model.ScenarioOptimistic, engine.CurrentScenario().Key)
}

func TestHandleScenarioSwitchRejectsUnknown(t *testing.T) {
	r, engine := newTestRouter(t)

	form := strings.NewReader("scenario=hockey-stick")
	req := httptest.NewRequest(http.MethodPost, "/scenario", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Equal(t, model.ScenarioRealistic, engine.CurrentScenario().Key)
}

func TestHandleScenarioSwitchSanitisesRedirect(t *testing.T) {
	r, _ := newTestRouter(t)

	form := strings.NewReader("scenario=pessimistic&redirect=//evil.example.com")
	req := httptest.NewRequest(http.MethodPost, "/scenario", form)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/", rec.Header().Get("Location"))
}

func TestHandleExportCSV(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pnl/export.csv?year=2027", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "text/csv", rec.Header().Get("Content-Type"))
	require.Contains(t, rec.Header().Get("Content-Disposition"), "pnl-2027-realistic.csv")

	lines := strings.Split(strings.TrimSpace(rec.Body.String()), "\n")
	require.Len(t, lines, 14)
	require.Equal(t, "Month,Patients,Revenue,COGS,Gross Profit,Opex,EBITDA,Depreciation,Tax,Net Income", strings.TrimSpace(lines[0]))
}

func TestHandleExportCSVMissingYear(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/pnl/export.csv?year=2099", nil))
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandleAPIPnL(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pnl?year=2027&scenario=optimistic", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Type"), "application/json")
	body := rec.Body.String()
	require.Contains(t, body, `"Scenario":"optimistic"`)
	require.Contains(t, body, `"Year":2027`)
}

func TestHandleAPIPnLNoData(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/pnl?year=2099", nil))

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "error")
}
