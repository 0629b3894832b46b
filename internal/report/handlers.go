package report

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"

	"github.com/meridian-health/meridian/internal/view"
)

// Handler wires HTTP interactions for the investor report pages.
type Handler struct {
	logger    *slog.Logger
	service   *Service
	templates *view.Engine
	rateLimit func(http.Handler) http.Handler
}

// NewHandler constructs a report handler.
func NewHandler(logger *slog.Logger, service *Service, templates *view.Engine) (*Handler, error) {
	if templates == nil {
		return nil, fmt.Errorf("report handler: template engine required")
	}
	limiter := httprate.Limit(10, time.Minute, httprate.WithKeyFuncs(func(r *http.Request) (string, error) {
		host, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			return "ip:" + r.RemoteAddr, nil
		}
		return "ip:" + host, nil
	}))
	return &Handler{
		logger:    logger,
		service:   service,
		templates: templates,
		rateLimit: limiter,
	}, nil
}

// MountRoutes registers the report endpoints.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/", h.HandleDashboard)
	r.Get("/pnl", h.HandlePnL)
	r.Get("/projections", h.HandleProjections)
	r.Get("/performance", h.HandlePerformance)
	r.Get("/economics", h.HandleEconomics)
	r.Post("/scenario", h.HandleScenarioSwitch)

	r.Group(func(r chi.Router) {
		r.Use(h.rateLimit)
		r.Get("/pnl/export.csv", h.HandleExportCSV)
		r.Get("/api/pnl", h.HandleAPIPnL)
	})
}

type reportFilters struct {
	Year     int
	Scenario string
}

// parseFilters reads year and scenario from the query string. The year
// defaults to the first multi-market planning year; the scenario
// defaults to the active one.
func (h *Handler) parseFilters(r *http.Request) (reportFilters, map[string]string) {
	q := r.URL.Query()
	errors := make(map[string]string)

	data := h.service.Engine().Dataset()
	filters := reportFilters{Year: data.HomeYear + 1}
	if raw := strings.TrimSpace(q.Get("year")); raw != "" {
		year, err := strconv.Atoi(raw)
		if err != nil || year < 2000 || year > 2100 {
			errors["year"] = "Invalid year"
		} else {
			filters.Year = year
		}
	}

	if raw := strings.TrimSpace(q.Get("scenario")); raw != "" {
		known := false
		for _, info := range h.service.Engine().Scenarios() {
			if info.Key == raw {
				known = true
				break
			}
		}
		if !known {
			errors["scenario"] = "Unknown scenario"
		} else {
			filters.Scenario = raw
		}
	}
	return filters, errors
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, page, title string, data any) {
	viewData := view.TemplateData{
		Title:       title,
		CurrentPath: r.URL.Path,
		Data:        data,
	}
	if err := h.templates.Render(w, page, viewData); err != nil {
		h.logger.Error("render "+page, slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}

// HandleDashboard renders the landing page.
func (h *Handler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	filters, errs := h.parseFilters(r)
	if len(errs) > 0 {
		http.Error(w, strings.Join(mapValues(errs), "; "), http.StatusBadRequest)
		return
	}
	vm := h.service.Dashboard(filters.Scenario)
	h.render(w, r, "pages/dashboard.html", "Meridian Health Plan", vm)
}

// HandlePnL renders the consolidated multi-market P&L page.
func (h *Handler) HandlePnL(w http.ResponseWriter, r *http.Request) {
	filters, errs := h.parseFilters(r)
	if len(errs) > 0 {
		http.Error(w, strings.Join(mapValues(errs), "; "), http.StatusBadRequest)
		return
	}
	vm, err := h.service.PnL(r.Context(), filters.Year, filters.Scenario)
	if err != nil {
		h.logger.Error("build pnl", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, "pages/pnl.html", fmt.Sprintf("Consolidated P&L %d", filters.Year), vm)
}

// HandleProjections renders the home-market projection page.
func (h *Handler) HandleProjections(w http.ResponseWriter, r *http.Request) {
	filters, errs := h.parseFilters(r)
	if len(errs) > 0 {
		http.Error(w, strings.Join(mapValues(errs), "; "), http.StatusBadRequest)
		return
	}
	year := filters.Year
	if strings.TrimSpace(r.URL.Query().Get("year")) == "" {
		year = h.service.Engine().Dataset().HomeYear
	}
	vm, err := h.service.Projections(r.Context(), year, filters.Scenario)
	if err != nil {
		h.logger.Error("build projections", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, "pages/projections.html", fmt.Sprintf("Projections %d", year), vm)
}

// HandlePerformance renders the foundation-year performance page.
func (h *Handler) HandlePerformance(w http.ResponseWriter, r *http.Request) {
	vm, err := h.service.Performance(r.Context())
	if err != nil {
		h.logger.Error("build performance", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	h.render(w, r, "pages/performance.html", fmt.Sprintf("%d Performance", vm.Year), vm)
}

// HandleEconomics renders the unit economics page.
func (h *Handler) HandleEconomics(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "pages/economics.html", "Unit Economics", h.service.Economics())
}

// HandleScenarioSwitch moves the active scenario and redirects back.
func (h *Handler) HandleScenarioSwitch(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	name := strings.TrimSpace(r.PostFormValue("scenario"))
	if !h.service.Engine().SwitchScenario(name) {
		http.Error(w, "Unknown scenario", http.StatusBadRequest)
		return
	}
	h.logger.Info("scenario switched", slog.String("scenario", name))
	target := r.PostFormValue("redirect")
	if target == "" || !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		target = "/"
	}
	http.Redirect(w, r, target, http.StatusSeeOther)
}

// HandleExportCSV serves the CSV export of the consolidated P&L.
func (h *Handler) HandleExportCSV(w http.ResponseWriter, r *http.Request) {
	filters, errs := h.parseFilters(r)
	if len(errs) > 0 {
		http.Error(w, strings.Join(mapValues(errs), "; "), http.StatusBadRequest)
		return
	}
	result := h.service.Engine().MultiMarketPnL(filters.Year, filters.Scenario)
	if result.Empty() {
		http.Error(w, "No data for the requested year", http.StatusNotFound)
		return
	}

	buf := &bytes.Buffer{}
	writer := csv.NewWriter(buf)
	header := []string{"Month", "Patients", "Revenue", "COGS", "Gross Profit", "Opex", "EBITDA", "Depreciation", "Tax", "Net Income"}
	if err := writer.Write(header); err != nil {
		h.logger.Error("write pnl csv header", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	for _, m := range result.Monthly {
		row := []string{
			m.Month,
			strconv.Itoa(m.Patients),
			fmt.Sprintf("%.0f", m.Revenue),
			fmt.Sprintf("%.0f", m.COGS),
			fmt.Sprintf("%.0f", m.GrossProfit),
			fmt.Sprintf("%.0f", m.Opex),
			fmt.Sprintf("%.0f", m.EBITDA),
			fmt.Sprintf("%.0f", m.Depreciation),
			fmt.Sprintf("%.0f", m.Tax),
			fmt.Sprintf("%.0f", m.NetIncome),
		}
		if err := writer.Write(row); err != nil {
			h.logger.Error("write pnl csv line", slog.Any("error", err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}
	annual := result.Annual
	totalRow := []string{
		annual.Label,
		strconv.Itoa(annual.Patients),
		fmt.Sprintf("%.0f", annual.Revenue),
		fmt.Sprintf("%.0f", annual.COGS),
		fmt.Sprintf("%.0f", annual.GrossProfit),
		fmt.Sprintf("%.0f", annual.Opex),
		fmt.Sprintf("%.0f", annual.EBITDA),
		fmt.Sprintf("%.0f", annual.Depreciation),
		fmt.Sprintf("%.0f", annual.Tax),
		fmt.Sprintf("%.0f", annual.NetIncome),
	}
	if err := writer.Write(totalRow); err != nil {
		h.logger.Error("write pnl csv totals", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		h.logger.Error("flush pnl csv", slog.Any("error", err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	filename := fmt.Sprintf("pnl-%d-%s.csv", filters.Year, result.Scenario)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	if _, err := w.Write(buf.Bytes()); err != nil {
		h.logger.Error("write pnl csv", slog.Any("error", err))
	}
}

// HandleAPIPnL serves the consolidated P&L as JSON.
func (h *Handler) HandleAPIPnL(w http.ResponseWriter, r *http.Request) {
	filters, errs := h.parseFilters(r)
	if len(errs) > 0 {
		writeJSONError(w, http.StatusBadRequest, strings.Join(mapValues(errs), "; "))
		return
	}
	result := h.service.Engine().MultiMarketPnL(filters.Year, filters.Scenario)
	if result.Empty() {
		writeJSONError(w, http.StatusNotFound, "no data for the requested year")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(result); err != nil {
		h.logger.Error("encode pnl json", slog.Any("error", err))
	}
}

func writeJSONError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func mapValues(m map[string]string) []string {
	out := make([]string, 0, len(m))
	for _, v := range m {
		out = append(out, v)
	}
	return out
}
