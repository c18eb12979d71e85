// Package web serves the read-only dashboard that the offline proxy caches.
package web

import (
	"bytes"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"

	"github.com/five82/fitjourney/internal/journal"
	"github.com/five82/fitjourney/internal/stats"
)

// Loader returns the latest persisted snapshot.
type Loader interface {
	Load() journal.State
}

type Handler struct {
	loader Loader
	now    func() time.Time
	page   *template.Template
}

func NewHandler(loader Loader, now func() time.Time) *Handler {
	if now == nil {
		now = time.Now
	}
	return &Handler{
		loader: loader,
		now:    now,
		page:   template.Must(template.New("dashboard").Funcs(templateFuncs).Parse(dashboardHTML)),
	}
}

// NewRouter returns a router with every dashboard route registered.
func NewRouter(loader Loader, now func() time.Time) *mux.Router {
	r := mux.NewRouter()
	NewHandler(loader, now).SetupRoutes(r)
	return r
}

func (handler *Handler) SetupRoutes(router *mux.Router) {
	router.HandleFunc("/", handler.handleDashboard).Methods("GET", "HEAD").Name("root")
	router.HandleFunc("/index.html", handler.handleDashboard).Methods("GET", "HEAD").Name("index")
	router.HandleFunc("/manifest.webmanifest", handler.handleManifest).Methods("GET").Name("manifest")
	router.HandleFunc("/trend.svg", handler.handleTrend).Methods("GET").Name("trend")
	router.HandleFunc("/api/summary", handler.handleSummary).Methods("GET").Name("summary")
}

type dashboardView struct {
	TodayLabel string
	Summary    stats.Summary
	Pushups    []journal.Pushup
	Weights    []journal.Weight
	Rides      []journal.Ride
	Trend      string
}

func (handler *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	s := handler.loader.Load()
	today := journal.Today(handler.now())
	sum := stats.Compute(s, today)
	view := dashboardView{
		TodayLabel: journal.FormatDate(today),
		Summary:    sum,
		Pushups:    reversed(s.Pushups),
		Weights:    reversed(s.Weights),
		Rides:      s.Rides,
		Trend:      polyline(sum.WeightTrend.Points(stats.DefaultPlot)),
	}

	var buf bytes.Buffer
	if err := handler.page.Execute(&buf, view); err != nil {
		log.WithError(err).Error("render dashboard")
		http.Error(w, "render failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}

type manifest struct {
	Name            string `json:"name"`
	ShortName       string `json:"short_name"`
	StartURL        string `json:"start_url"`
	Display         string `json:"display"`
	BackgroundColor string `json:"background_color"`
	ThemeColor      string `json:"theme_color"`
}

var appManifest = manifest{
	Name:            "Fitness Journey",
	ShortName:       "FitJourney",
	StartURL:        "/",
	Display:         "standalone",
	BackgroundColor: "#131a24",
	ThemeColor:      "#719cd6",
}

func (handler *Handler) handleManifest(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, "application/manifest+json", appManifest)
}

func (handler *Handler) handleTrend(w http.ResponseWriter, _ *http.Request) {
	trend := stats.WeightTrend(handler.loader.Load().Weights)
	p := stats.DefaultPlot
	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = fmt.Fprintf(w,
		`<svg xmlns="http://www.w3.org/2000/svg" width="%s" height="%s" viewBox="0 0 %s %s"><polyline fill="none" stroke="currentColor" stroke-width="2" points="%s"/></svg>`,
		num(p.Width), num(p.Height), num(p.Width), num(p.Height), polyline(trend.Points(p)))
}

type summaryResponse struct {
	Today             string             `json:"today"`
	StartingWeight    *float64           `json:"starting_weight"`
	CurrentWeight     *float64           `json:"current_weight"`
	BestPushupDay     *journal.Pushup    `json:"best_pushup_day"`
	TodaysPushupTotal int                `json:"todays_pushup_total"`
	TodaysMeals       []journal.Meal     `json:"todays_meals"`
	TodaysMealTotals  journal.MealTotals `json:"todays_meal_totals"`
	WeightTrend       []float64          `json:"weight_trend"`
}

func (handler *Handler) handleSummary(w http.ResponseWriter, _ *http.Request) {
	today := journal.Today(handler.now())
	sum := stats.Compute(handler.loader.Load(), today)

	resp := summaryResponse{
		Today:             sum.Today,
		TodaysPushupTotal: sum.TodaysPushupTotal,
		TodaysMeals:       sum.TodaysMeals,
		TodaysMealTotals:  sum.TodaysMealTotals,
		WeightTrend:       sum.WeightTrend.Values,
	}
	if sum.HasWeight {
		start, current := sum.StartingWeight, sum.CurrentWeight
		resp.StartingWeight = &start
		resp.CurrentWeight = &current
	}
	if sum.HasPushups {
		best := sum.BestPushupDay
		resp.BestPushupDay = &best
	}
	writeJSON(w, "application/json", resp)
}

func writeJSON(w http.ResponseWriter, contentType string, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		log.WithError(err).Error("encode response")
		http.Error(w, "encode failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", contentType)
	_, _ = w.Write(data)
}

func polyline(points []stats.Point) string {
	parts := make([]string, 0, len(points))
	for _, p := range points {
		parts = append(parts, num(p.X)+","+num(p.Y))
	}
	return strings.Join(parts, " ")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func reversed[T any](items []T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[len(items)-1-i] = item
	}
	return out
}
