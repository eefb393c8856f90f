// Command enginesrv exposes the search engine over HTTP: POST
// /api/evaluate runs a search, GET /metrics serves Prometheus metrics,
// and GET /healthz reports liveness.
package main

import (
	"encoding/json"
	"flag"
	"net/http"
	"time"

	"github.com/golang/glog"
	"github.com/google/uuid"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/jorge1289/solomon/api"
	"github.com/jorge1289/solomon/attacks"
	"github.com/jorge1289/solomon/internal/config"
	"github.com/jorge1289/solomon/search"
)

var (
	requestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "engine_evaluate_requests_total",
		Help: "Total number of /api/evaluate requests, partitioned by outcome.",
	}, []string{"outcome"})

	searchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "engine_evaluate_duration_seconds",
		Help:    "Time spent running a search for one /api/evaluate request.",
		Buckets: prometheus.DefBuckets,
	})
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			glog.Fatalf("load config: %v", err)
		}
		cfg = loaded
	}

	attacks.Init()
	search.InitZobristKeys()

	r := mux.NewRouter()
	r.HandleFunc("/api/evaluate", evaluateHandler(cfg)).Methods(http.MethodPost)
	r.HandleFunc("/healthz", healthzHandler).Methods(http.MethodGet)
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	withRequestID := func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			w.Header().Set("X-Request-Id", uuid.New().String())
			next.ServeHTTP(w, req)
		})
	}

	handler := withRequestID(handlers.LoggingHandler(glogWriter{}, r))

	glog.Infof("enginesrv listening on %s", cfg.ListenAddr)
	glog.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}

func evaluateHandler(cfg config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req api.Request
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.FEN == "" {
			requestsTotal.WithLabelValues("bad_request").Inc()
			writeError(w, http.StatusBadRequest, "no FEN position provided")
			return
		}

		start := time.Now()
		resp, err := api.Evaluate(req, cfg)
		searchDuration.Observe(time.Since(start).Seconds())
		if err != nil {
			requestsTotal.WithLabelValues("decode_error").Inc()
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}

		requestsTotal.WithLabelValues("ok").Inc()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(resp)
	}
}

func healthzHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// glogWriter adapts glog as the io.Writer gorilla/handlers.LoggingHandler
// writes its Apache Common Log Format lines to.
type glogWriter struct{}

func (glogWriter) Write(p []byte) (int, error) {
	glog.Info(string(p))
	return len(p), nil
}
