package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
)

var (
	ErrorsCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_errors_total",
			Help: "Total number of occurred errors.",
		},
		[]string{"type"},
	)
	PipelineDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "outreach_pipeline_duration_seconds",
			Help:    "Duration of each discovery and dispatch run in seconds.",
			Buckets: []float64{5, 30, 60, 300, 900, 1800},
		},
	)
	SearchQueryDuration = prometheus.NewSummaryVec(
		prometheus.SummaryOpts{
			Name:       "outreach_search_query_duration_seconds",
			Help:       "Duration of each external search query including pagination.",
			Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
		},
		[]string{"facet"},
	)
	CandidatesDiscoveredCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_candidates_discovered_total",
			Help: "Total number of candidate addresses produced, by source.",
		},
		[]string{"source"},
	)
	EmailsDispatchedCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "outreach_emails_dispatched_total",
			Help: "Total number of dispatch attempts, by outcome.",
		},
		[]string{"success"},
	)
)

// ObserveDispatch records one dispatch attempt outcome.
func ObserveDispatch(success bool) {
	EmailsDispatchedCounter.WithLabelValues(strconv.FormatBool(success)).Inc()
}

func StartMetricsServer(port int) {

	prometheus.MustRegister(ErrorsCounter)
	prometheus.MustRegister(PipelineDuration)
	prometheus.MustRegister(SearchQueryDuration)
	prometheus.MustRegister(CandidatesDiscoveredCounter)
	prometheus.MustRegister(EmailsDispatchedCounter)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	go func() {
		log.Fatal(http.ListenAndServe(":"+strconv.Itoa(port), mux))
	}()
}
