package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var mutationResults = prometheus.NewCounterVec(prometheus.CounterOpts{
	Name: "dashboard_mutation_results_total",
	Help: "Form submissions per use case and outcome",
}, []string{"use_case", "outcome"})

func init() {
	prometheus.MustRegister(mutationResults)
}

// ObserveResult counts one use-case invocation.
func ObserveResult(useCase, outcome string) {
	mutationResults.WithLabelValues(useCase, outcome).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
