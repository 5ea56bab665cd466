package benchmark

import (
	"github.com/prometheus/client_golang/prometheus"
	"strconv"
)

// metricLabels - Labels every benchmark gauge carries
var metricLabels = []string{"technique", "hash", "dataset_size", "table_size"}

// Metrics - Prometheus gauges over benchmark results, registered on a registry of their own
type Metrics struct {
	registry   *prometheus.Registry
	insertMs   *prometheus.GaugeVec
	searchMs   *prometheus.GaugeVec
	collisions *prometheus.GaugeVec
	loadFactor *prometheus.GaugeVec
	longest    *prometheus.GaugeVec
}

// NewMetrics - Returns a pointer to a new Metrics with every gauge registered
func NewMetrics() *Metrics {
	metrics := &Metrics{
		registry: prometheus.NewRegistry(),
		insertMs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashbench_insert_milliseconds",
			Help: "Time spent inserting the dataset",
		}, metricLabels),
		searchMs: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashbench_search_milliseconds",
			Help: "Time spent searching the search dataset",
		}, metricLabels),
		collisions: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashbench_collisions",
			Help: "Chain collisions or extra probes after insertion",
		}, metricLabels),
		loadFactor: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashbench_load_factor",
			Help: "Load factor after insertion",
		}, metricLabels),
		longest: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "hashbench_longest_run",
			Help: "Longest chain or largest cluster after insertion",
		}, metricLabels),
	}

	metrics.registry.MustRegister(metrics.insertMs, metrics.searchMs, metrics.collisions, metrics.loadFactor, metrics.longest)

	return metrics
}

// Observe - Sets the gauges for every result, a later result with the same labels replaces an earlier one
func (M *Metrics) Observe(results []Result) {
	for _, r := range results {
		labels := prometheus.Labels{
			"technique":    r.Technique,
			"hash":         r.Hash,
			"dataset_size": strconv.Itoa(r.DatasetSize),
			"table_size":   strconv.FormatInt(r.TableSize, 10),
		}

		M.insertMs.With(labels).Set(r.InsertMs)
		M.searchMs.With(labels).Set(r.SearchMs)
		M.collisions.With(labels).Set(float64(r.Collisions))
		M.loadFactor.With(labels).Set(r.LoadFactor)
		M.longest.With(labels).Set(float64(r.Longest))
	}
}

// Registry - Returns the registry the gauges are registered on
func (M *Metrics) Registry() *prometheus.Registry {
	return M.registry
}

// WriteMetrics - Writes results to fileName in the Prometheus text format, for the node exporter textfile collector
func WriteMetrics(fileName string, results []Result) error {
	metrics := NewMetrics()
	metrics.Observe(results)

	return prometheus.WriteToTextfile(fileName, metrics.registry)
}
