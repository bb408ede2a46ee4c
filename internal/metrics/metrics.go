// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics defines Prometheus instruments for the query pipeline and
// bookmark persistence.
package metrics

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

const namespace = "research_catalog"

var (
	PipelineRunsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "pipeline_runs_total",
			Help:      "Total number of query pipeline runs",
		},
		[]string{"sort"},
	)

	PipelineRunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "pipeline_run_duration_seconds",
			Help:      "Query pipeline run duration in seconds",
			Buckets:   []float64{0.00001, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		},
	)

	PipelineResultTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "pipeline_result_total",
			Help:      "Number of records matched by the most recent pipeline run",
		},
	)

	BookmarkTogglesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_toggles_total",
			Help:      "Total bookmark toggles",
		},
		[]string{"action"}, // "add" / "remove"
	)

	BookmarkPersistFailuresTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "bookmark_persist_failures_total",
			Help:      "Total bookmark persistence failures",
		},
		[]string{"op"}, // "load" / "save"
	)
)

func init() {
	prometheus.MustRegister(PipelineRunsTotal)
	prometheus.MustRegister(PipelineRunDuration)
	prometheus.MustRegister(PipelineResultTotal)
	prometheus.MustRegister(BookmarkTogglesTotal)
	prometheus.MustRegister(BookmarkPersistFailuresTotal)
}

// ObserveRun records one pipeline run.
func ObserveRun(sortMode string, total int, d time.Duration) {
	PipelineRunsTotal.WithLabelValues(sortMode).Inc()
	PipelineRunDuration.Observe(d.Seconds())
	PipelineResultTotal.Set(float64(total))
}

// ObserveToggle records a bookmark toggle.
func ObserveToggle(added bool) {
	action := "remove"
	if added {
		action = "add"
	}
	BookmarkTogglesTotal.WithLabelValues(action).Inc()
}

// ObservePersistFailure records a failed bookmark load or save.
func ObservePersistFailure(op string) {
	BookmarkPersistFailuresTotal.WithLabelValues(op).Inc()
}

// Snapshot gathers the catalog's own metrics from the default registry and
// flattens them to "name{label=value}" keys. Histograms report their sample
// count under name_count.
func Snapshot() (map[string]float64, error) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		return nil, fmt.Errorf("gathering metrics: %w", err)
	}

	out := make(map[string]float64)
	for _, mf := range families {
		name := mf.GetName()
		if !strings.HasPrefix(name, namespace+"_") {
			continue
		}
		for _, m := range mf.GetMetric() {
			key := name + labelSuffix(m.GetLabel())
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				out[key] = m.GetCounter().GetValue()
			case dto.MetricType_GAUGE:
				out[key] = m.GetGauge().GetValue()
			case dto.MetricType_HISTOGRAM:
				out[name+"_count"+labelSuffix(m.GetLabel())] = float64(m.GetHistogram().GetSampleCount())
			}
		}
	}
	return out, nil
}

// SortedKeys returns the keys of a snapshot in lexical order.
func SortedKeys(snap map[string]float64) []string {
	keys := make([]string, 0, len(snap))
	for k := range snap {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func labelSuffix(labels []*dto.LabelPair) string {
	if len(labels) == 0 {
		return ""
	}
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = fmt.Sprintf("%s=%q", l.GetName(), l.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
