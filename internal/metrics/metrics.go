// Package metrics exports reliability results as Prometheus gauges in the
// text exposition format, for the node exporter textfile collector.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rshade/reliability-calc/internal/report"
)

// Namespace prefixes every exported metric.
const Namespace = "reliability"

// Label names attached to every gauge.
const (
	LabelScenario = "scenario"
	LabelRunID    = "run_id"
)

// defaultScenario labels entries without a name.
const defaultScenario = "default"

var help = map[string]string{
	"w_oc":         "Failure frequency of the single-circuit chain, per year.",
	"t_v_oc":       "Mean restoration time of the single-circuit chain, hours.",
	"k_a_oc":       "Accidental-downtime coefficient.",
	"k_p_oc":       "Planned-downtime coefficient.",
	"w_dk":         "Double-circuit failure frequency, per year.",
	"w_dc":         "Double-circuit failure frequency with sectional breaker, per year.",
	"math_w_ned_a": "Expected energy not supplied by accidental outages, kWh.",
	"math_w_ned_p": "Expected energy not supplied by planned outages, kWh.",
	"math_loses":   "Expected losses from energy not supplied, UAH.",
}

// Gather registers one gauge per result field in a fresh registry and sets a
// sample for each entry.
func Gather(entries []report.Entry, runID string) (prometheus.Gatherer, error) {
	reg := prometheus.NewRegistry()
	gauges := make(map[string]*prometheus.GaugeVec)

	for _, e := range entries {
		scenario := e.Name
		if scenario == "" {
			scenario = defaultScenario
		}
		for _, row := range report.Rows(e.Result) {
			g, ok := gauges[row.Key]
			if !ok {
				g = prometheus.NewGaugeVec(prometheus.GaugeOpts{
					Namespace: Namespace,
					Name:      row.Key,
					Help:      help[row.Key],
				}, []string{LabelScenario, LabelRunID})
				if err := reg.Register(g); err != nil {
					return nil, fmt.Errorf("failed to register %s: %w", row.Key, err)
				}
				gauges[row.Key] = g
			}
			g.WithLabelValues(scenario, runID).Set(float64(row.Value))
		}
	}
	return reg, nil
}

// WriteTextfile writes the gauges for entries to path. The file is written
// atomically through a temporary file in the same directory.
func WriteTextfile(path string, entries []report.Entry, runID string) error {
	g, err := Gather(entries, runID)
	if err != nil {
		return err
	}
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("failed to write metrics file: %w", err)
	}
	return nil
}
