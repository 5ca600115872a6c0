package statistics

import (
	"github.com/markusressel/fanplate/internal/control"
	"github.com/prometheus/client_golang/prometheus"
)

const controllerSubsystem = "controller"

type ControllerCollector struct {
	controllers []*control.Controller

	appliedDuty    *prometheus.Desc
	lastValidDuty  *prometheus.Desc
	avgAppliedDuty *prometheus.Desc
	maxAppliedDuty *prometheus.Desc
	iterations     *prometheus.Desc
	actions        *prometheus.Desc
	errors         *prometheus.Desc
	sensorValue    *prometheus.Desc
	angle          *prometheus.Desc
}

func NewControllerCollector(controllers []*control.Controller) *ControllerCollector {
	return &ControllerCollector{
		controllers: controllers,
		appliedDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "applied_duty"),
			"Duty cycle most recently committed to the PWM output",
			[]string{"id"}, nil,
		),
		lastValidDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "last_valid_duty"),
			"Duty cycle of the last successful ramp or degrade sequence",
			[]string{"id"}, nil,
		),
		avgAppliedDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "avg_applied_duty"),
			"Rolling average of the applied duty cycle",
			[]string{"id"}, nil,
		),
		maxAppliedDuty: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "max_applied_duty"),
			"Maximum of the applied duty cycle within the rolling window",
			[]string{"id"}, nil,
		),
		iterations: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "iterations_total"),
			"Number of control loop iterations",
			[]string{"id"}, nil,
		),
		actions: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "actions_total"),
			"Number of resolved actions by kind",
			[]string{"id", "action"}, nil,
		),
		errors: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "errors_total"),
			"Number of input and output errors",
			[]string{"id"}, nil,
		),
		sensorValue: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "sensor_value"),
			"Most recent raw ADC reading",
			[]string{"id"}, nil,
		),
		angle: prometheus.NewDesc(prometheus.BuildFQName(namespace, controllerSubsystem, "angle"),
			"Angle label of the most recent ADC reading",
			[]string{"id"}, nil,
		),
	}
}

func (collector *ControllerCollector) Describe(ch chan<- *prometheus.Desc) {
	ch <- collector.appliedDuty
	ch <- collector.lastValidDuty
	ch <- collector.avgAppliedDuty
	ch <- collector.maxAppliedDuty
	ch <- collector.iterations
	ch <- collector.actions
	ch <- collector.errors
	ch <- collector.sensorValue
	ch <- collector.angle
}

// Collect implements required collect function for all prometheus collectors
func (collector *ControllerCollector) Collect(ch chan<- prometheus.Metric) {
	for _, contr := range collector.controllers {
		stats := contr.GetStatistics()
		id := contr.GetId()

		ch <- prometheus.MustNewConstMetric(collector.appliedDuty, prometheus.GaugeValue, float64(stats.AppliedDuty), id)
		ch <- prometheus.MustNewConstMetric(collector.lastValidDuty, prometheus.GaugeValue, float64(stats.LastValidDuty), id)
		ch <- prometheus.MustNewConstMetric(collector.avgAppliedDuty, prometheus.GaugeValue, stats.AvgAppliedDuty, id)
		ch <- prometheus.MustNewConstMetric(collector.maxAppliedDuty, prometheus.GaugeValue, stats.MaxAppliedDuty, id)
		ch <- prometheus.MustNewConstMetric(collector.iterations, prometheus.CounterValue, float64(stats.Iterations), id)
		ch <- prometheus.MustNewConstMetric(collector.errors, prometheus.CounterValue, float64(stats.ErrorCount), id)

		ch <- prometheus.MustNewConstMetric(collector.actions, prometheus.CounterValue, float64(stats.RampCount), id, control.ActionRamp.String())
		ch <- prometheus.MustNewConstMetric(collector.actions, prometheus.CounterValue, float64(stats.DegradeCount), id, control.ActionDegrade.String())
		ch <- prometheus.MustNewConstMetric(collector.actions, prometheus.CounterValue, float64(stats.HoldCount), id, control.ActionHold.String())
		ch <- prometheus.MustNewConstMetric(collector.actions, prometheus.CounterValue, float64(stats.RejectedCount), id, control.ActionRejected.String())

		if stats.LastSample != nil {
			ch <- prometheus.MustNewConstMetric(collector.sensorValue, prometheus.GaugeValue, float64(stats.LastSample.Raw), id)
			ch <- prometheus.MustNewConstMetric(collector.angle, prometheus.GaugeValue, float64(stats.LastSample.Angle), id)
		}
	}
}
