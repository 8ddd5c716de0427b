package workerpool

import (
	"github.com/prometheus/client_golang/prometheus"
)

func init() {
	prometheus.MustRegister(pushesTotal)
	prometheus.MustRegister(popsTotal)
	prometheus.MustRegister(emptyPopsTotal)
}

var pushesTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "stacksoak",
		Subsystem: "workerpool",
		Name:      "pushes_total",
		Help:      "Total of values pushed onto the shared stack.",
	})

var popsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "stacksoak",
		Subsystem: "workerpool",
		Name:      "pops_total",
		Help:      "Total of pops that returned a value.",
	})

var emptyPopsTotal = prometheus.NewCounter(
	prometheus.CounterOpts{
		Namespace: "stacksoak",
		Subsystem: "workerpool",
		Name:      "empty_pops_total",
		Help:      "Total of pops attempted against an empty stack.",
	})
