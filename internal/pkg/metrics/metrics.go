// Package metrics exposes prometheus instrumentation for the parcel lifecycle.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all prometheus metrics for the parcel service.
type Metrics struct {
	ParcelsCreated       prometheus.Counter
	StatusTransitions    *prometheus.CounterVec
	LockersReserved      prometheus.Counter
	LockersReleased      prometheus.Counter
	TrackingSubscription *prometheus.CounterVec
	ErrorsCount          *prometheus.CounterVec
}

// NewMetrics creates the service metrics under the given namespace and
// registers them with the given registerer. Pass a fresh registry in tests so
// parallel handler tests do not collide on registration.
func NewMetrics(reg prometheus.Registerer, namespace string) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		ParcelsCreated: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "parcels_created_total",
			Help:      "The total number of parcels created",
		}),
		StatusTransitions: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "status_transitions_total",
			Help:      "The total number of parcel status transitions by target status",
		}, []string{"status"}),
		LockersReserved: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lockers_reserved_total",
			Help:      "The total number of locker reservations",
		}),
		LockersReleased: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "lockers_released_total",
			Help:      "The total number of locker releases",
		}),
		TrackingSubscription: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tracking_subscriptions_total",
			Help:      "The total number of tracking subscription changes",
		}, []string{"action"}),
		ErrorsCount: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "errors_total",
			Help:      "The total number of errors by operation",
		}, []string{"operation"}),
	}
}
