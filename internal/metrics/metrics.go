// Package metrics exposes prometheus counters for the allocation engine.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/staffable/backend/internal/models"
)

var (
	// AllocationsCreated counts successfully committed allocations.
	AllocationsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffable_allocations_created_total",
		Help: "Number of allocations that were created successfully",
	})

	// AllocationsDeleted counts deleted allocations, each of which also
	// reversed its ledger entries.
	AllocationsDeleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffable_allocations_deleted_total",
		Help: "Number of allocations that were deleted",
	})

	// AllocationConflicts counts allocation requests refused because a day
	// would have gone over capacity.
	AllocationConflicts = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffable_allocation_conflicts_total",
		Help: "Number of allocation requests refused due to overallocation",
	})

	// AllocationRollbacks counts transactions that were rolled back due to
	// storage failures.
	AllocationRollbacks = promauto.NewCounter(prometheus.CounterOpts{
		Name: "staffable_allocation_rollbacks_total",
		Help: "Number of allocation transactions rolled back due to storage errors",
	})
)

// Handler returns the HTTP handler serving the metrics.
func Handler() http.Handler {
	return promhttp.Handler()
}

// RegisterDatabaseMetrics registers a collector for the sql.DB connection
// pool statistics. The returned function deregisters it again, tests set up
// routers repeatedly and would otherwise hit duplicate registration errors.
func RegisterDatabaseMetrics() func() {
	if models.DB == nil {
		return func() {}
	}

	sqlDB, err := models.DB.DB()
	if err != nil {
		return func() {}
	}

	collector := collectors.NewDBStatsCollector(sqlDB, "staffable")
	if err := prometheus.Register(collector); err != nil {
		return func() {}
	}

	return func() {
		prometheus.Unregister(collector)
	}
}
