// Package metrics exposes inventory state as Prometheus gauges. The
// Collector is registered as a state observer and refreshed on every commit.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/rl1809/inventory-tracker/internal/core/domain"
	"github.com/rl1809/inventory-tracker/internal/core/query"
)

const namespace = "inventory"

type Collector struct {
	items        prometheus.Gauge
	departments  prometheus.Gauge
	transactions prometheus.Gauge
	lowStock     prometheus.Gauge
	commits      prometheus.Counter
}

func NewCollector(reg prometheus.Registerer) *Collector {
	c := &Collector{
		items: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "items",
			Help: "Number of items in the catalog.",
		}),
		departments: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "departments",
			Help: "Number of departments.",
		}),
		transactions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "transactions",
			Help: "Number of entries in the transaction ledger.",
		}),
		lowStock: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace, Name: "low_stock_items",
			Help: "Number of items at or below their reorder point.",
		}),
		commits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Name: "commits_total",
			Help: "Number of committed state changes since start.",
		}),
	}
	reg.MustRegister(c.items, c.departments, c.transactions, c.lowStock, c.commits)
	return c
}

// Set refreshes the gauges without counting a commit; used for the state
// loaded at start.
func (c *Collector) Set(state domain.State) {
	c.items.Set(float64(len(state.Items)))
	c.departments.Set(float64(len(state.Departments)))
	c.transactions.Set(float64(len(state.Transactions)))
	c.lowStock.Set(float64(len(query.LowStockItems(state))))
}

func (c *Collector) StateCommitted(state domain.State) {
	c.Set(state)
	c.commits.Inc()
}
