// Package metrics defines and registers all custom Prometheus metrics for
// the ecomarket users API. It is the single source of truth for metric
// names, labels, and help strings.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "usuarios"

// AccountsSavedTotal counts successful account writes.
// Label:
//   - operation: "create" (id assigned by the store) or "update"
var AccountsSavedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_saved_total",
		Help:      "Total number of accounts successfully created or updated.",
	},
	[]string{"operation"},
)

// AccountsDeletedTotal counts accounts removed through the delete endpoint.
var AccountsDeletedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "accounts_deleted_total",
		Help:      "Total number of accounts deleted.",
	},
)

// LoginsTotal counts login attempts.
// Label:
//   - result: "success" or "failure"
var LoginsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "logins_total",
		Help:      "Total number of login attempts, labelled by result.",
	},
	[]string{"result"},
)
