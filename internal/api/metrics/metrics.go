// Package metrics defines and registers all custom Prometheus metrics for the
// client registry API. It is the single source of truth for metric names,
// labels, and help strings. Metrics self-register with the default registry
// via promauto at package init.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "registry"

// TokensIssuedTotal counts bearer tokens issued by POST /jwt.
var TokensIssuedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tokens_issued_total",
		Help:      "Total number of JWTs successfully issued.",
	},
)

// TokenRejectionsTotal counts token requests for unknown emails.
var TokenRejectionsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "token_rejections_total",
		Help:      "Total number of token requests rejected because no user exists for the email.",
	},
)

// UsersCreatedTotal counts new user documents.
// Label:
//   - role: "admin" or "user", as assigned from the allowlist
var UsersCreatedTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "users_created_total",
		Help:      "Total number of users created, by assigned role.",
	},
	[]string{"role"},
)

// ClientUpsertsTotal counts create-or-update requests for client records.
// Label:
//   - outcome: "inserted", "updated", or "duplicate"
var ClientUpsertsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "client_upserts_total",
		Help:      "Total number of client-information submissions, by outcome.",
	},
	[]string{"outcome"},
)
