package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels
const (
	ResultOK       = "ok"
	ResultNoop     = "noop"
	ResultInvalid  = "invalid"
	ResultConflict = "conflict"
	ResultError    = "error"
	ResultListSync = "list_sync_failed"
)

var (
	// MembershipOps counts list membership operations by op (add, remove, toggle) and result
	MembershipOps = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gtm_membership_ops_total",
		Help: "List membership operations by operation and result.",
	}, []string{"op", "result"})

	// FormSubmissions counts form submissions by record kind and result
	FormSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gtm_form_submissions_total",
		Help: "Form submissions by record kind and result.",
	}, []string{"kind", "result"})

	// OrphanedMembers counts member references skipped because the entity no longer exists
	OrphanedMembers = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gtm_orphaned_members_total",
		Help: "List member references that did not resolve to an entity.",
	})
)
