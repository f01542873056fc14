// Package projection computes the order list the portal actually shows:
// a visibility rule over payment state, an optional quick filter, an
// optional free-text search, and a priority+recency sort. The whole
// pipeline is pure; recomputing with the same inputs yields the same output.
package projection

import (
	"sort"
	"strings"

	"github.com/leandroveron1110/locus-delivery/internal/models"
)

// QuickFilter names a fixed subset of statuses used to coarsely group
// orders for display.
type QuickFilter string

const (
	FilterAll       QuickFilter = "all"
	FilterPending   QuickFilter = "pending"
	FilterEnRoute   QuickFilter = "en_route"
	FilterCompleted QuickFilter = "completed"
)

var filterStatuses = map[QuickFilter][]models.OrderStatus{
	FilterAll:     nil,
	FilterPending: {models.StatusDeliveryPending},
	FilterEnRoute: {
		models.StatusWaitingForPayment,
		models.StatusPendingConfirmation,
		models.StatusReadyForCustomerPickup,
		models.StatusReadyForDeliveryPickup,
		models.StatusOutForDelivery,
		models.StatusDeliveryAssigned,
		models.StatusDeliveryAccepted,
		models.StatusOutForPickup,
		models.StatusPickedUp,
		models.StatusDeliveryReassigning,
	},
	FilterCompleted: {
		models.StatusDelivered,
		models.StatusCompleted,
		models.StatusRefunded,
	},
}

// QuickFilters lists the selectable filters in display order.
func QuickFilters() []QuickFilter {
	return []QuickFilter{FilterAll, FilterPending, FilterEnRoute, FilterCompleted}
}

// Known reports whether f is one of the selectable filters.
func Known(f QuickFilter) bool {
	_, ok := filterStatuses[f]
	return ok
}

// Visible decides whether the courier should see the order at all: cash
// orders always, transfer orders only once their payment is past pending
// and not rejected. Every other payment type stays hidden.
func Visible(ord models.Order) bool {
	switch ord.PaymentType {
	case models.PaymentCash:
		return true
	case models.PaymentTransfer:
		return ord.PaymentStatus != models.PaymentPending &&
			ord.PaymentStatus != models.PaymentRejected
	}
	return false
}

// Priority ranks an order for sorting; lower sorts first.
func Priority(ord models.Order) int {
	if ord.PaymentType == models.PaymentCash && ord.Status == models.StatusPending {
		return 1
	}
	if ord.PaymentType == models.PaymentTransfer &&
		(ord.PaymentStatus == models.PaymentPending || ord.PaymentStatus == models.PaymentInProgress) {
		return 2
	}
	switch ord.Status {
	case models.StatusConfirmed, models.StatusPreparing:
		return 3
	case models.StatusCompleted, models.StatusDelivered:
		return 4
	case models.StatusCancelledByUser, models.StatusRejectedByBusiness,
		models.StatusDeliveryFailed, models.StatusDeliveryRejected:
		return 5
	}
	return 6
}

func matchesSearch(ord models.Order, term string) bool {
	return strings.Contains(strings.ToLower(ord.ID), term) ||
		strings.Contains(strings.ToLower(ord.Customer.FullName), term) ||
		strings.Contains(strings.ToLower(ord.Customer.Phone), term)
}

// Project applies visibility, quick filter, search and sort, in that order.
func Project(orders []models.Order, filter QuickFilter, search string) []models.Order {
	out := make([]models.Order, 0, len(orders))
	for _, ord := range orders {
		if Visible(ord) {
			out = append(out, ord)
		}
	}

	if statuses := filterStatuses[filter]; filter != FilterAll && len(statuses) > 0 {
		kept := out[:0]
		for _, ord := range out {
			for _, st := range statuses {
				if ord.Status == st {
					kept = append(kept, ord)
					break
				}
			}
		}
		out = kept
	}

	if term := strings.ToLower(strings.TrimSpace(search)); term != "" {
		kept := out[:0]
		for _, ord := range out {
			if matchesSearch(ord, term) {
				kept = append(kept, ord)
			}
		}
		out = kept
	}

	sort.SliceStable(out, func(i, j int) bool {
		pi, pj := Priority(out[i]), Priority(out[j])
		if pi != pj {
			return pi < pj
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// Counts returns, for every quick filter, how many visible orders it would
// keep. Feeds the filter badges in the UI.
func Counts(orders []models.Order) map[QuickFilter]int {
	visible := make([]models.Order, 0, len(orders))
	for _, ord := range orders {
		if Visible(ord) {
			visible = append(visible, ord)
		}
	}

	counts := make(map[QuickFilter]int, len(filterStatuses))
	for _, f := range QuickFilters() {
		if f == FilterAll {
			counts[f] = len(visible)
			continue
		}
		n := 0
		for _, ord := range visible {
			for _, st := range filterStatuses[f] {
				if ord.Status == st {
					n++
					break
				}
			}
		}
		counts[f] = n
	}
	return counts
}
