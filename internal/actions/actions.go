// Package actions maps courier-initiated actions onto authoritative backend
// status updates and reconciles the confirmed result into the order store.
package actions

import (
	"context"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/store"
)

// next maps each current status to the statuses a courier may request from
// it. Statuses missing from the table offer no courier actions; the backend
// still has the final word on legality.
var next = map[models.OrderStatus][]models.OrderStatus{
	models.StatusReadyForDeliveryPickup: {models.StatusDeliveryAccepted, models.StatusDeliveryRejected},
	models.StatusDeliveryPending:        {models.StatusDeliveryAccepted, models.StatusDeliveryRejected},
	models.StatusDeliveryAssigned:       {models.StatusDeliveryAccepted, models.StatusDeliveryRejected},
	models.StatusDeliveryAccepted:       {models.StatusOutForPickup, models.StatusDelivered},
	models.StatusOutForPickup:           {models.StatusPickedUp},
	models.StatusPickedUp:               {models.StatusOutForDelivery},
	models.StatusOutForDelivery:         {models.StatusDelivered, models.StatusDeliveryFailed},
}

// Available returns the statuses a courier may request for an order
// currently in the given status. Derived fresh from the current status on
// every call; there is no per-order state machine instance.
func Available(current models.OrderStatus) []models.OrderStatus {
	targets := next[current]
	out := make([]models.OrderStatus, len(targets))
	copy(out, targets)
	return out
}

// Allowed reports whether target is offered from current.
func Allowed(current, target models.OrderStatus) bool {
	for _, st := range next[current] {
		if st == target {
			return true
		}
	}
	return false
}

// StatusUpdater is the slice of the backend client the controller needs.
type StatusUpdater interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error)
}

var ErrUnknownStatus = errors.New("unknown target status")

// Controller issues status updates and applies the server's answer.
type Controller struct {
	api   StatusUpdater
	store *store.Orders
	log   *logrus.Entry
}

func NewController(api StatusUpdater, st *store.Orders) *Controller {
	return &Controller{
		api:   api,
		store: st,
		log:   logrus.WithField("component", "actions"),
	}
}

// ChangeStatus requests the transition and writes back the status the
// server confirmed, which may differ from the requested one. The store is
// untouched while the call is in flight and on failure; there is no
// optimistic update and no retry.
func (c *Controller) ChangeStatus(ctx context.Context, orderID string, target models.OrderStatus) (models.Order, error) {
	if !target.Valid() {
		return models.Order{}, errors.Wrapf(ErrUnknownStatus, "%q", target)
	}

	updated, err := c.api.UpdateOrderStatus(ctx, orderID, target)
	if err != nil {
		return models.Order{}, err
	}

	if updated.Status != target {
		c.log.WithFields(logrus.Fields{
			"order":     updated.ID,
			"requested": target,
			"confirmed": updated.Status,
		}).Info("server overrode requested status")
	}

	c.store.UpdateStatus(updated.ID, updated.Status)
	return updated, nil
}
