package actions_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/leandroveron1110/locus-delivery/internal/actions"
	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/store"
)

type updaterStub struct {
	resp  models.Order
	err   error
	calls int
	gotID string
	gotSt models.OrderStatus
}

func (u *updaterStub) UpdateOrderStatus(_ context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	u.calls++
	u.gotID = orderID
	u.gotSt = status
	return u.resp, u.err
}

func seeded(id string, status models.OrderStatus) *store.Orders {
	s := store.New()
	s.Add(models.Order{ID: id, BusinessID: "biz", Status: status, CreatedAt: time.Now()})
	return s
}

func TestAvailable_Table(t *testing.T) {
	cases := []struct {
		current models.OrderStatus
		want    []models.OrderStatus
	}{
		{models.StatusReadyForDeliveryPickup, []models.OrderStatus{models.StatusDeliveryAccepted, models.StatusDeliveryRejected}},
		{models.StatusDeliveryPending, []models.OrderStatus{models.StatusDeliveryAccepted, models.StatusDeliveryRejected}},
		{models.StatusDeliveryAssigned, []models.OrderStatus{models.StatusDeliveryAccepted, models.StatusDeliveryRejected}},
		{models.StatusDeliveryAccepted, []models.OrderStatus{models.StatusOutForPickup, models.StatusDelivered}},
		{models.StatusOutForPickup, []models.OrderStatus{models.StatusPickedUp}},
		{models.StatusPickedUp, []models.OrderStatus{models.StatusOutForDelivery}},
		{models.StatusOutForDelivery, []models.OrderStatus{models.StatusDelivered, models.StatusDeliveryFailed}},
		{models.StatusDelivered, []models.OrderStatus{}},
		{models.StatusCancelledByUser, []models.OrderStatus{}},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, actions.Available(tc.current), "current=%s", tc.current)
	}
}

func TestAllowed(t *testing.T) {
	require.True(t, actions.Allowed(models.StatusDeliveryPending, models.StatusDeliveryAccepted))
	require.False(t, actions.Allowed(models.StatusDelivered, models.StatusDeliveryAccepted))
}

func TestChangeStatus_ServerResponseWins(t *testing.T) {
	st := seeded("ord-1", models.StatusOutForDelivery)
	api := &updaterStub{
		// Server overrides the requested DELIVERED.
		resp: models.Order{ID: "ord-1", Status: models.StatusOutForDelivery},
	}
	c := actions.NewController(api, st)

	updated, err := c.ChangeStatus(context.Background(), "ord-1", models.StatusDelivered)
	require.NoError(t, err)
	require.Equal(t, models.StatusOutForDelivery, updated.Status)

	require.Equal(t, "ord-1", api.gotID)
	require.Equal(t, models.StatusDelivered, api.gotSt, "requested status sent as-is")

	got, ok := st.Get("ord-1")
	require.True(t, ok)
	require.Equal(t, models.StatusOutForDelivery, got.Status,
		"store must hold the confirmed status, not the requested one")
}

func TestChangeStatus_FailureLeavesStoreUntouched(t *testing.T) {
	st := seeded("ord-1", models.StatusDeliveryPending)
	api := &updaterStub{err: fmt.Errorf("backend down")}
	c := actions.NewController(api, st)

	_, err := c.ChangeStatus(context.Background(), "ord-1", models.StatusDeliveryAccepted)
	require.Error(t, err)
	require.Equal(t, 1, api.calls, "no retry")

	got, _ := st.Get("ord-1")
	require.Equal(t, models.StatusDeliveryPending, got.Status,
		"no optimistic write before or after failure")
}

func TestChangeStatus_UnknownTargetRejected(t *testing.T) {
	st := seeded("ord-1", models.StatusDeliveryPending)
	api := &updaterStub{}
	c := actions.NewController(api, st)

	_, err := c.ChangeStatus(context.Background(), "ord-1", models.OrderStatus("TELEPORTED"))
	require.ErrorIs(t, err, actions.ErrUnknownStatus)
	require.Zero(t, api.calls)
}
