// Package channel holds the live update connection for one dashboard
// session: a single websocket to the event backend, joined to the
// company's delivery room, translating push events into order store
// mutations until it is stopped.
package channel

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/models"
)

const (
	EventNewOrderAssigned    = "newOrderAssigned"
	EventOrderReadyForPickup = "order_ready_for_delivery"
	EventOrderStatusUpdated  = "order_status_updated"
	eventJoinRole            = "join_role"
)

// Sink is the send-only handle into the store's mutation API. The channel
// never reads the store.
type Sink interface {
	Add(ord models.Order) bool
	UpdateStatus(id string, status models.OrderStatus) bool
}

type frame struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

type joinPayload struct {
	Role string `json:"role"`
	ID   string `json:"id"`
}

type statusPayload struct {
	OrderID string             `json:"orderId"`
	Status  models.OrderStatus `json:"status"`
}

// Channel is one live connection per mounted dashboard view. Lifecycle:
// disconnected until Run, connected after the dial+join handshake, torn
// down unconditionally by Stop or context cancellation.
type Channel struct {
	url       string
	companyID string
	sink      Sink
	dialer    *websocket.Dialer
	log       *logrus.Entry

	mu      sync.Mutex
	conn    *websocket.Conn
	stopped bool
}

func New(url, companyID string, sink Sink) *Channel {
	return &Channel{
		url:       url,
		companyID: companyID,
		sink:      sink,
		dialer:    websocket.DefaultDialer,
		log: logrus.WithFields(logrus.Fields{
			"component": "channel",
			"company":   companyID,
		}),
	}
}

// Run dials the event backend, announces the delivery role for the company
// and then dispatches inbound events until the connection drops or the
// channel is stopped. It returns nil on a clean stop.
func (c *Channel) Run(ctx context.Context) error {
	if c.companyID == "" {
		return errors.New("channel: empty company id")
	}

	conn, _, err := c.dialer.DialContext(ctx, c.url, nil)
	if err != nil {
		return err
	}

	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		conn.Close()
		return nil
	}
	c.conn = conn
	c.mu.Unlock()
	defer conn.Close()

	join := frame{Event: eventJoinRole}
	join.Data, _ = json.Marshal(joinPayload{Role: "delivery", ID: c.companyID})
	if err := conn.WriteJSON(join); err != nil {
		c.Stop()
		return err
	}
	c.log.Info("connected to event channel")

	// Unblock the read loop when the context ends.
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			c.Stop()
		case <-done:
		}
	}()

	for {
		var f frame
		if err := conn.ReadJSON(&f); err != nil {
			if c.isStopped() || ctx.Err() != nil {
				return nil
			}
			if websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				c.log.Info("event channel closed by server")
				return nil
			}
			var nerr net.Error
			if errors.As(err, &nerr) {
				c.log.WithError(err).Warn("event channel dropped")
			}
			return err
		}
		c.dispatch(f)
	}
}

func (c *Channel) dispatch(f frame) {
	eventsReceived.WithLabelValues(f.Event).Inc()

	// Events races with Stop: once the session is torn down, a frame that
	// was already read must not mutate the store.
	if c.isStopped() {
		return
	}

	switch f.Event {
	case EventNewOrderAssigned:
		var ord models.Order
		if err := json.Unmarshal(f.Data, &ord); err != nil || ord.ID == "" {
			c.log.WithError(err).Warn("dropping malformed order event")
			return
		}
		if c.sink.Add(ord) {
			eventsApplied.WithLabelValues(f.Event).Inc()
			c.log.WithField("order", ord.ID).Info("order assigned")
		}
	case EventOrderReadyForPickup, EventOrderStatusUpdated:
		var p statusPayload
		if err := json.Unmarshal(f.Data, &p); err != nil || p.OrderID == "" {
			c.log.WithError(err).Warn("dropping malformed status event")
			return
		}
		if !p.Status.Valid() {
			c.log.WithFields(logrus.Fields{"order": p.OrderID, "status": p.Status}).
				Warn("dropping event with unknown status")
			return
		}
		if c.sink.UpdateStatus(p.OrderID, p.Status) {
			eventsApplied.WithLabelValues(f.Event).Inc()
		}
	default:
		c.log.WithField("event", f.Event).Debug("ignoring event")
	}
}

func (c *Channel) isStopped() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stopped
}

// Stop tears the connection down. Safe to call more than once and before
// Run. A frame already past the stopped check may still reach the sink;
// the hard cut-off is Run returning, which callers wait for on teardown.
func (c *Channel) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	c.stopped = true
	if c.conn != nil {
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second))
		c.conn.Close()
		c.conn = nil
	}
}
