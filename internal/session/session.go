// Package session is the composition root for one delivery-company
// dashboard view. A Session owns the order store, seeds it once per company
// id from the backend, keeps one live channel open for its lifetime and
// hands user actions to the status controller. Closing the session tears
// the channel down unconditionally.
package session

import (
	"context"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"

	"github.com/leandroveron1110/locus-delivery/internal/actions"
	"github.com/leandroveron1110/locus-delivery/internal/channel"
	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/projection"
	"github.com/leandroveron1110/locus-delivery/internal/store"
)

// API is the slice of the backend client a session needs.
type API interface {
	actions.StatusUpdater
	OrdersByCompany(ctx context.Context, companyID string) ([]models.Order, error)
}

// ChannelFactory builds the live channel for a company id. Swappable in
// tests.
type ChannelFactory func(companyID string, sink channel.Sink) *channel.Channel

type Session struct {
	api        API
	store      *store.Orders
	controller *actions.Controller
	newChannel ChannelFactory
	validate   *validator.Validate
	log        *logrus.Entry

	mu            sync.Mutex
	companyID     string
	syncedCompany string
	ch            *channel.Channel
	chDone        chan struct{}
}

func New(backendAPI API, companyID string, newChannel ChannelFactory) *Session {
	st := store.New()
	return &Session{
		api:        backendAPI,
		store:      st,
		controller: actions.NewController(backendAPI, st),
		newChannel: newChannel,
		validate:   validator.New(),
		companyID:  companyID,
		log:        logrus.WithField("component", "session"),
	}
}

func (s *Session) CompanyID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.companyID
}

// Start seeds the store and opens the live channel. Sync failures are
// returned for display but do not prevent the channel from starting;
// whatever partial results arrived stay in the store.
func (s *Session) Start(ctx context.Context) error {
	err := s.SyncOnce(ctx)
	s.startChannel()
	return err
}

// SyncOnce fetches the company's current orders and adds each to the
// store. It runs at most once per active company, does not run with an
// empty id, and never retries on its own. SwitchCompany re-arms it, so a
// company left and returned to is seeded again.
func (s *Session) SyncOnce(ctx context.Context) error {
	s.mu.Lock()
	company := s.companyID
	if company == "" || company == s.syncedCompany {
		s.mu.Unlock()
		return nil
	}
	s.syncedCompany = company
	s.mu.Unlock()

	orders, err := s.api.OrdersByCompany(ctx, company)
	if err != nil {
		s.log.WithError(err).Error("initial sync failed")
		return err
	}
	for _, ord := range orders {
		s.ingest(ord)
	}
	s.log.WithFields(logrus.Fields{"company": company, "orders": len(orders)}).
		Info("initial sync complete")
	return nil
}

// ingest validates an inbound order before it may enter the store. Records
// that fail validation are logged and skipped rather than failing the
// whole sync.
func (s *Session) ingest(ord models.Order) {
	if err := s.validate.Struct(ord); err != nil {
		s.log.WithError(err).WithField("order", ord.ID).Warn("skip invalid order")
		return
	}
	s.store.Add(ord)
}

// Add implements channel.Sink with the same validation gate as the sync
// path.
func (s *Session) Add(ord models.Order) bool {
	if err := s.validate.Struct(ord); err != nil {
		s.log.WithError(err).WithField("order", ord.ID).Warn("skip invalid pushed order")
		return false
	}
	return s.store.Add(ord)
}

// UpdateStatus implements channel.Sink.
func (s *Session) UpdateStatus(id string, status models.OrderStatus) bool {
	return s.store.UpdateStatus(id, status)
}

// startChannel opens the live connection. Its lifetime is bound to the
// session, not to whichever request context triggered it; teardown goes
// through the channel's explicit stop signal.
func (s *Session) startChannel() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.newChannel == nil || s.companyID == "" || s.ch != nil {
		return
	}
	ch := s.newChannel(s.companyID, s)
	done := make(chan struct{})
	s.ch = ch
	s.chDone = done
	go func() {
		defer close(done)
		if err := ch.Run(context.Background()); err != nil {
			s.log.WithError(err).Error("live channel stopped")
		}
	}()
}

// SwitchCompany re-targets the session: the old channel is torn down, the
// store is discarded whole and the new company is synced and joined. The
// sync gate is cleared along with the store, so returning to a previously
// viewed company seeds it from scratch.
func (s *Session) SwitchCompany(ctx context.Context, companyID string) error {
	s.stopChannel()

	s.mu.Lock()
	s.companyID = companyID
	s.syncedCompany = ""
	s.mu.Unlock()
	s.store.Reset()

	if companyID == "" {
		return nil
	}
	err := s.SyncOnce(ctx)
	s.startChannel()
	return err
}

func (s *Session) stopChannel() {
	s.mu.Lock()
	ch, done := s.ch, s.chDone
	s.ch, s.chDone = nil, nil
	s.mu.Unlock()

	if ch != nil {
		ch.Stop()
		// Run returning is the point after which no event reaches the store.
		<-done
	}
}

// Close tears the live channel down. In-flight backend calls are not
// cancelled here; their late results land on a store nobody observes.
func (s *Session) Close() {
	s.stopChannel()
	s.log.Info("session closed")
}

// Orders returns the projected, display-ready list.
func (s *Session) Orders(filter projection.QuickFilter, search string) []models.Order {
	return projection.Project(s.store.List(), filter, search)
}

// FilterCounts returns per-quick-filter order counts over the visible list.
func (s *Session) FilterCounts() map[projection.QuickFilter]int {
	return projection.Counts(s.store.List())
}

// Order returns a single order by id.
func (s *Session) Order(id string) (models.Order, bool) {
	return s.store.Get(id)
}

// AvailableActions derives the courier's next statuses from the order's
// current status.
func (s *Session) AvailableActions(id string) ([]models.OrderStatus, bool) {
	ord, ok := s.store.Get(id)
	if !ok {
		return nil, false
	}
	return actions.Available(ord.Status), true
}

// ChangeStatus forwards to the status controller.
func (s *Session) ChangeStatus(ctx context.Context, id string, target models.OrderStatus) (models.Order, error) {
	return s.controller.ChangeStatus(ctx, id, target)
}
