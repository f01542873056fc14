package http_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/leandroveron1110/locus-delivery/internal/backend"
	httpdelivery "github.com/leandroveron1110/locus-delivery/internal/delivery/http"
	"github.com/leandroveron1110/locus-delivery/internal/identity"
	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/projection"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type svcStub struct {
	orders       func(filter projection.QuickFilter, search string) []models.Order
	counts       func() map[projection.QuickFilter]int
	order        func(id string) (models.Order, bool)
	available    func(id string) ([]models.OrderStatus, bool)
	changeStatus func(ctx context.Context, id string, target models.OrderStatus) (models.Order, error)
	switched     []string
}

var _ httpdelivery.OrderService = (*svcStub)(nil)

func (s *svcStub) Orders(filter projection.QuickFilter, search string) []models.Order {
	if s.orders != nil {
		return s.orders(filter, search)
	}
	return nil
}

func (s *svcStub) FilterCounts() map[projection.QuickFilter]int {
	if s.counts != nil {
		return s.counts()
	}
	return map[projection.QuickFilter]int{}
}

func (s *svcStub) Order(id string) (models.Order, bool) {
	if s.order != nil {
		return s.order(id)
	}
	return models.Order{}, false
}

func (s *svcStub) AvailableActions(id string) ([]models.OrderStatus, bool) {
	if s.available != nil {
		return s.available(id)
	}
	return nil, false
}

func (s *svcStub) ChangeStatus(ctx context.Context, id string, target models.OrderStatus) (models.Order, error) {
	if s.changeStatus != nil {
		return s.changeStatus(ctx, id, target)
	}
	return models.Order{}, fmt.Errorf("not implemented")
}

func (s *svcStub) CompanyID() string { return "dc-1" }

func (s *svcStub) SwitchCompany(_ context.Context, companyID string) error {
	s.switched = append(s.switched, companyID)
	return nil
}

type proxyStub struct {
	login      func(creds backend.Credentials) (backend.AuthResponse, error)
	zones      func(companyID string) ([]models.Zone, error)
	createZone func(zone models.Zone) (models.Zone, error)
}

var _ httpdelivery.BackendProxy = (*proxyStub)(nil)

func (p *proxyStub) Login(_ context.Context, creds backend.Credentials) (backend.AuthResponse, error) {
	if p.login != nil {
		return p.login(creds)
	}
	return backend.AuthResponse{}, fmt.Errorf("not implemented")
}

func (p *proxyStub) Register(_ context.Context, _ backend.RegisterPayload) (backend.AuthResponse, error) {
	return backend.AuthResponse{}, fmt.Errorf("not implemented")
}

func (p *proxyStub) CompanyByID(_ context.Context, companyID string) (models.DeliveryCompany, error) {
	return models.DeliveryCompany{ID: companyID, Name: "Moto Norte", IsActive: true}, nil
}

func (p *proxyStub) ZonesByCompany(_ context.Context, companyID string) ([]models.Zone, error) {
	if p.zones != nil {
		return p.zones(companyID)
	}
	return nil, nil
}

func (p *proxyStub) CreateZone(_ context.Context, zone models.Zone) (models.Zone, error) {
	if p.createZone != nil {
		return p.createZone(zone)
	}
	return zone, nil
}

func (p *proxyStub) UpdateZone(_ context.Context, zone models.Zone) (models.Zone, error) {
	return zone, nil
}

func (p *proxyStub) DeleteZone(_ context.Context, _ string) error { return nil }

func newRouter(svc *svcStub, api *proxyStub) *gin.Engine {
	h := httpdelivery.NewHandler(svc, api, identity.New("dc-1"))
	return h.InitRoutes()
}

func TestGetOrders_OK(t *testing.T) {
	svc := &svcStub{
		orders: func(filter projection.QuickFilter, search string) []models.Order {
			require.Equal(t, projection.FilterPending, filter)
			require.Equal(t, "maria", search)
			return []models.Order{{ID: "o1", BusinessID: "b1", Status: models.StatusDeliveryPending, CreatedAt: time.Now()}}
		},
	}
	r := newRouter(svc, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?filter=pending&search=maria", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"data":[`)
	require.Contains(t, w.Body.String(), `"id":"o1"`)
}

func TestGetOrders_UnknownFilter400(t *testing.T) {
	r := newRouter(&svcStub{}, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders?filter=bogus", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "unknown filter")
}

func TestGetOrderByID_NotFound(t *testing.T) {
	r := newRouter(&svcStub{}, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/ghost", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetOrderActions_OK(t *testing.T) {
	svc := &svcStub{
		order: func(id string) (models.Order, bool) {
			return models.Order{ID: id, Status: models.StatusDeliveryPending}, true
		},
		available: func(id string) ([]models.OrderStatus, bool) {
			return []models.OrderStatus{models.StatusDeliveryAccepted, models.StatusDeliveryRejected}, true
		},
	}
	r := newRouter(svc, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/orders/o1/actions", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"DELIVERY_ACCEPTED"`)
	require.Contains(t, w.Body.String(), `"DELIVERY_REJECTED"`)
}

func TestChangeOrderStatus_OK(t *testing.T) {
	svc := &svcStub{
		changeStatus: func(_ context.Context, id string, target models.OrderStatus) (models.Order, error) {
			require.Equal(t, "o1", id)
			require.Equal(t, models.StatusDelivered, target)
			return models.Order{ID: id, Status: models.StatusOutForDelivery}, nil
		},
	}
	r := newRouter(svc, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"status":"DELIVERED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"status":"OUT_FOR_DELIVERY"`,
		"response carries the server-confirmed status")
}

func TestChangeOrderStatus_UnknownStatus400(t *testing.T) {
	r := newRouter(&svcStub{}, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"status":"TELEPORTED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestChangeOrderStatus_BackendErrorKeepsStatusCode(t *testing.T) {
	svc := &svcStub{
		changeStatus: func(_ context.Context, _ string, _ models.OrderStatus) (models.Order, error) {
			return models.Order{}, &backend.APIError{
				StatusCode: http.StatusConflict,
				Message:    "illegal transition",
				Context:    "update order status",
			}
		},
	}
	r := newRouter(svc, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/orders/o1/status",
		strings.NewReader(`{"status":"DELIVERED"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusConflict, w.Code)
	require.Contains(t, w.Body.String(), "illegal transition")
}

func TestLogin_SwitchesCompany(t *testing.T) {
	svc := &svcStub{}
	api := &proxyStub{
		login: func(creds backend.Credentials) (backend.AuthResponse, error) {
			require.Equal(t, "rider@example.com", creds.Email)
			return backend.AuthResponse{AccessToken: "tok", CompanyID: "dc-9"}, nil
		},
	}
	r := newRouter(svc, api)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login",
		strings.NewReader(`{"email":"rider@example.com","password":"pw"}`))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, []string{"dc-9"}, svc.switched)
}

func TestCreateZone_TimeWindowValidated(t *testing.T) {
	r := newRouter(&svcStub{}, &proxyStub{})

	body := `{"name":"centro","price":1500,"hasTimeLimit":true,"isActive":true,
	          "geometry":{"type":"Polygon","coordinates":[[[0,0],[0,1],[1,1],[0,0]]]}}`
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/zones", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "startTime")
}

func TestNoRoute_APIPrefix(t *testing.T) {
	r := newRouter(&svcStub{}, &proxyStub{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/unknown", nil)
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNotFound, w.Code)
	require.Contains(t, w.Body.String(), "not found")
}
