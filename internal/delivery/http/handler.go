package http

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/leandroveron1110/locus-delivery/internal/backend"
	"github.com/leandroveron1110/locus-delivery/internal/identity"
	"github.com/leandroveron1110/locus-delivery/internal/models"
	"github.com/leandroveron1110/locus-delivery/internal/projection"

	_ "github.com/leandroveron1110/locus-delivery/docs"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// OrderService is the dashboard session surface the handlers render.
type OrderService interface {
	Orders(filter projection.QuickFilter, search string) []models.Order
	FilterCounts() map[projection.QuickFilter]int
	Order(id string) (models.Order, bool)
	AvailableActions(id string) ([]models.OrderStatus, bool)
	ChangeStatus(ctx context.Context, id string, target models.OrderStatus) (models.Order, error)
	CompanyID() string
	SwitchCompany(ctx context.Context, companyID string) error
}

// BackendProxy covers the portal surfaces that pass straight through to the
// order backend: auth, company profile and zone CRUD.
type BackendProxy interface {
	Login(ctx context.Context, creds backend.Credentials) (backend.AuthResponse, error)
	Register(ctx context.Context, payload backend.RegisterPayload) (backend.AuthResponse, error)
	CompanyByID(ctx context.Context, companyID string) (models.DeliveryCompany, error)
	ZonesByCompany(ctx context.Context, companyID string) ([]models.Zone, error)
	CreateZone(ctx context.Context, zone models.Zone) (models.Zone, error)
	UpdateZone(ctx context.Context, zone models.Zone) (models.Zone, error)
	DeleteZone(ctx context.Context, zoneID string) error
}

type Handler struct {
	svc OrderService
	api BackendProxy
	id  *identity.Identity
}

func NewHandler(svc OrderService, api BackendProxy, id *identity.Identity) *Handler {
	return &Handler{svc: svc, api: api, id: id}
}

type ordersResponse struct {
	Data []models.Order `json:"data"`
}

func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.Default()

	auth := router.Group("/api/auth")
	{
		auth.POST("/login", h.Login)
		auth.POST("/register", h.Register)
	}

	api := router.Group("/api")
	{
		api.GET("/orders", h.GetOrders)
		api.GET("/orders/filters", h.GetFilterCounts)
		api.GET("/orders/:id", h.GetOrderByID)
		api.GET("/orders/:id/actions", h.GetOrderActions)
		api.PATCH("/orders/:id/status", h.ChangeOrderStatus)

		api.GET("/company", h.GetCompanyProfile)

		api.GET("/zones", h.GetZones)
		api.POST("/zones", h.CreateZone)
		api.PUT("/zones/:id", h.UpdateZone)
		api.DELETE("/zones/:id", h.DeleteZone)
	}

	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"message": "not found"})
			return
		}
		c.Status(http.StatusNotFound)
	})

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
