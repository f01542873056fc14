// Package backend is the REST client for the order-management backend. It
// shapes every failure into an APIError with an operation context before it
// reaches callers; there is no automatic retry at this layer.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/pkg/errors"

	"github.com/leandroveron1110/locus-delivery/internal/models"
)

// TokenSource yields the current bearer token, empty when not logged in.
type TokenSource func() string

type Client struct {
	baseURL string
	http    *http.Client
	token   TokenSource
}

func NewClient(baseURL string, token TokenSource) *Client {
	if token == nil {
		token = func() string { return "" }
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body, out any, opCtx string) error {
	var rd io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return errors.Wrapf(err, "%s: encode request", opCtx)
		}
		rd = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, rd)
	if err != nil {
		return errors.Wrapf(err, "%s: build request", opCtx)
	}
	req.Header.Set("Content-Type", "application/json")
	if tok := c.token(); tok != "" {
		req.Header.Set("Authorization", "Bearer "+tok)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s: request failed", opCtx)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s: read response", opCtx)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		var env envelope
		if jerr := json.Unmarshal(raw, &env); jerr == nil && env.Error != nil {
			env.Error.Context = opCtx
			if env.Error.StatusCode == 0 {
				env.Error.StatusCode = resp.StatusCode
			}
			return env.Error
		}
		var plain APIError
		if jerr := json.Unmarshal(raw, &plain); jerr == nil && plain.Message != "" {
			plain.Context = opCtx
			if plain.StatusCode == 0 {
				plain.StatusCode = resp.StatusCode
			}
			return &plain
		}
		return Generic(resp.StatusCode, opCtx, path)
	}

	if out == nil {
		return nil
	}

	// Successful bodies arrive either wrapped in the uniform envelope or as
	// the bare payload, depending on the endpoint's age.
	var env envelope
	if jerr := json.Unmarshal(raw, &env); jerr == nil && env.Data != nil {
		if uerr := json.Unmarshal(env.Data, out); uerr == nil {
			return nil
		}
	}
	if uerr := json.Unmarshal(raw, out); uerr != nil {
		return Generic(resp.StatusCode, opCtx, path)
	}
	return nil
}

// OrdersByCompany fetches every current order assigned to the company.
func (c *Client) OrdersByCompany(ctx context.Context, companyID string) ([]models.Order, error) {
	var out []models.Order
	path := fmt.Sprintf("/delivery/orders/by-company/%s", companyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "fetch company orders"); err != nil {
		return nil, err
	}
	return out, nil
}

type statusPatch struct {
	Status models.OrderStatus `json:"status"`
}

// UpdateOrderStatus requests a transition and returns the order as the
// server confirmed it. The confirmed status may differ from the requested
// one; callers must treat the response as authoritative.
func (c *Client) UpdateOrderStatus(ctx context.Context, orderID string, status models.OrderStatus) (models.Order, error) {
	var out models.Order
	path := fmt.Sprintf("/orders/%s/status", orderID)
	if err := c.do(ctx, http.MethodPatch, path, statusPatch{Status: status}, &out, "update order status"); err != nil {
		return models.Order{}, err
	}
	return out, nil
}

// CompanyByID fetches the delivery company profile.
func (c *Client) CompanyByID(ctx context.Context, companyID string) (models.DeliveryCompany, error) {
	var out models.DeliveryCompany
	path := fmt.Sprintf("/delivery/companies/%s", companyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "fetch company profile"); err != nil {
		return models.DeliveryCompany{}, err
	}
	return out, nil
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterPayload struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type AuthResponse struct {
	AccessToken string `json:"accessToken"`
	CompanyID   string `json:"companyId"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/login", creds, &out, "login"); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

func (c *Client) Register(ctx context.Context, payload RegisterPayload) (AuthResponse, error) {
	var out AuthResponse
	if err := c.do(ctx, http.MethodPost, "/auth/register", payload, &out, "register"); err != nil {
		return AuthResponse{}, err
	}
	return out, nil
}

// ZonesByCompany lists the company's delivery zones.
func (c *Client) ZonesByCompany(ctx context.Context, companyID string) ([]models.Zone, error) {
	var out []models.Zone
	path := fmt.Sprintf("/delivery/zones/by-company/%s", companyID)
	if err := c.do(ctx, http.MethodGet, path, nil, &out, "fetch zones"); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) CreateZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	var out models.Zone
	if err := c.do(ctx, http.MethodPost, "/delivery/zones", zone, &out, "create zone"); err != nil {
		return models.Zone{}, err
	}
	return out, nil
}

func (c *Client) UpdateZone(ctx context.Context, zone models.Zone) (models.Zone, error) {
	var out models.Zone
	path := fmt.Sprintf("/delivery/zones/%s", zone.ID)
	if err := c.do(ctx, http.MethodPut, path, zone, &out, "update zone"); err != nil {
		return models.Zone{}, err
	}
	return out, nil
}

func (c *Client) DeleteZone(ctx context.Context, zoneID string) error {
	path := fmt.Sprintf("/delivery/zones/%s", zoneID)
	return c.do(ctx, http.MethodDelete, path, nil, nil, "delete zone")
}
