// Package identity holds the portal's current authentication state: the
// bearer token for backend calls and the delivery-company id that
// parameterizes the initial sync and the live channel. The order core only
// ever reads it.
package identity

import "sync"

type Identity struct {
	mu        sync.RWMutex
	token     string
	companyID string
}

func New(companyID string) *Identity {
	return &Identity{companyID: companyID}
}

func (i *Identity) SetSession(token, companyID string) {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.token = token
	if companyID != "" {
		i.companyID = companyID
	}
}

func (i *Identity) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.token = ""
}

func (i *Identity) Token() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.token
}

func (i *Identity) CompanyID() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.companyID
}
