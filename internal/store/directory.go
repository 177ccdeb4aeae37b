package store

import (
	"sync"

	"github.com/onlybot12/costumer-service/internal/domain"
)

// Directory maps live connection ids to the customer or agent they
// represent. A connection is never both.
type Directory struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
	agents    map[string]*domain.Agent
}

// NewDirectory creates an empty directory.
func NewDirectory() *Directory {
	return &Directory{
		customers: make(map[string]*domain.Customer),
		agents:    make(map[string]*domain.Agent),
	}
}

// PutCustomer stores the customer record for a connection. A repeated
// registration overwrites the previous record.
func (d *Directory) PutCustomer(c *domain.Customer) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.customers[c.ConnectionID] = c
}

// PutAgent stores the agent record for a connection.
func (d *Directory) PutAgent(a *domain.Agent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.agents[a.ConnectionID] = a
}

// Customer resolves a connection to its customer record.
func (d *Directory) Customer(connectionID string) (*domain.Customer, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	c, ok := d.customers[connectionID]
	return c, ok
}

// Agent resolves a connection to its agent record.
func (d *Directory) Agent(connectionID string) (*domain.Agent, bool) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	a, ok := d.agents[connectionID]
	return a, ok
}

// Remove drops whatever record a connection holds and returns it so the
// caller can apply session-state side effects. Both results are nil for an
// unknown connection.
func (d *Directory) Remove(connectionID string) (*domain.Customer, *domain.Agent) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if c, ok := d.customers[connectionID]; ok {
		delete(d.customers, connectionID)
		return c, nil
	}
	if a, ok := d.agents[connectionID]; ok {
		delete(d.agents, connectionID)
		return nil, a
	}
	return nil, nil
}
