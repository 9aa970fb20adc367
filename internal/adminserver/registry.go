// Package adminserver is a small read-only HTTP surface for inspecting
// live transaction contexts, playing the debugging role the transaction
// manager would provide in a real deployment (the transaction manager
// itself is an external collaborator this repository does not implement).
package adminserver

import (
	"sync"

	"github.com/coredb/tinytxn/txn"
)

// Registry tracks the transaction contexts currently owned by the demo
// harness, keyed by transaction id, so the admin server can list and
// describe them. Nothing in the txn package depends on Registry; it
// exists purely for cmd/txnsim to have something to expose over HTTP.
type Registry struct {
	mu    sync.RWMutex
	byTxn map[uint64]*txn.Context
}

func NewRegistry() *Registry {
	return &Registry{byTxn: make(map[uint64]*txn.Context)}
}

func (r *Registry) Put(c *txn.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.byTxn[c.TransactionID()] = c
}

func (r *Registry) Remove(transactionID uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.byTxn, transactionID)
}

func (r *Registry) Get(transactionID uint64) (*txn.Context, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.byTxn[transactionID]
	return c, ok
}

// List returns a snapshot of every tracked transaction id.
func (r *Registry) List() []uint64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	ids := make([]uint64, 0, len(r.byTxn))
	for id := range r.byTxn {
		ids = append(ids, id)
	}
	return ids
}
