package registry

import (
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/google/uuid"

	"github.com/osse101/InventorySystem_Go/internal/concurrency"
	"github.com/osse101/InventorySystem_Go/internal/inventory"
)

// Sentinel errors for the registry
var (
	ErrOwnerNotFound = errors.New("owner not found")
	ErrOwnerExists   = errors.New("owner already has an inventory")
)

// Factory builds the inventory for a new owner
type Factory func(owner uuid.UUID) *inventory.Inventory

// Registry holds one inventory per owning entity. Each inventory is guarded
// by its own exclusive lock, taken for the whole of a With call.
type Registry struct {
	mu          sync.RWMutex
	inventories map[uuid.UUID]*inventory.Inventory

	locks   *concurrency.LockManager[uuid.UUID]
	factory Factory
}

// New creates an empty registry. A nil factory builds plain inventories.
func New(factory Factory) *Registry {
	if factory == nil {
		factory = func(uuid.UUID) *inventory.Inventory { return inventory.New() }
	}
	return &Registry{
		inventories: make(map[uuid.UUID]*inventory.Inventory),
		locks:       concurrency.NewLockManager[uuid.UUID](),
		factory:     factory,
	}
}

// Create builds and stores the inventory for owner
func (r *Registry) Create(owner uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.inventories[owner]; exists {
		return fmt.Errorf("%w: %s", ErrOwnerExists, owner)
	}
	r.inventories[owner] = r.factory(owner)
	return nil
}

// Remove drops the owner's inventory once any in-flight With call finishes.
// The owner's mutex is kept so that callers already queued on it stay
// serialized with callers of a later Create for the same ID.
func (r *Registry) Remove(owner uuid.UUID) error {
	return r.locks.WithLock(owner, func() error {
		r.mu.Lock()
		defer r.mu.Unlock()

		if _, exists := r.inventories[owner]; !exists {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, owner)
		}
		delete(r.inventories, owner)
		return nil
	})
}

// With runs fn against the owner's inventory while holding its lock
func (r *Registry) With(owner uuid.UUID, fn func(inv *inventory.Inventory) error) error {
	return r.locks.WithLock(owner, func() error {
		inv, ok := r.get(owner)
		if !ok {
			return fmt.Errorf("%w: %s", ErrOwnerNotFound, owner)
		}
		return fn(inv)
	})
}

func (r *Registry) get(owner uuid.UUID) (*inventory.Inventory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	inv, ok := r.inventories[owner]
	return inv, ok
}

// Owners returns the registered owners sorted by ID
func (r *Registry) Owners() []uuid.UUID {
	r.mu.RLock()
	owners := make([]uuid.UUID, 0, len(r.inventories))
	for owner := range r.inventories {
		owners = append(owners, owner)
	}
	r.mu.RUnlock()

	slices.SortFunc(owners, func(a, b uuid.UUID) int {
		return slices.Compare(a[:], b[:])
	})
	return owners
}

// Len returns the number of owners
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.inventories)
}
