package inventory

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/osse101/InventorySystem_Go/internal/domain"
)

// Recorder receives the outcome of every registration and ledger operation
type Recorder interface {
	RecordOperation(op string, code domain.ErrorCode)
	RecordQuantity(item string, delta int)
}

type nopRecorder struct{}

func (nopRecorder) RecordOperation(string, domain.ErrorCode) {}
func (nopRecorder) RecordQuantity(string, int)               {}

// Option configures an Inventory
type Option func(*Inventory)

// WithLogger sets the logger used for operation traces
func WithLogger(l *slog.Logger) Option {
	return func(inv *Inventory) {
		if l != nil {
			inv.log = l
		}
	}
}

// WithRecorder sets the operation recorder (metrics)
func WithRecorder(r Recorder) Option {
	return func(inv *Inventory) {
		if r != nil {
			inv.recorder = r
		}
	}
}

// Inventory is an actor's inventory component: the allowed stats, the item
// type catalog and the owned quantity and equip state of every item type.
//
// An Inventory is not safe for concurrent use. Hosts that share one across
// goroutines go through registry.Registry.
type Inventory struct {
	stats     map[domain.StatName]struct{}
	statOrder []domain.StatName

	// entries and order form the ledger; order is insertion order
	entries map[string]*domain.InventoryEntry
	order   []string

	log      *slog.Logger
	recorder Recorder
}

// New creates an empty Inventory
func New(opts ...Option) *Inventory {
	inv := &Inventory{
		stats:    make(map[domain.StatName]struct{}),
		entries:  make(map[string]*domain.InventoryEntry),
		log:      slog.Default(),
		recorder: nopRecorder{},
	}
	for _, opt := range opts {
		opt(inv)
	}
	return inv
}

// BeginPlay is called by the host when the owning actor enters play
func (inv *Inventory) BeginPlay(ctx context.Context) error {
	inv.log.DebugContext(ctx, LogMsgBeginPlay,
		"stats", len(inv.statOrder),
		"item_types", len(inv.order))
	return nil
}

// Tick is called by the host every frame. The inventory has no per-frame work.
func (inv *Inventory) Tick(context.Context, time.Duration) {}

// ==================== Stat registry ====================

// RegisterStat adds a stat that item types may boost
func (inv *Inventory) RegisterStat(name domain.StatName) error {
	if _, exists := inv.stats[name]; exists {
		return inv.finish(domain.OpRegisterStat, string(name), fmt.Errorf("%w: %q", domain.ErrDuplicateStat, name))
	}
	inv.insertStat(name)
	return inv.finish(domain.OpRegisterStat, string(name), nil)
}

// RegisterStats adds several stats at once. If any name is already registered
// or repeated in names, nothing is registered.
func (inv *Inventory) RegisterStats(names ...domain.StatName) error {
	seen := make(map[domain.StatName]struct{}, len(names))
	for _, name := range names {
		_, registered := inv.stats[name]
		_, repeated := seen[name]
		if registered || repeated {
			return inv.finish(domain.OpRegisterStat, string(name), fmt.Errorf("%w: %q", domain.ErrDuplicateStat, name))
		}
		seen[name] = struct{}{}
	}

	for _, name := range names {
		inv.insertStat(name)
		_ = inv.finish(domain.OpRegisterStat, string(name), nil)
	}
	return nil
}

func (inv *Inventory) insertStat(name domain.StatName) {
	inv.stats[name] = struct{}{}
	inv.statOrder = append(inv.statOrder, name)
}

// ListStats returns the registered stats in registration order
func (inv *Inventory) ListStats() []domain.StatName {
	out := make([]domain.StatName, len(inv.statOrder))
	copy(out, inv.statOrder)
	return out
}

// HasStat reports whether name is registered
func (inv *Inventory) HasStat(name domain.StatName) bool {
	_, ok := inv.stats[name]
	return ok
}

// ==================== Item catalog ====================

// RegisterItemType adds an item type to the catalog with a quantity of 0.
// Every stat in def.StatBoosts must already be registered. Negative maximum
// quantities and boost durations are stored as 0.
func (inv *Inventory) RegisterItemType(def domain.ItemDefinition) error {
	for stat := range def.StatBoosts {
		if !inv.HasStat(stat) {
			return inv.finish(domain.OpRegisterItemType, def.Name,
				fmt.Errorf("%w: item %q uses stat %q", domain.ErrInvalidStatUsed, def.Name, stat))
		}
	}

	if _, exists := inv.entries[def.Name]; exists {
		return inv.finish(domain.OpRegisterItemType, def.Name, fmt.Errorf("%w: %q", domain.ErrDuplicateItemType, def.Name))
	}

	inv.entries[def.Name] = &domain.InventoryEntry{ItemDefinition: def.Normalized()}
	inv.order = append(inv.order, def.Name)
	return inv.finish(domain.OpRegisterItemType, def.Name, nil)
}

// lookup resolves an item type name against the ledger
func (inv *Inventory) lookup(name string) (*domain.InventoryEntry, error) {
	entry, ok := inv.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidItemType, name)
	}
	return entry, nil
}

// finish records and traces the outcome of an operation and returns err unchanged
func (inv *Inventory) finish(op, item string, err error) error {
	code := domain.CodeOf(err)
	inv.recorder.RecordOperation(op, code)

	attrs := []any{"operation", op, "item", item, "result", code.String()}
	if entry, ok := inv.entries[item]; ok && op != domain.OpRegisterStat {
		attrs = append(attrs, "quantity", entry.Quantity, "equipped", entry.IsEquipped)
	}
	if err != nil {
		inv.log.Debug(LogMsgOperationRejected, append(attrs, "error", err)...)
	} else {
		inv.log.Debug(LogMsgOperationApplied, attrs...)
	}
	return err
}
