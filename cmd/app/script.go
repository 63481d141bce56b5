package main

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InventorySystem_Go/internal/catalog"
	"github.com/osse101/InventorySystem_Go/internal/domain"
	"github.com/osse101/InventorySystem_Go/internal/inventory"
	"github.com/osse101/InventorySystem_Go/internal/logger"
	"github.com/osse101/InventorySystem_Go/internal/registry"
)

// step is one scripted inventory action
type step struct {
	op   string
	item string
	run  func(inv *inventory.Inventory, item string) error
}

// demoScript plays gameplay against the actor's inventory, one step per frame
type demoScript struct {
	owners *registry.Registry
	owner  uuid.UUID
	steps  []step
	next   int
}

func newDemoScript(owners *registry.Registry, owner uuid.UUID, cfg *catalog.Config) *demoScript {
	s := &demoScript{owners: owners, owner: owner}
	for _, item := range cfg.Items {
		s.steps = append(s.steps,
			step{op: domain.OpAddItem, item: item.Name, run: func(inv *inventory.Inventory, name string) error {
				return inv.AddItem(name, 2)
			}},
			step{op: domain.OpEquipItem, item: item.Name, run: func(inv *inventory.Inventory, name string) error {
				return inv.EquipItem(name)
			}},
			step{op: domain.OpConsumeItem, item: item.Name, run: func(inv *inventory.Inventory, name string) error {
				return inv.ConsumeOne(name)
			}},
			step{op: domain.OpUnequipItem, item: item.Name, run: func(inv *inventory.Inventory, name string) error {
				return inv.UnequipItem(name)
			}},
		)
	}
	return s
}

func (s *demoScript) BeginPlay(context.Context) error {
	return nil
}

func (s *demoScript) Tick(ctx context.Context, dt time.Duration) {
	if len(s.steps) == 0 {
		return
	}
	st := s.steps[s.next%len(s.steps)]
	s.next++

	err := s.owners.With(s.owner, func(inv *inventory.Inventory) error {
		return st.run(inv, st.item)
	})
	logger.FromContext(ctx).Info("Scripted action",
		"operation", st.op,
		"item", st.item,
		"result", domain.CodeOf(err).String(),
		"frame_ms", dt.Milliseconds())
}
