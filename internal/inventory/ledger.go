package inventory

import (
	"fmt"

	"github.com/osse101/InventorySystem_Go/internal/domain"
)

// AddItem raises the owned quantity of an item type. Additions that would
// take the quantity past the item's maximum are rejected, not truncated.
func (inv *Inventory) AddItem(name string, quantity int) error {
	entry, err := inv.lookup(name)
	if err != nil {
		return inv.finish(domain.OpAddItem, name, err)
	}
	if quantity < 0 {
		return inv.finish(domain.OpAddItem, name, fmt.Errorf("%w: cannot add %d of %q", domain.ErrInvalidQuantity, quantity, name))
	}
	if quantity > entry.MaximumQuantity-entry.Quantity {
		return inv.finish(domain.OpAddItem, name,
			fmt.Errorf("%w: %q holds %d of %d, cannot add %d", domain.ErrMaxQuantityExceeded, name, entry.Quantity, entry.MaximumQuantity, quantity))
	}

	entry.Quantity += quantity
	inv.recorder.RecordQuantity(name, quantity)
	return inv.finish(domain.OpAddItem, name, nil)
}

// AddOne adds a single item
func (inv *Inventory) AddOne(name string) error {
	return inv.AddItem(name, domain.DefaultQuantity)
}

// ConsumeItem lowers the owned quantity of a consumable item type. Consuming
// more than is held empties the slot instead of failing.
func (inv *Inventory) ConsumeItem(name string, quantity int) error {
	entry, err := inv.lookup(name)
	if err != nil {
		return inv.finish(domain.OpConsumeItem, name, err)
	}
	if quantity < 0 {
		return inv.finish(domain.OpConsumeItem, name, fmt.Errorf("%w: cannot consume %d of %q", domain.ErrInvalidQuantity, quantity, name))
	}
	if !entry.IsConsumable {
		return inv.finish(domain.OpConsumeItem, name, fmt.Errorf("%w: %q", domain.ErrNotConsumable, name))
	}
	if entry.Quantity == 0 {
		return inv.finish(domain.OpConsumeItem, name, fmt.Errorf("%w: %q", domain.ErrNoItemsToConsume, name))
	}

	consumed := min(quantity, entry.Quantity)
	entry.Quantity -= consumed
	inv.recorder.RecordQuantity(name, -consumed)
	return inv.finish(domain.OpConsumeItem, name, nil)
}

// ConsumeOne consumes a single item
func (inv *Inventory) ConsumeOne(name string) error {
	return inv.ConsumeItem(name, domain.DefaultQuantity)
}

// EquipItem marks an equippable item type as equipped. Quantity is unchanged.
func (inv *Inventory) EquipItem(name string) error {
	entry, err := inv.lookup(name)
	if err != nil {
		return inv.finish(domain.OpEquipItem, name, err)
	}
	if !entry.IsEquippable {
		return inv.finish(domain.OpEquipItem, name, fmt.Errorf("%w: %q", domain.ErrNotEquippable, name))
	}
	if entry.IsEquipped {
		return inv.finish(domain.OpEquipItem, name, fmt.Errorf("%w: %q", domain.ErrAlreadyEquipped, name))
	}

	entry.IsEquipped = true
	return inv.finish(domain.OpEquipItem, name, nil)
}

// UnequipItem clears the equipped flag of an equippable item type
func (inv *Inventory) UnequipItem(name string) error {
	entry, err := inv.lookup(name)
	if err != nil {
		return inv.finish(domain.OpUnequipItem, name, err)
	}
	if !entry.IsEquippable {
		return inv.finish(domain.OpUnequipItem, name, fmt.Errorf("%w: %q", domain.ErrNotEquippable, name))
	}
	if !entry.IsEquipped {
		return inv.finish(domain.OpUnequipItem, name, fmt.Errorf("%w: %q", domain.ErrNotEquipped, name))
	}

	entry.IsEquipped = false
	return inv.finish(domain.OpUnequipItem, name, nil)
}

// GetInventory returns every registered item type with its current quantity
// and equip state, in registration order.
func (inv *Inventory) GetInventory() []domain.InventoryEntry {
	out := make([]domain.InventoryEntry, 0, len(inv.order))
	for _, name := range inv.order {
		out = append(out, inv.entries[name].Clone())
	}
	return out
}

// GetEquippedItems returns the equipped item types in registration order
func (inv *Inventory) GetEquippedItems() []domain.InventoryEntry {
	var out []domain.InventoryEntry
	for _, name := range inv.order {
		if entry := inv.entries[name]; entry.IsEquipped {
			out = append(out, entry.Clone())
		}
	}
	return out
}
