package inventory

import (
	"bytes"
	"context"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/InventorySystem_Go/internal/component"
	"github.com/osse101/InventorySystem_Go/internal/domain"
)

var _ component.Component = (*Inventory)(nil)

type recordedOp struct {
	op   string
	code domain.ErrorCode
}

type fakeRecorder struct {
	ops    []recordedOp
	deltas map[string]int
}

func newFakeRecorder() *fakeRecorder {
	return &fakeRecorder{deltas: make(map[string]int)}
}

func (r *fakeRecorder) RecordOperation(op string, code domain.ErrorCode) {
	r.ops = append(r.ops, recordedOp{op: op, code: code})
}

func (r *fakeRecorder) RecordQuantity(item string, delta int) {
	r.deltas[item] += delta
}

// newTestInventory returns an inventory with strength/agility registered and
// a potion (max 5, consumable), a sword (equippable, not consumable) and a
// rock (neither).
func newTestInventory(t *testing.T, opts ...Option) *Inventory {
	t.Helper()
	inv := New(opts...)
	require.NoError(t, inv.RegisterStats("strength", "agility"))
	require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("potion",
		domain.WithFlavorText("Smells of cherries"),
		domain.WithStatBoost("strength", 2, 30),
		domain.WithMaximumQuantity(5),
	)))
	require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("sword",
		domain.WithStatBoost("strength", 5, 0),
		domain.Consumable(false),
		domain.Equippable(true),
	)))
	require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("rock",
		domain.Consumable(false),
	)))
	return inv
}

func entryByName(t *testing.T, inv *Inventory, name string) domain.InventoryEntry {
	t.Helper()
	for _, entry := range inv.GetInventory() {
		if entry.Name == name {
			return entry
		}
	}
	t.Fatalf("no entry named %q", name)
	return domain.InventoryEntry{}
}

func TestRegisterStat(t *testing.T) {
	t.Run("registers new stat", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("strength"))
		assert.Equal(t, []domain.StatName{"strength"}, inv.ListStats())
		assert.True(t, inv.HasStat("strength"))
	})

	t.Run("duplicate stat leaves registry unchanged", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("strength"))
		require.NoError(t, inv.RegisterStat("agility"))

		err := inv.RegisterStat("strength")

		assert.ErrorIs(t, err, domain.ErrDuplicateStat)
		assert.Equal(t, domain.CodeDuplicateStat, domain.CodeOf(err))
		assert.Equal(t, []domain.StatName{"strength", "agility"}, inv.ListStats())
	})

	t.Run("list is a snapshot", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("strength"))
		stats := inv.ListStats()
		stats[0] = "tampered"
		assert.Equal(t, []domain.StatName{"strength"}, inv.ListStats())
	})
}

func TestRegisterStats(t *testing.T) {
	t.Run("registers batch in order", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStats("a", "b", "c"))
		assert.Equal(t, []domain.StatName{"a", "b", "c"}, inv.ListStats())
	})

	t.Run("duplicate against registry inserts nothing", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("b"))

		err := inv.RegisterStats("a", "b", "c")

		assert.ErrorIs(t, err, domain.ErrDuplicateStat)
		assert.Equal(t, []domain.StatName{"b"}, inv.ListStats())
	})

	t.Run("duplicate within batch inserts nothing", func(t *testing.T) {
		inv := New()

		err := inv.RegisterStats("a", "b", "a")

		assert.ErrorIs(t, err, domain.ErrDuplicateStat)
		assert.Empty(t, inv.ListStats())
	})
}

func TestRegisterItemType(t *testing.T) {
	t.Run("new item starts empty and unequipped", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("potion", domain.WithMaximumQuantity(5))))

		entries := inv.GetInventory()
		require.Len(t, entries, 1)
		assert.Equal(t, "potion", entries[0].Name)
		assert.Equal(t, 0, entries[0].Quantity)
		assert.Equal(t, 5, entries[0].MaximumQuantity)
		assert.False(t, entries[0].IsEquipped)
	})

	t.Run("defaults", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("potion")))

		entry := entryByName(t, inv, "potion")
		assert.Equal(t, 1, entry.MaximumQuantity)
		assert.True(t, entry.IsConsumable)
		assert.False(t, entry.IsEquippable)
	})

	t.Run("unknown stat rejected without mutation", func(t *testing.T) {
		inv := newTestInventory(t)
		before := inv.GetInventory()

		err := inv.RegisterItemType(domain.NewItemDefinition("amulet",
			domain.WithStatBoost("strength", 1, 0),
			domain.WithStatBoost("charisma", 1, 0),
		))

		assert.ErrorIs(t, err, domain.ErrInvalidStatUsed)
		assert.Equal(t, domain.CodeInvalidStatUsed, domain.CodeOf(err))
		assert.Equal(t, before, inv.GetInventory())
	})

	t.Run("duplicate name rejected without mutation", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 2))

		err := inv.RegisterItemType(domain.NewItemDefinition("potion", domain.WithMaximumQuantity(99)))

		assert.ErrorIs(t, err, domain.ErrDuplicateItemType)
		entry := entryByName(t, inv, "potion")
		assert.Equal(t, 5, entry.MaximumQuantity)
		assert.Equal(t, 2, entry.Quantity)
		assert.Len(t, inv.GetInventory(), 3)
	})

	t.Run("negative maximum and durations clamp to zero", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("strength"))
		require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("cursed",
			domain.WithMaximumQuantity(-3),
			domain.WithStatBoost("strength", -1, -10),
		)))

		entry := entryByName(t, inv, "cursed")
		assert.Equal(t, 0, entry.MaximumQuantity)
		assert.Equal(t, domain.BoostSpec{Boost: -1, Duration: 0}, entry.StatBoosts["strength"])
		assert.ErrorIs(t, inv.AddOne("cursed"), domain.ErrMaxQuantityExceeded)
	})

	t.Run("caller map is not retained", func(t *testing.T) {
		inv := New()
		require.NoError(t, inv.RegisterStat("strength"))
		def := domain.NewItemDefinition("ring", domain.WithStatBoost("strength", 1, 0))
		require.NoError(t, inv.RegisterItemType(def))

		def.StatBoosts["strength"] = domain.BoostSpec{Boost: 100}

		assert.Equal(t, 1, entryByName(t, inv, "ring").StatBoosts["strength"].Boost)
	})

	t.Run("asset handles pass through untouched", func(t *testing.T) {
		type texture struct{ id int }
		thumb, full := &texture{id: 1}, &texture{id: 2}
		inv := New()
		require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition("map", domain.WithImages(thumb, full))))

		entry := entryByName(t, inv, "map")
		assert.Same(t, thumb, entry.Thumbnail)
		assert.Same(t, full, entry.FullImage)
	})
}

func TestAddItem(t *testing.T) {
	t.Run("increments quantity", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 3))
		assert.Equal(t, 3, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("exceeding maximum is rejected not clamped", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 3))

		err := inv.AddItem("potion", 3)

		assert.ErrorIs(t, err, domain.ErrMaxQuantityExceeded)
		assert.Equal(t, domain.CodeMaxQuantityExceeded, domain.CodeOf(err))
		assert.Equal(t, 3, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("filling exactly to maximum succeeds", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 5))
		assert.Equal(t, 5, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("add one uses default quantity", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddOne("sword"))
		assert.Equal(t, 1, entryByName(t, inv, "sword").Quantity)
		assert.ErrorIs(t, inv.AddOne("sword"), domain.ErrMaxQuantityExceeded)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 2))

		err := inv.AddItem("potion", -1)

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Equal(t, domain.CodeInvalidQuantity, domain.CodeOf(err))
		assert.Equal(t, 2, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("huge quantity does not wrap past maximum", func(t *testing.T) {
		rec := newFakeRecorder()
		inv := newTestInventory(t, WithRecorder(rec))
		require.NoError(t, inv.AddItem("potion", 1))

		err := inv.AddItem("potion", math.MaxInt)

		assert.ErrorIs(t, err, domain.ErrMaxQuantityExceeded)
		assert.Equal(t, 1, entryByName(t, inv, "potion").Quantity)
		assert.Equal(t, 1, rec.deltas["potion"])
	})

	t.Run("zero quantity is a no-op success", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 0))
		assert.Equal(t, 0, entryByName(t, inv, "potion").Quantity)
	})
}

func TestConsumeItem(t *testing.T) {
	t.Run("reduces quantity", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 3))
		require.NoError(t, inv.ConsumeItem("potion", 2))
		assert.Equal(t, 1, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("over-consumption clamps to zero", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 3))

		err := inv.ConsumeItem("potion", 10)

		assert.NoError(t, err)
		assert.Equal(t, domain.CodeSuccess, domain.CodeOf(err))
		assert.Equal(t, 0, entryByName(t, inv, "potion").Quantity)
	})

	t.Run("empty slot reports no items", func(t *testing.T) {
		inv := newTestInventory(t)

		err := inv.ConsumeOne("potion")

		assert.ErrorIs(t, err, domain.ErrNoItemsToConsume)
		assert.Equal(t, domain.CodeNoItemsToConsume, domain.CodeOf(err))
	})

	t.Run("non-consumable rejected even when held", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddOne("sword"))

		err := inv.ConsumeOne("sword")

		assert.ErrorIs(t, err, domain.ErrNotConsumable)
		assert.Equal(t, 1, entryByName(t, inv, "sword").Quantity)
	})

	t.Run("non-consumable checked before empty", func(t *testing.T) {
		inv := newTestInventory(t)
		assert.ErrorIs(t, inv.ConsumeOne("rock"), domain.ErrNotConsumable)
	})

	t.Run("negative quantity rejected", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddItem("potion", 2))

		err := inv.ConsumeItem("potion", -2)

		assert.ErrorIs(t, err, domain.ErrInvalidQuantity)
		assert.Equal(t, 2, entryByName(t, inv, "potion").Quantity)
	})
}

func TestEquipUnequip(t *testing.T) {
	t.Run("non-equippable item cannot be equipped", func(t *testing.T) {
		inv := newTestInventory(t)

		err := inv.EquipItem("potion")

		assert.ErrorIs(t, err, domain.ErrNotEquippable)
		assert.Equal(t, domain.CodeNotEquippable, domain.CodeOf(err))
		assert.Empty(t, inv.GetEquippedItems())
	})

	t.Run("equip twice reports already equipped", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.EquipItem("sword"))

		err := inv.EquipItem("sword")

		assert.ErrorIs(t, err, domain.ErrAlreadyEquipped)
		assert.True(t, entryByName(t, inv, "sword").IsEquipped)
	})

	t.Run("equip does not change quantity", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.AddOne("sword"))
		require.NoError(t, inv.EquipItem("sword"))
		assert.Equal(t, 1, entryByName(t, inv, "sword").Quantity)
	})

	t.Run("unequip clears flag", func(t *testing.T) {
		inv := newTestInventory(t)
		require.NoError(t, inv.EquipItem("sword"))
		require.NoError(t, inv.UnequipItem("sword"))

		assert.False(t, entryByName(t, inv, "sword").IsEquipped)
		assert.Empty(t, inv.GetEquippedItems())
	})

	t.Run("unequip when not equipped", func(t *testing.T) {
		inv := newTestInventory(t)
		err := inv.UnequipItem("sword")
		assert.ErrorIs(t, err, domain.ErrNotEquipped)
		assert.Equal(t, domain.CodeNotEquipped, domain.CodeOf(err))
	})

	t.Run("unequip non-equippable", func(t *testing.T) {
		inv := newTestInventory(t)
		assert.ErrorIs(t, inv.UnequipItem("rock"), domain.ErrNotEquippable)
	})
}

func TestUnknownItemLeavesStateUnchanged(t *testing.T) {
	operations := map[string]func(*Inventory) error{
		"add":     func(inv *Inventory) error { return inv.AddItem("ghost", 1) },
		"consume": func(inv *Inventory) error { return inv.ConsumeItem("ghost", 1) },
		"equip":   func(inv *Inventory) error { return inv.EquipItem("ghost") },
		"unequip": func(inv *Inventory) error { return inv.UnequipItem("ghost") },
		"add negative": func(inv *Inventory) error {
			return inv.AddItem("ghost", -1)
		},
	}

	for name, op := range operations {
		t.Run(name, func(t *testing.T) {
			inv := newTestInventory(t)
			require.NoError(t, inv.AddItem("potion", 2))
			require.NoError(t, inv.EquipItem("sword"))
			inventoryBefore := inv.GetInventory()
			statsBefore := inv.ListStats()

			err := op(inv)

			assert.ErrorIs(t, err, domain.ErrInvalidItemType)
			assert.Equal(t, domain.CodeInvalidItemType, domain.CodeOf(err))
			assert.Equal(t, inventoryBefore, inv.GetInventory())
			assert.Equal(t, statsBefore, inv.ListStats())
		})
	}
}

func TestQueries(t *testing.T) {
	t.Run("inventory lists every entry in registration order", func(t *testing.T) {
		inv := newTestInventory(t)

		var names []string
		for _, entry := range inv.GetInventory() {
			names = append(names, entry.Name)
		}

		assert.Equal(t, []string{"potion", "sword", "rock"}, names)
	})

	t.Run("equipped items subset", func(t *testing.T) {
		inv := New()
		for _, name := range []string{"helm", "boots", "gloves"} {
			require.NoError(t, inv.RegisterItemType(domain.NewItemDefinition(name, domain.Equippable(true))))
		}
		require.NoError(t, inv.EquipItem("gloves"))
		require.NoError(t, inv.EquipItem("helm"))

		equipped := inv.GetEquippedItems()

		require.Len(t, equipped, 2)
		assert.Equal(t, "helm", equipped[0].Name)
		assert.Equal(t, "gloves", equipped[1].Name)
	})

	t.Run("snapshots do not alias the ledger", func(t *testing.T) {
		inv := newTestInventory(t)
		entries := inv.GetInventory()
		entries[0].Quantity = 99
		entries[0].StatBoosts["strength"] = domain.BoostSpec{Boost: 99}

		entry := entryByName(t, inv, "potion")
		assert.Equal(t, 0, entry.Quantity)
		assert.Equal(t, 2, entry.StatBoosts["strength"].Boost)
	})

	t.Run("empty inventory", func(t *testing.T) {
		inv := New()
		assert.Empty(t, inv.GetInventory())
		assert.Empty(t, inv.GetEquippedItems())
	})
}

func TestRecorder(t *testing.T) {
	rec := newFakeRecorder()
	inv := newTestInventory(t, WithRecorder(rec))
	rec.ops = nil

	require.NoError(t, inv.AddItem("potion", 4))
	require.NoError(t, inv.ConsumeItem("potion", 10))
	assert.Error(t, inv.EquipItem("potion"))

	assert.Equal(t, []recordedOp{
		{op: domain.OpAddItem, code: domain.CodeSuccess},
		{op: domain.OpConsumeItem, code: domain.CodeSuccess},
		{op: domain.OpEquipItem, code: domain.CodeNotEquippable},
	}, rec.ops)
	assert.Equal(t, 0, rec.deltas["potion"], "consumption records the clamped amount")
}

func TestLifecycleAndLogging(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	inv := newTestInventory(t, WithLogger(log))
	before := inv.GetInventory()

	require.NoError(t, inv.BeginPlay(context.Background()))
	inv.Tick(context.Background(), 16*time.Millisecond)
	assert.Equal(t, before, inv.GetInventory(), "lifecycle hooks do not touch state")

	buf.Reset()
	assert.Error(t, inv.AddItem("potion", 6))
	assert.Contains(t, buf.String(), LogMsgOperationRejected)
	assert.Contains(t, buf.String(), `"result":"MaxQuantityExceeded"`)
}
