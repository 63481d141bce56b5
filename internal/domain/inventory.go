package domain

// StatName identifies a stat an item may boost (e.g. "strength")
type StatName string

// AssetRef is an opaque handle to a texture or other render asset.
// The inventory stores and returns it but never looks inside.
type AssetRef any

// AssetPath is the AssetRef used when items come from a catalog file
type AssetPath string

// BoostSpec is the boost an item gives to one stat.
// A Duration of 0 means the boost is permanent.
type BoostSpec struct {
	Boost    int `json:"boost"`
	Duration int `json:"duration"`
}

// ItemDefinition describes an item type. It is immutable once registered.
type ItemDefinition struct {
	Name            string                 `json:"name"`
	FlavorText      string                 `json:"flavor_text"`
	Thumbnail       AssetRef               `json:"-"`
	FullImage       AssetRef               `json:"-"`
	StatBoosts      map[StatName]BoostSpec `json:"stat_boosts,omitempty"`
	MaximumQuantity int                    `json:"maximum_quantity"` // Negative values are treated as 0
	IsConsumable    bool                   `json:"consumable"`
	IsEquippable    bool                   `json:"equippable"`
}

// InventoryEntry is a registered item type together with the owner's
// current holdings of it.
type InventoryEntry struct {
	ItemDefinition
	Quantity   int  `json:"quantity"`    // 0 <= Quantity <= MaximumQuantity
	IsEquipped bool `json:"is_equipped"` // Only ever true when IsEquippable
}

// ItemOption adjusts an ItemDefinition built by NewItemDefinition
type ItemOption func(*ItemDefinition)

// NewItemDefinition returns a definition with the registration defaults:
// a maximum quantity of 1, consumable, not equippable.
func NewItemDefinition(name string, opts ...ItemOption) ItemDefinition {
	def := ItemDefinition{
		Name:            name,
		MaximumQuantity: DefaultMaximumQuantity,
		IsConsumable:    DefaultIsConsumable,
		IsEquippable:    DefaultIsEquippable,
	}
	for _, opt := range opts {
		opt(&def)
	}
	return def
}

// WithFlavorText sets the flavor text
func WithFlavorText(text string) ItemOption {
	return func(d *ItemDefinition) { d.FlavorText = text }
}

// WithImages sets the thumbnail and full image handles
func WithImages(thumbnail, fullImage AssetRef) ItemOption {
	return func(d *ItemDefinition) {
		d.Thumbnail = thumbnail
		d.FullImage = fullImage
	}
}

// WithStatBoost adds a boost for one stat
func WithStatBoost(stat StatName, boost, duration int) ItemOption {
	return func(d *ItemDefinition) {
		if d.StatBoosts == nil {
			d.StatBoosts = make(map[StatName]BoostSpec)
		}
		d.StatBoosts[stat] = BoostSpec{Boost: boost, Duration: duration}
	}
}

// WithMaximumQuantity sets the maximum quantity
func WithMaximumQuantity(quantity int) ItemOption {
	return func(d *ItemDefinition) { d.MaximumQuantity = quantity }
}

// Consumable sets whether the item can be consumed
func Consumable(consumable bool) ItemOption {
	return func(d *ItemDefinition) { d.IsConsumable = consumable }
}

// Equippable sets whether the item can be equipped
func Equippable(equippable bool) ItemOption {
	return func(d *ItemDefinition) { d.IsEquippable = equippable }
}

// Clone returns a copy whose StatBoosts map is not shared with d
func (d ItemDefinition) Clone() ItemDefinition {
	out := d
	if d.StatBoosts != nil {
		out.StatBoosts = make(map[StatName]BoostSpec, len(d.StatBoosts))
		for stat, spec := range d.StatBoosts {
			out.StatBoosts[stat] = spec
		}
	}
	return out
}

// Normalized clamps negative MaximumQuantity and boost durations to 0
func (d ItemDefinition) Normalized() ItemDefinition {
	out := d.Clone()
	if out.MaximumQuantity < 0 {
		out.MaximumQuantity = 0
	}
	for stat, spec := range out.StatBoosts {
		if spec.Duration < 0 {
			spec.Duration = 0
			out.StatBoosts[stat] = spec
		}
	}
	return out
}

// IsPermanent reports whether the boost never expires
func (b BoostSpec) IsPermanent() bool {
	return b.Duration <= 0
}

// Clone returns a copy whose StatBoosts map is not shared with e
func (e InventoryEntry) Clone() InventoryEntry {
	out := e
	out.ItemDefinition = e.ItemDefinition.Clone()
	return out
}
