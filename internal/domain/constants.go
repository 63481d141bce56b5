package domain

// Item registration defaults
const (
	DefaultMaximumQuantity = 1
	DefaultIsConsumable    = true
	DefaultIsEquippable    = false
)

// Default quantity for add/consume calls
const DefaultQuantity = 1

// Operation names used in logs and metrics
const (
	OpRegisterStat     = "register_stat"
	OpRegisterItemType = "register_item_type"
	OpAddItem          = "add_item"
	OpConsumeItem      = "consume_item"
	OpEquipItem        = "equip_item"
	OpUnequipItem      = "unequip_item"
)
