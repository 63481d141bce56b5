package metrics

// ============================================================================
// Metric Names
// ============================================================================

const (
	MetricNameOperationsTotal    = "inventory_operations_total"
	MetricNameQuantityDeltaTotal = "inventory_item_quantity_delta_total"
	MetricNameActorsActive       = "inventory_actors_active"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextOperationsTotal    = "Total number of inventory operations by result"
	HelpTextQuantityDeltaTotal = "Total item units added to or consumed from inventories"
	HelpTextActorsActive       = "Number of actors currently driven by the host"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelOperation = "operation"
	LabelResult    = "result"
	LabelItem      = "item"
	LabelDirection = "direction"
)

// Direction label values
const (
	DirectionAdded    = "added"
	DirectionConsumed = "consumed"
)
