package inventory

// Log messages
const (
	LogMsgBeginPlay         = "Inventory entering play"
	LogMsgOperationApplied  = "Inventory operation applied"
	LogMsgOperationRejected = "Inventory operation rejected"
)
