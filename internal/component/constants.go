package component

// Error messages
const (
	ErrMsgBeginPlayFailed = "begin play failed for actor %s: %w"
)

// Log messages
const (
	LogMsgActorStarted = "Actor started"
	LogMsgActorStopped = "Actor stopped"
)
