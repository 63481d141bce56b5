package server

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestCompleted = "Request completed"
)

// Route paths
const (
	PathHealth  = "/healthz"
	PathReady   = "/readyz"
	PathMetrics = "/metrics"
)

// Server timeouts
const (
	ReadHeaderTimeoutSeconds = 5
)

// Health status values
const (
	StatusOK       = "ok"
	StatusNotReady = "not ready"
)
