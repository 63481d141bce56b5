package config

// Environment variable names
const (
	EnvLogLevel      = "LOG_LEVEL"
	EnvLogFormat     = "LOG_FORMAT"
	EnvEnvironment   = "ENVIRONMENT"
	EnvServiceName   = "SERVICE_NAME"
	EnvVersion       = "VERSION"
	EnvCatalogPath   = "CATALOG_PATH"
	EnvMetricsPort   = "METRICS_PORT"
	EnvFrameInterval = "FRAME_INTERVAL"
	EnvDemoFrames    = "DEMO_FRAMES"
)

// Defaults
const (
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "text"
	DefaultEnvironment   = "dev"
	DefaultServiceName   = "inventory-system"
	DefaultVersion       = "dev"
	DefaultCatalogPath   = "configs/catalog.json"
	DefaultMetricsPort   = "9090"
	DefaultFrameInterval = "100ms"
	DefaultDemoFrames    = "0"
)
