package logger

// Levels accepted in LOG_LEVEL
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

const (
	DefaultServiceName = "kale-farm"
	DefaultVersion     = "dev"

	EnvironmentDev         = "dev"
	EnvironmentDevelopment = "development"
)

// Attribute keys stamped on every record or pulled from the context
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
	AttrKeyIdentity    = "identity"
)
