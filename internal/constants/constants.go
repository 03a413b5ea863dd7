package constants

const (
	// Built-in defaults, used when neither a flag nor an env var is set
	DefaultURL       = "http://github.com/kaw393939"
	DefaultOutputDir = "/app/qr_codes"
	DefaultLogDir    = "/app/logs"
	DefaultLogLevel  = "info"

	// Environment variables
	EnvURL       = "DEFAULT_URL"
	EnvOutputDir = "OUTPUT_DIR"
	EnvLogDir    = "LOG_DIR"
	EnvLogLevel  = "LOG_LEVEL"
	EnvPreview   = "QR_PREVIEW"

	// Output file naming
	FilenamePrefix    = "qr_"
	FilenameExtension = ".png"
	FilenameTimestamp = "20060102-150405"

	// QR rendering, negative size means pixels per module
	ModuleSize = -10

	// Logging constants
	LogFileName        = "app.log"
	LogTimestampFormat = "2006-01-02 15:04:05,000"
	LogSeparator       = " | "

	// Permissions
	DirPermissions  = 0755
	FilePermissions = 0644
)
