// Package key defines the canonical set of configuration identifiers used for centralized settings management.
package key

// Media Server Connection - these keys identify the remote server and how this device presents itself.
const (
	ServerAddress    = "server.address"
	ServerClientName = "server.client_name"
	ServerDeviceName = "server.device_name"
)

// Slideshow Behavior - these keys govern the autoplay carousel.
const (
	SlideshowDelay        = "slideshow.delay"
	SlideshowPreloadCount = "slideshow.preload_count"
	SlideshowCacheSize    = "slideshow.cache_size"
	SlideshowShuffle      = "slideshow.shuffle"
)

// Catalog Retrieval - these keys shape artwork listing and image resolution requests.
const (
	CatalogImageQuality = "catalog.image_quality"
	CatalogImageWidth   = "catalog.image_width"
	CatalogImageHeight  = "catalog.image_height"
	CatalogCacheHours   = "catalog.cache_hours"
)

// Session Telemetry Stream - these keys configure the persistent websocket subscriptions.
const (
	StreamSessionsInterval = "stream.sessions_interval"
	StreamActivityInterval = "stream.activity_interval"
)

// Iconography - these keys manage the visual rendering of UI symbols.
const (
	IconsVariant = "icons.variant"
)

// Logging Infrastructure - these keys manage the application's internal diagnostics.
const (
	LogsWrite = "logs.write"
	LogsLevel = "logs.level"
	LogsJson  = "logs.json"
)

// CLI Execution Environment - these settings govern non-display application behavior.
const (
	CliColored      = "cli.colored"
	CliVersionCheck = "cli.version_check"
)
