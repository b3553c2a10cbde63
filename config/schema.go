package config

import "github.com/invopop/jsonschema"

// fileSchema mirrors the section layout of the TOML configuration file, used
// only to generate a JSON schema for editor integration.
type fileSchema struct {
	Server struct {
		Address    string `json:"address" jsonschema:"description=Media server address."`
		ClientName string `json:"client_name" jsonschema:"description=Client name reported during authentication."`
		DeviceName string `json:"device_name" jsonschema:"description=Device name reported during authentication."`
	} `json:"server"`

	Slideshow struct {
		Delay        int  `json:"delay" jsonschema:"description=Seconds each slide stays on screen.,default=20"`
		PreloadCount int  `json:"preload_count" jsonschema:"description=Upcoming slides preloaded after each advance.,default=3"`
		CacheSize    int  `json:"cache_size" jsonschema:"description=Capacity of the asset preload cache.,default=10"`
		Shuffle      bool `json:"shuffle" jsonschema:"description=Shuffle the catalog order once at startup.,default=true"`
	} `json:"slideshow"`

	Catalog struct {
		ImageQuality int `json:"image_quality" jsonschema:"description=JPEG quality requested for slide artwork.,default=100"`
		ImageWidth   int `json:"image_width" jsonschema:"description=Fill width requested for slide artwork.,default=1280"`
		ImageHeight  int `json:"image_height" jsonschema:"description=Fill height requested for slide artwork.,default=720"`
		CacheHours   int `json:"cache_hours" jsonschema:"description=Hours to keep the catalog snapshot on disk.,default=24"`
	} `json:"catalog"`

	Stream struct {
		SessionsInterval int `json:"sessions_interval" jsonschema:"description=Milliseconds between pushed session snapshots.,default=1500"`
		ActivityInterval int `json:"activity_interval" jsonschema:"description=Milliseconds between pushed activity log entries.,default=1000"`
	} `json:"stream"`

	Icons struct {
		Variant string `json:"variant" jsonschema:"description=Icons variant.,enum=emoji,enum=plain,enum=squares,enum=nerd"`
	} `json:"icons"`

	Logs struct {
		Write bool   `json:"write" jsonschema:"description=Write logs to disk."`
		Level string `json:"level" jsonschema:"description=Log verbosity level."`
		Json  bool   `json:"json" jsonschema:"description=Use JSON format for logs."`
	} `json:"logs"`

	Cli struct {
		Colored      bool `json:"colored" jsonschema:"description=Enable colored CLI output.,default=true"`
		VersionCheck bool `json:"version_check" jsonschema:"description=Enable automatic version check.,default=true"`
	} `json:"cli"`
}

// Schema generates the JSON schema of the configuration file.
func Schema() *jsonschema.Schema {
	reflector := new(jsonschema.Reflector)
	reflector.Anonymous = true
	return reflector.Reflect(&fileSchema{})
}
