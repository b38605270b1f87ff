package output

// Config holds configuration for artifact persistence.
type Config struct {
	// Dir is the local directory artifacts are written to.
	Dir string `mapstructure:"dir" default:"data"`
	// Prefix is prepended to object keys when artifacts are mirrored to a bucket.
	Prefix string `mapstructure:"prefix" default:"data"`
}
