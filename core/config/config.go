package config

import (
	"path/filepath"
	"reflect"
	"strings"

	"json-cooker/core/database"
	"json-cooker/core/fetch"
	"json-cooker/core/logger"
	"json-cooker/core/output"
	"json-cooker/core/storage"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Each section is owned by the package that consumes it.
type Config struct {
	// Fetch holds configuration for upstream downloads.
	Fetch fetch.Config `mapstructure:"fetch"`
	// Output holds configuration for artifact persistence.
	Output output.Config `mapstructure:"output"`
	// Storage holds configuration for the optional bucket mirror.
	Storage storage.Config `mapstructure:"storage"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional run ledger.
	Database database.Config `mapstructure:"database"`
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	// A missing .env is normal outside development
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Register every key with its default so AutomaticEnv can see it
	bindValues(v, Config{}, "")

	// FETCH_TIMEOUT_SECONDS -> fetch.timeout_seconds
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues walks the struct and registers each 'mapstructure' key in Viper
// with the value of its 'default' tag.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")
		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Set even empty defaults, otherwise AutomaticEnv ignores the key
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
