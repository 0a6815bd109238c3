package config

import (
	"reflect"
	"strings"

	"stock-sync/core/database"
	"stock-sync/core/feed"
	"stock-sync/core/logger"
	"stock-sync/core/server"
	"stock-sync/core/storage"
	"stock-sync/feature/ozon"
	"stock-sync/feature/yandex"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations owned by the packages that use them.
type Config struct {
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Feed holds configuration for the supplier feed.
	Feed feed.Config `mapstructure:"feed"`
	// Ozon holds configuration for the Ozon Seller API.
	Ozon ozon.Config `mapstructure:"ozon"`
	// Yandex holds configuration for the Yandex Market Partner API.
	Yandex yandex.Config `mapstructure:"yandex"`
	// Server holds configuration for the HTTP trigger API.
	Server server.Config `mapstructure:"server"`
	// Storage holds configuration for the object storage.
	Storage storage.Config `mapstructure:"storage"`
	// Database holds configuration for the run journal.
	Database database.Config `mapstructure:"database"`
}

// legacyEnv maps keys to the variable names used by earlier deployments.
// The new name (e.g. OZON_API_KEY) wins when both are set.
var legacyEnv = map[string]string{
	"ozon.api_key":            "SELLER_TOKEN",
	"ozon.client_id":          "CLIENT_ID",
	"yandex.token":            "MARKET_TOKEN",
	"yandex.fbs.campaign_id":  "FBS_ID",
	"yandex.dbs.campaign_id":  "DBS_ID",
	"yandex.fbs.warehouse_id": "WAREHOUSE_FBS_ID",
	"yandex.dbs.warehouse_id": "WAREHOUSE_DBS_ID",
}

// LoadConfig loads configuration from environment variables and the .env file in path.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. OZON_API_KEY -> ozon.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	for key, legacy := range legacyEnv {
		envName := strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		if err := v.BindEnv(key, envName, legacy); err != nil {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
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

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
