package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config is read once at startup from environment variables
type Config struct {
	Port        string
	DBPath      string
	CORSOrigins []string
	StaticDir   string
}

// Load reads configuration from the environment with sensible defaults.
// DB_PATH overrides the store location directly; otherwise the path is
// derived from DB_NAME.
func Load() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8080")
	v.SetDefault("DB_NAME", "restaurant")
	v.SetDefault("CORS_ORIGINS", "*")
	v.SetDefault("STATIC_DIR", "./static")

	dbPath := v.GetString("DB_PATH")
	if dbPath == "" {
		dbPath = v.GetString("DB_NAME") + ".db"
	}

	return &Config{
		Port:        v.GetString("PORT"),
		DBPath:      dbPath,
		CORSOrigins: splitOrigins(v.GetString("CORS_ORIGINS")),
		StaticDir:   v.GetString("STATIC_DIR"),
	}
}

func splitOrigins(raw string) []string {
	if strings.TrimSpace(raw) == "*" {
		return []string{"*"}
	}
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
