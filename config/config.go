// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"bitwise74/visitor-api/db"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	port           = pflag.Int("port", 0, "Port to listen on (overrides PORT)")
	configPath     = pflag.String("config", ".", "Directory containing config.toml")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
)

// Setup parses command line flags and loads the configuration. Function
// will return an error if something is critically wrong and the
// application can't run because of that.
func Setup() error {
	pflag.Parse()

	if err := v.BindPFlag("host.port", pflag.Lookup("port")); err != nil {
		return fmt.Errorf("failed to bind port flag, %w", err)
	}

	return Load(*configPath)
}

// Load reads config.toml from dir when present, applies environment
// overrides and defaults, then validates the result.
func Load(dir string) error {
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "APP_LOG_LEVEL")

	v.BindEnv("host.port", "PORT", "HOST_PORT")
	v.BindEnv("host.cors", "HOST_CORS")

	v.BindEnv("database.driver", "DATABASE_DRIVER")
	v.BindEnv("database.uri", "MONGO_URI", "DATABASE_URI")
	v.BindEnv("database.name", "DATABASE_NAME")

	v.BindEnv("geoip.city_db", "GEOIP_CITY_DB")

	v.BindEnv("static.dir", "STATIC_DIR")

	v.BindEnv("security.rate_limit", "SECURITY_RATE_LIMIT")
	v.BindEnv("stats.jwt_secret", "STATS_JWT_SECRET")

	v.BindEnv("scene.cache_seconds", "SCENE_CACHE_SECONDS")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 3000)
	v.SetDefault("host.cors", []string{})

	v.SetDefault("database.driver", db.DriverMongo)
	v.SetDefault("database.name", "visitors")

	v.SetDefault("geoip.city_db", "data/GeoLite2-City.mmdb")

	v.SetDefault("static.dir", "public")

	v.SetDefault("security.rate_limit", 20)

	v.SetDefault("scene.cache_seconds", 300)

	if err := v.ReadInConfig(); err != nil {
		var notFound v.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if p := v.GetInt("host.port"); p <= 0 || p > 65535 {
		return errors.New("invalid port provided")
	}

	driver := v.GetString("database.driver")
	if !slices.Contains(db.ValidDrivers, driver) {
		return fmt.Errorf("invalid database driver %q", driver)
	}

	if driver != db.DriverSQLite && v.GetString("database.uri") == "" {
		return fmt.Errorf("no connection string provided for %s, set MONGO_URI or DATABASE_URI", driver)
	}

	if v.GetInt("security.rate_limit") < 0 {
		return errors.New("security.rate_limit can't be negative")
	}

	return nil
}
