package config

import (
	"log"
	"time"

	"github.com/spf13/viper"

	"shootbook/services/pricing"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`
	// Timezone is the studio's zone; booking dates are compared to "today" there.
	Timezone string `mapstructure:"TIMEZONE"`

	// MongoDB configuration.
	DatabaseURL  string `mapstructure:"DATABASE_URL"`
	DatabaseName string `mapstructure:"DATABASE_NAME"`

	// Redis configuration.
	RedisAddr        string `mapstructure:"REDIS_ADDR"`
	RedisPassword    string `mapstructure:"REDIS_PASSWORD"`
	RedisSessionDB   int    `mapstructure:"REDIS_SESSION_DB"`
	RedisTaskQueueDB int    `mapstructure:"REDIS_TASK_QUEUE_DB"`

	// Wizard draft sessions: "redis" or "memory".
	SessionStore      string `mapstructure:"SESSION_STORE"`
	SessionTTLMinutes int    `mapstructure:"SESSION_TTL_MINUTES"`

	Rates pricing.RateCard `mapstructure:",squash"`
}

// LoadConfig reads config.yaml from "." or "./config" and the environment.
// The result is passed explicitly to whoever needs it.
func LoadConfig() Config {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	// Automatically use environment variables where available.
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	return cfg
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", "8080")
	v.SetDefault("ENV", "development")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("MAX_REQUESTS_PER_MIN", 200)
	v.SetDefault("TIMEZONE", "America/Toronto")
	v.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	v.SetDefault("DATABASE_NAME", "shootbook")
	v.SetDefault("REDIS_ADDR", "localhost:6379")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_SESSION_DB", 0)
	v.SetDefault("REDIS_TASK_QUEUE_DB", 1)
	v.SetDefault("SESSION_STORE", "redis")
	v.SetDefault("SESSION_TTL_MINUTES", 60)

	// Rate card defaults; every one can be overridden from the environment.
	rates := pricing.DefaultRateCard()
	v.SetDefault("RATE_CCD_PHONE_HOURLY", rates.CcdPhoneHourly)
	v.SetDefault("RATE_DSLR_SINGLE_HOUR", rates.DSLRSingleHour)
	v.SetDefault("RATE_DSLR_HOURLY", rates.DSLRHourly)
	v.SetDefault("RATE_CCD_PHONE_SURCHARGE", rates.CcdPhoneSurcharge)
	v.SetDefault("RATE_DSLR_SURCHARGE", rates.DSLRSurcharge)
	v.SetDefault("RATE_CITY_FEE", rates.CityFee)
	v.SetDefault("RATE_MIN_TRANSPORTATION_FEE", rates.MinTransportationFee)
	v.SetDefault("RATE_ADDON_PHOTO_PRICE", rates.AddonPhotoPrice)
	v.SetDefault("RATE_MIN_ADDON_PHOTOS", rates.MinAddonPhotos)
	v.SetDefault("RATE_EXTRA_EDIT_PRICE", rates.ExtraEditPrice)
	v.SetDefault("RATE_INCLUDED_EDITS", rates.IncludedEdits)
	v.SetDefault("RATE_BONUS_EDITS_PER_HOUR", rates.BonusEditsPerHour)
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

// SessionTTL is how long an idle wizard draft is kept.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// Location resolves Timezone, falling back to UTC.
func (c Config) Location() *time.Location {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		log.Printf("Unknown TIMEZONE %q, using UTC", c.Timezone)
		return time.UTC
	}
	return loc
}
