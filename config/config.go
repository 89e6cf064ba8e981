package config

import (
	"errors"
	"io/fs"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	App     AppConfig
	DB      DBConfig
	Redis   RedisConfig
	JWT     JWTConfig
	Admin   AdminConfig
	Session SessionConfig
	Notify  NotifyConfig
}

type AppConfig struct {
	Port        string
	Env         string
	LogLevel    string
	SlotSeed    uint64
	CORSOrigins []string
}

type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	TimeZone string
}

// Enabled reports whether a Postgres database is configured
func (c DBConfig) Enabled() bool {
	return c.Host != ""
}

type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis server is configured
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

type JWTConfig struct {
	Secret       string
	AccessExpiry time.Duration
}

type AdminConfig struct {
	Email        string
	Password     string
	PasswordHash string
}

type SessionConfig struct {
	TTL             time.Duration
	CleanupSchedule string
}

type NotifyConfig struct {
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string
	TwilioAccountSID  string
	TwilioAuthToken   string
	TwilioFromNumber  string
}

func setDefaults() {
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("APP_ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SLOT_SEED", 0)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_TIMEZONE", "UTC")
	viper.SetDefault("REDIS_PORT", "6379")
	viper.SetDefault("JWT_SECRET", "change-me")
	viper.SetDefault("JWT_ACCESS_EXPIRY", "1h")
	viper.SetDefault("ADMIN_EMAIL", "admin@dentalclinic.com")
	viper.SetDefault("ADMIN_PASSWORD", "password123")
	viper.SetDefault("SESSION_TTL", "30m")
	viper.SetDefault("SESSION_CLEANUP_SCHEDULE", "@every 5m")
	viper.SetDefault("SENDGRID_FROM_EMAIL", "office@dentalclinic.com")
	viper.SetDefault("SENDGRID_FROM_NAME", "Dental Clinic")
}

func LoadConfig() (*Config, error) {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()
	setDefaults()

	// The .env file is optional; environment variables and defaults cover every key
	if err := viper.ReadInConfig(); err != nil {
		var pathErr *fs.PathError
		if !errors.As(err, &pathErr) {
			return nil, err
		}
	}

	accessExpiry, err := time.ParseDuration(viper.GetString("JWT_ACCESS_EXPIRY"))
	if err != nil {
		accessExpiry = time.Hour
	}

	sessionTTL, err := time.ParseDuration(viper.GetString("SESSION_TTL"))
	if err != nil {
		sessionTTL = 30 * time.Minute
	}

	config := &Config{
		App: AppConfig{
			Port:     viper.GetString("APP_PORT"),
			Env:      viper.GetString("APP_ENV"),
			LogLevel: viper.GetString("LOG_LEVEL"),
			SlotSeed: viper.GetUint64("SLOT_SEED"),
			// Comma separated, e.g. "https://clinic.example,https://admin.clinic.example"
			CORSOrigins: splitList(viper.GetString("CORS_ALLOWED_ORIGINS")),
		},
		DB: DBConfig{
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
			TimeZone: viper.GetString("DB_TIMEZONE"),
		},
		Redis: RedisConfig{
			Host:     viper.GetString("REDIS_HOST"),
			Port:     viper.GetString("REDIS_PORT"),
			Password: viper.GetString("REDIS_PASSWORD"),
			DB:       viper.GetInt("REDIS_DB"),
		},
		JWT: JWTConfig{
			Secret:       viper.GetString("JWT_SECRET"),
			AccessExpiry: accessExpiry,
		},
		Admin: AdminConfig{
			Email:        viper.GetString("ADMIN_EMAIL"),
			Password:     viper.GetString("ADMIN_PASSWORD"),
			PasswordHash: viper.GetString("ADMIN_PASSWORD_HASH"),
		},
		Session: SessionConfig{
			TTL:             sessionTTL,
			CleanupSchedule: viper.GetString("SESSION_CLEANUP_SCHEDULE"),
		},
		Notify: NotifyConfig{
			SendGridAPIKey:    viper.GetString("SENDGRID_API_KEY"),
			SendGridFromEmail: viper.GetString("SENDGRID_FROM_EMAIL"),
			SendGridFromName:  viper.GetString("SENDGRID_FROM_NAME"),
			TwilioAccountSID:  viper.GetString("TWILIO_ACCOUNT_SID"),
			TwilioAuthToken:   viper.GetString("TWILIO_AUTH_TOKEN"),
			TwilioFromNumber:  viper.GetString("TWILIO_FROM_NUMBER"),
		},
	}

	return config, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
