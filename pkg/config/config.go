package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppEnv   string
	LogLevel string

	HTTPPort int

	// BaseURL is the public storefront URL used to build the payment
	// provider's success/cancel redirect targets.
	BaseURL string

	CheckoutProviderURL string

	CartSnapshotPath string

	SendGridAPIKey string
	ContactFrom    string
	ContactTo      string

	AllowedOrigins []string
}

func Load() Config {
	return Config{
		AppEnv:              getEnv("APP_ENV", "dev"),
		LogLevel:            getEnv("LOG_LEVEL", "info"),
		HTTPPort:            getEnvInt("HTTP_PORT", 8080),
		BaseURL:             getEnv("BASE_URL", "http://localhost:3000"),
		CheckoutProviderURL: getEnv("CHECKOUT_PROVIDER_URL", "http://localhost:9090"),
		CartSnapshotPath:    getEnv("CART_SNAPSHOT_PATH", "cart-storage.json"),
		SendGridAPIKey:      getEnv("SENDGRID_API_KEY", ""),
		ContactFrom:         getEnv("CONTACT_FROM", "noreply@kuaizhixiang.com"),
		ContactTo:           getEnv("CONTACT_TO", "support@kuaizhixiang.com"),
		AllowedOrigins:      []string{getEnv("ALLOWED_ORIGIN", "*")},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)

	if v == "" {
		return def
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}

	return n
}
