package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/spf13/viper"
)

type Config struct {
	Port        string
	Environment string
	Shopify     ShopifyConfig
	LogLevel    string
}

type ShopifyConfig struct {
	StoreDomain string
	APIVersion  string
}

var (
	storeDomainPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9-]*\.myshopify\.com$`)
	apiVersionPattern  = regexp.MustCompile(`^\d{4}-\d{2}$`)
)

func Load() (*Config, error) {
	viper.SetConfigType("env")
	viper.SetConfigName(".env")
	viper.AddConfigPath(".")
	viper.AddConfigPath("..")
	viper.AddConfigPath("../..")

	// Set defaults
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("SHOPIFY_API_VERSION", "2025-01")

	// Read from environment variables
	viper.AutomaticEnv()

	// Try to read .env file (optional)
	if err := viper.ReadInConfig(); err != nil {
		// It's okay if .env doesn't exist, we'll use env vars
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{
		Port:        getEnvOrViper("PORT", "8080"),
		Environment: getEnvOrViper("ENVIRONMENT", "development"),
		Shopify: ShopifyConfig{
			StoreDomain: normalizeStoreDomain(getEnvOrViper("SHOPIFY_STORE_DOMAIN", "")),
			APIVersion:  strings.TrimSpace(getEnvOrViper("SHOPIFY_API_VERSION", "2025-01")),
		},
		LogLevel: getEnvOrViper("LOG_LEVEL", "info"),
	}

	// Validate required fields at startup, not at first request
	if cfg.Shopify.StoreDomain == "" {
		return nil, fmt.Errorf("SHOPIFY_STORE_DOMAIN is required")
	}
	if !storeDomainPattern.MatchString(cfg.Shopify.StoreDomain) {
		return nil, fmt.Errorf("SHOPIFY_STORE_DOMAIN %q is not a *.myshopify.com domain", cfg.Shopify.StoreDomain)
	}
	if !apiVersionPattern.MatchString(cfg.Shopify.APIVersion) {
		return nil, fmt.Errorf("SHOPIFY_API_VERSION %q must be in YYYY-MM form", cfg.Shopify.APIVersion)
	}

	return cfg, nil
}

// normalizeStoreDomain strips scheme and trailing slashes so that
// "https://my-store.myshopify.com/" validates the same as the bare domain.
func normalizeStoreDomain(domain string) string {
	domain = strings.TrimSpace(domain)
	domain = strings.TrimPrefix(domain, "https://")
	domain = strings.TrimPrefix(domain, "http://")
	domain = strings.TrimSuffix(domain, "/")
	return domain
}

func getEnvOrViper(key, defaultValue string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	if viper.IsSet(key) {
		return viper.GetString(key)
	}
	return defaultValue
}
