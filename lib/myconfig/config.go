package myconfig

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Web             WebConfig
	API             APIConfig
	ValidationRules map[string]ValidationRule
}

// WebConfig holds the storefront http settings.
type WebConfig struct {
	Port string
}

// APIConfig holds the remote catalog/order service settings.
type APIConfig struct {
	BaseURL string
	Timeout time.Duration
}

// ValidationRule is the raw, uncompiled shape of a checkout field rule
// as it appears in the configuration file. The message is shown to the
// shopper verbatim when the rule fails.
type ValidationRule struct {
	Required bool
	Pattern  string
	Message  string
}

// DefaultValidationRules returns the rule table used when the config
// file does not override it.
func DefaultValidationRules() map[string]ValidationRule {
	return map[string]ValidationRule{
		"payment": {
			Required: true,
			Message:  "Select a payment method",
		},
		"email": {
			Required: true,
			Pattern:  `^[^\s@]+@[^\s@]+\.[^\s@]+$`,
			Message:  "Enter a valid email",
		},
		"phone": {
			Required: true,
			Pattern:  `^\+?[78][-\(]?\d{3}\)?-?\d{3}-?\d{2}-?\d{2}$`,
			Message:  "Enter a valid phone number",
		},
		"address": {
			Required: true,
			Message:  "Enter a delivery address",
		},
	}
}

// Load reads configuration from file and env. Env var overrides use
// prefix SHOPFRONT_.
func Load() (Config, error) {
	v := viper.New()

	v.SetDefault("web.port", "8080")
	v.SetDefault("api.baseurl", "http://localhost:3000/api/weblarek")
	v.SetDefault("api.timeout", 5*time.Second)

	v.SetConfigType("yaml")
	v.SetConfigName("shopfront")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/shopfront")

	v.SetEnvPrefix("SHOPFRONT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// config file is optional
	_ = v.ReadInConfig()

	// scalar settings go through the accessors so env overrides apply
	c := Config{
		Web: WebConfig{
			Port: v.GetString("web.port"),
		},
		API: APIConfig{
			BaseURL: v.GetString("api.baseurl"),
			Timeout: v.GetDuration("api.timeout"),
		},
	}

	if err := v.UnmarshalKey("validationrules", &c.ValidationRules); err != nil {
		return Config{}, fmt.Errorf("unmarshal validation rules: %w", err)
	}
	if len(c.ValidationRules) == 0 {
		c.ValidationRules = DefaultValidationRules()
	}

	return c, nil
}
