package auth

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/viper"
)

// AuthConfig holds the session token configuration
type AuthConfig struct {
	JWTSecret       string `yaml:"jwt_secret" json:"jwt_secret" mapstructure:"jwt_secret"`
	Issuer          string `yaml:"issuer" json:"issuer" mapstructure:"issuer"`
	TokenTTLMinutes int    `yaml:"token_ttl_minutes" json:"token_ttl_minutes" mapstructure:"token_ttl_minutes"`
}

// LoadAuthConfig loads and validates authentication configuration
func LoadAuthConfig(configPath string) (*AuthConfig, error) {
	// Create a new viper instance for auth config
	v := viper.New()

	// Set config file details
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("auth")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
	}

	// Set default values
	setAuthDefaults(v)

	// Read config file
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Config file not found, use defaults and environment variables
		} else {
			return nil, fmt.Errorf("error reading auth config file: %w", err)
		}
	}

	v.AutomaticEnv()

	var config AuthConfig
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling auth config: %w", err)
	}

	// Override with environment variables for sensitive data
	if jwtSecret := os.Getenv("JWT_SECRET"); jwtSecret != "" {
		config.JWTSecret = jwtSecret
	}
	if ttl := os.Getenv("TOKEN_TTL_MINUTES"); ttl != "" {
		minutes, err := strconv.Atoi(ttl)
		if err != nil {
			return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES %q: %w", ttl, err)
		}
		config.TokenTTLMinutes = minutes
	}

	if err := config.ValidateConfig(); err != nil {
		return nil, fmt.Errorf("auth config validation failed: %w", err)
	}

	return &config, nil
}

// TokenTTL returns the lifetime of issued tokens
func (c *AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.TokenTTLMinutes) * time.Minute
}

// ValidateConfig validates the authentication configuration
func (c *AuthConfig) ValidateConfig() error {
	if c.JWTSecret == "" {
		return fmt.Errorf("JWT secret is required")
	}
	if c.Issuer == "" {
		return fmt.Errorf("issuer is required")
	}
	if c.TokenTTLMinutes <= 0 {
		return fmt.Errorf("token TTL must be positive")
	}
	return nil
}

// setAuthDefaults sets default values for auth configuration
func setAuthDefaults(v *viper.Viper) {
	v.SetDefault("issuer", "teamtrack-backend")
	v.SetDefault("token_ttl_minutes", 720)
	// Development secret; config.Load rejects it when ENVIRONMENT=production
	v.SetDefault("jwt_secret", "your-secret-key-change-in-production")
}
