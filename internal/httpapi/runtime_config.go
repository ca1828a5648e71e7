package httpapi

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	envDevMode            = "DEV_MODE"
	envProductionMode     = "PRODUCTION_MODE"
	envCORSAllowedOrigins = "BROTHERTRANS_CORS_ALLOWED_ORIGINS"
	envDataDir            = "BROTHERTRANS_DATA_DIR"
	envPublicDir          = "BROTHERTRANS_PUBLIC_DIR"
)

type RuntimeMode string

const (
	RuntimeModeDevelopment RuntimeMode = "development"
	RuntimeModeProduction  RuntimeMode = "production"
)

type RuntimeConfig struct {
	Mode               RuntimeMode
	CORSAllowedOrigins []string
	AllowAnyCORSOrigin bool
	DataDir            string
	PublicDir          string
}

func (m RuntimeMode) IsDevelopment() bool {
	return m == RuntimeModeDevelopment
}

func (m RuntimeMode) IsProduction() bool {
	return m == RuntimeModeProduction
}

func DefaultListenAddr(mode RuntimeMode) string {
	if mode.IsDevelopment() {
		return "127.0.0.1:3000"
	}
	return ":3000"
}

func LoadRuntimeConfigFromEnv() (RuntimeConfig, error) {
	mode, err := runtimeModeFromEnv()
	if err != nil {
		return RuntimeConfig{}, err
	}

	config := RuntimeConfig{
		Mode:      mode,
		DataDir:   strings.TrimSpace(os.Getenv(envDataDir)),
		PublicDir: strings.TrimSpace(os.Getenv(envPublicDir)),
	}
	if config.PublicDir == "" {
		config.PublicDir = "./public"
	}

	allowedOrigins := parseCSV(os.Getenv(envCORSAllowedOrigins))
	if mode.IsProduction() {
		for _, origin := range allowedOrigins {
			if origin == "*" {
				return RuntimeConfig{}, fmt.Errorf("%s cannot include wildcard origin in production mode", envCORSAllowedOrigins)
			}
		}
		config.CORSAllowedOrigins = allowedOrigins
		return config, nil
	}

	if len(allowedOrigins) == 0 {
		config.CORSAllowedOrigins = []string{"*"}
		config.AllowAnyCORSOrigin = true
		return config, nil
	}
	for _, origin := range allowedOrigins {
		if origin == "*" {
			config.CORSAllowedOrigins = []string{"*"}
			config.AllowAnyCORSOrigin = true
			return config, nil
		}
	}

	config.CORSAllowedOrigins = allowedOrigins
	return config, nil
}

func runtimeModeFromEnv() (RuntimeMode, error) {
	devMode, _, err := parseOptionalBoolEnv(envDevMode)
	if err != nil {
		return "", err
	}
	productionMode, _, err := parseOptionalBoolEnv(envProductionMode)
	if err != nil {
		return "", err
	}
	if devMode && productionMode {
		return "", fmt.Errorf("%s and %s cannot both be true", envDevMode, envProductionMode)
	}
	if devMode {
		return RuntimeModeDevelopment, nil
	}

	return RuntimeModeProduction, nil
}

func parseOptionalBoolEnv(key string) (value bool, set bool, err error) {
	rawValue, exists := os.LookupEnv(key)
	if !exists {
		return false, false, nil
	}
	trimmedValue := strings.TrimSpace(rawValue)
	if trimmedValue == "" {
		return false, false, nil
	}
	parsedValue, parseErr := strconv.ParseBool(trimmedValue)
	if parseErr != nil {
		return false, true, fmt.Errorf("%s must be a boolean value: %w", key, parseErr)
	}
	return parsedValue, true, nil
}

func parseCSV(rawValue string) []string {
	parts := strings.Split(rawValue, ",")
	values := make([]string, 0, len(parts))
	seen := map[string]struct{}{}
	for _, part := range parts {
		trimmedPart := strings.TrimSpace(part)
		if trimmedPart == "" {
			continue
		}
		if _, exists := seen[trimmedPart]; exists {
			continue
		}
		seen[trimmedPart] = struct{}{}
		values = append(values, trimmedPart)
	}
	return values
}
