package config

import (
	"os"
	"strconv"
)

type Config struct {
	Port          string
	OpenRouterKey string
	Model         string
	RedisURL      string
	MerchantName  string
	SearchTimeout int
}

func getenv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v
}

// Load reads configuration from the environment once at startup. A missing
// OPENROUTER_API_KEY is not fatal: catalog lookups degrade to unavailable
// instead of crashing the process.
func Load() Config {
	st, _ := strconv.Atoi(getenv("SEARCH_TIMEOUT", "60"))
	return Config{
		Port:          getenv("PORT", "8000"),
		OpenRouterKey: os.Getenv("OPENROUTER_API_KEY"),
		Model:         getenv("OPENROUTER_MODEL", "meta-llama/llama-3.3-70b-instruct"),
		RedisURL:      os.Getenv("REDIS_URL"),
		MerchantName:  getenv("MERCHANT_NAME", "ECOMSURFER"),
		SearchTimeout: st,
	}
}
