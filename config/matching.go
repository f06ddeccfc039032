package config

import (
	"os"
	"strconv"
	"time"

	"github.com/refind-app/api-go/matching"
)

// MatchingConfig reads the scoring thresholds from the environment,
// falling back to the built-in defaults for anything unset.
func MatchingConfig() matching.Config {
	cfg := matching.DefaultConfig()

	if v, ok := envInt("MATCH_MIN_TOTAL_SCORE"); ok {
		cfg.MinTotalScore = v
	}
	if v, ok := envInt("MATCH_MIN_FUZZY_SCORE"); ok {
		cfg.MinFuzzyScore = v
	}
	if v, ok := envInt("MATCH_HIGH_SCORE_THRESHOLD"); ok {
		cfg.HighScoreThreshold = v
	}
	if v, ok := envFloat("MATCH_PREFILTER_RADIUS_KM"); ok {
		cfg.PrefilterRadiusKm = v
	}

	return cfg
}

type EmbeddingConfig struct {
	ServiceURL string
	Timeout    time.Duration
}

func GetEmbeddingConfig() *EmbeddingConfig {
	url := os.Getenv("EMBEDDING_SERVICE_URL")
	if url == "" {
		url = "http://localhost:8100"
	}

	timeout := 10 * time.Second
	if v, ok := envInt("EMBEDDING_TIMEOUT_SECONDS"); ok {
		timeout = time.Duration(v) * time.Second
	}

	return &EmbeddingConfig{
		ServiceURL: url,
		Timeout:    timeout,
	}
}

func envInt(key string) (int, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, false
	}
	return v, true
}

func envFloat(key string) (float64, bool) {
	raw := os.Getenv(key)
	if raw == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
