package config

import (
	"testing"
	"time"
)

func TestFromEnvDefaults(t *testing.T) {
	cfg := FromEnv()

	if cfg.Addr != ":8080" {
		t.Fatalf("expected default addr :8080, got %q", cfg.Addr)
	}
	if cfg.AssessmentCacheTTL != 5*time.Minute {
		t.Fatalf("expected default cache TTL 5m, got %s", cfg.AssessmentCacheTTL)
	}
	if cfg.Kafka.Topic != "tracegrid.audit" {
		t.Fatalf("expected default audit topic, got %q", cfg.Kafka.Topic)
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("TRACEGRID_ADDR", ":9999")
	t.Setenv("TRACEGRID_CACHE_TTL", "30s")
	t.Setenv("TRACEGRID_KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("TRACEGRID_REDIS_POOL_SIZE", "25")

	cfg := FromEnv()

	if cfg.Addr != ":9999" {
		t.Fatalf("expected addr override, got %q", cfg.Addr)
	}
	if cfg.AssessmentCacheTTL != 30*time.Second {
		t.Fatalf("expected TTL override, got %s", cfg.AssessmentCacheTTL)
	}
	if len(cfg.Kafka.Brokers) != 2 {
		t.Fatalf("expected two brokers, got %v", cfg.Kafka.Brokers)
	}
	if cfg.Redis.PoolSize != 25 {
		t.Fatalf("expected pool size override, got %d", cfg.Redis.PoolSize)
	}
}

func TestDefaultThresholds(t *testing.T) {
	th := DefaultThresholds()

	if th.HealthyScore <= th.WarningScore {
		t.Fatalf("healthy band must sit above warning band: %+v", th)
	}
	if th.FilledSectionMinChars != 10 {
		t.Fatalf("filled-section cutoff is part of the scoring contract, got %d", th.FilledSectionMinChars)
	}
	if th.StaleProposedAfter != 30*24*time.Hour {
		t.Fatalf("expected 30 day stale cutoff, got %s", th.StaleProposedAfter)
	}
}

func TestFromEnvThresholdOverrides(t *testing.T) {
	t.Setenv("TRACEGRID_HEALTHY_SCORE", "90")
	t.Setenv("TRACEGRID_GATE_TEST_PASS_RATE", "95")
	t.Setenv("TRACEGRID_STALE_PROPOSED_AFTER", "168h")

	th := FromEnv().Thresholds

	if th.HealthyScore != 90 {
		t.Fatalf("expected healthy score override, got %d", th.HealthyScore)
	}
	if th.GateTestPassRate != 95 {
		t.Fatalf("expected pass rate gate override, got %d", th.GateTestPassRate)
	}
	if th.StaleProposedAfter != 7*24*time.Hour {
		t.Fatalf("expected stale cutoff override, got %s", th.StaleProposedAfter)
	}
	// Untouched cutoffs keep their defaults.
	if th.GateBaseline != 70 {
		t.Fatalf("expected default baseline gate, got %d", th.GateBaseline)
	}
}
