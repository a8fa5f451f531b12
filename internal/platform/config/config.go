package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures process level configuration. FromEnv builds it from
// environment variables so main stays lean.
type Server struct {
	Addr string

	// PostgresURL enables the SQL-backed stores when set; empty falls back to
	// the in-memory stores.
	PostgresURL string

	Redis RedisConfig
	Kafka KafkaConfig

	// AuthSigningKey enables the bearer-token middleware when set. Left empty
	// the API is open, which is the default for local use.
	AuthSigningKey string

	// AssessmentCacheTTL bounds how long a memoized assessment report may be
	// served before recompute.
	AssessmentCacheTTL time.Duration

	Thresholds Thresholds
}

// RedisConfig configures the optional report cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig configures the optional audit event publisher.
type KafkaConfig struct {
	Brokers []string
	Topic   string
}

// Thresholds is the single configuration surface for every scoring cutoff the
// engines use. The dashboard this replaces scattered these as magic numbers;
// keeping them together makes the bands auditable and overridable in one place.
type Thresholds struct {
	// HealthyScore / WarningScore delimit the green/amber/red bands for the
	// composite project health score and per-gate coloring.
	HealthyScore int
	WarningScore int

	// FilledSectionMinChars is the minimum trimmed description length for a
	// document section to count as filled.
	FilledSectionMinChars int

	// GateTraceability .. GateBaseline are the required scores for the fixed
	// quality gates.
	GateTraceability  int
	GateTestPassRate  int
	GateMaturity      int
	GateRiskMitigated int
	GateDocumentation int
	GateBaseline      int

	// StaleProposedAfter is how long a Proposed requirement may sit untouched
	// before the consistency rules flag it.
	StaleProposedAfter time.Duration
}

// DefaultThresholds returns the shipped scoring bands.
func DefaultThresholds() Thresholds {
	return Thresholds{
		HealthyScore:          80,
		WarningScore:          60,
		FilledSectionMinChars: 10,
		GateTraceability:      80,
		GateTestPassRate:      90,
		GateMaturity:          70,
		GateRiskMitigated:     75,
		GateDocumentation:     60,
		GateBaseline:          70,
		StaleProposedAfter:    30 * 24 * time.Hour,
	}
}

// thresholdsFromEnv applies TRACEGRID_* overrides on top of the defaults.
func thresholdsFromEnv() Thresholds {
	th := DefaultThresholds()
	th.HealthyScore = intEnv("TRACEGRID_HEALTHY_SCORE", th.HealthyScore)
	th.WarningScore = intEnv("TRACEGRID_WARNING_SCORE", th.WarningScore)
	th.FilledSectionMinChars = intEnv("TRACEGRID_FILLED_SECTION_MIN_CHARS", th.FilledSectionMinChars)
	th.GateTraceability = intEnv("TRACEGRID_GATE_TRACEABILITY", th.GateTraceability)
	th.GateTestPassRate = intEnv("TRACEGRID_GATE_TEST_PASS_RATE", th.GateTestPassRate)
	th.GateMaturity = intEnv("TRACEGRID_GATE_MATURITY", th.GateMaturity)
	th.GateRiskMitigated = intEnv("TRACEGRID_GATE_RISK_MITIGATED", th.GateRiskMitigated)
	th.GateDocumentation = intEnv("TRACEGRID_GATE_DOCUMENTATION", th.GateDocumentation)
	th.GateBaseline = intEnv("TRACEGRID_GATE_BASELINE", th.GateBaseline)
	th.StaleProposedAfter = durationEnv("TRACEGRID_STALE_PROPOSED_AFTER", th.StaleProposedAfter)
	return th
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	addr := os.Getenv("TRACEGRID_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	cacheTTL := durationEnv("TRACEGRID_CACHE_TTL", 5*time.Minute)

	var brokers []string
	if raw := os.Getenv("TRACEGRID_KAFKA_BROKERS"); raw != "" {
		brokers = strings.Split(raw, ",")
	}
	topic := os.Getenv("TRACEGRID_KAFKA_TOPIC")
	if topic == "" {
		topic = "tracegrid.audit"
	}

	return Server{
		Addr:           addr,
		PostgresURL:    os.Getenv("TRACEGRID_POSTGRES_URL"),
		AuthSigningKey: os.Getenv("TRACEGRID_SIGNING_KEY"),
		Redis: RedisConfig{
			URL:          os.Getenv("TRACEGRID_REDIS_URL"),
			PoolSize:     intEnv("TRACEGRID_REDIS_POOL_SIZE", 10),
			MinIdleConns: intEnv("TRACEGRID_REDIS_MIN_IDLE", 2),
			DialTimeout:  durationEnv("TRACEGRID_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  durationEnv("TRACEGRID_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: durationEnv("TRACEGRID_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers: brokers,
			Topic:   topic,
		},
		AssessmentCacheTTL: cacheTTL,
		Thresholds:         thresholdsFromEnv(),
	}
}

func intEnv(key string, fallback int) int {
	if raw := os.Getenv(key); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil {
			return v
		}
	}
	return fallback
}

func durationEnv(key string, fallback time.Duration) time.Duration {
	if raw := os.Getenv(key); raw != "" {
		if v, err := time.ParseDuration(raw); err == nil {
			return v
		}
	}
	return fallback
}
