package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config aggregates per-concern configuration. FromEnv builds it from
// environment variables so main stays lean.
type Config struct {
	Server   ServerConfig
	Postgres PostgresConfig
	Redis    RedisConfig
	Kafka    KafkaConfig
	Registry RegistryConfig
	Crypto   CryptoConfig
}

// ServerConfig captures HTTP server level configuration.
type ServerConfig struct {
	Addr          string
	JWTSigningKey string
}

type PostgresConfig struct {
	DSN string
}

type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type KafkaConfig struct {
	Brokers []string
	// TopicPrefix is prepended to the audit category topic names.
	TopicPrefix string
}

// RegistryConfig points at the identity registry contract and the RPC node
// used to reach it.
type RegistryConfig struct {
	RPCURL          string
	ContractAddress string
	ChainID         int64
	CallTimeout     time.Duration
	// OperatorKey signs revocation transactions. The duress path must never
	// touch a user's key, so registry writes go out under a service key.
	OperatorKey string
}

// CryptoConfig tunes the password KDF. The iteration count is a deliberate
// security/latency tradeoff: lowering it to fit a request-timeout budget
// weakens every key blob at rest, so overrides must be explicit.
type CryptoConfig struct {
	KDFIterations int
}

// DefaultKDFIterations follows current OWASP guidance for PBKDF2-HMAC-SHA256.
const DefaultKDFIterations = 600_000

// FromEnv builds a Config from environment variables.
func FromEnv() Config {
	return Config{
		Server: ServerConfig{
			Addr:          envOr("BLOCKTRUST_ADDR", ":8080"),
			JWTSigningKey: envOr("JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		},
		Postgres: PostgresConfig{
			DSN: os.Getenv("POSTGRES_DSN"),
		},
		Redis: RedisConfig{
			URL:          os.Getenv("REDIS_URL"),
			PoolSize:     envInt("REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  5 * time.Second,
			ReadTimeout:  3 * time.Second,
			WriteTimeout: 3 * time.Second,
		},
		Kafka: KafkaConfig{
			Brokers:     splitNonEmpty(os.Getenv("KAFKA_BROKERS")),
			TopicPrefix: envOr("KAFKA_TOPIC_PREFIX", "blocktrust.audit"),
		},
		Registry: RegistryConfig{
			RPCURL:          os.Getenv("REGISTRY_RPC_URL"),
			ContractAddress: os.Getenv("REGISTRY_CONTRACT_ADDRESS"),
			ChainID:         int64(envInt("REGISTRY_CHAIN_ID", 80002)),
			CallTimeout:     time.Duration(envInt("REGISTRY_CALL_TIMEOUT_SECONDS", 30)) * time.Second,
			OperatorKey:     os.Getenv("REGISTRY_OPERATOR_KEY"),
		},
		Crypto: CryptoConfig{
			KDFIterations: envInt("KDF_ITERATIONS", DefaultKDFIterations),
		},
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func splitNonEmpty(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
