package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoreDriverMemory   = "memory"
	StoreDriverPostgres = "postgres"
	StoreDriverSparql   = "sparql"
)

type Config struct {
	App       AppConfig
	Database  DatabaseConfig
	FactStore FactStoreConfig
	Cache     CacheConfig
	Messaging MessagingConfig
	Tracing   TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	AuditLogFilePath   string
	CorsAllowedOrigins string
}

func (c AppConfig) IsProduction() bool {
	return c.Environment == "production"
}

type DatabaseConfig struct {
	Connection string
}

type FactStoreConfig struct {
	Driver          string
	SparqlQueryURL  string
	SparqlUpdateURL string
	OntologyIRI     string
	Timeout         time.Duration
	SeedFile        string
}

type CacheConfig struct {
	SnapshotTTL   time.Duration
	RedisURL      string
	ProjectionTTL time.Duration
}

type MessagingConfig struct {
	NatsURL string
}

type TracingConfig struct {
	Enabled     bool
	ServiceName string
	Endpoint    string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3001"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			AuditLogFilePath:   getEnv("AUDIT_LOG_FILE_PATH", "logs/pipeline.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		},
		Database: DatabaseConfig{
			Connection: getEnv("DB_CONNECTION_STRING", ""),
		},
		FactStore: FactStoreConfig{
			Driver:          strings.ToLower(getEnv("FACT_STORE_DRIVER", StoreDriverMemory)),
			SparqlQueryURL:  getEnv("SPARQL_QUERY_URL", "http://localhost:3030/paddyKBS/query"),
			SparqlUpdateURL: getEnv("SPARQL_UPDATE_URL", "http://localhost:3030/paddyKBS/update"),
			OntologyIRI:     getEnv("ONTOLOGY_IRI", "http://www.semanticweb.org/veranga/ontologies/2025/5/Knowledge_Based_System_Version_5#"),
			Timeout:         getEnvAsMillis("STORE_TIMEOUT_MS", 5000),
			SeedFile:        getEnv("SEED_FILE", "seed/paddy_kbs.yaml"),
		},
		Cache: CacheConfig{
			SnapshotTTL:   getEnvAsSeconds("SNAPSHOT_TTL_SECONDS", 300),
			RedisURL:      getEnv("REDIS_URL", ""),
			ProjectionTTL: getEnvAsSeconds("PROJECTION_CACHE_TTL_SECONDS", 30),
		},
		Messaging: MessagingConfig{
			NatsURL: getEnv("NATS_URL", ""),
		},
		Tracing: TracingConfig{
			Enabled:     getEnvAsBool("OTEL_ENABLED", false),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "paddy-kbs-be"),
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsBool(key string, fallback bool) bool {
	strValue := getEnv(key, "")
	if value, err := strconv.ParseBool(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsMillis(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Millisecond
}

func getEnvAsSeconds(key string, fallback int) time.Duration {
	return time.Duration(getEnvAsInt(key, fallback)) * time.Second
}
