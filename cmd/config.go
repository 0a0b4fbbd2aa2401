package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// config holds every setting of the service. Empty Kafka brokers or
// Elasticsearch addresses disable those backends.
type config struct {
	AppHost     string
	AppPort     string
	LogLevel    string
	LogEncoding string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExp          time.Duration

	KafkaBrokers []string
	KafkaTopic   string

	ElasticAddresses []string
	ElasticIndex     string
	ElasticUsername  string
	ElasticPassword  string

	JWTSecretKey        string
	JWTExp              time.Duration
	JWTRefreshSecretKey string
	JWTRefreshExp       time.Duration

	UploadDir      string
	UploadMaxBytes int64
	UploadWidth    int
	UploadQuality  int

	CORSAllowedOrigins []string

	RateLimitRequests int
	RateLimitWindow   time.Duration

	OutboxInterval    time.Duration
	OutboxBatchSize   int
	OutboxMaxAttempts int
}

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// configuration. Variables already set in the environment take precedence.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		if n, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}
	seconds := func(key, defaultValue string) time.Duration {
		return time.Duration(getInt(key, defaultValue)) * time.Second
	}

	cfg := &config{
		// Application config
		AppHost:     getEnv("APP_HOST", "localhost"),
		AppPort:     getEnv("APP_PORT", "8080"),
		LogLevel:    getEnv("APP_LOG_LEVEL", "info"),
		LogEncoding: getEnv("APP_LOG_ENCODING", "json"),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExp:          seconds("REDIS_EXP_SECOND", "900"),

		// Kafka config
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "movie-events"),

		// Elasticsearch config
		ElasticAddresses: splitList(getEnv("ELASTIC_ADDRESSES", "")),
		ElasticIndex:     getEnv("ELASTIC_INDEX", "movies"),
		ElasticUsername:  getEnv("ELASTIC_USERNAME", ""),
		ElasticPassword:  getEnv("ELASTIC_PASSWORD", ""),

		// JWT config
		JWTSecretKey:        getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExp:              seconds("JWT_EXP_SECOND", "900"),
		JWTRefreshSecretKey: getEnv("JWT_REFRESH_SECRET_KEY", "my_super_refresh_key"),
		JWTRefreshExp:       seconds("JWT_REFRESH_EXP_SECOND", "604800"),

		// Thumbnail uploads
		UploadDir:      getEnv("UPLOAD_DIR", "uploads"),
		UploadMaxBytes: int64(getInt("UPLOAD_MAX_BYTES", "5242880")),
		UploadWidth:    getInt("UPLOAD_WIDTH", "600"),
		UploadQuality:  getInt("UPLOAD_QUALITY", "60"),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:3000")),

		RateLimitRequests: getInt("RATE_LIMIT_REQUESTS", "100"),
		RateLimitWindow:   seconds("RATE_LIMIT_WINDOW_SECOND", "60"),

		// Outbox relay
		OutboxInterval:    time.Duration(getInt("OUTBOX_INTERVAL_MS", "1000")) * time.Millisecond,
		OutboxBatchSize:   getInt("OUTBOX_BATCH_SIZE", "50"),
		OutboxMaxAttempts: getInt("OUTBOX_MAX_ATTEMPTS", "10"),
	}
	if err != nil {
		return nil, err
	}
	return cfg, nil
}

// splitList splits a comma separated value, dropping empty items.
func splitList(s string) []string {
	var out []string
	for _, item := range strings.Split(s, ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
