package config

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type HTTPServer struct {
	Host string
	Port string
}

type RedisCache struct {
	Enabled  bool
	Host     string
	Port     string
	Password string
	TTL      time.Duration
}

type Postgres struct {
	Enabled  bool
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type TMDB struct {
	APIKey  string
	BaseURL string
}

type LLM struct {
	Endpoint string
	APIKey   string
	Model    string
}

type Recommender struct {
	// Strategy selects how mood criteria are resolved: "catalog" unions
	// per-genre fetches, "content" queries the TF-IDF index first.
	Strategy    string
	CorpusLimit int
	SnapshotAge time.Duration
}

type Config struct {
	HTTP        HTTPServer
	Redis       RedisCache
	Postgres    Postgres
	TMDB        TMDB
	LLM         LLM
	Recommender Recommender
}

const logtag = "[config]"

func Load() *Config {
	configPath := flag.String("config", "", "path env file")
	flag.Parse()

	if *configPath != "" {
		if err := godotenv.Load(*configPath); err != nil {
			log.Fatalf("%s err loading env from file : %v", logtag, err)
		}
		log.Printf("%s using env from : %s", logtag, *configPath)
	} else {
		log.Printf("%s using env from .env", logtag)
		_ = godotenv.Load()
	}

	return &Config{
		HTTP:        *newHTTP(),
		Redis:       *newRedis(),
		Postgres:    *newPostgres(),
		TMDB:        *newTMDB(),
		LLM:         *newLLM(),
		Recommender: *newRecommender(),
	}
}

func newHTTP() *HTTPServer {
	return &HTTPServer{
		Port: getenv("HTTP_PORT", "8080"),
		Host: getenv("HTTP_HOST", "localhost"),
	}
}

func newRedis() *RedisCache {
	return &RedisCache{
		Enabled:  getenvBool("REDIS_ENABLED", false),
		Host:     getenv("REDIS_HOST", "redis"),
		Port:     getenv("REDIS_PORT", "6379"),
		Password: getenv("REDIS_PASSWORD", ""),
		TTL:      getenvDuration("REDIS_TTL", 15*time.Minute),
	}
}

func newPostgres() *Postgres {
	return &Postgres{
		Enabled:  getenvBool("DB_ENABLED", false),
		Host:     getenv("DB_HOST", "localhost"),
		Port:     getenv("DB_PORT", "5432"),
		User:     getenv("DB_USER", "admin"),
		Password: getenv("DB_PASSWORD", ""),
		DBName:   getenv("DB_NAME", "cinemood"),
		SSLMode:  getenv("DB_SSLMODE", "disable"),
	}
}

func newTMDB() *TMDB {
	return &TMDB{
		APIKey:  getenv("TMDB_API_KEY", ""),
		BaseURL: getenv("TMDB_BASE_URL", ""),
	}
}

func newLLM() *LLM {
	return &LLM{
		Endpoint: getenv("LLM_ENDPOINT", ""),
		APIKey:   getenv("LLM_API_KEY", ""),
		Model:    getenv("LLM_MODEL", "gpt-4o-mini"),
	}
}

func newRecommender() *Recommender {
	return &Recommender{
		Strategy:    getenv("RECOMMENDER_STRATEGY", "catalog"),
		CorpusLimit: getenvInt("RECOMMENDER_CORPUS_LIMIT", 1000),
		SnapshotAge: getenvDuration("RECOMMENDER_SNAPSHOT_AGE", 24*time.Hour),
	}
}

func getenv(key, defaultValue string) string {
	val := os.Getenv(key)
	if val == "" {
		fmt.Printf("%s %s undefined. Using default value %s\n", logtag, key, defaultValue)
		return defaultValue
	}
	return val
}

func getenvBool(key string, defaultValue bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.ParseBool(val)
	if err != nil {
		log.Printf("%s %s is not a bool, using default %v", logtag, key, defaultValue)
		return defaultValue
	}
	return parsed
}

func getenvInt(key string, defaultValue int) int {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		log.Printf("%s %s is not an int, using default %d", logtag, key, defaultValue)
		return defaultValue
	}
	return parsed
}

func getenvDuration(key string, defaultValue time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultValue
	}
	parsed, err := time.ParseDuration(val)
	if err != nil {
		log.Printf("%s %s is not a duration, using default %s", logtag, key, defaultValue)
		return defaultValue
	}
	return parsed
}
