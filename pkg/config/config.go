package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port         string
	Env          string
	MongoURI     string
	MongoDB      string
	JWTSecret    string
	Judge0APIKey string
	Judge0Hosts  []string
}

// Load reads the .env file, then snapshots the environment into a Config.
// Real environment variables win over .env entries.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:         getEnv("PORT", "5000"),
		Env:          getEnv("ENV", "development"),
		MongoURI:     getEnv("MONGO_URI", ""),
		MongoDB:      getEnv("MONGO_DB", "careernest"),
		JWTSecret:    getEnv("JWT_SECRET", "supersecretjwtkey"),
		Judge0APIKey: getEnv("JUDGE0_API_KEY", ""),
		Judge0Hosts:  judge0Hosts(),
	}
}

// judge0Hosts returns the candidate hosts in failover order, CE and Extra CE
// variants by default, with JUDGE0_HOST taking first position when set.
func judge0Hosts() []string {
	if v := os.Getenv("JUDGE0_HOSTS"); v != "" {
		var hosts []string
		for _, h := range strings.Split(v, ",") {
			if h = strings.TrimSpace(h); h != "" {
				hosts = append(hosts, h)
			}
		}
		return hosts
	}
	return []string{
		getEnv("JUDGE0_HOST", "https://judge0-ce.p.rapidapi.com"),
		"https://judge0-extra-ce.p.rapidapi.com",
		"https://judge0-ce.p.rapidapi.com",
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
